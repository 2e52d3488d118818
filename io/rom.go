package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ROM_SIZE is the largest image that fits the 8-bit address space.
const ROM_SIZE = 256

// Rom is a program image, loaded into memory starting at address 0.
type Rom struct {
	Data []byte
}

// Load pokes the image into the target, from address 0 upwards.
func (rc *Rom) Load(target Target) (err error) {
	if len(rc.Data) > ROM_SIZE {
		err = ErrRomSize
		return
	}

	for address, value := range rc.Data {
		target.Poke(byte(address), value)
	}

	return
}

// Unmarshal replaces the image with a text listing: one byte per line,
// written as eight binary digits. A '#' starts a comment; blank lines
// are skipped.
func (rc *Rom) Unmarshal(input io.Reader) (err error) {
	scanner := bufio.NewScanner(input)

	var data []byte
	var lineno int
	for scanner.Scan() {
		text := scanner.Text()
		lineno++

		line, _, _ := strings.Cut(text, "#")
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		if len(line) != 8 {
			err = &ErrListing{LineNo: lineno, Line: text, Err: ErrRomByte}
			return
		}

		var value uint64
		value, err = strconv.ParseUint(line, 2, 8)
		if err != nil {
			err = &ErrListing{LineNo: lineno, Line: text, Err: ErrRomByte}
			return
		}

		data = append(data, byte(value))
		if len(data) > ROM_SIZE {
			err = &ErrListing{LineNo: lineno, Line: text, Err: ErrRomSize}
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	rc.Data = data
	return
}

// Marshal writes the image as a text listing.
func (rc *Rom) Marshal(output io.Writer) (err error) {
	writer := bufio.NewWriter(output)
	for _, value := range rc.Data {
		_, err = fmt.Fprintf(writer, "%08b\n", value)
		if err != nil {
			return
		}
	}

	return writer.Flush()
}
