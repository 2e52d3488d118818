package io

import (
	"fmt"
	"io"
)

// Console is a line-based text sink over an io.Writer.
type Console struct {
	Output io.Writer
	Lines  int // Lines successfully written since the last Rewind.
}

var _ Sink = (*Console)(nil)

// Rewind clears the line counter.
func (con *Console) Rewind() {
	con.Lines = 0
}

// PrintLine writes a single line of text.
func (con *Console) PrintLine(text string) (err error) {
	if con.Output == nil {
		err = ErrConsoleClosed
		return
	}

	_, err = fmt.Fprintln(con.Output, text)
	if err != nil {
		return
	}

	con.Lines++
	return
}
