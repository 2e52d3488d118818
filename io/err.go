package io

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Console errors
	ErrConsoleClosed = errors.New(f("console closed"))

	// Rom errors
	ErrRomSize = errors.New(f("rom larger than 256 bytes"))
	ErrRomByte = errors.New(f("not an 8-bit binary value"))
)

// ErrListing reports the listing line a parse error was found on.
type ErrListing struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrListing) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrListing) Unwrap() error {
	return err.Err
}
