// Package io provides the collaborators wired around the LS-8 core: the
// line-based console that PRN and PRA print to, and the ROM image that a
// program listing is loaded from.
package io

// Sink is a line-based text output.
type Sink interface {
	// PrintLine writes text followed by a newline.
	PrintLine(text string) error
}

// Target receives a program image, one byte per address.
type Target interface {
	Poke(address byte, value byte)
}
