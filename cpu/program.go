package cpu

import (
	"iter"
)

// Statement represents a line of assembled code with its source location and generated bytes.
type Statement struct {
	LineNo    int
	Address   int
	Words     []string
	Bytes     []byte
	LinkLabel string // Label whose address is linked into Bytes[LinkIndex].
	LinkIndex int
}

// Program is an assembled listing.
type Program struct {
	Statements []Statement
}

type Debug struct {
	*Statement
	Index int
}

// Debug finds the statement that generated the byte at an address.
func (prog *Program) Debug(address byte) (dbg Debug) {
	for n, st := range prog.Statements {
		if int(address) >= st.Address && int(address) < st.Address+len(st.Bytes) {
			dbg = Debug{
				Statement: &prog.Statements[n],
				Index:     int(address) - st.Address,
			}
			break
		}
	}

	return
}

// Size returns the number of bytes the program occupies.
func (prog *Program) Size() (size int) {
	for _, st := range prog.Statements {
		size = max(size, st.Address+len(st.Bytes))
	}

	return
}

// Binary returns the memory image of the program, from address 0.
func (prog *Program) Binary() (bins []byte) {
	bins = make([]byte, prog.Size())
	for address, value := range prog.Bytes() {
		bins[address] = value
	}

	return
}

// Bytes iterates over every assembled byte and its address.
func (prog *Program) Bytes() iter.Seq2[int, byte] {
	return func(yield func(address int, value byte) bool) {
		for _, st := range prog.Statements {
			for n, value := range st.Bytes {
				if !yield(st.Address+n, value) {
					return
				}
			}
		}
	}
}
