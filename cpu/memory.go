//go:generate mockgen -write_package_comment=false -package=$GOPACKAGE -destination=mock_memory_test.go github.com/ezrec/ls8/cpu Memory

package cpu

const (
	MEMORY_SIZE = 256 // Bytes of addressable memory.
)

// Memory is the byte-addressable store the CPU executes from.
type Memory interface {
	Read(address byte) (value byte)
	Write(address byte, value byte)
}

// Ram is a flat 256 byte Memory.
type Ram [MEMORY_SIZE]byte

var _ Memory = (*Ram)(nil)

// Read a byte.
func (ram *Ram) Read(address byte) byte {
	return ram[address]
}

// Write a byte.
func (ram *Ram) Write(address byte, value byte) {
	ram[address] = value
}

// Reset clears the memory to zero.
func (ram *Ram) Reset() {
	clear(ram[:])
}
