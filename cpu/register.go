package cpu

import (
	"strings"
)

// Register indexes with reserved meanings.
const (
	REG_IM   = 5    // Interrupt mask.
	REG_IS   = 6    // Interrupt status.
	REG_SP   = 7    // Stack pointer.
	REG_MASK = 0x7  // Mask of the register index in an operand byte.
	SP_INIT  = 0xf4 // Stack pointer at reset.
)

// Flag is the flags register bitfield.
type Flag byte

const (
	FLAG_EQ = Flag(1 << 0) // Equal
	FLAG_GT = Flag(1 << 1) // Greater than
	FLAG_LT = Flag(1 << 2) // Less than
)

// String returns the set flags, ie "E", "G", "L", or "-" if none.
func (fl Flag) String() string {
	var sb strings.Builder
	for n, name := range []string{"E", "G", "L"} {
		if fl&(1<<n) != 0 {
			sb.WriteString(name)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// Registers is the CPU register file.
type Registers struct {
	R  [8]byte // General purpose registers.
	PC byte    // Program counter.
	IR Opcode  // Instruction register.
	FL Flag    // Flags register.
}

// Reset the registers to their power-on state.
func (regs *Registers) Reset() {
	clear(regs.R[:])
	regs.R[REG_IM] = 0
	regs.R[REG_IS] = 0
	regs.R[REG_SP] = SP_INIT
	regs.PC = 0
	regs.IR = OP_NOP
	regs.FL = 0
}

// reg returns a pointer to the register selected by an operand byte.
func (regs *Registers) reg(operand byte) *byte {
	return &regs.R[operand&REG_MASK]
}
