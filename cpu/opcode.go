package cpu

import (
	"fmt"
	"strings"
)

// Opcode is a single instruction byte.
//
// Bits 7-6 are the operand count, bit 5 marks an ALU operation, bit 4 marks
// an instruction that sets the PC, and bits 3-0 identify the instruction.
type Opcode byte

const (
	OP_NOP  = Opcode(0b0000_0000) // NOP
	OP_HLT  = Opcode(0b0000_0001) // HLT
	OP_RET  = Opcode(0b0001_0001) // RET
	OP_PUSH = Opcode(0b0100_0101) // PUSH
	OP_POP  = Opcode(0b0100_0110) // POP
	OP_PRN  = Opcode(0b0100_0111) // PRN
	OP_PRA  = Opcode(0b0100_1000) // PRA
	OP_CALL = Opcode(0b0101_0000) // CALL
	OP_JMP  = Opcode(0b0101_0100) // JMP
	OP_JEQ  = Opcode(0b0101_0101) // JEQ
	OP_JNE  = Opcode(0b0101_0110) // JNE
	OP_JGT  = Opcode(0b0101_0111) // JGT
	OP_JLT  = Opcode(0b0101_1000) // JLT
	OP_JLE  = Opcode(0b0101_1001) // JLE
	OP_JGE  = Opcode(0b0101_1010) // JGE
	OP_INC  = Opcode(0b0110_0101) // INC
	OP_DEC  = Opcode(0b0110_0110) // DEC
	OP_NOT  = Opcode(0b0110_1001) // NOT
	OP_LDI  = Opcode(0b1000_0010) // LDI
	OP_LD   = Opcode(0b1000_0011) // LD
	OP_ST   = Opcode(0b1000_0100) // ST
	OP_ADD  = Opcode(0b1010_0000) // ADD
	OP_SUB  = Opcode(0b1010_0001) // SUB
	OP_MUL  = Opcode(0b1010_0010) // MUL
	OP_DIV  = Opcode(0b1010_0011) // DIV
	OP_MOD  = Opcode(0b1010_0100) // MOD
	OP_CMP  = Opcode(0b1010_0111) // CMP
	OP_AND  = Opcode(0b1010_1000) // AND
	OP_OR   = Opcode(0b1010_1010) // OR
	OP_XOR  = Opcode(0b1010_1011) // XOR
	OP_SHL  = Opcode(0b1010_1100) // SHL
	OP_SHR  = Opcode(0b1010_1101) // SHR
)

var _opcode_name = map[Opcode]string{
	OP_NOP:  "NOP",
	OP_HLT:  "HLT",
	OP_RET:  "RET",
	OP_PUSH: "PUSH",
	OP_POP:  "POP",
	OP_PRN:  "PRN",
	OP_PRA:  "PRA",
	OP_CALL: "CALL",
	OP_JMP:  "JMP",
	OP_JEQ:  "JEQ",
	OP_JNE:  "JNE",
	OP_JGT:  "JGT",
	OP_JLT:  "JLT",
	OP_JLE:  "JLE",
	OP_JGE:  "JGE",
	OP_INC:  "INC",
	OP_DEC:  "DEC",
	OP_NOT:  "NOT",
	OP_LDI:  "LDI",
	OP_LD:   "LD",
	OP_ST:   "ST",
	OP_ADD:  "ADD",
	OP_SUB:  "SUB",
	OP_MUL:  "MUL",
	OP_DIV:  "DIV",
	OP_MOD:  "MOD",
	OP_CMP:  "CMP",
	OP_AND:  "AND",
	OP_OR:   "OR",
	OP_XOR:  "XOR",
	OP_SHL:  "SHL",
	OP_SHR:  "SHR",
}

var _opcode_value = func() map[string]Opcode {
	values := make(map[string]Opcode, len(_opcode_name))
	for op, name := range _opcode_name {
		values[name] = op
	}
	return values
}()

// LookupOpcode finds an opcode by its (case insensitive) mnemonic.
func LookupOpcode(name string) (op Opcode, ok bool) {
	op, ok = _opcode_value[strings.ToUpper(name)]
	return
}

// Operands returns the number of operand bytes following the opcode.
func (op Opcode) Operands() int {
	return int((op >> 6) & 0b11)
}

// IsAlu returns true if the opcode is an ALU operation.
func (op Opcode) IsAlu() bool {
	return (op>>5)&1 == 1
}

// SetsPc returns true if the opcode transfers control.
func (op Opcode) SetsPc() bool {
	return (op>>4)&1 == 1
}

// Immediate returns true if operand n is a value rather than a register.
func (op Opcode) Immediate(n int) bool {
	return op == OP_LDI && n == 1
}

// String returns the mnemonic, or the hex value for undefined opcodes.
func (op Opcode) String() string {
	name, ok := _opcode_name[op]
	if !ok {
		return fmt.Sprintf("0x%02x", byte(op))
	}
	return name
}

// Instruction is an opcode with its fetched operand bytes.
type Instruction struct {
	Opcode Opcode
	A, B   byte
}

// String returns the assembly language representation of the instruction.
func (in Instruction) String() (out string) {
	out = in.Opcode.String()

	operands := [2]byte{in.A, in.B}
	for n := range in.Opcode.Operands() {
		if n > 1 {
			break
		}
		sep := ","
		if n == 0 {
			sep = " "
		}
		if in.Opcode.Immediate(n) {
			out += fmt.Sprintf("%v0x%02x", sep, operands[n])
		} else {
			out += fmt.Sprintf("%vR%d", sep, operands[n]&REG_MASK)
		}
	}

	return
}
