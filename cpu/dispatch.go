package cpu

import (
	"errors"
	"iter"
	"strconv"
)

// Flow is the control transfer requested by a handler.
type Flow struct {
	Jump    bool // If set, the PC is loaded with Address.
	Address byte // Jump target.
}

// Advance moves the PC past the instruction and its operands.
var Advance = Flow{}

// JumpTo loads the PC with an address.
func JumpTo(address byte) Flow {
	return Flow{Jump: true, Address: address}
}

// Handler executes one instruction, given its two fetched operand bytes.
type Handler func(cpu *Cpu, a byte, b byte) (flow Flow, err error)

// DispatchTable maps opcode bytes to their handlers.
type DispatchTable struct {
	handler [256]Handler
}

// NewDispatchTable creates the table for the LS-8 instruction set.
func NewDispatchTable() (dt *DispatchTable) {
	dt = &DispatchTable{}

	handlers := map[Opcode]Handler{
		OP_NOP:  (*Cpu).opNop,
		OP_HLT:  (*Cpu).opHlt,
		OP_LDI:  (*Cpu).opLdi,
		OP_LD:   (*Cpu).opLd,
		OP_ST:   (*Cpu).opSt,
		OP_PUSH: (*Cpu).opPush,
		OP_POP:  (*Cpu).opPop,
		OP_CALL: (*Cpu).opCall,
		OP_RET:  (*Cpu).opRet,
		OP_PRN:  (*Cpu).opPrn,
		OP_PRA:  (*Cpu).opPra,
		OP_JMP:  jumpIf(func(fl Flag) bool { return true }),
		OP_JEQ:  jumpIf(func(fl Flag) bool { return fl&FLAG_EQ != 0 }),
		OP_JNE:  jumpIf(func(fl Flag) bool { return fl&FLAG_EQ == 0 }),
		OP_JGT:  jumpIf(func(fl Flag) bool { return fl&FLAG_GT != 0 }),
		OP_JLT:  jumpIf(func(fl Flag) bool { return fl&FLAG_LT != 0 }),
		OP_JLE:  jumpIf(func(fl Flag) bool { return fl&(FLAG_LT|FLAG_EQ) != 0 }),
		OP_JGE:  jumpIf(func(fl Flag) bool { return fl&(FLAG_GT|FLAG_EQ) != 0 }),
	}

	for op, alu := range _alu_op {
		handlers[op] = aluHandler(alu)
	}

	for op, handler := range handlers {
		dt.handler[op] = handler
	}

	return
}

// Lookup finds the handler for an opcode.
func (dt *DispatchTable) Lookup(op Opcode) (handler Handler, ok bool) {
	handler = dt.handler[op]
	ok = handler != nil
	return
}

// Opcodes returns the defined opcodes, in ascending order.
func (dt *DispatchTable) Opcodes() iter.Seq[Opcode] {
	return func(yield func(op Opcode) bool) {
		for n, handler := range dt.handler {
			if handler == nil {
				continue
			}
			if !yield(Opcode(n)) {
				return
			}
		}
	}
}

// aluHandler delegates a register-register instruction to the ALU.
// The result is written to the first register; CMP only updates the flags.
func aluHandler(op AluOp) Handler {
	return func(cpu *Cpu, a byte, b byte) (flow Flow, err error) {
		dst := cpu.reg(a)
		value := *cpu.reg(b)

		if (op == ALU_OP_DIV || op == ALU_OP_MOD) && value == 0 {
			err = ErrDivideByZero
			return
		}

		result, flags := Alu(op, *dst, value)
		if op == ALU_OP_CMP {
			cpu.FL = flags
		} else {
			*dst = result
		}

		return
	}
}

// jumpIf jumps to the address in a register when the flags satisfy cond.
func jumpIf(cond func(fl Flag) bool) Handler {
	return func(cpu *Cpu, a byte, _ byte) (flow Flow, err error) {
		if cond(cpu.FL) {
			flow = JumpTo(*cpu.reg(a))
		}
		return
	}
}

func (cpu *Cpu) opNop(_ byte, _ byte) (flow Flow, err error) {
	return
}

func (cpu *Cpu) opHlt(_ byte, _ byte) (flow Flow, err error) {
	cpu.Halted = true
	return
}

func (cpu *Cpu) opLdi(a byte, value byte) (flow Flow, err error) {
	*cpu.reg(a) = value
	return
}

func (cpu *Cpu) opLd(a byte, b byte) (flow Flow, err error) {
	*cpu.reg(a) = cpu.Memory.Read(*cpu.reg(b))
	return
}

func (cpu *Cpu) opSt(a byte, b byte) (flow Flow, err error) {
	cpu.Memory.Write(*cpu.reg(a), *cpu.reg(b))
	return
}

func (cpu *Cpu) opPush(a byte, _ byte) (flow Flow, err error) {
	cpu.Push(*cpu.reg(a))
	return
}

func (cpu *Cpu) opPop(a byte, _ byte) (flow Flow, err error) {
	*cpu.reg(a) = cpu.Pop()
	return
}

func (cpu *Cpu) opCall(a byte, _ byte) (flow Flow, err error) {
	cpu.Push(cpu.PC + 2)
	flow = JumpTo(*cpu.reg(a))
	return
}

func (cpu *Cpu) opRet(_ byte, _ byte) (flow Flow, err error) {
	flow = JumpTo(cpu.Pop())
	return
}

func (cpu *Cpu) opPrn(a byte, _ byte) (flow Flow, err error) {
	err = cpu.print(strconv.Itoa(int(*cpu.reg(a))))
	return
}

func (cpu *Cpu) opPra(a byte, _ byte) (flow Flow, err error) {
	err = cpu.print(string(rune(*cpu.reg(a))))
	return
}

// print sends a line to the output sink.
func (cpu *Cpu) print(text string) (err error) {
	if cpu.Output == nil {
		err = ErrOutput
		return
	}

	err = cpu.Output.PrintLine(text)
	if err != nil {
		err = errors.Join(ErrOutput, err)
	}

	return
}
