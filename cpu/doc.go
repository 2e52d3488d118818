// Package cpu implements the processor and assembler for the LS-8 system.
//
// The CPU consists of eight 8-bit registers (R0-R7, where R5-R7 double as
// the interrupt mask, interrupt status, and stack pointer), a program
// counter, an instruction register, a flags register, and an ALU. It is
// bound to a 256 byte memory, and executes one instruction per Tick().
//
// Each opcode byte carries its operand count in its top two bits. Opcodes
// are dispatched through a table of handlers built when the CPU is created.
//
// The assembler provides a small assembly language for the LS-8 instruction
// set, supporting macros, labels, equates, and compile-time expression
// evaluation.
package cpu
