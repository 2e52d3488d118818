package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/ls8/io"
)

// Output is the line-based sink that PRN and PRA print to.
type Output io.Sink

var _cpu_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%#x", MEMORY_SIZE),
	"SP_INIT":     fmt.Sprintf("%#x", SP_INIT),
	"REG_IM":      fmt.Sprintf("%v", REG_IM),
	"REG_IS":      fmt.Sprintf("%v", REG_IS),
	"REG_SP":      fmt.Sprintf("%v", REG_SP),
	"FLAG_EQ":     fmt.Sprintf("%#x", byte(FLAG_EQ)),
	"FLAG_GT":     fmt.Sprintf("%#x", byte(FLAG_GT)),
	"FLAG_LT":     fmt.Sprintf("%#x", byte(FLAG_LT)),
}

// Cpu is the simulation context for the LS-8 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Registers        // Register file.
	Memory    Memory // Memory the program executes from.
	Output    Output // Output sink for PRN and PRA.

	Halted bool // Set once the CPU has stopped.
	Ticks  int  // Instructions executed since reset.

	dispatch *DispatchTable
}

// NewCpu creates a new CPU, bound to a memory.
func NewCpu(memory Memory) (cpu *Cpu) {
	cpu = &Cpu{
		Memory:   memory,
		dispatch: NewDispatchTable(),
	}

	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Sets registers to their power-on values.
// - Zeros the tick counter.
// - Leaves memory untouched.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Registers.Reset()
	cpu.Halted = false
	cpu.Ticks = 0
}

// Poke writes a byte to memory.
func (cpu *Cpu) Poke(address byte, value byte) {
	cpu.Memory.Write(address, value)
}

// Peek reads a byte from memory.
func (cpu *Cpu) Peek(address byte) byte {
	return cpu.Memory.Read(address)
}

// Fetch loads the instruction register from the PC, and returns the
// instruction with the two bytes that follow it, needed or not.
func (cpu *Cpu) Fetch() (in Instruction) {
	cpu.IR = Opcode(cpu.Memory.Read(cpu.PC))

	in = Instruction{
		Opcode: cpu.IR,
		A:      cpu.Memory.Read(cpu.PC + 1),
		B:      cpu.Memory.Read(cpu.PC + 2),
	}

	return
}

// Tick executes a single CPU instruction cycle.
//
// Invalid opcodes and failed instructions halt the CPU without advancing
// the PC. The fault is logged and returned; nothing is printed to Output.
// Once halted, Tick returns ErrHalted.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted {
		err = ErrHalted
		return
	}

	in := cpu.Fetch()
	if cpu.Verbose {
		log.Printf("%02x: %v", cpu.PC, in)
	}

	handler, ok := cpu.dispatch.Lookup(in.Opcode)
	if !ok {
		log.Printf("cpu: %v", f("%02x: invalid opcode %#02x", cpu.PC, byte(in.Opcode)))
		cpu.Halted = true
		err = ErrOpcode(in.Opcode)
		return
	}

	flow, err := handler(cpu, in.A, in.B)
	if err != nil {
		log.Printf("cpu: %v", f("%02x: %v: %v", cpu.PC, in, err))
		cpu.Halted = true
		return
	}

	if flow.Jump {
		cpu.PC = flow.Address
	} else {
		cpu.PC += byte(1 + cpu.IR.Operands())
	}

	cpu.Ticks++

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"pc", "ir", "fl",
		"r0", "r1", "r2", "r3", "r4", "im", "is", "sp",
		"stack",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%02X", cpu.PC)
		case "ir":
			strval = fmt.Sprintf("%02X %v", byte(cpu.IR), cpu.IR)
		case "fl":
			strval = fmt.Sprintf("%02X %v", byte(cpu.FL), cpu.FL)
		case "r0", "r1", "r2", "r3", "r4":
			strval = fmt.Sprintf("%02X", cpu.R[reg[1]-'0'])
		case "im":
			strval = fmt.Sprintf("%02X", cpu.R[REG_IM])
		case "is":
			strval = fmt.Sprintf("%02X", cpu.R[REG_IS])
		case "sp":
			strval = fmt.Sprintf("%02X", cpu.R[REG_SP])
		case "stack":
			val, ok := cpu.StackTop()
			if ok {
				strval = fmt.Sprintf("%02X (depth %d)", val, cpu.StackDepth())
			} else {
				strval = "--"
			}
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}
