package cpu

// The stack lives in memory just below SP_INIT, and grows downwards.
// Neither overflow nor underflow is checked; the stack pointer wraps like
// any other register.

// Push a value onto the stack.
func (cpu *Cpu) Push(value byte) {
	cpu.R[REG_SP]--
	cpu.Memory.Write(cpu.R[REG_SP], value)
}

// Pop a value from the stack.
func (cpu *Cpu) Pop() (value byte) {
	value = cpu.Memory.Read(cpu.R[REG_SP])
	cpu.R[REG_SP]++
	return
}

// StackDepth returns the number of bytes pushed since reset.
func (cpu *Cpu) StackDepth() int {
	return int(byte(SP_INIT - cpu.R[REG_SP]))
}

// StackTop returns the value at the top of the stack, if any.
func (cpu *Cpu) StackTop() (value byte, ok bool) {
	if cpu.StackDepth() == 0 {
		return
	}

	return cpu.Memory.Read(cpu.R[REG_SP]), true
}
