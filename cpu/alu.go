package cpu

// AluOp is an ALU operation type.
type AluOp int

const (
	ALU_OP_ADD = AluOp(0)  // add
	ALU_OP_SUB = AluOp(1)  // sub
	ALU_OP_MUL = AluOp(2)  // mul
	ALU_OP_DIV = AluOp(3)  // div
	ALU_OP_MOD = AluOp(4)  // mod
	ALU_OP_INC = AluOp(5)  // inc
	ALU_OP_DEC = AluOp(6)  // dec
	ALU_OP_CMP = AluOp(7)  // cmp
	ALU_OP_AND = AluOp(8)  // and
	ALU_OP_NOT = AluOp(9)  // not
	ALU_OP_OR  = AluOp(10) // or
	ALU_OP_XOR = AluOp(11) // xor
	ALU_OP_SHL = AluOp(12) // shl
	ALU_OP_SHR = AluOp(13) // shr
)

// _alu_op maps each ALU opcode to its operation.
var _alu_op = map[Opcode]AluOp{
	OP_ADD: ALU_OP_ADD,
	OP_SUB: ALU_OP_SUB,
	OP_MUL: ALU_OP_MUL,
	OP_DIV: ALU_OP_DIV,
	OP_MOD: ALU_OP_MOD,
	OP_INC: ALU_OP_INC,
	OP_DEC: ALU_OP_DEC,
	OP_CMP: ALU_OP_CMP,
	OP_AND: ALU_OP_AND,
	OP_NOT: ALU_OP_NOT,
	OP_OR:  ALU_OP_OR,
	OP_XOR: ALU_OP_XOR,
	OP_SHL: ALU_OP_SHL,
	OP_SHR: ALU_OP_SHR,
}

// Alu performs the requested ALU action on a and b, and returns the result.
// Results wrap at 8 bits. Only ALU_OP_CMP returns flags, and its result is
// always zero.
//
// The caller must not request ALU_OP_DIV or ALU_OP_MOD with a zero b.
func Alu(op AluOp, a byte, b byte) (result byte, flags Flag) {
	switch op {
	case ALU_OP_ADD:
		result = a + b
	case ALU_OP_SUB:
		result = a - b
	case ALU_OP_MUL:
		result = a * b
	case ALU_OP_DIV:
		result = a / b
	case ALU_OP_MOD:
		result = a % b
	case ALU_OP_INC:
		result = a + 1
	case ALU_OP_DEC:
		result = a - 1
	case ALU_OP_CMP:
		switch {
		case a == b:
			flags = FLAG_EQ
		case a > b:
			flags = FLAG_GT
		default:
			flags = FLAG_LT
		}
	case ALU_OP_AND:
		result = a & b
	case ALU_OP_NOT:
		result = ^a
	case ALU_OP_OR:
		result = a | b
	case ALU_OP_XOR:
		result = a ^ b
	case ALU_OP_SHL:
		result = a << b
	case ALU_OP_SHR:
		result = a >> b
	default:
		panic("unknown ALU op")
	}

	return
}
