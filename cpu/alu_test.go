package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlu_Wraparound(t *testing.T) {
	table := [](struct {
		op AluOp
		fn func(a, b int) int
	}){
		{ALU_OP_ADD, func(a, b int) int { return a + b }},
		{ALU_OP_SUB, func(a, b int) int { return a - b }},
		{ALU_OP_MUL, func(a, b int) int { return a * b }},
	}

	for _, entry := range table {
		for a := range 256 {
			for b := range 256 {
				expected := byte(((entry.fn(a, b) % 256) + 256) % 256)
				result, flags := Alu(entry.op, byte(a), byte(b))
				if result != expected || flags != 0 {
					t.Fatalf("op %v: %d, %d => %d (flags %v), expected %d", entry.op, a, b, result, flags, expected)
				}
			}
		}
	}
}

func TestAlu_IncDec(t *testing.T) {
	assert := assert.New(t)

	result, _ := Alu(ALU_OP_INC, 255, 0)
	assert.Equal(byte(0), result)

	result, _ = Alu(ALU_OP_DEC, 0, 0)
	assert.Equal(byte(255), result)

	for a := range 255 {
		result, _ = Alu(ALU_OP_INC, byte(a), 0x77)
		assert.Equal(byte(a+1), result)
		result, _ = Alu(ALU_OP_DEC, byte(a+1), 0x77)
		assert.Equal(byte(a), result)
	}
}

func TestAlu_DivMod(t *testing.T) {
	assert := assert.New(t)

	for a := range 256 {
		for b := 1; b < 256; b++ {
			result, _ := Alu(ALU_OP_DIV, byte(a), byte(b))
			assert.Equal(byte(a/b), result)
			result, _ = Alu(ALU_OP_MOD, byte(a), byte(b))
			assert.Equal(byte(a%b), result)
		}
	}
}

func TestAlu_Bitwise(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op     AluOp
		a, b   byte
		result byte
	}){
		{ALU_OP_AND, 0b1100_1010, 0b1010_0110, 0b1000_0010},
		{ALU_OP_OR, 0b1100_1010, 0b1010_0110, 0b1110_1110},
		{ALU_OP_XOR, 0b1100_1010, 0b1010_0110, 0b0110_1100},
		{ALU_OP_NOT, 0b1100_1010, 0b1111_1111, 0b0011_0101},
		{ALU_OP_NOT, 0x00, 0x00, 0xff},
		{ALU_OP_SHL, 0b1100_1010, 1, 0b1001_0100},
		{ALU_OP_SHL, 0b1100_1010, 8, 0},
		{ALU_OP_SHR, 0b1100_1010, 3, 0b0001_1001},
		{ALU_OP_SHR, 0b1100_1010, 9, 0},
	}

	for _, entry := range table {
		result, flags := Alu(entry.op, entry.a, entry.b)
		assert.Equal(entry.result, result, "%v %#x %#x", entry.op, entry.a, entry.b)
		assert.Equal(Flag(0), flags)
	}
}

func TestAlu_Compare(t *testing.T) {
	for a := range 256 {
		for b := range 256 {
			result, flags := Alu(ALU_OP_CMP, byte(a), byte(b))
			if result != 0 {
				t.Fatalf("cmp %d, %d: result %d", a, b, result)
			}

			set := 0
			for _, fl := range []Flag{FLAG_EQ, FLAG_GT, FLAG_LT} {
				if flags&fl != 0 {
					set++
				}
			}
			if set != 1 {
				t.Fatalf("cmp %d, %d: flags %v", a, b, flags)
			}

			switch {
			case a == b && flags != FLAG_EQ,
				a > b && flags != FLAG_GT,
				a < b && flags != FLAG_LT:
				t.Fatalf("cmp %d, %d: flags %v", a, b, flags)
			}
		}
	}
}

func TestAlu_Unknown(t *testing.T) {
	assert := assert.New(t)

	assert.Panics(func() { Alu(AluOp(99), 1, 2) })
}
