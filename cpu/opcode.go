package cpu

import (
	"fmt"
)

// Op is an operation code.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_HLF = Op(0) // hlf
	OP_TPL = Op(1) // tpl
	OP_INC = Op(2) // inc
	OP_JMP = Op(3) // jmp
	OP_JIE = Op(4) // jie
	OP_JIO = Op(5) // jio
)

// Reg is a register identifier.
type Reg int

//go:generate go tool stringer -linecomment -type=Reg
const (
	REG_A = Reg(0) // a
	REG_B = Reg(1) // b
)

// REG_COUNT is the size of the register bank.
const REG_COUNT = 2

// Instruction is a single decoded instruction. Reg is meaningful for
// hlf, tpl, inc, jie, and jio; Offset for jmp, jie, and jio.
type Instruction struct {
	Op     Op
	Reg    Reg
	Offset int
}

// String returns the canonical source text of this instruction.
func (inst Instruction) String() (out string) {
	switch inst.Op {
	case OP_HLF, OP_TPL, OP_INC:
		out = fmt.Sprintf("%v %v", inst.Op, inst.Reg)
	case OP_JMP:
		out = fmt.Sprintf("%v %+d", inst.Op, inst.Offset)
	case OP_JIE, OP_JIO:
		out = fmt.Sprintf("%v %v, %+d", inst.Op, inst.Reg, inst.Offset)
	default:
		out = inst.Op.String()
	}

	return
}
