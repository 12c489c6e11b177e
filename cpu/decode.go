package cpu

import (
	"strconv"
	"strings"
)

// regMap is a map of register names.
var regMap = map[string]Reg{
	"a": REG_A,
	"b": REG_B,
}

// opMap is the fixed opcode-to-arity table.
var opMap = map[string]struct {
	op       Op
	register bool // takes a leading register operand
	offset   bool // takes a trailing signed offset operand
}{
	"hlf": {OP_HLF, true, false},
	"tpl": {OP_TPL, true, false},
	"inc": {OP_INC, true, false},
	"jmp": {OP_JMP, false, true},
	"jie": {OP_JIE, true, true},
	"jio": {OP_JIO, true, true},
}

// operand strips the trailing separator from an operand word.
func operand(word string) string {
	return strings.TrimSuffix(word, ",")
}

// getRegister resolves an operand word to a register identifier.
func getRegister(word string) (reg Reg, err error) {
	reg, ok := regMap[operand(word)]
	if !ok {
		err = ErrRegisterInvalid
	}

	return
}

// getOffset parses an operand word as a relative jump offset: an explicit
// sign character followed by decimal digits.
func getOffset(word string) (offset int, err error) {
	word = operand(word)
	if len(word) == 0 || (word[0] != '+' && word[0] != '-') {
		err = ErrOffsetInvalid
		return
	}

	v64, perr := strconv.ParseInt(word, 10, strconv.IntSize)
	if perr != nil {
		err = ErrOffsetInvalid
		return
	}

	offset = int(v64)
	return
}

// Decode parses one raw line into an Instruction.
//
// Decode is pure: it holds no state across calls, and the same line
// always yields the same instruction or the same failure.
func Decode(line string) (inst Instruction, err error) {
	all_words := strings.Split(line, " ")

	var words []string
	for _, single := range all_words {
		if len(single) > 0 {
			words = append(words, single)
		}
	}

	if len(words) == 0 {
		err = ErrOpcodeMissing
		return
	}

	arity, ok := opMap[words[0]]
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	want := 0
	if arity.register {
		want++
	}
	if arity.offset {
		want++
	}

	args := words[1:]
	if len(args) < want {
		err = ErrOpcodeValueMissing
		return
	}
	if len(args) > want {
		err = ErrOpcodeExtraArgs
		return
	}

	inst.Op = arity.op

	if arity.register {
		inst.Reg, err = getRegister(args[0])
		if err != nil {
			inst = Instruction{}
			return
		}
		args = args[1:]
	}

	if arity.offset {
		inst.Offset, err = getOffset(args[0])
		if err != nil {
			inst = Instruction{}
			return
		}
	}

	return
}
