package cpu

import (
	"errors"

	"github.com/ezrec/tlvm/translate"
)

var f = translate.From

var (
	// Instruction decode errors
	ErrOpcodeMissing      = errors.New(f("opcode missing"))
	ErrOpcodeInvalid      = errors.New(f("opcode invalid"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrRegisterInvalid    = errors.New(f("register invalid"))
	ErrOffsetInvalid      = errors.New(f("offset invalid"))

	// Execution errors
	ErrOverflow = errors.New(f("register overflow"))
)

type ErrInstruction Instruction

func (ei ErrInstruction) Error() string {
	return f("bad instruction '%v'", Instruction(ei).String())
}

func (ei ErrInstruction) Is(err error) (ok bool) {
	_, ok = err.(ErrInstruction)
	return
}

// ErrDecode carries the offending line and program position of a fatal
// decode failure.
type ErrDecode struct {
	Pc   int
	Line string
	Err  error
}

func (err *ErrDecode) Error() string {
	return f("pc %d '%v' %v", err.Pc, err.Line, err.Err)
}

func (err *ErrDecode) Unwrap() error {
	return err.Err
}
