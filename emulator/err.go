package emulator

import (
	"errors"

	"github.com/ezrec/tlvm/translate"
)

var f = translate.From

var (
	ErrStepLimit = errors.New(f("step limit exceeded"))
)

// ErrRuntime indicates the step count at which a runtime error occurred.
type ErrRuntime struct {
	Step int
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("step %d %v", err.Step, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
