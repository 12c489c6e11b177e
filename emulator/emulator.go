// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"github.com/ezrec/tlvm/cpu"
	"github.com/ezrec/tlvm/rom"
)

// Emulator state. CPU + program store, plus the external run guards the
// machine core itself does not carry.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the CPU simulation.

	MaxSteps int // Abort the run after this many instructions. 0 is unlimited.
}

// NewEmulator creates a new emulator over a program store.
func NewEmulator(r *rom.Rom) (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(r),
	}

	return
}

// Reset the emulator state.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
}

// Steps returns the total instructions executed since a reset.
func (emu *Emulator) Steps() int {
	return emu.Cpu.Steps
}

// Tick performs a single tick of the emulator. done reports that the
// machine has halted; a halt is not an error.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	defer func() {
		if err != nil {
			err = &ErrRuntime{Step: emu.Cpu.Steps, Err: err}
		}
	}()

	running, err := emu.Cpu.Step()
	done = !running && err == nil

	return
}

// Run ticks the emulator until the machine halts. If MaxSteps is set,
// the run fails with ErrStepLimit once the budget is spent; a program
// that loops forever is otherwise the caller's problem.
func (emu *Emulator) Run() (err error) {
	var done bool
	for !done {
		if emu.MaxSteps > 0 && emu.Cpu.Steps >= emu.MaxSteps {
			err = &ErrRuntime{Step: emu.Cpu.Steps, Err: ErrStepLimit}
			return
		}

		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
