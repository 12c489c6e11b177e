package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"math"

	"github.com/ezrec/tlvm/rom"
)

// Cpu is the execution engine: it owns the register bank and the program
// counter, and drives the fetch-decode-execute cycle over a program store.
//
// A Cpu is not safe for concurrent use; callers must serialize access.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Rom *rom.Rom // Reference to the program store.

	Pc       int               // Current program counter.
	Register [REG_COUNT]uint64 // Register bank.

	Steps int // Instructions executed since reset.
}

// NewCpu creates a new CPU over a program store, with zeroed registers
// and the program counter at 0.
func NewCpu(r *rom.Rom) (cpu *Cpu) {
	cpu = &Cpu{
		Rom: r,
	}

	return
}

// Reset the CPU state: registers, program counter, and step counter.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Pc = 0
	cpu.Steps = 0
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("% 3s: %d\n", "pc", cpu.Pc)
	for reg, val := range cpu.Registers() {
		text += fmt.Sprintf("% 3v: %d\n", reg, val)
	}

	return
}

// Registers iterates the register bank in identifier order.
func (cpu *Cpu) Registers() iter.Seq2[Reg, uint64] {
	return func(yield func(Reg, uint64) bool) {
		for n := range cpu.Register {
			if !yield(Reg(n), cpu.Register[n]) {
				return
			}
		}
	}
}

// RegisterValue is the read-only view of a single register, for
// inspection after the machine halts.
func (cpu *Cpu) RegisterValue(reg Reg) uint64 {
	return cpu.Register[reg]
}

// Step executes a single fetch-decode-execute cycle.
//
// running is false once the program counter has left the program bounds;
// that is the machine's sole success-path termination, reported without
// an error. A decode failure is fatal and mutates no machine state.
func (cpu *Cpu) Step() (running bool, err error) {
	line, ok := cpu.Rom.Get(cpu.Pc)
	if !ok {
		// Halted.
		return
	}

	inst, err := Decode(line)
	if err != nil {
		err = &ErrDecode{Pc: cpu.Pc, Line: line, Err: err}
		return
	}

	err = cpu.Execute(inst)
	running = err == nil

	return
}

// Run steps the machine until it halts, and leaves the final register
// values in place for inspection. A decode failure or a register
// overflow aborts the run.
func (cpu *Cpu) Run() (err error) {
	running := true
	for running && err == nil {
		running, err = cpu.Step()
	}

	return
}

// Execute applies a single decoded instruction and advances control
// flow. On failure no register and no program counter is mutated.
func (cpu *Cpu) Execute(inst Instruction) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrInstruction(inst), err)
		}
	}()

	if cpu.Verbose {
		log.Printf("%3d: %v", cpu.Pc, inst)
	}

	next_pc := cpu.Pc + 1

	switch inst.Op {
	case OP_HLF:
		// Integer division, truncating toward zero.
		cpu.Register[inst.Reg] /= 2
	case OP_TPL:
		val := cpu.Register[inst.Reg]
		if val > math.MaxUint64/3 {
			err = ErrOverflow
			return
		}
		cpu.Register[inst.Reg] = val * 3
	case OP_INC:
		if cpu.Register[inst.Reg] == math.MaxUint64 {
			err = ErrOverflow
			return
		}
		cpu.Register[inst.Reg] += 1
	case OP_JMP:
		// The new pc is validated on the next fetch, not eagerly.
		next_pc = cpu.Pc + inst.Offset
	case OP_JIE:
		if cpu.Register[inst.Reg]%2 == 0 {
			next_pc = cpu.Pc + inst.Offset
		}
	case OP_JIO:
		if cpu.Register[inst.Reg] == 1 {
			next_pc = cpu.Pc + inst.Offset
		}
	default:
		err = ErrOpcodeInvalid
		return
	}

	cpu.Pc = next_pc
	cpu.Steps += 1

	return
}
