// Package cpu implements the instruction decoder and execution engine
// for the tlvm machine.
//
// The machine consists of a program counter, two unsigned 64-bit
// registers (a and b), and a closed six-instruction set: hlf, tpl, inc,
// jmp, jie, and jio. Programs are held as raw text, one instruction per
// line, and decoded on every fetch. Execution halts when the program
// counter leaves the program bounds. Registers are fixed width; inc and
// tpl fail with ErrOverflow rather than wrapping.
package cpu
