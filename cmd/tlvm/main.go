// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/tlvm/cpu"
	"github.com/ezrec/tlvm/emulator"
	"github.com/ezrec/tlvm/rom"
)

func main() {
	var rega uint64
	var regb uint64
	var limit int
	var verbose bool

	flag.Uint64Var(&rega, "a", 0, "Initial value of register a")
	flag.Uint64Var(&regb, "b", 0, "Initial value of register b")
	flag.IntVar(&limit, "n", 0, "Step limit, 0 for unlimited")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: expected one program file, got: %v", os.Args[0], flag.Args())
	}

	name := flag.Arg(0)

	var input io.Reader = os.Stdin
	if name != "-" {
		inf, err := os.Open(name)
		if err != nil {
			log.Fatalf("%v: %v", name, err)
		}
		defer inf.Close()
		input = inf
	}

	ld := &rom.Loader{Verbose: verbose}
	r, err := ld.Parse(input)
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}

	emu := emulator.NewEmulator(r)
	emu.Verbose = verbose
	emu.MaxSteps = limit

	emu.Reset()
	emu.Register[cpu.REG_A] = rega
	emu.Register[cpu.REG_B] = regb

	err = emu.Run()
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}

	for reg, val := range emu.Registers() {
		fmt.Printf("%v: %d\n", reg, val)
	}
}
