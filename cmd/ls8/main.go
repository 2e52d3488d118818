// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/ezrec/ls8/emulator"
)

func main() {
	var assemble string
	var listing string
	var save string
	var output string
	var hz int
	var verbose bool

	defines := map[string]string{}

	flag.StringVar(&assemble, "a", "", ".asm file to assemble")
	flag.StringVar(&listing, "l", "", ".ls8 listing file to load")
	flag.StringVar(&save, "s", "", "Save listing to file, do not execute")
	flag.StringVar(&output, "o", "-", "Console output")
	flag.IntVar(&hz, "hz", 0, "Clock rate in Hz, 0 to free run")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Func("D", "Predefine NAME=VALUE for the assembler", func(define string) error {
		name, value, ok := strings.Cut(define, "=")
		if !ok {
			value = "1"
		}
		defines[name] = value
		return nil
	})

	flag.Parse()

	if flag.NArg() != 0 {
		atexit.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if (len(assemble) == 0) == (len(listing) == 0) {
		atexit.Fatalf("%v: exactly one of -a or -l is required", os.Args[0])
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	// Assemble a new program.
	if len(assemble) != 0 {
		inf, err := os.Open(assemble)
		if err != nil {
			atexit.Fatalf("%v: %v", assemble, err)
		}
		defer inf.Close()

		asm := emu.NewAssembler()
		for name, value := range defines {
			asm.Predefine(name, value)
		}

		emu.Program, err = asm.Parse(inf)
		if err != nil {
			atexit.Fatalf("%v: %v", assemble, err)
		}
		emu.Rom.Data = emu.Program.Binary()
	}

	// Load a listing.
	if len(listing) != 0 {
		inf, err := os.Open(listing)
		if err != nil {
			atexit.Fatalf("%v: %v", listing, err)
		}
		defer inf.Close()

		err = emu.Rom.Unmarshal(inf)
		if err != nil {
			atexit.Fatalf("%v: %v", listing, err)
		}
	}

	if len(save) != 0 {
		ouf, err := os.Create(save)
		if err != nil {
			atexit.Fatalf("%v: %v", save, err)
		}
		err = emu.Rom.Marshal(ouf)
		if err == nil {
			err = ouf.Close()
		}
		if err != nil {
			atexit.Fatalf("%v: %v", save, err)
		}
		atexit.Exit(0)
	}

	if output == "-" {
		emu.Console.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			atexit.Fatalf("%v: %v", output, err)
		}
		atexit.Register(func() { ouf.Close() })
		emu.Console.Output = ouf
	}

	err := emu.Reset()
	if err != nil {
		atexit.Fatal(err)
	}

	var clock emulator.Clock = emulator.FreeRun{}
	if hz > 0 {
		ticker := emulator.NewTicker(hz)
		atexit.Register(ticker.Stop)
		clock = ticker
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = emu.Run(ctx, clock)
	if err != nil {
		atexit.Fatal(err)
	}

	if verbose {
		log.Printf("%v: halted after %v ticks\n%v", os.Args[0], emu.Ticks, emu.Cpu)
	}

	atexit.Exit(0)
}
