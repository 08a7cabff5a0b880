// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bytes"
	"flag"
	"log"
	"os"

	"github.com/tebeka/atexit"

	"github.com/ezrec/hackvm/emulator"
	"github.com/ezrec/hackvm/hack"
	"github.com/ezrec/hackvm/translate"
	"github.com/ezrec/hackvm/vm"
)

func main() {
	var input string
	var output string
	var binary string
	var annotate bool
	var execute bool
	var limit int
	var script string
	var dump bool
	var lang string
	var verbose bool

	flag.StringVar(&input, "i", "", ".vm file, or directory of .vm files, to translate")
	flag.StringVar(&output, "o", "", ".asm output (default derived from input)")
	flag.StringVar(&binary, "b", "", ".hack output to assemble into")
	flag.BoolVar(&annotate, "a", false, "Annotate assembly with VM commands")
	flag.BoolVar(&execute, "x", false, "Execute the translation in the emulator")
	flag.IntVar(&limit, "t", emulator.TICK_LIMIT, "Emulator tick limit")
	flag.StringVar(&script, "s", "", "Starlark script to run against the emulator")
	flag.BoolVar(&dump, "d", false, "Dump emulator state when done")
	flag.StringVar(&lang, "l", "", "Message language")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if len(lang) != 0 {
		translate.SetLocale(lang)
	}

	if flag.NArg() != 0 {
		atexit.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(input) == 0 {
		atexit.Fatalf("%v: -i is required", os.Args[0])
	}

	sources, err := findSources(input)
	if err != nil {
		atexit.Fatalf("%v: %v", input, err)
	}

	if len(output) == 0 {
		output, err = outputPath(input, ASM_EXT)
		if err != nil {
			atexit.Fatalf("%v: %v", input, err)
		}
	}

	// Translate everything before touching the output, so a bad line
	// leaves no partial .asm behind.
	asm := &bytes.Buffer{}
	tr := vm.NewTranslator(asm)
	tr.Verbose = verbose
	tr.Annotate = annotate
	for _, src := range sources {
		err = tr.Translate(src.Unit, bytes.NewReader(src.Data))
		if err != nil {
			atexit.Fatalf("%v: %v", src.Path, err)
		}
	}

	writeFile(output, asm.Bytes())

	if len(binary) != 0 {
		assembler := &hack.Assembler{Verbose: verbose}
		prog, err := assembler.Parse(bytes.NewReader(asm.Bytes()))
		if err != nil {
			atexit.Fatalf("%v: %v", output, err)
		}
		hackText := &bytes.Buffer{}
		_, err = prog.WriteTo(hackText)
		if err != nil {
			atexit.Fatalf("%v: %v", binary, err)
		}
		writeFile(binary, hackText.Bytes())
	}

	if execute || len(script) != 0 {
		emu := emulator.NewEmulator()
		emu.Verbose = verbose

		var units []emulator.Source
		for _, src := range sources {
			units = append(units, emulator.Source{Unit: src.Unit, Input: bytes.NewReader(src.Data)})
		}
		err = emu.Load(units...)
		if err != nil {
			atexit.Fatalf("%v: %v", input, err)
		}

		if len(script) != 0 {
			err = emu.Script(script, nil)
			if err != nil {
				atexit.Fatalf("%v: %v", script, err)
			}
		} else {
			err = emu.Run(limit)
			if err != nil {
				atexit.Fatalf("%v: %v", input, err)
			}
		}

		if dump {
			err = emu.Dump(os.Stdout)
			if err != nil {
				atexit.Fatal(err)
			}
		}
	}

	atexit.Exit(0)
}

// writeFile writes a whole output file, removing it again if the program
// exits before the write completes.
func writeFile(path string, data []byte) {
	complete := false
	atexit.Register(func() {
		if !complete {
			os.Remove(path)
		}
	})

	err := os.WriteFile(path, data, 0o644)
	if err != nil {
		atexit.Fatalf("%v: %v", path, err)
	}

	complete = true
	log.Printf("%v: %d bytes", path, len(data))
}
