// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"bytes"
	"io"
	"sort"

	"github.com/ezrec/hackvm/hack"
	"github.com/ezrec/hackvm/vm"
)

const (
	STACK_BASE = 256     // Initial stack pointer.
	TICK_LIMIT = 1000000 // Default limit on ticks for Run.
)

// Source is one VM translation unit.
type Source struct {
	Unit  string    // Unit name, prefix of static symbols.
	Input io.Reader // VM source text.
}

// mark is the first assembly line of a translated VM statement.
type mark struct {
	asmLine int
	unit    string
	vm.Statement
}

// Emulator state. Hack CPU + the VM program it runs.
type Emulator struct {
	Verbose   bool          // If set, enables verbose logging.
	*hack.Cpu               // Reference to the CPU simulation.
	Program   *hack.Program // Reference to the currently running program listing.
	Assembly  []byte        // Assembly text of the program.

	marks []mark // VM statements, in assembly line order.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     hack.NewCpu(),
		Program: &hack.Program{},
	}

	return
}

// Load translates and assembles VM sources, then resets the emulator.
func (emu *Emulator) Load(sources ...Source) (err error) {
	var asm bytes.Buffer
	var marks []mark

	tr := vm.NewTranslator(&asm)
	tr.Verbose = emu.Verbose
	tr.Trace = func(unit string, stmt vm.Statement) {
		line := bytes.Count(asm.Bytes(), []byte("\n")) + 1
		marks = append(marks, mark{asmLine: line, unit: unit, Statement: stmt})
	}

	for _, src := range sources {
		err = tr.Translate(src.Unit, src.Input)
		if err != nil {
			err = &ErrUnit{Unit: src.Unit, Err: err}
			return
		}
	}

	assembler := &hack.Assembler{Verbose: emu.Verbose}
	prog, err := assembler.Parse(bytes.NewReader(asm.Bytes()))
	if err != nil {
		return
	}

	emu.Program = prog
	emu.Assembly = asm.Bytes()
	emu.marks = marks

	err = emu.Reset()
	return
}

// Reset clears RAM, loads the program into ROM, and sets up an empty stack.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	clear(emu.Cpu.Ram[:])

	err = emu.Cpu.Load(emu.Program.Binary())
	if err != nil {
		return
	}

	emu.Cpu.Ram[0] = STACK_BASE

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Statement returns the VM statement executing at the program counter.
func (emu *Emulator) Statement() (unit string, stmt vm.Statement, ok bool) {
	inst, ok := emu.Program.Debug(emu.Cpu.Pc)
	if !ok {
		return
	}

	n := sort.Search(len(emu.marks), func(i int) bool {
		return emu.marks[i].asmLine > inst.LineNo
	})
	if n == 0 {
		ok = false
		return
	}

	m := emu.marks[n-1]
	return m.unit, m.Statement, true
}

// LineNo returns the VM line number of the executing statement.
func (emu *Emulator) LineNo() int {
	_, stmt, ok := emu.Statement()
	if !ok {
		return 0
	}

	return stmt.LineNo
}

// Tick performs a single tick of the emulator. done is set once the
// program has run off the end of ROM.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	if emu.Cpu.Halted() {
		done = true
		return
	}

	unit, stmt, _ := emu.Statement()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Unit: unit, LineNo: stmt.LineNo, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = emu.Cpu.Halted()
	return
}

// Run ticks until the program is done, or limit ticks have elapsed.
func (emu *Emulator) Run(limit int) (err error) {
	for range limit {
		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}

	if !emu.Cpu.Halted() {
		err = ErrTickLimit(limit)
	}

	return
}

// Peek returns a RAM cell as a signed word.
func (emu *Emulator) Peek(addr int) (value int16, err error) {
	if addr < 0 || addr >= hack.RAM_SIZE {
		err = hack.ErrAddressRange
		return
	}

	value = int16(emu.Cpu.Ram[addr])
	return
}

// Poke sets a RAM cell.
func (emu *Emulator) Poke(addr int, value int16) (err error) {
	if addr < 0 || addr >= hack.RAM_SIZE {
		err = hack.ErrAddressRange
		return
	}

	emu.Cpu.Ram[addr] = uint16(value)
	return
}

// Stack returns the stack contents, bottom first.
func (emu *Emulator) Stack() (stack []int16) {
	sp := int(emu.Cpu.Ram[0])
	for addr := STACK_BASE; addr < sp && addr < hack.RAM_SIZE; addr++ {
		stack = append(stack, int16(emu.Cpu.Ram[addr]))
	}

	return
}
