package hack

import (
	"fmt"
	"log"
)

const (
	RAM_SIZE = 0x8000 // Words of data memory.
	ROM_SIZE = 0x8000 // Words of instruction memory.
)

// Cpu is the simulation context for the Hack CPU and its memories.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	A  uint16 // Address register.
	D  uint16 // Data register.
	Pc uint16 // Program counter.

	Ram [RAM_SIZE]uint16 // Data memory.
	Rom []Code           // Instruction memory.

	Ticks int // CPU ticks counter.
}

// NewCpu creates a new CPU with an empty ROM.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// Load replaces the ROM contents, and resets the CPU.
func (cpu *Cpu) Load(rom []Code) (err error) {
	if len(rom) > ROM_SIZE {
		err = ErrRomFull
		return
	}

	cpu.Rom = rom
	cpu.Reset()

	return
}

// Reset the CPU registers and tick counter. RAM is left untouched,
// matching the Hack reset line.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.A = 0
	cpu.D = 0
	cpu.Pc = 0
	cpu.Ticks = 0
}

// Halted returns true when the program counter has run off the end of ROM.
func (cpu *Cpu) Halted() bool {
	return int(cpu.Pc) >= len(cpu.Rom)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %04X\n", "pc", cpu.Pc)
	text += fmt.Sprintf("% 5s: %04X\n", "a", cpu.A)
	text += fmt.Sprintf("% 5s: %04X\n", "d", cpu.D)
	if int(cpu.A) < RAM_SIZE {
		text += fmt.Sprintf("% 5s: %04X\n", "m", cpu.Ram[cpu.A])
	} else {
		text += fmt.Sprintf("% 5s: ----\n", "m")
	}

	return
}

// Alu computes the Hack ALU function selected by the six control bits.
func Alu(control uint16, x, y uint16) (out uint16) {
	if control&ALU_ZX != 0 {
		x = 0
	}
	if control&ALU_NX != 0 {
		x = ^x
	}
	if control&ALU_ZY != 0 {
		y = 0
	}
	if control&ALU_NY != 0 {
		y = ^y
	}
	if control&ALU_F != 0 {
		out = x + y
	} else {
		out = x & y
	}
	if control&ALU_NO != 0 {
		out = ^out
	}

	return
}

// taken returns true if the jump condition holds for the ALU output.
func (jump CodeJump) taken(out uint16) bool {
	value := int16(out)
	switch {
	case value < 0:
		return jump&JUMP_JLT != 0
	case value == 0:
		return jump&JUMP_JEQ != 0
	default:
		return jump&JUMP_JGT != 0
	}
}

// Tick fetches and executes a single instruction.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted() {
		err = ErrPcRange
		return
	}

	code := cpu.Rom[cpu.Pc]
	if cpu.Verbose {
		log.Printf("cpu: %04X %v", cpu.Pc, code)
	}

	err = cpu.Execute(code)
	if err != nil {
		return
	}

	cpu.Ticks++

	return
}

// Execute a single instruction, updating the program counter.
func (cpu *Cpu) Execute(code Code) (err error) {
	if code.IsA() {
		cpu.A = code.Value()
		cpu.Pc++
		return
	}

	comp := code.Comp()
	dest := code.Dest()
	usesM := comp&ALU_M != 0 || dest&DEST_M != 0
	if usesM && int(cpu.A) >= RAM_SIZE {
		err = ErrAddressRange
		return
	}

	y := cpu.A
	if comp&ALU_M != 0 {
		y = cpu.Ram[cpu.A]
	}

	out := Alu(comp, cpu.D, y)

	addr := cpu.A
	if dest&DEST_M != 0 {
		cpu.Ram[addr] = out
	}
	if dest&DEST_D != 0 {
		cpu.D = out
	}
	if dest&DEST_A != 0 {
		cpu.A = out
	}

	if code.Jump().taken(out) {
		cpu.Pc = addr
	} else {
		cpu.Pc++
	}

	return
}
