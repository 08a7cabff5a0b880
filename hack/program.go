package hack

import (
	"bufio"
	"fmt"
	"io"
	"iter"
)

// Instruction is a line of assembled code with its source location.
type Instruction struct {
	LineNo int    // Source line number.
	Ip     int    // ROM address.
	Text   string // Source text, whitespace and comments removed.
	Code   Code   // Encoded instruction.
}

// Program is an assembled Hack program.
type Program struct {
	Instructions []Instruction
}

// Debug returns the instruction at a ROM address.
func (prog *Program) Debug(ip uint16) (inst Instruction, ok bool) {
	if int(ip) >= len(prog.Instructions) {
		return
	}

	return prog.Instructions[ip], true
}

// Codes returns an iterator over the ROM addresses and their codes.
func (prog *Program) Codes() iter.Seq2[uint16, Code] {
	return func(yield func(ip uint16, code Code) bool) {
		for _, inst := range prog.Instructions {
			if !yield(uint16(inst.Ip), inst.Code) {
				return
			}
		}
	}
}

// Binary returns the ROM image of the program.
func (prog *Program) Binary() (rom []Code) {
	rom = make([]Code, 0, len(prog.Instructions))
	for _, code := range prog.Codes() {
		rom = append(rom, code)
	}

	return
}

// WriteTo writes the program in .hack text format, one 16 digit binary
// word per line.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	bw := bufio.NewWriter(w)
	for _, code := range prog.Codes() {
		var c int
		c, err = fmt.Fprintf(bw, "%016b\n", uint16(code))
		n += int64(c)
		if err != nil {
			return
		}
	}

	err = bw.Flush()
	return
}
