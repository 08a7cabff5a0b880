// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ezrec/hackvm/vm"
)

// Pointer registers, in RAM order.
var pointerNames = []string{"SP", "LCL", "ARG", "THIS", "THAT"}

// Dump writes the pointer registers, temp segment and stack as tables.
func (emu *Emulator) Dump(w io.Writer) (err error) {
	ram := &emu.Cpu.Ram

	regTable := table.NewWriter()
	regTable.SetTitle(f("Pointers (tick %d)", emu.Ticks()))
	header := table.Row{}
	row := table.Row{}
	for n, name := range pointerNames {
		header = append(header, name)
		row = append(row, int16(ram[n]))
	}
	regTable.AppendHeader(header)
	regTable.AppendRow(row)

	tempTable := table.NewWriter()
	tempTable.SetTitle(f("Temp"))
	header = table.Row{}
	row = table.Row{}
	for n := range vm.TEMP_SIZE {
		header = append(header, n)
		row = append(row, int16(ram[vm.TEMP_BASE+n]))
	}
	tempTable.AppendHeader(header)
	tempTable.AppendRow(row)

	stackTable := table.NewWriter()
	stackTable.SetTitle(f("Stack"))
	stackTable.AppendHeader(table.Row{f("Address"), f("Value")})
	for n, value := range emu.Stack() {
		stackTable.AppendRow(table.Row{STACK_BASE + n, value})
	}

	for _, tw := range []table.Writer{regTable, tempTable, stackTable} {
		_, err = fmt.Fprintln(w, tw.Render())
		if err != nil {
			return
		}
	}

	return
}
