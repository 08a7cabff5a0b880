// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/hackvm/vm"
)

// Script runs a starlark test script against the emulator.
//
// The script sees the pointer cells (SP, LCL, ARG, THIS, THAT), TEMP and
// STACK as constants, and these builtins:
//
//	peek(addr)         RAM[addr]
//	poke(addr, value)  RAM[addr] = value
//	run(limit=...)     run until done, or limit ticks
//	reset()            clear RAM and restart the program
//	stack()            list of the stack cells, bottom first
//	ticks()            ticks since reset
//
// Failing checks use starlark's fail() builtin.
func (emu *Emulator) Script(filename string, src any) (err error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", filename, msg)
		},
	}

	pred := starlark.StringDict{
		"TEMP":  starlark.MakeInt(vm.TEMP_BASE),
		"STACK": starlark.MakeInt(STACK_BASE),
		"peek":  starlark.NewBuiltin("peek", emu.starPeek),
		"poke":  starlark.NewBuiltin("poke", emu.starPoke),
		"run":   starlark.NewBuiltin("run", emu.starRun),
		"reset": starlark.NewBuiltin("reset", emu.starReset),
		"stack": starlark.NewBuiltin("stack", emu.starStack),
		"ticks": starlark.NewBuiltin("ticks", emu.starTicks),
	}
	for n, name := range pointerNames {
		pred[name] = starlark.MakeInt(n)
	}

	opts := syntax.FileOptions{
		TopLevelControl: true,
		GlobalReassign:  true,
		While:           true,
	}
	_, err = starlark.ExecFileOptions(&opts, thread, filename, src, pred)
	return
}

func (emu *Emulator) starPeek(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var addr int
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr)
	if err != nil {
		return nil, err
	}

	value, err := emu.Peek(addr)
	if err != nil {
		return nil, err
	}

	return starlark.MakeInt(int(value)), nil
}

func (emu *Emulator) starPoke(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var addr, value int
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr, "value", &value)
	if err != nil {
		return nil, err
	}

	if value < -0x8000 || value > 0xffff {
		return nil, ErrValueRange
	}

	err = emu.Poke(addr, int16(uint16(value)))
	if err != nil {
		return nil, err
	}

	return starlark.None, nil
}

func (emu *Emulator) starRun(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	limit := TICK_LIMIT
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "limit?", &limit)
	if err != nil {
		return nil, err
	}

	err = emu.Run(limit)
	if err != nil {
		return nil, err
	}

	return starlark.MakeInt(emu.Ticks()), nil
}

func (emu *Emulator) starReset(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	err := starlark.UnpackArgs(b.Name(), args, kwargs)
	if err != nil {
		return nil, err
	}

	err = emu.Reset()
	if err != nil {
		return nil, err
	}

	return starlark.None, nil
}

func (emu *Emulator) starStack(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	err := starlark.UnpackArgs(b.Name(), args, kwargs)
	if err != nil {
		return nil, err
	}

	var values []starlark.Value
	for _, value := range emu.Stack() {
		values = append(values, starlark.MakeInt(int(value)))
	}

	return starlark.NewList(values), nil
}

func (emu *Emulator) starTicks(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	err := starlark.UnpackArgs(b.Name(), args, kwargs)
	if err != nil {
		return nil, err
	}

	return starlark.MakeInt(emu.Ticks()), nil
}
