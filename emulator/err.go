package emulator

import (
	"github.com/ezrec/hackvm/translate"
)

var f = translate.From

var (
	ErrValueRange = translate.Error("value out of range")
)

// ErrRuntime indicates the VM source location of a runtime error.
type ErrRuntime struct {
	Unit   string
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("%v:%d %v", err.Unit, err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrTickLimit indicates a run that did not finish within its tick limit.
type ErrTickLimit int

func (err ErrTickLimit) Error() string {
	return f("tick limit %d exceeded", int(err))
}

// ErrUnit indicates the translation unit that failed to load.
type ErrUnit struct {
	Unit string
	Err  error
}

func (err *ErrUnit) Error() string {
	return f("%v: %v", err.Unit, err.Err)
}

func (err *ErrUnit) Unwrap() error {
	return err.Err
}
