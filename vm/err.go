package vm

import (
	"github.com/ezrec/hackvm/translate"
)

var f = translate.From

var (
	// Parser errors
	ErrCommandInvalid = translate.Error("command invalid")
	ErrSegmentInvalid = translate.Error("segment invalid")
	ErrArgsMissing    = translate.Error("arguments missing")
	ErrArgsExtra      = translate.Error("excessive arguments")
	ErrIndexRange     = translate.Error("index out of range")

	// Code generation errors
	ErrOperatorInvalid = translate.Error("operator invalid")
	ErrSegmentReadOnly = translate.Error("segment not writable")
	ErrUnitMissing     = translate.Error("unit name missing")
)

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseIndex string

func (err ErrParseIndex) Error() string {
	return f("'%v' is not an index", string(err))
}

type ErrUnitInvalid string

func (err ErrUnitInvalid) Error() string {
	return f("'%v' is not a valid unit", string(err))
}

// ErrCommand reports a command the code writer refused to translate.
type ErrCommand struct {
	Command Command
	Err     error
}

func (err ErrCommand) Error() string {
	return f("%v: %v", err.Command.String(), err.Err)
}

func (err ErrCommand) Unwrap() error {
	return err.Err
}
