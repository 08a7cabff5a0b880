package hack

import (
	"github.com/ezrec/hackvm/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrAddressRange = translate.Error("address out of range")
	ErrPcRange      = translate.Error("pc out of range")
	ErrRomFull      = translate.Error("rom full")

	// Assembler errors
	ErrLabelDuplicate = translate.Error("label duplicated")
	ErrSymbolInvalid  = translate.Error("symbol invalid")
	ErrCompInvalid    = translate.Error("computation invalid")
	ErrDestInvalid    = translate.Error("destination invalid")
	ErrJumpInvalid    = translate.Error("jump invalid")
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

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
