// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package vm

import (
	"io"
	"log"
)

// Translator translates VM translation units into a single assembly output.
// Comparison labels stay unique across all units written by one Translator.
type Translator struct {
	Verbose bool // If set, verbosely logs the translation.
	*CodeWriter

	// If set, called with each statement just before its assembly is written.
	Trace func(unit string, stmt Statement)
}

// NewTranslator creates a translator emitting to output.
func NewTranslator(output io.Writer) (tr *Translator) {
	tr = &Translator{
		CodeWriter: NewCodeWriter(output),
	}

	return
}

// Translate translates one unit. The whole unit is parsed before any
// assembly is emitted, so a malformed unit writes nothing.
func (tr *Translator) Translate(unit string, input io.Reader) (err error) {
	parser := &Parser{Verbose: tr.Verbose}

	stmts, err := parser.Parse(input)
	if err != nil {
		return
	}

	err = tr.SetUnit(unit)
	if err != nil {
		return
	}

	for _, stmt := range stmts {
		if tr.Verbose {
			log.Printf("%v:%d: %v", unit, stmt.LineNo, stmt.Command)
		}

		if tr.Trace != nil {
			tr.Trace(unit, stmt)
		}

		err = tr.Write(stmt.Command)
		if err != nil {
			err = &ErrSyntax{LineNo: stmt.LineNo, Line: stmt.Line, Err: err}
			return
		}
	}

	return
}
