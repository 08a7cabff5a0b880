// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package hack

import (
	"bufio"
	"io"
	"log"
	"maps"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Assembler is a two pass symbolic assembler for the Hack computer.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	Symbol map[string]int // Map of symbols to ROM (labels) or RAM (variables) addresses.

	variable int // Next variable address.
}

// sourceLine is an instruction line waiting for the second pass.
type sourceLine struct {
	lineNo int
	text   string
}

// parenEval does compile-time $(...) evaluations against the symbol table.
func (asm *Assembler) parenEval(expr string) (value uint16, err error) {
	thread := starlark.Thread{Name: "hack"}
	opts := syntax.FileOptions{}
	pred := make(starlark.StringDict, len(asm.Symbol))
	for key, addr := range asm.Symbol {
		// Symbols with characters starlark can not name are skipped.
		if strings.ContainsAny(key, ".$:") {
			continue
		}
		pred[key] = starlark.MakeInt(addr)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 || st_int64 > VALUE_MAX {
		err = ErrParseExpression(expr)
		return
	}
	value = uint16(st_int64)
	return
}

// valueOf resolves the operand of an A-instruction, allocating a new
// variable for unknown symbols.
func (asm *Assembler) valueOf(word string) (value uint16, err error) {
	if strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")") {
		return asm.parenEval(word[2 : len(word)-1])
	}

	if len(word) > 0 && word[0] >= '0' && word[0] <= '9' {
		v64, perr := strconv.ParseUint(word, 10, 15)
		if perr != nil {
			err = ErrParseNumber(word)
			return
		}
		value = uint16(v64)
		return
	}

	if !IsSymbol(word) {
		err = ErrSymbolInvalid
		return
	}

	addr, ok := asm.Symbol[word]
	if !ok {
		addr = asm.variable
		asm.variable++
		asm.Symbol[word] = addr
		if asm.Verbose {
			log.Printf("hack: variable %v = %d", word, addr)
		}
	}
	if addr > VALUE_MAX {
		err = ErrAddressRange
		return
	}

	value = uint16(addr)
	return
}

// encode assembles a single instruction.
func (asm *Assembler) encode(text string) (code Code, err error) {
	if text[0] == '@' {
		var value uint16
		value, err = asm.valueOf(text[1:])
		if err != nil {
			return
		}
		code = MakeCodeA(value)
		return
	}

	var dest, jump string
	comp := text
	if n := strings.IndexByte(comp, '='); n >= 0 {
		dest, comp = comp[:n], comp[n+1:]
		if len(dest) == 0 {
			err = ErrDestInvalid
			return
		}
	}
	if n := strings.IndexByte(comp, ';'); n >= 0 {
		comp, jump = comp[:n], comp[n+1:]
		if len(jump) == 0 {
			err = ErrJumpInvalid
			return
		}
	}

	return MakeCodeC(dest, comp, jump)
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Symbol = maps.Collect(Predefined())
	asm.variable = VARIABLE_BASE

	// First pass: bind labels to ROM addresses.
	var pending []sourceLine
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = strings.Split(text, "//")[0]
		line = strings.Join(strings.Fields(line), "")
		if len(line) == 0 {
			continue
		}

		if line[0] == '(' {
			if !strings.HasSuffix(line, ")") {
				err = ErrSymbolInvalid
				return
			}
			label := line[1 : len(line)-1]
			if !IsSymbol(label) {
				err = ErrSymbolInvalid
				return
			}
			_, ok := asm.Symbol[label]
			if ok {
				err = ErrLabelDuplicate
				return
			}
			asm.Symbol[label] = len(pending)
			continue
		}

		pending = append(pending, sourceLine{lineNo: lineno, text: line})
	}
	err = scanner.Err()
	if err != nil {
		// The line that could not be read.
		lineno += 1
		line = ""
		return
	}

	if len(pending) > ROM_SIZE {
		err = ErrRomFull
		return
	}

	// Second pass: encode, allocating variables in order of appearance.
	prog = &Program{}
	for ip, src := range pending {
		lineno, line = src.lineNo, src.text

		var code Code
		code, err = asm.encode(src.text)
		if err != nil {
			prog = nil
			return
		}

		prog.Instructions = append(prog.Instructions, Instruction{
			LineNo: src.lineNo,
			Ip:     ip,
			Text:   src.text,
			Code:   code,
		})
	}

	return
}
