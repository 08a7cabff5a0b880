// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package vm

import (
	"bufio"
	"errors"
	"io"
	"log"
	"strconv"
	"strings"
)

// Statement is a parsed command with its source location.
type Statement struct {
	LineNo int    // Line number, starting at 1.
	Line   string // Source text, comments and surrounding space removed.
	Command
}

// Parser converts lines of VM source into commands.
type Parser struct {
	Verbose bool // If set, verbosely logs the parser actions.
}

// opMap maps arithmetic and logical operator names.
var opMap = map[string]Operator{
	"add": OP_ADD,
	"sub": OP_SUB,
	"neg": OP_NEG,
	"eq":  OP_EQ,
	"gt":  OP_GT,
	"lt":  OP_LT,
	"and": OP_AND,
	"or":  OP_OR,
	"not": OP_NOT,
}

// segMap maps memory segment names.
var segMap = map[string]Segment{
	"constant": SEG_CONSTANT,
	"local":    SEG_LOCAL,
	"argument": SEG_ARGUMENT,
	"static":   SEG_STATIC,
	"this":     SEG_THIS,
	"that":     SEG_THAT,
	"pointer":  SEG_POINTER,
	"temp":     SEG_TEMP,
}

// kindMap maps the memory access command names.
var kindMap = map[string]Kind{
	"push": CMD_PUSH,
	"pop":  CMD_POP,
}

// stripComment removes a trailing // comment and surrounding space.
func stripComment(text string) string {
	if n := strings.Index(text, "//"); n >= 0 {
		text = text[:n]
	}

	return strings.TrimSpace(text)
}

// parseIndex parses a non-negative decimal segment index.
func parseIndex(word string) (index int, err error) {
	v64, err := strconv.ParseUint(word, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			err = ErrIndexRange
		} else {
			err = ErrParseIndex(word)
		}
		return
	}

	if v64 > INDEX_MAX {
		err = ErrIndexRange
		return
	}

	index = int(v64)
	return
}

// ParseLine parses a single line. If the line is blank or only a comment,
// ok is false.
func (p *Parser) ParseLine(text string) (cmd Command, ok bool, err error) {
	words := strings.Fields(stripComment(text))
	if len(words) == 0 {
		return
	}

	if op, is_op := opMap[words[0]]; is_op {
		if len(words) > 1 {
			err = ErrArgsExtra
			return
		}
		cmd = MakeArithmetic(op)
		ok = true
		return
	}

	kind, is_kind := kindMap[words[0]]
	if !is_kind {
		err = ErrCommandInvalid
		return
	}

	if len(words) < 3 {
		err = ErrArgsMissing
		return
	}
	if len(words) > 3 {
		err = ErrArgsExtra
		return
	}

	seg, is_seg := segMap[words[1]]
	if !is_seg {
		err = ErrSegmentInvalid
		return
	}

	index, err := parseIndex(words[2])
	if err != nil {
		return
	}

	if size := seg.Size(); size != 0 && index >= size {
		err = ErrIndexRange
		return
	}

	if kind == CMD_POP && !seg.Writable() {
		err = ErrSegmentReadOnly
		return
	}

	cmd = Command{Kind: kind, Segment: seg, Index: index}
	ok = true
	return
}

// Parse parses an input stream into statements. The first malformed line
// stops the parse, and is reported as an *ErrSyntax.
func (p *Parser) Parse(input io.Reader) (stmts []Statement, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			stmts = nil
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if p.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = stripComment(text)

		var cmd Command
		var ok bool
		cmd, ok, err = p.ParseLine(line)
		if err != nil {
			return
		}
		if !ok {
			continue
		}

		stmts = append(stmts, Statement{LineNo: lineno, Line: line, Command: cmd})
	}

	err = scanner.Err()
	if err != nil {
		// The line that could not be read.
		lineno += 1
		line = ""
	}

	return
}
