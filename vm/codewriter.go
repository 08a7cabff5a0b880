// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package vm

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/ezrec/hackvm/hack"
)

// CodeWriter emits the Hack assembly for VM commands.
type CodeWriter struct {
	Annotate bool // If set, each block is preceded by its VM command as a comment.

	output io.Writer
	unit   string // Translation unit, prefix of static symbols.
	labels int    // Comparisons translated so far.
}

// Scratch cell holding a destination address during a pop.
const scratch = "R13"

// Store D at the top of the stack, and grow the stack.
var pushD = []string{
	"@SP",
	"A=M",
	"M=D",
	"@SP",
	"M=M+1",
}

// Shrink the stack, and load the popped value into D.
var popD = []string{
	"@SP",
	"AM=M-1",
	"D=M",
}

// NewCodeWriter creates a code writer emitting to output.
func NewCodeWriter(output io.Writer) (cw *CodeWriter) {
	cw = &CodeWriter{
		output: output,
	}

	return
}

// SetUnit sets the translation unit name used for static symbols.
// The name must be a valid Hack symbol.
func (cw *CodeWriter) SetUnit(name string) (err error) {
	if !hack.IsSymbol(name) {
		err = ErrUnitInvalid(name)
		return
	}

	cw.unit = name
	return
}

// Unit returns the current translation unit name.
func (cw *CodeWriter) Unit() string {
	return cw.unit
}

// Labels returns the number of comparison label pairs generated.
func (cw *CodeWriter) Labels() int {
	return cw.labels
}

// Write emits the translation of a single command. Nothing is emitted for
// a command that can not be translated.
func (cw *CodeWriter) Write(cmd Command) (err error) {
	var lines []string

	defer func() {
		if err != nil {
			err = &ErrCommand{Command: cmd, Err: err}
		}
	}()

	switch cmd.Kind {
	case CMD_ARITHMETIC:
		lines, err = cw.arithmetic(cmd.Operator)
	case CMD_PUSH:
		lines, err = cw.push(cmd.Segment, cmd.Index)
	case CMD_POP:
		lines, err = cw.pop(cmd.Segment, cmd.Index)
	default:
		err = ErrCommandInvalid
	}
	if err != nil {
		return
	}

	if cw.Annotate {
		lines = append([]string{"// " + cmd.String()}, lines...)
	}

	_, err = io.WriteString(cw.output, strings.Join(lines, "\n")+"\n")
	return
}

// binary combines the top two stack cells into the lower one with op.
func binary(op string) []string {
	return []string{
		"@SP",
		"AM=M-1",
		"D=M",
		"A=A-1",
		op,
	}
}

// unary rewrites the top stack cell in place with op.
func unary(op string) []string {
	return []string{
		"@SP",
		"A=M-1",
		op,
	}
}

// compare replaces the top two stack cells with -1 if (left - right)
// satisfies jump, else 0.
func (cw *CodeWriter) compare(op Operator, jump hack.CodeJump) []string {
	n := cw.labels
	cw.labels++

	prefix := strings.ToUpper(op.String())
	isTrue := fmt.Sprintf("%v_TRUE_%d", prefix, n)
	isEnd := fmt.Sprintf("%v_END_%d", prefix, n)

	return []string{
		"@SP",
		"AM=M-1",
		"D=M",
		"A=A-1",
		"D=M-D",
		"@" + isTrue,
		"D;" + jump.String(),
		"@SP",
		"A=M-1",
		"M=0",
		"@" + isEnd,
		"0;JMP",
		"(" + isTrue + ")",
		"@SP",
		"A=M-1",
		"M=-1",
		"(" + isEnd + ")",
	}
}

// arithmetic translates an arithmetic or logical operator.
func (cw *CodeWriter) arithmetic(op Operator) (lines []string, err error) {
	switch op {
	case OP_ADD:
		lines = binary("M=D+M")
	case OP_SUB:
		lines = binary("M=M-D")
	case OP_AND:
		lines = binary("M=D&M")
	case OP_OR:
		lines = binary("M=D|M")
	case OP_NEG:
		lines = unary("M=-M")
	case OP_NOT:
		lines = unary("M=!M")
	case OP_EQ:
		lines = cw.compare(op, hack.JUMP_JEQ)
	case OP_GT:
		lines = cw.compare(op, hack.JUMP_JGT)
	case OP_LT:
		lines = cw.compare(op, hack.JUMP_JLT)
	default:
		err = ErrOperatorInvalid
	}

	return
}

// push translates a push from a segment cell.
func (cw *CodeWriter) push(seg Segment, index int) (lines []string, err error) {
	addr, err := Resolve(seg, index, cw.unit)
	if err != nil {
		return
	}

	switch addr.Mode {
	case ADDR_IMMEDIATE:
		lines = []string{
			"@" + strconv.Itoa(addr.Offset),
			"D=A",
		}
	case ADDR_DIRECT:
		lines = []string{
			"@" + addr.Symbol,
			"D=M",
		}
	case ADDR_INDIRECT:
		lines = []string{
			"@" + strconv.Itoa(addr.Offset),
			"D=A",
			"@" + addr.Symbol,
			"A=D+M",
			"D=M",
		}
	}

	lines = append(lines, pushD...)
	return
}

// pop translates a pop into a segment cell.
func (cw *CodeWriter) pop(seg Segment, index int) (lines []string, err error) {
	addr, err := Resolve(seg, index, cw.unit)
	if err != nil {
		return
	}

	if !addr.Writable() {
		err = ErrSegmentReadOnly
		return
	}

	switch addr.Mode {
	case ADDR_DIRECT:
		lines = slices.Concat(popD, []string{
			"@" + addr.Symbol,
			"M=D",
		})
	case ADDR_INDIRECT:
		// The destination is computed into the scratch cell before the
		// stack pointer moves, so D is free to carry the popped value.
		lines = slices.Concat([]string{
			"@" + strconv.Itoa(addr.Offset),
			"D=A",
			"@" + addr.Symbol,
			"D=D+M",
			"@" + scratch,
			"M=D",
		}, popD, []string{
			"@" + scratch,
			"A=M",
			"M=D",
		})
	}

	return
}
