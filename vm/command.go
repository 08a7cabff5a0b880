package vm

import (
	"fmt"
)

// Kind is the kind of a VM command.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	CMD_ARITHMETIC = Kind(0) // arithmetic
	CMD_PUSH       = Kind(1) // push
	CMD_POP        = Kind(2) // pop
)

// Operator is an arithmetic or logical VM operator.
type Operator int

//go:generate go tool stringer -linecomment -type=Operator
const (
	OP_ADD = Operator(0) // add
	OP_SUB = Operator(1) // sub
	OP_NEG = Operator(2) // neg
	OP_EQ  = Operator(3) // eq
	OP_GT  = Operator(4) // gt
	OP_LT  = Operator(5) // lt
	OP_AND = Operator(6) // and
	OP_OR  = Operator(7) // or
	OP_NOT = Operator(8) // not
)

// Segment is a VM memory segment.
type Segment int

//go:generate go tool stringer -linecomment -type=Segment
const (
	SEG_CONSTANT = Segment(0) // constant
	SEG_LOCAL    = Segment(1) // local
	SEG_ARGUMENT = Segment(2) // argument
	SEG_STATIC   = Segment(3) // static
	SEG_THIS     = Segment(4) // this
	SEG_THAT     = Segment(5) // that
	SEG_POINTER  = Segment(6) // pointer
	SEG_TEMP     = Segment(7) // temp
)

const (
	INDEX_MAX    = 0x7fff // Largest index, limited by the A-instruction.
	TEMP_BASE    = 5      // RAM address of temp 0.
	TEMP_SIZE    = 8      // Cells in the temp segment.
	POINTER_SIZE = 2      // Cells in the pointer segment.
)

// Unary returns true for operators taking a single operand.
func (op Operator) Unary() bool {
	return op == OP_NEG || op == OP_NOT
}

// Compare returns true for the comparison operators.
func (op Operator) Compare() bool {
	return op == OP_EQ || op == OP_GT || op == OP_LT
}

// Size returns the number of cells in a fixed size segment, or 0 if the
// segment is only bounded by INDEX_MAX.
func (seg Segment) Size() int {
	switch seg {
	case SEG_POINTER:
		return POINTER_SIZE
	case SEG_TEMP:
		return TEMP_SIZE
	}

	return 0
}

// Writable returns true if the segment may be the target of a pop.
func (seg Segment) Writable() bool {
	return seg != SEG_CONSTANT
}

// Command is one parsed VM instruction.
// Operator is only meaningful for CMD_ARITHMETIC, Segment and Index
// only for CMD_PUSH and CMD_POP.
type Command struct {
	Kind     Kind
	Operator Operator
	Segment  Segment
	Index    int
}

// MakeArithmetic creates an arithmetic command.
func MakeArithmetic(op Operator) Command {
	return Command{Kind: CMD_ARITHMETIC, Operator: op}
}

// MakePush creates a push command.
func MakePush(seg Segment, index int) Command {
	return Command{Kind: CMD_PUSH, Segment: seg, Index: index}
}

// MakePop creates a pop command.
func MakePop(seg Segment, index int) Command {
	return Command{Kind: CMD_POP, Segment: seg, Index: index}
}

// String returns the VM source form of the command.
func (cmd Command) String() string {
	if cmd.Kind == CMD_ARITHMETIC {
		return cmd.Operator.String()
	}

	return fmt.Sprintf("%v %v %d", cmd.Kind, cmd.Segment, cmd.Index)
}
