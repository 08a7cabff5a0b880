package hack

import (
	"fmt"
	"strings"
)

// Code is a single Hack instruction word.
type Code uint16

const (
	CODE_C_MASK = Code(0b111 << 13) // Set on all C-instructions.
	CODE_A_MASK = Code(0x7fff)      // Value bits of an A-instruction.
	VALUE_MAX   = 0x7fff            // Largest A-instruction value.
)

// CodeDest is the destination bit set of a C-instruction.
type CodeDest uint16

const (
	DEST_M = CodeDest(1 << 0)
	DEST_D = CodeDest(1 << 1)
	DEST_A = CodeDest(1 << 2)
)

// CodeJump is the jump condition of a C-instruction.
type CodeJump uint16

//go:generate go tool stringer -linecomment -type=CodeJump
const (
	JUMP_NONE = CodeJump(0) // null
	JUMP_JGT  = CodeJump(1) // JGT
	JUMP_JEQ  = CodeJump(2) // JEQ
	JUMP_JGE  = CodeJump(3) // JGE
	JUMP_JLT  = CodeJump(4) // JLT
	JUMP_JNE  = CodeJump(5) // JNE
	JUMP_JLE  = CodeJump(6) // JLE
	JUMP_JMP  = CodeJump(7) // JMP
)

// ALU control bits of a computation, below the 'a' (use M) bit.
const (
	ALU_ZX = uint16(1 << 5)
	ALU_NX = uint16(1 << 4)
	ALU_ZY = uint16(1 << 3)
	ALU_NY = uint16(1 << 2)
	ALU_F  = uint16(1 << 1)
	ALU_NO = uint16(1 << 0)
	ALU_M  = uint16(1 << 6)
)

// compTable lists the canonical computations, in a+zx,nx,zy,ny,f,no order.
var compTable = []struct {
	mnemonic string
	bits     uint16
}{
	{"0", 0b0101010},
	{"1", 0b0111111},
	{"-1", 0b0111010},
	{"D", 0b0001100},
	{"A", 0b0110000},
	{"!D", 0b0001101},
	{"!A", 0b0110001},
	{"-D", 0b0001111},
	{"-A", 0b0110011},
	{"D+1", 0b0011111},
	{"A+1", 0b0110111},
	{"D-1", 0b0001110},
	{"A-1", 0b0110010},
	{"D+A", 0b0000010},
	{"D-A", 0b0010011},
	{"A-D", 0b0000111},
	{"D&A", 0b0000000},
	{"D|A", 0b0010101},
	{"M", 0b1110000},
	{"!M", 0b1110001},
	{"-M", 0b1110011},
	{"M+1", 0b1110111},
	{"M-1", 0b1110010},
	{"D+M", 0b1000010},
	{"D-M", 0b1010011},
	{"M-D", 0b1000111},
	{"D&M", 0b1000000},
	{"D|M", 0b1010101},
}

// compAlias maps commuted computations to their canonical form.
var compAlias = map[string]string{
	"1+D": "D+1",
	"1+A": "A+1",
	"1+M": "M+1",
	"A+D": "D+A",
	"M+D": "D+M",
	"A&D": "D&A",
	"M&D": "D&M",
	"A|D": "D|A",
	"M|D": "D|M",
}

var compMap = func() map[string]uint16 {
	comps := make(map[string]uint16, len(compTable)+len(compAlias))
	for _, comp := range compTable {
		comps[comp.mnemonic] = comp.bits
	}
	for alias, canonical := range compAlias {
		comps[alias] = comps[canonical]
	}
	return comps
}()

// jumpMap maps jump mnemonics.
var jumpMap = map[string]CodeJump{
	"JGT": JUMP_JGT,
	"JEQ": JUMP_JEQ,
	"JGE": JUMP_JGE,
	"JLT": JUMP_JLT,
	"JNE": JUMP_JNE,
	"JLE": JUMP_JLE,
	"JMP": JUMP_JMP,
}

// MakeCodeA creates an A-instruction loading value.
func MakeCodeA(value uint16) Code {
	return Code(value) & CODE_A_MASK
}

// MakeCodeC creates a C-instruction from its mnemonic fields.
// Empty dest or jump fields are omitted from the instruction.
func MakeCodeC(dest, comp, jump string) (code Code, err error) {
	bits, ok := compMap[comp]
	if !ok {
		err = ErrCompInvalid
		return
	}

	var d CodeDest
	for _, reg := range dest {
		var bit CodeDest
		switch reg {
		case 'A':
			bit = DEST_A
		case 'D':
			bit = DEST_D
		case 'M':
			bit = DEST_M
		default:
			err = ErrDestInvalid
			return
		}
		if d&bit != 0 {
			err = ErrDestInvalid
			return
		}
		d |= bit
	}

	j := JUMP_NONE
	if len(jump) != 0 {
		j, ok = jumpMap[jump]
		if !ok {
			err = ErrJumpInvalid
			return
		}
	}

	code = CODE_C_MASK | Code(bits)<<6 | Code(d)<<3 | Code(j)
	return
}

// IsA returns true if the code is an A-instruction.
func (code Code) IsA() bool {
	return code&0x8000 == 0
}

// Value returns the value loaded by an A-instruction.
func (code Code) Value() uint16 {
	return uint16(code & CODE_A_MASK)
}

// Comp returns the 7-bit computation of a C-instruction.
func (code Code) Comp() uint16 {
	return uint16(code>>6) & 0x7f
}

// Dest returns the destination set of a C-instruction.
func (code Code) Dest() CodeDest {
	return CodeDest(code>>3) & 0x7
}

// Jump returns the jump condition of a C-instruction.
func (code Code) Jump() CodeJump {
	return CodeJump(code) & 0x7
}

// String returns the dest set in AMD order.
func (d CodeDest) String() string {
	var sb strings.Builder
	if d&DEST_A != 0 {
		sb.WriteByte('A')
	}
	if d&DEST_M != 0 {
		sb.WriteByte('M')
	}
	if d&DEST_D != 0 {
		sb.WriteByte('D')
	}
	return sb.String()
}

// String returns the assembly language representation of this instruction.
func (code Code) String() (out string) {
	if code.IsA() {
		return fmt.Sprintf("@%d", code.Value())
	}

	comp := fmt.Sprintf("?%07b", code.Comp())
	for _, entry := range compTable {
		if entry.bits == code.Comp() {
			comp = entry.mnemonic
			break
		}
	}

	out = comp
	if dest := code.Dest(); dest != 0 {
		out = dest.String() + "=" + out
	}
	if jump := code.Jump(); jump != JUMP_NONE {
		out += ";" + jump.String()
	}

	return
}
