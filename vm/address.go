package vm

import (
	"fmt"
	"strconv"
)

// AddressMode is how a segment cell is reached.
type AddressMode int

//go:generate go tool stringer -linecomment -type=AddressMode
const (
	ADDR_IMMEDIATE = AddressMode(0) // immediate
	ADDR_DIRECT    = AddressMode(1) // direct
	ADDR_INDIRECT  = AddressMode(2) // indirect
)

// Address describes the cell named by a segment and index.
//
//   - ADDR_IMMEDIATE: no cell, the value is Offset.
//   - ADDR_DIRECT: the cell is the symbol (or number) Symbol.
//   - ADDR_INDIRECT: the cell is RAM[Symbol] + Offset.
type Address struct {
	Mode   AddressMode
	Symbol string
	Offset int
}

// Base pointer cell of each base-relative segment.
var baseMap = map[Segment]string{
	SEG_LOCAL:    "LCL",
	SEG_ARGUMENT: "ARG",
	SEG_THIS:     "THIS",
	SEG_THAT:     "THAT",
}

// Cells addressed by the pointer segment.
var pointerMap = [POINTER_SIZE]string{"THIS", "THAT"}

// Writable returns true if the address names a memory cell.
func (addr Address) Writable() bool {
	return addr.Mode != ADDR_IMMEDIATE
}

// String returns the address in a readable form, such as "RAM[LCL]+2".
func (addr Address) String() string {
	switch addr.Mode {
	case ADDR_IMMEDIATE:
		return fmt.Sprintf("#%d", addr.Offset)
	case ADDR_DIRECT:
		return addr.Symbol
	case ADDR_INDIRECT:
		return fmt.Sprintf("RAM[%v]+%d", addr.Symbol, addr.Offset)
	}

	return addr.Mode.String()
}

// Resolve maps a segment and index to its address. unit names the
// translation unit owning the static segment.
func Resolve(seg Segment, index int, unit string) (addr Address, err error) {
	if index < 0 || index > INDEX_MAX {
		err = ErrIndexRange
		return
	}

	if size := seg.Size(); size != 0 && index >= size {
		err = ErrIndexRange
		return
	}

	switch seg {
	case SEG_CONSTANT:
		addr = Address{Mode: ADDR_IMMEDIATE, Offset: index}
	case SEG_LOCAL, SEG_ARGUMENT, SEG_THIS, SEG_THAT:
		addr = Address{Mode: ADDR_INDIRECT, Symbol: baseMap[seg], Offset: index}
	case SEG_POINTER:
		addr = Address{Mode: ADDR_DIRECT, Symbol: pointerMap[index]}
	case SEG_TEMP:
		addr = Address{Mode: ADDR_DIRECT, Symbol: strconv.Itoa(TEMP_BASE + index)}
	case SEG_STATIC:
		if len(unit) == 0 {
			err = ErrUnitMissing
			return
		}
		addr = Address{Mode: ADDR_DIRECT, Symbol: fmt.Sprintf("%v.%d", unit, index)}
	default:
		err = ErrSegmentInvalid
	}

	return
}
