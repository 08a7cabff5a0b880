package hack

import (
	"fmt"
	"iter"
	"regexp"
)

const (
	SCREEN        = 0x4000 // Base of the screen memory map.
	KBD           = 0x6000 // Keyboard memory map.
	VARIABLE_BASE = 16     // First RAM address allocated to variables.
)

// Virtual machine pointer registers.
var _pointer_symbols = map[string]int{
	"SP":   0,
	"LCL":  1,
	"ARG":  2,
	"THIS": 3,
	"THAT": 4,
}

// I/O memory maps.
var _io_symbols = map[string]int{
	"SCREEN": SCREEN,
	"KBD":    KBD,
}

// R0 through R15.
var _register_symbols = func() map[string]int {
	regs := make(map[string]int, 16)
	for n := range 16 {
		regs[fmt.Sprintf("R%d", n)] = n
	}
	return regs
}()

var symbolRe = regexp.MustCompile(`^[A-Za-z_.$:][A-Za-z0-9_.$:]*$`)

// IsSymbol returns true if name is a valid Hack symbol: letters, digits,
// '_', '.', '$' and ':', not starting with a digit.
func IsSymbol(name string) bool {
	return symbolRe.MatchString(name)
}

// Predefined returns an iterator over all of the predefined symbols.
func Predefined() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for _, symbols := range []map[string]int{_pointer_symbols, _register_symbols, _io_symbols} {
			for name, addr := range symbols {
				if !yield(name, addr) {
					return
				}
			}
		}
	}
}
