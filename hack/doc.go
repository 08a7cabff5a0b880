// Package hack implements the assembler and CPU for the Hack computer.
//
// The CPU has two 16-bit registers (A and D), a program counter, 32K words
// of instruction ROM and 32K words of data RAM. Instructions are either an
// A-instruction, loading a 15-bit value into A, or a C-instruction,
// computing an ALU function of D and A (or RAM[A]), storing the result in
// any of A, D and RAM[A], and optionally jumping to ROM[A].
//
// The assembler is a two pass symbolic assembler supporting labels,
// predefined registers, automatically allocated variables, and compile-time
// $(...) expression evaluation.
package hack
