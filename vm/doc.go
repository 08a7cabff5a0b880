// Package vm translates stack machine VM commands into Hack assembly.
//
// A Parser turns each line of VM source into a Command. A CodeWriter turns
// each Command into a block of Hack assembly, tracking the translation
// unit name (for static variables) and a label counter (for comparisons).
// A Translator drives both over one or more translation units written to
// a single output.
//
// The stack pointer lives in RAM[SP] and always addresses the next free
// slot above the top of the stack.
package vm
