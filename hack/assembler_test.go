package hack

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assemble(t *testing.T, program []string) *Program {
	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(t, err)
	if err != nil {
		t.Fatal(err)
	}

	return prog
}

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Instructions))

	assert.Equal(0, asm.Symbol["SP"])
	assert.Equal(4, asm.Symbol["THAT"])
	assert.Equal(13, asm.Symbol["R13"])
	assert.Equal(SCREEN, asm.Symbol["SCREEN"])
	assert.Equal(KBD, asm.Symbol["KBD"])
}

func TestAssemblerAdd(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"// Computes R0 = 2 + 3",
		"",
		"@2",
		"D=A",
		"@3",
		"D = D + A // spaces are ignored",
		"@0",
		"M=D",
	}

	prog := assemble(t, program)

	expected := []Instruction{
		{3, 0, "@2", 0x0002},
		{4, 1, "D=A", 0xEC10},
		{5, 2, "@3", 0x0003},
		{6, 3, "D=D+A", 0xE090},
		{7, 4, "@0", 0x0000},
		{8, 5, "M=D", 0xE308},
	}
	assert.Equal(expected, prog.Instructions)
}

func TestAssemblerSymbols(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"@i",
		"M=1",
		"(LOOP)",
		"@j",
		"@LOOP",
		"0;JMP",
		"@i",
		"@SCREEN",
		"@R15",
		"@Foo.3",
		"(END)",
		"@END",
	}

	prog := assemble(t, program)

	values := []uint16{}
	for _, inst := range prog.Instructions {
		if inst.Code.IsA() {
			values = append(values, inst.Code.Value())
		}
	}

	assert.Equal([]uint16{16, 17, 2, 16, SCREEN, 15, 18, 9}, values)
}

func TestAssemblerExpression(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"@$(SCREEN + 32)",
		"@$(KBD - 1)",
		"@$(R13 * 2)",
	}

	prog := assemble(t, program)
	assert.Equal(3, len(prog.Instructions))
	assert.Equal(uint16(SCREEN+32), prog.Instructions[0].Code.Value())
	assert.Equal(uint16(KBD-1), prog.Instructions[1].Code.Value())
	assert.Equal(uint16(26), prog.Instructions[2].Code.Value())
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program []string
		lineno  int
		err     error
	}){
		{"label_dup", []string{"(A)", "@0", "(A)"}, 3, ErrLabelDuplicate},
		{"label_bad", []string{"(1A)"}, 1, ErrSymbolInvalid},
		{"label_open", []string{"(A"}, 1, ErrSymbolInvalid},
		{"symbol_bad", []string{"@0", "@a-b"}, 2, ErrSymbolInvalid},
		{"comp_bad", []string{"D=D*A"}, 1, ErrCompInvalid},
		{"dest_empty", []string{"=D"}, 1, ErrDestInvalid},
		{"jump_empty", []string{"D;"}, 1, ErrJumpInvalid},
		{"jump_bad", []string{"D;JUMP"}, 1, ErrJumpInvalid},
	}

	for _, entry := range table {
		asm := &Assembler{}
		prog, err := asm.Parse(strings.NewReader(strings.Join(entry.program, "\n")))
		assert.Nil(prog, entry.name)
		assert.ErrorIs(err, entry.err, entry.name)

		var syntax *ErrSyntax
		if assert.True(errors.As(err, &syntax), entry.name) {
			assert.Equal(entry.lineno, syntax.LineNo, entry.name)
		}
	}
}

func TestAssemblerLineTooLong(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"@1",
		"// " + strings.Repeat("x", bufio.MaxScanTokenSize),
		"D=A",
	}

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.Nil(prog)
	assert.ErrorIs(err, bufio.ErrTooLong)

	var syntax *ErrSyntax
	if assert.True(errors.As(err, &syntax)) {
		assert.Equal(2, syntax.LineNo)
		assert.Equal("", syntax.Line)
	}
}

func TestAssemblerNumber(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	_, err := asm.Parse(strings.NewReader("@32768"))
	var number ErrParseNumber
	assert.True(errors.As(err, &number))
	assert.Equal(ErrParseNumber("32768"), number)

	_, err = asm.Parse(strings.NewReader("@$(\"x\")"))
	var expr ErrParseExpression
	assert.True(errors.As(err, &expr))
}

func TestProgramWriteTo(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t, []string{"@2", "D=A", "0;JMP"})

	out := &bytes.Buffer{}
	n, err := prog.WriteTo(out)
	assert.NoError(err)
	assert.Equal(int64(out.Len()), n)
	assert.Equal("0000000000000010\n1110110000010000\n1110101010000111\n", out.String())

	assert.Equal([]Code{0x0002, 0xEC10, 0xEA87}, prog.Binary())

	inst, ok := prog.Debug(1)
	assert.True(ok)
	assert.Equal("D=A", inst.Text)

	_, ok = prog.Debug(3)
	assert.False(ok)
}
