package vm

import (
	"bufio"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/hackvm/translate"
)

func TestParseLine(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line string
		cmd  Command
		ok   bool
	}){
		{"", Command{}, false},
		{"   \t ", Command{}, false},
		{"// just a comment", Command{}, false},
		{"add", MakeArithmetic(OP_ADD), true},
		{"sub", MakeArithmetic(OP_SUB), true},
		{"neg", MakeArithmetic(OP_NEG), true},
		{"eq", MakeArithmetic(OP_EQ), true},
		{"gt", MakeArithmetic(OP_GT), true},
		{"lt", MakeArithmetic(OP_LT), true},
		{"and", MakeArithmetic(OP_AND), true},
		{"or", MakeArithmetic(OP_OR), true},
		{"not", MakeArithmetic(OP_NOT), true},
		{"  not   // invert", MakeArithmetic(OP_NOT), true},
		{"push constant 7", MakePush(SEG_CONSTANT, 7), true},
		{"push constant 32767", MakePush(SEG_CONSTANT, 32767), true},
		{"push local 0", MakePush(SEG_LOCAL, 0), true},
		{"push argument 1", MakePush(SEG_ARGUMENT, 1), true},
		{"push static 3", MakePush(SEG_STATIC, 3), true},
		{"push this 2", MakePush(SEG_THIS, 2), true},
		{"push that 5", MakePush(SEG_THAT, 5), true},
		{"push pointer 1", MakePush(SEG_POINTER, 1), true},
		{"push temp 7", MakePush(SEG_TEMP, 7), true},
		{"pop local 2", MakePop(SEG_LOCAL, 2), true},
		{"pop\tthat\t6// six", MakePop(SEG_THAT, 6), true},
		{"pop pointer 0", MakePop(SEG_POINTER, 0), true},
		{"pop temp 0", MakePop(SEG_TEMP, 0), true},
		{"pop static 240", MakePop(SEG_STATIC, 240), true},
	}

	p := &Parser{}
	for _, entry := range table {
		cmd, ok, err := p.ParseLine(entry.line)
		assert.NoError(err, entry.line)
		assert.Equal(entry.ok, ok, entry.line)
		assert.Equal(entry.cmd, cmd, entry.line)
	}
}

func TestParseLineErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line string
		err  error
	}){
		{"push foo 3", ErrSegmentInvalid},
		{"push", ErrArgsMissing},
		{"push constant", ErrArgsMissing},
		{"push constant 1 2", ErrArgsExtra},
		{"add 1", ErrArgsExtra},
		{"jump", ErrCommandInvalid},
		{"PUSH constant 1", ErrCommandInvalid},
		{"label LOOP", ErrCommandInvalid},
		{"push constant 32768", ErrIndexRange},
		{"push constant 99999999999999999999999", ErrIndexRange},
		{"pop temp 8", ErrIndexRange},
		{"push pointer 2", ErrIndexRange},
		{"pop constant 0", ErrSegmentReadOnly},
	}

	p := &Parser{}
	for _, entry := range table {
		_, ok, err := p.ParseLine(entry.line)
		assert.False(ok, entry.line)
		assert.ErrorIs(err, entry.err, entry.line)
	}
}

func TestParseLineIndex(t *testing.T) {
	assert := assert.New(t)

	p := &Parser{}
	for _, word := range []string{"x", "-1", "+1", "0x10", "1.5"} {
		_, ok, err := p.ParseLine("push constant " + word)
		assert.False(ok, word)
		var index ErrParseIndex
		if assert.True(errors.As(err, &index), word) {
			assert.Equal(ErrParseIndex(word), index)
		}
	}
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"// Adds two constants",
		"",
		"push constant 7 // seven",
		"  push constant 8",
		"add",
	}

	p := &Parser{}
	stmts, err := p.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	expected := []Statement{
		{3, "push constant 7", MakePush(SEG_CONSTANT, 7)},
		{4, "push constant 8", MakePush(SEG_CONSTANT, 8)},
		{5, "add", MakeArithmetic(OP_ADD)},
	}
	assert.Equal(expected, stmts)
}

func TestParseError(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"push constant 1",
		"push foo 3 // bad",
		"add",
	}

	p := &Parser{}
	stmts, err := p.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.Nil(stmts)
	assert.ErrorIs(err, ErrSegmentInvalid)

	var syntax *ErrSyntax
	if assert.True(errors.As(err, &syntax)) {
		assert.Equal(2, syntax.LineNo)
		assert.Equal("push foo 3", syntax.Line)
	}
	assert.Contains(err.Error(), "push foo 3")
}

func TestCommandString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("add", MakeArithmetic(OP_ADD).String())
	assert.Equal("push constant 7", MakePush(SEG_CONSTANT, 7).String())
	assert.Equal("pop temp 3", MakePop(SEG_TEMP, 3).String())
	assert.Equal("Segment(12)", Segment(12).String())
	assert.Equal("Operator(-1)", Operator(-1).String())
}

func FuzzParseLine(f *testing.F) {
	f.Add("push constant 7")
	f.Add("pop local 2 // comment")
	f.Add("add")
	f.Add("push temp 9")
	f.Add("pop constant 1")
	f.Add("")

	f.Fuzz(func(t *testing.T, line string) {
		p := &Parser{}
		cmd, ok, err := p.ParseLine(line)
		if err != nil {
			assert.False(t, ok)
			return
		}
		if !ok {
			return
		}

		again, ok, err := p.ParseLine(cmd.String())
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, cmd, again)
	})
}

func TestParseErrorLocale(t *testing.T) {
	assert := assert.New(t)

	t.Cleanup(func() { translate.SetLocale() })

	p := &Parser{}
	_, err := p.Parse(strings.NewReader("push constant 1\npush foo 3\n"))
	assert.ErrorIs(err, ErrSegmentInvalid)

	// The language is chosen when the error is printed, not when it is made.
	translate.SetLocale("ja")
	assert.Equal("2 行目 'push foo 3' 不正なセグメント", err.Error())

	translate.SetLocale("en-US")
	assert.Equal("line 2 'push foo 3' segment invalid", err.Error())
}

func TestParseLineTooLong(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"push constant 1",
		"push constant 2",
		"// " + strings.Repeat("x", bufio.MaxScanTokenSize),
		"add",
	}

	p := &Parser{}
	stmts, err := p.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.Nil(stmts)
	assert.ErrorIs(err, bufio.ErrTooLong)

	var syntax *ErrSyntax
	if assert.True(errors.As(err, &syntax)) {
		assert.Equal(3, syntax.LineNo)
		assert.Equal("", syntax.Line)
	}
}
