package hack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeCodeC(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		dest, comp, jump string
		code             Code
		text             string
	}){
		{"D", "A", "", 0xEC10, "D=A"},
		{"D", "M", "", 0xFC10, "D=M"},
		{"M", "D", "", 0xE308, "M=D"},
		{"D", "D+A", "", 0xE090, "D=D+A"},
		{"M", "D+M", "", 0xF088, "M=D+M"},
		{"M", "M+D", "", 0xF088, "M=D+M"},
		{"AM", "M-1", "", 0xFCA8, "AM=M-1"},
		{"MA", "M-1", "", 0xFCA8, "AM=M-1"},
		{"", "0", "JMP", 0xEA87, "0;JMP"},
		{"", "D", "JGT", 0xE301, "D;JGT"},
		{"AMD", "-1", "JNE", 0xEEBD, "AMD=-1;JNE"},
	}

	for _, entry := range table {
		code, err := MakeCodeC(entry.dest, entry.comp, entry.jump)
		assert.NoError(err, entry.text)
		assert.Equal(entry.code, code, entry.text)
		assert.False(code.IsA(), entry.text)
		assert.Equal(entry.text, code.String())
	}
}

func TestMakeCodeCInvalid(t *testing.T) {
	assert := assert.New(t)

	_, err := MakeCodeC("X", "D", "")
	assert.ErrorIs(err, ErrDestInvalid)

	_, err = MakeCodeC("MM", "D", "")
	assert.ErrorIs(err, ErrDestInvalid)

	_, err = MakeCodeC("", "D+D", "")
	assert.ErrorIs(err, ErrCompInvalid)

	_, err = MakeCodeC("", "0", "JXX")
	assert.ErrorIs(err, ErrJumpInvalid)
}

func TestMakeCodeA(t *testing.T) {
	assert := assert.New(t)

	code := MakeCodeA(12345)
	assert.True(code.IsA())
	assert.Equal(uint16(12345), code.Value())
	assert.Equal("@12345", code.String())

	assert.Equal(Code(0x7fff), MakeCodeA(0xffff))
}

func TestCodeJumpString(t *testing.T) {
	assert := assert.New(t)

	for name, jump := range jumpMap {
		assert.Equal(name, jump.String())
	}
	assert.Equal("null", JUMP_NONE.String())
	assert.Equal("CodeJump(9)", CodeJump(9).String())
}
