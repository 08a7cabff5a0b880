package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		seg   Segment
		index int
		addr  Address
		text  string
	}){
		{SEG_CONSTANT, 0, Address{ADDR_IMMEDIATE, "", 0}, "#0"},
		{SEG_CONSTANT, 32767, Address{ADDR_IMMEDIATE, "", 32767}, "#32767"},
		{SEG_LOCAL, 2, Address{ADDR_INDIRECT, "LCL", 2}, "RAM[LCL]+2"},
		{SEG_ARGUMENT, 0, Address{ADDR_INDIRECT, "ARG", 0}, "RAM[ARG]+0"},
		{SEG_THIS, 6, Address{ADDR_INDIRECT, "THIS", 6}, "RAM[THIS]+6"},
		{SEG_THAT, 5, Address{ADDR_INDIRECT, "THAT", 5}, "RAM[THAT]+5"},
		{SEG_POINTER, 0, Address{ADDR_DIRECT, "THIS", 0}, "THIS"},
		{SEG_POINTER, 1, Address{ADDR_DIRECT, "THAT", 0}, "THAT"},
		{SEG_TEMP, 0, Address{ADDR_DIRECT, "5", 0}, "5"},
		{SEG_TEMP, 7, Address{ADDR_DIRECT, "12", 0}, "12"},
		{SEG_STATIC, 3, Address{ADDR_DIRECT, "Main.3", 0}, "Main.3"},
	}

	for _, entry := range table {
		addr, err := Resolve(entry.seg, entry.index, "Main")
		assert.NoError(err, entry.text)
		assert.Equal(entry.addr, addr, entry.text)
		assert.Equal(entry.text, addr.String())
		assert.Equal(entry.seg != SEG_CONSTANT, addr.Writable(), entry.text)
	}
}

func TestResolveStatic(t *testing.T) {
	assert := assert.New(t)

	a1, err := Resolve(SEG_STATIC, 3, "Foo")
	assert.NoError(err)
	a2, err := Resolve(SEG_STATIC, 3, "Foo")
	assert.NoError(err)
	b, err := Resolve(SEG_STATIC, 3, "Bar")
	assert.NoError(err)
	c, err := Resolve(SEG_STATIC, 4, "Foo")
	assert.NoError(err)

	assert.Equal(a1, a2)
	assert.NotEqual(a1.Symbol, b.Symbol)
	assert.NotEqual(a1.Symbol, c.Symbol)

	_, err = Resolve(SEG_STATIC, 3, "")
	assert.ErrorIs(err, ErrUnitMissing)
}

func TestResolveErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		seg   Segment
		index int
		err   error
	}){
		{SEG_CONSTANT, -1, ErrIndexRange},
		{SEG_CONSTANT, 32768, ErrIndexRange},
		{SEG_LOCAL, 32768, ErrIndexRange},
		{SEG_POINTER, 2, ErrIndexRange},
		{SEG_TEMP, 8, ErrIndexRange},
		{Segment(99), 0, ErrSegmentInvalid},
	}

	for _, entry := range table {
		_, err := Resolve(entry.seg, entry.index, "Main")
		assert.ErrorIs(err, entry.err, "%v %d", entry.seg, entry.index)
	}
}
