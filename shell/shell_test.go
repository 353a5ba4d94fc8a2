package shell

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/yancode/yan"
)

func TestEval(t *testing.T) {
	assert := assert.New(t)

	sh := &Shell{}

	table := [](struct {
		line string
		out  string
	}){
		{"", ""},
		{"   ", ""},
		{"IMM a = 0x5", "05 04 02"},
		{"  SYS open -> d ", "10 02 20"},
		{"05 04 02", "IMM a = 0x5"},
		{"050402", "IMM a = 0x5"},
		{"00 01 00", "JMP * NONE"},
	}

	for _, entry := range table {
		out, err := sh.Eval(entry.line)
		assert.NoError(err, entry.line)
		assert.Equal(entry.out, out, entry.line)
	}
}

func TestEvalErrors(t *testing.T) {
	assert := assert.New(t)

	sh := &Shell{}

	table := [](struct {
		line string
		err  error
	}){
		{"NOP", yan.ErrUnknownMnemonic},
		{"IMM a 5", yan.ErrLineFormat},
		{"IMM q = 5", yan.ErrInvalidToken},
		{"00 ff 00", yan.ErrUnknownOpcode},
		{"05 04 ff", yan.ErrInvalidCode},
		{":", ErrCommandSyntax},
		{":variant", ErrCommandSyntax},
		{":variant z", yan.ErrVariantUnknown},
		{":dance", ErrCommandUnknown},
		{":quit", ErrQuit},
		{":q", ErrQuit},
	}

	for _, entry := range table {
		_, err := sh.Eval(entry.line)
		assert.ErrorIs(err, entry.err, entry.line)
	}
}

func TestVariantCommand(t *testing.T) {
	assert := assert.New(t)

	sh := &Shell{}
	assert.Equal("yan85[a]> ", sh.Prompt())

	out, err := sh.Eval(":variant b")
	assert.NoError(err)
	assert.Equal("variant b", out)
	assert.Same(yan.VariantB, sh.Config)
	assert.Equal("yan85[b]> ", sh.Prompt())

	out, err = sh.Eval("IMM a = 0x5")
	assert.NoError(err)
	assert.Equal("05 04 40", out)
}

func TestInfoCommands(t *testing.T) {
	assert := assert.New(t)

	sh := &Shell{}

	out, err := sh.Eval(":symbols")
	assert.NoError(err)
	assert.Contains(out, "register: NONE=0x0 i=0x1 a=0x2 s=0x4 b=0x8 d=0x10 c=0x20 f=0x40")
	assert.Contains(out, "condition: *=0x0 E=0x1")

	out, err = sh.Eval(":help")
	assert.NoError(err)
	assert.Contains(out, "0x4 IMM {arg1} = {arg2}")
	assert.Contains(out, "0x10 STK POP {arg1}, PUSH {arg2}")
}

func TestWords(t *testing.T) {
	assert := assert.New(t)

	sh := &Shell{Config: yan.VariantB}

	words := slices.Collect(sh.Words())
	for _, word := range []string{"IMM", "SYS", "NONE", "read_code", "*", ":variant"} {
		assert.Contains(words, word)
	}
}
