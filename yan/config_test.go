package yan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validTables() (reg, sys, cond map[string]byte) {
	reg = map[string]byte{"a": 0x1, "i": 0x2, REG_NONE: 0x0}
	sys = map[string]byte{"exit": 0x1}
	cond = map[string]byte{COND_ALWAYS: 0x0, "E": 0x1}
	return
}

func TestNewConfig(t *testing.T) {
	assert := assert.New(t)

	reg, sys, cond := validTables()
	cfg, err := NewConfig("test", reg, sys, cond)
	assert.NoError(err)
	assert.Equal("test", cfg.String())

	code, ok := cfg.Code(KIND_REGISTER, "i")
	assert.True(ok)
	assert.Equal(byte(0x2), code)

	name, ok := cfg.Symbol(KIND_CONDITION, 0x1)
	assert.True(ok)
	assert.Equal("E", name)

	_, ok = cfg.Code(KIND_VALUE, "i")
	assert.False(ok)

	// Tables are copied.
	reg["b"] = 0x4
	_, ok = cfg.Code(KIND_REGISTER, "b")
	assert.False(ok)
}

func TestNewConfigInvalid(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		modify func(reg, sys, cond map[string]byte) (map[string]byte, map[string]byte, map[string]byte)
	}){
		{"missing NONE", func(reg, sys, cond map[string]byte) (map[string]byte, map[string]byte, map[string]byte) {
			delete(reg, REG_NONE)
			return reg, sys, cond
		}},
		{"NONE not zero", func(reg, sys, cond map[string]byte) (map[string]byte, map[string]byte, map[string]byte) {
			reg[REG_NONE] = 0x80
			return reg, sys, cond
		}},
		{"missing wildcard", func(reg, sys, cond map[string]byte) (map[string]byte, map[string]byte, map[string]byte) {
			delete(cond, COND_ALWAYS)
			return reg, sys, cond
		}},
		{"shared code", func(reg, sys, cond map[string]byte) (map[string]byte, map[string]byte, map[string]byte) {
			reg["b"] = 0x1
			return reg, sys, cond
		}},
		{"empty syscalls", func(reg, sys, cond map[string]byte) (map[string]byte, map[string]byte, map[string]byte) {
			return reg, nil, cond
		}},
		{"name with space", func(reg, sys, cond map[string]byte) (map[string]byte, map[string]byte, map[string]byte) {
			sys["read code"] = 0x2
			return reg, sys, cond
		}},
		{"empty name", func(reg, sys, cond map[string]byte) (map[string]byte, map[string]byte, map[string]byte) {
			cond[""] = 0x2
			return reg, sys, cond
		}},
	}

	for _, entry := range table {
		reg, sys, cond := entry.modify(validTables())
		cfg, err := NewConfig(entry.name, reg, sys, cond)
		assert.ErrorIs(err, ErrConfigInvalid, entry.name)
		assert.Nil(cfg, entry.name)
	}

	assert.Panics(func() { MustConfig("bad", nil, nil, nil) })
}

func TestVariants(t *testing.T) {
	assert := assert.New(t)

	for _, cfg := range Variants() {
		for _, kind := range []Kind{KIND_REGISTER, KIND_SYSCALL, KIND_CONDITION} {
			count := 0
			last := -1
			for name, code := range cfg.Symbols(kind) {
				count++
				assert.Greater(int(code), last, "%v %v in code order", cfg.Name, kind)
				last = int(code)

				// Tables are exact inverses.
				back, ok := cfg.Code(kind, name)
				assert.True(ok)
				assert.Equal(code, back)
			}
			assert.Equal(len(VariantA.tables[kind].code), count, "%v %v has every symbol", cfg.Name, kind)
		}

		for _, kind := range []Kind{KIND_REGISTER, KIND_SYSCALL, KIND_CONDITION} {
			_, ok := cfg.Symbol(kind, 0xff)
			assert.False(ok, "%v %v 0xff", cfg.Name, kind)
		}
	}

	cfg, err := LookupVariant("a")
	assert.NoError(err)
	assert.Same(VariantA, cfg)

	cfg, err = LookupVariant("B")
	assert.NoError(err)
	assert.Same(VariantB, cfg)

	_, err = LookupVariant("c")
	assert.ErrorIs(err, ErrVariantUnknown)
}

func TestSymbolsStop(t *testing.T) {
	assert := assert.New(t)

	var names []string
	for name := range VariantA.Symbols(KIND_REGISTER) {
		names = append(names, name)
		if len(names) == 2 {
			break
		}
	}
	assert.Equal([]string{REG_NONE, REG_IP}, names)

	for range VariantA.Symbols(KIND_VALUE) {
		t.Fatal("raw values have no symbols")
	}
}
