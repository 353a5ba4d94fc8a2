package yan

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
	"unicode"
)

const (
	REG_NONE    = "NONE" // Register wildcard, always code 0x0.
	REG_IP      = "i"    // Instruction pointer register.
	COND_ALWAYS = "*"    // Condition wildcard, always code 0x0.
)

// symbolTable is a pair of exactly inverse lookup tables.
type symbolTable struct {
	code map[string]byte
	name map[byte]string
}

// Config is a bitmask assignment of the register, syscall and condition
// symbols. A Config is immutable once built, and safe for concurrent use.
type Config struct {
	Name string // Name of the configuration.

	tables [4]symbolTable // Indexed by Kind, KIND_VALUE unused.
}

func newSymbolTable(kind Kind, symbols map[string]byte) (table symbolTable, err error) {
	if len(symbols) == 0 {
		err = fmt.Errorf("%w: %v %v", ErrConfigInvalid, kind.String(), f("table empty"))
		return
	}

	table.code = maps.Clone(symbols)
	table.name = make(map[byte]string, len(symbols))
	for _, name := range slices.Sorted(maps.Keys(symbols)) {
		code := symbols[name]
		if len(name) == 0 || strings.ContainsFunc(name, unicode.IsSpace) {
			err = fmt.Errorf("%w: %v %q %v", ErrConfigInvalid, kind.String(), name, f("is not a valid name"))
			return
		}
		other, ok := table.name[code]
		if ok {
			err = fmt.Errorf("%w: %v %v and %v %v %#02x", ErrConfigInvalid, kind.String(), other, name, f("share code"), code)
			return
		}
		table.name[code] = name
	}

	return
}

// NewConfig builds a configuration from the name to code tables of each
// symbolic kind. The register table must map REG_NONE to 0x0, and the
// condition table must map COND_ALWAYS to 0x0.
func NewConfig(name string, register, syscall, condition map[string]byte) (cfg *Config, err error) {
	cfg = &Config{Name: name}

	for kind, symbols := range []map[string]byte{
		KIND_REGISTER:  register,
		KIND_SYSCALL:   syscall,
		KIND_CONDITION: condition,
	} {
		if !Kind(kind).Symbolic() {
			continue
		}
		cfg.tables[kind], err = newSymbolTable(Kind(kind), symbols)
		if err != nil {
			cfg = nil
			return
		}
	}

	wildcards := []struct {
		kind Kind
		name string
	}{
		{KIND_REGISTER, REG_NONE},
		{KIND_CONDITION, COND_ALWAYS},
	}
	for _, wild := range wildcards {
		code, ok := cfg.tables[wild.kind].code[wild.name]
		if !ok || code != 0 {
			err = fmt.Errorf("%w: %v %v %v", ErrConfigInvalid, wild.kind.String(), wild.name, f("must be code 0x0"))
			cfg = nil
			return
		}
	}

	return
}

// MustConfig is NewConfig, panicking on an invalid table.
func MustConfig(name string, register, syscall, condition map[string]byte) *Config {
	cfg, err := NewConfig(name, register, syscall, condition)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Code returns the code of a symbol name.
func (cfg *Config) Code(kind Kind, name string) (code byte, ok bool) {
	if !kind.Symbolic() {
		return
	}
	code, ok = cfg.tables[kind].code[name]
	return
}

// Symbol returns the symbol name of a code.
func (cfg *Config) Symbol(kind Kind, code byte) (name string, ok bool) {
	if !kind.Symbolic() {
		return
	}
	name, ok = cfg.tables[kind].name[code]
	return
}

// Symbols iterates the symbols of a kind, in code order.
func (cfg *Config) Symbols(kind Kind) iter.Seq2[string, byte] {
	return func(yield func(name string, code byte) bool) {
		if !kind.Symbolic() {
			return
		}
		table := cfg.tables[kind]
		for _, code := range slices.Sorted(maps.Keys(table.name)) {
			if !yield(table.name[code], code) {
				return
			}
		}
	}
}

func (cfg *Config) String() string {
	return cfg.Name
}

var (
	// VariantA is the reference bitmask assignment.
	VariantA = MustConfig("a",
		map[string]byte{
			"a": 0x2, "b": 0x8, "c": 0x20, "d": 0x10,
			"s": 0x4, "i": 0x1, "f": 0x40, REG_NONE: 0x0,
		},
		map[string]byte{
			"open": 0x20, "read_code": 0x1, "read_memory": 0x10,
			"write": 0x2, "sleep": 0x4, "exit": 0x8,
		},
		map[string]byte{
			COND_ALWAYS: 0x0, "E": 0x1, "Z": 0x2, "N": 0x4, "G": 0x8, "L": 0x10,
		},
	)

	// VariantB is an alternate bitmask assignment of the same symbols.
	VariantB = MustConfig("b",
		map[string]byte{
			"a": 0x40, "b": 0x4, "c": 0x20, "d": 0x2,
			"s": 0x10, "i": 0x8, "f": 0x1, REG_NONE: 0x0,
		},
		map[string]byte{
			"open": 0x4, "read_code": 0x20, "read_memory": 0x2,
			"write": 0x10, "sleep": 0x8, "exit": 0x1,
		},
		map[string]byte{
			COND_ALWAYS: 0x0, "L": 0x1, "G": 0x2, "E": 0x4, "N": 0x8, "Z": 0x10,
		},
	)
)

// Variants returns the built-in configurations.
func Variants() []*Config {
	return []*Config{VariantA, VariantB}
}

// LookupVariant returns the built-in configuration with the given name.
func LookupVariant(name string) (cfg *Config, err error) {
	for _, cfg = range Variants() {
		if strings.EqualFold(cfg.Name, name) {
			return
		}
	}

	cfg = nil
	err = fmt.Errorf("%w: %q", ErrVariantUnknown, name)
	return
}
