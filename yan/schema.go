// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package yan

import (
	"fmt"
	"iter"
	"regexp"
	"strings"
	"unicode"
)

// Byte positions of an instruction's fields.
const (
	BYTE_ARG2   = 0 // Second argument.
	BYTE_OPCODE = 1 // Opcode.
	BYTE_ARG1   = 2 // First argument.

	INSTRUCTION_SIZE = 3 // Bytes per instruction.
)

// Instruction mnemonics.
const (
	INST_IMM = "IMM" // Load immediate.
	INST_ADD = "ADD" // Register add.
	INST_STK = "STK" // Stack pop and push.
	INST_STM = "STM" // Store to memory.
	INST_LDM = "LDM" // Load from memory.
	INST_CMP = "CMP" // Compare.
	INST_JMP = "JMP" // Conditional jump.
	INST_SYS = "SYS" // Syscall.
)

// Format placeholders.
const (
	PLACEHOLDER_ARG1 = "{arg1}"
	PLACEHOLDER_ARG2 = "{arg2}"
)

// Schema declares an instruction: its opcode, the kinds of its two
// arguments, and the text format of those arguments.
type Schema struct {
	Name   string // Mnemonic.
	Opcode byte   // Opcode byte.
	Arg1   Kind   // Kind of the first argument.
	Arg2   Kind   // Kind of the second argument.
	Format string // Argument text, with {arg1} and {arg2} placeholders.

	pattern *regexp.Regexp
}

// Schemas is the Yan85 instruction set.
var Schemas = []Schema{
	{Name: INST_IMM, Opcode: 0x04, Arg1: KIND_REGISTER, Arg2: KIND_VALUE, Format: "{arg1} = {arg2}"},
	{Name: INST_ADD, Opcode: 0x20, Arg1: KIND_REGISTER, Arg2: KIND_REGISTER, Format: "{arg1} += {arg2}"},
	{Name: INST_STK, Opcode: 0x10, Arg1: KIND_REGISTER, Arg2: KIND_REGISTER, Format: "POP {arg1}, PUSH {arg2}"},
	{Name: INST_STM, Opcode: 0x40, Arg1: KIND_REGISTER, Arg2: KIND_REGISTER, Format: "*{arg1} = {arg2}"},
	{Name: INST_LDM, Opcode: 0x08, Arg1: KIND_REGISTER, Arg2: KIND_REGISTER, Format: "{arg1} = *{arg2}"},
	{Name: INST_CMP, Opcode: 0x80, Arg1: KIND_REGISTER, Arg2: KIND_REGISTER, Format: "{arg1} {arg2}"},
	{Name: INST_JMP, Opcode: 0x01, Arg1: KIND_CONDITION, Arg2: KIND_REGISTER, Format: "{arg1} {arg2}"},
	{Name: INST_SYS, Opcode: 0x02, Arg1: KIND_SYSCALL, Arg2: KIND_REGISTER, Format: "{arg1} -> {arg2}"},
}

// compile builds the line pattern of the schema. Placeholders capture a
// whitespace free token, whitespace matches any run of whitespace, and
// everything else is literal.
func (s *Schema) compile() (pattern *regexp.Regexp, err error) {
	if strings.Count(s.Format, PLACEHOLDER_ARG1) != 1 || strings.Count(s.Format, PLACEHOLDER_ARG2) != 1 {
		err = fmt.Errorf("%w: %v %q", ErrSchemaFormat, s.Name, s.Format)
		return
	}

	var expr strings.Builder
	expr.WriteString("^")
	expr.WriteString(regexp.QuoteMeta(s.Name))
	expr.WriteString(`\s+`)

	text := s.Format
	for len(text) > 0 {
		switch {
		case strings.HasPrefix(text, PLACEHOLDER_ARG1):
			expr.WriteString(`(?P<arg1>\S+)`)
			text = text[len(PLACEHOLDER_ARG1):]
		case strings.HasPrefix(text, PLACEHOLDER_ARG2):
			expr.WriteString(`(?P<arg2>\S+)`)
			text = text[len(PLACEHOLDER_ARG2):]
		case unicode.IsSpace(rune(text[0])):
			expr.WriteString(`\s+`)
			text = strings.TrimLeftFunc(text, unicode.IsSpace)
		default:
			expr.WriteString(regexp.QuoteMeta(text[:1]))
			text = text[1:]
		}
	}
	expr.WriteString("$")

	pattern, err = regexp.Compile(expr.String())
	if err != nil {
		err = fmt.Errorf("%w: %v %v", ErrSchemaFormat, s.Name, err)
	}

	return
}

// ParseLine matches a line of text against the schema, and returns the
// argument tokens. Tokens are bound to arguments by placeholder name, not
// by their order in the format.
func (s *Schema) ParseLine(line string) (arg1, arg2 string, err error) {
	pattern := s.pattern
	if pattern == nil {
		pattern, err = s.compile()
		if err != nil {
			return
		}
	}

	match := pattern.FindStringSubmatch(strings.TrimSpace(line))
	if match == nil {
		err = fmt.Errorf("%w: %v %v", ErrLineFormat, s.Name, s.Format)
		return
	}

	arg1 = match[pattern.SubexpIndex("arg1")]
	arg2 = match[pattern.SubexpIndex("arg2")]

	return
}

// Render renders the text form of an instruction with the given argument text.
func (s *Schema) Render(arg1, arg2 string) string {
	text := strings.NewReplacer(PLACEHOLDER_ARG1, arg1, PLACEHOLDER_ARG2, arg2).Replace(s.Format)
	return s.Name + " " + text
}

// Registry is an immutable set of schemas, looked up by mnemonic or by opcode.
type Registry struct {
	schemas  []*Schema
	byName   map[string]*Schema
	byOpcode map[byte]*Schema
}

// NewRegistry builds a registry, compiling the line pattern of each schema.
// Mnemonics and opcodes must be unique.
func NewRegistry(schemas ...Schema) (reg *Registry, err error) {
	reg = &Registry{
		byName:   make(map[string]*Schema, len(schemas)),
		byOpcode: make(map[byte]*Schema, len(schemas)),
	}

	for _, schema := range schemas {
		s := &Schema{
			Name:   schema.Name,
			Opcode: schema.Opcode,
			Arg1:   schema.Arg1,
			Arg2:   schema.Arg2,
			Format: schema.Format,
		}

		if !namePattern.MatchString(s.Name) {
			err = fmt.Errorf("%w: %q", ErrSchemaFormat, s.Name)
			reg = nil
			return
		}
		if _, ok := reg.byName[s.Name]; ok {
			err = fmt.Errorf("%w: %v", ErrSchemaDuplicate, s.Name)
			reg = nil
			return
		}
		if other, ok := reg.byOpcode[s.Opcode]; ok {
			err = fmt.Errorf("%w: %v and %v opcode %#02x", ErrSchemaDuplicate, other.Name, s.Name, s.Opcode)
			reg = nil
			return
		}

		s.pattern, err = s.compile()
		if err != nil {
			reg = nil
			return
		}

		reg.schemas = append(reg.schemas, s)
		reg.byName[s.Name] = s
		reg.byOpcode[s.Opcode] = s
	}

	return
}

// MustRegistry is NewRegistry, panicking on an invalid schema set.
func MustRegistry(schemas ...Schema) *Registry {
	reg, err := NewRegistry(schemas...)
	if err != nil {
		panic(err)
	}
	return reg
}

// DefaultRegistry holds the Yan85 instruction set.
var DefaultRegistry = MustRegistry(Schemas...)

// Lookup returns the schema of a mnemonic.
func (reg *Registry) Lookup(name string) (s *Schema, ok bool) {
	s, ok = reg.byName[name]
	return
}

// LookupOpcode returns the schema of an opcode.
func (reg *Registry) LookupOpcode(opcode byte) (s *Schema, ok bool) {
	s, ok = reg.byOpcode[opcode]
	return
}

// Schemas iterates the schemas in declaration order.
func (reg *Registry) Schemas() iter.Seq[*Schema] {
	return func(yield func(s *Schema) bool) {
		for _, s := range reg.schemas {
			if !yield(s) {
				return
			}
		}
	}
}
