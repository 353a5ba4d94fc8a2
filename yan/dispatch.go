package yan

import (
	"regexp"
)

var mnemonicPattern = regexp.MustCompile(`\w+`)

// namePattern matches the mnemonics mnemonicPattern can extract.
var namePattern = regexp.MustCompile(`^\w+$`)

// Assemble assembles a line of text, dispatching on its first word.
func (reg *Registry) Assemble(cfg *Config, line string) (inst Instruction, err error) {
	name := mnemonicPattern.FindString(line)

	s, ok := reg.Lookup(name)
	if !ok {
		err = ErrMnemonic(name)
		return
	}

	inst, err = s.Assemble(cfg, line)
	return
}

// Disassemble decodes a three byte instruction, dispatching on its opcode.
func (reg *Registry) Disassemble(cfg *Config, code []byte) (inst Instruction, err error) {
	if len(code) < INSTRUCTION_SIZE {
		err = ErrTruncated
		return
	}

	s, ok := reg.LookupOpcode(code[BYTE_OPCODE])
	if !ok {
		err = ErrOpcode(code[BYTE_OPCODE])
		return
	}

	inst, err = s.Decode(cfg, code)
	return
}
