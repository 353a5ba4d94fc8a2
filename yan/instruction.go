package yan

import (
	"fmt"
)

// Instruction is a decoded instruction: its schema and resolved arguments.
type Instruction struct {
	*Schema
	Arg1 Arg
	Arg2 Arg
}

// Decode decodes a three byte instruction of this schema.
func (s *Schema) Decode(cfg *Config, code []byte) (inst Instruction, err error) {
	if len(code) < INSTRUCTION_SIZE {
		err = ErrTruncated
		return
	}

	if code[BYTE_OPCODE] != s.Opcode {
		err = fmt.Errorf("%w: %v %#02x, %v %#02x", ErrOpcodeMismatch, s.Name, s.Opcode, f("got"), code[BYTE_OPCODE])
		return
	}

	arg1, err := cfg.Disassemble(s.Arg1, code[BYTE_ARG1])
	if err != nil {
		return
	}

	arg2, err := cfg.Disassemble(s.Arg2, code[BYTE_ARG2])
	if err != nil {
		return
	}

	inst = Instruction{Schema: s, Arg1: arg1, Arg2: arg2}
	return
}

// Assemble parses a line of text of this schema.
func (s *Schema) Assemble(cfg *Config, line string) (inst Instruction, err error) {
	token1, token2, err := s.ParseLine(line)
	if err != nil {
		return
	}

	arg1, err := cfg.Assemble(s.Arg1, token1)
	if err != nil {
		return
	}

	arg2, err := cfg.Assemble(s.Arg2, token2)
	if err != nil {
		return
	}

	inst = Instruction{Schema: s, Arg1: arg1, Arg2: arg2}
	return
}

// Encode returns the three byte encoding of the instruction.
func (inst Instruction) Encode() (code [INSTRUCTION_SIZE]byte) {
	code[BYTE_OPCODE] = inst.Opcode
	code[BYTE_ARG1] = inst.Arg1.Byte()
	code[BYTE_ARG2] = inst.Arg2.Byte()
	return
}

// String returns the assembly text of the instruction.
func (inst Instruction) String() string {
	if inst.Schema == nil {
		return ""
	}
	return inst.Render(inst.Arg1.String(), inst.Arg2.String())
}

// Jump returns the target address if the instruction loads an immediate
// into the instruction pointer.
func (inst Instruction) Jump() (target int, ok bool) {
	if inst.Schema == nil || inst.Name != INST_IMM {
		return
	}
	if inst.Arg1.Kind != KIND_REGISTER || inst.Arg1.Name != REG_IP {
		return
	}

	target = int(inst.Arg2.Code)
	ok = true
	return
}
