package yan

import (
	"iter"
)

// Statement is an assembled line of source text.
type Statement struct {
	LineNo      int         // Source line number.
	Address     int         // Instruction address.
	Line        string      // Source text, comment removed.
	Instruction Instruction // Assembled instruction.
}

// Program is an assembled sequence of instructions.
type Program struct {
	Statements []Statement
}

// Debug returns the statement at an address.
func (prog *Program) Debug(address int) (stmt *Statement) {
	for n := range prog.Statements {
		if prog.Statements[n].Address == address {
			stmt = &prog.Statements[n]
			break
		}
	}

	return
}

// Binary returns the concatenated encoding of the program.
func (prog *Program) Binary() (bin []byte) {
	bin = make([]byte, 0, len(prog.Statements)*INSTRUCTION_SIZE)
	for _, inst := range prog.Instructions() {
		code := inst.Encode()
		bin = append(bin, code[:]...)
	}

	return
}

// Instructions iterates the instructions of the program by address.
func (prog *Program) Instructions() iter.Seq2[int, Instruction] {
	return func(yield func(address int, inst Instruction) bool) {
		for _, stmt := range prog.Statements {
			if !yield(stmt.Address, stmt.Instruction) {
				return
			}
		}
	}
}
