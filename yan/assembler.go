// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package yan

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":           "0x0",
	"ADDRESS":          "0x0",
	"INSTRUCTION_SIZE": fmt.Sprintf("%#x", INSTRUCTION_SIZE),
}

// Assembler is a single pass assembler for Yan85 assembly text.
type Assembler struct {
	Verbose  bool      // If set, verbosely logs the assembler actions.
	Config   *Config   // Bitmask configuration, VariantA if nil.
	Registry *Registry // Instruction set, DefaultRegistry if nil.

	predefine map[string]string // Predefines
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a hexadecimal word.
func (asm *Assembler) valueOf(word string) (value int64, err error) {
	value, err = strconv.ParseInt(hexDigits(word), 16, 64)
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, err := asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrParseExpression(expr), err)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

var (
	parenPattern = regexp.MustCompile(`\$\([^\$]*\)`)
	wordPattern  = regexp.MustCompile(`\b[A-Za-z_]\w*`)
)

// parseLine expands the equates and expressions of a line. An empty
// result is a line with no instruction.
func (asm *Assembler) parseLine(line string, lineno int, address int) (text string, err error) {
	asm.Equate["LINENO"] = fmt.Sprintf("%#x", lineno)
	asm.Equate["ADDRESS"] = fmt.Sprintf("%#x", address)

	// Do $() evaluations
	line = parenPattern.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#x", value)
	})
	if err != nil {
		return
	}

	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		return
	}

	// Substitute equates in the arguments, never in the mnemonic.
	mnemonic := wordPattern.FindStringIndex(line)
	if mnemonic == nil {
		text = line
		return
	}
	args := wordPattern.ReplaceAllStringFunc(line[mnemonic[1]:], func(word string) string {
		equate, ok := asm.Equate[word]
		if ok {
			return equate
		}
		return word
	})
	text = line[:mnemonic[1]] + args

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	cfg := asm.Config
	if cfg == nil {
		cfg = VariantA
	}
	reg := asm.Registry
	if reg == nil {
		reg = DefaultRegistry
	}

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			prog = nil
		}
	}()

	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	prog = &Program{}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		address := len(prog.Statements)

		text, err = asm.parseLine(line, lineno, address)
		if err != nil {
			return
		}
		if len(text) == 0 {
			continue
		}

		var inst Instruction
		inst, err = reg.Assemble(cfg, text)
		if err != nil {
			return
		}

		if asm.Verbose {
			code := inst.Encode()
			log.Printf("%#x: % X %v\n", address, code[:], inst)
		}

		prog.Statements = append(prog.Statements, Statement{
			LineNo:      lineno,
			Address:     address,
			Line:        line,
			Instruction: inst,
		})
	}

	err = scanner.Err()

	return
}
