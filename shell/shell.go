// Package shell evaluates interactive Yancode console lines.
//
// A line of three hexadecimal byte pairs is disassembled, any other line is
// assembled. Lines starting with ':' are console commands.
package shell

import (
	"encoding/hex"
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/ezrec/yancode/internal"
	"github.com/ezrec/yancode/translate"
	"github.com/ezrec/yancode/yan"
)

var f = translate.From

var (
	ErrCommandUnknown = errors.New(f("command unknown"))
	ErrCommandSyntax  = errors.New(f("command syntax"))
	ErrQuit           = errors.New(f("quit"))
)

// Shell is the state of an interactive console.
type Shell struct {
	Config   *yan.Config   // Bitmask configuration, VariantA if nil.
	Registry *yan.Registry // Instruction set, DefaultRegistry if nil.
}

func (sh *Shell) config() *yan.Config {
	if sh.Config == nil {
		return yan.VariantA
	}
	return sh.Config
}

func (sh *Shell) registry() *yan.Registry {
	if sh.Registry == nil {
		return yan.DefaultRegistry
	}
	return sh.Registry
}

// Prompt returns the console prompt.
func (sh *Shell) Prompt() string {
	return fmt.Sprintf("yan85[%v]> ", sh.config().Name)
}

// code returns the bytes of a line of hex byte pairs, if it is one.
func code(line string) (data []byte, ok bool) {
	digits := strings.Join(strings.Fields(line), "")
	if len(digits) != yan.INSTRUCTION_SIZE*2 {
		return
	}
	data, err := hex.DecodeString(digits)
	ok = err == nil
	return
}

// Eval evaluates a single console line, returning the text to print.
func (sh *Shell) Eval(line string) (out string, err error) {
	line = strings.TrimSpace(line)
	if len(line) == 0 {
		return
	}

	if strings.HasPrefix(line, ":") {
		out, err = sh.command(strings.Fields(line[1:]))
		return
	}

	data, ok := code(line)
	if ok {
		var inst yan.Instruction
		inst, err = sh.registry().Disassemble(sh.config(), data)
		if err != nil {
			return
		}
		out = inst.String()
		return
	}

	inst, err := sh.registry().Assemble(sh.config(), line)
	if err != nil {
		return
	}

	bin := inst.Encode()
	out = fmt.Sprintf("% X", bin[:])
	return
}

func (sh *Shell) command(words []string) (out string, err error) {
	if len(words) == 0 {
		err = ErrCommandSyntax
		return
	}

	switch words[0] {
	case "quit", "q":
		err = ErrQuit
	case "variant":
		if len(words) != 2 {
			err = ErrCommandSyntax
			return
		}
		var cfg *yan.Config
		cfg, err = yan.LookupVariant(words[1])
		if err != nil {
			return
		}
		sh.Config = cfg
		out = f("variant %v", cfg.Name)
	case "symbols":
		var lines []string
		for _, kind := range []yan.Kind{yan.KIND_REGISTER, yan.KIND_SYSCALL, yan.KIND_CONDITION} {
			var syms []string
			for name, code := range sh.config().Symbols(kind) {
				syms = append(syms, fmt.Sprintf("%v=%#x", name, code))
			}
			lines = append(lines, fmt.Sprintf("%v: %v", kind.String(), strings.Join(syms, " ")))
		}
		out = strings.Join(lines, "\n")
	case "help":
		var lines []string
		for s := range sh.registry().Schemas() {
			lines = append(lines, fmt.Sprintf("%#x %v", s.Opcode, s.Render(yan.PLACEHOLDER_ARG1, yan.PLACEHOLDER_ARG2)))
		}
		out = strings.Join(lines, "\n")
	default:
		err = fmt.Errorf("%w: %v", ErrCommandUnknown, words[0])
	}

	return
}

// Words iterates the words the console understands, for completion.
func (sh *Shell) Words() iter.Seq[string] {
	var mnemonics []string
	for s := range sh.registry().Schemas() {
		mnemonics = append(mnemonics, s.Name)
	}

	return internal.IterSeqConcat(
		slices.Values(mnemonics),
		maps.Keys(maps.Collect(sh.config().Symbols(yan.KIND_REGISTER))),
		maps.Keys(maps.Collect(sh.config().Symbols(yan.KIND_SYSCALL))),
		maps.Keys(maps.Collect(sh.config().Symbols(yan.KIND_CONDITION))),
		slices.Values([]string{":variant", ":symbols", ":help", ":quit"}),
	)
}
