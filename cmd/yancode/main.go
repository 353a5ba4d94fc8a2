// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/ezrec/yancode/shell"
	"github.com/ezrec/yancode/translate"
	"github.com/ezrec/yancode/yan"
	"github.com/ezrec/yancode/yan/config"
)

var f = translate.From

type options struct {
	variant string
	config  string
	verbose bool
	output  string
	define  []string
	dump    string
}

func (opts *options) selectConfig() *yan.Config {
	cfg, err := config.Select(opts.variant, opts.config)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
	return cfg
}

type stdout struct {
	io.Writer
}

func (stdout) Close() error { return nil }

// create opens the output file, or stdout for "-" or no file.
func create(path string) (w io.WriteCloser) {
	if len(path) == 0 || path == "-" {
		return stdout{os.Stdout}
	}

	w, err := os.Create(path)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}
	return
}

func asmCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "asm FILE",
		Short: f("Assemble Yan85 assembly text to Yancode"),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			input := args[0]

			inf, err := os.Open(input)
			if err != nil {
				log.Fatalf("%v: %v", input, err)
			}
			defer inf.Close()

			asm := &yan.Assembler{
				Verbose: opts.verbose,
				Config:  opts.selectConfig(),
			}
			for _, def := range opts.define {
				name, value, ok := strings.Cut(def, "=")
				if !ok {
					log.Fatalf("%v: %v", def, f("define must be NAME=VALUE"))
				}
				asm.Predefine(name, value)
			}

			prog, err := asm.Parse(inf)
			if err != nil {
				log.Fatalf("%v: %v", input, err)
			}

			output := opts.output
			if len(output) == 0 {
				output = input + "_asm.bin"
			}

			ouf := create(output)
			defer ouf.Close()

			_, err = ouf.Write(prog.Binary())
			if err != nil {
				log.Fatalf("%v: %v", output, err)
			}
		},
	}
}

func disasmCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "disasm FILE",
		Short: f("Disassemble Yancode to annotated Yan85 assembly"),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			input := args[0]

			image, err := os.ReadFile(input)
			if err != nil {
				log.Fatalf("%v: %v", input, err)
			}

			dis := &yan.Disassembler{
				Verbose: opts.verbose,
				Config:  opts.selectConfig(),
			}

			listing, err := dis.Disassemble(image)
			if err != nil {
				log.Fatalf("%v: %v", input, err)
			}

			ouf := create(opts.output)
			defer ouf.Close()

			fmt.Fprintln(ouf, listing.String())
		},
	}
}

func shellCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: f("Interactive Yan85 assembler and disassembler"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			sh := &shell.Shell{
				Config: opts.selectConfig(),
			}

			var items []readline.PrefixCompleterInterface
			for word := range sh.Words() {
				items = append(items, readline.PcItem(word))
			}

			history := ""
			cache, err := os.UserCacheDir()
			if err == nil {
				history = filepath.Join(cache, "yancode_history")
			}

			rl, err := readline.NewEx(&readline.Config{
				Prompt:       sh.Prompt(),
				HistoryFile:  history,
				AutoComplete: readline.NewPrefixCompleter(items...),
			})
			if err != nil {
				log.Fatalf("%v: %v", os.Args[0], err)
			}
			defer rl.Close()

			for {
				line, err := rl.Readline()
				if errors.Is(err, readline.ErrInterrupt) {
					continue
				}
				if err != nil {
					break
				}

				out, err := sh.Eval(line)
				if errors.Is(err, shell.ErrQuit) {
					break
				}
				if err != nil {
					fmt.Fprintln(rl.Stderr(), err)
					continue
				}
				if len(out) > 0 {
					fmt.Fprintln(rl.Stdout(), out)
				}
				rl.SetPrompt(sh.Prompt())
			}
		},
	}
}

func variantsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: f("List the bitmask configurations, or dump the selected one"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if len(opts.dump) != 0 {
				ouf := create(opts.output)
				defer ouf.Close()

				err := config.Encode(ouf, config.Format(opts.dump), opts.selectConfig())
				if err != nil {
					log.Fatalf("%v: %v", os.Args[0], err)
				}
				return
			}

			for _, cfg := range yan.Variants() {
				fmt.Println(cfg.Name)
			}
		},
	}
}

func main() {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "yancode",
		Short: f("Yan85 Yancode assembler and disassembler"),
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.variant, "variant", "V", "a", f("built-in bitmask configuration"))
	flags.StringVarP(&opts.config, "config", "c", "", f("bitmask configuration file (.toml, .yaml), overrides --variant"))
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, f("verbose mode"))
	flags.StringVarP(&opts.output, "output", "o", "", f("output file"))

	asm := asmCommand(opts)
	asm.Flags().StringArrayVarP(&opts.define, "define", "D", nil, f("predefined equate NAME=VALUE"))

	variants := variantsCommand(opts)
	variants.Flags().StringVar(&opts.dump, "dump", "", f("dump the selected configuration as toml or yaml"))

	rootCmd.AddCommand(asm, disasmCommand(opts), shellCommand(opts), variants)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
