// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package yan

import (
	"log"

	"github.com/ezrec/yancode/internal"
)

// Disassembler decodes binary images into annotated listings.
type Disassembler struct {
	Verbose  bool      // If set, verbosely logs each decoded instruction.
	Config   *Config   // Bitmask configuration, VariantA if nil.
	Registry *Registry // Instruction set, DefaultRegistry if nil.
}

// Decode decodes every instruction of a binary image. The first failure
// stops decoding, and is reported with its address.
func (dis *Disassembler) Decode(image []byte) (insts []Instruction, err error) {
	cfg := dis.Config
	if cfg == nil {
		cfg = VariantA
	}
	reg := dis.Registry
	if reg == nil {
		reg = DefaultRegistry
	}

	insts = make([]Instruction, 0, len(image)/INSTRUCTION_SIZE)
	for address, code := range internal.Chunks(image, INSTRUCTION_SIZE) {
		var inst Instruction
		inst, err = reg.Disassemble(cfg, code)
		if err != nil {
			err = &ErrAddress{Address: address, Err: err}
			insts = nil
			return
		}

		if dis.Verbose {
			log.Printf("%#x: % X %v\n", address, code, inst)
		}

		insts = append(insts, inst)
	}

	return
}

// Disassemble decodes a binary image into an annotated listing.
func (dis *Disassembler) Disassemble(image []byte) (listing *Listing, err error) {
	insts, err := dis.Decode(image)
	if err != nil {
		return
	}

	listing = NewListing(insts)
	return
}
