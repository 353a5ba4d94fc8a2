package yan

import (
	"fmt"
	"strings"
)

// Mark classifies a listing address against the recorded jumps.
type Mark int

//go:generate go tool stringer -linecomment -type=Mark
const (
	MARK_PLAIN  = Mark(0) // plain
	MARK_ORIGIN = Mark(1) // origin
	MARK_TARGET = Mark(2) // target
	MARK_SPAN   = Mark(3) // span
)

// Prefix returns the listing prefix of the mark.
func (mark Mark) Prefix() string {
	switch mark {
	case MARK_ORIGIN:
		return "-<"
	case MARK_TARGET:
		return "->"
	case MARK_SPAN:
		return "| "
	default:
		return "  "
	}
}

// Jump is an instruction pointer load, from the address of the loading
// instruction to the loaded address.
type Jump struct {
	Source      int
	Destination int
}

// Contains returns true if the address lies strictly between the source
// and the destination, in either direction.
func (jump Jump) Contains(address int) bool {
	lo, hi := min(jump.Source, jump.Destination), max(jump.Source, jump.Destination)
	return address > lo && address < hi
}

// Classify returns the mark of an address against this jump alone.
func (jump Jump) Classify(address int) Mark {
	switch {
	case address == jump.Source:
		return MARK_ORIGIN
	case address == jump.Destination:
		return MARK_TARGET
	case jump.Contains(address):
		return MARK_SPAN
	default:
		return MARK_PLAIN
	}
}

// Jumps returns the jumps of an instruction sequence, in address order.
func Jumps(insts []Instruction) (jumps []Jump) {
	for address, inst := range insts {
		target, ok := inst.Jump()
		if ok {
			jumps = append(jumps, Jump{Source: address, Destination: target})
		}
	}
	return
}

// Annotate marks each of count addresses against the jumps. Each jump in
// turn classifies every address, so the last jump decides every mark,
// MARK_PLAIN included. Without jumps, every address is MARK_PLAIN.
func Annotate(count int, jumps []Jump) (marks []Mark) {
	marks = make([]Mark, count)
	for _, jump := range jumps {
		for address := range marks {
			marks[address] = jump.Classify(address)
		}
	}
	return
}

// Line is one annotated line of a disassembly listing.
type Line struct {
	Mark        Mark
	Address     int
	Code        [INSTRUCTION_SIZE]byte
	Instruction Instruction
}

func (line Line) String() string {
	return fmt.Sprintf("%v\t%#x\t\t%02X %02X %02X\t%v",
		line.Mark.Prefix(), line.Address,
		line.Code[0], line.Code[1], line.Code[2],
		line.Instruction)
}

// Listing is an annotated disassembly.
type Listing struct {
	Lines []Line
	Jumps []Jump
}

// NewListing annotates a decoded instruction sequence. The code of each
// line is the encoding of its instruction.
func NewListing(insts []Instruction) (listing *Listing) {
	listing = &Listing{
		Jumps: Jumps(insts),
	}

	marks := Annotate(len(insts), listing.Jumps)
	for address, inst := range insts {
		listing.Lines = append(listing.Lines, Line{
			Mark:        marks[address],
			Address:     address,
			Code:        inst.Encode(),
			Instruction: inst,
		})
	}

	return
}

// Instructions returns the instructions of the listing.
func (listing *Listing) Instructions() (insts []Instruction) {
	for _, line := range listing.Lines {
		insts = append(insts, line.Instruction)
	}
	return
}

func (listing *Listing) String() string {
	text := make([]string, len(listing.Lines))
	for n, line := range listing.Lines {
		text[n] = line.String()
	}
	return strings.Join(text, "\n")
}
