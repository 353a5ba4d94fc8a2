// Package yan implements the assembler and disassembler for Yancode, the
// fixed-width instruction encoding of the Yan85 machine.
//
// Every instruction is three bytes: the second argument, the opcode, then
// the first argument. What an argument byte means depends on the opcode: a
// register, a raw value, a condition, or a syscall. Registers, conditions
// and syscalls are bitmask coded, and the bitmask assignment differs between
// machine variants, so every encode and decode call takes an explicit
// Config.
//
// The disassembler annotates its listing with the spans of jumps performed
// by loading an immediate into the instruction pointer register.
package yan
