package yan

import (
	"fmt"
	"strconv"
)

// Arg is a resolved instruction argument: a raw value, or a symbol of a
// bitmask coded kind together with its code.
type Arg struct {
	Kind Kind   // Argument kind.
	Code byte   // Encoded byte.
	Name string // Symbol name, empty for KIND_VALUE.
}

// Value makes a raw value argument.
func Value(value byte) Arg {
	return Arg{Kind: KIND_VALUE, Code: value}
}

// hexDigits strips a single 0x or 0X prefix.
func hexDigits(token string) string {
	if len(token) > 1 && token[0] == '0' && (token[1]|0x20) == 'x' {
		return token[2:]
	}
	return token
}

// Assemble converts an argument token into an argument of the given kind.
// Raw values are hexadecimal, with or without a 0x prefix.
func (cfg *Config) Assemble(kind Kind, token string) (arg Arg, err error) {
	if !kind.Symbolic() {
		value, perr := strconv.ParseUint(hexDigits(token), 16, 8)
		if perr != nil {
			err = ErrToken{Kind: kind, Token: token}
			return
		}
		arg = Value(byte(value))
		return
	}

	code, ok := cfg.Code(kind, token)
	if !ok {
		err = ErrToken{Kind: kind, Token: token}
		return
	}

	arg = Arg{Kind: kind, Code: code, Name: token}
	return
}

// Disassemble converts an encoded byte into an argument of the given kind.
// Every byte is a valid raw value; symbolic kinds accept only the codes the
// configuration assigns.
func (cfg *Config) Disassemble(kind Kind, code byte) (arg Arg, err error) {
	if !kind.Symbolic() {
		arg = Value(code)
		return
	}

	name, ok := cfg.Symbol(kind, code)
	if !ok {
		err = ErrCode{Kind: kind, Code: code}
		return
	}

	arg = Arg{Kind: kind, Code: code, Name: name}
	return
}

// Byte returns the encoded byte of the argument.
func (arg Arg) Byte() byte {
	return arg.Code
}

// String renders raw values as lowercase 0x prefixed hex, and symbols by name.
func (arg Arg) String() string {
	if !arg.Kind.Symbolic() {
		return fmt.Sprintf("%#x", arg.Code)
	}
	return arg.Name
}
