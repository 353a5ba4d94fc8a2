package yan

import (
	"errors"

	"github.com/ezrec/yancode/translate"
)

var f = translate.From

var (
	// Text assembly errors
	ErrUnknownMnemonic = errors.New(f("unknown mnemonic"))
	ErrLineFormat      = errors.New(f("line format mismatch"))
	ErrInvalidToken    = errors.New(f("invalid token"))
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))

	// Binary decode errors
	ErrUnknownOpcode  = errors.New(f("unknown opcode"))
	ErrInvalidCode    = errors.New(f("invalid code"))
	ErrOpcodeMismatch = errors.New(f("opcode mismatch"))
	ErrTruncated      = errors.New(f("truncated instruction"))

	// Table construction errors
	ErrSchemaDuplicate = errors.New(f("schema duplicated"))
	ErrSchemaFormat    = errors.New(f("schema format invalid"))
	ErrConfigInvalid   = errors.New(f("config invalid"))
	ErrVariantUnknown  = errors.New(f("variant unknown"))
)

// ErrToken is an argument token that is not valid for its kind.
type ErrToken struct {
	Kind  Kind
	Token string
}

func (err ErrToken) Error() string {
	return f("'%v' is not a valid %v", err.Token, err.Kind.String())
}

func (err ErrToken) Is(target error) bool {
	return target == ErrInvalidToken
}

// ErrCode is an argument byte with no entry in the active configuration.
type ErrCode struct {
	Kind Kind
	Code byte
}

func (err ErrCode) Error() string {
	return f("%#02x is not a valid %v code", err.Code, err.Kind.String())
}

func (err ErrCode) Is(target error) bool {
	return target == ErrInvalidCode
}

// ErrOpcode is an opcode byte that no schema claims.
type ErrOpcode byte

func (eo ErrOpcode) Error() string {
	return f("bad opcode %#02x", byte(eo))
}

func (eo ErrOpcode) Is(target error) bool {
	return target == ErrUnknownOpcode
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrSyntax locates an assembly failure in the source text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrAddress locates a disassembly failure in a binary image.
type ErrAddress struct {
	Address int
	Err     error
}

func (err ErrAddress) Error() string {
	return f("address %#x %v", err.Address, err.Err)
}

func (err ErrAddress) Unwrap() error {
	return err.Err
}

// ErrMnemonic is a mnemonic that no schema claims.
type ErrMnemonic string

func (em ErrMnemonic) Error() string {
	return f("'%v' is not an instruction", string(em))
}

func (em ErrMnemonic) Is(target error) bool {
	return target == ErrUnknownMnemonic
}
