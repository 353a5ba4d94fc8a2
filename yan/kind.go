package yan

// Kind is the type of an instruction argument.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_VALUE     = Kind(0) // value
	KIND_REGISTER  = Kind(1) // register
	KIND_SYSCALL   = Kind(2) // syscall
	KIND_CONDITION = Kind(3) // condition
)

// Symbolic returns true if the kind is a bitmask coded enumeration.
func (kind Kind) Symbolic() bool {
	return kind != KIND_VALUE
}
