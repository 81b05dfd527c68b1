package x86

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMatch is returned when no variant of an opcode accepts the supplied operands in the
	// active processor mode.
	ErrNoMatch = errors.New("no matching instruction encoding")

	// ErrAddressingMode is returned for memory operands which cannot be encoded: an illegal
	// scale, mismatched base/index widths, RIP-relative addressing with a base or index, or a
	// register width invalid for the address size.
	ErrAddressingMode = errors.New("invalid addressing mode")

	// ErrSizeOverflow is returned when a resolved value does not fit the field it is encoded in.
	ErrSizeOverflow = errors.New("value exceeds encodable size")

	// ErrEncodingRole is returned when the match/adjust/construct protocol is violated.
	ErrEncodingRole = errors.New("encoding role violation")

	ErrUndefinedSymbol = errors.New("undefined symbol")
	ErrSymbolRedefined = errors.New("symbol redefined")
	ErrNoConvergence   = errors.New("layout did not converge")
	ErrCatalog         = errors.New("malformed opcode catalog")
)

func makeError(err error, message string, args ...any) error {
	return fmt.Errorf("%w: "+message, append([]any{err}, args...)...)
}

// InstructionError locates a failure in a sequence of constructs.
type InstructionError struct {
	Section string
	Index   int // position of the construct within its section
	Address uint64
	What    string // mnemonic or construct description
	Err     error
}

func (e *InstructionError) Error() string {
	return fmt.Sprintf("%s[%d] at %#x (%s): %v", e.Section, e.Index, e.Address, e.What, e.Err)
}

func (e *InstructionError) Unwrap() error { return e.Err }
