package x86

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// DataSize is an operand or address width. Sizes are totally ordered, so they double as the
// comparison key for "smallest sufficient size" decisions.
type DataSize uint8

const (
	SizeNone DataSize = iota
	Bit8
	Bit16
	Bit32
	Bit64
	Bit128
)

// Bits returns the width in bits (0 for SizeNone).
func (s DataSize) Bits() int {
	if s == SizeNone {
		return 0
	}
	return 4 << s
}

// Bytes returns the width in bytes (0 for SizeNone).
func (s DataSize) Bytes() int { return s.Bits() / 8 }

func (s DataSize) String() string {
	switch s {
	case SizeNone:
		return "none"
	case Bit8, Bit16, Bit32, Bit64, Bit128:
		return fmt.Sprintf("%d-bit", s.Bits())
	}
	return fmt.Sprintf("DataSize(%d)", uint8(s))
}

// SizeOfBits returns the DataSize for a width in bits.
func SizeOfBits(bits int) (DataSize, bool) {
	switch bits {
	case 0:
		return SizeNone, true
	case 8:
		return Bit8, true
	case 16:
		return Bit16, true
	case 32:
		return Bit32, true
	case 64:
		return Bit64, true
	case 128:
		return Bit128, true
	}
	return SizeNone, false
}

func within[T constraints.Integer](v int64, lo, hi T) bool {
	return v >= int64(lo) && v <= int64(hi)
}

// fitsSigned reports whether v is representable as a two's complement integer of size s.
func fitsSigned(v int64, s DataSize) bool {
	switch s {
	case Bit8:
		return within[int8](v, math.MinInt8, math.MaxInt8)
	case Bit16:
		return within[int16](v, math.MinInt16, math.MaxInt16)
	case Bit32:
		return within[int32](v, math.MinInt32, math.MaxInt32)
	case Bit64, Bit128:
		return true
	}
	return false
}

// fits reports whether v is representable in s bits either as a signed or as an unsigned value.
func fits(v int64, s DataSize) bool {
	if fitsSigned(v, s) {
		return true
	}
	switch s {
	case Bit8:
		return within[uint8](v, 0, math.MaxUint8)
	case Bit16:
		return within[uint16](v, 0, math.MaxUint16)
	case Bit32:
		return within[uint32](v, 0, math.MaxUint32)
	}
	return false
}

// smallestSize is the sizing policy for resolved constants: the smallest DataSize (8 bits
// upwards) which represents v exactly.
func smallestSize(v int64) DataSize {
	for _, s := range [...]DataSize{Bit8, Bit16, Bit32} {
		if fits(v, s) {
			return s
		}
	}
	return Bit64
}
