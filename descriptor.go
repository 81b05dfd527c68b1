package x86

import (
	"fmt"
	"strconv"
	"strings"
)

// OperandKind is the shape of operand an opcode variant accepts in one slot.
type OperandKind uint8

const (
	KindNone OperandKind = iota
	KindRegister
	KindRegisterOrMemory
	KindMemory
	KindImmediate
	KindFixedRegister
	KindRelativeOffset
	KindFarPointer
	KindMemoryOffset
)

var kindNames = [...]string{"none", "reg", "reg/mem", "mem", "imm", "fixed", "rel", "far", "moffs"}

func (k OperandKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("OperandKind(%d)", uint8(k))
}

// EncodingRole is where a register or immediate lands in the encoded instruction.
type EncodingRole uint8

const (
	RoleDefault        EncodingRole = iota // register in ModRM.reg, or the primary immediate
	RoleAddToOpcode                        // register number added into the last opcode byte
	RoleModRM                              // register in ModRM.rm with mod=11
	RoleExtraImmediate                     // the second immediate of two-immediate forms
	RoleIgnore                             // implicit in the opcode
)

// OperandDescriptor constrains the operand a variant accepts in one slot. Descriptors are built
// once from the catalog and never mutated.
type OperandDescriptor struct {
	Kind    OperandKind
	Classes RegClass // register classes accepted by KindRegister and KindRegisterOrMemory
	Fixed   Reg      // the register accepted by KindFixedRegister
	Size    DataSize
	Role    EncodingRole

	// SignExtended immediates are sign-extended by the processor to the operand size, so a
	// constant only fits when it is representable as a signed value of Size.
	SignExtended bool

	// Forced relative offsets have no wider alternative: any target matches and targets out
	// of range fail at emission.
	Forced bool
}

func (d *OperandDescriptor) String() string {
	switch d.Kind {
	case KindFixedRegister:
		return d.Fixed.String()
	case KindRegister:
		return classString(d.Classes, d.Size)
	case KindRegisterOrMemory:
		return classString(d.Classes, d.Size) + "/m" + sizeSuffix(d.Size)
	case KindMemory:
		return "m" + sizeSuffix(d.Size)
	case KindImmediate:
		s := "imm" + sizeSuffix(d.Size)
		if d.SignExtended {
			s = "s" + s
		}
		return s
	case KindRelativeOffset:
		return "rel" + sizeSuffix(d.Size)
	case KindFarPointer:
		return "ptr16:" + sizeSuffix(d.Size)
	case KindMemoryOffset:
		return "moffs" + sizeSuffix(d.Size)
	}
	return d.Kind.String()
}

func sizeSuffix(s DataSize) string {
	if s == SizeNone {
		return ""
	}
	return fmt.Sprint(s.Bits())
}

func classString(c RegClass, s DataSize) string {
	switch {
	case c&ClassGP != 0:
		return "r" + sizeSuffix(s)
	case c&ClassXMM != 0:
		return "xmm"
	case c&ClassSegment != 0:
		return "sreg"
	case c&ClassControl != 0:
		return "creg"
	case c&ClassDebug != 0:
		return "dreg"
	}
	return "reg"
}

// parseDescriptor parses the catalog notation for one operand slot, e.g. "rm32", "r64:opcode",
// "simm8", "imm8:extra", "xmm/m64", "al" or "rel8!".
func parseDescriptor(s string) (OperandDescriptor, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	var role string
	if !strings.HasPrefix(name, "ptr16:") {
		name, role, _ = strings.Cut(name, ":")
	}
	d := OperandDescriptor{}

	// "r8" is the 8-bit register class, not the register R8.
	if r, ok := RegisterByName(name); ok && name != "r8" {
		if role != "" {
			return d, makeError(ErrCatalog, "fixed register %q cannot take a role", s)
		}
		d = OperandDescriptor{Kind: KindFixedRegister, Fixed: r, Size: r.Size(), Role: RoleIgnore}
		return d, nil
	}

	if strings.HasSuffix(name, "!") {
		d.Forced = true
		name = strings.TrimSuffix(name, "!")
	}

	bits := func(prefix string) (DataSize, bool) {
		rest, ok := strings.CutPrefix(name, prefix)
		if !ok {
			return SizeNone, false
		}
		if rest == "" {
			return SizeNone, true
		}
		return sizeOfDigits(rest)
	}

	switch {
	case name == "xmm":
		d.Kind, d.Classes, d.Size = KindRegister, ClassXMM, Bit128
	case strings.HasPrefix(name, "xmm/m"):
		sz, ok := sizeOfDigits(strings.TrimPrefix(name, "xmm/m"))
		if !ok || sz == SizeNone {
			return d, makeError(ErrCatalog, "bad operand %q", s)
		}
		d.Kind, d.Classes, d.Size, d.Role = KindRegisterOrMemory, ClassXMM, sz, RoleModRM
	case name == "sreg":
		d.Kind, d.Classes, d.Size = KindRegister, ClassSegment, Bit16
	case name == "creg":
		d.Kind, d.Classes = KindRegister, ClassControl
	case name == "dreg":
		d.Kind, d.Classes = KindRegister, ClassDebug
	case strings.HasPrefix(name, "ptr16:"):
		sz, ok := sizeOfDigits(strings.TrimPrefix(name, "ptr16:"))
		if !ok || (sz != Bit16 && sz != Bit32) {
			return d, makeError(ErrCatalog, "bad far pointer %q", s)
		}
		d.Kind, d.Size = KindFarPointer, sz
	default:
		var (
			sz DataSize
			ok bool
		)
		switch {
		case strings.HasPrefix(name, "moffs"):
			sz, ok = bits("moffs")
			d.Kind = KindMemoryOffset
		case strings.HasPrefix(name, "rm"):
			sz, ok = bits("rm")
			d.Kind, d.Classes, d.Role = KindRegisterOrMemory, ClassForSize(sz), RoleModRM
		case strings.HasPrefix(name, "rel"):
			sz, ok = bits("rel")
			d.Kind = KindRelativeOffset
		case strings.HasPrefix(name, "simm"):
			sz, ok = bits("simm")
			d.Kind, d.SignExtended = KindImmediate, true
		case strings.HasPrefix(name, "imm"):
			sz, ok = bits("imm")
			d.Kind = KindImmediate
		case strings.HasPrefix(name, "r"):
			sz, ok = bits("r")
			d.Kind, d.Classes = KindRegister, ClassForSize(sz)
		case strings.HasPrefix(name, "m"):
			sz, ok = bits("m")
			d.Kind, d.Role = KindMemory, RoleModRM
		}
		if !ok || (d.Kind != KindMemory && sz == SizeNone) {
			return d, makeError(ErrCatalog, "bad operand %q", s)
		}
		if d.Kind == KindRegister && d.Classes == 0 {
			return d, makeError(ErrCatalog, "bad register width in %q", s)
		}
		d.Size = sz
	}

	switch role {
	case "":
	case "opcode":
		if d.Kind != KindRegister {
			return d, makeError(ErrCatalog, "%q: only registers can be added to the opcode", s)
		}
		d.Role = RoleAddToOpcode
	case "rm":
		if d.Kind != KindRegister {
			return d, makeError(ErrCatalog, "%q: only registers can move to ModRM.rm", s)
		}
		d.Role = RoleModRM
	case "extra":
		if d.Kind != KindImmediate {
			return d, makeError(ErrCatalog, "%q: only immediates can be extra", s)
		}
		d.Role = RoleExtraImmediate
	default:
		return d, makeError(ErrCatalog, "unknown role in %q", s)
	}
	return d, nil
}

// sizeOfDigits parses a bit width written as unsigned decimal digits.
func sizeOfDigits(s string) (DataSize, bool) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return SizeNone, false
	}
	return SizeOfBits(int(n))
}
