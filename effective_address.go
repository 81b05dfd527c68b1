package x86

import (
	"github.com/wdamron/x86/feats"
)

// EffectiveAddress is a memory operand encoded through ModRM (and SIB).
type EffectiveAddress struct {
	Mem

	hint     DataSize // data width implied by the register operands of the variant being matched
	adjusted bool
}

func (*EffectiveAddress) isOperand() {}

func (ea *EffectiveAddress) operand() Operand { c := *ea; return &c }

func (ea *EffectiveAddress) setHint(s DataSize) { ea.hint = s }

func (ea *EffectiveAddress) PreferredSize() DataSize { return ea.Mem.Size }

// Size is the width of the referenced data: explicit, else hinted by a register argument. An
// unsized operand without a hint only matches unsized memory slots.
func (ea *EffectiveAddress) Size(*Context) DataSize {
	if ea.Mem.Size != SizeNone {
		return ea.Mem.Size
	}
	return ea.hint
}

func (ea *EffectiveAddress) IsMatch(ctx *Context, d *OperandDescriptor) bool {
	switch d.Kind {
	case KindMemory:
		return d.Size == SizeNone || ea.Size(ctx) == d.Size
	case KindRegisterOrMemory:
		return ea.Size(ctx) == d.Size
	}
	return false
}

func (ea *EffectiveAddress) Adjust(d *OperandDescriptor) error {
	if d.Kind != KindMemory && d.Kind != KindRegisterOrMemory {
		return makeError(ErrEncodingRole, "memory operand cannot fill a %v slot", d.Kind)
	}
	ea.adjusted = true
	return nil
}

// addressSize resolves and validates the address size: explicit, else the width of the base or
// index register, else the default of the architecture.
func (ea *EffectiveAddress) addressSize(ctx *Context) (DataSize, error) {
	m := &ea.Mem
	mode := ctx.Arch.Mode

	switch m.Scale {
	case 0, 1, 2, 4, 8:
	default:
		return SizeNone, makeError(ErrAddressingMode, "scale %d", m.Scale)
	}

	var inferred DataSize
	for _, r := range [...]Reg{m.Base, m.Index} {
		if r == 0 {
			continue
		}
		switch {
		case r.Family() == REG_RIP && r == m.Base:
		case r.Family() == REG_LEGACY && r.Width() >= 2:
		default:
			return SizeNone, makeError(ErrAddressingMode, "%v cannot address memory", r)
		}
		if !r.validIn(mode) {
			return SizeNone, makeError(ErrAddressingMode, "%v is not available in %v mode", r, mode)
		}
		if inferred != SizeNone && inferred != r.Size() {
			return SizeNone, makeError(ErrAddressingMode, "base %v and index %v differ in width", m.Base, m.Index)
		}
		inferred = r.Size()
	}

	asz := m.AddressSize
	switch {
	case asz == SizeNone && inferred != SizeNone:
		asz = inferred
	case asz == SizeNone:
		asz = ctx.Arch.AddressSize
	case inferred != SizeNone && inferred != asz:
		return SizeNone, makeError(ErrAddressingMode, "%v registers with %v addressing", inferred, asz)
	}
	if err := checkAddressSize(mode, asz); err != nil {
		return SizeNone, err
	}

	if m.Index != 0 && m.Index.Family() == REG_LEGACY && m.Index.Num() == 4 {
		return SizeNone, makeError(ErrAddressingMode, "%v cannot be an index", m.Index)
	}
	if asz == Bit16 && m.Scale > 1 {
		return SizeNone, makeError(ErrAddressingMode, "16-bit addressing cannot scale")
	}
	if m.Base != 0 && m.Base.Family() == REG_RIP {
		if mode != feats.Mode64 {
			return SizeNone, makeError(ErrAddressingMode, "%v-relative addressing outside 64-bit mode", m.Base)
		}
		if m.Index != 0 {
			return SizeNone, makeError(ErrAddressingMode, "%v cannot be combined with an index", m.Base)
		}
	}
	if m.RIP == RIPRelative {
		if mode != feats.Mode64 {
			return SizeNone, makeError(ErrAddressingMode, "RIP-relative addressing outside 64-bit mode")
		}
		if m.Base != 0 || m.Index != 0 {
			return SizeNone, makeError(ErrAddressingMode, "RIP-relative addressing with a base or index")
		}
	}
	return asz, nil
}

// dispSize applies the sizing policy to the displacement: explicit wins, unresolved values take
// the widest displacement, resolved values take none, 8 bits or the widest.
func (ea *EffectiveAddress) dispSize(ctx *Context, wide DataSize) (DataSize, error) {
	m := &ea.Mem
	if m.DispSize != SizeNone {
		if m.DispSize != Bit8 && m.DispSize != wide {
			return SizeNone, makeError(ErrAddressingMode, "%v displacement with %v addressing", m.DispSize, wide)
		}
		return m.DispSize, nil
	}
	if m.Disp == nil {
		return SizeNone, nil
	}
	v := m.Disp(ctx)
	switch {
	case !v.Resolved():
		return wide, nil
	case v.Int == 0:
		return SizeNone, nil
	case fitsSigned(v.Int, Bit8):
		return Bit8, nil
	}
	return wide, nil
}

func modFor(disp DataSize) byte {
	switch disp {
	case SizeNone:
		return modIndirect
	case Bit8:
		return modDisp8
	}
	return modDisp16or32
}

func (ea *EffectiveAddress) Construct(ctx *Context, enc *EncodedInstruction) error {
	if !ea.adjusted {
		return errNotAdjusted(ea)
	}
	asz, err := ea.addressSize(ctx)
	if err != nil {
		return err
	}
	if enc.Segment, err = segmentPrefix(ea.Segment); err != nil {
		return err
	}
	enc.AddrSize = asz != ctx.Arch.AddressSize
	enc.HasModRM = true
	if asz == Bit16 {
		return ea.construct16(ctx, enc)
	}
	return ea.construct32(ctx, enc, asz)
}

// construct16 encodes the fixed base/index combinations of 16-bit addressing.
func (ea *EffectiveAddress) construct16(ctx *Context, enc *EncodedInstruction) error {
	m := &ea.Mem
	if m.Base == 0 && m.Index == 0 {
		enc.Mod, enc.RM = modIndirect, 6
		enc.Disp = Field{Size: Bit16, Value: m.Disp}
		return nil
	}
	rm, ok := rm16(m.Base, m.Index)
	if !ok {
		return makeError(ErrAddressingMode, "[%v+%v] is not a 16-bit addressing form", m.Base, m.Index)
	}
	size, err := ea.dispSize(ctx, Bit16)
	if err != nil {
		return err
	}
	// rm=110 with mod=00 is [disp16]
	if rm == 6 && size == SizeNone {
		size = Bit8
	}
	enc.Mod, enc.RM = modFor(size), rm
	enc.Disp = Field{Size: size, Value: m.Disp, Signed: size == Bit8}
	return nil
}

func rm16(b, i Reg) (byte, bool) {
	if b == 0 {
		b, i = i, 0
	}
	if (b == SI || b == DI) && (i == BX || i == BP) {
		b, i = i, b
	}
	switch {
	case b == BX && i == SI:
		return 0, true
	case b == BX && i == DI:
		return 1, true
	case b == BP && i == SI:
		return 2, true
	case b == BP && i == DI:
		return 3, true
	case b == SI && i == 0:
		return 4, true
	case b == DI && i == 0:
		return 5, true
	case b == BP && i == 0:
		return 6, true
	case b == BX && i == 0:
		return 7, true
	}
	return 0, false
}

// construct32 encodes 32- and 64-bit addressing, including RIP-relative and SIB forms.
func (ea *EffectiveAddress) construct32(ctx *Context, enc *EncodedInstruction, asz DataSize) error {
	m := &ea.Mem
	mode64 := ctx.Arch.Mode == feats.Mode64
	b, i := m.Base, m.Index

	// displacement from the end of the instruction
	ripBase := b != 0 && b.Family() == REG_RIP
	ripTarget := b == 0 && i == 0 && mode64 && (m.RIP == RIPRelative || (m.RIP == RIPDefault && ctx.Arch.RIPRelative))
	if ripBase || ripTarget {
		enc.Mod, enc.RM = modIndirect, 5
		enc.Disp = Field{Size: Bit32, Value: m.Disp, Relative: ripTarget, Signed: true}
		return nil
	}

	if b == 0 && i == 0 {
		enc.Mod, enc.RM = modIndirect, 5
		if mode64 {
			// rm=101 means RIP-relative in 64-bit mode; absolute addresses go through SIB
			enc.RM = 4
			enc.HasSIB, enc.Scale, enc.Index, enc.Base = true, 0, 4, 5
		}
		enc.Disp = Field{Size: Bit32, Value: m.Disp, Signed: asz == Bit64}
		return nil
	}

	size, err := ea.dispSize(ctx, Bit32)
	if err != nil {
		return err
	}
	// rm/base=101 with mod=00 is the no-base form, so EBP, RBP and R13 need a displacement
	if b != 0 && b.low3() == 5 && size == SizeNone {
		size = Bit8
	}

	if b != 0 && i == 0 && b.low3() != 4 {
		enc.Mod, enc.RM = modFor(size), b.low3()
		if b.IsExtended() {
			enc.Rex |= rexB
		}
		enc.Disp = Field{Size: size, Value: m.Disp, Signed: size == Bit8 || asz == Bit64}
		return nil
	}

	enc.RM = 4
	enc.HasSIB = true
	enc.Scale = scaleBits(m.Scale)
	enc.Index = 4 // none
	if i != 0 {
		enc.Index = i.low3()
		if i.IsExtended() {
			enc.Rex |= rexX
		}
	}
	if b == 0 {
		enc.Base, size = 5, Bit32
		enc.Mod = modIndirect
	} else {
		enc.Base = b.low3()
		if b.IsExtended() {
			enc.Rex |= rexB
		}
		enc.Mod = modFor(size)
	}
	enc.Disp = Field{Size: size, Value: m.Disp, Signed: size == Bit8 || asz == Bit64}
	return nil
}

func scaleBits(scale uint8) byte {
	switch scale {
	case 2:
		return 1
	case 4:
		return 2
	case 8:
		return 3
	}
	return 0
}
