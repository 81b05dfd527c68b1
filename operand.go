package x86

import (
	"fmt"

	"github.com/wdamron/x86/feats"
)

// Operand is one argument of an instruction being encoded. The implementations are
// RegisterOperand, EffectiveAddress, Immediate, RelativeOffset, FarPointer and MemoryOffset.
//
// IsMatch tests the operand against a descriptor without side effects. Adjust binds the operand
// to the descriptor of the selected variant, and Construct writes its contribution into the
// instruction; Construct fails with ErrEncodingRole if Adjust was not called first.
type Operand interface {
	Arg
	IsMatch(ctx *Context, d *OperandDescriptor) bool
	Adjust(d *OperandDescriptor) error
	Construct(ctx *Context, enc *EncodedInstruction) error
	PreferredSize() DataSize
	Size(ctx *Context) DataSize
	isOperand()
}

var (
	_ Operand = (*RegisterOperand)(nil)
	_ Operand = (*EffectiveAddress)(nil)
	_ Operand = (*Immediate)(nil)
	_ Operand = (*RelativeOffset)(nil)
	_ Operand = (*FarPointer)(nil)
	_ Operand = (*MemoryOffset)(nil)
)

func errNotAdjusted(op Operand) error {
	return makeError(ErrEncodingRole, "%T constructed before adjust", op)
}

// RegisterOperand is a register argument.
type RegisterOperand struct {
	Reg      Reg
	role     EncodingRole
	adjusted bool
}

func (*RegisterOperand) isOperand() {}

func (r *RegisterOperand) operand() Operand { c := *r; return &c }

func (r *RegisterOperand) String() string { return r.Reg.String() }

func (r *RegisterOperand) IsMatch(ctx *Context, d *OperandDescriptor) bool {
	if !r.Reg.validIn(ctx.Arch.Mode) {
		return false
	}
	switch d.Kind {
	case KindFixedRegister:
		return r.Reg == d.Fixed
	case KindRegister, KindRegisterOrMemory:
		return r.Reg.Class()&d.Classes != 0
	}
	return false
}

func (r *RegisterOperand) Adjust(d *OperandDescriptor) error {
	switch d.Kind {
	case KindFixedRegister, KindRegister, KindRegisterOrMemory:
	default:
		return makeError(ErrEncodingRole, "register %v cannot fill a %v slot", r.Reg, d.Kind)
	}
	r.role, r.adjusted = d.Role, true
	return nil
}

func (r *RegisterOperand) Construct(ctx *Context, enc *EncodedInstruction) error {
	if !r.adjusted {
		return errNotAdjusted(r)
	}
	switch r.role {
	case RoleDefault:
		enc.setReg(r.Reg)
	case RoleModRM:
		enc.setRM(r.Reg)
	case RoleAddToOpcode:
		enc.addToOpcode(r.Reg)
	case RoleIgnore:
	default:
		return makeError(ErrEncodingRole, "register %v cannot take role %d", r.Reg, r.role)
	}
	return nil
}

func (r *RegisterOperand) PreferredSize() DataSize { return r.Reg.Size() }

func (r *RegisterOperand) Size(*Context) DataSize { return r.Reg.Size() }

// Immediate is a constant (or deferred) value encoded after the opcode.
type Immediate struct {
	Value     Expr
	Preferred DataSize // explicit size; SizeNone infers it

	size     DataSize
	signed   bool
	extra    bool
	adjusted bool
}

func (*Immediate) isOperand() {}

func (i *Immediate) operand() Operand { c := *i; return &c }

func (i *Immediate) String() string { return "imm" }

func (i *Immediate) PreferredSize() DataSize { return i.Preferred }

// Size is the explicit size, or the smallest size holding the resolved value, or the default
// operand size while the value is unresolved. Once adjusted it is the size of the slot.
func (i *Immediate) Size(ctx *Context) DataSize {
	if i.adjusted {
		return i.size
	}
	if i.Preferred != SizeNone {
		return i.Preferred
	}
	v := i.Value.eval(ctx)
	if !v.Resolved() {
		return ctx.Arch.OperandSize
	}
	return smallestSize(v.Int)
}

func (i *Immediate) IsMatch(ctx *Context, d *OperandDescriptor) bool {
	if d.Kind != KindImmediate {
		return false
	}
	if i.Preferred > d.Size {
		return false
	}
	v := i.Value.eval(ctx)
	if !v.Resolved() {
		// the value may turn out not to fit an 8-bit sign-extended slot
		return i.Preferred != SizeNone || !(d.SignExtended && d.Size == Bit8)
	}
	if d.SignExtended {
		return fitsSigned(v.Int, d.Size)
	}
	return fits(v.Int, d.Size)
}

// Adjust widens the immediate to the slot. Immediates never narrow.
func (i *Immediate) Adjust(d *OperandDescriptor) error {
	if d.Kind != KindImmediate {
		return makeError(ErrEncodingRole, "immediate cannot fill a %v slot", d.Kind)
	}
	if i.Preferred > d.Size {
		return makeError(ErrEncodingRole, "%v immediate cannot narrow to %v", i.Preferred, d.Size)
	}
	i.size, i.signed, i.extra, i.adjusted = d.Size, d.SignExtended, d.Role == RoleExtraImmediate, true
	return nil
}

func (i *Immediate) Construct(ctx *Context, enc *EncodedInstruction) error {
	if !i.adjusted {
		return errNotAdjusted(i)
	}
	f := &enc.Imm
	if i.extra {
		f = &enc.ExtraImm
	}
	if f.Size != SizeNone {
		return makeError(ErrEncodingRole, "immediate slot already filled")
	}
	f.set(i.size, i.Value)
	f.Signed = i.signed
	return nil
}

// RelativeOffset is a branch target, encoded as the distance from the end of the instruction.
type RelativeOffset struct {
	Target    Expr
	Preferred DataSize

	size     DataSize
	adjusted bool
}

func (*RelativeOffset) isOperand() {}

func (r *RelativeOffset) operand() Operand { c := *r; return &c }

func (r *RelativeOffset) String() string { return "rel" }

func (r *RelativeOffset) PreferredSize() DataSize { return r.Preferred }

func nearSize(mode feats.Mode) DataSize {
	if mode == feats.Mode16 {
		return Bit16
	}
	return Bit32
}

// Size is the explicit size, or 8 bits when the resolved target is within reach of a short
// branch, or else the near branch size of the processor mode. Unresolved targets always take
// the near size.
func (r *RelativeOffset) Size(ctx *Context) DataSize {
	if r.adjusted {
		return r.size
	}
	if r.Preferred != SizeNone {
		return r.Preferred
	}
	v := r.Target.eval(ctx)
	if v.Resolved() && shortReach(v.Int-int64(ctx.Address)) {
		return Bit8
	}
	return nearSize(ctx.Arch.Mode)
}

// shortReach reports whether a branch dist bytes from its own start can be encoded with an
// 8-bit offset, for any short branch encoding of 2 to 6 bytes.
func shortReach(dist int64) bool {
	return dist-2 <= 127 && dist-6 >= -128
}

func (r *RelativeOffset) IsMatch(ctx *Context, d *OperandDescriptor) bool {
	if d.Kind != KindRelativeOffset {
		return false
	}
	if r.Preferred != SizeNone {
		return r.Preferred == d.Size
	}
	return d.Forced || d.Size >= r.Size(ctx)
}

func (r *RelativeOffset) Adjust(d *OperandDescriptor) error {
	if d.Kind != KindRelativeOffset {
		return makeError(ErrEncodingRole, "relative offset cannot fill a %v slot", d.Kind)
	}
	if r.Preferred != SizeNone && r.Preferred != d.Size {
		return makeError(ErrEncodingRole, "%v relative offset cannot fill a %v slot", r.Preferred, d.Size)
	}
	r.size, r.adjusted = d.Size, true
	return nil
}

func (r *RelativeOffset) Construct(ctx *Context, enc *EncodedInstruction) error {
	if !r.adjusted {
		return errNotAdjusted(r)
	}
	enc.Imm = Field{Size: r.size, Value: r.Target, Relative: true, Signed: true}
	return nil
}

// FarPointer is the selector:offset target of a direct far branch.
type FarPointer struct {
	Selector  Expr
	Offset    Expr
	Preferred DataSize // offset size

	size     DataSize
	adjusted bool
}

func (*FarPointer) isOperand() {}

func (f *FarPointer) operand() Operand { c := *f; return &c }

func (f *FarPointer) String() string { return "far" }

func (f *FarPointer) PreferredSize() DataSize { return f.Preferred }

// Size is the size of the offset part: explicit, else the smallest size holding a resolved
// offset, else the default operand size. It is never less than 16 bits.
func (f *FarPointer) Size(ctx *Context) DataSize {
	if f.adjusted {
		return f.size
	}
	if f.Preferred != SizeNone {
		return max(f.Preferred, Bit16)
	}
	if v := f.Offset.eval(ctx); v.Resolved() {
		return max(smallestSize(v.Int), Bit16)
	}
	return max(ctx.Arch.OperandSize, Bit16)
}

func (f *FarPointer) IsMatch(ctx *Context, d *OperandDescriptor) bool {
	return d.Kind == KindFarPointer && f.Size(ctx) == d.Size
}

func (f *FarPointer) Adjust(d *OperandDescriptor) error {
	if d.Kind != KindFarPointer {
		return makeError(ErrEncodingRole, "far pointer cannot fill a %v slot", d.Kind)
	}
	f.size, f.adjusted = d.Size, true
	return nil
}

func (f *FarPointer) Construct(ctx *Context, enc *EncodedInstruction) error {
	if !f.adjusted {
		return errNotAdjusted(f)
	}
	enc.Imm.set(f.size, f.Offset)
	enc.ExtraImm.set(Bit16, f.Selector)
	return nil
}

// MemoryOffset is an absolute address encoded directly after the opcode.
type MemoryOffset struct {
	MemOffset

	hint     DataSize
	adjusted bool
}

func (*MemoryOffset) isOperand() {}

func (m *MemoryOffset) operand() Operand { c := *m; return &c }

func (m *MemoryOffset) setHint(s DataSize) { m.hint = s }

func (m *MemoryOffset) PreferredSize() DataSize { return m.MemOffset.Size }

func (m *MemoryOffset) Size(*Context) DataSize {
	if m.MemOffset.Size != SizeNone {
		return m.MemOffset.Size
	}
	return m.hint
}

func (m *MemoryOffset) IsMatch(ctx *Context, d *OperandDescriptor) bool {
	if d.Kind != KindMemoryOffset {
		return false
	}
	if _, err := m.addressSize(ctx); err != nil {
		return false
	}
	return m.Size(ctx) == d.Size
}

func (m *MemoryOffset) addressSize(ctx *Context) (DataSize, error) {
	asz := m.AddressSize
	if asz == SizeNone {
		asz = ctx.Arch.AddressSize
	}
	return asz, checkAddressSize(ctx.Arch.Mode, asz)
}

func (m *MemoryOffset) Adjust(d *OperandDescriptor) error {
	if d.Kind != KindMemoryOffset {
		return makeError(ErrEncodingRole, "memory offset cannot fill a %v slot", d.Kind)
	}
	m.adjusted = true
	return nil
}

func (m *MemoryOffset) Construct(ctx *Context, enc *EncodedInstruction) error {
	if !m.adjusted {
		return errNotAdjusted(m)
	}
	asz, err := m.addressSize(ctx)
	if err != nil {
		return err
	}
	enc.AddrSize = asz != ctx.Arch.AddressSize
	if enc.Segment, err = segmentPrefix(m.Segment); err != nil {
		return err
	}
	enc.Disp.set(asz, m.Addr)
	return nil
}

// checkAddressSize reports whether asz is an address size the processor mode can select.
func checkAddressSize(mode feats.Mode, asz DataSize) error {
	switch {
	case mode == feats.Mode64 && (asz == Bit32 || asz == Bit64):
	case mode != feats.Mode64 && (asz == Bit16 || asz == Bit32):
	default:
		return makeError(ErrAddressingMode, "%v addressing is not available in %v mode", asz, mode)
	}
	return nil
}

func segmentPrefix(seg Reg) (byte, error) {
	if seg == 0 {
		return 0, nil
	}
	if seg.Family() != REG_SEGMENT {
		return 0, makeError(ErrAddressingMode, "%v is not a segment register", seg)
	}
	return [...]byte{0x26, 0x2e, 0x36, 0x3e, 0x64, 0x65}[seg.Num()], nil
}

func (k EncodingRole) String() string {
	switch k {
	case RoleDefault:
		return "default"
	case RoleAddToOpcode:
		return "opcode"
	case RoleModRM:
		return "rm"
	case RoleExtraImmediate:
		return "extra"
	case RoleIgnore:
		return "ignore"
	}
	return fmt.Sprintf("EncodingRole(%d)", uint8(k))
}
