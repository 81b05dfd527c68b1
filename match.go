package x86

import (
	"github.com/sirupsen/logrus"
)

type sizeHinted interface {
	setHint(DataSize)
}

// operands converts arguments into fresh operands.
func operands(args []Arg) []Operand {
	ops := make([]Operand, len(args))
	for i, a := range args {
		ops[i] = a.operand()
	}
	return ops
}

// sizeHint is the data width v implies for memory operands without an explicit size: the size
// of the first general-purpose register filling a register slot, or of an accumulator filling a
// fixed slot. Count and port registers (CL, DX) say nothing about the width of the data.
func (v *OpcodeVariant) sizeHint(ops []Operand) DataSize {
	for i, op := range ops {
		r, ok := op.(*RegisterOperand)
		if !ok || r.Reg.Class()&ClassGP == 0 {
			continue
		}
		switch d := &v.Operands[i]; d.Kind {
		case KindRegister, KindRegisterOrMemory:
			return r.Reg.Size()
		case KindFixedRegister:
			if d.Fixed.Num() == 0 {
				return r.Reg.Size()
			}
		}
	}
	return SizeNone
}

func (v *OpcodeVariant) matches(ctx *Context, ops []Operand) bool {
	if len(v.Operands) != len(ops) {
		return false
	}
	hint := v.sizeHint(ops)
	for _, op := range ops {
		if h, ok := op.(sizeHinted); ok {
			h.setHint(hint)
		}
	}
	for i, op := range ops {
		if !op.IsMatch(ctx, &v.Operands[i]) {
			return false
		}
	}
	return true
}

// Select returns the first variant, in catalog order, which is legal for the active processor
// mode and whose descriptors all match ops positionally.
func (o *Opcode) Select(ctx *Context, ops []Operand) (int, *OpcodeVariant, error) {
	log := ctx.log()
	for i, v := range o.Variants {
		if !v.Legal(ctx.Arch) {
			continue
		}
		if !v.matches(ctx, ops) {
			log.WithFields(logrus.Fields{"mnemonic": o.Mnemonic, "variant": i}).Trace("operands rejected")
			continue
		}
		log.WithFields(logrus.Fields{"mnemonic": o.Mnemonic, "variant": i, "form": v.String()}).Debug("selected")
		return i, v, nil
	}
	return -1, nil, makeError(ErrNoMatch, "%s with %d operand(s) in %v mode", o.Mnemonic, len(ops), ctx.Arch.Mode)
}
