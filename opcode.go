package x86

import (
	"fmt"
	"strings"

	"github.com/wdamron/x86/feats"
	. "github.com/wdamron/x86/internal/flags"
)

// OpcodeVariant is one encoding form of a mnemonic.
type OpcodeVariant struct {
	Opcode   []byte
	Ext      int8 // ModRM.reg opcode extension, or -1
	Operands []OperandDescriptor

	Valid64  bool // legal in 64-bit mode
	Modes    feats.ModeSet
	Features feats.Feature
	Flags    uint32

	// OperandSize is the operand-size attribute of the form. It selects the 66 prefix and
	// REX.W; SizeNone for byte and size-less forms.
	OperandSize DataSize
}

func (v *OpcodeVariant) hasFlag(flag uint32) bool { return v.Flags&flag != 0 }

// Legal reports whether the variant can be encoded for arch, independently of its operands.
func (v *OpcodeVariant) Legal(arch Arch) bool {
	switch {
	case !v.Modes.Has(arch.Mode):
		return false
	case arch.Mode == feats.Mode64 && !v.Valid64:
		return false
	case v.OperandSize == Bit64 && arch.Mode != feats.Mode64:
		return false
	case v.Features&^arch.Features != 0:
		return false
	}
	return true
}

func (v *OpcodeVariant) String() string {
	var b strings.Builder
	for i, op := range v.Opcode {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02X", op)
	}
	if v.Ext >= 0 {
		fmt.Fprintf(&b, " /%d", v.Ext)
	}
	for i := range v.Operands {
		if i == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteString(", ")
		}
		b.WriteString(v.Operands[i].String())
	}
	return b.String()
}

// prefixes derives the size, mandatory and user prefixes of the instruction.
func (v *OpcodeVariant) prefixes(ctx *Context, enc *EncodedInstruction, user Prefix) error {
	mode := ctx.Arch.Mode
	if !v.hasFlag(NO_OSIZE) {
		switch v.OperandSize {
		case Bit16:
			enc.OpSize = mode != feats.Mode16
		case Bit32:
			enc.OpSize = mode == feats.Mode16
		case Bit64:
			if !v.hasFlag(DEFAULT64) {
				enc.Rex |= rexW
			}
		}
	}
	if v.hasFlag(WITH_REXW) {
		enc.Rex |= rexW
	}

	switch {
	case v.hasFlag(PREF_66):
		enc.Mandatory = 0x66
	case v.hasFlag(PREF_F2):
		enc.Mandatory = 0xf2
	case v.hasFlag(PREF_F3):
		enc.Mandatory = 0xf3
	}

	switch user {
	case 0:
	case PrefixLock:
		if !v.hasFlag(LOCK) {
			return makeError(ErrNoMatch, "LOCK prefix unsupported for %s", enc.Mnemonic)
		}
	case PrefixRep:
		if !v.hasFlag(REP | REPE) {
			return makeError(ErrNoMatch, "REP/REPE/REPZ prefix unsupported for %s", enc.Mnemonic)
		}
	case PrefixRepne:
		if !v.hasFlag(REPE) {
			return makeError(ErrNoMatch, "REPNE/REPNZ prefix unsupported for %s", enc.Mnemonic)
		}
	default:
		return fmt.Errorf("unknown prefix %#x", byte(user))
	}
	enc.Group1 = byte(user)
	return nil
}

// Opcode is a mnemonic with its encoding forms, ordered from the most specific (usually the
// shortest) to the most general.
type Opcode struct {
	Mnemonic string
	Variants []*OpcodeVariant
}

func (o *Opcode) String() string { return o.Mnemonic }

// CreateInstruction binds arguments to the opcode. Variant selection is deferred until the
// instruction is constructed against a Context.
func (o *Opcode) CreateInstruction(args ...Arg) *Instruction {
	return &Instruction{Opcode: o, Args: args}
}

// Encode selects a variant for args and encodes it in ctx.
func (o *Opcode) Encode(ctx *Context, args ...Arg) (*EncodedInstruction, error) {
	return o.CreateInstruction(args...).Encode(ctx)
}

// EncodeVariant encodes args with the variant at index, bypassing selection. The arguments must
// still match the variant's descriptors.
func (o *Opcode) EncodeVariant(ctx *Context, index int, args ...Arg) (*EncodedInstruction, error) {
	if index < 0 || index >= len(o.Variants) {
		return nil, fmt.Errorf("%s has no variant %d", o.Mnemonic, index)
	}
	v := o.Variants[index]
	ops := operands(args)
	if !v.Legal(ctx.Arch) || !v.matches(ctx, ops) {
		return nil, makeError(ErrNoMatch, "%s: operands do not match %v", o.Mnemonic, v)
	}
	return o.encodeWith(ctx, v, ops, 0)
}

// encodeWith adjusts every operand to v and then constructs them in order.
func (o *Opcode) encodeWith(ctx *Context, v *OpcodeVariant, ops []Operand, user Prefix) (*EncodedInstruction, error) {
	for i, op := range ops {
		if err := op.Adjust(&v.Operands[i]); err != nil {
			return nil, err
		}
	}
	enc := newEncodedInstruction(o.Mnemonic, v.Opcode)
	if v.Ext >= 0 {
		enc.HasModRM, enc.Reg = true, byte(v.Ext)
	}
	if err := v.prefixes(ctx, enc, user); err != nil {
		return nil, err
	}
	for _, op := range ops {
		if err := op.Construct(ctx, enc); err != nil {
			return nil, err
		}
	}
	if err := enc.check(ctx.Arch.Mode); err != nil {
		return nil, err
	}
	return enc, nil
}
