package x86

import (
	"fmt"
	"io"

	"github.com/wdamron/x86/feats"
)

// Emittable is a block of output bytes. Len must report exactly the number of bytes Emit writes
// for the same Context; relative offsets are computed from it.
type Emittable interface {
	Emit(w io.Writer, ctx *Context) (int, error)
	Len(ctx *Context) (int, error)
}

// REX bits
const (
	rexB byte = 1 << iota
	rexX
	rexR
	rexW
)

// ModRM.mod values
const (
	modIndirect byte = iota
	modDisp8
	modDisp16or32
	modDirect
)

// Field is a deferred value encoded after the opcode: a displacement or an immediate.
type Field struct {
	Size  DataSize
	Value Expr

	// Relative fields hold a target address; the encoded value is measured from the end of
	// the instruction.
	Relative bool

	// Signed fields are sign-extended by the processor.
	Signed bool
}

func (f *Field) set(size DataSize, value Expr) {
	f.Size, f.Value = size, value
}

// EncodedInstruction accumulates the pieces of one instruction while its operands are
// constructed, and emits them once complete.
type EncodedInstruction struct {
	Mnemonic string

	Group1    byte // LOCK, REP or REPNE
	Segment   byte // segment override
	AddrSize  bool // 0x67 address-size override
	OpSize    bool // 0x66 operand-size override
	Mandatory byte // mandatory 66/F2/F3 prefix of the variant
	Rex       byte // REX W/R/X/B bits

	rexForced  bool // SPL, BPL, SIL or DIL is named, which needs an empty REX
	rexBlocked bool // AH, CH, DH or BH is named, which cannot coexist with REX

	Opcode []byte

	HasModRM     bool
	Mod, Reg, RM byte

	HasSIB             bool
	Scale, Index, Base byte

	Disp     Field
	Imm      Field
	ExtraImm Field
}

func newEncodedInstruction(mnemonic string, opcode []byte) *EncodedInstruction {
	return &EncodedInstruction{Mnemonic: mnemonic, Opcode: append([]byte(nil), opcode...)}
}

func (e *EncodedInstruction) noteReg(r Reg) {
	switch {
	case r.Family() == REG_HIGHBYTE:
		e.rexBlocked = true
	case r.Family() == REG_LEGACY && r.Width() == 1 && r.Num() >= 4 && r.Num() < 8:
		e.rexForced = true
	}
}

// setReg places r in ModRM.reg.
func (e *EncodedInstruction) setReg(r Reg) {
	e.noteReg(r)
	e.HasModRM = true
	e.Reg = r.low3()
	if r.IsExtended() {
		e.Rex |= rexR
	}
}

// setRM places r in ModRM.rm with direct addressing.
func (e *EncodedInstruction) setRM(r Reg) {
	e.noteReg(r)
	e.HasModRM = true
	e.Mod, e.RM = modDirect, r.low3()
	if r.IsExtended() {
		e.Rex |= rexB
	}
}

// addToOpcode adds r's number to the last opcode byte.
func (e *EncodedInstruction) addToOpcode(r Reg) {
	e.noteReg(r)
	e.Opcode[len(e.Opcode)-1] += r.low3()
	if r.IsExtended() {
		e.Rex |= rexB
	}
}

func (e *EncodedInstruction) hasRex() bool { return e.Rex != 0 || e.rexForced }

// check validates the prefix combination once every operand has been constructed.
func (e *EncodedInstruction) check(mode feats.Mode) error {
	if !e.hasRex() {
		return nil
	}
	if mode != feats.Mode64 {
		return makeError(ErrNoMatch, "%s: REX prefix required outside 64-bit mode", e.Mnemonic)
	}
	if e.rexBlocked {
		return makeError(ErrNoMatch, "%s: AH, CH, DH and BH cannot be encoded with a REX prefix", e.Mnemonic)
	}
	return nil
}

// Length returns the encoded length in bytes.
func (e *EncodedInstruction) Length() int {
	n := len(e.Opcode)
	for _, p := range [...]bool{e.Group1 != 0, e.Segment != 0, e.AddrSize, e.OpSize && e.Mandatory != 0x66, e.Mandatory != 0, e.hasRex(), e.HasModRM, e.HasSIB} {
		if p {
			n++
		}
	}
	return n + e.Disp.Size.Bytes() + e.Imm.Size.Bytes() + e.ExtraImm.Size.Bytes()
}

func (e *EncodedInstruction) Len(*Context) (int, error) { return e.Length(), nil }

// Bytes encodes the instruction at ctx.Address.
func (e *EncodedInstruction) Bytes(ctx *Context) ([]byte, error) {
	length := e.Length()
	b := newBuffer(make([]byte, 16))
	for _, p := range [...]byte{e.Group1, e.Segment} {
		if p != 0 {
			b.Byte(p)
		}
	}
	if e.AddrSize {
		b.Byte(0x67)
	}
	if e.OpSize && e.Mandatory != 0x66 {
		b.Byte(0x66)
	}
	if e.Mandatory != 0 {
		b.Byte(e.Mandatory)
	}
	if e.hasRex() {
		b.Byte(0x40 | e.Rex)
	}
	b.Bytes(e.Opcode)
	if e.HasModRM {
		b.Byte(e.Mod<<6 | (e.Reg&7)<<3 | e.RM&7)
	}
	if e.HasSIB {
		b.Byte(e.Scale<<6 | (e.Index&7)<<3 | e.Base&7)
	}
	for _, f := range [...]*Field{&e.Disp, &e.Imm, &e.ExtraImm} {
		if err := e.writeField(b, ctx, f, length); err != nil {
			return nil, err
		}
	}
	if b.Len() != length {
		return nil, fmt.Errorf("%s: encoded %d bytes, expected %d", e.Mnemonic, b.Len(), length)
	}
	return b.Get(), nil
}

// Emit writes the instruction to w. Nothing is written if encoding fails.
func (e *EncodedInstruction) Emit(w io.Writer, ctx *Context) (int, error) {
	code, err := e.Bytes(ctx)
	if err != nil {
		return 0, err
	}
	return w.Write(code)
}

func (e *EncodedInstruction) writeField(b *buffer, ctx *Context, f *Field, length int) error {
	if f.Size == SizeNone {
		return nil
	}
	v := f.Value.eval(ctx)
	if !v.Resolved() {
		offset := b.Len()
		r := Relocation{
			Section:  ctx.sectionName(),
			Offset:   ctx.sectionOffset() + uint64(offset),
			Size:     f.Size,
			Symbol:   v.Ref.Name,
			Addend:   v.Int,
			Relative: f.Relative,
		}
		if f.Relative {
			r.Addend = v.Int - int64(length-offset)
		}
		if err := ctx.unresolved(v, r); err != nil {
			return err
		}
		b.Uint(0, f.Size)
		return nil
	}

	n := v.Int
	if f.Relative {
		n -= int64(ctx.Address) + int64(length)
	}
	ok := fits(n, f.Size)
	if f.Relative || f.Signed {
		ok = fitsSigned(n, f.Size)
	}
	if !ok {
		return makeError(ErrSizeOverflow, "%s: %d does not fit %v", e.Mnemonic, n, f.Size)
	}
	b.Uint(n, f.Size)
	return nil
}
