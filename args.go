package x86

import (
	"fmt"
	"strings"
)

// Arg is an instruction argument supplied by the caller. Every Arg produces a fresh Operand each
// time an instruction is constructed, so one Instruction can be placed on every layout pass.
//
// Reg, Mem, MemOffset, Imm8, Imm16, Imm32, Imm64 and the values returned by Imm, ImmExpr, Rel
// and Far implement Arg.
type Arg interface {
	operand() Operand
}

func (r Reg) operand() Operand { return &RegisterOperand{Reg: r} }

// RIPMode selects between RIP-relative and absolute addressing for memory operands without a
// base or index register in 64-bit mode.
type RIPMode uint8

const (
	RIPDefault  RIPMode = iota // follow Arch.RIPRelative
	RIPRelative                // Disp is a target address, encoded relative to the next instruction
	RIPAbsolute                // Disp is an absolute address
)

// Mem is a memory-reference argument: [Base + Index*Scale + Disp].
//
// Base may be RIP (or EIP), in which case Disp is the raw displacement from the next
// instruction. Size is the width of the referenced data; when it is zero the width is taken from
// the first general-purpose register argument of the instruction, or else the address size.
//
// Mem implements Arg.
type Mem struct {
	Base     Reg
	Index    Reg
	Scale    uint8 // 0, 1, 2, 4 or 8
	Disp     Expr
	DispSize DataSize // forces the displacement width

	Size        DataSize
	AddressSize DataSize // forces the address size
	RIP         RIPMode
	Segment     Reg // segment override
}

func (m Mem) operand() Operand { return &EffectiveAddress{Mem: m} }

func (m Mem) String() string {
	var parts []string
	if m.Base != 0 {
		parts = append(parts, m.Base.String())
	}
	if m.Index != 0 {
		if m.Scale > 1 {
			parts = append(parts, fmt.Sprintf("%v*%d", m.Index, m.Scale))
		} else {
			parts = append(parts, m.Index.String())
		}
	}
	if m.Disp != nil {
		parts = append(parts, "disp")
	}
	s := "[" + strings.Join(parts, "+") + "]"
	if m.Segment != 0 {
		s = m.Segment.String() + ":" + s
	}
	if m.Size != SizeNone {
		s = m.Size.String() + " " + s
	}
	return s
}

// MemOffset is an absolute memory offset without a ModRM byte, as taken by the accumulator
// forms of MOV.
//
// MemOffset implements Arg.
type MemOffset struct {
	Addr        Expr
	Size        DataSize
	AddressSize DataSize
	Segment     Reg
}

func (m MemOffset) operand() Operand { return &MemoryOffset{MemOffset: m} }

func (m MemOffset) String() string { return "moffs" }

// Imm8 is an 8-bit immediate argument.
type Imm8 int8

// Imm16 is a 16-bit immediate argument.
type Imm16 int16

// Imm32 is a 32-bit immediate argument.
type Imm32 int32

// Imm64 is a 64-bit immediate argument.
type Imm64 int64

func (i Imm8) operand() Operand  { return &Immediate{Value: Const(int64(i)), Preferred: Bit8} }
func (i Imm16) operand() Operand { return &Immediate{Value: Const(int64(i)), Preferred: Bit16} }
func (i Imm32) operand() Operand { return &Immediate{Value: Const(int64(i)), Preferred: Bit32} }
func (i Imm64) operand() Operand { return &Immediate{Value: Const(int64(i)), Preferred: Bit64} }

// Imm is an immediate whose size is inferred from its value.
func Imm(v int64) *Immediate { return &Immediate{Value: Const(v)} }

// ImmExpr is an immediate computed from an expression. A size of SizeNone infers the size.
func ImmExpr(e Expr, size DataSize) *Immediate { return &Immediate{Value: e, Preferred: size} }

// Rel is a branch target. Its encoded size is inferred from the distance once the target is
// known.
func Rel(target Expr) *RelativeOffset { return &RelativeOffset{Target: target} }

// RelSized is a branch target with an explicit encoded size.
func RelSized(target Expr, size DataSize) *RelativeOffset {
	return &RelativeOffset{Target: target, Preferred: size}
}

// Far is a selector:offset pair for direct far branches.
func Far(selector, offset Expr) *FarPointer { return &FarPointer{Selector: selector, Offset: offset} }

func argString(a Arg) string {
	switch a := a.(type) {
	case fmt.Stringer:
		return a.String()
	case Imm8, Imm16, Imm32, Imm64:
		return fmt.Sprint(a)
	}
	return fmt.Sprintf("%T", a)
}
