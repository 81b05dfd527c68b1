package x86

import (
	"strings"
)

// Statement is anything which can be placed in a section: instructions, labels, definitions,
// data and padding. Construct produces the statement's output blocks at ctx.Address.
type Statement interface {
	Construct(ctx *Context) ([]Emittable, error)
	String() string
}

// Prefix is a user-requested instruction prefix.
type Prefix byte

const (
	PrefixLock  Prefix = 0xf0
	PrefixRepne Prefix = 0xf2
	PrefixRep   Prefix = 0xf3
)

// Instruction is an opcode bound to arguments.
type Instruction struct {
	Opcode *Opcode
	Args   []Arg
	Prefix Prefix
}

// WithPrefix returns a copy of the instruction carrying a LOCK, REP or REPNE prefix. The prefix
// must be allowed by the variant selected at construction.
func (inst *Instruction) WithPrefix(p Prefix) *Instruction {
	c := *inst
	c.Prefix = p
	return &c
}

// Encode selects a variant and encodes the instruction at ctx.Address.
func (inst *Instruction) Encode(ctx *Context) (*EncodedInstruction, error) {
	ops := operands(inst.Args)
	_, v, err := inst.Opcode.Select(ctx, ops)
	if err != nil {
		return nil, err
	}
	return inst.Opcode.encodeWith(ctx, v, ops, inst.Prefix)
}

func (inst *Instruction) Construct(ctx *Context) ([]Emittable, error) {
	enc, err := inst.Encode(ctx)
	if err != nil {
		return nil, err
	}
	return []Emittable{enc}, nil
}

func (inst *Instruction) String() string {
	var b strings.Builder
	switch inst.Prefix {
	case PrefixLock:
		b.WriteString("lock ")
	case PrefixRep:
		b.WriteString("rep ")
	case PrefixRepne:
		b.WriteString("repne ")
	}
	b.WriteString(inst.Opcode.Mnemonic)
	for i, a := range inst.Args {
		if i == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteString(", ")
		}
		b.WriteString(argString(a))
	}
	return b.String()
}
