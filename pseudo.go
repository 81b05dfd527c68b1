package x86

import (
	"fmt"
	"io"
	"strings"

	"github.com/wdamron/x86/feats"
)

// Label defines a symbol at the address it is placed at.
type Label struct{ Name string }

func (l *Label) Construct(ctx *Context) ([]Emittable, error) {
	_, err := ctx.Symbols.Define(l.Name, ctx.sectionName(), int64(ctx.Address))
	return nil, err
}

func (l *Label) String() string { return l.Name + ":" }

// Define assigns the value of an expression to a symbol. The expression is evaluated where the
// definition is placed, so Here refers to the definition's own address.
type Define struct {
	Name  string
	Value Expr
}

func (d *Define) Construct(ctx *Context) ([]Emittable, error) {
	v := d.Value.eval(ctx)
	if !v.Resolved() {
		if ctx.provisional {
			return nil, nil
		}
		return nil, makeError(ErrUndefinedSymbol, "%s = %v", d.Name, v)
	}
	_, err := ctx.Symbols.Define(d.Name, ctx.sectionName(), v.Int)
	return nil, err
}

func (d *Define) String() string { return d.Name + " = <expr>" }

// Align pads the output up to the next multiple of Boundary with Fill bytes, or with NOP
// instructions when Nop is set.
type Align struct {
	Boundary uint64
	Fill     byte
	Nop      bool
}

func (a *Align) Construct(ctx *Context) ([]Emittable, error) {
	if a.Boundary == 0 {
		return nil, fmt.Errorf("zero alignment boundary")
	}
	n := (a.Boundary - ctx.Address%a.Boundary) % a.Boundary
	if n == 0 {
		return nil, nil
	}
	return []Emittable{&padding{n: int(n), fill: a.Fill, nop: a.Nop}}, nil
}

func (a *Align) String() string { return fmt.Sprintf("align %d", a.Boundary) }

// NopPad emits N bytes of NOP instructions.
type NopPad struct{ N int }

func (p *NopPad) Construct(ctx *Context) ([]Emittable, error) {
	if p.N < 0 {
		return nil, fmt.Errorf("negative padding length %d", p.N)
	}
	return []Emittable{&padding{n: p.N, nop: true}}, nil
}

func (p *NopPad) String() string { return fmt.Sprintf("nop %d", p.N) }

type padding struct {
	n    int
	fill byte
	nop  bool
}

func (p *padding) Len(*Context) (int, error) { return p.n, nil }

func (p *padding) Emit(w io.Writer, ctx *Context) (int, error) {
	b := newBuffer(make([]byte, 0, p.n))
	switch {
	case !p.nop:
		b.Fill(p.fill, p.n)
	case ctx.Arch.Mode == feats.Mode16:
		// the multi-byte forms decode differently without 32-bit operands
		b.Fill(0x90, p.n)
	default:
		b.Nop(p.n)
	}
	return w.Write(b.Get())
}

// Data emits each value as a little-endian integer of the given size. Values referring to
// undefined extern or weak symbols become absolute relocations.
type Data struct {
	Size   DataSize
	Values []Expr
}

func (d *Data) Construct(ctx *Context) ([]Emittable, error) {
	if d.Size < Bit8 || d.Size > Bit64 {
		return nil, makeError(ErrSizeOverflow, "unsupported data size %v", d.Size)
	}
	return []Emittable{d}, nil
}

func (d *Data) Len(*Context) (int, error) { return len(d.Values) * d.Size.Bytes(), nil }

func (d *Data) Emit(w io.Writer, ctx *Context) (int, error) {
	b := newBuffer(make([]byte, 0, len(d.Values)*d.Size.Bytes()))
	for _, e := range d.Values {
		v := e.eval(ctx)
		if !v.Resolved() {
			r := Relocation{
				Section: ctx.sectionName(),
				Offset:  ctx.sectionOffset() + uint64(b.Len()),
				Size:    d.Size,
				Symbol:  v.Ref.Name,
				Addend:  v.Int,
			}
			if err := ctx.unresolved(v, r); err != nil {
				return 0, err
			}
			b.Uint(0, d.Size)
			continue
		}
		if !fits(v.Int, d.Size) {
			return 0, makeError(ErrSizeOverflow, "data value %d does not fit %v", v.Int, d.Size)
		}
		b.Uint(v.Int, d.Size)
	}
	return w.Write(b.Get())
}

func (d *Data) String() string {
	return fmt.Sprintf("d%d x %d", d.Size.Bits(), len(d.Values))
}

// Bytes emits raw bytes.
type Bytes []byte

func (b Bytes) Construct(*Context) ([]Emittable, error) { return []Emittable{b}, nil }

func (b Bytes) Len(*Context) (int, error) { return len(b), nil }

func (b Bytes) Emit(w io.Writer, _ *Context) (int, error) { return w.Write(b) }

func (b Bytes) String() string {
	var s strings.Builder
	s.WriteString("db")
	for i, v := range b {
		if i == 0 {
			s.WriteByte(' ')
		} else {
			s.WriteString(", ")
		}
		fmt.Fprintf(&s, "0x%02x", v)
	}
	return s.String()
}
