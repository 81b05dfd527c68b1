package x86

import "fmt"

// Value is the result of evaluating an Expr. A value which depends on a symbol that has not
// been defined yet is unresolved: Ref names that symbol and Int holds the constant part.
type Value struct {
	Int int64
	Ref *Symbol
}

// Resolved reports whether v is a known constant.
func (v Value) Resolved() bool { return v.Ref == nil }

func (v Value) String() string {
	if v.Ref == nil {
		return fmt.Sprintf("%#x", v.Int)
	}
	if v.Int == 0 {
		return v.Ref.Name
	}
	return fmt.Sprintf("%s%+d", v.Ref.Name, v.Int)
}

// Expr is a deferred, context-dependent expression. Immediates, displacements, relative and
// far targets and symbol definitions are all expressed as Exprs, so they can be re-evaluated
// once forward references have been defined.
type Expr func(ctx *Context) Value

// Const is a constant expression.
func Const(n int64) Expr {
	return func(*Context) Value { return Value{Int: n} }
}

// Sym references a symbol by name. The symbol is declared (as private) on first use if the
// context's symbol table has not seen it before.
func Sym(name string) Expr {
	return func(ctx *Context) Value {
		s := ctx.Symbols.Lookup(name)
		if v, ok := s.Value(); ok {
			return Value{Int: v}
		}
		return Value{Ref: s}
	}
}

// Here evaluates to the address of the construct being placed.
func Here() Expr {
	return func(ctx *Context) Value { return Value{Int: int64(ctx.Address)} }
}

// Plus offsets e by a constant.
func (e Expr) Plus(n int64) Expr {
	return func(ctx *Context) Value {
		v := e(ctx)
		v.Int += n
		return v
	}
}

// Sum adds two expressions. The result is unresolved if either operand is; a sum of two
// unresolved values keeps the first reference.
func Sum(a, b Expr) Expr {
	return func(ctx *Context) Value {
		va, vb := a(ctx), b(ctx)
		ref := va.Ref
		if ref == nil {
			ref = vb.Ref
		}
		return Value{Int: va.Int + vb.Int, Ref: ref}
	}
}

// Diff subtracts b from a. The difference of two values is only resolved once both are.
func Diff(a, b Expr) Expr {
	return func(ctx *Context) Value {
		va, vb := a(ctx), b(ctx)
		ref := va.Ref
		if ref == nil {
			ref = vb.Ref
		}
		return Value{Int: va.Int - vb.Int, Ref: ref}
	}
}

func (e Expr) eval(ctx *Context) Value {
	if e == nil {
		return Value{}
	}
	return e(ctx)
}
