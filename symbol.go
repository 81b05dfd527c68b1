package x86

import (
	"fmt"
	"sort"
)

// SymbolType is the linkage of a symbol.
type SymbolType uint8

const (
	SymbolPrivate SymbolType = iota
	SymbolPublic
	SymbolWeak
	SymbolExtern
)

func (t SymbolType) String() string {
	switch t {
	case SymbolPrivate:
		return "private"
	case SymbolPublic:
		return "public"
	case SymbolWeak:
		return "weak"
	case SymbolExtern:
		return "extern"
	}
	return fmt.Sprintf("SymbolType(%d)", uint8(t))
}

// Symbol is a named value. A symbol is declared when first mentioned, defined exactly once per
// layout pass by the construct which owns it, and may be read any number of times. Reads which
// happen before the definition observe the value from the previous pass, or nothing at all on
// the first pass.
type Symbol struct {
	Name    string
	Type    SymbolType
	Section string

	value   int64
	defined bool
	pass    int // pass in which the symbol was last defined
}

// Value returns the symbol's value, if it has been defined.
func (s *Symbol) Value() (int64, bool) { return s.value, s.defined }

// Defined reports whether the symbol has a value.
func (s *Symbol) Defined() bool { return s.defined }

func (s *Symbol) String() string {
	if !s.defined {
		return fmt.Sprintf("%s (%s, undefined)", s.Name, s.Type)
	}
	return fmt.Sprintf("%s (%s) = %#x", s.Name, s.Type, s.value)
}

// SymbolTable holds the symbols of one translation unit.
type SymbolTable struct {
	syms  map[string]*Symbol
	order []*Symbol
	pass  int
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{syms: make(map[string]*Symbol)}
}

// Lookup returns the symbol with the given name, declaring it as private if it is unknown.
func (t *SymbolTable) Lookup(name string) *Symbol {
	if s, ok := t.syms[name]; ok {
		return s
	}
	s := &Symbol{Name: name, Type: SymbolPrivate}
	t.syms[name] = s
	t.order = append(t.order, s)
	return s
}

// Get returns the symbol with the given name without declaring it.
func (t *SymbolTable) Get(name string) (*Symbol, bool) {
	s, ok := t.syms[name]
	return s, ok
}

// Declare sets the linkage of a symbol. A symbol may only change its declared type while it is
// still private (the default for symbols that were referenced before their declaration).
func (t *SymbolTable) Declare(name string, typ SymbolType) (*Symbol, error) {
	s := t.Lookup(name)
	if s.Type != typ && s.Type != SymbolPrivate {
		return nil, makeError(ErrSymbolRedefined, "%s already declared %s, cannot redeclare as %s", name, s.Type, typ)
	}
	if typ == SymbolExtern && s.defined {
		return nil, makeError(ErrSymbolRedefined, "%s is defined locally and cannot be extern", name)
	}
	s.Type = typ
	return s, nil
}

// Define assigns a value to a symbol for the current pass. Defining a symbol twice within one
// pass, or defining an extern symbol, fails.
func (t *SymbolTable) Define(name, section string, value int64) (*Symbol, error) {
	s := t.Lookup(name)
	if s.Type == SymbolExtern {
		return nil, makeError(ErrSymbolRedefined, "cannot define extern symbol %s", name)
	}
	if s.defined && s.pass == t.pass {
		return nil, makeError(ErrSymbolRedefined, "%s", name)
	}
	s.value, s.defined, s.pass, s.Section = value, true, t.pass, section
	return s, nil
}

// Pass returns the current layout pass.
func (t *SymbolTable) Pass() int { return t.pass }

// nextPass starts a new layout pass. Values from the previous pass stay readable.
func (t *SymbolTable) nextPass() { t.pass++ }

// Symbols returns every known symbol in declaration order.
func (t *SymbolTable) Symbols() []*Symbol {
	return append([]*Symbol(nil), t.order...)
}

// Defined returns the defined symbols sorted by value, then name.
func (t *SymbolTable) Defined() []*Symbol {
	var out []*Symbol
	for _, s := range t.order {
		if s.defined {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].value != out[j].value {
			return out[i].value < out[j].value
		}
		return out[i].Name < out[j].Name
	})
	return out
}
