package x86

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/wdamron/x86/feats"
)

// Arch holds the architecture defaults instructions are encoded against.
type Arch struct {
	Mode        feats.Mode
	OperandSize DataSize // default operand size
	AddressSize DataSize // default address size
	RIPRelative bool     // memory operands without base/index default to RIP-relative (64-bit mode)
	Features    feats.Feature
}

// Architecture presets.
var (
	Real16      = Arch{Mode: feats.Mode16, OperandSize: Bit16, AddressSize: Bit16, Features: feats.AllFeatures}
	Protected32 = Arch{Mode: feats.Mode32, OperandSize: Bit32, AddressSize: Bit32, Features: feats.AllFeatures}
	Long64      = Arch{Mode: feats.Mode64, OperandSize: Bit32, AddressSize: Bit64, RIPRelative: true, Features: feats.AllFeatures}
)

// ArchFor returns the preset for a processor mode.
func ArchFor(mode feats.Mode) (Arch, error) {
	switch mode {
	case feats.Mode16:
		return Real16, nil
	case feats.Mode32:
		return Protected32, nil
	case feats.Mode64:
		return Long64, nil
	}
	return Arch{}, fmt.Errorf("unsupported processor mode %v", mode)
}

// Section is a named region of output placed at Origin.
type Section struct {
	Name   string
	Origin uint64
}

// Context is the per-placement state an instruction is constructed and emitted against. The
// placement driver advances Address between constructs; the encoder only reads it.
type Context struct {
	Address uint64
	Section *Section
	Symbols *SymbolTable
	Arch    Arch

	// Log receives debug output about variant selection; nil disables logging.
	Log logrus.FieldLogger

	// provisional contexts belong to layout passes: unresolved references encode as zero.
	provisional bool
	onReloc     func(Relocation)
}

// NewContext creates a context at address 0 with an empty symbol table.
func NewContext(arch Arch) *Context {
	return &Context{Arch: arch, Symbols: NewSymbolTable()}
}

func (ctx *Context) log() logrus.FieldLogger {
	if ctx.Log == nil {
		return discard
	}
	return ctx.Log
}

func (ctx *Context) sectionName() string {
	if ctx.Section == nil {
		return ""
	}
	return ctx.Section.Name
}

func (ctx *Context) sectionOffset() uint64 {
	if ctx.Section == nil {
		return ctx.Address
	}
	return ctx.Address - ctx.Section.Origin
}

// unresolved handles a reference which has no value at emission time. Extern and weak symbols
// become relocations when a relocation sink is attached; anything else is undefined.
func (ctx *Context) unresolved(v Value, r Relocation) error {
	if ctx.provisional {
		return nil
	}
	if ctx.onReloc != nil && (v.Ref.Type == SymbolExtern || v.Ref.Type == SymbolWeak) {
		ctx.log().WithFields(logrus.Fields{"symbol": r.Symbol, "offset": r.Offset, "size": r.Size}).Debug("relocation")
		ctx.onReloc(r)
		return nil
	}
	return makeError(ErrUndefinedSymbol, "%s", v.Ref.Name)
}

// Relocation is a reference to a symbol that could not be resolved when the output was
// emitted. The field at Offset (relative to the start of its section) holds Addend.
type Relocation struct {
	Section  string
	Offset   uint64
	Size     DataSize
	Symbol   string
	Addend   int64
	Relative bool // PC-relative: the field is measured from the end of the instruction
}

var discard = func() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}()
