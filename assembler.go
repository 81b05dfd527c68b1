package x86

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/wdamron/x86/feats"
)

// DefaultMaxPasses bounds the number of layout passes an Assembler runs before giving up.
const DefaultMaxPasses = 16

// An Assembler places statements into sections and encodes them. Statements are only recorded
// as they are added; Assemble lays them out repeatedly until every address and symbol value is
// stable, and then emits the final bytes.
//
// Builder methods record the first error in Err, after which they do nothing.
type Assembler struct {
	arch      Arch
	log       logrus.FieldLogger
	symbols   *SymbolTable
	sections  []*sectionBody
	cur       *sectionBody
	err       error
	MaxPasses int
}

type sectionBody struct {
	Section
	stmts []Statement
}

// Create a new Assembler for arch. Statements go to a ".text" section at origin 0 until
// another section is selected.
func NewAssembler(arch Arch) *Assembler {
	a := &Assembler{arch: arch, symbols: NewSymbolTable(), MaxPasses: DefaultMaxPasses}
	a.Section(".text", 0)
	return a
}

// SetLogger attaches a logger for layout and variant-selection output.
func (a *Assembler) SetLogger(l logrus.FieldLogger) { a.log = l }

func (a *Assembler) logger() logrus.FieldLogger {
	if a.log == nil {
		return discard
	}
	return a.log
}

// Get the architecture defaults instructions are encoded against.
func (a *Assembler) Arch() Arch { return a.arch }

// Get the current, allowable CPU feature-set for instruction-matching.
func (a *Assembler) Features() feats.Feature { return a.arch.Features }

// Restrict the allowable CPU feature-set for instruction-matching.
func (a *Assembler) SetFeatures(enabledFeatures feats.Feature) { a.arch.Features = enabledFeatures }

// Control the allowable CPU feature-set for instruction-matching.
func (a *Assembler) DisableFeature(feature feats.Feature) { a.arch.Features &^= feature }

// Control the allowable CPU feature-set for instruction-matching.
func (a *Assembler) EnableFeature(feature feats.Feature) { a.arch.Features |= feature }

// Symbols returns the symbol table of the assembler.
func (a *Assembler) Symbols() *SymbolTable { return a.symbols }

// Get the first error recorded by a builder method.
func (a *Assembler) Err() error { return a.err }

// Section selects the section named name, creating it at origin if it does not exist yet. The
// origin of an existing section is left unchanged.
func (a *Assembler) Section(name string, origin uint64) {
	for _, s := range a.sections {
		if s.Name == name {
			a.cur = s
			return
		}
	}
	a.cur = &sectionBody{Section: Section{Name: name, Origin: origin}}
	a.sections = append(a.sections, a.cur)
}

// Add appends statements to the current section.
func (a *Assembler) Add(stmts ...Statement) {
	if a.err != nil {
		return
	}
	a.cur.stmts = append(a.cur.stmts, stmts...)
}

// Add an instruction to the current section. Variant selection happens during layout.
func (a *Assembler) Inst(op *Opcode, args ...Arg) {
	if op == nil {
		a.fail(fmt.Errorf("nil opcode"))
		return
	}
	a.Add(op.CreateInstruction(args...))
}

// Add an instruction prefixed with LOCK.
func (a *Assembler) Lock(op *Opcode, args ...Arg) {
	a.Add(op.CreateInstruction(args...).WithPrefix(PrefixLock))
}

// Add an instruction prefixed with REP (or REPE/REPZ).
func (a *Assembler) Rep(op *Opcode, args ...Arg) {
	a.Add(op.CreateInstruction(args...).WithPrefix(PrefixRep))
}

// Add an instruction prefixed with REPNE (or REPNZ).
func (a *Assembler) Repne(op *Opcode, args ...Arg) {
	a.Add(op.CreateInstruction(args...).WithPrefix(PrefixRepne))
}

// Label defines name at the current position.
func (a *Assembler) Label(name string) { a.Add(&Label{Name: name}) }

// Define assigns the value of e, evaluated at the current position, to name.
func (a *Assembler) Define(name string, e Expr) { a.Add(&Define{Name: name, Value: e}) }

func (a *Assembler) declare(typ SymbolType, names []string) {
	if a.err != nil {
		return
	}
	for _, name := range names {
		if _, err := a.symbols.Declare(name, typ); err != nil {
			a.fail(err)
			return
		}
	}
}

// Extern declares symbols defined outside of the assembled program. References to them are
// emitted as relocations.
func (a *Assembler) Extern(names ...string) { a.declare(SymbolExtern, names) }

// Public declares symbols which are visible outside of the assembled program.
func (a *Assembler) Public(names ...string) { a.declare(SymbolPublic, names) }

// Weak declares symbols which may be left undefined; references to undefined weak symbols
// become relocations.
func (a *Assembler) Weak(names ...string) { a.declare(SymbolWeak, names) }

// Align pads with zero bytes to a multiple of boundary.
func (a *Assembler) Align(boundary uint64) { a.Add(&Align{Boundary: boundary}) }

// AlignWith pads with fill bytes to a multiple of boundary.
func (a *Assembler) AlignWith(boundary uint64, fill byte) {
	a.Add(&Align{Boundary: boundary, Fill: fill})
}

// AlignNop pads with NOP instructions to a multiple of boundary.
func (a *Assembler) AlignNop(boundary uint64) { a.Add(&Align{Boundary: boundary, Nop: true}) }

// Encode length bytes of NOP instructions.
func (a *Assembler) Nop(length int) { a.Add(&NopPad{N: length}) }

// Write raw data.
func (a *Assembler) Raw(data []byte) { a.Add(Bytes(append([]byte(nil), data...))) }

// Data writes values as little-endian integers of the given size.
func (a *Assembler) Data(size DataSize, values ...Expr) {
	a.Add(&Data{Size: size, Values: values})
}

func (a *Assembler) fail(err error) {
	if a.err == nil {
		a.err = err
	}
}

// SectionImage is the assembled content of a section.
type SectionImage struct {
	Section
	Code []byte
}

// Program is the result of assembly.
type Program struct {
	Sections    []SectionImage
	Symbols     *SymbolTable
	Relocations []Relocation
	Passes      int // layout passes run before emission
}

// Section returns the image of the named section.
func (p *Program) Section(name string) (SectionImage, bool) {
	for _, s := range p.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return SectionImage{}, false
}

// layout records the address of every statement of every section for one pass.
type layout [][]uint64

func (l layout) equal(o layout) bool { return slices.EqualFunc(l, o, slices.Equal[[]uint64]) }

func (a *Assembler) snapshot() map[string]int64 {
	m := make(map[string]int64)
	for _, s := range a.symbols.Defined() {
		m[s.Name] = s.value
	}
	return m
}

// construct places the statements of sec. emit, if not nil, receives each output block at its
// own address.
func (a *Assembler) construct(ctx *Context, sec *sectionBody, emit func(b Emittable) (int, error)) ([]uint64, error) {
	ctx.Section = &sec.Section
	ctx.Address = sec.Origin
	addrs := make([]uint64, len(sec.stmts)+1)
	for i, stmt := range sec.stmts {
		addrs[i] = ctx.Address
		fail := func(err error) error {
			return &InstructionError{Section: sec.Name, Index: i, Address: ctx.Address, What: stmt.String(), Err: err}
		}
		blocks, err := stmt.Construct(ctx)
		if err != nil {
			return nil, fail(err)
		}
		for _, b := range blocks {
			n, err := b.Len(ctx)
			if err != nil {
				return nil, fail(err)
			}
			if emit != nil {
				w, err := emit(b)
				if err != nil {
					return nil, fail(err)
				}
				if w != n {
					return nil, fail(fmt.Errorf("emitted %d bytes, expected %d", w, n))
				}
			}
			ctx.Address += uint64(n)
		}
	}
	addrs[len(sec.stmts)] = ctx.Address
	return addrs, nil
}

// Assemble lays out every section until statement addresses and symbol values stop changing,
// then emits the sections. Undefined extern and weak symbols are returned as relocations; any
// other undefined symbol fails with ErrUndefinedSymbol.
func (a *Assembler) Assemble() (*Program, error) {
	if a.err != nil {
		return nil, a.err
	}
	log := a.logger()
	maxPasses := a.MaxPasses
	if maxPasses <= 0 {
		maxPasses = DefaultMaxPasses
	}

	ctx := &Context{Symbols: a.symbols, Arch: a.arch, Log: a.log, provisional: true}
	var prev layout
	var prevValues map[string]int64
	pass := 0
	for {
		if pass == maxPasses {
			return nil, makeError(ErrNoConvergence, "after %d passes", pass)
		}
		pass++
		a.symbols.nextPass()
		cur := make(layout, len(a.sections))
		for i, sec := range a.sections {
			addrs, err := a.construct(ctx, sec, nil)
			if err != nil {
				return nil, err
			}
			cur[i] = addrs
		}
		values := a.snapshot()
		stable := prev != nil && cur.equal(prev) && maps.Equal(values, prevValues)
		log.WithFields(logrus.Fields{"pass": pass, "symbols": len(values), "stable": stable}).Debug("layout pass")
		if stable {
			break
		}
		prev, prevValues = cur, values
	}

	prog := &Program{Symbols: a.symbols, Passes: pass}
	ctx.provisional = false
	ctx.onReloc = func(r Relocation) { prog.Relocations = append(prog.Relocations, r) }
	a.symbols.nextPass()
	for i, sec := range a.sections {
		var out bytes.Buffer
		addrs, err := a.construct(ctx, sec, func(b Emittable) (int, error) { return b.Emit(&out, ctx) })
		if err != nil {
			return nil, err
		}
		if !slices.Equal(addrs, prev[i]) {
			return nil, makeError(ErrNoConvergence, "section %s changed during emission", sec.Name)
		}
		prog.Sections = append(prog.Sections, SectionImage{Section: sec.Section, Code: out.Bytes()})
	}
	log.WithFields(logrus.Fields{"passes": pass, "relocations": len(prog.Relocations)}).Debug("assembled")
	return prog, nil
}
