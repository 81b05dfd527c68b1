package x86

import (
	"bytes"
	"embed"
	"errors"
	"io"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wdamron/x86/feats"
	x86flags "github.com/wdamron/x86/internal/flags"
)

//go:generate go run ./gen --catalog catalog --out opcodes.generated.go

//go:embed catalog/*.yaml
var catalogFiles embed.FS

type variantSpec struct {
	Op       []int    `yaml:"op"`
	Ext      *int     `yaml:"ext"`
	Operands []string `yaml:"operands"`
	Modes    []int    `yaml:"modes"`
	No64     bool     `yaml:"no64"`
	OSize    *int     `yaml:"osize"`
	Flags    []string `yaml:"flags"`
	Feats    []string `yaml:"feats"`
}

// Catalog maps mnemonics to their opcodes.
type Catalog struct {
	opcodes map[string]*Opcode
}

var defaultCatalog = func() *Catalog {
	c, err := LoadCatalog(catalogFiles, "catalog/*.yaml")
	if err != nil {
		panic(err)
	}
	return c
}()

// DefaultCatalog returns the built-in catalog which the opcode variables of this package are
// drawn from.
func DefaultCatalog() *Catalog { return defaultCatalog }

// LoadCatalog reads every YAML file in fsys matching pattern.
func LoadCatalog(fsys fs.FS, pattern string) (*Catalog, error) {
	names, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	c := &Catalog{opcodes: make(map[string]*Opcode)}
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		if err := c.parse(bytes.NewReader(data), name); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ParseCatalog reads one YAML catalog document.
func ParseCatalog(r io.Reader) (*Catalog, error) {
	c := &Catalog{opcodes: make(map[string]*Opcode)}
	if err := c.parse(r, "catalog"); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) parse(r io.Reader, source string) error {
	var doc map[string][]variantSpec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return makeError(ErrCatalog, "%s: %v", source, err)
	}
	for mnemonic, specs := range doc {
		mnemonic = strings.ToLower(mnemonic)
		if _, dup := c.opcodes[mnemonic]; dup {
			return makeError(ErrCatalog, "%s: %s defined twice", source, mnemonic)
		}
		o := &Opcode{Mnemonic: mnemonic}
		for i := range specs {
			v, err := specs[i].build()
			if err != nil {
				return makeError(err, "%s: %s[%d]", source, mnemonic, i)
			}
			o.Variants = append(o.Variants, v)
		}
		if len(o.Variants) == 0 {
			return makeError(ErrCatalog, "%s: %s has no variants", source, mnemonic)
		}
		c.opcodes[mnemonic] = o
	}
	return nil
}

func (s *variantSpec) build() (*OpcodeVariant, error) {
	v := &OpcodeVariant{Ext: -1, Valid64: !s.No64, Modes: feats.AllModes}

	if len(s.Op) == 0 || len(s.Op) > 3 {
		return nil, makeError(ErrCatalog, "opcode must have 1 to 3 bytes")
	}
	for _, b := range s.Op {
		if b < 0 || b > 0xff {
			return nil, makeError(ErrCatalog, "opcode byte %#x", b)
		}
		v.Opcode = append(v.Opcode, byte(b))
	}
	if s.Ext != nil {
		if *s.Ext < 0 || *s.Ext > 7 {
			return nil, makeError(ErrCatalog, "opcode extension %d", *s.Ext)
		}
		v.Ext = int8(*s.Ext)
	}

	if len(s.Modes) > 0 {
		var modes []feats.Mode
		for _, m := range s.Modes {
			if !feats.Mode(m).Valid() {
				return nil, makeError(ErrCatalog, "processor mode %d", m)
			}
			modes = append(modes, feats.Mode(m))
		}
		v.Modes = feats.ModeSetOf(modes...)
	}
	if v.Modes == feats.In64 && !v.Valid64 {
		return nil, makeError(ErrCatalog, "variant is legal in no mode")
	}

	for _, name := range s.Flags {
		f, ok := x86flags.Parse(name)
		if !ok {
			return nil, makeError(ErrCatalog, "unknown flag %q", name)
		}
		v.Flags |= f
	}
	for _, name := range s.Feats {
		f, ok := feats.ParseFeature(name)
		if !ok {
			return nil, makeError(ErrCatalog, "unknown feature %q", name)
		}
		v.Features |= f
	}

	if len(s.Operands) > 4 {
		return nil, makeError(ErrCatalog, "too many operands")
	}
	var reg, rm, opc, imm, extra int
	if v.Ext >= 0 {
		reg++
	}
	for _, text := range s.Operands {
		d, err := parseDescriptor(text)
		if err != nil {
			return nil, err
		}
		switch {
		case d.Kind == KindImmediate && d.Role == RoleExtraImmediate:
			extra++
		case d.Kind == KindImmediate, d.Kind == KindRelativeOffset, d.Kind == KindFarPointer:
			imm++
		case d.Kind == KindMemory, d.Role == RoleModRM:
			rm++
		case d.Role == RoleAddToOpcode:
			opc++
		case d.Kind == KindRegister && d.Role == RoleDefault:
			reg++
		}
		v.Operands = append(v.Operands, d)
	}
	if reg > 1 || rm > 1 || opc > 1 || imm > 1 || extra > 1 {
		return nil, makeError(ErrCatalog, "operands %v compete for one encoding slot", s.Operands)
	}
	if reg > 0 && rm == 0 {
		return nil, makeError(ErrCatalog, "ModRM.reg operand without an r/m operand")
	}

	if s.OSize != nil {
		sz, ok := SizeOfBits(*s.OSize)
		if !ok || sz > Bit64 {
			return nil, makeError(ErrCatalog, "operand size %d", *s.OSize)
		}
		if sz == Bit8 {
			sz = SizeNone
		}
		v.OperandSize = sz
	} else {
		v.OperandSize = impliedOperandSize(v.Operands)
	}
	return v, nil
}

// impliedOperandSize is the size of the first general-purpose register slot; byte-sized forms
// have no operand-size attribute.
func impliedOperandSize(ds []OperandDescriptor) DataSize {
	for i := range ds {
		d := &ds[i]
		var gp bool
		switch d.Kind {
		case KindRegister, KindRegisterOrMemory:
			gp = d.Classes&ClassGP != 0
		case KindFixedRegister:
			gp = d.Fixed.Class()&ClassGP != 0
		}
		if !gp {
			continue
		}
		if d.Size == Bit8 {
			return SizeNone
		}
		return d.Size
	}
	return SizeNone
}

// Lookup finds an opcode by its (case-insensitive) mnemonic.
func (c *Catalog) Lookup(mnemonic string) (*Opcode, bool) {
	o, ok := c.opcodes[strings.ToLower(mnemonic)]
	return o, ok
}

// Mnemonics lists the mnemonics of the catalog in sorted order.
func (c *Catalog) Mnemonics() []string {
	names := make([]string, 0, len(c.opcodes))
	for name := range c.opcodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Catalog) mustOpcode(mnemonic string) *Opcode {
	o, ok := c.Lookup(mnemonic)
	if !ok {
		panic("x86: catalog has no " + mnemonic)
	}
	return o
}
