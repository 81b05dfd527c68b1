package x86lookup

import (
	"github.com/wdamron/x86"
)

const maxMnemonicLength = 16

// Alternative mnemonics accepted by assemblers for the same opcode.
var aliases = map[string]string{
	"jc": "jb", "jnae": "jb", "jnc": "jae", "jnb": "jae", "jz": "je", "jnz": "jne",
	"jna": "jbe", "jnbe": "ja", "jpe": "jp", "jpo": "jnp",
	"jnge": "jl", "jnl": "jge", "jng": "jle", "jnle": "jg",

	"setc": "setb", "setnae": "setb", "setnc": "setae", "setnb": "setae", "setz": "sete", "setnz": "setne",
	"setna": "setbe", "setnbe": "seta", "setpe": "setp", "setpo": "setnp",
	"setnge": "setl", "setnl": "setge", "setng": "setle", "setnle": "setg",

	"cmovc": "cmovb", "cmovnae": "cmovb", "cmovnc": "cmovae", "cmovnb": "cmovae", "cmovz": "cmove", "cmovnz": "cmovne",
	"cmovna": "cmovbe", "cmovnbe": "cmova", "cmovpe": "cmovp", "cmovpo": "cmovnp",
	"cmovnge": "cmovl", "cmovnl": "cmovge", "cmovng": "cmovle", "cmovnle": "cmovg",

	"sal":    "shl",
	"loopz":  "loope",
	"loopnz": "loopne",
	"retn":   "ret",
}

// Lookup the opcode for a mnemonic in the built-in catalog. The mnemonic will be converted to
// lowercase if necessary; common aliases such as JZ and SAL are accepted.
func Opcode(mnemonic string) (*x86.Opcode, bool) {
	return In(x86.DefaultCatalog(), mnemonic)
}

// Lookup the opcode for a mnemonic in c.
func In(c *x86.Catalog, mnemonic string) (*x86.Opcode, bool) {
	if len(mnemonic) == 0 || len(mnemonic) >= maxMnemonicLength {
		return nil, false
	}
	name := lowerCase(mnemonic)
	if op, ok := c.Lookup(name); ok {
		return op, true
	}
	if alias, ok := aliases[name]; ok {
		return c.Lookup(alias)
	}
	return nil, false
}

// Canonical returns the catalog mnemonic an alias stands for, or the lowercased mnemonic itself.
func Canonical(mnemonic string) string {
	name := lowerCase(mnemonic)
	if alias, ok := aliases[name]; ok {
		return alias
	}
	return name
}

func lowerCase(s string) string {
	if len(s) >= maxMnemonicLength {
		return s
	}
	var b [maxMnemonicLength]byte
	changed := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch >= 'A' && ch <= 'Z' {
			ch |= 0x20
			changed = true
		}
		b[i] = ch
	}
	if !changed {
		return s
	}
	return string(b[:len(s)])
}
