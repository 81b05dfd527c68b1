package x86flags

import "strings"

// Flags
const (
	DEFAULT   uint32 = 0         // this variant has default encoding
	DEFAULT64 uint32 = 1 << iota // 64-bit operand size is implied in 64-bit mode (no REX.W)
	WITH_REXW                    // REX.W is always emitted
	NO_OSIZE                     // operand size never implies a 66 prefix

	PREF_66 // mandatory prefix
	PREF_F2 // mandatory prefix (REPNE)
	PREF_F3 // mandatory prefix (REP)

	LOCK // user lock prefix is valid with this variant
	REP  // user rep prefix is valid with this variant
	REPE // user repe/repne prefixes are valid with this variant
)

var names = map[string]uint32{
	"default64": DEFAULT64,
	"rexw":      WITH_REXW,
	"no_osize":  NO_OSIZE,
	"pref_66":   PREF_66,
	"pref_f2":   PREF_F2,
	"pref_f3":   PREF_F3,
	"lock":      LOCK,
	"rep":       REP,
	"repe":      REPE,
}

// Parse returns the flag for a catalog flag name.
func Parse(name string) (uint32, bool) {
	f, ok := names[strings.ToLower(name)]
	return f, ok
}
