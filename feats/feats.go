// package feats describes the processor modes and CPU features an opcode variant may require.
package feats

import (
	"fmt"
	"strings"
)

// Mode is an x86 processor mode, named by its default address width in bits.
type Mode uint8

const (
	Mode16 Mode = 16
	Mode32 Mode = 32
	Mode64 Mode = 64
)

func (m Mode) String() string {
	switch m {
	case Mode16, Mode32, Mode64:
		return fmt.Sprintf("%d-bit", uint8(m))
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Valid reports whether m is one of Mode16, Mode32 or Mode64.
func (m Mode) Valid() bool { return m == Mode16 || m == Mode32 || m == Mode64 }

// ModeSet is a set of processor modes.
type ModeSet uint8

const (
	In16 ModeSet = 1 << iota
	In32
	In64

	AllModes = In16 | In32 | In64
)

// ModeSetOf returns the set containing exactly the given modes.
func ModeSetOf(modes ...Mode) ModeSet {
	var s ModeSet
	for _, m := range modes {
		switch m {
		case Mode16:
			s |= In16
		case Mode32:
			s |= In32
		case Mode64:
			s |= In64
		}
	}
	return s
}

// Has reports whether m is in the set.
func (s ModeSet) Has(m Mode) bool { return s&ModeSetOf(m) != 0 }

func (s ModeSet) String() string {
	var parts []string
	for _, m := range [...]Mode{Mode16, Mode32, Mode64} {
		if s.Has(m) {
			parts = append(parts, fmt.Sprint(uint8(m)))
		}
	}
	return "{" + strings.Join(parts, ",") + "}"
}

type Feature uint32

// CPU Features
const (
	X64_IMPLICIT Feature = 0
	FPU          Feature = 1 << iota
	MMX
	TDNOW
	SSE
	SSE2
	SSE3
	VMX
	SSSE3
	SSE4A
	SSE41
	SSE42
	SSE5
	AVX
	AVX2
	FMA
	BMI1
	BMI2
	TBM
	RTM
	INVPCID
	MPX
	SHA
	PREFETCHWT1
	CYRIX
	AMD
)

const AllFeatures Feature = 0xffffffff

func FeatName(f Feature) string { return featNames[f] }

// ParseFeature returns the feature with the given (case-insensitive) name.
func ParseFeature(name string) (Feature, bool) {
	f, ok := featsByName[strings.ToUpper(name)]
	return f, ok
}

var featNames = map[Feature]string{
	X64_IMPLICIT: "X64_IMPLICIT",
	FPU:          "FPU",
	MMX:          "MMX",
	TDNOW:        "TDNOW",
	SSE:          "SSE",
	SSE2:         "SSE2",
	SSE3:         "SSE3",
	VMX:          "VMX",
	SSSE3:        "SSSE3",
	SSE4A:        "SSE4A",
	SSE41:        "SSE41",
	SSE42:        "SSE42",
	SSE5:         "SSE5",
	AVX:          "AVX",
	AVX2:         "AVX2",
	FMA:          "FMA",
	BMI1:         "BMI1",
	BMI2:         "BMI2",
	TBM:          "TBM",
	RTM:          "RTM",
	INVPCID:      "INVPCID",
	MPX:          "MPX",
	SHA:          "SHA",
	PREFETCHWT1:  "PREFETCHWT1",
	CYRIX:        "CYRIX",
	AMD:          "AMD",
}

var featsByName = func() map[string]Feature {
	m := make(map[string]Feature, len(featNames))
	for f, name := range featNames {
		m[name] = f
	}
	return m
}()
