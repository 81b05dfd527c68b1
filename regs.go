package x86

import (
	"fmt"
	"strings"

	"github.com/wdamron/x86/feats"
)

// Reg is a register with a specific width and family. All registers have a number
// which distinguishes them within their family, with the exception of the IP/EIP/RIP registers.
//
// 	[0..3] bits hold the register number
// 	[8..15] bits hold the family
// 	[16..20] bits hold the width in bytes
type Reg uint32

// Get the family for the register.
//
// If the register is valid, the return value will be REG_LEGACY, REG_RIP, REG_HIGHBYTE,
// REG_XMM, REG_SEGMENT, REG_CONTROL, or REG_DEBUG.
func (r Reg) Family() uint8 { return uint8(r >> 8) }

// Get the number which distinguishes the register within its family. The IP/EIP/RIP registers
// have no meaningful number, so they will return 0.
func (r Reg) Num() uint8 { return uint8(r) & 0xf }

// Get the width of the register in bytes.
func (r Reg) Width() uint8 { return uint8(r>>16) & 0x1f }

// Size returns the intrinsic size of the register.
func (r Reg) Size() DataSize {
	switch r.Width() {
	case 1:
		return Bit8
	case 2:
		return Bit16
	case 4:
		return Bit32
	case 8:
		return Bit64
	case 16:
		return Bit128
	}
	return SizeNone
}

// Check if the register is numbered 8 or higher. The IP/EIP/RIP registers have no meaningful number,
// so they will return false.
func (r Reg) IsExtended() bool { return r.Num() > 7 }

// low3 is the part of the register number which fits ModRM/SIB fields.
func (r Reg) low3() byte { return r.Num() & 7 }

// needsRex reports whether encoding r at all requires a REX prefix.
func (r Reg) needsRex() bool {
	switch r.Family() {
	case REG_LEGACY:
		return r.IsExtended() || (r.Width() == 1 && r.Num() >= 4)
	case REG_XMM, REG_CONTROL, REG_DEBUG:
		return r.IsExtended()
	}
	return false
}

// validIn reports whether r can be named at all in the given processor mode.
func (r Reg) validIn(mode feats.Mode) bool {
	if mode == feats.Mode64 {
		return true
	}
	if r.needsRex() {
		return false
	}
	return !(r.Width() == 8 && (r.Family() == REG_LEGACY || r.Family() == REG_RIP))
}

// Register families
const (
	REG_LEGACY   = iota
	REG_RIP      // IP, EIP, RIP
	REG_HIGHBYTE // AH, CH, DH, BH
	REG_XMM
	REG_SEGMENT
	REG_CONTROL
	REG_DEBUG
)

// RegClass is a set of register classes. Descriptors name the classes they accept; a register
// operand matches when its own classes intersect them.
type RegClass uint16

const (
	ClassGP8 RegClass = 1 << iota
	ClassGP16
	ClassGP32
	ClassGP64
	ClassSegment
	ClassXMM
	ClassControl
	ClassDebug
	ClassIP
	ClassAccumulator // AL, AX, EAX, RAX
	ClassCounter     // CL, CX, ECX, RCX
	ClassData        // DL, DX, EDX, RDX

	ClassGP = ClassGP8 | ClassGP16 | ClassGP32 | ClassGP64
)

// Class returns the register classes r belongs to.
func (r Reg) Class() RegClass {
	var c RegClass
	switch r.Family() {
	case REG_LEGACY:
		switch r.Width() {
		case 1:
			c = ClassGP8
		case 2:
			c = ClassGP16
		case 4:
			c = ClassGP32
		case 8:
			c = ClassGP64
		}
		switch r.Num() {
		case 0:
			c |= ClassAccumulator
		case 1:
			c |= ClassCounter
		case 2:
			c |= ClassData
		}
	case REG_HIGHBYTE:
		c = ClassGP8
	case REG_XMM:
		c = ClassXMM
	case REG_SEGMENT:
		c = ClassSegment
	case REG_CONTROL:
		c = ClassControl
	case REG_DEBUG:
		c = ClassDebug
	case REG_RIP:
		c = ClassIP
	}
	return c
}

// ClassForSize returns the general-purpose register class of the given width.
func ClassForSize(s DataSize) RegClass {
	switch s {
	case Bit8:
		return ClassGP8
	case Bit16:
		return ClassGP16
	case Bit32:
		return ClassGP32
	case Bit64:
		return ClassGP64
	}
	return 0
}

var (
	legacyNames = [4][16]string{
		{"al", "cl", "dl", "bl", "spl", "bpl", "sil", "dil", "r8b", "r9b", "r10b", "r11b", "r12b", "r13b", "r14b", "r15b"},
		{"ax", "cx", "dx", "bx", "sp", "bp", "si", "di", "r8w", "r9w", "r10w", "r11w", "r12w", "r13w", "r14w", "r15w"},
		{"eax", "ecx", "edx", "ebx", "esp", "ebp", "esi", "edi", "r8d", "r9d", "r10d", "r11d", "r12d", "r13d", "r14d", "r15d"},
		{"rax", "rcx", "rdx", "rbx", "rsp", "rbp", "rsi", "rdi", "r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15"},
	}
	highByteNames = [4]string{"ah", "ch", "dh", "bh"}
	segmentNames  = [6]string{"es", "cs", "ss", "ds", "fs", "gs"}
)

func (r Reg) String() string {
	n := r.Num()
	switch r.Family() {
	case REG_LEGACY:
		switch r.Width() {
		case 1:
			return legacyNames[0][n]
		case 2:
			return legacyNames[1][n]
		case 4:
			return legacyNames[2][n]
		case 8:
			return legacyNames[3][n]
		}
	case REG_HIGHBYTE:
		if n < 4 {
			return highByteNames[n]
		}
	case REG_RIP:
		switch r.Width() {
		case 2:
			return "ip"
		case 4:
			return "eip"
		case 8:
			return "rip"
		}
	case REG_XMM:
		return fmt.Sprintf("xmm%d", n)
	case REG_SEGMENT:
		if n < 6 {
			return segmentNames[n]
		}
	case REG_CONTROL:
		return fmt.Sprintf("cr%d", n)
	case REG_DEBUG:
		return fmt.Sprintf("dr%d", n)
	}
	return fmt.Sprintf("Reg(%#x)", uint32(r))
}

// AllRegisters lists every named register.
var AllRegisters = func() []Reg {
	var rs []Reg
	for _, w := range [...]Reg{1, 2, 4, 8} {
		for n := Reg(0); n < 16; n++ {
			rs = append(rs, w<<16|REG_LEGACY<<8|n)
		}
	}
	for n := Reg(0); n < 4; n++ {
		rs = append(rs, 1<<16|REG_HIGHBYTE<<8|n)
	}
	rs = append(rs, IP, EIP, RIP)
	for n := Reg(0); n < 16; n++ {
		rs = append(rs, 16<<16|REG_XMM<<8|n)
	}
	for n := Reg(0); n < 6; n++ {
		rs = append(rs, 2<<16|REG_SEGMENT<<8|n)
	}
	for n := Reg(0); n < 16; n++ {
		rs = append(rs, 4<<16|REG_CONTROL<<8|n)
	}
	for n := Reg(0); n < 16; n++ {
		rs = append(rs, 4<<16|REG_DEBUG<<8|n)
	}
	return rs
}()

var regsByName = func() map[string]Reg {
	m := make(map[string]Reg, len(AllRegisters))
	for _, r := range AllRegisters {
		m[r.String()] = r
	}
	return m
}()

// RegisterByName looks up a register by its (case-insensitive) Intel name.
func RegisterByName(name string) (Reg, bool) {
	r, ok := regsByName[strings.ToLower(name)]
	return r, ok
}

// Registers
const (
	// 8-bit
	AH   Reg = Reg(1<<16 | REG_HIGHBYTE<<8 | 0)
	CH   Reg = Reg(1<<16 | REG_HIGHBYTE<<8 | 1)
	DH   Reg = Reg(1<<16 | REG_HIGHBYTE<<8 | 2)
	BH   Reg = Reg(1<<16 | REG_HIGHBYTE<<8 | 3)
	AL   Reg = Reg(1<<16 | REG_LEGACY<<8 | 0)
	CL   Reg = Reg(1<<16 | REG_LEGACY<<8 | 1)
	DL   Reg = Reg(1<<16 | REG_LEGACY<<8 | 2)
	BL   Reg = Reg(1<<16 | REG_LEGACY<<8 | 3)
	SPL  Reg = Reg(1<<16 | REG_LEGACY<<8 | 4)
	BPL  Reg = Reg(1<<16 | REG_LEGACY<<8 | 5)
	SIL  Reg = Reg(1<<16 | REG_LEGACY<<8 | 6)
	DIL  Reg = Reg(1<<16 | REG_LEGACY<<8 | 7)
	R8B  Reg = Reg(1<<16 | REG_LEGACY<<8 | 8)
	R9B  Reg = Reg(1<<16 | REG_LEGACY<<8 | 9)
	R10B Reg = Reg(1<<16 | REG_LEGACY<<8 | 10)
	R11B Reg = Reg(1<<16 | REG_LEGACY<<8 | 11)
	R12B Reg = Reg(1<<16 | REG_LEGACY<<8 | 12)
	R13B Reg = Reg(1<<16 | REG_LEGACY<<8 | 13)
	R14B Reg = Reg(1<<16 | REG_LEGACY<<8 | 14)
	R15B Reg = Reg(1<<16 | REG_LEGACY<<8 | 15)

	// 16-bit
	AX   Reg = Reg(2<<16 | REG_LEGACY<<8 | 0)
	CX   Reg = Reg(2<<16 | REG_LEGACY<<8 | 1)
	DX   Reg = Reg(2<<16 | REG_LEGACY<<8 | 2)
	BX   Reg = Reg(2<<16 | REG_LEGACY<<8 | 3)
	SP   Reg = Reg(2<<16 | REG_LEGACY<<8 | 4)
	BP   Reg = Reg(2<<16 | REG_LEGACY<<8 | 5)
	SI   Reg = Reg(2<<16 | REG_LEGACY<<8 | 6)
	DI   Reg = Reg(2<<16 | REG_LEGACY<<8 | 7)
	R8W  Reg = Reg(2<<16 | REG_LEGACY<<8 | 8)
	R9W  Reg = Reg(2<<16 | REG_LEGACY<<8 | 9)
	R10W Reg = Reg(2<<16 | REG_LEGACY<<8 | 10)
	R11W Reg = Reg(2<<16 | REG_LEGACY<<8 | 11)
	R12W Reg = Reg(2<<16 | REG_LEGACY<<8 | 12)
	R13W Reg = Reg(2<<16 | REG_LEGACY<<8 | 13)
	R14W Reg = Reg(2<<16 | REG_LEGACY<<8 | 14)
	R15W Reg = Reg(2<<16 | REG_LEGACY<<8 | 15)

	// 32-bit
	EAX  Reg = Reg(4<<16 | REG_LEGACY<<8 | 0)
	ECX  Reg = Reg(4<<16 | REG_LEGACY<<8 | 1)
	EDX  Reg = Reg(4<<16 | REG_LEGACY<<8 | 2)
	EBX  Reg = Reg(4<<16 | REG_LEGACY<<8 | 3)
	ESP  Reg = Reg(4<<16 | REG_LEGACY<<8 | 4)
	EBP  Reg = Reg(4<<16 | REG_LEGACY<<8 | 5)
	ESI  Reg = Reg(4<<16 | REG_LEGACY<<8 | 6)
	EDI  Reg = Reg(4<<16 | REG_LEGACY<<8 | 7)
	R8D  Reg = Reg(4<<16 | REG_LEGACY<<8 | 8)
	R9D  Reg = Reg(4<<16 | REG_LEGACY<<8 | 9)
	R10D Reg = Reg(4<<16 | REG_LEGACY<<8 | 10)
	R11D Reg = Reg(4<<16 | REG_LEGACY<<8 | 11)
	R12D Reg = Reg(4<<16 | REG_LEGACY<<8 | 12)
	R13D Reg = Reg(4<<16 | REG_LEGACY<<8 | 13)
	R14D Reg = Reg(4<<16 | REG_LEGACY<<8 | 14)
	R15D Reg = Reg(4<<16 | REG_LEGACY<<8 | 15)

	// 64-bit
	RAX Reg = Reg(8<<16 | REG_LEGACY<<8 | 0)
	RCX Reg = Reg(8<<16 | REG_LEGACY<<8 | 1)
	RDX Reg = Reg(8<<16 | REG_LEGACY<<8 | 2)
	RBX Reg = Reg(8<<16 | REG_LEGACY<<8 | 3)
	RSP Reg = Reg(8<<16 | REG_LEGACY<<8 | 4)
	RBP Reg = Reg(8<<16 | REG_LEGACY<<8 | 5)
	RSI Reg = Reg(8<<16 | REG_LEGACY<<8 | 6)
	RDI Reg = Reg(8<<16 | REG_LEGACY<<8 | 7)
	R8  Reg = Reg(8<<16 | REG_LEGACY<<8 | 8)
	R9  Reg = Reg(8<<16 | REG_LEGACY<<8 | 9)
	R10 Reg = Reg(8<<16 | REG_LEGACY<<8 | 10)
	R11 Reg = Reg(8<<16 | REG_LEGACY<<8 | 11)
	R12 Reg = Reg(8<<16 | REG_LEGACY<<8 | 12)
	R13 Reg = Reg(8<<16 | REG_LEGACY<<8 | 13)
	R14 Reg = Reg(8<<16 | REG_LEGACY<<8 | 14)
	R15 Reg = Reg(8<<16 | REG_LEGACY<<8 | 15)

	// Instruction pointer.
	IP  Reg = Reg(2<<16 | REG_RIP<<8 | 0) // 16-bit
	EIP Reg = Reg(4<<16 | REG_RIP<<8 | 0) // 32-bit
	RIP Reg = Reg(8<<16 | REG_RIP<<8 | 0) // 64-bit

	// XMM registers.
	X0  Reg = Reg(16<<16 | REG_XMM<<8 | 0)
	X1  Reg = Reg(16<<16 | REG_XMM<<8 | 1)
	X2  Reg = Reg(16<<16 | REG_XMM<<8 | 2)
	X3  Reg = Reg(16<<16 | REG_XMM<<8 | 3)
	X4  Reg = Reg(16<<16 | REG_XMM<<8 | 4)
	X5  Reg = Reg(16<<16 | REG_XMM<<8 | 5)
	X6  Reg = Reg(16<<16 | REG_XMM<<8 | 6)
	X7  Reg = Reg(16<<16 | REG_XMM<<8 | 7)
	X8  Reg = Reg(16<<16 | REG_XMM<<8 | 8)
	X9  Reg = Reg(16<<16 | REG_XMM<<8 | 9)
	X10 Reg = Reg(16<<16 | REG_XMM<<8 | 10)
	X11 Reg = Reg(16<<16 | REG_XMM<<8 | 11)
	X12 Reg = Reg(16<<16 | REG_XMM<<8 | 12)
	X13 Reg = Reg(16<<16 | REG_XMM<<8 | 13)
	X14 Reg = Reg(16<<16 | REG_XMM<<8 | 14)
	X15 Reg = Reg(16<<16 | REG_XMM<<8 | 15)

	// Segment registers.
	ES Reg = Reg(2<<16 | REG_SEGMENT<<8 | 0)
	CS Reg = Reg(2<<16 | REG_SEGMENT<<8 | 1)
	SS Reg = Reg(2<<16 | REG_SEGMENT<<8 | 2)
	DS Reg = Reg(2<<16 | REG_SEGMENT<<8 | 3)
	FS Reg = Reg(2<<16 | REG_SEGMENT<<8 | 4)
	GS Reg = Reg(2<<16 | REG_SEGMENT<<8 | 5)

	// Control registers.
	CR0 Reg = Reg(4<<16 | REG_CONTROL<<8 | 0)
	CR2 Reg = Reg(4<<16 | REG_CONTROL<<8 | 2)
	CR3 Reg = Reg(4<<16 | REG_CONTROL<<8 | 3)
	CR4 Reg = Reg(4<<16 | REG_CONTROL<<8 | 4)
	CR8 Reg = Reg(4<<16 | REG_CONTROL<<8 | 8)

	// Debug registers.
	DR0 Reg = Reg(4<<16 | REG_DEBUG<<8 | 0)
	DR1 Reg = Reg(4<<16 | REG_DEBUG<<8 | 1)
	DR2 Reg = Reg(4<<16 | REG_DEBUG<<8 | 2)
	DR3 Reg = Reg(4<<16 | REG_DEBUG<<8 | 3)
	DR6 Reg = Reg(4<<16 | REG_DEBUG<<8 | 6)
	DR7 Reg = Reg(4<<16 | REG_DEBUG<<8 | 7)
)
