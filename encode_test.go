package x86

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/arch/x86/x86asm"

	"github.com/wdamron/x86/feats"
)

// Hard-coded instruction sequences are verified against the x86asm decoder where it can
// represent them.

func encode(t *testing.T, arch Arch, op *Opcode, args ...Arg) []byte {
	t.Helper()
	ctx := NewContext(arch)
	enc, err := op.Encode(ctx, args...)
	require.NoError(t, err, "%s %v", op, args)
	code, err := enc.Bytes(ctx)
	require.NoError(t, err)
	return code
}

func intel(t *testing.T, mode feats.Mode, code []byte) string {
	t.Helper()
	inst, err := x86asm.Decode(code, int(mode))
	require.NoError(t, err, "% x", code)
	require.Equal(t, len(code), inst.Len, "decoded length of % x", code)
	return x86asm.IntelSyntax(inst, 0, nil)
}

func TestEncodeBytes(t *testing.T) {
	for _, tc := range []struct {
		name   string
		arch   Arch
		op     *Opcode
		args   []Arg
		expect []byte
	}{
		{"add al, imm8", Protected32, ADD, []Arg{AL, Imm8(5)}, []byte{0x04, 0x05}},
		{"add eax, simm8", Protected32, ADD, []Arg{EAX, Imm8(5)}, []byte{0x83, 0xc0, 0x05}},
		{"add eax, inferred imm", Protected32, ADD, []Arg{EAX, Imm(5)}, []byte{0x83, 0xc0, 0x05}},
		{"add ecx, imm32", Protected32, ADD, []Arg{ECX, Imm(0x1000)}, []byte{0x81, 0xc1, 0x00, 0x10, 0x00, 0x00}},
		{"add rax, simm32", Long64, ADD, []Arg{RAX, Imm(0x1000)}, []byte{0x48, 0x05, 0x00, 0x10, 0x00, 0x00}},
		{"add rax, rbx", Long64, ADD, []Arg{RAX, RBX}, []byte{0x48, 0x01, 0xd8}},
		{"mov eax, imm32", Protected32, MOV, []Arg{EAX, Imm32(5)}, []byte{0xb8, 0x05, 0x00, 0x00, 0x00}},
		{"mov ax, bx", Protected32, MOV, []Arg{AX, BX}, []byte{0x66, 0x89, 0xd8}},
		{"mov ax, bx (16-bit)", Real16, MOV, []Arg{AX, BX}, []byte{0x89, 0xd8}},
		{"mov eax, ebx (16-bit)", Real16, MOV, []Arg{EAX, EBX}, []byte{0x66, 0x89, 0xd8}},
		{"mov sil, al", Long64, MOV, []Arg{SIL, AL}, []byte{0x40, 0x88, 0xc6}},
		{"mov r9, rax", Long64, MOV, []Arg{R9, RAX}, []byte{0x49, 0x89, 0xc1}},
		{"mov rax, simm32", Long64, MOV, []Arg{RAX, Imm(-1)}, []byte{0x48, 0xc7, 0xc0, 0xff, 0xff, 0xff, 0xff}},
		{"mov rax, imm64", Long64, MOV, []Arg{RAX, Imm(0x123456789)}, []byte{0x48, 0xb8, 0x89, 0x67, 0x45, 0x23, 0x01, 0x00, 0x00, 0x00}},
		{"push rbp", Long64, PUSH, []Arg{RBP}, []byte{0x55}},
		{"push r12", Long64, PUSH, []Arg{R12}, []byte{0x41, 0x54}},
		{"push imm8", Protected32, PUSH, []Arg{Imm(-2)}, []byte{0x6a, 0xfe}},
		{"pop ds", Protected32, POP, []Arg{DS}, []byte{0x1f}},
		{"ret", Long64, RET, nil, []byte{0xc3}},
		{"ret imm16", Protected32, RET, []Arg{Imm(8)}, []byte{0xc2, 0x08, 0x00}},
		{"enter", Protected32, ENTER, []Arg{Imm(16), Imm(0)}, []byte{0xc8, 0x10, 0x00, 0x00}},
		{"shl eax, cl", Protected32, SHL, []Arg{EAX, CL}, []byte{0xd3, 0xe0}},
		{"shr rdx, imm8", Long64, SHR, []Arg{RDX, Imm(3)}, []byte{0x48, 0xc1, 0xea, 0x03}},
		{"imul eax, ecx, simm8", Protected32, IMUL, []Arg{EAX, ECX, Imm(10)}, []byte{0x6b, 0xc1, 0x0a}},
		{"movzx eax, cl", Protected32, MOVZX, []Arg{EAX, CL}, []byte{0x0f, 0xb6, 0xc1}},
		{"sete al", Long64, SETE, []Arg{AL}, []byte{0x0f, 0x94, 0xc0}},
		{"cmovne eax, ecx", Protected32, CMOVNE, []Arg{EAX, ECX}, []byte{0x0f, 0x45, 0xc1}},
		{"in al, dx", Protected32, IN, []Arg{AL, DX}, []byte{0xec}},
		{"out dx, eax", Protected32, OUT, []Arg{DX, EAX}, []byte{0xef}},
		{"out dx, ax", Protected32, OUT, []Arg{DX, AX}, []byte{0x66, 0xef}},
		{"cdqe", Long64, CDQE, nil, []byte{0x48, 0x98}},
		{"cwde (16-bit)", Real16, CWDE, nil, []byte{0x66, 0x98}},
		{"pause", Long64, PAUSE, nil, []byte{0xf3, 0x90}},
		{"mov cr0, eax", Protected32, MOV, []Arg{CR0, EAX}, []byte{0x0f, 0x22, 0xc0}},
		{"mov rax, cr3", Long64, MOV, []Arg{RAX, CR3}, []byte{0x0f, 0x20, 0xd8}},
		{"mov ds, ax", Protected32, MOV, []Arg{DS, AX}, []byte{0x8e, 0xd8}},
		{"bswap r10d", Long64, BSWAP, []Arg{R10D}, []byte{0x41, 0x0f, 0xca}},
		{"addsd", Long64, ADDSD, []Arg{X1, X2}, []byte{0xf2, 0x0f, 0x58, 0xca}},
		{"addps", Protected32, ADDPS, []Arg{X0, X7}, []byte{0x0f, 0x58, 0xc7}},
		{"addsd xmm9", Long64, ADDSD, []Arg{X9, X2}, []byte{0xf2, 0x44, 0x0f, 0x58, 0xca}},
		{"movq xmm0, rax", Long64, MOVQ, []Arg{X0, RAX}, []byte{0x66, 0x48, 0x0f, 0x6e, 0xc0}},
		{"cvtsi2sd", Long64, CVTSI2SD, []Arg{X0, EAX}, []byte{0xf2, 0x0f, 0x2a, 0xc0}},
		{"jmp far", Protected32, JMP, []Arg{Far(Const(8), Const(0x1000))}, []byte{0x66, 0xea, 0x00, 0x10, 0x08, 0x00}},
		{"jmp far wide", Protected32, JMP, []Arg{Far(Const(8), Const(0x12345))}, []byte{0xea, 0x45, 0x23, 0x01, 0x00, 0x08, 0x00}},
		{"jmp far sized", Protected32, JMP, []Arg{&FarPointer{Selector: Const(8), Offset: Const(0x10), Preferred: Bit32}}, []byte{0xea, 0x10, 0x00, 0x00, 0x00, 0x08, 0x00}},
		{"jmp far (16-bit)", Real16, JMP, []Arg{Far(Const(8), Const(0x1000))}, []byte{0xea, 0x00, 0x10, 0x08, 0x00}},
		{"jmp far wide (16-bit)", Real16, JMP, []Arg{Far(Const(8), Const(0x100000))}, []byte{0x66, 0xea, 0x00, 0x00, 0x10, 0x00, 0x08, 0x00}},
		{"call far", Protected32, CALL, []Arg{Far(Const(0x10), Const(0x20))}, []byte{0x66, 0x9a, 0x20, 0x00, 0x10, 0x00}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, encode(t, tc.arch, tc.op, tc.args...))
		})
	}
}

func TestEncodeMemory(t *testing.T) {
	for _, tc := range []struct {
		name   string
		arch   Arch
		op     *Opcode
		args   []Arg
		expect []byte
		intel  string
	}{
		{"ebp base forces disp8", Protected32, MOV, []Arg{EAX, Mem{Base: EBP}},
			[]byte{0x8b, 0x45, 0x00}, "mov eax, dword ptr [ebp]"},
		{"esp base forces sib", Protected32, MOV, []Arg{EAX, Mem{Base: ESP}},
			[]byte{0x8b, 0x04, 0x24}, "mov eax, dword ptr [esp]"},
		{"no base, no index", Protected32, MOV, []Arg{EAX, Mem{Disp: Const(0x1000)}},
			[]byte{0x8b, 0x05, 0x00, 0x10, 0x00, 0x00}, "mov eax, dword ptr [0x1000]"},
		{"disp8", Protected32, MOV, []Arg{Mem{Base: EBX, Disp: Const(-4)}, ECX},
			[]byte{0x89, 0x4b, 0xfc}, "mov dword ptr [ebx-0x4], ecx"},
		{"disp32", Protected32, MOV, []Arg{EAX, Mem{Base: ESI, Disp: Const(0x200)}},
			[]byte{0x8b, 0x86, 0x00, 0x02, 0x00, 0x00}, "mov eax, dword ptr [esi+0x200]"},
		{"forced disp32", Protected32, MOV, []Arg{EAX, Mem{Base: ESI, Disp: Const(1), DispSize: Bit32}},
			[]byte{0x8b, 0x86, 0x01, 0x00, 0x00, 0x00}, "mov eax, dword ptr [esi+0x1]"},
		{"base and scaled index", Protected32, LEA, []Arg{EAX, Mem{Base: EBX, Index: ECX, Scale: 4, Disp: Const(8)}},
			[]byte{0x8d, 0x44, 0x8b, 0x08}, "lea eax, ptr [ebx+ecx*4+0x8]"},
		{"index without base", Protected32, LEA, []Arg{EAX, Mem{Index: ECX, Scale: 2}},
			[]byte{0x8d, 0x04, 0x4d, 0x00, 0x00, 0x00, 0x00}, "lea eax, ptr [ecx*2]"},
		{"r13 base forces disp8", Long64, MOV, []Arg{R12, Mem{Base: R13}},
			[]byte{0x4d, 0x8b, 0x65, 0x00}, "mov r12, qword ptr [r13]"},
		{"r12 base forces sib", Long64, MOV, []Arg{RAX, Mem{Base: R12}},
			[]byte{0x49, 0x8b, 0x04, 0x24}, "mov rax, qword ptr [r12]"},
		{"extended index", Long64, MOV, []Arg{EAX, Mem{Base: RAX, Index: R9, Scale: 8}},
			[]byte{0x42, 0x8b, 0x04, 0xc8}, "mov eax, dword ptr [rax+r9*8]"},
		{"rip-relative target", Long64, MOV, []Arg{EAX, Mem{Disp: Const(0x1000)}},
			[]byte{0x8b, 0x05, 0xfa, 0x0f, 0x00, 0x00}, "mov eax, dword ptr [rip+0xffa]"},
		{"rip base displacement", Long64, MOV, []Arg{EAX, Mem{Base: RIP, Disp: Const(0x10)}},
			[]byte{0x8b, 0x05, 0x10, 0x00, 0x00, 0x00}, "mov eax, dword ptr [rip+0x10]"},
		{"absolute in 64-bit mode", Long64, MOV, []Arg{EAX, Mem{Disp: Const(0x1000), RIP: RIPAbsolute}},
			[]byte{0x8b, 0x04, 0x25, 0x00, 0x10, 0x00, 0x00}, "mov eax, dword ptr [0x1000]"},
		{"32-bit addressing in 64-bit mode", Long64, MOV, []Arg{EAX, Mem{Base: EBX}},
			[]byte{0x67, 0x8b, 0x03}, "mov eax, dword ptr [ebx]"},
		{"16-bit addressing in 32-bit mode", Protected32, MOV, []Arg{EAX, Mem{Base: BX}},
			[]byte{0x67, 0x8b, 0x07}, "mov eax, dword ptr [bx]"},
		{"16-bit bx+si", Real16, MOV, []Arg{AX, Mem{Base: BX, Index: SI}},
			[]byte{0x8b, 0x00}, "mov ax, word ptr [bx+si*1]"},
		{"16-bit si+bx normalised", Real16, MOV, []Arg{AX, Mem{Base: SI, Index: BX}},
			[]byte{0x8b, 0x00}, "mov ax, word ptr [bx+si*1]"},
		{"16-bit bp forces disp8", Real16, MOV, []Arg{AX, Mem{Base: BP}},
			[]byte{0x8b, 0x46, 0x00}, "mov ax, word ptr [bp]"},
		{"16-bit disp16", Real16, MOV, []Arg{AX, Mem{Disp: Const(0x1234)}},
			[]byte{0x8b, 0x06, 0x34, 0x12}, "mov ax, word ptr [0x1234]"},
		{"segment override", Protected32, MOV, []Arg{EAX, Mem{Base: EBX, Segment: FS}},
			[]byte{0x64, 0x8b, 0x03}, "mov eax, dword ptr fs:[ebx]"},
		{"explicit byte size", Protected32, ADD, []Arg{Mem{Base: EAX, Size: Bit8}, Imm(1)},
			[]byte{0x80, 0x00, 0x01}, "add byte ptr [eax], 0x1"},
		{"moffs", Protected32, MOV, []Arg{EAX, MemOffset{Addr: Const(0x1000)}},
			[]byte{0xa1, 0x00, 0x10, 0x00, 0x00}, "mov eax, dword ptr [0x1000]"},
		{"moffs store", Long64, MOV, []Arg{MemOffset{Addr: Const(0x10)}, AL},
			[]byte{0xa2, 0x10, 0, 0, 0, 0, 0, 0, 0}, "mov byte ptr [0x10], al"},
		{"xmm memory", Long64, MOVSD, []Arg{X3, Mem{Base: RSP, Disp: Const(8), Size: Bit64}},
			[]byte{0xf2, 0x0f, 0x10, 0x5c, 0x24, 0x08}, "movsd xmm3, qword ptr [rsp+0x8]"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			code := encode(t, tc.arch, tc.op, tc.args...)
			assert.Equal(t, tc.expect, code)
			assert.Equal(t, tc.intel, intel(t, tc.arch.Mode, code))
		})
	}
}

func TestPrefixes(t *testing.T) {
	ctx := NewContext(Long64)
	inst := Add(Mem{Base: RAX}, EBX).WithPrefix(PrefixLock)
	enc, err := inst.Encode(ctx)
	require.NoError(t, err)
	code, err := enc.Bytes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xf0, 0x01, 0x18}, code)
	assert.Equal(t, "lock add dword ptr [rax], ebx", intel(t, feats.Mode64, code))

	_, err = Cmp(Mem{Base: RAX}, EBX).WithPrefix(PrefixLock).Encode(ctx)
	assert.ErrorIs(t, err, ErrNoMatch)

	enc, err = Movsb().WithPrefix(PrefixRep).Encode(ctx)
	require.NoError(t, err)
	code, err = enc.Bytes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xf3, 0xa4}, code)

	_, err = Movsb().WithPrefix(PrefixRepne).Encode(ctx)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestEncodeErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		arch Arch
		op   *Opcode
		args []Arg
		err  error
	}{
		{"high byte with rex", Long64, MOV, []Arg{AH, SIL}, ErrNoMatch},
		{"extended register outside 64-bit mode", Protected32, MOV, []Arg{EAX, R8D}, ErrNoMatch},
		{"64-bit register outside 64-bit mode", Protected32, ADD, []Arg{RAX, RBX}, ErrNoMatch},
		{"invalid in 64-bit mode", Long64, INTO, nil, ErrNoMatch},
		{"sse in 16-bit mode", Real16, ADDSD, []Arg{X0, X1}, ErrNoMatch},
		{"operand count", Protected32, ADD, []Arg{EAX}, ErrNoMatch},
		{"immediate too wide", Protected32, ADD, []Arg{AL, Imm(0x1000)}, ErrNoMatch},
		{"explicit size narrows", Protected32, ADD, []Arg{EAX, Imm64(1)}, ErrNoMatch},
		{"esp index", Protected32, MOV, []Arg{EAX, Mem{Base: EAX, Index: ESP}}, ErrAddressingMode},
		{"mixed widths", Long64, MOV, []Arg{EAX, Mem{Base: RAX, Index: ECX}}, ErrAddressingMode},
		{"bad scale", Protected32, MOV, []Arg{EAX, Mem{Base: EAX, Index: ECX, Scale: 3}}, ErrAddressingMode},
		{"rip outside 64-bit mode", Protected32, MOV, []Arg{EAX, Mem{Disp: Const(0), RIP: RIPRelative}}, ErrAddressingMode},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.op.Encode(NewContext(tc.arch), tc.args...)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestMemorySizeHint(t *testing.T) {
	ctx := NewContext(Protected32)
	// CL is a shift count and says nothing about the width of the destination
	_, err := SHL.Encode(ctx, Mem{Base: EAX}, CL)
	assert.ErrorIs(t, err, ErrNoMatch)
	_, err = INC.Encode(ctx, Mem{Base: EAX})
	assert.ErrorIs(t, err, ErrNoMatch)
	_, err = OUT.Encode(ctx, DX, Mem{Base: EAX})
	assert.ErrorIs(t, err, ErrNoMatch)

	assert.Equal(t, []byte{0xd3, 0x20}, encode(t, Protected32, SHL, Mem{Base: EAX, Size: Bit32}, CL))
	assert.Equal(t, []byte{0xd2, 0x20}, encode(t, Protected32, SHL, Mem{Base: EAX, Size: Bit8}, CL))
	assert.Equal(t, []byte{0x66, 0xff, 0x00}, encode(t, Protected32, INC, Mem{Base: EAX, Size: Bit16}))

	// register slots and accumulators size the memory operand
	assert.Equal(t, []byte{0x66, 0x01, 0x18}, encode(t, Protected32, ADD, Mem{Base: EAX}, BX))
	assert.Equal(t, []byte{0xa0, 0x00, 0x10, 0x00, 0x00}, encode(t, Protected32, MOV, AL, MemOffset{Addr: Const(0x1000)}))
	assert.Equal(t, []byte{0x8d, 0x03}, encode(t, Protected32, LEA, EAX, Mem{Base: EBX}))
}

func TestAddressingErrors(t *testing.T) {
	ctx := NewContext(Long64)
	for _, m := range []Mem{
		{Base: RAX, Index: RSP},
		{Base: RAX, Index: ECX},
		{Base: RAX, Index: RCX, Scale: 3},
		{Base: RIP, Index: RCX},
		{Base: BX},
		{Base: RAX, RIP: RIPRelative},
		{Base: X0},
	} {
		ea := &EffectiveAddress{Mem: m}
		_, err := ea.addressSize(ctx)
		assert.ErrorIs(t, err, ErrAddressingMode, "%v", m)
	}
}

func TestSizeOverflow(t *testing.T) {
	ctx := NewContext(Protected32)
	// an explicit 8-bit slot chosen while the value is unknown
	ctx.Symbols.Lookup("big")
	enc, err := Add(AL, ImmExpr(Sym("big"), Bit8)).Encode(ctx)
	require.NoError(t, err)
	_, err = ctx.Symbols.Define("big", "", 0x1234)
	require.NoError(t, err)
	_, err = enc.Bytes(ctx)
	assert.ErrorIs(t, err, ErrSizeOverflow)
}

func TestImmediateSize(t *testing.T) {
	ctx := NewContext(Protected32)
	assert.Equal(t, Bit8, Imm(5).Size(ctx))
	assert.Equal(t, Bit16, Imm(0x100).Size(ctx))
	assert.Equal(t, Bit8, Imm(-1).Size(ctx))
	assert.Equal(t, Bit32, Imm(0x10000).Size(ctx))
	assert.Equal(t, Bit64, Imm(0x100000000).Size(ctx))
	assert.Equal(t, Bit32, Imm32(5).operand().Size(ctx))
	// unresolved values take the default operand size
	assert.Equal(t, Bit32, ImmExpr(Sym("later"), SizeNone).Size(ctx))
	assert.Equal(t, Bit16, ImmExpr(Sym("later"), SizeNone).Size(NewContext(Real16)))

	enc, err := MOV.Encode(ctx, EAX, Imm32(5))
	require.NoError(t, err)
	assert.Equal(t, Bit32, enc.Imm.Size)
	assert.Equal(t, 5, enc.Length())
}

func TestFarPointerSize(t *testing.T) {
	ctx := NewContext(Protected32)
	assert.Equal(t, Bit16, Far(Const(8), Const(0x1000)).Size(ctx))
	assert.Equal(t, Bit16, Far(Const(8), Const(5)).Size(ctx))
	assert.Equal(t, Bit32, Far(Const(8), Const(0x12345)).Size(ctx))
	// unresolved offsets take the default operand size
	assert.Equal(t, Bit32, Far(Const(8), Sym("later")).Size(ctx))
	assert.Equal(t, Bit16, Far(Const(8), Sym("later")).Size(NewContext(Real16)))
	assert.Equal(t, Bit32, (&FarPointer{Selector: Const(8), Offset: Const(5), Preferred: Bit32}).Size(ctx))
	assert.Equal(t, Bit16, (&FarPointer{Selector: Const(8), Offset: Const(5), Preferred: Bit8}).Size(ctx))
}

func TestRelativeSize(t *testing.T) {
	ctx := NewContext(Protected32)
	ctx.Address = 0x100
	assert.Equal(t, Bit8, Rel(Const(0x100+129)).Size(ctx))
	assert.Equal(t, Bit32, Rel(Const(0x100+130)).Size(ctx))
	assert.Equal(t, Bit8, Rel(Const(0x100-122)).Size(ctx))
	assert.Equal(t, Bit32, Rel(Const(0x100-123)).Size(ctx))
	assert.Equal(t, Bit32, Rel(Sym("later")).Size(ctx))
	assert.Equal(t, Bit16, Rel(Sym("later")).Size(NewContext(Real16)))
	assert.Equal(t, Bit32, RelSized(Const(0x101), Bit32).Size(ctx))

	code := encode(t, Protected32, JMP, Rel(Const(0x80)))
	assert.Equal(t, []byte{0xeb, 0x7e}, code)
	code = encode(t, Protected32, JMP, Rel(Const(0x100)))
	assert.Equal(t, []byte{0xe9, 0xfb, 0x00, 0x00, 0x00}, code)
	code = encode(t, Protected32, JMP, Rel(Const(0x10)))
	assert.Equal(t, []byte{0xeb, 0x0e}, code)
	// no short call
	code = encode(t, Protected32, CALL, Rel(Const(0x10)))
	assert.Equal(t, []byte{0xe8, 0x0b, 0x00, 0x00, 0x00}, code)
	code = encode(t, Protected32, JE, Rel(Const(0x1000)))
	assert.Equal(t, []byte{0x0f, 0x84, 0xfa, 0x0f, 0x00, 0x00}, code)
	code = encode(t, Real16, JMP, Rel(Const(0x1000)))
	assert.Equal(t, []byte{0xe9, 0xfd, 0x0f}, code)

	// loop has only a short form
	enc, err := LOOP.Encode(ctx, Rel(Const(0x1000)))
	require.NoError(t, err)
	_, err = enc.Bytes(ctx)
	assert.ErrorIs(t, err, ErrSizeOverflow)
	code = encode(t, Protected32, LOOP, Rel(Const(0)))
	assert.Equal(t, []byte{0xe2, 0xfe}, code)
}

func TestConditionCodes(t *testing.T) {
	assert.Same(t, JE, Jcc(CCEq))
	assert.Same(t, JNE, Jcc(CCEq.Inverse()))
	assert.Same(t, SETL, SetCC(CCSignedLT))
	assert.Same(t, CMOVA, CMovCC(CCUnsignedGT))
	assert.Equal(t, CCSignedLTE, Invcc(CCSignedGT))
	for cc := ConditionCode(0); cc < 16; cc++ {
		assert.Equal(t, cc, cc.Inverse().Inverse())
		assert.Equal(t, "j"+cc.String(), Jcc(cc).Mnemonic)
		assert.Equal(t, "set"+cc.String(), SetCC(cc).Mnemonic)
		assert.Equal(t, "cmov"+cc.String(), CMovCC(cc).Mnemonic)
		code := encode(t, Protected32, Jcc(cc), Rel(Const(0)))
		assert.Equal(t, []byte{0x70 | byte(cc), 0xfe}, code)
	}
}

func TestEncodeVariant(t *testing.T) {
	ctx := NewContext(Protected32)
	// the 81 /0 form instead of 83 /0
	enc, err := ADD.EncodeVariant(ctx, 9, EAX, Imm(5))
	require.NoError(t, err)
	code, err := enc.Bytes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x81, 0xc0, 0x05, 0x00, 0x00, 0x00}, code)

	_, err = ADD.EncodeVariant(ctx, 0, EAX, Imm(5))
	assert.ErrorIs(t, err, ErrNoMatch)
	_, err = ADD.EncodeVariant(ctx, 100, EAX, Imm(5))
	assert.Error(t, err)
}

func TestSelect(t *testing.T) {
	ctx := NewContext(Long64)
	i, v, err := MOV.Select(ctx, operands([]Arg{RAX, Imm(-1)}))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xc7}, v.Opcode)
	assert.Same(t, MOV.Variants[i], v)

	// every operand is fresh: selecting does not bind them
	ops := operands([]Arg{EAX, Imm(1)})
	_, _, err = ADD.Select(ctx, ops)
	require.NoError(t, err)
	assert.ErrorIs(t, ops[1].Construct(ctx, newEncodedInstruction("add", nil)), ErrEncodingRole)
}

func TestInstructionString(t *testing.T) {
	assert.Equal(t, "add eax, 5", Add(EAX, Imm8(5)).String())
	assert.Equal(t, "add eax, imm", Add(EAX, Imm(5)).String())
	assert.Equal(t, "lock xadd [rax], ecx", Xadd(Mem{Base: RAX}, ECX).WithPrefix(PrefixLock).String())
	assert.Equal(t, "ret", Ret().String())
}
