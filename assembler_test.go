package x86

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/arch/x86/x86asm"

	"github.com/wdamron/x86/feats"
)

func assemble(t *testing.T, a *Assembler) *Program {
	t.Helper()
	prog, err := a.Assemble()
	require.NoError(t, err)
	return prog
}

func text(t *testing.T, prog *Program) []byte {
	t.Helper()
	sec, ok := prog.Section(".text")
	require.True(t, ok)
	return sec.Code
}

func TestBranches(t *testing.T) {
	a := NewAssembler(Long64)
	a.Label("top")
	a.Inst(MOV, RAX, RBX)
	a.Inst(ADD, RAX, Imm8(5))
	a.Label("loop")
	a.Inst(ADD, RBX, Imm8(1))
	a.Inst(JMP, Rel(Sym("top")))
	a.Label("next")
	a.Inst(ADD, RBX, Imm8(1))
	a.Inst(JMP, Rel(Sym("loop")))
	a.Inst(JMP, Rel(Sym("next")))
	prog := assemble(t, a)
	assert.Equal(t, "0x4889d84883c0054883c301ebf34883c301ebf4ebf8", fmt.Sprintf("%#x", text(t, prog)))

	// the same with forced 32-bit offsets
	a = NewAssembler(Long64)
	a.Label("top")
	a.Inst(MOV, RAX, RBX)
	a.Inst(ADD, RAX, Imm8(5))
	a.Inst(ADD, RBX, Imm8(1))
	a.Inst(JMP, RelSized(Sym("top"), Bit32))
	prog = assemble(t, a)
	assert.Equal(t, "0x4889d84883c0054883c301e9f0ffffff", fmt.Sprintf("%#x", text(t, prog)))
}

func TestForwardBranchSizing(t *testing.T) {
	for _, tc := range []struct {
		name   string
		gap    int
		expect []byte
	}{
		{"near", 200, []byte{0xe9, 0xc8, 0x00, 0x00, 0x00}},
		{"short", 10, []byte{0xeb, 0x0a}},
		// layout starts from the near form, so a target only just in short reach stays near
		{"shrinks", 124, []byte{0xeb, 0x7c}},
		{"stays near", 125, []byte{0xe9, 0x7d, 0x00, 0x00, 0x00}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAssembler(Protected32)
			a.Inst(JMP, Rel(Sym("end")))
			a.Raw(make([]byte, tc.gap))
			a.Label("end")
			a.Inst(RET)
			prog := assemble(t, a)
			code := text(t, prog)
			require.Len(t, code, len(tc.expect)+tc.gap+1)
			assert.Equal(t, tc.expect, code[:len(tc.expect)])
			assert.GreaterOrEqual(t, prog.Passes, 2)

			end, ok := prog.Symbols.Get("end")
			require.True(t, ok)
			v, _ := end.Value()
			assert.Equal(t, int64(len(tc.expect)+tc.gap), v)
		})
	}
}

func TestConditionalBranchLoop(t *testing.T) {
	a := NewAssembler(Long64)
	a.Inst(XOR, EAX, EAX)
	a.Label("again")
	a.Inst(ADD, EAX, Imm(1))
	a.Inst(CMP, EAX, Imm(10))
	a.Inst(Jcc(CCSignedLT), Rel(Sym("again")))
	a.Inst(RET)
	code := text(t, assemble(t, a))

	var lines []string
	for pc := 0; pc < len(code); {
		inst, err := x86asm.Decode(code[pc:], 64)
		require.NoError(t, err)
		lines = append(lines, x86asm.IntelSyntax(inst, uint64(pc), nil))
		pc += inst.Len
	}
	assert.Equal(t, []string{
		"xor eax, eax",
		"add eax, 0x1",
		"cmp eax, 0xa",
		"jl 0x2",
		"ret",
	}, lines)
}

func TestDefine(t *testing.T) {
	a := NewAssembler(Protected32)
	a.Inst(MOV, EAX, ImmExpr(Sym("test"), SizeNone))
	a.Define("test", Here().Plus(3))
	a.Define("size", Diff(Sym("end"), Sym("start")))
	a.Label("start")
	a.Raw([]byte{1, 2, 3, 4})
	a.Label("end")
	prog := assemble(t, a)
	assert.Equal(t, []byte{0xb8, 0x08, 0x00, 0x00, 0x00, 1, 2, 3, 4}, text(t, prog))

	values := map[string]int64{}
	for _, s := range prog.Symbols.Defined() {
		values[s.Name], _ = s.Value()
	}
	if diff := cmp.Diff(map[string]int64{"test": 8, "size": 4, "start": 5, "end": 9}, values); diff != "" {
		t.Fatalf("symbols (-want +got):\n%s", diff)
	}
}

func TestAlign(t *testing.T) {
	a := NewAssembler(Protected32)
	a.Raw([]byte{0x90})
	a.Align(4)
	a.Raw([]byte{0x01})
	a.AlignWith(8, 0xcc)
	a.Align(8)
	prog := assemble(t, a)
	assert.Equal(t, []byte{0x90, 0, 0, 0, 0x01, 0xcc, 0xcc, 0xcc}, text(t, prog))

	a = NewAssembler(Long64)
	a.Inst(MOV, RAX, RBX)
	a.AlignNop(16)
	code := text(t, assemble(t, a))
	require.Len(t, code, 16)
	inst, err := x86asm.Decode(code, 64)
	require.NoError(t, err)
	assert.Equal(t, "mov rax, rbx", x86asm.IntelSyntax(inst, 0, nil))
	for pc := inst.Len; pc < len(code); pc += inst.Len {
		inst, err = x86asm.Decode(code[pc:], 64)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(x86asm.IntelSyntax(inst, 0, nil), "nop"), "% x", code[pc:])
	}

	a = NewAssembler(Long64)
	a.Raw([]byte{0xc3})
	a.AlignNop(4)
	assert.Equal(t, []byte{0xc3, 0x0f, 0x1f, 0x00}, text(t, assemble(t, a)))

	a = NewAssembler(Real16)
	a.Nop(3)
	assert.Equal(t, []byte{0x90, 0x90, 0x90}, text(t, assemble(t, a)))

	a = NewAssembler(Long64)
	a.Align(0)
	_, err = a.Assemble()
	assert.Error(t, err)
}

func TestSections(t *testing.T) {
	a := NewAssembler(Long64)
	a.Inst(MOV, EAX, Mem{Disp: Sym("value")})
	a.Inst(RET)
	a.Section(".data", 0x1000)
	a.Label("value")
	a.Data(Bit32, Const(42))
	a.Data(Bit16, Sym("value"))
	prog := assemble(t, a)

	assert.Equal(t, []byte{0x8b, 0x05, 0xfa, 0x0f, 0x00, 0x00, 0xc3}, text(t, prog))
	data, ok := prog.Section(".data")
	require.True(t, ok)
	assert.Equal(t, uint64(0x1000), data.Origin)
	assert.Equal(t, []byte{42, 0, 0, 0, 0x00, 0x10}, data.Code)

	value, ok := prog.Symbols.Get("value")
	require.True(t, ok)
	assert.Equal(t, ".data", value.Section)
	_, ok = prog.Section(".bss")
	assert.False(t, ok)
}

func TestRelocations(t *testing.T) {
	a := NewAssembler(Long64)
	a.Extern("printf")
	a.Weak("hook")
	a.Public("main")
	a.Label("main")
	a.Inst(CALL, Rel(Sym("printf")))
	a.Inst(MOV, RAX, ImmExpr(Sym("hook"), Bit64))
	a.Inst(RET)
	a.Section(".data", 0x2000)
	a.Data(Bit64, Sym("printf").Plus(8))
	prog := assemble(t, a)

	assert.Equal(t, []byte{
		0xe8, 0x00, 0x00, 0x00, 0x00,
		0x48, 0xb8, 0, 0, 0, 0, 0, 0, 0, 0,
		0xc3,
	}, text(t, prog))
	want := []Relocation{
		{Section: ".text", Offset: 1, Size: Bit32, Symbol: "printf", Addend: -4, Relative: true},
		{Section: ".text", Offset: 7, Size: Bit64, Symbol: "hook"},
		{Section: ".data", Offset: 0, Size: Bit64, Symbol: "printf", Addend: 8},
	}
	if diff := cmp.Diff(want, prog.Relocations); diff != "" {
		t.Fatalf("relocations (-want +got):\n%s", diff)
	}

	main, ok := prog.Symbols.Get("main")
	require.True(t, ok)
	assert.Equal(t, SymbolPublic, main.Type)
}

func TestAssembleErrors(t *testing.T) {
	a := NewAssembler(Long64)
	a.Inst(NOP)
	a.Inst(JMP, Rel(Sym("nowhere")))
	_, err := a.Assemble()
	require.ErrorIs(t, err, ErrUndefinedSymbol)
	var ie *InstructionError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, ".text", ie.Section)
	assert.Equal(t, 1, ie.Index)
	assert.Equal(t, uint64(1), ie.Address)

	a = NewAssembler(Long64)
	a.Label("x")
	a.Inst(NOP)
	a.Label("x")
	_, err = a.Assemble()
	assert.ErrorIs(t, err, ErrSymbolRedefined)

	a = NewAssembler(Long64)
	a.Extern("x")
	a.Label("x")
	_, err = a.Assemble()
	assert.ErrorIs(t, err, ErrSymbolRedefined)

	a = NewAssembler(Long64)
	a.Public("x")
	a.Extern("x")
	assert.ErrorIs(t, a.Err(), ErrSymbolRedefined)
	_, err = a.Assemble()
	assert.ErrorIs(t, err, ErrSymbolRedefined)

	a = NewAssembler(Long64)
	a.Inst(nil)
	assert.Error(t, a.Err())

	a = NewAssembler(Long64)
	a.Inst(MOV, AH, SIL)
	_, err = a.Assemble()
	assert.ErrorIs(t, err, ErrNoMatch)

	a = NewAssembler(Long64)
	a.Data(Bit8, Const(0x100))
	_, err = a.Assemble()
	assert.ErrorIs(t, err, ErrSizeOverflow)

	a = NewAssembler(Long64)
	a.MaxPasses = 1
	a.Inst(RET)
	_, err = a.Assemble()
	assert.ErrorIs(t, err, ErrNoConvergence)
}

func TestPrefixedStatements(t *testing.T) {
	a := NewAssembler(Long64)
	a.Lock(ADD, Mem{Base: RAX}, EBX)
	a.Rep(STOSB)
	a.Repne(SCASB)
	assert.Equal(t, []byte{0xf0, 0x01, 0x18, 0xf3, 0xaa, 0xf2, 0xae}, text(t, assemble(t, a)))

	a = NewAssembler(Long64)
	a.Lock(MOV, Mem{Base: RAX}, EBX)
	_, err := a.Assemble()
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestFeatures(t *testing.T) {
	a := NewAssembler(Long64)
	assert.Equal(t, feats.AllFeatures, a.Features())
	a.Inst(ADDSD, X0, X1)
	a.DisableFeature(feats.SSE2)
	_, err := a.Assemble()
	assert.ErrorIs(t, err, ErrNoMatch)

	a.EnableFeature(feats.SSE2)
	assert.Equal(t, []byte{0xf2, 0x0f, 0x58, 0xc1}, text(t, assemble(t, a)))

	a.SetFeatures(feats.SSE)
	assert.Equal(t, feats.SSE, a.Features())
	assert.Equal(t, feats.SSE, a.Arch().Features)
}

func TestSilentByDefault(t *testing.T) {
	ctx := NewContext(Long64)
	l, ok := ctx.log().(*logrus.Logger)
	require.True(t, ok)
	assert.Equal(t, io.Discard, l.Out)
	assert.Equal(t, logrus.PanicLevel, l.GetLevel())
	assert.Same(t, l, NewContext(Protected32).log())
}

func TestAssemblerLogging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	a := NewAssembler(Long64)
	a.SetLogger(logger)
	a.Inst(JMP, Rel(Sym("end")))
	a.Label("end")
	a.Inst(RET)
	assemble(t, a)

	var passes, selected int
	for _, e := range hook.AllEntries() {
		switch e.Message {
		case "layout pass":
			passes++
		case "selected":
			selected++
			assert.Equal(t, logrus.DebugLevel, e.Level)
		}
	}
	assert.GreaterOrEqual(t, passes, 2)
	assert.Positive(t, selected)
	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, "assembled", last.Message)
	assert.Equal(t, 0, last.Data["relocations"])
}
