package disasm

import (
	"fmt"

	"golang.org/x/arch/x86/x86asm"

	"github.com/wdamron/x86/feats"
)

// Walk decodes instructions from code until while returns false or the code is exhausted.
//
// Some instructions supported by the encoder in the x86 package are not supported by the
// decoder in the x86asm package.
func Walk(code []byte, mode feats.Mode, while func(pc int, inst x86asm.Inst) bool) error {
	if !mode.Valid() {
		return fmt.Errorf("disasm: unsupported processor mode %v", mode)
	}
	for n := 0; n < len(code); {
		inst, err := x86asm.Decode(code[n:], int(mode))
		if err != nil {
			return fmt.Errorf("disasm: offset %#x: %w", n, err)
		}
		if !while(n, inst) {
			return nil
		}
		n += inst.Len
	}
	return nil
}

// Decode decodes every instruction in code.
func Decode(code []byte, mode feats.Mode) ([]x86asm.Inst, error) {
	var insts []x86asm.Inst
	err := Walk(code, mode, func(_ int, inst x86asm.Inst) bool {
		insts = append(insts, inst)
		return true
	})
	return insts, err
}

// Intel renders each instruction in code in Intel syntax. Relative targets are printed as
// absolute addresses based at pc.
func Intel(code []byte, mode feats.Mode, pc uint64) ([]string, error) {
	var lines []string
	err := Walk(code, mode, func(n int, inst x86asm.Inst) bool {
		lines = append(lines, x86asm.IntelSyntax(inst, pc+uint64(n), nil))
		return true
	})
	return lines, err
}
