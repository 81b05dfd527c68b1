// package disasm decodes machine code produced by the x86 package back into instructions.
//
// example usage:
//
//	package example
//
//	import (
//		"fmt"
//
//		// importing everything from the package into the current scope makes for less noise
//		. "github.com/wdamron/x86"
//		"github.com/wdamron/x86/disasm"
//		"github.com/wdamron/x86/feats"
//	)
//
//	func Print() error {
//		asm := NewAssembler(Long64)
//
//		asm.Inst(MOV, RAX, Mem{Base: RSP, Disp: Const(8)})
//		asm.Inst(ADD, RAX, RBX)
//		asm.Inst(RET)
//
//		prog, err := asm.Assemble()
//		if err != nil {
//			return err
//		}
//		text, _ := prog.Section(".text")
//
//		lines, err := disasm.Intel(text.Code, feats.Mode64, text.Origin)
//		if err != nil {
//			return err
//		}
//		for _, line := range lines {
//			fmt.Println(line)
//		}
//		// Outputs:
//		//
//		// 	mov rax, qword ptr [rsp+0x8]
//		// 	add rax, rbx
//		// 	ret
//
//		return nil
//	}
package disasm
