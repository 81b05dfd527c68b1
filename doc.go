// Package x86 encodes x86 instructions for 16-bit, 32-bit and 64-bit processor modes.
//
// Opcodes are described by a YAML catalog (see the catalog directory). Each opcode is an ordered
// list of variants; an instruction is encoded with the first variant legal in the current mode
// whose operand descriptors accept the instruction's operands.
//
// The Assembler places statements (instructions, labels, data, alignment) into sections and
// resolves symbols over repeated layout passes. Relative branches start out near-sized and are
// shrunk to the short form once their targets are known to be in range.
//
// usage example:
//
//	asm := x86.NewAssembler(x86.Long64)
//
//	asm.Label("loop")
//	asm.Inst(x86.ADD, x86.RAX, x86.Imm(1))
//	asm.Inst(x86.CMP, x86.RAX, x86.Imm(10))
//	asm.Inst(x86.JL, x86.Rel(x86.Sym("loop")))
//	asm.Inst(x86.MOV, x86.Mem{Base: x86.RSP, Disp: x86.Const(8)}, x86.RAX)
//	asm.Inst(x86.RET)
//
//	prog, err := asm.Assemble()
//	if err != nil {
//		return err
//	}
//	text, _ := prog.Section(".text")
//	fmt.Printf("% x\n", text.Code)
//
// Single instructions may be encoded without an assembler:
//
//	ctx := x86.NewContext(x86.Protected32)
//	enc, err := x86.ADD.Encode(ctx, x86.EAX, x86.Imm(5))
package x86
