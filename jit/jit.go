//go:build unix

// package jit maps code assembled by the x86 package into executable memory and binds it to Go
// function values.
//
// usage example:
//
//	asm := x86.NewAssembler(x86.Long64)
//
//	// Go passes the first integer arguments in RAX and RBX and returns in RAX
//	asm.Inst(x86.ADD, x86.RAX, x86.RBX)
//	asm.Inst(x86.RET)
//
//	code, err := jit.Assemble(asm, ".text")
//	if err != nil {
//		return err
//	}
//	defer code.Close()
//
//	sum := (func(a, b int) int)(nil) // placeholder value
//	if err := code.Bind(&sum); err != nil {
//		return err
//	}
package jit

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/wdamron/x86"
)

// Code is a read-only, executable mapping.
type Code struct {
	mem []byte
	n   int
}

// Map copies code into a fresh anonymous mapping and marks it executable.
func Map(code []byte) (*Code, error) {
	if len(code) == 0 {
		return nil, errors.New("jit: no code")
	}
	page := os.Getpagesize()
	size := (len(code) + page - 1) &^ (page - 1)
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("jit: sys/unix.Mmap failed: %w", err)
	}
	copy(mem, code)
	if err := unix.Mprotect(mem, unix.PROT_READ|unix.PROT_EXEC); err != nil {
		_ = unix.Munmap(mem)
		return nil, fmt.Errorf("jit: sys/unix.Mprotect failed: %w", err)
	}
	return &Code{mem: mem, n: len(code)}, nil
}

// Assemble assembles a and maps the named section. The program must not have relocations left.
func Assemble(a *x86.Assembler, section string) (*Code, error) {
	prog, err := a.Assemble()
	if err != nil {
		return nil, err
	}
	if len(prog.Relocations) > 0 {
		return nil, fmt.Errorf("jit: %d unresolved relocation(s), first against %s", len(prog.Relocations), prog.Relocations[0].Symbol)
	}
	img, ok := prog.Section(section)
	if !ok {
		return nil, fmt.Errorf("jit: no section %s", section)
	}
	return Map(img.Code)
}

// Bytes returns the mapped code.
func (c *Code) Bytes() []byte { return c.mem[:c.n] }

// Bind points the function value at dstAddr to the mapped code. This is entirely unsafe: the
// code must follow the Go internal calling convention of the function's signature, and must not
// be used after Close.
func (c *Code) Bind(dstAddr any) error { return SetFunctionCode(dstAddr, c.mem) }

// Close unmaps the code.
func (c *Code) Close() error {
	if c.mem == nil {
		return nil
	}
	err := unix.Munmap(c.mem)
	c.mem = nil
	return err
}

// Set the executable code for dstAddr. This function is entirely unsafe.
//
// dstAddr must be a pointer to a function value.
// executable must be marked with PROT_EXEC privileges through a MPROTECT system-call.
func SetFunctionCode(dstAddr any, executable []byte) error {
	// See "Go 1.1 Function Calls":
	// https://docs.google.com/document/d/1bMwCey-gmqZVTpRax-ESeVuZGmjwbocYs1iHplK-cjo/pub
	type interfaceHeader struct {
		typ  uintptr
		addr **[]byte
	}
	v := reflect.ValueOf(dstAddr)
	if !v.IsValid() || v.Kind() != reflect.Ptr || v.IsNil() || !v.Elem().CanSet() || v.Elem().Kind() != reflect.Func {
		return fmt.Errorf("jit: destination for SetFunctionCode must be a pointer to a function-value")
	}
	header := *(*interfaceHeader)(unsafe.Pointer(&dstAddr))
	*header.addr = &executable
	return nil
}
