package x86

import (
	"encoding/binary"
)

type buffer struct {
	b []byte
	i int
}

func newBuffer(b []byte) *buffer {
	return &buffer{b, 0}
}

func (b *buffer) extend(length int) {
	if len(b.b)-b.i >= length {
		return
	}
	bb := make([]byte, max(len(b.b)*2, b.i+length))
	copy(bb, b.b[:b.i])
	b.b = bb
}

func (b *buffer) Len() int    { return b.i }
func (b *buffer) Get() []byte { return b.b[:b.i] }

func (b *buffer) Byte(v byte) {
	b.extend(1)
	b.b[b.i] = v
	b.i++
}

func (b *buffer) Bytes(v []byte) {
	b.extend(len(v))
	copy(b.b[b.i:], v)
	b.i += len(v)
}

func (b *buffer) Int16(v int16) {
	b.extend(2)
	binary.LittleEndian.PutUint16(b.b[b.i:], uint16(v))
	b.i += 2
}

func (b *buffer) Int32(v int32) {
	b.extend(4)
	binary.LittleEndian.PutUint32(b.b[b.i:], uint32(v))
	b.i += 4
}

func (b *buffer) Int64(v int64) {
	b.extend(8)
	binary.LittleEndian.PutUint64(b.b[b.i:], uint64(v))
	b.i += 8
}

// Uint writes the low bits of v as a little-endian value of the given size.
func (b *buffer) Uint(v int64, size DataSize) {
	switch size {
	case Bit8:
		b.Byte(byte(v))
	case Bit16:
		b.Int16(int16(v))
	case Bit32:
		b.Int32(int32(v))
	case Bit64:
		b.Int64(v)
	case Bit128:
		b.Int64(v)
		b.Int64(v >> 63)
	}
}

func (b *buffer) Fill(v byte, length int) {
	for ; length > 0; length-- {
		b.Byte(v)
	}
}

func (b *buffer) Nop(length int) {
	maxNop := len(nops)
	for length > 0 {
		if length > maxNop {
			b.Bytes(nops[maxNop-1][:maxNop])
			length -= maxNop
		} else {
			b.Bytes(nops[length-1][:length])
			break
		}
	}
}

// Recommended multi-byte NOP sequences for 32- and 64-bit code.
var nops = [...][9]byte{
	{0x90},
	{0x66, 0x90},
	{0x0f, 0x1f, 0x00},
	{0x0f, 0x1f, 0x40, 0x00},
	{0x0f, 0x1f, 0x44, 0x00, 0x00},
	{0x66, 0x0f, 0x1f, 0x44, 0x00, 0x00},
	{0x0f, 0x1f, 0x80, 0x00, 0x00, 0x00, 0x00},
	{0x0f, 0x1f, 0x84, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x66, 0x0f, 0x1f, 0x84, 0x00, 0x00, 0x00, 0x00, 0x00},
}
