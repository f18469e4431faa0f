package geometry

import (
	"encoding/json"
	"fmt"
)

// sixtyFourKilobytes is the first vertex count that no longer fits a
// 16-bit index.
const sixtyFourKilobytes = 64 * 1024

// IndexDatatype is the storage width of an index buffer.
type IndexDatatype int

const (
	UnsignedShort IndexDatatype = iota // uint16
	UnsignedInt                        // uint32
)

func (d IndexDatatype) String() string {
	switch d {
	case UnsignedShort:
		return "uint16"
	case UnsignedInt:
		return "uint32"
	default:
		return fmt.Sprintf("IndexDatatype(%d)", int(d))
	}
}

// SizeInBytes returns the width of one index.
func (d IndexDatatype) SizeInBytes() int {
	if d == UnsignedInt {
		return 4
	}
	return 2
}

// IndexDatatypeFor returns the narrowest datatype able to address
// vertexCount vertices.
func IndexDatatypeFor(vertexCount int) IndexDatatype {
	if vertexCount >= sixtyFourKilobytes {
		return UnsignedInt
	}
	return UnsignedShort
}

// IndexBuffer is a fixed-length index array backed by uint16 or uint32
// storage. Exactly one of the backing slices is non-nil.
type IndexBuffer struct {
	u16 []uint16
	u32 []uint32
}

// NewIndexBuffer allocates a zeroed buffer of indexCount indices whose
// width is chosen from vertexCount.
func NewIndexBuffer(vertexCount, indexCount int) *IndexBuffer {
	if IndexDatatypeFor(vertexCount) == UnsignedInt {
		return &IndexBuffer{u32: make([]uint32, indexCount)}
	}
	return &IndexBuffer{u16: make([]uint16, indexCount)}
}

// Datatype returns the storage width.
func (b *IndexBuffer) Datatype() IndexDatatype {
	if b.u32 != nil {
		return UnsignedInt
	}
	return UnsignedShort
}

// Len returns the number of indices.
func (b *IndexBuffer) Len() int {
	if b.u32 != nil {
		return len(b.u32)
	}
	return len(b.u16)
}

// At returns the index stored at slot i.
func (b *IndexBuffer) At(i int) uint32 {
	if b.u32 != nil {
		return b.u32[i]
	}
	return uint32(b.u16[i])
}

// Set stores v at slot i. Values are truncated to the buffer width.
func (b *IndexBuffer) Set(i int, v uint32) {
	if b.u32 != nil {
		b.u32[i] = v
		return
	}
	b.u16[i] = uint16(v)
}

// Uint16s returns the backing storage of a 16-bit buffer, or nil.
func (b *IndexBuffer) Uint16s() []uint16 { return b.u16 }

// Uint32s returns the backing storage of a 32-bit buffer, or nil.
func (b *IndexBuffer) Uint32s() []uint32 { return b.u32 }

// Values returns a widened copy of every index.
func (b *IndexBuffer) Values() []uint32 {
	if b.u32 != nil {
		out := make([]uint32, len(b.u32))
		copy(out, b.u32)
		return out
	}
	out := make([]uint32, len(b.u16))
	for i, v := range b.u16 {
		out[i] = uint32(v)
	}
	return out
}

// indexBufferJSON is the wire shape of an IndexBuffer.
type indexBufferJSON struct {
	Datatype string   `json:"datatype"`
	Values   []uint32 `json:"values"`
}

// MarshalJSON encodes the buffer with its datatype so a host can
// allocate a matching GPU buffer.
func (b *IndexBuffer) MarshalJSON() ([]byte, error) {
	return json.Marshal(indexBufferJSON{
		Datatype: b.Datatype().String(),
		Values:   b.Values(),
	})
}
