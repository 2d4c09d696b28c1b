package gfx

import "fmt"

// AttribType is the numeric type of a vertex attribute element.
type AttribType int

const (
	AttribFloat AttribType = iota
	AttribInt
)

// Size returns the byte size of one element.
func (t AttribType) Size() int {
	switch t {
	case AttribFloat, AttribInt:
		return 4
	default:
		panic(fmt.Sprintf("gfx: unknown attribute type %d", int(t)))
	}
}

func (t AttribType) String() string {
	switch t {
	case AttribFloat:
		return "float"
	case AttribInt:
		return "int"
	default:
		return fmt.Sprintf("AttribType(%d)", int(t))
	}
}

// VertexAttr describes one vertex attribute. Attributes are bound to
// sequential locations in layout order.
type VertexAttr struct {
	Count      int // Elements per vertex (1-4)
	Type       AttribType
	Normalized bool
}

// VertexLayout is the ordered, interleaved attribute list of a vertex buffer.
type VertexLayout []VertexAttr

// Stride returns the byte size of one vertex.
func (l VertexLayout) Stride() int {
	stride := 0
	for _, a := range l {
		stride += a.Count * a.Type.Size()
	}
	return stride
}

// Offsets returns the byte offset of each attribute within a vertex.
func (l VertexLayout) Offsets() []int {
	offsets := make([]int, len(l))
	off := 0
	for i, a := range l {
		offsets[i] = off
		off += a.Count * a.Type.Size()
	}
	return offsets
}

// StandardLayout is position(3) + normal(3) + uv(2), all float.
var StandardLayout = VertexLayout{
	{Count: 3, Type: AttribFloat},
	{Count: 3, Type: AttribFloat},
	{Count: 2, Type: AttribFloat},
}
