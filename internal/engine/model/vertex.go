package model

import (
	"unsafe"

	"github.com/Faultbox/lumen/internal/engine/gfx"
	"github.com/Faultbox/lumen/internal/engine/material"
	"github.com/Faultbox/lumen/internal/engine/mesh"
	"github.com/Faultbox/lumen/pkg/math"
)

// Vertex is one vertex in gfx.StandardLayout.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	TexCoord [2]float32
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Union returns the smallest box containing b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		Min: math.Vec3{X: min(b.Min.X, o.Min.X), Y: min(b.Min.Y, o.Min.Y), Z: min(b.Min.Z, o.Min.Z)},
		Max: math.Vec3{X: max(b.Max.X, o.Max.X), Y: max(b.Max.Y, o.Max.Y), Z: max(b.Max.Z, o.Max.Z)},
	}
}

// Transform returns the axis-aligned box enclosing the eight corners of b
// transformed by m.
func (b Bounds) Transform(m math.Mat4) Bounds {
	var out Bounds
	for i := range 8 {
		c := b.Min
		if i&1 != 0 {
			c.X = b.Max.X
		}
		if i&2 != 0 {
			c.Y = b.Max.Y
		}
		if i&4 != 0 {
			c.Z = b.Max.Z
		}
		p := m.TransformPoint(c)
		if i == 0 {
			out = Bounds{Min: p, Max: p}
			continue
		}
		out = out.Union(Bounds{Min: p, Max: p})
	}
	return out
}

// MeshData is one imported mesh: geometry plus the material to draw it with.
type MeshData struct {
	Vertices []Vertex
	Indices  []uint32
	Material *material.Material
}

// Data returns the device upload description of d.
func (d MeshData) Data() mesh.Data {
	var raw []byte
	if len(d.Vertices) > 0 {
		raw = unsafe.Slice((*byte)(unsafe.Pointer(&d.Vertices[0])), len(d.Vertices)*int(unsafe.Sizeof(Vertex{})))
	}
	return mesh.Data{
		Layout:   gfx.StandardLayout,
		Vertices: raw,
		Indices:  d.Indices,
	}
}

// Bounds returns the bounding box of the vertex positions.
func (d MeshData) Bounds() Bounds {
	if len(d.Vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: d.Vertices[0].Position, Max: d.Vertices[0].Position}
	for _, v := range d.Vertices[1:] {
		p := v.Position
		b.Min = math.Vec3{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y), Z: min(b.Min.Z, p.Z)}
		b.Max = math.Vec3{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y), Z: max(b.Max.Z, p.Z)}
	}
	return b
}
