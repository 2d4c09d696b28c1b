// Package mesh provides the drawable unit: one vertex array and the material
// it is drawn with.
package mesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/lumen/internal/engine/gfx"
	"github.com/Faultbox/lumen/internal/engine/material"
	"github.com/Faultbox/lumen/pkg/math"
)

var (
	// ErrTooFewVertices is returned for fewer than three vertices.
	ErrTooFewVertices = errors.New("mesh: fewer than 3 vertices")
	// ErrIndexCount is returned when the index count is not a multiple of 3.
	ErrIndexCount = errors.New("mesh: index count not a multiple of 3")
	// ErrVertexData is returned when vertex bytes do not fit the layout.
	ErrVertexData = errors.New("mesh: vertex data does not match layout")
	// ErrNilMaterial is returned when no material is given.
	ErrNilMaterial = errors.New("mesh: nil material")
)

// Data is the CPU-side description of a mesh.
type Data struct {
	Layout   gfx.VertexLayout
	Vertices []byte
	Indices  []uint32
}

// VertexCount returns the number of whole vertices in d, or an error if the
// data does not divide into the layout stride.
func (d Data) VertexCount() (int, error) {
	stride := d.Layout.Stride()
	if stride == 0 || len(d.Vertices)%stride != 0 {
		return 0, fmt.Errorf("%w: %d bytes, stride %d", ErrVertexData, len(d.Vertices), stride)
	}
	return len(d.Vertices) / stride, nil
}

// Mesh is vertex data on the device plus a referenced material.
type Mesh struct {
	dev         gfx.Device
	va          gfx.VertexArray
	vertexCount int
	indexCount  int
	mat         *material.Material
	hook        DrawHook
}

// New uploads data to dev and returns a mesh drawn with mat.
func New(dev gfx.Device, data Data, mat *material.Material) (*Mesh, error) {
	if mat == nil {
		return nil, ErrNilMaterial
	}
	n, err := data.VertexCount()
	if err != nil {
		return nil, err
	}
	if n < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewVertices, n)
	}
	if len(data.Indices)%3 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrIndexCount, len(data.Indices))
	}

	return &Mesh{
		dev:         dev,
		va:          dev.CreateVertexArray(data.Layout, data.Vertices, data.Indices),
		vertexCount: n,
		indexCount:  len(data.Indices),
		mat:         mat,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(dev gfx.Device, data Data, mat *material.Material) *Mesh {
	m, err := New(dev, data, mat)
	if err != nil {
		panic(err)
	}
	return m
}

// Draw activates the material with model, issues the draw and deactivates it.
func (m *Mesh) Draw(binder gfx.ShaderBinder, model math.Mat4) {
	m.mat.Active(binder, model)
	if m.indexCount > 0 {
		m.dev.DrawElements(m.va, m.indexCount)
	} else {
		m.dev.DrawArrays(m.va, m.vertexCount)
	}
	m.mat.Deactive()
}

// Material returns the material the mesh is drawn with.
func (m *Mesh) Material() *material.Material { return m.mat }

// SetMaterial replaces the material, e.g. for a single substituted pass.
func (m *Mesh) SetMaterial(mat *material.Material) { m.mat = mat }

// Hook returns the draw hook, or nil.
func (m *Mesh) Hook() DrawHook { return m.hook }

// SetHook sets the draw hook. The mesh does not own it.
func (m *Mesh) SetHook(h DrawHook) { m.hook = h }

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return m.vertexCount }

// IndexCount returns the number of indices, 0 for non-indexed meshes.
func (m *Mesh) IndexCount() int { return m.indexCount }

// Destroy releases the device buffers. Calling it again has no effect.
func (m *Mesh) Destroy() {
	if m.va == 0 {
		return
	}
	m.dev.DeleteVertexArray(m.va)
	m.va = 0
}

// Entry is one element of a frame's render list.
type Entry struct {
	Mesh  *Mesh
	World math.Mat4
}

// Position returns the world-space origin of the entry.
func (e Entry) Position() math.Vec3 {
	return e.World.Translation()
}
