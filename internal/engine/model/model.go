// Package model groups meshes under one world transform.
package model

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/lumen/internal/engine/gfx"
	"github.com/Faultbox/lumen/internal/engine/mesh"
	"github.com/Faultbox/lumen/internal/logger"
	"github.com/Faultbox/lumen/pkg/math"
)

// Model owns a list of meshes placed by position, Euler rotation in degrees
// and per-axis scale.
type Model struct {
	name   string
	meshes []*mesh.Mesh
	bounds Bounds

	Position math.Vec3
	Rotation math.Vec3
	Scale    math.Vec3

	// Outline draws a border around the model's meshes.
	Outline bool
}

// New creates a model at the origin with unit scale.
func New(name string, meshes ...*mesh.Mesh) *Model {
	return &Model{
		name:   name,
		meshes: meshes,
		Scale:  math.Vec3{X: 1, Y: 1, Z: 1},
	}
}

// Name returns the model name.
func (m *Model) Name() string { return m.name }

// Meshes returns the owned meshes.
func (m *Model) Meshes() []*mesh.Mesh { return m.meshes }

// AddMesh transfers ownership of me to the model.
func (m *Model) AddMesh(me *mesh.Mesh) { m.meshes = append(m.meshes, me) }

// Bounds returns the local bounding box of all imported meshes.
func (m *Model) Bounds() Bounds { return m.bounds }

// SetBounds overrides the local bounding box.
func (m *Model) SetBounds(b Bounds) { m.bounds = b }

// WorldBounds returns the bounding box in world space.
func (m *Model) WorldBounds() Bounds { return m.bounds.Transform(m.WorldMatrix()) }

// WorldMatrix returns Translate(Position) * R(Rotation) * Scale(Scale).
func (m *Model) WorldMatrix() math.Mat4 {
	r := math.QuatFromEulerDegrees(m.Rotation).ToMat4()
	return math.Translate(m.Position).Mul(r).Mul(math.Scale(m.Scale))
}

// AppendEntries appends one render-list entry per mesh to list.
func (m *Model) AppendEntries(list []mesh.Entry) []mesh.Entry {
	if len(m.meshes) == 0 {
		return list
	}
	world := m.WorldMatrix()
	for _, me := range m.meshes {
		list = append(list, mesh.Entry{Mesh: me, World: world})
	}
	return list
}

// Destroy releases every mesh.
func (m *Model) Destroy() {
	for _, me := range m.meshes {
		me.Destroy()
	}
	m.meshes = nil
}

// Importer produces mesh data, e.g. from a file or a procedural generator.
type Importer interface {
	Import() ([]MeshData, error)
}

// ImporterFunc adapts a function to Importer.
type ImporterFunc func() ([]MeshData, error)

func (f ImporterFunc) Import() ([]MeshData, error) { return f() }

// Build imports mesh data and uploads it to dev as a new model. On failure no
// device buffers are left allocated.
func Build(dev gfx.Device, name string, importer Importer) (*Model, error) {
	data, err := importer.Import()
	if err != nil {
		return nil, fmt.Errorf("import model %q: %w", name, err)
	}

	m := New(name)
	for i, d := range data {
		me, err := mesh.New(dev, d.Data(), d.Material)
		if err != nil {
			m.Destroy()
			return nil, fmt.Errorf("model %q mesh %d: %w", name, i, err)
		}
		m.AddMesh(me)
		b := d.Bounds()
		if i == 0 {
			m.bounds = b
		} else {
			m.bounds = m.bounds.Union(b)
		}
		logger.Debug("mesh built", zap.String("model", name), zap.Int("mesh", i),
			zap.Int("vertices", me.VertexCount()), zap.Int("indices", me.IndexCount()),
			zap.Float32s("min", []float32{b.Min.X, b.Min.Y, b.Min.Z}),
			zap.Float32s("max", []float32{b.Max.X, b.Max.Y, b.Max.Z}))
	}
	return m, nil
}
