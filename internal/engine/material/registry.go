package material

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/lumen/internal/engine/gfx"
	"github.com/Faultbox/lumen/internal/logger"
)

var (
	// ErrNilShader is returned when creating a material without a shader.
	ErrNilShader = errors.New("material: nil shader")
	// ErrInvalidShader is returned when the shader is not a usable program.
	ErrInvalidShader = errors.New("material: invalid shader")
	// ErrDuplicateName is returned when the name is already registered.
	ErrDuplicateName = errors.New("material: duplicate name")
)

// Handle is the stable index of a material in its Registry.
type Handle int

// Registry owns materials in creation order, addressed by Handle or name.
// All its materials draw on one device, and at most one is active at a time.
type Registry struct {
	dev       gfx.Device
	materials []*Material
	byName    map[string]Handle
	active    *Material
}

// NewRegistry creates a registry whose materials configure dev.
func NewRegistry(dev gfx.Device) *Registry {
	return &Registry{
		dev:    dev,
		byName: make(map[string]Handle),
	}
}

// Create registers a new material.
func (r *Registry) Create(name string, shader gfx.Shader, opts ...Option) (*Material, Handle, error) {
	if shader == nil {
		return nil, -1, fmt.Errorf("create %q: %w", name, ErrNilShader)
	}
	if !shader.Valid() {
		return nil, -1, fmt.Errorf("create %q: %w", name, ErrInvalidShader)
	}
	if _, exists := r.byName[name]; exists {
		return nil, -1, fmt.Errorf("create %q: %w", name, ErrDuplicateName)
	}

	m := newMaterial(name, r, shader)
	for _, opt := range opts {
		opt(m)
	}

	h := Handle(len(r.materials))
	r.materials = append(r.materials, m)
	r.byName[name] = h
	logger.Debug("material created", zap.String("name", name), zap.Int("handle", int(h)),
		zap.Bool("translucent", m.Translucent))
	return m, h, nil
}

// MustCreate is like Create but panics on error.
func (r *Registry) MustCreate(name string, shader gfx.Shader, opts ...Option) *Material {
	m, _, err := r.Create(name, shader, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Get returns the material called name, or nil.
func (r *Registry) Get(name string) *Material {
	h, ok := r.byName[name]
	if !ok {
		return nil
	}
	return r.materials[h]
}

// Lookup returns the material for h, or nil if h is out of range.
func (r *Registry) Lookup(h Handle) *Material {
	if h < 0 || int(h) >= len(r.materials) {
		return nil
	}
	return r.materials[h]
}

// Len returns the number of materials.
func (r *Registry) Len() int { return len(r.materials) }

// Active returns the currently active material, or nil.
func (r *Registry) Active() *Material { return r.active }

// Truncate drops the materials created after the first n. Handles below n
// stay valid.
func (r *Registry) Truncate(n int) {
	if n < 0 || n >= len(r.materials) {
		return
	}
	for _, m := range r.materials[n:] {
		delete(r.byName, m.name)
		if r.active == m {
			r.active = nil
		}
	}
	clear(r.materials[n:])
	r.materials = r.materials[:n]
}

// Cleanup drops all materials. Handles from before Cleanup are invalid.
func (r *Registry) Cleanup() {
	r.materials = nil
	r.byName = make(map[string]Handle)
	r.active = nil
}
