package shader

import (
	"fmt"

	"github.com/Faultbox/lumen/internal/engine/shader/shaders"
)

// Built-in program names.
const (
	Phong  = "phong"
	Border = "border"
)

// Registry owns shader programs by name.
type Registry struct {
	programs map[string]*Program
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{programs: make(map[string]*Program)}
}

// Load compiles and registers a program. Names are unique.
func (r *Registry) Load(name, vertexSrc, fragmentSrc string) (*Program, error) {
	if _, exists := r.programs[name]; exists {
		return nil, fmt.Errorf("shader %q already loaded", name)
	}
	p, err := Compile(name, vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	r.programs[name] = p
	return p, nil
}

// LoadBuiltins registers the embedded phong and border programs.
func (r *Registry) LoadBuiltins() error {
	if _, err := r.Load(Phong, shaders.PhongVertexShader, shaders.PhongFragmentShader); err != nil {
		return err
	}
	if _, err := r.Load(Border, shaders.PhongVertexShader, shaders.BorderFragmentShader); err != nil {
		return err
	}
	return nil
}

// Get returns the program registered under name, or nil.
func (r *Registry) Get(name string) *Program {
	return r.programs[name]
}

// Cleanup deletes all programs.
func (r *Registry) Cleanup() {
	for name, p := range r.programs {
		p.Delete()
		delete(r.programs, name)
	}
}
