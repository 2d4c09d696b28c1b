package mesh

import "github.com/Faultbox/lumen/pkg/math"

// DrawHook runs around a mesh's draw within a frame.
type DrawHook interface {
	Before(m *Mesh, world math.Mat4)
	After(m *Mesh, world math.Mat4)
}

// HookFuncs adapts a pair of functions to DrawHook. Nil functions are skipped.
type HookFuncs struct {
	BeforeFunc func(m *Mesh, world math.Mat4)
	AfterFunc  func(m *Mesh, world math.Mat4)
}

func (h HookFuncs) Before(m *Mesh, world math.Mat4) {
	if h.BeforeFunc != nil {
		h.BeforeFunc(m, world)
	}
}

func (h HookFuncs) After(m *Mesh, world math.Mat4) {
	if h.AfterFunc != nil {
		h.AfterFunc(m, world)
	}
}
