package render

import (
	"github.com/Faultbox/lumen/internal/engine/gfx"
	"github.com/Faultbox/lumen/internal/engine/material"
	"github.com/Faultbox/lumen/internal/engine/mesh"
	"github.com/Faultbox/lumen/pkg/math"
)

// DefaultOutlineScale is the silhouette scale of outlined meshes.
const DefaultOutlineScale = 1.1

const (
	stencilRef  = 1
	stencilAll  = 0xFF
	stencilNone = 0x00
)

// outline draws a border around meshes of models marked Outline in two passes.
// During the main buckets marked meshes write 1 to the stencil buffer and the
// rest leave it alone; afterwards each marked mesh is drawn again, scaled up,
// with the border material where the stencil is not 1.
type outline struct {
	border *material.Material
	scale  float32
	marked map[*mesh.Mesh]bool
}

func (o *outline) enabled() bool { return o.border != nil }

// anyOutlined collects the meshes of marked models and reports whether any
// of them is in this frame.
func (r *Renderer) anyOutlined() bool {
	clear(r.outline.marked)
	for _, m := range r.models {
		if !m.Outline {
			continue
		}
		if r.outline.marked == nil {
			r.outline.marked = make(map[*mesh.Mesh]bool)
		}
		for _, me := range m.Meshes() {
			r.outline.marked[me] = true
		}
	}
	return len(r.outline.marked) > 0
}

// markStencil sets up stencil writes for e and remembers marked entries for
// the outline pass.
func (r *Renderer) markStencil(e mesh.Entry) {
	if r.outline.marked[e.Mesh] {
		r.dev.StencilFunc(gfx.Always, stencilRef, stencilAll)
		r.dev.StencilMask(stencilAll)
		r.outlined = append(r.outlined, e)
		return
	}
	r.dev.StencilMask(stencilNone)
}

// drawOutlines draws every marked entry with the border material, without
// hooks, and then restores the default stencil state.
func (r *Renderer) drawOutlines() {
	r.dev.StencilFunc(gfx.NotEqual, stencilRef, stencilAll)
	r.dev.StencilMask(stencilNone)

	scale := math.UniformScale(r.outline.scale)
	for _, e := range r.outlined {
		own := e.Mesh.Material()
		e.Mesh.SetMaterial(r.outline.border)
		e.Mesh.Draw(r, e.World.Mul(scale))
		e.Mesh.SetMaterial(own)
		r.stats.DrawCalls++
	}

	r.dev.StencilMask(stencilAll)
	r.dev.StencilFunc(gfx.Always, 0, stencilAll)
	r.dev.Disable(gfx.StencilTest)
}
