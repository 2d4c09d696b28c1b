// Package render composes a frame from models, materials and lights.
//
// Each frame the Renderer gathers one entry per mesh, splits them into an
// opaque bucket drawn in insertion order and a translucent bucket drawn back
// to front, and optionally outlines marked models with a stencil pass.
package render

import (
	"slices"

	"go.uber.org/zap"

	"github.com/Faultbox/lumen/internal/engine/gfx"
	"github.com/Faultbox/lumen/internal/engine/lighting"
	"github.com/Faultbox/lumen/internal/engine/material"
	"github.com/Faultbox/lumen/internal/engine/mesh"
	"github.com/Faultbox/lumen/internal/engine/model"
	"github.com/Faultbox/lumen/internal/logger"
	"github.com/Faultbox/lumen/pkg/math"
)

// Camera uniforms.
const (
	CameraPositionUniform = "camera.position"
	CameraNearUniform     = "camera.near"
	CameraFarUniform      = "camera.far"
	ProjectionUniform     = "projection"
	ViewUniform           = "view"
)

// DefaultClearColor is the background before SetClearColor.
var DefaultClearColor = gfx.Color{R: 0.2, G: 0.3, B: 0.3, A: 1}

// Camera is the view the renderer draws from.
type Camera interface {
	Position() math.Vec3
	Forward() math.Vec3
	ViewMatrix() math.Mat4
	ProjectionMatrix() math.Mat4
	Near() float32
	Far() float32
}

// Stats counts the work of the last frame.
type Stats struct {
	Entries     int
	Opaque      int
	Translucent int
	Outlined    int
	DrawCalls   int
	FrameTime   float32 // Seconds
}

// Renderer draws the registered models each frame. It is not safe for
// concurrent use.
type Renderer struct {
	dev    gfx.Device
	camera Camera
	log    *zap.Logger

	models     []*model.Model
	lights     lighting.Set
	clearColor gfx.Color
	outline    outline

	// Frame scratch, reused between frames
	list        []mesh.Entry
	opaque      []mesh.Entry
	translucent []mesh.Entry
	outlined    []mesh.Entry

	stats Stats
}

// New creates a renderer drawing on dev from cam.
func New(dev gfx.Device, cam Camera) *Renderer {
	return &Renderer{
		dev:        dev,
		camera:     cam,
		log:        logger.Named("render"),
		clearColor: DefaultClearColor,
		outline:    outline{scale: DefaultOutlineScale},
	}
}

// SetCamera replaces the view camera.
func (r *Renderer) SetCamera(cam Camera) { r.camera = cam }

// Camera returns the view camera.
func (r *Renderer) Camera() Camera { return r.camera }

// SetClearColor sets the background color.
func (r *Renderer) SetClearColor(c gfx.Color) { r.clearColor = c }

// ClearColor returns the background color.
func (r *Renderer) ClearColor() gfx.Color { return r.clearColor }

// AddModel registers m for drawing. Adding a registered model does nothing.
// The renderer takes ownership and destroys m in Cleanup.
func (r *Renderer) AddModel(m *model.Model) {
	if slices.Contains(r.models, m) {
		return
	}
	r.models = append(r.models, m)
	r.log.Debug("model added", zap.String("name", m.Name()), zap.Int("meshes", len(m.Meshes())))
}

// RemoveModel unregisters m and reports whether it was registered. Ownership
// returns to the caller.
func (r *Renderer) RemoveModel(m *model.Model) bool {
	i := slices.Index(r.models, m)
	if i < 0 {
		return false
	}
	r.models = slices.Delete(r.models, i, i+1)
	return true
}

// Models returns the registered models in insertion order. The slice must not
// be modified.
func (r *Renderer) Models() []*model.Model { return r.models }

// Lights returns the light set.
func (r *Renderer) Lights() *lighting.Set { return &r.lights }

// SetDirectionalLight replaces the directional light.
func (r *Renderer) SetDirectionalLight(l lighting.Directional) { r.lights.SetDirectional(l) }

// ClearDirectionalLight removes the directional light.
func (r *Renderer) ClearDirectionalLight() { r.lights.ClearDirectional() }

// AddOmniLight adds an omni light and returns its index.
func (r *Renderer) AddOmniLight(l lighting.Omni) int { return r.lights.AddOmni(l) }

// AddSpotLight adds a spot light and returns its index.
func (r *Renderer) AddSpotLight(l lighting.Spot) int { return r.lights.AddSpot(l) }

// OmniLight returns omni light i for per-frame changes.
func (r *Renderer) OmniLight(i int) *lighting.Omni { return r.lights.Omni(i) }

// SpotLight returns spot light i for per-frame changes.
func (r *Renderer) SpotLight(i int) *lighting.Spot { return r.lights.Spot(i) }

// SetOutline enables outlining of models marked Outline, drawing their
// silhouettes with border scaled by scale. A nil border disables outlines.
func (r *Renderer) SetOutline(border *material.Material, scale float32) {
	r.outline = outline{border: border, scale: scale}
}

// HasOutline reports whether SetOutline installed a border material.
func (r *Renderer) HasOutline() bool { return r.outline.enabled() }

// Stats returns the counts of the last frame.
func (r *Renderer) Stats() Stats { return r.stats }

// BindShaderData uploads the camera and all lights to s. Materials call it
// after binding their shader.
func (r *Renderer) BindShaderData(s gfx.Shader) {
	if r.camera != nil {
		s.SetVec3(CameraPositionUniform, r.camera.Position())
		s.SetMat4(ProjectionUniform, r.camera.ProjectionMatrix())
		s.SetMat4(ViewUniform, r.camera.ViewMatrix())
		s.SetFloat(CameraNearUniform, r.camera.Near())
		s.SetFloat(CameraFarUniform, r.camera.Far())
	}
	r.lights.Bind(s)
}

// Draw renders one frame. dt is the time since the previous frame in seconds.
// Buffer swapping is left to the window.
func (r *Renderer) Draw(dt float32) {
	prev := r.stats
	r.stats = Stats{FrameTime: dt}
	r.begin()

	if r.camera == nil {
		return
	}
	eye := r.camera.Position()
	r.lights.Follow(eye, r.camera.Forward())

	for _, m := range r.models {
		r.list = m.AppendEntries(r.list)
	}
	r.opaque, r.translucent = Partition(r.list, r.opaque, r.translucent)
	SortBackToFront(r.translucent, eye)

	stencil := r.outline.enabled() && r.anyOutlined()
	if stencil {
		r.dev.Enable(gfx.StencilTest)
		r.dev.StencilOp(gfx.StencilKeep, gfx.StencilKeep, gfx.StencilReplace)
	}
	r.drawBucket(r.opaque, stencil)
	r.drawBucket(r.translucent, stencil)
	if stencil {
		r.drawOutlines()
	}

	r.stats.Entries = len(r.list)
	r.stats.Opaque = len(r.opaque)
	r.stats.Translucent = len(r.translucent)
	r.stats.Outlined = len(r.outlined)
	if r.stats.Entries != prev.Entries || r.stats.Outlined != prev.Outlined || r.stats.Translucent != prev.Translucent {
		r.log.Debug("frame composed",
			zap.Int("entries", r.stats.Entries),
			zap.Int("opaque", r.stats.Opaque),
			zap.Int("translucent", r.stats.Translucent),
			zap.Int("outlined", r.stats.Outlined),
			zap.Int("draw_calls", r.stats.DrawCalls))
	}
}

// begin clears the framebuffer and resets the frame lists. glClear honors the
// write masks, so the ones left by the previous frame's materials are reopened.
func (r *Renderer) begin() {
	r.dev.DepthMask(true)
	r.dev.StencilMask(stencilAll)
	r.dev.ClearColor(r.clearColor)
	r.dev.Clear(gfx.ClearAll)
	r.list = r.list[:0]
	r.opaque = r.opaque[:0]
	r.translucent = r.translucent[:0]
	r.outlined = r.outlined[:0]
}

func (r *Renderer) drawBucket(bucket []mesh.Entry, stencil bool) {
	for _, e := range bucket {
		if stencil {
			r.markStencil(e)
		}
		r.drawEntry(e)
	}
}

func (r *Renderer) drawEntry(e mesh.Entry) {
	hook := e.Mesh.Hook()
	if hook != nil {
		hook.Before(e.Mesh, e.World)
	}
	e.Mesh.Draw(r, e.World)
	r.stats.DrawCalls++
	if hook != nil {
		hook.After(e.Mesh, e.World)
	}
}

// Cleanup destroys every registered model and empties the renderer.
func (r *Renderer) Cleanup() {
	for _, m := range r.models {
		m.Destroy()
	}
	r.log.Debug("renderer cleaned up", zap.Int("models", len(r.models)))
	r.models = nil
	r.list, r.opaque, r.translucent, r.outlined = nil, nil, nil, nil
}
