package app

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/lumen/internal/config"
	"github.com/Faultbox/lumen/internal/engine/camera"
	"github.com/Faultbox/lumen/internal/engine/input"
	"github.com/Faultbox/lumen/internal/engine/model"
	"github.com/Faultbox/lumen/internal/engine/render"
	"github.com/Faultbox/lumen/internal/scene"
	"github.com/Faultbox/lumen/pkg/math"
)

// zoomStep is the field of view change per wheel notch, in degrees.
const zoomStep = 2

// inputState is the part of input.Input a controller reads.
type inputState interface {
	IsKeyHeld(sdl.Scancode) bool
	MouseDelta() (dx, dy int)
	WheelDelta() int
}

// controller steers a camera from per-frame input.
type controller interface {
	Camera() render.Camera
	Lens() *camera.Lens
	Update(in inputState, dt float32)
	// SetCaptured tells the controller whether mouse motion is relative.
	SetCaptured(bool)
	// Fit frames the loaded models where the camera supports it.
	Fit(models []*model.Model)
}

// newController builds the camera selected by cfg and places it at the
// scene's initial pose.
func newController(cfg config.CameraConfig, pose scene.Camera, width, height int) controller {
	lens := camera.Lens{FOV: cfg.FOV, ZNear: cfg.Near, ZFar: cfg.Far}
	lens.SetViewport(width, height)
	pos := math.Vec3{X: pose.Position[0], Y: pose.Position[1], Z: pose.Position[2]}

	if cfg.Mode == "orbit" {
		c := camera.NewOrbitCamera(math.Vec3{}, lens)
		if d := pos.Length(); d > 0 {
			c.Distance = clamp(d, c.MinDistance, c.MaxDistance)
		}
		return &orbitController{cam: c}
	}

	c := camera.NewFlyCamera(pos, lens)
	c.SetOrientation(pose.YawOrDefault(), pose.Pitch)
	if cfg.MoveSpeed > 0 {
		c.MoveSpeed = cfg.MoveSpeed
	}
	if cfg.MouseSensitivity > 0 {
		c.Sensitivity = cfg.MouseSensitivity
	}
	return &flyController{cam: c, captured: true}
}

type flyController struct {
	cam      *camera.FlyCamera
	captured bool
}

func (f *flyController) Camera() render.Camera { return f.cam }
func (f *flyController) Lens() *camera.Lens    { return &f.cam.Lens }
func (f *flyController) SetCaptured(v bool)    { f.captured = v }

// Fit keeps the scene's pose; a fly camera starts where the scene puts it.
func (f *flyController) Fit([]*model.Model) {}

func (f *flyController) Update(in inputState, dt float32) {
	if f.captured {
		dx, dy := in.MouseDelta()
		f.cam.HandleMouse(float32(dx), float32(dy))
	}
	if w := in.WheelDelta(); w != 0 {
		f.cam.Zoom(float32(w) * zoomStep)
	}
	fwd, right, up := input.Axes(in.IsKeyHeld)
	f.cam.HandleMovement(fwd, right, up, dt)
}

type orbitController struct {
	cam      *camera.OrbitCamera
	captured bool
}

func (o *orbitController) Camera() render.Camera { return o.cam }
func (o *orbitController) Lens() *camera.Lens    { return &o.cam.Lens }
func (o *orbitController) SetCaptured(v bool)    { o.captured = v }

// Fit centers the orbit on the world bounds of every model with meshes.
func (o *orbitController) Fit(models []*model.Model) {
	b, ok := sceneBounds(models)
	if !ok {
		return
	}
	o.cam.FitToBounds(b.Min, b.Max)
}

func (o *orbitController) Update(in inputState, _ float32) {
	if o.captured {
		dx, dy := in.MouseDelta()
		o.cam.HandleDrag(float32(dx), float32(dy))
	}
	if w := in.WheelDelta(); w != 0 {
		o.cam.HandleZoom(float32(w))
	}
	fwd, right, up := input.Axes(in.IsKeyHeld)
	o.cam.HandleMovement(fwd, right, up)
}

// sceneBounds returns the union of the world bounds of models that have
// meshes, and false when there are none.
func sceneBounds(models []*model.Model) (model.Bounds, bool) {
	var (
		out   model.Bounds
		found bool
	)
	for _, m := range models {
		if len(m.Meshes()) == 0 {
			continue
		}
		if wb := m.WorldBounds(); found {
			out = out.Union(wb)
		} else {
			out, found = wb, true
		}
	}
	return out, found
}

func clamp(v, lo, hi float32) float32 {
	return max(lo, min(v, hi))
}
