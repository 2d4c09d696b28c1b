package app

import (
	gomath "math"
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/lumen/internal/config"
	"github.com/Faultbox/lumen/internal/engine/camera"
	"github.com/Faultbox/lumen/internal/engine/geometry"
	"github.com/Faultbox/lumen/internal/engine/gfx/gfxtest"
	"github.com/Faultbox/lumen/internal/engine/material"
	"github.com/Faultbox/lumen/internal/engine/model"
	"github.com/Faultbox/lumen/internal/scene"
	"github.com/Faultbox/lumen/pkg/math"
)

type fakeInput struct {
	held   map[sdl.Scancode]bool
	dx, dy int
	wheel  int
}

func (f fakeInput) IsKeyHeld(s sdl.Scancode) bool { return f.held[s] }
func (f fakeInput) MouseDelta() (int, int)        { return f.dx, f.dy }
func (f fakeInput) WheelDelta() int               { return f.wheel }

func near(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < 1e-4
}

func TestNewControllerFly(t *testing.T) {
	cfg := config.Default().Camera
	yaw := float32(-45)
	pose := scene.Camera{Position: scene.Vec3{1, 2, 3}, Yaw: &yaw, Pitch: 10}

	c := newController(cfg, pose, 800, 400)
	fly, ok := c.(*flyController)
	if !ok {
		t.Fatalf("controller = %T, want *flyController", c)
	}
	if p := fly.cam.Position(); p.X != 1 || p.Y != 2 || p.Z != 3 {
		t.Errorf("Position() = %+v, want (1,2,3)", p)
	}
	if fly.cam.Yaw() != -45 || fly.cam.Pitch() != 10 {
		t.Errorf("orientation = (%v, %v), want (-45, 10)", fly.cam.Yaw(), fly.cam.Pitch())
	}
	if c.Lens().Aspect != 2 {
		t.Errorf("Aspect = %v, want 2", c.Lens().Aspect)
	}
	if fly.cam.MoveSpeed != cfg.MoveSpeed {
		t.Errorf("MoveSpeed = %v, want %v", fly.cam.MoveSpeed, cfg.MoveSpeed)
	}
}

func TestFlyControllerUpdate(t *testing.T) {
	cfg := config.Default().Camera
	cfg.MoveSpeed = 2
	c := newController(cfg, scene.Camera{}, 100, 100)
	fly := c.(*flyController)

	// Default yaw looks down -Z, so W moves toward -Z
	c.Update(fakeInput{held: map[sdl.Scancode]bool{sdl.SCANCODE_W: true}}, 0.5)
	if p := fly.cam.Position(); !near(p.Z, -1) || !near(p.X, 0) {
		t.Errorf("Position() after W = %+v, want z=-1", p)
	}

	before := fly.cam.Yaw()
	c.SetCaptured(false)
	c.Update(fakeInput{dx: 100}, 0)
	if fly.cam.Yaw() != before {
		t.Errorf("yaw changed while not captured")
	}
	c.SetCaptured(true)
	c.Update(fakeInput{dx: 100}, 0)
	if !near(fly.cam.Yaw(), before+100*cfg.MouseSensitivity) {
		t.Errorf("Yaw() = %v, want %v", fly.cam.Yaw(), before+100*cfg.MouseSensitivity)
	}

	fov := c.Lens().FOV
	c.Update(fakeInput{wheel: 1}, 0)
	if c.Lens().FOV != fov-zoomStep {
		t.Errorf("FOV = %v, want %v", c.Lens().FOV, fov-zoomStep)
	}
}

func TestOrbitController(t *testing.T) {
	cfg := config.Default().Camera
	cfg.Mode = "orbit"
	c := newController(cfg, scene.Camera{Position: scene.Vec3{0, 0, 10}}, 100, 100)
	orbit, ok := c.(*orbitController)
	if !ok {
		t.Fatalf("controller = %T, want *orbitController", c)
	}
	if orbit.cam.Distance != 10 {
		t.Errorf("Distance = %v, want 10", orbit.cam.Distance)
	}

	rot := orbit.cam.RotationY
	c.Update(fakeInput{dx: 50}, 0)
	if orbit.cam.RotationY != rot {
		t.Errorf("rotated without drag")
	}
	c.SetCaptured(true)
	c.Update(fakeInput{dx: 50}, 0)
	if orbit.cam.RotationY == rot {
		t.Errorf("drag did not rotate")
	}

	c.Update(fakeInput{wheel: 1}, 0)
	if orbit.cam.Distance >= 10 {
		t.Errorf("Distance = %v, want < 10 after zoom in", orbit.cam.Distance)
	}
}

func TestOrbitDistanceClamped(t *testing.T) {
	cfg := config.Default().Camera
	cfg.Mode = "orbit"
	c := newController(cfg, scene.Camera{Position: scene.Vec3{0, 0, 500}}, 100, 100)
	orbit := c.(*orbitController)
	want := camera.NewOrbitCamera(orbit.cam.Center, orbit.cam.Lens).MaxDistance
	if orbit.cam.Distance != want {
		t.Errorf("Distance = %v, want %v", orbit.cam.Distance, want)
	}
}

func cubeAt(t *testing.T, name string, pos math.Vec3) *model.Model {
	t.Helper()
	dev := gfxtest.NewDevice()
	mat := material.NewRegistry(dev).MustCreate("m", gfxtest.NewShader("phong"))
	imp, err := geometry.Import(geometry.PrimitiveCube, mat)
	if err != nil {
		t.Fatalf("import cube: %v", err)
	}
	m, err := model.Build(dev, name, imp)
	if err != nil {
		t.Fatalf("build cube: %v", err)
	}
	m.Position = pos
	return m
}

func TestOrbitFitsModels(t *testing.T) {
	cfg := config.Default().Camera
	cfg.Mode = "orbit"
	c := newController(cfg, scene.Camera{Position: scene.Vec3{0, 0, 10}}, 100, 100)
	orbit := c.(*orbitController)

	models := []*model.Model{
		cubeAt(t, "a", math.Vec3{X: 10}),
		cubeAt(t, "b", math.Vec3{X: 10, Z: 4}),
		model.New("empty"),
	}
	c.Fit(models)

	want := math.Vec3{X: 10, Z: 2}
	if !near(orbit.cam.Center.X, want.X) || !near(orbit.cam.Center.Y, want.Y) || !near(orbit.cam.Center.Z, want.Z) {
		t.Errorf("Center = %+v, want %+v", orbit.cam.Center, want)
	}
	if orbit.cam.Distance <= 4 {
		t.Errorf("Distance = %v, want room for both cubes", orbit.cam.Distance)
	}
}

func TestOrbitFitIgnoresEmptyScene(t *testing.T) {
	cfg := config.Default().Camera
	cfg.Mode = "orbit"
	c := newController(cfg, scene.Camera{Position: scene.Vec3{0, 0, 10}}, 100, 100)
	orbit := c.(*orbitController)

	c.Fit([]*model.Model{model.New("empty")})

	if orbit.cam.Center != (math.Vec3{}) || orbit.cam.Distance != 10 {
		t.Errorf("empty scene moved the camera: center %+v distance %v", orbit.cam.Center, orbit.cam.Distance)
	}
}

func TestFlyFitKeepsPose(t *testing.T) {
	c := newController(config.Default().Camera, scene.Camera{Position: scene.Vec3{1, 2, 3}}, 100, 100)

	c.Fit([]*model.Model{cubeAt(t, "a", math.Vec3{X: 10})})

	if got := c.Camera().Position(); got != (math.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("Position = %+v, want scene pose", got)
	}
}

func TestDefaultSceneParses(t *testing.T) {
	sc, err := loadScene("")
	if err != nil {
		t.Fatalf("loadScene() error = %v", err)
	}
	if len(sc.Models) == 0 || len(sc.Materials) == 0 {
		t.Errorf("default scene has %d models and %d materials", len(sc.Models), len(sc.Materials))
	}
}
