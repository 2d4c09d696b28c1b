// Package app runs the scene viewer: window, GL device, renderer and the
// frame loop.
package app

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/lumen/internal/assets"
	"github.com/Faultbox/lumen/internal/config"
	"github.com/Faultbox/lumen/internal/engine/debug"
	"github.com/Faultbox/lumen/internal/engine/gfx"
	"github.com/Faultbox/lumen/internal/engine/input"
	"github.com/Faultbox/lumen/internal/engine/material"
	"github.com/Faultbox/lumen/internal/engine/opengl"
	"github.com/Faultbox/lumen/internal/engine/picking"
	"github.com/Faultbox/lumen/internal/engine/render"
	"github.com/Faultbox/lumen/internal/engine/shader"
	"github.com/Faultbox/lumen/internal/engine/texture"
	"github.com/Faultbox/lumen/internal/engine/window"
	"github.com/Faultbox/lumen/internal/logger"
	"github.com/Faultbox/lumen/internal/scene"
)

const title = "Lumen"

//go:embed default.yaml
var defaultScene []byte

// App is the viewer instance.
type App struct {
	cfg     *config.Config
	running bool

	window    *window.Window
	input     *input.Input
	device    *opengl.Device
	files     *assets.Manager
	shaders   *shader.Registry
	textures  *texture.Registry
	materials *material.Registry
	renderer  *render.Renderer
	control   controller
	captured  bool

	shots     *debug.Screenshots
	wantsShot bool
}

// New creates the window and GL context, then loads the configured scene.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("camera", cfg.Camera.Mode),
		zap.String("scene", cfg.Scene.Path),
	)

	a := &App{cfg: cfg}

	var err error
	a.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// GL functions load only after the context exists
	a.device, err = opengl.New(cfg.Render.DebugGL)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create device: %w", err)
	}
	width, height := a.window.DrawableSize()
	a.device.Viewport(width, height)

	// Scene-relative paths win over the working directory
	a.files = assets.NewManager()
	roots := []string{"."}
	if cfg.Scene.Path != "" {
		roots = append(roots, filepath.Dir(cfg.Scene.Path))
	}
	for _, dir := range roots {
		if err := a.files.AddDir(dir); err != nil {
			a.Close()
			return nil, err
		}
	}

	a.shaders = shader.NewRegistry()
	a.textures = texture.NewRegistry()
	a.textures.SetReader(a.files.Load)
	a.materials = material.NewRegistry(a.device)
	a.input = input.New()
	a.shots = debug.NewScreenshots("screenshots", "lumen")

	if err := a.shaders.LoadBuiltins(); err != nil {
		a.Close()
		return nil, err
	}

	sc, err := loadScene(cfg.Scene.Path)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.control = newController(cfg.Camera, sc.Camera, width, height)
	a.renderer = render.New(a.device, a.control.Camera())
	a.renderer.SetClearColor(gfx.ColorFrom(cfg.Render.ClearColor))

	opts := scene.Options{OutlineScale: cfg.Render.OutlineScale}
	if err := sc.Build(a.device, a.sceneAssets(), a.materials, a.renderer, opts); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}
	a.control.Fit(a.renderer.Models())

	// Fly mode looks with the mouse; orbit mode drags with a button held
	a.setCaptured(cfg.Camera.Mode != "orbit")

	logger.Info("viewer initialized successfully")
	return a, nil
}

func (a *App) sceneAssets() scene.GLAssets {
	return scene.GLAssets{Files: a.files, Shaders: a.shaders, Textures: a.textures}
}

// loadScene reads the scene at path, or the built-in demo when path is empty.
func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.Parse(defaultScene)
	}
	return scene.Load(path)
}

// Run starts the frame loop and returns when the window closes or Escape is
// pressed.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for a.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()

		a.control.Update(a.input, dt)
		a.renderer.Draw(dt)
		if a.wantsShot {
			a.wantsShot = false
			a.screenshot()
		}
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			stats := a.renderer.Stats()
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
				zap.Int("draw_calls", stats.DrawCalls),
			)
			a.window.SetTitle(fmt.Sprintf("%s - %d fps", title, frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) handleEvents() {
	orbit := a.cfg.Camera.Mode == "orbit"
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			width, height := a.window.DrawableSize()
			a.device.Viewport(width, height)
			a.control.Lens().SetViewport(width, height)
		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				a.running = false
			case sdl.SCANCODE_TAB:
				if !orbit {
					a.setCaptured(!a.captured)
				}
			case sdl.SCANCODE_F12:
				a.wantsShot = true
			}
		case input.EventMouseDown:
			if event.Button == sdl.BUTTON_RIGHT {
				a.toggleOutline(event.MouseX, event.MouseY)
			}
			if orbit && event.Button == sdl.BUTTON_LEFT {
				a.setCaptured(true)
			}
		case input.EventMouseUp:
			if orbit && event.Button == sdl.BUTTON_LEFT {
				a.setCaptured(false)
			}
		}
	}
}

func (a *App) setCaptured(v bool) {
	a.captured = v
	a.control.SetCaptured(v)
	// Orbit dragging keeps the cursor visible
	if a.cfg.Camera.Mode != "orbit" {
		a.window.CaptureMouse(v)
	}
}

// toggleOutline flips the outline of the model under the cursor. A captured
// fly camera picks through the screen center.
func (a *App) toggleOutline(x, y int) {
	w, h := a.window.GetSize()
	if a.captured && a.cfg.Camera.Mode != "orbit" {
		x, y = w/2, h/2
	}
	cam := a.control.Camera()
	lens := a.control.Lens()
	ray := picking.ScreenToRay(float32(x), float32(y), float32(w), float32(h), picking.View{
		Eye:     cam.Position(),
		Forward: cam.Forward(),
		FOV:     lens.FOV,
		Aspect:  lens.Aspect,
	})

	m, dist := picking.Pick(ray, a.renderer.Models())
	if m == nil {
		return
	}
	m.Outline = !m.Outline
	logger.Debug("model picked",
		zap.String("model", m.Name()),
		zap.Float32("distance", dist),
		zap.Bool("outline", m.Outline),
	)
	if m.Outline && !a.renderer.HasOutline() {
		a.enableOutline()
	}
}

// enableOutline creates the flat border material for scenes that declared no
// outlined model.
func (a *App) enableOutline() {
	border, err := scene.DefaultOutline(a.materials, a.sceneAssets())
	if err != nil {
		logger.Warn("outline unavailable", zap.Error(err))
		return
	}
	a.renderer.SetOutline(border, a.cfg.Render.OutlineScale)
}

func (a *App) screenshot() {
	w, h := a.window.DrawableSize()
	img, err := debug.FromPixels(a.device.ReadPixels(w, h), w, h)
	if err == nil {
		var path string
		if path, err = a.shots.Save(img); err == nil {
			logger.Info("screenshot saved", zap.String("path", path))
			return
		}
	}
	logger.Warn("screenshot failed", zap.Error(err))
}

// Close releases GL resources and the window.
func (a *App) Close() {
	logger.Info("closing viewer")

	if a.renderer != nil {
		a.renderer.Cleanup()
	}
	if a.materials != nil {
		a.materials.Cleanup()
	}
	if a.textures != nil {
		a.textures.Cleanup()
	}
	if a.shaders != nil {
		a.shaders.Cleanup()
	}
	if a.files != nil {
		a.files.Close()
	}
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}
}
