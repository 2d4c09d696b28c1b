// Package config handles viewer configuration loading and management.
package config

import "fmt"

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Render   RenderConfig   `yaml:"render"`
	Camera   CameraConfig   `yaml:"camera"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// RenderConfig holds renderer settings.
type RenderConfig struct {
	ClearColor   [4]float32 `yaml:"clear_color"`
	DebugGL      bool       `yaml:"debug_gl"`      // Check glGetError after every state call
	OutlineScale float32    `yaml:"outline_scale"` // Silhouette scale for outlined meshes
}

// CameraConfig holds camera settings.
type CameraConfig struct {
	Mode             string  `yaml:"mode"` // "fly" or "orbit"
	FOV              float32 `yaml:"fov"`  // Degrees
	Near             float32 `yaml:"near"`
	Far              float32 `yaml:"far"`
	MoveSpeed        float32 `yaml:"move_speed"`        // Units per second
	MouseSensitivity float32 `yaml:"mouse_sensitivity"` // Degrees per pixel
}

// SceneConfig holds scene file settings.
type SceneConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Render: RenderConfig{
			ClearColor:   [4]float32{0.2, 0.3, 0.3, 1.0},
			DebugGL:      false,
			OutlineScale: 1.1,
		},
		Camera: CameraConfig{
			Mode:             "fly",
			FOV:              45,
			Near:             0.1,
			Far:              100,
			MoveSpeed:        2.5,
			MouseSensitivity: 0.1,
		},
		Scene: SceneConfig{
			Path: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings the viewer cannot start with.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("invalid clip planes near=%v far=%v", c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("invalid fov %v", c.Camera.FOV)
	}
	if c.Camera.Mode != "fly" && c.Camera.Mode != "orbit" {
		return fmt.Errorf("invalid camera mode %q", c.Camera.Mode)
	}
	if c.Render.OutlineScale <= 0 {
		return fmt.Errorf("invalid outline scale %v", c.Render.OutlineScale)
	}
	return nil
}
