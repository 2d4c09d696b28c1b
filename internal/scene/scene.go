// Package scene loads YAML scene descriptions and builds them into a renderer.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/lumen/internal/engine/geometry"
)

// Vec3 is an [x, y, z] triple in YAML.
type Vec3 [3]float32

// Scene is a parsed scene description.
type Scene struct {
	ClearColor *[4]float32           `yaml:"clear_color"`
	Camera     Camera                `yaml:"camera"`
	Shaders    map[string]ShaderDesc `yaml:"shaders"`
	Textures   map[string]string     `yaml:"textures"` // Name -> file path or "checker"
	Materials  []MaterialDesc        `yaml:"materials"`
	Models     []ModelDesc           `yaml:"models"`
	Lights     Lights                `yaml:"lights"`
	Outline    Outline               `yaml:"outline"`
}

// Camera is the initial fly camera pose.
type Camera struct {
	Position Vec3     `yaml:"position"`
	Yaw      *float32 `yaml:"yaw"`   // Degrees, default -90 (looking down -Z)
	Pitch    float32  `yaml:"pitch"` // Degrees
}

// YawOrDefault returns the yaw, -90 when unset.
func (c Camera) YawOrDefault() float32 {
	if c.Yaw == nil {
		return -90
	}
	return *c.Yaw
}

// ShaderDesc names GLSL source files. Built-in shaders need no files.
type ShaderDesc struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

// MaterialDesc describes one material. Unset fields keep material defaults.
type MaterialDesc struct {
	Name        string   `yaml:"name"`
	Shader      string   `yaml:"shader"`
	Diffuse     []string `yaml:"diffuse"`
	Specular    []string `yaml:"specular"`
	Normal      []string `yaml:"normal"`
	Height      []string `yaml:"height"`
	Shininess   *float32 `yaml:"shininess"`
	Translucent bool     `yaml:"translucent"`
	DepthTest   *bool    `yaml:"depth_test"`
	DepthWrite  *bool    `yaml:"depth_write"`
	DepthFunc   string   `yaml:"depth_func"`
	AlphaBlend  *bool    `yaml:"alpha_blend"` // Defaults to translucent
	BlendSrc    string   `yaml:"blend_src"`
	BlendDst    string   `yaml:"blend_dst"`
	CullFace    string   `yaml:"cull_face"`
	Clockwise   bool     `yaml:"clockwise"`
}

// ModelDesc places a primitive mesh.
type ModelDesc struct {
	Name      string `yaml:"name"`
	Primitive string `yaml:"primitive"` // cube, plane or quad
	Material  string `yaml:"material"`
	Position  Vec3   `yaml:"position"`
	Rotation  Vec3   `yaml:"rotation"` // Euler degrees
	Scale     *Vec3  `yaml:"scale"`
	Outline   bool   `yaml:"outline"`
}

// Lights lists the scene lights.
type Lights struct {
	Directional *DirectionalDesc `yaml:"directional"`
	Omni        []OmniDesc       `yaml:"omni"`
	Spot        []SpotDesc       `yaml:"spot"`
}

// ColorDesc holds the Phong terms of a light.
type ColorDesc struct {
	Ambient  Vec3 `yaml:"ambient"`
	Diffuse  Vec3 `yaml:"diffuse"`
	Specular Vec3 `yaml:"specular"`
}

// AttenuationDesc is the distance falloff. Missing values use the lighting default.
type AttenuationDesc struct {
	Constant  *float32 `yaml:"constant"`
	Linear    *float32 `yaml:"linear"`
	Quadratic *float32 `yaml:"quadratic"`
}

// SunDesc places the directional light by sun angles.
type SunDesc struct {
	Azimuth   float32 `yaml:"azimuth"`
	Elevation float32 `yaml:"elevation"`
}

// DirectionalDesc is a directional light, given by direction or sun angles.
type DirectionalDesc struct {
	ColorDesc `yaml:",inline"`
	Direction *Vec3    `yaml:"direction"`
	Sun       *SunDesc `yaml:"sun"`
}

// OmniDesc is a point light.
type OmniDesc struct {
	ColorDesc       `yaml:",inline"`
	AttenuationDesc `yaml:",inline"`
	Position        Vec3 `yaml:"position"`
}

// SpotDesc is a spot light with cone half-angles in degrees.
type SpotDesc struct {
	ColorDesc       `yaml:",inline"`
	AttenuationDesc `yaml:",inline"`
	Position        Vec3    `yaml:"position"`
	Direction       Vec3    `yaml:"direction"`
	Inner           float32 `yaml:"inner"`
	Outer           float32 `yaml:"outer"`
	FollowCamera    bool    `yaml:"follow_camera"`
}

// Outline configures the border drawn around outlined models.
type Outline struct {
	Material string  `yaml:"material"` // Defaults to a flat built-in border
	Scale    float32 `yaml:"scale"`
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scene. Unknown keys are errors.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks names and cross references.
func (s *Scene) Validate() error {
	materials := make(map[string]bool, len(s.Materials))
	for i, m := range s.Materials {
		if m.Name == "" {
			return fmt.Errorf("material %d: missing name", i)
		}
		if materials[m.Name] {
			return fmt.Errorf("material %q: duplicate name", m.Name)
		}
		materials[m.Name] = true
		if m.Shader == "" {
			return fmt.Errorf("material %q: missing shader", m.Name)
		}
		for _, tex := range concat(m.Diffuse, m.Specular, m.Normal, m.Height) {
			if _, ok := s.Textures[tex]; !ok {
				return fmt.Errorf("material %q: unknown texture %q", m.Name, tex)
			}
		}
	}

	models := make(map[string]bool, len(s.Models))
	for i, m := range s.Models {
		if m.Name == "" {
			return fmt.Errorf("model %d: missing name", i)
		}
		if models[m.Name] {
			return fmt.Errorf("model %q: duplicate name", m.Name)
		}
		models[m.Name] = true
		if !materials[m.Material] {
			return fmt.Errorf("model %q: unknown material %q", m.Name, m.Material)
		}
		switch m.Primitive {
		case geometry.PrimitiveCube, geometry.PrimitivePlane, geometry.PrimitiveQuad:
		default:
			return fmt.Errorf("model %q: unknown primitive %q", m.Name, m.Primitive)
		}
	}

	if s.Outline.Material != "" && !materials[s.Outline.Material] {
		return fmt.Errorf("outline: unknown material %q", s.Outline.Material)
	}
	if d := s.Lights.Directional; d != nil && d.Direction != nil && d.Sun != nil {
		return errors.New("directional light: set direction or sun, not both")
	}
	return nil
}

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
