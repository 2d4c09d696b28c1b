package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/lumen/internal/engine/geometry"
	"github.com/Faultbox/lumen/internal/engine/gfx"
	"github.com/Faultbox/lumen/internal/engine/lighting"
	"github.com/Faultbox/lumen/internal/engine/material"
	"github.com/Faultbox/lumen/internal/engine/model"
	"github.com/Faultbox/lumen/internal/engine/render"
	"github.com/Faultbox/lumen/internal/logger"
	"github.com/Faultbox/lumen/pkg/math"
)

// BorderShader is the built-in flat-color shader used for default outlines.
const BorderShader = "border"

// defaultOutlineMaterial names the material created for outlines when the
// scene does not name one.
const defaultOutlineMaterial = "outline"

// Assets resolves shader and texture references during Build.
type Assets interface {
	Shader(name string, desc ShaderDesc) (gfx.Shader, error)
	Texture(name, source string) (gfx.Texture, error)
}

// Options tune Build.
type Options struct {
	// OutlineScale is used when the scene sets no outline scale.
	OutlineScale float32
}

// Build creates the scene's materials in mats and its models and lights in r.
// On error the materials and models it added are removed again and the clear
// color is restored. Shaders and textures stay cached in assets.
func (s *Scene) Build(dev gfx.Device, assets Assets, mats *material.Registry, r *render.Renderer, opts Options) (err error) {
	var added []*model.Model
	baseMaterials, clearColor := mats.Len(), r.ClearColor()
	defer func() {
		if err == nil {
			return
		}
		for _, m := range added {
			r.RemoveModel(m)
			m.Destroy()
		}
		mats.Truncate(baseMaterials)
		r.SetClearColor(clearColor)
	}()

	if s.ClearColor != nil {
		r.SetClearColor(gfx.ColorFrom(*s.ClearColor))
	}

	b := builder{scene: s, assets: assets, textures: make(map[string]gfx.Texture)}
	for _, desc := range s.Materials {
		if _, err := b.material(mats, desc); err != nil {
			return fmt.Errorf("material %q: %w", desc.Name, err)
		}
	}

	outlined := false
	for _, desc := range s.Models {
		imp, err := geometry.Import(desc.Primitive, mats.Get(desc.Material))
		if err != nil {
			return fmt.Errorf("model %q: %w", desc.Name, err)
		}
		m, err := model.Build(dev, desc.Name, imp)
		if err != nil {
			return err
		}
		m.Position = desc.Position.vec()
		m.Rotation = desc.Rotation.vec()
		if desc.Scale != nil {
			m.Scale = desc.Scale.vec()
		}
		m.Outline = desc.Outline
		outlined = outlined || desc.Outline
		r.AddModel(m)
		added = append(added, m)
	}

	if outlined {
		border, err := b.outline(mats)
		if err != nil {
			return fmt.Errorf("outline: %w", err)
		}
		scale := s.Outline.Scale
		if scale <= 0 {
			scale = opts.OutlineScale
		}
		if scale <= 0 {
			scale = render.DefaultOutlineScale
		}
		r.SetOutline(border, scale)
	}

	s.Lights.apply(r)

	logger.Info("scene built",
		zap.Int("materials", mats.Len()),
		zap.Int("models", len(r.Models())),
		zap.Int("omni_lights", len(s.Lights.Omni)),
		zap.Int("spot_lights", len(s.Lights.Spot)),
		zap.Bool("directional_light", s.Lights.Directional != nil),
	)
	return nil
}

type builder struct {
	scene    *Scene
	assets   Assets
	textures map[string]gfx.Texture
}

func (b *builder) material(mats *material.Registry, d MaterialDesc) (*material.Material, error) {
	sh, err := b.assets.Shader(d.Shader, b.scene.Shaders[d.Shader])
	if err != nil {
		return nil, err
	}

	var opts []material.Option
	for _, cat := range []struct {
		names []string
		opt   func(...gfx.Texture) material.Option
	}{
		{d.Diffuse, material.WithDiffuse},
		{d.Specular, material.WithSpecular},
		{d.Normal, material.WithNormal},
		{d.Height, material.WithHeight},
	} {
		if len(cat.names) == 0 {
			continue
		}
		texs, err := b.texturesFor(cat.names)
		if err != nil {
			return nil, err
		}
		opts = append(opts, cat.opt(texs...))
	}

	m, _, err := mats.Create(d.Name, sh, opts...)
	if err != nil {
		return nil, err
	}
	if err := applyState(m, d); err != nil {
		return nil, err
	}
	return m, nil
}

func (b *builder) texturesFor(names []string) ([]gfx.Texture, error) {
	out := make([]gfx.Texture, 0, len(names))
	for _, name := range names {
		t, ok := b.textures[name]
		if !ok {
			var err error
			if t, err = b.assets.Texture(name, b.scene.Textures[name]); err != nil {
				return nil, err
			}
			b.textures[name] = t
		}
		out = append(out, t)
	}
	return out, nil
}

// outline returns the named outline material or creates the default border.
func (b *builder) outline(mats *material.Registry) (*material.Material, error) {
	if name := b.scene.Outline.Material; name != "" {
		return mats.Get(name), nil
	}
	return defaultOutline(mats, b.assets, b.scene.Shaders[BorderShader])
}

// DefaultOutline returns the flat border material, creating it in mats with
// the built-in border shader on first use.
func DefaultOutline(mats *material.Registry, assets Assets) (*material.Material, error) {
	return defaultOutline(mats, assets, ShaderDesc{})
}

func defaultOutline(mats *material.Registry, assets Assets, desc ShaderDesc) (*material.Material, error) {
	if m := mats.Get(defaultOutlineMaterial); m != nil {
		return m, nil
	}
	sh, err := assets.Shader(BorderShader, desc)
	if err != nil {
		return nil, err
	}
	m, _, err := mats.Create(defaultOutlineMaterial, sh, material.WithDepth(false, false, gfx.Always))
	return m, err
}

func applyState(m *material.Material, d MaterialDesc) error {
	if d.Shininess != nil {
		m.Shininess = *d.Shininess
	}
	m.Translucent = d.Translucent
	m.AlphaBlend = d.Translucent
	if d.AlphaBlend != nil {
		m.AlphaBlend = *d.AlphaBlend
	}
	if d.DepthTest != nil {
		m.DepthTest = *d.DepthTest
	}
	if d.DepthWrite != nil {
		m.DepthWrite = *d.DepthWrite
	}
	m.Clockwise = d.Clockwise

	var err error
	if d.DepthFunc != "" {
		if m.DepthFunc, err = gfx.ParseCompareFunc(d.DepthFunc); err != nil {
			return err
		}
	}
	if d.BlendSrc != "" {
		if m.BlendSrc, err = gfx.ParseBlendFactor(d.BlendSrc); err != nil {
			return err
		}
	}
	if d.BlendDst != "" {
		if m.BlendDst, err = gfx.ParseBlendFactor(d.BlendDst); err != nil {
			return err
		}
	}
	if d.CullFace != "" {
		if m.CullFace, err = gfx.ParseCullMode(d.CullFace); err != nil {
			return err
		}
	}
	return nil
}

func (l Lights) apply(r *render.Renderer) {
	if d := l.Directional; d != nil {
		dir := math.Vec3{X: -0.2, Y: -1, Z: -0.3}
		switch {
		case d.Direction != nil:
			dir = d.Direction.vec()
		case d.Sun != nil:
			dir = lighting.SunDirection(d.Sun.Azimuth, d.Sun.Elevation)
		}
		r.SetDirectionalLight(lighting.Directional{Color: d.color(), Direction: dir})
	}
	for _, o := range l.Omni {
		r.AddOmniLight(lighting.Omni{
			Color:       o.color(),
			Position:    o.Position.vec(),
			Attenuation: o.attenuation(),
		})
	}
	for _, s := range l.Spot {
		inner, outer := lighting.SpotFromAngles(orDefault(s.Inner, 12.5), orDefault(s.Outer, 15))
		r.AddSpotLight(lighting.Spot{
			Color:        s.color(),
			Position:     s.Position.vec(),
			Direction:    s.Direction.vec(),
			Attenuation:  s.attenuation(),
			InnerCutoff:  inner,
			OuterCutoff:  outer,
			FollowCamera: s.FollowCamera,
		})
	}
}

func (c ColorDesc) color() lighting.Color {
	return lighting.Color{Ambient: c.Ambient.vec(), Diffuse: c.Diffuse.vec(), Specular: c.Specular.vec()}
}

func (a AttenuationDesc) attenuation() lighting.Attenuation {
	att := lighting.DefaultAttenuation
	if a.Constant != nil {
		att.Constant = *a.Constant
	}
	if a.Linear != nil {
		att.Linear = *a.Linear
	}
	if a.Quadratic != nil {
		att.Quadratic = *a.Quadratic
	}
	return att
}

func (v Vec3) vec() math.Vec3 { return math.Vec3{X: v[0], Y: v[1], Z: v[2]} }

func orDefault(v, def float32) float32 {
	if v == 0 {
		return def
	}
	return v
}
