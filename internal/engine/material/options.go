package material

import "github.com/Faultbox/lumen/internal/engine/gfx"

// Option configures a material at creation.
type Option func(*Material)

// WithDiffuse sets the diffuse textures.
func WithDiffuse(t ...gfx.Texture) Option {
	return func(m *Material) { m.Diffuse = t }
}

// WithSpecular sets the specular textures.
func WithSpecular(t ...gfx.Texture) Option {
	return func(m *Material) { m.Specular = t }
}

// WithNormal sets the normal-map textures.
func WithNormal(t ...gfx.Texture) Option {
	return func(m *Material) { m.Normal = t }
}

// WithHeight sets the height-map textures.
func WithHeight(t ...gfx.Texture) Option {
	return func(m *Material) { m.Height = t }
}

// WithShininess sets the specular exponent.
func WithShininess(s float32) Option {
	return func(m *Material) { m.Shininess = s }
}

// Translucent marks the material for the back-to-front translucent pass and
// turns on alpha blending.
func Translucent() Option {
	return func(m *Material) {
		m.Translucent = true
		m.AlphaBlend = true
	}
}

// WithBlend sets the blend factors.
func WithBlend(src, dst gfx.BlendFactor) Option {
	return func(m *Material) {
		m.BlendSrc = src
		m.BlendDst = dst
	}
}

// WithDepth sets depth testing, depth writes and the depth comparison.
func WithDepth(test, write bool, fn gfx.CompareFunc) Option {
	return func(m *Material) {
		m.DepthTest = test
		m.DepthWrite = write
		m.DepthFunc = fn
	}
}

// WithCullFace sets the culled faces.
func WithCullFace(mode gfx.CullMode) Option {
	return func(m *Material) { m.CullFace = mode }
}

// Clockwise makes clockwise triangles front-facing.
func Clockwise() Option {
	return func(m *Material) { m.Clockwise = true }
}
