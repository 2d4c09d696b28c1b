// Package material holds the render-state bundle applied before a mesh is drawn.
//
// A Material configures depth, culling, winding and blending on the device,
// binds its shader and textures and uploads the model matrix. Materials are
// created and owned by a Registry; meshes only reference them.
package material

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/Faultbox/lumen/internal/engine/gfx"
	"github.com/Faultbox/lumen/pkg/math"
)

// DefaultShininess is the specular exponent of a new material.
const DefaultShininess = 64

// Texture categories, bound in this order to consecutive texture units.
const (
	Diffuse  = "diffuse"
	Specular = "specular"
	Normal   = "normal"
	Height   = "height"
)

// ModelUniform receives the model (world) matrix.
const ModelUniform = "model"

// ShininessUniform receives the specular exponent.
const ShininessUniform = "material.shininess"

// Material is a named render-state bundle. Fields other than the name and
// shader may be changed between frames.
type Material struct {
	name   string
	reg    *Registry
	shader gfx.Shader

	Diffuse  []gfx.Texture
	Specular []gfx.Texture
	Normal   []gfx.Texture
	Height   []gfx.Texture

	Shininess float32

	Translucent bool

	DepthTest  bool
	DepthWrite bool
	DepthFunc  gfx.CompareFunc

	AlphaBlend bool
	BlendSrc   gfx.BlendFactor
	BlendDst   gfx.BlendFactor

	CullFace  gfx.CullMode
	Clockwise bool
}

func newMaterial(name string, reg *Registry, shader gfx.Shader) *Material {
	return &Material{
		name:       name,
		reg:        reg,
		shader:     shader,
		Shininess:  DefaultShininess,
		DepthTest:  true,
		DepthWrite: true,
		DepthFunc:  gfx.Less,
		BlendSrc:   gfx.SrcAlpha,
		BlendDst:   gfx.OneMinusSrcAlpha,
		CullFace:   gfx.CullBack,
	}
}

// Name returns the unique registry name.
func (m *Material) Name() string { return m.name }

// Shader returns the material's shader.
func (m *Material) Shader() gfx.Shader { return m.shader }

// Active applies the material's pipeline state, binds its shader, lets binder
// upload per-frame data, binds textures and uploads model.
//
// Active panics if any material of the same registry is already active.
func (m *Material) Active(binder gfx.ShaderBinder, model math.Mat4) {
	if cur := m.reg.active; cur != nil {
		panic(fmt.Sprintf("material: %q activated while %q is active", m.name, cur.name))
	}
	m.reg.active = m

	dev := m.reg.dev
	if m.DepthTest {
		dev.Enable(gfx.DepthTest)
		dev.DepthMask(m.DepthWrite)
		dev.DepthFunc(m.DepthFunc)
	} else {
		dev.Disable(gfx.DepthTest)
	}

	if m.CullFace != gfx.CullNone {
		dev.Enable(gfx.FaceCulling)
		dev.CullFace(m.CullFace)
	} else {
		dev.Disable(gfx.FaceCulling)
	}

	dev.FrontFace(m.Clockwise)

	if m.Blends() {
		dev.Enable(gfx.Blending)
		dev.BlendFunc(m.BlendSrc, m.BlendDst)
	} else {
		dev.Disable(gfx.Blending)
	}

	m.shader.Bind()
	if binder != nil {
		binder.BindShaderData(m.shader)
	}

	unit := 0
	unit = m.bindTextures(Diffuse, m.Diffuse, unit)
	unit = m.bindTextures(Specular, m.Specular, unit)
	unit = m.bindTextures(Normal, m.Normal, unit)
	m.bindTextures(Height, m.Height, unit)

	m.shader.SetFloat(ShininessUniform, m.Shininess)
	m.shader.SetMat4(ModelUniform, model)
}

// Deactive unbinds the shader. Pipeline state is left as Active set it.
func (m *Material) Deactive() {
	m.shader.Unbind()
	if m.reg.active == m {
		m.reg.active = nil
	}
}

// Blends reports whether Active enables blending.
func (m *Material) Blends() bool {
	return m.Translucent && m.AlphaBlend
}

func (m *Material) bindTextures(category string, textures []gfx.Texture, unit int) int {
	prefix := "material." + category
	for i, t := range textures {
		t.Activate(unit)
		m.shader.SetInt(prefix+"_textures["+strconv.Itoa(i)+"]", int32(unit))
		unit++
	}
	m.shader.SetInt(prefix+"_count", int32(len(textures)))
	return unit
}

// Equal reports structural equality: same shader, same textures per category
// and same shininess. Pipeline flags are not compared.
func (m *Material) Equal(o *Material) bool {
	if m == o {
		return true
	}
	if m == nil || o == nil {
		return false
	}
	return m.shader == o.shader &&
		slices.Equal(m.Diffuse, o.Diffuse) &&
		slices.Equal(m.Specular, o.Specular) &&
		slices.Equal(m.Normal, o.Normal) &&
		slices.Equal(m.Height, o.Height) &&
		m.Shininess == o.Shininess
}

// Less orders materials by name.
func (m *Material) Less(o *Material) bool {
	return m.name < o.name
}
