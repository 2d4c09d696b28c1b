// Package gfx defines the graphics capabilities the render core draws through.
//
// The core never calls OpenGL directly. Pipeline state, buffers and draw calls go
// through Device; shader programs and textures are reached through the Shader and
// Texture contracts. The opengl package provides the real implementation and
// gfxtest provides recording fakes.
package gfx

import (
	"unsafe"

	"github.com/Faultbox/lumen/pkg/math"
)

// VertexArray is a device handle to a vertex buffer, its optional index buffer
// and the attribute layout bound to them.
type VertexArray uint32

// Device is a stateful immediate-mode graphics device.
type Device interface {
	Enable(cap Capability)
	Disable(cap Capability)

	DepthFunc(fn CompareFunc)
	DepthMask(write bool)

	CullFace(mode CullMode)
	FrontFace(clockwise bool)

	BlendFunc(src, dst BlendFactor)

	StencilFunc(fn CompareFunc, ref int32, mask uint32)
	StencilOp(stencilFail, depthFail, pass StencilOp)
	StencilMask(mask uint32)

	ClearColor(c Color)
	Clear(mask ClearMask)

	// CreateVertexArray uploads vertices laid out per layout. indices may be nil.
	CreateVertexArray(layout VertexLayout, vertices []byte, indices []uint32) VertexArray
	DeleteVertexArray(va VertexArray)

	// DrawElements draws count indices of va as a triangle list.
	DrawElements(va VertexArray, count int)
	// DrawArrays draws count vertices of va as a triangle list.
	DrawArrays(va VertexArray, count int)
}

// Uniforms sets shader uniforms by name.
type Uniforms interface {
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetVec3(name string, v math.Vec3)
	SetMat4(name string, m math.Mat4)
}

// Shader is a linked shader program.
type Shader interface {
	Uniforms
	Bind()
	Unbind()
	Valid() bool
}

// Texture can be bound to a texture unit.
type Texture interface {
	Activate(unit int)
}

// ShaderBinder uploads per-frame data (camera, lights) to a bound shader.
type ShaderBinder interface {
	BindShaderData(s Shader)
}

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGBA returns the components as an array.
func (c Color) RGBA() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// ColorFrom builds a Color from an RGBA array.
func ColorFrom(v [4]float32) Color {
	return Color{R: v[0], G: v[1], B: v[2], A: v[3]}
}

// Float32Bytes reinterprets a float32 slice as raw vertex bytes without copying.
func Float32Bytes(v []float32) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*4)
}
