// Package gfxtest provides recording fakes of the gfx capabilities.
package gfxtest

import (
	"fmt"
	"strings"

	"github.com/Faultbox/lumen/internal/engine/gfx"
	"github.com/Faultbox/lumen/pkg/math"
)

// Draw is one recorded draw call.
type Draw struct {
	VA      gfx.VertexArray
	Count   int
	Indexed bool
}

// VertexArray is a recorded vertex array upload.
type VertexArray struct {
	Layout   gfx.VertexLayout
	Vertices int // Byte length
	Indices  int
}

// Device records every call as a readable string and tracks the toggled state.
type Device struct {
	Calls   []string
	Enabled map[gfx.Capability]bool
	Arrays  map[gfx.VertexArray]VertexArray
	Deleted []gfx.VertexArray
	Draws   []Draw

	next gfx.VertexArray
}

// NewDevice returns an empty recording device.
func NewDevice() *Device {
	return &Device{
		Enabled: make(map[gfx.Capability]bool),
		Arrays:  make(map[gfx.VertexArray]VertexArray),
	}
}

func (d *Device) record(format string, args ...any) {
	d.Calls = append(d.Calls, fmt.Sprintf(format, args...))
}

// Reset forgets recorded calls and draws, keeping state and arrays.
func (d *Device) Reset() {
	d.Calls = nil
	d.Draws = nil
}

// Has reports whether call was recorded.
func (d *Device) Has(call string) bool {
	return d.Index(call) >= 0
}

// Index returns the position of the first recorded call equal to call, or -1.
func (d *Device) Index(call string) int {
	for i, c := range d.Calls {
		if c == call {
			return i
		}
	}
	return -1
}

// Matching returns recorded calls with the given prefix.
func (d *Device) Matching(prefix string) []string {
	var out []string
	for _, c := range d.Calls {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

func (d *Device) Enable(c gfx.Capability) {
	d.Enabled[c] = true
	d.record("Enable(%s)", c)
}

func (d *Device) Disable(c gfx.Capability) {
	d.Enabled[c] = false
	d.record("Disable(%s)", c)
}

func (d *Device) DepthFunc(fn gfx.CompareFunc) { d.record("DepthFunc(%s)", fn) }
func (d *Device) DepthMask(write bool)         { d.record("DepthMask(%t)", write) }
func (d *Device) CullFace(mode gfx.CullMode)   { d.record("CullFace(%s)", mode) }
func (d *Device) FrontFace(clockwise bool)     { d.record("FrontFace(cw=%t)", clockwise) }

func (d *Device) BlendFunc(src, dst gfx.BlendFactor) {
	d.record("BlendFunc(%s,%s)", src, dst)
}

func (d *Device) StencilFunc(fn gfx.CompareFunc, ref int32, mask uint32) {
	d.record("StencilFunc(%s,%d,%#x)", fn, ref, mask)
}

func (d *Device) StencilOp(sfail, dpfail, pass gfx.StencilOp) {
	d.record("StencilOp(%s,%s,%s)", sfail, dpfail, pass)
}

func (d *Device) StencilMask(mask uint32) { d.record("StencilMask(%#x)", mask) }

func (d *Device) ClearColor(c gfx.Color) { d.record("ClearColor(%v,%v,%v,%v)", c.R, c.G, c.B, c.A) }
func (d *Device) Clear(mask gfx.ClearMask) {
	d.record("Clear(%s)", mask)
}

func (d *Device) CreateVertexArray(layout gfx.VertexLayout, vertices []byte, indices []uint32) gfx.VertexArray {
	d.next++
	d.Arrays[d.next] = VertexArray{Layout: layout, Vertices: len(vertices), Indices: len(indices)}
	d.record("CreateVertexArray(%d)", d.next)
	return d.next
}

func (d *Device) DeleteVertexArray(va gfx.VertexArray) {
	d.Deleted = append(d.Deleted, va)
	delete(d.Arrays, va)
	d.record("DeleteVertexArray(%d)", va)
}

func (d *Device) DrawElements(va gfx.VertexArray, count int) {
	d.Draws = append(d.Draws, Draw{VA: va, Count: count, Indexed: true})
	d.record("DrawElements(%d,%d)", va, count)
}

func (d *Device) DrawArrays(va gfx.VertexArray, count int) {
	d.Draws = append(d.Draws, Draw{VA: va, Count: count})
	d.record("DrawArrays(%d,%d)", va, count)
}

// Shader records uniform uploads and bind state.
type Shader struct {
	Name    string
	Invalid bool

	Bound  bool
	Binds  int
	Ints   map[string]int32
	Floats map[string]float32
	Vec3s  map[string]math.Vec3
	Mat4s  map[string]math.Mat4
	// Log holds "bind", "unbind" and uniform names in call order.
	Log []string
}

// NewShader returns an empty recording shader.
func NewShader(name string) *Shader {
	s := &Shader{Name: name}
	s.Clear()
	return s
}

// Clear forgets recorded uniforms.
func (s *Shader) Clear() {
	s.Ints = make(map[string]int32)
	s.Floats = make(map[string]float32)
	s.Vec3s = make(map[string]math.Vec3)
	s.Mat4s = make(map[string]math.Mat4)
	s.Log = nil
}

func (s *Shader) Bind() {
	s.Bound = true
	s.Binds++
	s.Log = append(s.Log, "bind")
}

func (s *Shader) Unbind() {
	s.Bound = false
	s.Log = append(s.Log, "unbind")
}

func (s *Shader) Valid() bool { return !s.Invalid }

func (s *Shader) SetInt(name string, v int32) {
	s.Ints[name] = v
	s.Log = append(s.Log, name)
}

func (s *Shader) SetFloat(name string, v float32) {
	s.Floats[name] = v
	s.Log = append(s.Log, name)
}

func (s *Shader) SetVec3(name string, v math.Vec3) {
	s.Vec3s[name] = v
	s.Log = append(s.Log, name)
}

func (s *Shader) SetMat4(name string, m math.Mat4) {
	s.Mat4s[name] = m
	s.Log = append(s.Log, name)
}

// Texture records the units it was activated on.
type Texture struct {
	Name  string
	Units []int
}

func (t *Texture) Activate(unit int) { t.Units = append(t.Units, unit) }

// Binder counts BindShaderData calls.
type Binder struct {
	Shaders []gfx.Shader
}

func (b *Binder) BindShaderData(s gfx.Shader) { b.Shaders = append(b.Shaders, s) }
