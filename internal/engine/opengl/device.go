// Package opengl implements gfx.Device on OpenGL 4.1 core.
package opengl

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/lumen/internal/engine/gfx"
	"github.com/Faultbox/lumen/internal/logger"
)

// maxErrorsPerCheck bounds the glGetError drain loop; a lost context may report
// errors forever.
const maxErrorsPerCheck = 8

type buffers struct {
	vbo uint32
	ebo uint32
}

// Device issues gfx calls to the current OpenGL context.
type Device struct {
	debug   bool
	log     *zap.Logger
	buffers map[gfx.VertexArray]buffers
}

// New initializes OpenGL function pointers and returns a device.
// IMPORTANT: Must be called AFTER the OpenGL context is created and current!
// With debug set, glGetError is checked after every call and failures are logged.
func New(debug bool) (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	d := &Device{
		debug:   debug,
		log:     logger.Named("gl"),
		buffers: make(map[gfx.VertexArray]buffers),
	}

	d.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.Bool("debug", debug),
	)
	return d, nil
}

// Viewport sets the viewport to the given framebuffer size.
func (d *Device) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	d.check("Viewport")
}

// ReadPixels returns the RGBA contents of the back buffer, bottom row first.
func (d *Device) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	d.check("ReadPixels")
	return pixels
}

func (d *Device) Enable(c gfx.Capability) {
	gl.Enable(capability(c))
	d.check("Enable")
}

func (d *Device) Disable(c gfx.Capability) {
	gl.Disable(capability(c))
	d.check("Disable")
}

func (d *Device) DepthFunc(fn gfx.CompareFunc) {
	gl.DepthFunc(compareFunc(fn))
	d.check("DepthFunc")
}

func (d *Device) DepthMask(write bool) {
	gl.DepthMask(write)
	d.check("DepthMask")
}

func (d *Device) CullFace(mode gfx.CullMode) {
	switch mode {
	case gfx.CullFront:
		gl.CullFace(gl.FRONT)
	case gfx.CullFrontAndBack:
		gl.CullFace(gl.FRONT_AND_BACK)
	default:
		gl.CullFace(gl.BACK)
	}
	d.check("CullFace")
}

func (d *Device) FrontFace(clockwise bool) {
	if clockwise {
		gl.FrontFace(gl.CW)
	} else {
		gl.FrontFace(gl.CCW)
	}
	d.check("FrontFace")
}

func (d *Device) BlendFunc(src, dst gfx.BlendFactor) {
	gl.BlendFunc(blendFactor(src), blendFactor(dst))
	d.check("BlendFunc")
}

func (d *Device) StencilFunc(fn gfx.CompareFunc, ref int32, mask uint32) {
	gl.StencilFunc(compareFunc(fn), ref, mask)
	d.check("StencilFunc")
}

func (d *Device) StencilOp(stencilFail, depthFail, pass gfx.StencilOp) {
	gl.StencilOp(stencilOp(stencilFail), stencilOp(depthFail), stencilOp(pass))
	d.check("StencilOp")
}

func (d *Device) StencilMask(mask uint32) {
	gl.StencilMask(mask)
	d.check("StencilMask")
}

func (d *Device) ClearColor(c gfx.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	d.check("ClearColor")
}

func (d *Device) Clear(mask gfx.ClearMask) {
	var bits uint32
	if mask&gfx.ClearColorBuffer != 0 {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if mask&gfx.ClearDepthBuffer != 0 {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	if mask&gfx.ClearStencilBuffer != 0 {
		bits |= gl.STENCIL_BUFFER_BIT
	}
	gl.Clear(bits)
	d.check("Clear")
}

// CreateVertexArray creates a VAO with an interleaved VBO and an optional EBO.
func (d *Device) CreateVertexArray(layout gfx.VertexLayout, vertices []byte, indices []uint32) gfx.VertexArray {
	var vao uint32
	var b buffers

	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices), unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	if len(indices) > 0 {
		gl.GenBuffers(1, &b.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)
	}

	stride := int32(layout.Stride())
	for i, off := range layout.Offsets() {
		attr := layout[i]
		xtype := uint32(gl.FLOAT)
		if attr.Type == gfx.AttribInt {
			xtype = gl.INT
		}
		gl.VertexAttribPointerWithOffset(uint32(i), int32(attr.Count), xtype, attr.Normalized, stride, uintptr(off))
		gl.EnableVertexAttribArray(uint32(i))
	}

	// The EBO binding is VAO state; only the array buffer is unbound.
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	d.check("CreateVertexArray")

	va := gfx.VertexArray(vao)
	d.buffers[va] = b
	d.log.Debug("vertex array created",
		zap.Uint32("vao", vao),
		zap.Int("bytes", len(vertices)),
		zap.Int("indices", len(indices)),
	)
	return va
}

func (d *Device) DeleteVertexArray(va gfx.VertexArray) {
	b, ok := d.buffers[va]
	if !ok {
		return
	}
	vao := uint32(va)
	gl.DeleteVertexArrays(1, &vao)
	gl.DeleteBuffers(1, &b.vbo)
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
	}
	delete(d.buffers, va)
	d.check("DeleteVertexArray")
}

func (d *Device) DrawElements(va gfx.VertexArray, count int) {
	gl.BindVertexArray(uint32(va))
	gl.DrawElements(gl.TRIANGLES, int32(count), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	d.check("DrawElements")
}

func (d *Device) DrawArrays(va gfx.VertexArray, count int) {
	gl.BindVertexArray(uint32(va))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))
	gl.BindVertexArray(0)
	d.check("DrawArrays")
}

// check drains glGetError in debug mode. Errors degrade output but never abort.
func (d *Device) check(op string) {
	if !d.debug {
		return
	}
	for i := 0; i < maxErrorsPerCheck; i++ {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			return
		}
		d.log.Warn("GL error", zap.String("op", op), zap.String("error", errorName(code)))
	}
}
