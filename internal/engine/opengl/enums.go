package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/lumen/internal/engine/gfx"
)

func capability(c gfx.Capability) uint32 {
	switch c {
	case gfx.DepthTest:
		return gl.DEPTH_TEST
	case gfx.FaceCulling:
		return gl.CULL_FACE
	case gfx.Blending:
		return gl.BLEND
	case gfx.StencilTest:
		return gl.STENCIL_TEST
	default:
		// Rejected by the driver and reported by check in debug mode.
		return 0
	}
}

func compareFunc(fn gfx.CompareFunc) uint32 {
	switch fn {
	case gfx.Always:
		return gl.ALWAYS
	case gfx.Never:
		return gl.NEVER
	case gfx.Less:
		return gl.LESS
	case gfx.Equal:
		return gl.EQUAL
	case gfx.LessEqual:
		return gl.LEQUAL
	case gfx.Greater:
		return gl.GREATER
	case gfx.NotEqual:
		return gl.NOTEQUAL
	case gfx.GreaterEqual:
		return gl.GEQUAL
	default:
		return gl.LESS
	}
}

var blendFactors = [...]uint32{
	gfx.Zero:                  gl.ZERO,
	gfx.One:                   gl.ONE,
	gfx.SrcColor:              gl.SRC_COLOR,
	gfx.OneMinusSrcColor:      gl.ONE_MINUS_SRC_COLOR,
	gfx.DstColor:              gl.DST_COLOR,
	gfx.OneMinusDstColor:      gl.ONE_MINUS_DST_COLOR,
	gfx.SrcAlpha:              gl.SRC_ALPHA,
	gfx.OneMinusSrcAlpha:      gl.ONE_MINUS_SRC_ALPHA,
	gfx.DstAlpha:              gl.DST_ALPHA,
	gfx.OneMinusDstAlpha:      gl.ONE_MINUS_DST_ALPHA,
	gfx.ConstantColor:         gl.CONSTANT_COLOR,
	gfx.OneMinusConstantColor: gl.ONE_MINUS_CONSTANT_COLOR,
	gfx.ConstantAlpha:         gl.CONSTANT_ALPHA,
	gfx.OneMinusConstantAlpha: gl.ONE_MINUS_CONSTANT_ALPHA,
}

func blendFactor(f gfx.BlendFactor) uint32 {
	if f < 0 || int(f) >= len(blendFactors) {
		return gl.ZERO
	}
	return blendFactors[f]
}

func stencilOp(op gfx.StencilOp) uint32 {
	switch op {
	case gfx.StencilZero:
		return gl.ZERO
	case gfx.StencilReplace:
		return gl.REPLACE
	default:
		return gl.KEEP
	}
}

func errorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("0x%x", code)
	}
}
