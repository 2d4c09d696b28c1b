package gfx

import (
	"fmt"
	"strings"
)

// Capability is a toggleable pipeline feature.
type Capability int

const (
	DepthTest Capability = iota
	FaceCulling
	Blending
	StencilTest
)

var capabilityNames = [...]string{"DepthTest", "FaceCulling", "Blending", "StencilTest"}

func (c Capability) String() string {
	if c >= 0 && int(c) < len(capabilityNames) {
		return capabilityNames[c]
	}
	return fmt.Sprintf("Capability(%d)", int(c))
}

// CompareFunc is a depth or stencil comparison.
type CompareFunc int

const (
	Always CompareFunc = iota
	Never
	Less
	Equal
	LessEqual
	Greater
	NotEqual
	GreaterEqual
)

var compareNames = [...]string{"ALWAYS", "NEVER", "LESS", "EQUAL", "LEQUAL", "GREATER", "NOTEQUAL", "GEQUAL"}

func (f CompareFunc) String() string {
	if f >= 0 && int(f) < len(compareNames) {
		return compareNames[f]
	}
	return fmt.Sprintf("CompareFunc(%d)", int(f))
}

// ParseCompareFunc parses a name such as "LESS" or "lequal".
func ParseCompareFunc(s string) (CompareFunc, error) {
	i, err := parseName(s, compareNames[:], "compare func")
	return CompareFunc(i), err
}

// BlendFactor is one of the standard source/destination blend factors.
type BlendFactor int

const (
	Zero BlendFactor = iota
	One
	SrcColor
	OneMinusSrcColor
	DstColor
	OneMinusDstColor
	SrcAlpha
	OneMinusSrcAlpha
	DstAlpha
	OneMinusDstAlpha
	ConstantColor
	OneMinusConstantColor
	ConstantAlpha
	OneMinusConstantAlpha
)

var blendNames = [...]string{
	"ZERO", "ONE",
	"SRC_COLOR", "ONE_MINUS_SRC_COLOR",
	"DST_COLOR", "ONE_MINUS_DST_COLOR",
	"SRC_ALPHA", "ONE_MINUS_SRC_ALPHA",
	"DST_ALPHA", "ONE_MINUS_DST_ALPHA",
	"CONSTANT_COLOR", "ONE_MINUS_CONSTANT_COLOR",
	"CONSTANT_ALPHA", "ONE_MINUS_CONSTANT_ALPHA",
}

func (f BlendFactor) String() string {
	if f >= 0 && int(f) < len(blendNames) {
		return blendNames[f]
	}
	return fmt.Sprintf("BlendFactor(%d)", int(f))
}

// ParseBlendFactor parses a name such as "SRC_ALPHA".
func ParseBlendFactor(s string) (BlendFactor, error) {
	i, err := parseName(s, blendNames[:], "blend factor")
	return BlendFactor(i), err
}

// CullMode selects which faces are discarded.
type CullMode int

const (
	CullNone CullMode = iota
	CullFront
	CullBack
	CullFrontAndBack
)

var cullNames = [...]string{"NONE", "FRONT", "BACK", "ALL"}

func (m CullMode) String() string {
	if m >= 0 && int(m) < len(cullNames) {
		return cullNames[m]
	}
	return fmt.Sprintf("CullMode(%d)", int(m))
}

// ParseCullMode parses "NONE", "FRONT", "BACK" or "ALL".
func ParseCullMode(s string) (CullMode, error) {
	i, err := parseName(s, cullNames[:], "cull mode")
	return CullMode(i), err
}

// StencilOp is the action taken on the stencil buffer.
type StencilOp int

const (
	StencilKeep StencilOp = iota
	StencilZero
	StencilReplace
)

func (o StencilOp) String() string {
	switch o {
	case StencilKeep:
		return "KEEP"
	case StencilZero:
		return "ZERO"
	case StencilReplace:
		return "REPLACE"
	default:
		return fmt.Sprintf("StencilOp(%d)", int(o))
	}
}

// ClearMask selects the buffers cleared by Device.Clear.
type ClearMask uint8

const (
	ClearColorBuffer ClearMask = 1 << iota
	ClearDepthBuffer
	ClearStencilBuffer

	ClearAll = ClearColorBuffer | ClearDepthBuffer | ClearStencilBuffer
)

func (m ClearMask) String() string {
	var parts []string
	if m&ClearColorBuffer != 0 {
		parts = append(parts, "color")
	}
	if m&ClearDepthBuffer != 0 {
		parts = append(parts, "depth")
	}
	if m&ClearStencilBuffer != 0 {
		parts = append(parts, "stencil")
	}
	return strings.Join(parts, "|")
}

func parseName(s string, names []string, kind string) (int, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range names {
		if n == upper {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", kind, s)
}
