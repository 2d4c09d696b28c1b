// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// PhongVertexShader transforms standard-layout vertices to clip space.
//
//go:embed phong.vert
var PhongVertexShader string

// PhongFragmentShader shades with the directional, omni and spot light arrays.
//
//go:embed phong.frag
var PhongFragmentShader string

// BorderFragmentShader fills with a flat outline color.
//
//go:embed border.frag
var BorderFragmentShader string
