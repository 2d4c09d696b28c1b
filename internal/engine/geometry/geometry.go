// Package geometry generates procedural meshes in gfx.StandardLayout.
//
// All faces wind counter-clockwise seen from the side their normal points to.
package geometry

import (
	"fmt"

	"github.com/Faultbox/lumen/internal/engine/material"
	"github.com/Faultbox/lumen/internal/engine/model"
	"github.com/Faultbox/lumen/pkg/math"
)

// Primitive names accepted by Import.
const (
	PrimitiveCube  = "cube"
	PrimitivePlane = "plane"
	PrimitiveQuad  = "quad"
)

type face struct {
	normal, u, v math.Vec3
}

var cubeFaces = [6]face{
	{normal: math.Vec3{X: 1}, u: math.Vec3{Z: -1}, v: math.Vec3{Y: 1}},
	{normal: math.Vec3{X: -1}, u: math.Vec3{Z: 1}, v: math.Vec3{Y: 1}},
	{normal: math.Vec3{Y: 1}, u: math.Vec3{X: 1}, v: math.Vec3{Z: -1}},
	{normal: math.Vec3{Y: -1}, u: math.Vec3{X: 1}, v: math.Vec3{Z: 1}},
	{normal: math.Vec3{Z: 1}, u: math.Vec3{X: 1}, v: math.Vec3{Y: 1}},
	{normal: math.Vec3{Z: -1}, u: math.Vec3{X: -1}, v: math.Vec3{Y: 1}},
}

// appendFace appends a quad of half-size extent centered at center.
func appendFace(d *model.MeshData, f face, center math.Vec3, extent, uvRepeat float32) {
	base := uint32(len(d.Vertices))
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for _, c := range corners {
		p := center.Add(f.u.Scale(c[0] * extent)).Add(f.v.Scale(c[1] * extent))
		d.Vertices = append(d.Vertices, model.Vertex{
			Position: p,
			Normal:   f.normal,
			TexCoord: [2]float32{(c[0] + 1) / 2 * uvRepeat, (c[1] + 1) / 2 * uvRepeat},
		})
	}
	d.Indices = append(d.Indices, base, base+1, base+2, base+2, base+3, base)
}

// Cube returns a unit cube centered at the origin.
func Cube(mat *material.Material) model.MeshData {
	d := model.MeshData{Material: mat}
	for _, f := range cubeFaces {
		appendFace(&d, f, f.normal.Scale(0.5), 0.5, 1)
	}
	return d
}

// Plane returns a size×size floor in the XZ plane facing +Y. The texture
// repeats uvRepeat times across it.
func Plane(size, uvRepeat float32, mat *material.Material) model.MeshData {
	d := model.MeshData{Material: mat}
	appendFace(&d, cubeFaces[2], math.Vec3{}, size/2, uvRepeat)
	return d
}

// Quad returns a unit quad in the XY plane facing +Z.
func Quad(mat *material.Material) model.MeshData {
	d := model.MeshData{Material: mat}
	appendFace(&d, cubeFaces[4], math.Vec3{}, 0.5, 1)
	return d
}

// Import returns an importer for the named primitive.
func Import(primitive string, mat *material.Material) (model.Importer, error) {
	var d model.MeshData
	switch primitive {
	case PrimitiveCube:
		d = Cube(mat)
	case PrimitivePlane:
		d = Plane(10, 5, mat)
	case PrimitiveQuad:
		d = Quad(mat)
	default:
		return nil, fmt.Errorf("unknown primitive %q", primitive)
	}
	return model.ImporterFunc(func() ([]model.MeshData, error) {
		return []model.MeshData{d}, nil
	}), nil
}
