// Package lighting defines the light variants and how they bind to shader uniforms.
//
// Light is a closed sum: Directional, Omni and Spot are its only implementations,
// and Bind switches over them exhaustively.
package lighting

import (
	stdmath "math"

	"github.com/Faultbox/lumen/pkg/math"
)

// Color holds the Phong ambient, diffuse and specular RGB terms of a light.
type Color struct {
	Ambient  math.Vec3
	Diffuse  math.Vec3
	Specular math.Vec3
}

// Attenuation is the constant, linear and quadratic distance falloff.
type Attenuation struct {
	Constant  float32
	Linear    float32
	Quadratic float32
}

// DefaultAttenuation covers roughly 50 units.
var DefaultAttenuation = Attenuation{Constant: 1, Linear: 0.09, Quadratic: 0.032}

// Light is a Directional, Omni or Spot light.
type Light interface {
	light()
}

// Directional is a light at infinity shining along Direction.
type Directional struct {
	Color
	Direction math.Vec3
}

// Omni is a point light radiating in all directions.
type Omni struct {
	Color
	Position math.Vec3
	Attenuation
}

// Spot is a cone light. InnerCutoff and OuterCutoff are cosines of the cone
// half-angles, so InnerCutoff >= OuterCutoff.
type Spot struct {
	Color
	Position  math.Vec3
	Direction math.Vec3
	Attenuation
	InnerCutoff float32
	OuterCutoff float32

	// FollowCamera refreshes Position and Direction from the camera every frame.
	FollowCamera bool
}

func (Directional) light() {}
func (Omni) light()        {}
func (Spot) light()        {}

// SpotFromAngles returns the cutoff cosines for inner and outer half-angles in degrees.
func SpotFromAngles(innerDeg, outerDeg float32) (inner, outer float32) {
	return float32(stdmath.Cos(float64(math.Radians(innerDeg)))),
		float32(stdmath.Cos(float64(math.Radians(outerDeg))))
}

// SunDirection returns the direction sunlight travels for a sun at azimuth
// degrees around +Y (0 is +Z) and elevation degrees above the horizon.
func SunDirection(azimuth, elevation float32) math.Vec3 {
	az := float64(math.Radians(azimuth))
	el := float64(math.Radians(elevation))
	toSun := math.Vec3{
		X: float32(stdmath.Cos(el) * stdmath.Sin(az)),
		Y: float32(stdmath.Sin(el)),
		Z: float32(stdmath.Cos(el) * stdmath.Cos(az)),
	}
	return toSun.Scale(-1)
}
