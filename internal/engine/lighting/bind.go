package lighting

import (
	"fmt"

	"github.com/Faultbox/lumen/internal/engine/gfx"
	"github.com/Faultbox/lumen/pkg/math"
)

// Uniform names of the light arrays and their counts.
const (
	DirectionalUniform = "directional_light"
	DirectionalCount   = "directional_light_count"
	OmniUniform        = "omni_lights"
	OmniCount          = "omni_light_count"
	SpotUniform        = "spot_lights"
	SpotCount          = "spot_light_count"
)

// Bind uploads l to the uniform struct called name, e.g. "omni_lights[2]".
func Bind(u gfx.Uniforms, name string, l Light) {
	switch l := l.(type) {
	case Directional:
		bindColor(u, name, l.Color)
		u.SetVec3(name+".direction", l.Direction)
	case Omni:
		bindColor(u, name, l.Color)
		u.SetVec3(name+".position", l.Position)
		bindAttenuation(u, name, l.Attenuation)
	case Spot:
		bindColor(u, name, l.Color)
		u.SetVec3(name+".position", l.Position)
		u.SetVec3(name+".direction", l.Direction)
		bindAttenuation(u, name, l.Attenuation)
		u.SetFloat(name+".innerCutOff", l.InnerCutoff)
		u.SetFloat(name+".outerCutOff", l.OuterCutoff)
	case *Directional:
		Bind(u, name, *l)
	case *Omni:
		Bind(u, name, *l)
	case *Spot:
		Bind(u, name, *l)
	default:
		panic(fmt.Sprintf("lighting: unknown light type %T", l))
	}
}

func bindColor(u gfx.Uniforms, name string, c Color) {
	u.SetVec3(name+".ambient", c.Ambient)
	u.SetVec3(name+".diffuse", c.Diffuse)
	u.SetVec3(name+".specular", c.Specular)
}

func bindAttenuation(u gfx.Uniforms, name string, a Attenuation) {
	u.SetFloat(name+".constant", a.Constant)
	u.SetFloat(name+".linear", a.Linear)
	u.SetFloat(name+".quadratic", a.Quadratic)
}

// Set is the scene's lights: at most one directional plus any number of omni
// and spot lights.
type Set struct {
	directional *Directional
	omni        []Omni
	spot        []Spot
}

// SetDirectional replaces the directional light.
func (s *Set) SetDirectional(l Directional) { s.directional = &l }

// ClearDirectional removes the directional light.
func (s *Set) ClearDirectional() { s.directional = nil }

// Directional returns the directional light, or nil.
func (s *Set) Directional() *Directional { return s.directional }

// AddOmni appends an omni light and returns its index.
func (s *Set) AddOmni(l Omni) int {
	s.omni = append(s.omni, l)
	return len(s.omni) - 1
}

// AddSpot appends a spot light and returns its index.
func (s *Set) AddSpot(l Spot) int {
	s.spot = append(s.spot, l)
	return len(s.spot) - 1
}

// Omni returns omni light i for mutation.
func (s *Set) Omni(i int) *Omni { return &s.omni[i] }

// Spot returns spot light i for mutation.
func (s *Set) Spot(i int) *Spot { return &s.spot[i] }

// OmniLen returns the number of omni lights.
func (s *Set) OmniLen() int { return len(s.omni) }

// SpotLen returns the number of spot lights.
func (s *Set) SpotLen() int { return len(s.spot) }

// Follow moves every camera-attached spot light to position, facing forward.
func (s *Set) Follow(position, forward math.Vec3) {
	for i := range s.spot {
		if s.spot[i].FollowCamera {
			s.spot[i].Position = position
			s.spot[i].Direction = forward
		}
	}
}

// Bind uploads every light and the three counts. Counts are always written,
// so a scene without lights binds zeros.
func (s *Set) Bind(u gfx.Uniforms) {
	if s.directional != nil {
		Bind(u, DirectionalUniform, *s.directional)
		u.SetInt(DirectionalCount, 1)
	} else {
		u.SetInt(DirectionalCount, 0)
	}

	for i, l := range s.omni {
		Bind(u, fmt.Sprintf("%s[%d]", OmniUniform, i), l)
	}
	u.SetInt(OmniCount, int32(len(s.omni)))

	for i, l := range s.spot {
		Bind(u, fmt.Sprintf("%s[%d]", SpotUniform, i), l)
	}
	u.SetInt(SpotCount, int32(len(s.spot)))
}
