// Package picking provides ray casting and object picking utilities.
package picking

import (
	gomath "math"

	"github.com/Faultbox/lumen/internal/engine/model"
	"github.com/Faultbox/lumen/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// At returns the point t units along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// View is the perspective camera a ray is cast from.
type View struct {
	Eye     math.Vec3
	Forward math.Vec3
	FOV     float32 // Vertical, degrees
	Aspect  float32
}

// ScreenToRay converts pixel coordinates in a width×height viewport to a
// world-space ray leaving the eye.
func ScreenToRay(screenX, screenY, width, height float32, v View) Ray {
	// Normalized device coords (-1 to 1), Y flipped
	ndcX := 2*screenX/width - 1
	ndcY := 1 - 2*screenY/height

	forward := v.Forward.Normalize()
	right := forward.Cross(math.Vec3{Y: 1}).Normalize()
	up := right.Cross(forward).Normalize()

	tanHalf := float32(gomath.Tan(float64(math.Radians(v.FOV) / 2)))
	dir := forward.
		Add(right.Scale(ndcX * tanHalf * v.Aspect)).
		Add(up.Scale(ndcY * tanHalf))

	return Ray{Origin: v.Eye, Direction: dir.Normalize()}
}

// IntersectPlaneY intersects a ray with a horizontal plane at the given Y level.
// Returns the intersection point (X, Z) and whether the intersection is valid.
func (r Ray) IntersectPlaneY(planeY float32) (x, z float32, ok bool) {
	if gomath.Abs(float64(r.Direction.Y)) < 0.001 {
		return 0, 0, false // Parallel
	}

	t := (planeY - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return 0, 0, false // Behind the origin
	}

	p := r.At(t)
	return p.X, p.Z, true
}

// IntersectBounds tests ray intersection with an axis-aligned box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectBounds(box model.Bounds) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	origin := [3]float32{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float32{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	for axis := range 3 {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// Pick returns the model whose world bounds the ray hits first, or nil.
func Pick(r Ray, models []*model.Model) (*model.Model, float32) {
	var (
		best  *model.Model
		bestT float32
	)
	for _, m := range models {
		if len(m.Meshes()) == 0 {
			continue
		}
		t, ok := r.IntersectBounds(m.WorldBounds())
		if ok && (best == nil || t < bestT) {
			best, bestT = m, t
		}
	}
	return best, bestT
}
