// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/Faultbox/lumen/pkg/math"
)

// Zoom limits in degrees of vertical field of view.
const (
	MinFOV = 10
	MaxFOV = 80
)

var worldUp = math.Vec3{Y: 1}

// Lens holds the perspective projection parameters shared by all cameras.
type Lens struct {
	FOV    float32 // Vertical, degrees
	Aspect float32 // Width / height
	ZNear  float32
	ZFar   float32
}

// Near returns the near clip distance.
func (l *Lens) Near() float32 { return l.ZNear }

// Far returns the far clip distance.
func (l *Lens) Far() float32 { return l.ZFar }

// ProjectionMatrix returns the perspective projection.
func (l *Lens) ProjectionMatrix() math.Mat4 {
	return math.Perspective(math.Radians(l.FOV), l.Aspect, l.ZNear, l.ZFar)
}

// SetViewport updates the aspect ratio for a width×height framebuffer.
func (l *Lens) SetViewport(width, height int) {
	if height > 0 {
		l.Aspect = float32(width) / float32(height)
	}
}

// Zoom narrows the field of view by delta degrees, clamped to [MinFOV, MaxFOV].
func (l *Lens) Zoom(delta float32) {
	l.FOV = clamp(l.FOV-delta, MinFOV, MaxFOV)
}

// FlyCamera is a free-flying camera steered by yaw and pitch.
type FlyCamera struct {
	Lens

	position math.Vec3
	forward  math.Vec3
	up       math.Vec3
	yaw      float32 // Degrees, -90 looks down -Z
	pitch    float32 // Degrees

	MoveSpeed   float32 // Units per second
	Sensitivity float32 // Degrees per input unit
}

// NewFlyCamera creates a camera at position looking down -Z.
func NewFlyCamera(position math.Vec3, lens Lens) *FlyCamera {
	c := &FlyCamera{
		Lens:        lens,
		position:    position,
		yaw:         -90,
		MoveSpeed:   2.5,
		Sensitivity: 0.1,
	}
	c.updateVectors()
	return c
}

// Position returns the camera position in world space.
func (c *FlyCamera) Position() math.Vec3 { return c.position }

// SetPosition moves the camera.
func (c *FlyCamera) SetPosition(p math.Vec3) { c.position = p }

// Forward returns the unit view direction.
func (c *FlyCamera) Forward() math.Vec3 { return c.forward }

// Up returns the unit camera up vector.
func (c *FlyCamera) Up() math.Vec3 { return c.up }

// Right returns the unit camera right vector.
func (c *FlyCamera) Right() math.Vec3 { return c.forward.Cross(worldUp).Normalize() }

// Yaw returns the yaw in degrees.
func (c *FlyCamera) Yaw() float32 { return c.yaw }

// Pitch returns the pitch in degrees.
func (c *FlyCamera) Pitch() float32 { return c.pitch }

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.position, c.position.Add(c.forward), c.up)
}

// Rotate adds yaw and pitch in degrees. With constrainPitch the pitch stays
// within ±89 so the view never flips.
func (c *FlyCamera) Rotate(yaw, pitch float32, constrainPitch bool) {
	c.yaw += yaw
	c.pitch += pitch
	if constrainPitch {
		c.pitch = clamp(c.pitch, -89, 89)
	}
	c.updateVectors()
}

// SetOrientation sets absolute yaw and pitch in degrees.
func (c *FlyCamera) SetOrientation(yaw, pitch float32) {
	c.yaw = yaw
	c.pitch = clamp(pitch, -89, 89)
	c.updateVectors()
}

// HandleMouse turns the camera by a mouse delta in pixels. Moving the mouse
// up looks up.
func (c *FlyCamera) HandleMouse(dx, dy float32) {
	c.Rotate(dx*c.Sensitivity, -dy*c.Sensitivity, true)
}

// HandleMovement moves along forward, right and world up, each in [-1, 1],
// for dt seconds.
func (c *FlyCamera) HandleMovement(forward, right, up, dt float32) {
	step := c.MoveSpeed * dt
	move := c.forward.Scale(forward).Add(c.Right().Scale(right)).Add(worldUp.Scale(up))
	c.position = c.position.Add(move.Scale(step))
}

func (c *FlyCamera) updateVectors() {
	yaw := float64(math.Radians(c.yaw))
	pitch := float64(math.Radians(c.pitch))
	c.forward = math.Vec3{
		X: float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		Y: float32(gomath.Sin(pitch)),
		Z: float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}.Normalize()
	right := c.forward.Cross(worldUp).Normalize()
	c.up = right.Cross(c.forward).Normalize()
}

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Lens

	Center math.Vec3

	// Spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates an orbit camera around center.
func NewOrbitCamera(center math.Vec3, lens Lens) *OrbitCamera {
	return &OrbitCamera{
		Lens:            lens,
		Center:          center,
		Distance:        6,
		RotationX:       0.4,
		MinDistance:     1,
		MaxDistance:     50,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Sin(float64(c.RotationY)))
	y := c.Distance * float32(gomath.Sin(float64(c.RotationX)))
	z := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Cos(float64(c.RotationY)))
	return c.Center.Add(math.Vec3{X: x, Y: y, Z: z})
}

// Forward returns the unit direction from the camera to the center.
func (c *OrbitCamera) Forward() math.Vec3 {
	return c.Center.Sub(c.Position()).Normalize()
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, worldUp)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX = clamp(c.RotationX+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance = clamp(c.Distance-delta*c.Distance*c.ZoomSensitivity, c.MinDistance, c.MaxDistance)
}

// HandleMovement pans the center on the XZ plane relative to the view.
func (c *OrbitCamera) HandleMovement(forward, right, up float32) {
	speed := c.Distance * 0.01

	dirX := float32(gomath.Sin(float64(c.RotationY)))
	dirZ := float32(gomath.Cos(float64(c.RotationY)))
	rightX := float32(gomath.Cos(float64(c.RotationY)))
	rightZ := float32(-gomath.Sin(float64(c.RotationY)))

	// Negated so forward moves into the scene
	c.Center.X += (-dirX*forward + rightX*right) * speed
	c.Center.Z += (-dirZ*forward + rightZ*right) * speed
	c.Center.Y += up * speed
}

// FitToBounds centers on the box and backs off far enough to see it.
func (c *OrbitCamera) FitToBounds(lo, hi math.Vec3) {
	c.Center = lo.Add(hi).Scale(0.5)
	c.Distance = clamp(hi.Sub(lo).Length()*1.5, c.MinDistance, c.MaxDistance)
	c.RotationX = 0.6
	c.RotationY = 0
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
