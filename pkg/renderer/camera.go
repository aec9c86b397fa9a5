package renderer

import (
	"github.com/chewxy/math32"

	"github.com/adrianap0607/Diorama/pkg/core"
)

const (
	// DefaultFOV is the vertical field of view in radians
	DefaultFOV = math32.Pi / 3
	maxPitch   = 1.5
)

// Camera is an orbiting look-at camera.
// Forward, Right and Up form an orthonormal right-handed basis that is
// recomputed whenever Eye, Center or Up change through the methods below.
type Camera struct {
	Eye     core.Vec3 // Camera position
	Center  core.Vec3 // Look-at target and orbit pivot
	Up      core.Vec3 // Up vector, re-orthogonalized with the basis
	Forward core.Vec3 // Unit view direction
	Right   core.Vec3 // Unit right direction
}

// NewCamera creates a camera looking from eye to center
func NewCamera(eye, center, up core.Vec3) *Camera {
	c := &Camera{
		Eye:    eye,
		Center: center,
		Up:     up,
	}
	c.UpdateBasisVectors()
	return c
}

// UpdateBasisVectors recomputes Forward, Right and Up from Eye, Center and Up
func (c *Camera) UpdateBasisVectors() {
	c.Forward = core.Normalize(c.Center.Sub(c.Eye))
	c.Right = core.Normalize(c.Forward.Cross(c.Up))
	c.Up = c.Right.Cross(c.Forward)
}

// Orbit rotates the eye around the center on a sphere of fixed radius.
// Pitch is clamped to [-1.5, 1.5] radians to stay clear of the poles.
func (c *Camera) Orbit(yawDelta, pitchDelta float32) {
	offset := c.Eye.Sub(c.Center)
	radius := offset.Len()
	if radius == 0 {
		return
	}

	yaw := math32.Atan2(offset[2], offset[0]) + yawDelta
	pitch := math32.Asin(clampRange(offset[1]/radius, -1, 1)) + pitchDelta
	pitch = clampRange(pitch, -maxPitch, maxPitch)

	cosPitch := math32.Cos(pitch)
	c.Eye = c.Center.Add(core.NewVec3(
		radius*cosPitch*math32.Cos(yaw),
		radius*math32.Sin(pitch),
		radius*cosPitch*math32.Sin(yaw),
	))
	c.UpdateBasisVectors()
}

// Pan translates eye and center together in the view plane
func (c *Camera) Pan(dx, dy float32) {
	offset := c.Right.Mul(dx).Add(c.Up.Mul(dy))
	c.Eye = c.Eye.Add(offset)
	c.Center = c.Center.Add(offset)
	c.UpdateBasisVectors()
}

// Zoom moves the eye toward the center by amount, keeping the
// eye-center distance within [minDist, maxDist]. Negative amounts move away.
func (c *Camera) Zoom(amount, minDist, maxDist float32) {
	offset := c.Eye.Sub(c.Center)
	distance := offset.Len()
	if distance == 0 {
		return
	}

	target := clampRange(distance-amount, minDist, maxDist)
	c.Eye = c.Center.Add(offset.Mul(target / distance))
	c.UpdateBasisVectors()
}

// Distance returns the eye-center distance
func (c *Camera) Distance() float32 {
	return c.Eye.Sub(c.Center).Len()
}

// BasisChange maps a camera-space vector into world space.
// Camera space looks down -z, so (0,0,-1) maps to Forward.
func (c *Camera) BasisChange(v core.Vec3) core.Vec3 {
	return c.Right.Mul(v[0]).Add(c.Up.Mul(v[1])).Sub(c.Forward.Mul(v[2]))
}

// RayDirection returns the unit world-space direction through pixel (x, y)
// of a width x height image. Rays start at Eye.
func (c *Camera) RayDirection(x, y, width, height int, fov float32) core.Vec3 {
	w := float32(width)
	h := float32(height)

	sx := 2*float32(x)/w - 1
	sy := -2*float32(y)/h + 1
	aspect := w / h
	scale := math32.Tan(fov * 0.5)

	dir := core.Normalize(core.NewVec3(sx*aspect*scale, sy*scale, -1))
	return c.BasisChange(dir)
}

// GetRay returns the primary ray through pixel (x, y)
func (c *Camera) GetRay(x, y, width, height int, fov float32) core.Ray {
	return core.NewRay(c.Eye, c.RayDirection(x, y, width, height, fov))
}

func clampRange(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
