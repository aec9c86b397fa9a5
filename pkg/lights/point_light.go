package lights

import (
	"github.com/adrianap0607/Diorama/pkg/core"
)

// PointLight is a single omnidirectional light source.
// It is read-only while a frame renders.
type PointLight struct {
	Position  core.Vec3 // World-space position
	Color     core.Vec3 // RGB color in [0,1]
	Intensity float32   // Scalar brightness
}

// NewPointLight creates a new point light
func NewPointLight(position, color core.Vec3, intensity float32) PointLight {
	return PointLight{
		Position:  position,
		Color:     color,
		Intensity: intensity,
	}
}

// NewWhiteLight creates a white point light
func NewWhiteLight(position core.Vec3, intensity float32) PointLight {
	return NewPointLight(position, core.NewVec3(1, 1, 1), intensity)
}

// DirectionFrom returns the unit direction and distance from point to the light
func (l PointLight) DirectionFrom(point core.Vec3) (core.Vec3, float32) {
	toLight := l.Position.Sub(point)
	return core.Normalize(toLight), toLight.Len()
}
