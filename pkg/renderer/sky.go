package renderer

import "github.com/adrianap0607/Diorama/pkg/core"

// Sky is a vertical gradient returned for rays that escape the scene.
// It also tints the ambient term.
type Sky struct {
	Ground core.Vec3 // Color looking straight down
	Top    core.Vec3 // Color looking straight up
}

// DefaultSky returns the pale green-to-blue daylight gradient
func DefaultSky() Sky {
	return Sky{
		Ground: core.NewVec3(0.85, 0.90, 0.75),
		Top:    core.NewVec3(0.60, 0.80, 1.00),
	}
}

// Color returns the sky color seen along direction
func (s Sky) Color(direction core.Vec3) core.Vec3 {
	t := 0.5 * (direction[1] + 1)
	return core.Lerp(s.Ground, s.Top, t)
}

// Ambient returns the ambient tint for a surface normal
func (s Sky) Ambient(normal core.Vec3) core.Vec3 {
	return core.Lerp(s.Ground, s.Top, clampRange(normal[1], 0, 1))
}
