package geometry

import (
	"github.com/chewxy/math32"

	"github.com/adrianap0607/Diorama/pkg/core"
	"github.com/adrianap0607/Diorama/pkg/material"
)

// Intersect contains information about a ray-object intersection.
// A miss carries Distance=+Inf and the black material so that nearest-hit
// reduction can compare distances without checking Hit first.
type Intersect struct {
	Point    core.Vec3         // Point of intersection
	Normal   core.Vec3         // Unit surface normal, or zero
	Distance float32           // Multiplier along the ray direction
	Hit      bool              // Whether the ray hit anything
	Material material.Material // Material at the hit point
}

// NewIntersect creates a hit record, normalizing the normal when it has length
func NewIntersect(point, normal core.Vec3, distance float32, mat material.Material) Intersect {
	return Intersect{
		Point:    point,
		Normal:   core.Normalize(normal),
		Distance: distance,
		Hit:      true,
		Material: mat,
	}
}

// EmptyIntersect returns the miss sentinel
func EmptyIntersect() Intersect {
	return Intersect{
		Distance: math32.Inf(1),
		Material: material.Black(),
	}
}

// Shape interface for objects that can be hit by rays.
// Distance in the result is measured in units of the given direction, so callers
// pass unit directions to compare hits across shapes.
type Shape interface {
	RayIntersect(origin, direction core.Vec3) Intersect
}
