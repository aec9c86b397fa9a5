package geometry

import (
	"github.com/chewxy/math32"

	"github.com/adrianap0607/Diorama/pkg/core"
	"github.com/adrianap0607/Diorama/pkg/material"
)

const planeParallelEpsilon = 1e-6

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3         // A point on the plane
	Normal   core.Vec3         // Unit normal
	Material material.Material // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, mat material.Material) Plane {
	return Plane{
		Point:    point,
		Normal:   core.Normalize(normal),
		Material: mat,
	}
}

// RayIntersect tests if a ray intersects with the plane in front of its origin
func (p Plane) RayIntersect(origin, direction core.Vec3) Intersect {
	denominator := p.Normal.Dot(direction)

	// Parallel rays never meet the plane
	if math32.Abs(denominator) < planeParallelEpsilon {
		return EmptyIntersect()
	}

	t := p.Point.Sub(origin).Dot(p.Normal) / denominator
	if t <= 0 {
		return EmptyIntersect()
	}

	// Report the side facing the incoming ray
	normal := p.Normal
	if denominator > 0 {
		normal = core.Negate(normal)
	}

	return NewIntersect(origin.Add(direction.Mul(t)), normal, t, p.Material)
}
