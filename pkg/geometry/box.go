package geometry

import (
	"github.com/chewxy/math32"

	"github.com/adrianap0607/Diorama/pkg/core"
	"github.com/adrianap0607/Diorama/pkg/material"
)

const (
	parallelEpsilon = 1e-8 // Direction components below this are parallel to a slab
	faceEpsilon     = 1e-4 // Tolerance for deciding which face a hit point lies on
)

// Face identifies one of the six faces of an axis-aligned box
type Face int

const (
	FaceNegX Face = iota
	FacePosX
	FaceNegY
	FacePosY
	FaceNegZ
	FacePosZ
)

// Normal returns the outward unit normal of the face
func (f Face) Normal() core.Vec3 {
	switch f {
	case FaceNegX:
		return core.NewVec3(-1, 0, 0)
	case FacePosX:
		return core.NewVec3(1, 0, 0)
	case FaceNegY:
		return core.NewVec3(0, -1, 0)
	case FacePosY:
		return core.NewVec3(0, 1, 0)
	case FaceNegZ:
		return core.NewVec3(0, 0, -1)
	default:
		return core.NewVec3(0, 0, 1)
	}
}

// Box represents an axis-aligned box given by its min and max corners
type Box struct {
	Min      core.Vec3         // Minimum corner
	Max      core.Vec3         // Maximum corner
	Material material.Material // Material for all faces
}

// NewBox creates a new axis-aligned box
func NewBox(min, max core.Vec3, mat material.Material) Box {
	return Box{Min: min, Max: max, Material: mat}
}

// RayIntersect tests the ray against the box using the slab method
func (b Box) RayIntersect(origin, direction core.Vec3) Intersect {
	t, ok := b.hitDistance(origin, direction)
	if !ok {
		return EmptyIntersect()
	}

	point := origin.Add(direction.Mul(t))
	return NewIntersect(point, b.faceAt(point).Normal(), t, b.Material)
}

// hitDistance returns the distance to the first forward boundary crossing.
// When the origin is inside the box that is the exit distance.
func (b Box) hitDistance(origin, direction core.Vec3) (float32, bool) {
	tEnter := math32.Inf(-1)
	tExit := math32.Inf(1)

	for axis := 0; axis < 3; axis++ {
		t1, t2 := slab(origin[axis], direction[axis], b.Min[axis], b.Max[axis])
		tEnter = math32.Max(tEnter, t1)
		tExit = math32.Min(tExit, t2)
	}

	if tEnter > tExit || tExit < 0 {
		return 0, false
	}
	if tEnter >= 0 {
		return tEnter, true
	}
	return tExit, true
}

// slab returns the ordered entry and exit distances against the planes lo and hi on one axis
func slab(o, d, lo, hi float32) (float32, float32) {
	if math32.Abs(d) < parallelEpsilon {
		if o < lo || o > hi {
			// Parallel and outside: no overlap on this axis
			return math32.Inf(1), math32.Inf(-1)
		}
		return math32.Inf(-1), math32.Inf(1)
	}

	t1 := (lo - o) / d
	t2 := (hi - o) / d
	if t1 <= t2 {
		return t1, t2
	}
	return t2, t1
}

// faceAt picks the face the point lies on, testing x, then y, then z.
// Points on edges and corners resolve to the first match.
func (b Box) faceAt(p core.Vec3) Face {
	switch {
	case math32.Abs(p[0]-b.Min[0]) < faceEpsilon:
		return FaceNegX
	case math32.Abs(p[0]-b.Max[0]) < faceEpsilon:
		return FacePosX
	case math32.Abs(p[1]-b.Min[1]) < faceEpsilon:
		return FaceNegY
	case math32.Abs(p[1]-b.Max[1]) < faceEpsilon:
		return FacePosY
	case math32.Abs(p[2]-b.Min[2]) < faceEpsilon:
		return FaceNegZ
	default:
		return FacePosZ
	}
}

// Center returns the center point of the box
func (b Box) Center() core.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}
