package geometry

import (
	"github.com/adrianap0607/Diorama/pkg/core"
)

// Kind tags which primitive an Object holds
type Kind int

const (
	KindBox Kind = iota
	KindTexturedBox
	KindPlane
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindTexturedBox:
		return "textured_box"
	case KindPlane:
		return "plane"
	default:
		return "unknown"
	}
}

// Object is a closed variant over the supported primitives.
// Only the field selected by Kind is meaningful.
type Object struct {
	Kind     Kind
	Box      Box
	Textured TexturedBox
	Plane    Plane
}

// BoxObject wraps a plain box
func BoxObject(b Box) Object {
	return Object{Kind: KindBox, Box: b}
}

// TexturedBoxObject wraps a textured box
func TexturedBoxObject(b TexturedBox) Object {
	return Object{Kind: KindTexturedBox, Textured: b}
}

// PlaneObject wraps a plane
func PlaneObject(p Plane) Object {
	return Object{Kind: KindPlane, Plane: p}
}

// RayIntersect dispatches to the held primitive
func (o Object) RayIntersect(origin, direction core.Vec3) Intersect {
	switch o.Kind {
	case KindBox:
		return o.Box.RayIntersect(origin, direction)
	case KindTexturedBox:
		return o.Textured.RayIntersect(origin, direction)
	case KindPlane:
		return o.Plane.RayIntersect(origin, direction)
	default:
		return EmptyIntersect()
	}
}

// NearestHit scans objects in order and returns the closest hit with its index.
// Ties keep the earlier object. The index is -1 when nothing is hit.
func NearestHit(objects []Object, origin, direction core.Vec3) (Intersect, int) {
	nearest := EmptyIntersect()
	index := -1

	for i := range objects {
		hit := objects[i].RayIntersect(origin, direction)
		if hit.Hit && hit.Distance < nearest.Distance {
			nearest = hit
			index = i
		}
	}

	return nearest, index
}
