package geometry

import (
	"github.com/adrianap0607/Diorama/pkg/core"
	"github.com/adrianap0607/Diorama/pkg/material"
)

// TexturedBox is an axis-aligned box whose faces sample a shared texture.
// The sampled color replaces the material's diffuse color and the sampled
// alpha scales the material's alpha.
type TexturedBox struct {
	Box
	Texture *material.Texture // Shared, read-only
}

// NewTexturedBox creates a new textured axis-aligned box
func NewTexturedBox(min, max core.Vec3, mat material.Material, texture *material.Texture) TexturedBox {
	return TexturedBox{Box: NewBox(min, max, mat), Texture: texture}
}

// RayIntersect tests the ray against the box and samples the texture at the hit
func (b TexturedBox) RayIntersect(origin, direction core.Vec3) Intersect {
	t, ok := b.hitDistance(origin, direction)
	if !ok {
		return EmptyIntersect()
	}

	point := origin.Add(direction.Mul(t))
	face := b.faceAt(point)

	mat := b.Material
	if b.Texture != nil {
		u, v := b.faceUV(face, point)
		rgb, alpha := b.Texture.SampleRGBA(u, v)
		mat.Diffuse = rgb
		mat.Alpha = clampUnit(alpha * mat.Alpha)
	}

	return NewIntersect(point, face.Normal(), t, mat)
}

// faceUV maps a point on the given face to texture coordinates.
// Faces are flipped where needed so the texture reads upright from outside.
func (b TexturedBox) faceUV(face Face, p core.Vec3) (float32, float32) {
	x := ratio(p[0], b.Min[0], b.Max[0])
	y := ratio(p[1], b.Min[1], b.Max[1])
	z := ratio(p[2], b.Min[2], b.Max[2])

	switch face {
	case FaceNegX:
		return z, y
	case FacePosX:
		return 1 - z, y
	case FaceNegY:
		return x, 1 - z
	case FacePosY:
		return x, z
	case FaceNegZ:
		return x, y
	default:
		return 1 - x, y
	}
}

// ratio returns where v lies between lo and hi; a flat extent maps to 0
func ratio(v, lo, hi float32) float32 {
	extent := hi - lo
	if extent == 0 {
		return 0
	}
	return (v - lo) / extent
}

func clampUnit(x float32) float32 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
