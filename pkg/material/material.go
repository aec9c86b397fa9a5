package material

import (
	"github.com/adrianap0607/Diorama/pkg/core"
)

// Indices into Material.Albedo
const (
	AlbedoDiffuse      = iota // weight of the Lambert and ambient terms
	AlbedoSpecular            // weight of the Blinn-Phong highlight
	AlbedoReflective          // mirror reflection blend factor
	AlbedoTransmissive        // reserved for transmission weighting
)

// Material holds the per-surface shading parameters used by the Whitted kernel.
// Albedo weights are independent and need not sum to 1.
type Material struct {
	Diffuse          core.Vec3  // Surface color
	Albedo           [4]float32 // Diffuse, specular, reflective, transmissive weights
	SpecularExponent float32    // Blinn-Phong exponent
	RefractiveIndex  float32    // Used only by the refracting transmission mode
	Alpha            float32    // Opacity, 1 = opaque
}

// New creates a material with all shading parameters
func New(diffuse core.Vec3, specularExponent float32, albedo [4]float32, refractiveIndex, alpha float32) Material {
	return Material{
		Diffuse:          diffuse,
		Albedo:           albedo,
		SpecularExponent: specularExponent,
		RefractiveIndex:  refractiveIndex,
		Alpha:            clampUnit(alpha),
	}
}

// NewLambertian creates an opaque, purely diffuse material
func NewLambertian(diffuse core.Vec3) Material {
	return New(diffuse, 0, [4]float32{1, 0, 0, 0}, 0, 1)
}

// NewMirror creates an opaque material that reflects the given fraction of incoming light
func NewMirror(diffuse core.Vec3, reflectivity, specularExponent float32) Material {
	return New(diffuse, specularExponent, [4]float32{1 - reflectivity, 0.5, reflectivity, 0}, 0, 1)
}

// NewGlass creates a partially transparent material.
// With the default transmission mode only alpha matters; the refractive index is used
// when refraction is enabled.
func NewGlass(diffuse core.Vec3, alpha, refractiveIndex float32) Material {
	return New(diffuse, 125, [4]float32{0.6, 0.3, 0.1, 1 - alpha}, refractiveIndex, alpha)
}

// Black returns the neutral material carried by misses
func Black() Material {
	return Material{Alpha: 1}
}

// IsOpaque reports whether the surface hides everything behind it
func (m Material) IsOpaque() bool {
	return m.Alpha >= 1
}

// WithDiffuse returns a copy with the diffuse color replaced
func (m Material) WithDiffuse(diffuse core.Vec3) Material {
	m.Diffuse = diffuse
	return m
}

// clampUnit clamps x to [0, 1]; NaN maps to 0
func clampUnit(x float32) float32 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
