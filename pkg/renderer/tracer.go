package renderer

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"

	"github.com/adrianap0607/Diorama/pkg/core"
	"github.com/adrianap0607/Diorama/pkg/geometry"
	"github.com/adrianap0607/Diorama/pkg/lights"
	"github.com/adrianap0607/Diorama/pkg/material"
)

const (
	// DefaultMaxDepth is the recursion budget for primary rays
	DefaultMaxDepth = 4

	shadowBias    = 1e-4 // Shadow ray origin offset along the normal
	secondaryBias = 1e-3 // Reflection and transmission origin offset along the new direction

	ambientStrength  = 0.3
	translucentAlpha = 0.85 // Occluders below this alpha cast a light shadow
	lightShadow      = 0.4
	fullShadow       = 1.0
)

// ShadowMode selects how occluders darken a point
type ShadowMode int

const (
	// ShadowTwoLevel casts a lighter shadow behind translucent occluders
	ShadowTwoLevel ShadowMode = iota
	// ShadowBinary treats every occluder as fully opaque
	ShadowBinary
)

func (m ShadowMode) String() string {
	switch m {
	case ShadowBinary:
		return "binary"
	default:
		return "two-level"
	}
}

// ParseShadowMode parses a shadow mode name as accepted on the command line
func ParseShadowMode(name string) (ShadowMode, error) {
	switch strings.ToLower(name) {
	case "", "two-level", "twolevel", "soft":
		return ShadowTwoLevel, nil
	case "binary", "hard":
		return ShadowBinary, nil
	default:
		return ShadowTwoLevel, fmt.Errorf("unknown shadow mode %q", name)
	}
}

// TransmissionMode selects how light passes through translucent surfaces
type TransmissionMode int

const (
	// TransmissionAlpha continues the ray straight through and blends by alpha
	TransmissionAlpha TransmissionMode = iota
	// TransmissionRefract bends the ray by the refractive index and mixes in a Fresnel reflection
	TransmissionRefract
)

func (m TransmissionMode) String() string {
	switch m {
	case TransmissionRefract:
		return "refract"
	default:
		return "alpha"
	}
}

// ShadingConfig selects the shading variants used by the tracer
type ShadingConfig struct {
	Shadow       ShadowMode
	Transmission TransmissionMode
}

// Tracer evaluates the recursive Whitted shading model.
// It holds no per-frame state and is safe for concurrent use.
type Tracer struct {
	config ShadingConfig
	sky    Sky
}

// NewTracer creates a tracer with the given shading options and sky
func NewTracer(config ShadingConfig, sky Sky) *Tracer {
	return &Tracer{config: config, sky: sky}
}

// CastRay returns the color seen along a ray.
// Each reflection or transmission bounce spends one unit of depth; at zero depth
// the sky is returned. The result is not clamped.
func (t *Tracer) CastRay(origin, direction core.Vec3, objects []geometry.Object, light lights.PointLight, depth int) core.Vec3 {
	if depth <= 0 {
		return t.sky.Color(direction)
	}

	hit, index := geometry.NearestHit(objects, origin, direction)
	if index < 0 {
		return t.sky.Color(direction)
	}

	mat := hit.Material
	lightDir, lightDistance := light.DirectionFrom(hit.Point)
	shadow := t.shadowIntensity(hit, lightDir, lightDistance, objects)

	color := t.localColor(hit, direction, lightDir, light.Intensity, shadow)

	if reflectivity := mat.Albedo[material.AlbedoReflective]; reflectivity > 0 {
		reflected := t.reflect(hit, direction, objects, light, depth)
		color = color.Mul(1 - reflectivity).Add(reflected.Mul(reflectivity))
	}

	if mat.Alpha < 1 {
		behind := t.transmit(hit, direction, objects, light, depth)
		color = color.Mul(mat.Alpha).Add(behind.Mul(1 - mat.Alpha))
	}

	return color
}

// localColor sums the diffuse, ambient and specular terms at a hit
func (t *Tracer) localColor(hit geometry.Intersect, direction, lightDir core.Vec3, intensity, shadow float32) core.Vec3 {
	mat := hit.Material
	diffuseWeight := mat.Albedo[material.AlbedoDiffuse]

	nDotL := math32.Max(0, hit.Normal.Dot(lightDir))
	diffuse := mat.Diffuse.Mul(nDotL * intensity * (1 - shadow) * diffuseWeight)

	ambient := core.MulVec(mat.Diffuse, t.sky.Ambient(hit.Normal)).Mul(ambientStrength * diffuseWeight)

	halfVector := core.Normalize(lightDir.Sub(direction))
	nDotH := math32.Max(0, hit.Normal.Dot(halfVector))
	specular := mat.Albedo[material.AlbedoSpecular] * intensity * math32.Pow(nDotH, mat.SpecularExponent)

	return diffuse.Add(ambient).Add(core.Splat(specular))
}

// shadowIntensity returns how strongly the point is shadowed, 0 meaning fully lit.
// The first occluder in scan order that lies before the light decides.
func (t *Tracer) shadowIntensity(hit geometry.Intersect, lightDir core.Vec3, lightDistance float32, objects []geometry.Object) float32 {
	origin := hit.Point.Add(hit.Normal.Mul(shadowBias))

	for i := range objects {
		occluder := objects[i].RayIntersect(origin, lightDir)
		if !occluder.Hit || occluder.Distance >= lightDistance {
			continue
		}
		if t.config.Shadow == ShadowTwoLevel && occluder.Material.Alpha < translucentAlpha {
			return lightShadow
		}
		return fullShadow
	}

	return 0
}

func (t *Tracer) reflect(hit geometry.Intersect, direction core.Vec3, objects []geometry.Object, light lights.PointLight, depth int) core.Vec3 {
	reflectDir := core.Normalize(core.Reflect(direction, hit.Normal))
	origin := hit.Point.Add(reflectDir.Mul(secondaryBias))
	return t.CastRay(origin, reflectDir, objects, light, depth-1)
}

// transmit returns the color seen through a translucent surface
func (t *Tracer) transmit(hit geometry.Intersect, direction core.Vec3, objects []geometry.Object, light lights.PointLight, depth int) core.Vec3 {
	if t.config.Transmission != TransmissionRefract {
		origin := hit.Point.Add(direction.Mul(secondaryBias))
		return t.CastRay(origin, direction, objects, light, depth-1)
	}
	return t.refract(hit, direction, objects, light, depth)
}

// refract traces the Snell-bent ray and mixes in the Fresnel reflection
func (t *Tracer) refract(hit geometry.Intersect, direction core.Vec3, objects []geometry.Object, light lights.PointLight, depth int) core.Vec3 {
	ior := hit.Material.RefractiveIndex
	if ior <= 0 {
		ior = 1
	}

	// Box normals point outward, so a ray leaving a volume sees the normal on its side
	normal := hit.Normal
	eta := 1 / ior
	if direction.Dot(normal) > 0 {
		normal = core.Negate(normal)
		eta = ior
	}

	reflectDir := core.Normalize(core.Reflect(direction, normal))
	reflected := t.CastRay(hit.Point.Add(reflectDir.Mul(secondaryBias)), reflectDir, objects, light, depth-1)

	refractDir, ok := material.Refract(direction, normal, eta)
	if !ok {
		return reflected
	}
	refractDir = core.Normalize(refractDir)
	refracted := t.CastRay(hit.Point.Add(refractDir.Mul(secondaryBias)), refractDir, objects, light, depth-1)

	cosine := math32.Min(-direction.Dot(normal), 1)
	kr := material.FresnelSchlick(cosine, eta)
	return refracted.Mul(1 - kr).Add(reflected.Mul(kr))
}
