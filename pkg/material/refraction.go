package material

import (
	"github.com/chewxy/math32"

	"github.com/adrianap0607/Diorama/pkg/core"
)

// Refract bends the unit incident direction through a surface with unit normal n
// facing the incident side, using Snell's law with eta = n1/n2.
// It returns false on total internal reflection.
func Refract(incident, n core.Vec3, eta float32) (core.Vec3, bool) {
	cosTheta := math32.Min(-incident.Dot(n), 1)
	sinTheta2 := 1 - cosTheta*cosTheta
	if eta*eta*sinTheta2 > 1 {
		return core.Vec3{}, false
	}

	outPerp := incident.Add(n.Mul(cosTheta)).Mul(eta)
	outParallel := n.Mul(-math32.Sqrt(math32.Abs(1 - outPerp.LenSqr())))
	return outPerp.Add(outParallel), true
}

// FresnelSchlick calculates the Fresnel reflectance using Schlick's approximation
func FresnelSchlick(cosine, refractionRatio float32) float32 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math32.Pow(1-cosine, 5)
}
