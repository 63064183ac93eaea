package material

import (
	"fmt"
	"math"

	"github.com/df07/weekend-raytracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Clear glass never absorbs
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	refractionRatio := d.RefractionRatio(hit.FrontFace)

	unitDirection := rayIn.Direction
	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	// Total internal reflection: Snell's law has no solution
	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || sampler.GetBool(Reflectance(cosTheta, refractionRatio)) {
		direction = core.Reflect(unitDirection, hit.Normal)
	} else {
		direction = core.Refract(unitDirection, hit.Normal, refractionRatio)
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction.Normalize()),
		Attenuation: attenuation,
	}, true
}

// RefractionRatio returns eta_incident / eta_transmitted for a ray entering (frontFace) or leaving the material
func (d *Dielectric) RefractionRatio(frontFace bool) float64 {
	if frontFace {
		return 1.0 / d.RefractiveIndex
	}
	return d.RefractiveIndex
}

func (d *Dielectric) String() string {
	return fmt.Sprintf("dielectric(index=%.2f)", d.RefractiveIndex)
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
