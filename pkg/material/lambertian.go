package material

import (
	"fmt"

	"github.com/df07/weekend-raytracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering.
// Adding a uniform unit vector to the normal gives a cosine-weighted direction,
// so the attenuation is just the albedo.
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(sampler))

	// The random vector can cancel the normal exactly
	if core.NearZero(scatterDirection) {
		scatterDirection = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, scatterDirection.Normalize()),
		Attenuation: l.Albedo,
	}, true
}

func (l *Lambertian) String() string {
	return fmt.Sprintf("lambertian(albedo=%.2f,%.2f,%.2f)", l.Albedo.X, l.Albedo.Y, l.Albedo.Z)
}
