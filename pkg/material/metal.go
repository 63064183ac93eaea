package material

import (
	"fmt"

	"github.com/df07/weekend-raytracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo   core.Vec3 // Metal color
	Fuzzness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	// Clamp fuzzness to valid range
	if fuzzness > 1.0 {
		fuzzness = 1.0
	}
	if fuzzness < 0.0 {
		fuzzness = 0.0
	}
	return &Metal{Albedo: albedo, Fuzzness: fuzzness}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := core.Reflect(rayIn.Direction, hit.Normal)

	if m.Fuzzness > 0 {
		reflected = reflected.Add(core.RandomUnitVector(sampler).Mul(m.Fuzzness))
	}
	reflected = reflected.Normalize()

	// Fuzz can push the ray below the surface, in which case it is absorbed
	scatters := reflected.Dot(hit.Normal) > 0

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, reflected),
		Attenuation: m.Albedo,
	}, scatters
}

func (m *Metal) String() string {
	return fmt.Sprintf("metal(albedo=%.2f,%.2f,%.2f fuzz=%.2f)", m.Albedo.X, m.Albedo.Y, m.Albedo.Z, m.Fuzzness)
}
