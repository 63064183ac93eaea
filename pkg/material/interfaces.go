package material

import (
	"github.com/df07/weekend-raytracer/pkg/core"
)

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter returns the outgoing ray and its attenuation, or false if the ray is absorbed
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray, unit-length direction
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, always facing against the incoming ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether the ray hit the outside of the surface
	Material  Material  // Material of the hit object, shared with the primitive
}

// NewHitRecord builds a hit record, orienting outwardNormal against the ray
func NewHitRecord(ray core.Ray, point, outwardNormal core.Vec3, t float64, material Material) *HitRecord {
	hit := &HitRecord{
		Point:    point,
		T:        t,
		Material: material,
	}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Mul(-1)
	}
}
