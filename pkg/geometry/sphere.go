package geometry

import (
	"math"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/material"
)

// Sphere represents a sphere shape. A negative radius keeps the geometry but flips
// the outward normal inward, which is how hollow glass shells are modelled.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere.
// The ray direction must be non-zero.
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Sub(s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.Norm2()
	halfB := oc.Dot(ray.Direction)
	c := oc.Norm2() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (-halfB + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	point := ray.At(root)
	// Dividing by the signed radius flips the normal for negative-radius spheres
	outwardNormal := point.Sub(s.Center).Mul(1.0 / s.Radius)

	return material.NewHitRecord(ray, point, outwardNormal, root, s.Material), true
}
