package geometry

import (
	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/material"
)

// Hittable is anything a ray can intersect. Implemented by *Sphere and *HittableList.
type Hittable interface {
	// Hit returns the nearest intersection with t strictly inside rayT
	Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool)
}
