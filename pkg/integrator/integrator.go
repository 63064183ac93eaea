package integrator

import (
	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
)

// ShadowAcneEpsilon is the minimum hit distance accepted for a ray. It keeps a
// scattered ray from re-hitting the surface it just left due to rounding.
const ShadowAcneEpsilon = 0.001

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance carried back along ray.
	// ray.Direction must be unit length; depth is the remaining bounce budget.
	RayColor(ray core.Ray, depth int, world geometry.Hittable, sampler core.Sampler) core.Vec3
}

// Gradient is a vertical sky gradient used for rays that escape the scene
type Gradient struct {
	Top    core.Vec3 // color looking straight up
	Bottom core.Vec3 // color looking straight down
}

// DefaultSky returns the white-to-light-blue sky
func DefaultSky() Gradient {
	return Gradient{
		Top:    core.NewVec3(0.5, 0.7, 1.0),
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Color returns the gradient color for a unit direction
func (g Gradient) Color(direction core.Vec3) core.Vec3 {
	// Map y from [-1,1] to [0,1]
	t := 0.5 * (direction.Y + 1.0)
	return core.Lerp(g.Bottom, g.Top, t)
}
