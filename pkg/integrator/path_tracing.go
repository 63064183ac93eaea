package integrator

import (
	"math"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
)

// PathTracingIntegrator implements recursive stochastic path tracing
type PathTracingIntegrator struct {
	Background Gradient
}

// NewPathTracingIntegrator creates a path tracer with the default sky
func NewPathTracingIntegrator() *PathTracingIntegrator {
	return &PathTracingIntegrator{Background: DefaultSky()}
}

// RayColor computes the color for a single ray. Every bounce consumes one unit of depth,
// so the recursion always terminates.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, depth int, world geometry.Hittable, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, core.NewInterval(ShadowAcneEpsilon, math.Inf(1)))
	if !isHit {
		return pt.Background.Color(ray.Direction)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Material absorbed the ray
		return core.Vec3{}
	}

	incoming := pt.RayColor(scatter.Scattered, depth-1, world, sampler)
	return core.MultiplyVec(scatter.Attenuation, incoming)
}
