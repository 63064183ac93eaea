package integrator

import (
	"math"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
)

// NormalIntegrator shades the first hit by its surface normal mapped into [0,1].
// It ignores materials and is meant for checking geometry and camera setup.
type NormalIntegrator struct {
	Background Gradient
}

// NewNormalIntegrator creates a normal-visualising integrator with the default sky
func NewNormalIntegrator() *NormalIntegrator {
	return &NormalIntegrator{Background: DefaultSky()}
}

// RayColor implements Integrator
func (ni *NormalIntegrator) RayColor(ray core.Ray, depth int, world geometry.Hittable, sampler core.Sampler) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, core.NewInterval(ShadowAcneEpsilon, math.Inf(1)))
	if !isHit {
		return ni.Background.Color(ray.Direction)
	}

	return hit.Normal.Add(core.NewVec3(1, 1, 1)).Mul(0.5)
}
