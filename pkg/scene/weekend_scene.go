package scene

import (
	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/integrator"
	"github.com/df07/weekend-raytracer/pkg/material"
	"github.com/df07/weekend-raytracer/pkg/noise"
	"github.com/df07/weekend-raytracer/pkg/renderer"
)

const (
	weekendGridHalf    = 11   // small spheres on a (2*half)x(2*half) grid
	weekendSmallRadius = 0.2  // radius of every grid sphere
	weekendClearance   = 0.9  // keep grid spheres this far from the metal sphere
	weekendJitter      = 0.9  // max offset of a grid sphere within its cell
	diffuseProbability = 0.8  // chance a grid sphere is diffuse
	metalProbability   = 0.15 // chance a grid sphere is metal; the rest are glass
)

// NewWeekendScene creates the random sphere field: three large spheres surrounded by a grid of
// small diffuse, metal and glass spheres. The layout is fully determined by seed.
func NewWeekendScene(seed uint32) *Scene {
	rng := noise.NewGenerator(seed)

	materialGround := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	glass := material.NewDielectric(1.5)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, materialGround),
	)

	avoid := core.NewVec3(4, weekendSmallRadius, 0)
	for a := -weekendGridHalf; a < weekendGridHalf; a++ {
		for b := -weekendGridHalf; b < weekendGridHalf; b++ {
			chooseMat := rng.Get1D()
			center := core.NewVec3(
				float64(a)+weekendJitter*rng.Get1D(),
				weekendSmallRadius,
				float64(b)+weekendJitter*rng.Get1D(),
			)

			if center.Sub(avoid).Norm() <= weekendClearance {
				continue
			}

			var sphereMaterial material.Material
			switch {
			case chooseMat < diffuseProbability:
				albedo := core.MultiplyVec(core.RandomVec3(rng), core.RandomVec3(rng))
				sphereMaterial = material.NewLambertian(albedo)
			case chooseMat < diffuseProbability+metalProbability:
				albedo := core.RandomVec3Range(rng, 0.5, 1)
				fuzz := rng.GetRange(0, 0.5)
				sphereMaterial = material.NewMetal(albedo, fuzz)
			default:
				sphereMaterial = glass
			}
			world.Add(geometry.NewSphere(center, weekendSmallRadius, sphereMaterial))
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	return &Scene{
		Name:        "weekend",
		Description: "Random field of small spheres around three large ones",
		Camera: renderer.CameraConfig{
			Center:        core.NewVec3(13, 2, 3),
			LookAt:        core.NewVec3(0, 0, 0),
			Up:            core.NewVec3(0, 1, 0),
			Width:         1200,
			AspectRatio:   16.0 / 9.0,
			VFov:          20,
			DefocusAngle:  0.6,
			FocusDistance: 10.0,
		},
		Sampling: renderer.SamplingConfig{
			SamplesPerPixel: 500,
			MaxDepth:        50,
		},
		World:      world,
		Background: integrator.DefaultSky(),
		Seed:       seed,
	}
}
