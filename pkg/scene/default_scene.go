package scene

import (
	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/integrator"
	"github.com/df07/weekend-raytracer/pkg/material"
	"github.com/df07/weekend-raytracer/pkg/renderer"
)

// NewDefaultScene creates a diffuse sphere resting on a huge ground sphere, seen from the origin
func NewDefaultScene() *Scene {
	materialGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	materialCenter := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, materialGround),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, materialCenter),
	)

	return &Scene{
		Name:        "default",
		Description: "Diffuse sphere on a ground sphere",
		Camera:      renderer.DefaultCameraConfig(),
		Sampling:    renderer.DefaultSamplingConfig(),
		World:       world,
		Background:  integrator.DefaultSky(),
		Seed:        DefaultSeed,
	}
}

// NewMaterialsScene shows each material side by side: a hollow glass sphere, a diffuse
// sphere and a fuzzy metal sphere, with a shallow depth of field
func NewMaterialsScene() *Scene {
	materialGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	materialCenter := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	materialLeft := material.NewDielectric(1.5)
	materialRight := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, materialGround),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, materialCenter),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, materialLeft),
		// Negative radius flips the normals inwards, making the left sphere a bubble
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.4, materialLeft),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, materialRight),
	)

	cameraConfig := renderer.DefaultCameraConfig()
	cameraConfig.Center = core.NewVec3(-2, 2, 1)
	cameraConfig.LookAt = core.NewVec3(0, 0, -1)
	cameraConfig.VFov = 20
	cameraConfig.DefocusAngle = 10
	cameraConfig.FocusDistance = 3.4

	return &Scene{
		Name:        "materials",
		Description: "Hollow glass, diffuse and fuzzy metal spheres with depth of field",
		Camera:      cameraConfig,
		Sampling:    renderer.DefaultSamplingConfig(),
		World:       world,
		Background:  integrator.DefaultSky(),
		Seed:        DefaultSeed,
	}
}
