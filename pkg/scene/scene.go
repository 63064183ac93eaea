package scene

import (
	"errors"
	"fmt"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/integrator"
	"github.com/df07/weekend-raytracer/pkg/material"
	"github.com/df07/weekend-raytracer/pkg/renderer"
)

var (
	// ErrUnknownScene is returned when no built-in scene has the requested name
	ErrUnknownScene = errors.New("unknown scene")

	// ErrUnknownMaterial is returned when a sphere references an undeclared material
	ErrUnknownMaterial = errors.New("unknown material")

	// ErrInvalidMaterial is returned for a material declaration that cannot be built
	ErrInvalidMaterial = errors.New("invalid material")

	// ErrInvalidSphere is returned for a sphere declaration that cannot be intersected
	ErrInvalidSphere = errors.New("invalid sphere")

	// ErrUnknownIntegrator is returned when no integrator has the requested name
	ErrUnknownIntegrator = errors.New("unknown integrator")
)

// DefaultSeed is the generator seed used when none is given
const DefaultSeed uint32 = 42

// Scene contains all the elements needed for rendering
type Scene struct {
	Name        string
	Description string
	Camera      renderer.CameraConfig
	Sampling    renderer.SamplingConfig
	World       *geometry.HittableList
	Background  integrator.Gradient
	Seed        uint32
}

// IntegratorNames lists the integrators accepted by NewIntegrator
var IntegratorNames = []string{"path", "normals"}

// NewIntegrator returns the named integrator using the scene's sky.
// An empty name selects path tracing.
func (s *Scene) NewIntegrator(name string) (integrator.Integrator, error) {
	switch name {
	case "", "path":
		return &integrator.PathTracingIntegrator{Background: s.Background}, nil
	case "normals":
		return &integrator.NormalIntegrator{Background: s.Background}, nil
	}
	return nil, fmt.Errorf("%w: %q (expected one of %v)", ErrUnknownIntegrator, name, IntegratorNames)
}

// NewRaytracer builds the camera for the scene and pairs it with integ.
// A nil integ selects path tracing.
func (s *Scene) NewRaytracer(integ integrator.Integrator, logger core.Logger) (*renderer.Raytracer, error) {
	camera, err := renderer.NewCamera(s.Camera)
	if err != nil {
		return nil, err
	}
	if integ == nil {
		integ = &integrator.PathTracingIntegrator{Background: s.Background}
	}
	return renderer.NewRaytracer(camera, s.World, integ, s.Sampling, logger)
}

// GetPrimitiveCount returns the number of spheres in the scene
func (s *Scene) GetPrimitiveCount() int {
	if s.World == nil {
		return 0
	}
	return s.World.Len()
}

// MaterialSummary counts spheres by material kind
func (s *Scene) MaterialSummary() map[string]int {
	counts := make(map[string]int)
	if s.World == nil {
		return counts
	}
	for _, object := range s.World.Objects {
		sphere, ok := object.(*geometry.Sphere)
		if !ok {
			counts["other"]++
			continue
		}
		switch sphere.Material.(type) {
		case *material.Lambertian:
			counts["lambertian"]++
		case *material.Metal:
			counts["metal"]++
		case *material.Dielectric:
			counts["dielectric"]++
		default:
			counts["other"]++
		}
	}
	return counts
}
