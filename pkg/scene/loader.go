package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/integrator"
	"github.com/df07/weekend-raytracer/pkg/material"
	"github.com/df07/weekend-raytracer/pkg/renderer"
)

// vec3 is a JSON [x, y, z] triple
type vec3 [3]float64

func (v vec3) toVec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

func fromVec3(v core.Vec3) vec3 {
	return vec3{v.X, v.Y, v.Z}
}

type cameraFile struct {
	Center        vec3    `json:"center"`
	LookAt        vec3    `json:"lookAt"`
	Up            vec3    `json:"up"`
	Width         int     `json:"width"`
	AspectRatio   float64 `json:"aspectRatio"`
	VFov          float64 `json:"vfov"`
	DefocusAngle  float64 `json:"defocusAngle"`
	FocusDistance float64 `json:"focusDistance"`
}

type samplingFile struct {
	SamplesPerPixel int `json:"samplesPerPixel"`
	MaxDepth        int `json:"maxDepth"`
}

type backgroundFile struct {
	Top    vec3 `json:"top"`
	Bottom vec3 `json:"bottom"`
}

type materialFile struct {
	Type   string  `json:"type"`   // lambertian, metal or dielectric
	Albedo vec3    `json:"albedo"` // lambertian and metal
	Fuzz   float64 `json:"fuzz"`   // metal
	Index  float64 `json:"index"`  // dielectric refractive index
}

type sphereFile struct {
	Center   vec3    `json:"center"`
	Radius   float64 `json:"radius"`
	Material string  `json:"material"`
}

type sceneFile struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Seed        *uint32                 `json:"seed"`
	Camera      cameraFile              `json:"camera"`
	Sampling    samplingFile            `json:"sampling"`
	Background  backgroundFile          `json:"background"`
	Materials   map[string]materialFile `json:"materials"`
	Spheres     []sphereFile            `json:"spheres"`
}

// newSceneFile returns a file description holding the defaults that absent keys keep
func newSceneFile() sceneFile {
	camera := renderer.DefaultCameraConfig()
	sampling := renderer.DefaultSamplingConfig()
	sky := integrator.DefaultSky()
	return sceneFile{
		Camera: cameraFile{
			Center:        fromVec3(camera.Center),
			LookAt:        fromVec3(camera.LookAt),
			Up:            fromVec3(camera.Up),
			Width:         camera.Width,
			AspectRatio:   camera.AspectRatio,
			VFov:          camera.VFov,
			DefocusAngle:  camera.DefocusAngle,
			FocusDistance: camera.FocusDistance,
		},
		Sampling: samplingFile{
			SamplesPerPixel: sampling.SamplesPerPixel,
			MaxDepth:        sampling.MaxDepth,
		},
		Background: backgroundFile{
			Top:    fromVec3(sky.Top),
			Bottom: fromVec3(sky.Bottom),
		},
	}
}

// LoadFile reads a JSON scene description from path
func LoadFile(path string) (*Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scene %s: %w", path, err)
	}
	defer file.Close()

	s, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("loading scene %s: %w", path, err)
	}
	return s, nil
}

// Load parses a JSON scene description. Materials are declared once by name and shared
// by every sphere that references them.
func Load(r io.Reader) (*Scene, error) {
	desc := newSceneFile()
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&desc); err != nil {
		return nil, fmt.Errorf("decoding scene: %w", err)
	}

	cameraConfig := renderer.CameraConfig{
		Center:        desc.Camera.Center.toVec3(),
		LookAt:        desc.Camera.LookAt.toVec3(),
		Up:            desc.Camera.Up.toVec3(),
		Width:         desc.Camera.Width,
		AspectRatio:   desc.Camera.AspectRatio,
		VFov:          desc.Camera.VFov,
		DefocusAngle:  desc.Camera.DefocusAngle,
		FocusDistance: desc.Camera.FocusDistance,
	}
	if err := cameraConfig.Validate(); err != nil {
		return nil, err
	}

	sampling := renderer.SamplingConfig{
		SamplesPerPixel: desc.Sampling.SamplesPerPixel,
		MaxDepth:        desc.Sampling.MaxDepth,
	}
	if err := sampling.Validate(); err != nil {
		return nil, err
	}

	materials, err := buildMaterials(desc.Materials)
	if err != nil {
		return nil, err
	}

	world := geometry.NewHittableList()
	for k, sf := range desc.Spheres {
		m, ok := materials[sf.Material]
		if !ok {
			return nil, fmt.Errorf("%w: sphere %d references %q", ErrUnknownMaterial, k, sf.Material)
		}
		if sf.Radius == 0 {
			return nil, fmt.Errorf("%w: sphere %d has radius %g", ErrInvalidSphere, k, sf.Radius)
		}
		world.Add(geometry.NewSphere(sf.Center.toVec3(), sf.Radius, m))
	}

	seed := DefaultSeed
	if desc.Seed != nil {
		seed = *desc.Seed
	}

	return &Scene{
		Name:        desc.Name,
		Description: desc.Description,
		Camera:      cameraConfig,
		Sampling:    sampling,
		World:       world,
		Background: integrator.Gradient{
			Top:    desc.Background.Top.toVec3(),
			Bottom: desc.Background.Bottom.toVec3(),
		},
		Seed: seed,
	}, nil
}

// buildMaterials creates every declared material exactly once
func buildMaterials(decls map[string]materialFile) (map[string]material.Material, error) {
	// Build in name order so errors are reported deterministically
	names := make([]string, 0, len(decls))
	for name := range decls {
		names = append(names, name)
	}
	sort.Strings(names)

	materials := make(map[string]material.Material, len(decls))
	for _, name := range names {
		decl := decls[name]
		switch strings.ToLower(decl.Type) {
		case "lambertian":
			materials[name] = material.NewLambertian(decl.Albedo.toVec3())
		case "metal":
			materials[name] = material.NewMetal(decl.Albedo.toVec3(), decl.Fuzz)
		case "dielectric":
			if !(decl.Index > 0) {
				return nil, fmt.Errorf("%w: %q has refractive index %g", ErrInvalidMaterial, name, decl.Index)
			}
			materials[name] = material.NewDielectric(decl.Index)
		default:
			return nil, fmt.Errorf("%w: %q has type %q", ErrInvalidMaterial, name, decl.Type)
		}
	}
	return materials, nil
}
