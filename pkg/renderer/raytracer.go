package renderer

import (
	"fmt"
	"time"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Validate checks that both samples and depth are positive
func (c SamplingConfig) Validate() error {
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: samples per pixel %d must be positive", ErrInvalidSampling, c.SamplesPerPixel)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("%w: max depth %d must be positive", ErrInvalidSampling, c.MaxDepth)
	}
	return nil
}

// Raytracer handles the rendering process
type Raytracer struct {
	camera     *Camera
	world      geometry.Hittable
	integrator integrator.Integrator
	config     SamplingConfig
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards progress output.
func NewRaytracer(camera *Camera, world geometry.Hittable, integ integrator.Integrator, config SamplingConfig, logger core.Logger) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		camera:     camera,
		world:      world,
		integrator: integ,
		config:     config,
		logger:     logger,
	}, nil
}

// Camera returns the camera used by the raytracer
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// SamplingConfig returns the sampling configuration
func (rt *Raytracer) SamplingConfig() SamplingConfig {
	return rt.config
}

// RenderPixel traces SamplesPerPixel jittered rays through pixel (i, j) and returns the average linear color
func (rt *Raytracer) RenderPixel(i, j int, sampler core.Sampler) core.Vec3 {
	colorAccum := core.Vec3{}
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		ray := rt.camera.GetRay(i, j, sampler)
		colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, rt.config.MaxDepth, rt.world, sampler))
	}
	return colorAccum.Mul(1.0 / float64(rt.config.SamplesPerPixel))
}

// renderRow renders scanline j into the buffer
func (rt *Raytracer) renderRow(j int, buffer *PixelBuffer, sampler core.Sampler) {
	for i := 0; i < rt.camera.Width(); i++ {
		buffer.Set(i, j, rt.RenderPixel(i, j, sampler))
	}
}

// Render renders the whole image sequentially, top row first, drawing every random value from sampler
func (rt *Raytracer) Render(sampler core.Sampler) (*PixelBuffer, RenderStats) {
	startTime := time.Now()
	height := rt.camera.Height()
	buffer := NewPixelBuffer(rt.camera.Width(), height)

	for j := 0; j < height; j++ {
		rt.logger.Debugf("scanlines remaining: %d", height-j)
		rt.renderRow(j, buffer, sampler)
	}

	stats := newRenderStats(rt.camera, rt.config, 1)
	stats.RenderTime = time.Since(startTime)
	rt.logger.Infof("rendered %dx%d at %d spp in %v", stats.Width, stats.Height, stats.SamplesPerPixel, stats.RenderTime)
	return buffer, stats
}
