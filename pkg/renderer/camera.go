package renderer

import (
	"fmt"
	"math"

	"github.com/df07/weekend-raytracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center        core.Vec3 // Camera position (lookfrom)
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // Up direction (usually (0,1,0))
	Width         int       // Image width in pixels
	AspectRatio   float64   // Aspect ratio (width/height)
	VFov          float64   // Vertical field of view in degrees
	DefocusAngle  float64   // Variation angle of rays through each pixel, in degrees (0 = pinhole)
	FocusDistance float64   // Distance from camera to plane of perfect focus
}

// DefaultCameraConfig returns a pinhole camera at the origin looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          90.0,
		DefocusAngle:  0.0,
		FocusDistance: 1.0,
	}
}

// MaxImageDimension bounds the width and derived height of a rendered image
const MaxImageDimension = 1 << 16

// ImageHeight returns the image height derived from width and aspect ratio, clamped to [1, MaxImageDimension]
func (c CameraConfig) ImageHeight() int {
	height := math.Round(float64(c.Width) / c.AspectRatio)
	if !(height < MaxImageDimension) {
		return MaxImageDimension
	}
	return max(1, int(height))
}

// Validate checks that the configuration describes a non-degenerate camera
func (c CameraConfig) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("%w: width %d must be positive", ErrInvalidCamera, c.Width)
	case c.Width > MaxImageDimension:
		return fmt.Errorf("%w: width %d exceeds %d", ErrInvalidCamera, c.Width, MaxImageDimension)
	case !(c.AspectRatio > 0) || math.IsInf(c.AspectRatio, 0):
		return fmt.Errorf("%w: aspect ratio %g must be positive", ErrInvalidCamera, c.AspectRatio)
	case !(math.Round(float64(c.Width)/c.AspectRatio) <= MaxImageDimension):
		return fmt.Errorf("%w: aspect ratio %g gives a height over %d", ErrInvalidCamera, c.AspectRatio, MaxImageDimension)
	case !(c.VFov > 0 && c.VFov < 180):
		return fmt.Errorf("%w: vertical fov %g must be in (0, 180)", ErrInvalidCamera, c.VFov)
	case c.Center == c.LookAt:
		return fmt.Errorf("%w: center and look-at are both %v", ErrInvalidCamera, c.Center)
	case core.NearZero(c.Up.Cross(c.Center.Sub(c.LookAt).Normalize())):
		return fmt.Errorf("%w: up %v is parallel to the view direction", ErrInvalidCamera, c.Up)
	case !(c.FocusDistance > 0):
		return fmt.Errorf("%w: focus distance %g must be positive", ErrInvalidCamera, c.FocusDistance)
	case c.DefocusAngle < 0:
		return fmt.Errorf("%w: defocus angle %g must not be negative", ErrInvalidCamera, c.DefocusAngle)
	}
	return nil
}

// Camera generates rays for rendering. It is immutable once built.
type Camera struct {
	config CameraConfig
	width  int
	height int

	center       core.Vec3
	pixel00      core.Vec3 // Location of pixel (0,0) center
	pixelDeltaU  core.Vec3 // Offset to pixel to the right
	pixelDeltaV  core.Vec3 // Offset to pixel below
	u, v, w      core.Vec3 // Camera frame basis vectors
	defocusDiskU core.Vec3 // Defocus disk horizontal radius
	defocusDiskV core.Vec3 // Defocus disk vertical radius
}

// NewCamera creates a camera from the configuration
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	width := config.Width
	height := config.ImageHeight()

	// Viewport dimensions at the focus plane
	theta := config.VFov * math.Pi / 180.0
	h := math.Tan(theta / 2.0)
	viewportHeight := 2.0 * h * config.FocusDistance
	viewportWidth := viewportHeight * (float64(width) / float64(height))

	// Orthonormal basis
	w := config.Center.Sub(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := u.Mul(viewportWidth)
	viewportV := v.Mul(-viewportHeight)

	pixelDeltaU := viewportU.Mul(1.0 / float64(width))
	pixelDeltaV := viewportV.Mul(1.0 / float64(height))

	viewportUpperLeft := config.Center.
		Sub(w.Mul(config.FocusDistance)).
		Sub(viewportU.Mul(0.5)).
		Sub(viewportV.Mul(0.5))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Mul(0.5))

	defocusRadius := config.FocusDistance * math.Tan(config.DefocusAngle*math.Pi/180.0/2.0)

	return &Camera{
		config:       config,
		width:        width,
		height:       height,
		center:       config.Center,
		pixel00:      pixel00,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		u:            u,
		v:            v,
		w:            w,
		defocusDiskU: u.Mul(defocusRadius),
		defocusDiskV: v.Mul(defocusRadius),
	}, nil
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.height }

// Center returns the camera position
func (c *Camera) Center() core.Vec3 { return c.center }

// Basis returns the camera frame: u points right, v up and w backwards (away from the look-at point)
func (c *Camera) Basis() (u, v, w core.Vec3) { return c.u, c.v, c.w }

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig { return c.config }

// PixelCenter returns the world-space center of pixel (i, j) on the focus plane
func (c *Camera) PixelCenter(i, j int) core.Vec3 {
	return c.pixel00.
		Add(c.pixelDeltaU.Mul(float64(i))).
		Add(c.pixelDeltaV.Mul(float64(j)))
}

// GetRay generates a camera ray for pixel (i, j), jittered within the pixel square
// and originating on the defocus disk
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offsetX := sampler.Get1D() - 0.5
	offsetY := sampler.Get1D() - 0.5
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Mul(float64(i) + offsetX)).
		Add(c.pixelDeltaV.Mul(float64(j) + offsetY))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}

	return core.NewRay(origin, pixelSample.Sub(origin).Normalize())
}

// defocusDiskSample returns a random point on the camera defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.RandomInUnitDisk(sampler)
	return c.center.Add(c.defocusDiskU.Mul(p.X)).Add(c.defocusDiskV.Mul(p.Y))
}
