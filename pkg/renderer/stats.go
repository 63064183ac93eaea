package renderer

import (
	"time"
)

// RenderStats contains statistics about a finished render
type RenderStats struct {
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of camera rays traced
	SamplesPerPixel int           // Samples taken for each pixel
	MaxDepth        int           // Bounce budget per camera ray
	Workers         int           // Goroutines used (1 for sequential renders)
	RenderTime      time.Duration // Wall-clock render time
}

// SamplesPerSecond returns the camera-ray throughput of the render
func (rs RenderStats) SamplesPerSecond() float64 {
	if rs.RenderTime <= 0 {
		return 0
	}
	return float64(rs.TotalSamples) / rs.RenderTime.Seconds()
}

func newRenderStats(camera *Camera, config SamplingConfig, workers int) RenderStats {
	pixels := camera.Width() * camera.Height()
	return RenderStats{
		Width:           camera.Width(),
		Height:          camera.Height(),
		TotalPixels:     pixels,
		TotalSamples:    pixels * config.SamplesPerPixel,
		SamplesPerPixel: config.SamplesPerPixel,
		MaxDepth:        config.MaxDepth,
		Workers:         workers,
	}
}
