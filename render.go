package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/weekend-raytracer/pkg/integrator"
	"github.com/df07/weekend-raytracer/pkg/log"
	"github.com/df07/weekend-raytracer/pkg/noise"
	"github.com/df07/weekend-raytracer/pkg/renderer"
	"github.com/df07/weekend-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// renderOptions holds the command line overrides applied to a scene
type renderOptions struct {
	width   int
	spp     int
	depth   int
	seed    uint32
	setSeed bool
}

// createScene resolves a built-in scene name or a scene file path
func createScene(name, file string, seed uint32) (*scene.Scene, error) {
	if file != "" {
		return scene.LoadFile(file)
	}
	if name == "" {
		return nil, errors.New("missing scene name")
	}
	return scene.Lookup(name, seed)
}

// applyOverrides replaces scene settings with any non-zero options
func applyOverrides(s *scene.Scene, opts renderOptions) {
	if opts.width > 0 {
		s.Camera.Width = opts.width
	}
	if opts.spp > 0 {
		s.Sampling.SamplesPerPixel = opts.spp
	}
	if opts.depth > 0 {
		s.Sampling.MaxDepth = opts.depth
	}
	if opts.setSeed {
		s.Seed = opts.seed
	}
}

// defaultOutputPath returns output/<scene>/render_<timestamp>.png
func defaultOutputPath(sceneName string, now time.Time) string {
	if sceneName == "" {
		sceneName = "scene"
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", timestamp))
}

// Render a scene to a PNG file.
func renderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.IsSet("scene") && ctx.IsSet("file") {
		return errors.New("--scene and --file are mutually exclusive")
	}

	seed := uint32(ctx.Uint("seed"))
	s, err := createScene(ctx.String("scene"), ctx.String("file"), seed)
	if err != nil {
		return err
	}

	applyOverrides(s, renderOptions{
		width:   ctx.Int("width"),
		spp:     ctx.Int("spp"),
		depth:   ctx.Int("depth"),
		seed:    seed,
		setSeed: ctx.IsSet("seed"),
	})

	out := ctx.String("out")
	if out == "" {
		out = defaultOutputPath(s.Name, time.Now())
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	integ, err := s.NewIntegrator(ctx.String("integrator"))
	if err != nil {
		return err
	}

	stats, err := renderToFile(signalCtx, s, integ, out, ctx.Int("workers"))
	if err != nil {
		return err
	}

	displayRenderStats(s, stats, out)
	return nil
}

// renderToFile renders s with integ and writes the gamma-encoded image to out
func renderToFile(ctx context.Context, s *scene.Scene, integ integrator.Integrator, out string, workers int) (renderer.RenderStats, error) {
	rt, err := s.NewRaytracer(integ, log.New("renderer"))
	if err != nil {
		return renderer.RenderStats{}, err
	}

	logger.Infof("rendering %q: %d spheres, %dx%d, %d spp, depth %d",
		s.Name, s.GetPrimitiveCount(), rt.Camera().Width(), rt.Camera().Height(),
		s.Sampling.SamplesPerPixel, s.Sampling.MaxDepth)

	var (
		buffer *renderer.PixelBuffer
		stats  renderer.RenderStats
	)
	if workers == 1 {
		buffer, stats = rt.Render(noise.NewGenerator(s.Seed))
	} else {
		buffer, stats, err = rt.RenderParallel(ctx, s.Seed, workers)
		if err != nil {
			return stats, err
		}
	}

	if err := renderer.WritePNG(out, buffer.Width, buffer.Height, 3, buffer.ToSRGB()); err != nil {
		return stats, err
	}
	return stats, nil
}

func displayRenderStats(s *scene.Scene, stats renderer.RenderStats, out string) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Resolution", "Spheres", "SPP", "Depth", "Workers", "Samples/s", "Render time"})
	table.Append([]string{
		s.Name,
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", s.GetPrimitiveCount()),
		fmt.Sprintf("%d", stats.SamplesPerPixel),
		fmt.Sprintf("%d", stats.MaxDepth),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%.0f", stats.SamplesPerSecond()),
		stats.RenderTime.String(),
	})
	table.SetFooter([]string{"", "", "", "", "", "", "OUTPUT", out})

	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}
