package main

import (
	"os"

	"github.com/urfave/cli"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "weekend-raytracer"
	app.Usage = "render sphere scenes with a recursive path tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to a PNG image",
			Description: `
Render a built-in scene (--scene) or a JSON scene file (--file). Width, samples
per pixel, bounce depth and seed override the scene's own settings.

Without --out the image is written to output/<scene>/render_<timestamp>.png.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "built-in scene name (see the scenes command)",
				},
				cli.StringFlag{
					Name:  "file, f",
					Usage: "JSON scene file to render instead of a built-in scene",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "image filename for the rendered frame",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "image width in pixels; height follows the aspect ratio",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum ray bounce depth",
				},
				cli.UintFlag{
					Name:  "seed",
					Value: 42,
					Usage: "random seed for scene layout and sampling",
				},
				cli.IntFlag{
					Name:  "workers, w",
					Usage: "render goroutines; 0 uses every CPU, 1 renders sequentially",
				},
				cli.StringFlag{
					Name:  "integrator, i",
					Value: "path",
					Usage: "shading mode: path (path tracing) or normals (surface normals)",
				},
			},
			Action: renderScene,
		},
		{
			Name:  "scenes",
			Usage: "list built-in scenes and scene files",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "dir",
					Value: "scenes",
					Usage: "directory searched for JSON scene files",
				},
			},
			Action: listScenes,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
