package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/integrator"
	"github.com/df07/weekend-raytracer/pkg/material"
	"github.com/df07/weekend-raytracer/pkg/renderer"
)

const testSceneJSON = `{
	"name": "three-spheres",
	"description": "Glass between two diffuse spheres",
	"seed": 7,
	"camera": {
		"center": [0, 1, 3],
		"lookAt": [0, 0, -1],
		"width": 320,
		"aspectRatio": 2,
		"vfov": 40,
		"defocusAngle": 1.5,
		"focusDistance": 4
	},
	"sampling": {"samplesPerPixel": 16, "maxDepth": 8},
	"background": {"top": [0.2, 0.3, 0.9], "bottom": [1, 0.9, 0.8]},
	"materials": {
		"ground": {"type": "lambertian", "albedo": [0.5, 0.5, 0.5]},
		"glass": {"type": "dielectric", "index": 1.5},
		"gold": {"type": "metal", "albedo": [0.8, 0.6, 0.2], "fuzz": 2}
	},
	"spheres": [
		{"center": [0, -100.5, -1], "radius": 100, "material": "ground"},
		{"center": [-1, 0, -1], "radius": 0.5, "material": "glass"},
		{"center": [-1, 0, -1], "radius": -0.4, "material": "glass"},
		{"center": [1, 0, -1], "radius": 0.5, "material": "gold"}
	]
}`

func TestLoad(t *testing.T) {
	s, err := Load(strings.NewReader(testSceneJSON))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.Name != "three-spheres" || s.Description != "Glass between two diffuse spheres" || s.Seed != 7 {
		t.Errorf("Unexpected metadata %q %q %d", s.Name, s.Description, s.Seed)
	}

	expectedCamera := renderer.CameraConfig{
		Center:        core.NewVec3(0, 1, 3),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0), // default kept
		Width:         320,
		AspectRatio:   2,
		VFov:          40,
		DefocusAngle:  1.5,
		FocusDistance: 4,
	}
	if s.Camera != expectedCamera {
		t.Errorf("Expected camera %+v, got %+v", expectedCamera, s.Camera)
	}
	if s.Sampling != (renderer.SamplingConfig{SamplesPerPixel: 16, MaxDepth: 8}) {
		t.Errorf("Unexpected sampling %+v", s.Sampling)
	}
	expectedBackground := integrator.Gradient{Top: core.NewVec3(0.2, 0.3, 0.9), Bottom: core.NewVec3(1, 0.9, 0.8)}
	if s.Background != expectedBackground {
		t.Errorf("Unexpected background %+v", s.Background)
	}

	all := spheres(t, s)
	if len(all) != 4 {
		t.Fatalf("Expected 4 spheres, got %d", len(all))
	}
	if all[2].Radius != -0.4 {
		t.Errorf("Negative radius should be preserved, got %g", all[2].Radius)
	}
	if all[1].Material != all[2].Material {
		t.Error("Spheres naming the same material should share it")
	}
	gold, ok := all[3].Material.(*material.Metal)
	if !ok {
		t.Fatalf("Expected metal, got %T", all[3].Material)
	}
	if gold.Fuzzness != 1 {
		t.Errorf("Fuzz should be clamped to 1, got %g", gold.Fuzzness)
	}
}

func TestLoadDefaults(t *testing.T) {
	s, err := Load(strings.NewReader(`{"spheres": []}`))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Camera != renderer.DefaultCameraConfig() {
		t.Errorf("Expected default camera, got %+v", s.Camera)
	}
	if s.Sampling != renderer.DefaultSamplingConfig() {
		t.Errorf("Expected default sampling, got %+v", s.Sampling)
	}
	if s.Background != integrator.DefaultSky() {
		t.Errorf("Expected default sky, got %+v", s.Background)
	}
	if s.Seed != DefaultSeed {
		t.Errorf("Expected default seed, got %d", s.Seed)
	}
	if s.World.Len() != 0 {
		t.Errorf("Expected empty world, got %d objects", s.World.Len())
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected error
	}{
		{
			name:     "unknown material",
			json:     `{"spheres": [{"center": [0,0,-1], "radius": 0.5, "material": "missing"}]}`,
			expected: ErrUnknownMaterial,
		},
		{
			name:     "unknown material type",
			json:     `{"materials": {"odd": {"type": "plastic"}}}`,
			expected: ErrInvalidMaterial,
		},
		{
			name:     "dielectric without index",
			json:     `{"materials": {"glass": {"type": "dielectric"}}}`,
			expected: ErrInvalidMaterial,
		},
		{
			name: "zero radius sphere",
			json: `{"materials": {"m": {"type": "lambertian", "albedo": [0.5,0.5,0.5]}},
				"spheres": [{"center": [0,0,-1], "radius": 0, "material": "m"}]}`,
			expected: ErrInvalidSphere,
		},
		{
			name:     "invalid camera",
			json:     `{"camera": {"center": [0,0,-1]}}`,
			expected: renderer.ErrInvalidCamera,
		},
		{
			name:     "invalid sampling",
			json:     `{"sampling": {"samplesPerPixel": 0}}`,
			expected: renderer.ErrInvalidSampling,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.json))
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}

	// Syntax and schema errors have no sentinel but must still fail
	for _, bad := range []string{`{`, `{"spheres": 3}`, `{"lights": []}`} {
		if _, err := Load(strings.NewReader(bad)); err == nil {
			t.Errorf("Expected an error for %s", bad)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "three.json")
	if err := os.WriteFile(path, []byte(testSceneJSON), 0644); err != nil {
		t.Fatalf("Failed to write scene: %v", err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if s.World.Len() != 4 {
		t.Errorf("Expected 4 spheres, got %d", s.World.Len())
	}

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected a wrapped not-exist error, got %v", err)
	}
}
