package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/weekend-raytracer/pkg/core"
)

func TestLambertian_ScatterProperties(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.7, 0.9)
	lambertian := NewLambertian(albedo)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	normal := core.NewVec3(0, 0, 1)
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    normal,
		FrontFace: true,
		Material:  lambertian,
	}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	var cosSum float64
	const n = 2000
	for i := 0; i < n; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}

		if scatter.Attenuation != albedo {
			t.Fatalf("Attenuation should equal albedo exactly: expected %v, got %v", albedo, scatter.Attenuation)
		}

		direction := scatter.Scattered.Direction
		if math.Abs(direction.Norm()-1) > 1e-9 {
			t.Fatalf("Expected unit scatter direction, got length %f", direction.Norm())
		}
		if direction.Dot(normal) < -1e-12 {
			t.Fatalf("Scatter direction %v points below the surface", direction)
		}
		if scatter.Scattered.Origin != hit.Point {
			t.Fatalf("Scattered ray should start at the hit point, got %v", scatter.Scattered.Origin)
		}
		cosSum += direction.Dot(normal)
	}

	// Cosine-weighted hemisphere: E[cos θ] = 2/3
	meanCos := cosSum / n
	if math.Abs(meanCos-2.0/3.0) > 0.03 {
		t.Errorf("Expected mean cosine near 2/3 for cosine-weighted sampling, got %f", meanCos)
	}
}

func TestLambertian_DegenerateDirectionFallsBackToNormal(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.8, 0.8, 0.8))
	normal := core.NewVec3(0, 1, 0)
	hit := HitRecord{Point: core.NewVec3(1, 2, 3), Normal: normal, FrontFace: true}
	ray := core.NewRay(core.NewVec3(1, 3, 3), core.NewVec3(0, -1, 0))

	// GetRange(-1,1) maps 0.5 -> 0 and 0 -> -1, so the random unit vector is exactly -normal
	sampler := &sequenceSampler{values: []float64{0.5, 0, 0.5}}

	scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
	if !didScatter {
		t.Fatal("Lambertian should always scatter")
	}
	if scatter.Scattered.Direction != normal {
		t.Errorf("Expected fallback to normal %v, got %v", normal, scatter.Scattered.Direction)
	}
}
