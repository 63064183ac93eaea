package core

import (
	"math"
	"math/rand"
)

// Sampler provides random numbers for rendering algorithms.
// Implementations must be deterministic for a given seed and call order.
type Sampler interface {
	Get1D() float64                    // [0, 1)
	GetRange(min, max float64) float64 // [min, max)
	GetBool(probability float64) bool
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// GetRange returns a random float64 in [min, max)
func (r *RandomSampler) GetRange(min, max float64) float64 {
	return min + (max-min)*r.random.Float64()
}

// GetBool returns true with the given probability
func (r *RandomSampler) GetBool(probability float64) bool {
	return r.random.Float64() < probability
}

// RandomVec3 returns a vector with components in [0, 1)
func RandomVec3(sampler Sampler) Vec3 {
	return NewVec3(sampler.Get1D(), sampler.Get1D(), sampler.Get1D())
}

// RandomVec3Range returns a vector with components in [min, max)
func RandomVec3Range(sampler Sampler, min, max float64) Vec3 {
	return NewVec3(
		sampler.GetRange(min, max),
		sampler.GetRange(min, max),
		sampler.GetRange(min, max),
	)
}

// RandomInUnitSphere rejection-samples a point strictly inside the unit sphere
func RandomInUnitSphere(sampler Sampler) Vec3 {
	for {
		p := RandomVec3Range(sampler, -1, 1)
		if p.Norm2() < 1 {
			return p
		}
	}
}

// RandomUnitVector returns a uniformly distributed direction on the unit sphere
func RandomUnitVector(sampler Sampler) Vec3 {
	for {
		p := RandomVec3Range(sampler, -1, 1)
		lensq := p.Norm2()
		// Tiny vectors would blow up when normalized
		if 1e-160 < lensq && lensq <= 1 {
			return p.Mul(1 / math.Sqrt(lensq))
		}
	}
}

// RandomInUnitDisk rejection-samples a point inside the unit disk in the z=0 plane (for depth of field)
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		p := NewVec3(sampler.GetRange(-1, 1), sampler.GetRange(-1, 1), 0)
		if p.Norm2() < 1 {
			return p
		}
	}
}
