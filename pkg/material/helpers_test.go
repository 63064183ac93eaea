package material

import (
	"math"

	"github.com/df07/weekend-raytracer/pkg/core"
)

// sequenceSampler replays a fixed list of values in [0,1), cycling when exhausted
type sequenceSampler struct {
	values []float64
	next   int
}

func (s *sequenceSampler) Get1D() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func (s *sequenceSampler) GetRange(min, max float64) float64 {
	return min + (max-min)*s.Get1D()
}

func (s *sequenceSampler) GetBool(probability float64) bool {
	return s.Get1D() < probability
}

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}
