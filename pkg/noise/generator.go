package noise

// Generator is a deterministic random source keyed by (seed, position).
// Every draw consumes one position, so the same seed and the same call order
// always reproduce the same sequence. A Generator is not safe for concurrent use;
// give each goroutine its own.
type Generator struct {
	seed     uint32
	position uint64
}

// NewGenerator creates a generator starting at position 0.
func NewGenerator(seed uint32) *Generator {
	return &Generator{seed: seed}
}

// Seed returns the generator seed.
func (g *Generator) Seed() uint32 {
	return g.seed
}

// Position returns the number of values drawn so far.
func (g *Generator) Position() uint64 {
	return g.position
}

// NextUint32 returns the next 32 raw noise bits.
func (g *Generator) NextUint32() uint32 {
	pos := g.position
	g.position++
	// Positions past 2^32 move to a different seed instead of repeating.
	return Noise5(int32(uint32(pos)), g.seed+uint32(pos>>32)*bitNoise2)
}

// Get1D returns a value in [0,1).
func (g *Generator) Get1D() float64 {
	return toUnit(g.NextUint32())
}

// GetRange returns a value in [min,max).
func (g *Generator) GetRange(min, max float64) float64 {
	return min + (max-min)*g.Get1D()
}

// GetBool returns true with the given probability.
func (g *Generator) GetBool(probability float64) bool {
	return g.Get1D() < probability
}
