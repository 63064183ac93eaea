// Package noise implements SquirrelNoise5 position-keyed bit noise and a
// deterministic random generator built on top of it.
//
// SquirrelNoise5 is by Squirrel Eiserloh (CC-BY-3.0 US),
// http://eiserloh.net/noise/SquirrelNoise5.hpp
package noise

const (
	bitNoise1 uint32 = 0xd2a80a3f
	bitNoise2 uint32 = 0xa884f197
	bitNoise3 uint32 = 0x6c736f4b
	bitNoise4 uint32 = 0xb79f3abb
	bitNoise5 uint32 = 0x1b56c4f5

	// Large prime with non-boring bits, used to fold extra dimensions into x.
	prime1 int32 = 198491317
)

// Noise5 hashes a position and seed into 32 well-scrambled bits.
// It behaves like a lookup into an infinite table of random numbers.
func Noise5(position int32, seed uint32) uint32 {
	mangled := uint32(position)
	mangled *= bitNoise1
	mangled += seed
	mangled ^= mangled >> 9
	mangled += bitNoise2
	mangled ^= mangled >> 11
	mangled *= bitNoise3
	mangled ^= mangled >> 13
	mangled += bitNoise4
	mangled ^= mangled >> 15
	mangled *= bitNoise5
	mangled ^= mangled >> 17
	return mangled
}

// Get1DNoiseUint returns raw noise for a 1D index.
func Get1DNoiseUint(index int32, seed uint32) uint32 {
	return Noise5(index, seed)
}

// Get2DNoiseUint returns raw noise for a 2D index.
func Get2DNoiseUint(x, y int32, seed uint32) uint32 {
	return Noise5(x+prime1*y, seed)
}

// Get1DNoiseZeroToOne maps 1D noise into [0,1).
func Get1DNoiseZeroToOne(index int32, seed uint32) float64 {
	return toUnit(Noise5(index, seed))
}

// toUnit maps 32 bits onto [0,1). Dividing by 2^32 rather than 2^32-1 keeps 1 out of range.
func toUnit(bits uint32) float64 {
	return float64(bits) * (1.0 / (1 << 32))
}
