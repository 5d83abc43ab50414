package core

import "math/rand"

// Sampler provides uniform random samples for scattering decisions.
// Implementations are not safe for concurrent use; each path segment draws
// from its own instance.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
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

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// NewBounceSampler derives a deterministic sampler for one path segment at
// one bounce. The seed mixes the frame iteration, the segment index and the
// bounce depth so that every lane draws from an independent stream and
// identical inputs reproduce identical renders.
func NewBounceSampler(iteration, index, bounce int) *RandomSampler {
	h := mixHash(1<<31 | uint32(bounce)<<22 | uint32(iteration))
	h ^= mixHash(uint32(index))
	return NewRandomSampler(rand.New(rand.NewSource(int64(h))))
}

// mixHash is an integer finalizer with good avalanche behavior, so that
// consecutive (iteration, index, bounce) triples yield uncorrelated seeds.
func mixHash(a uint32) uint32 {
	a = (a + 0x7ed55d16) + (a << 12)
	a = (a ^ 0xc761c23c) ^ (a >> 19)
	a = (a + 0x165667b1) + (a << 5)
	a = (a + 0xd3a2646c) ^ (a << 9)
	a = (a + 0xfd7046c5) + (a << 3)
	a = (a ^ 0xb55a4f09) ^ (a >> 16)
	return a
}
