// Package rng provides the single seeded random stream threaded through a
// generation run.
//
// A Stream is not goroutine-safe. One run owns one Stream, and every draw
// advances it, so the order in which callers consume it is part of the
// reproducibility contract.
package rng

import "math/rand/v2"

// Stream is a deterministic pseudo-random stream derived from a single seed.
type Stream struct {
	seed  uint64
	r     *rand.Rand
	draws uint64
}

// New returns a Stream seeded with seed. Equal seeds yield equal streams.
func New(seed uint64) *Stream {
	return &Stream{
		seed: seed,
		r:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Seed returns the seed the stream was created with.
func (s *Stream) Seed() uint64 {
	return s.seed
}

// Draws returns how many values have been consumed so far.
func (s *Stream) Draws() uint64 {
	return s.draws
}

// IntRange returns a uniform integer in the inclusive range [lo, hi].
// It panics if hi < lo.
func (s *Stream) IntRange(lo, hi int) int {
	s.draws++

	return lo + s.r.IntN(hi-lo+1)
}

// Float64 returns a uniform float64 in [0, 1).
func (s *Stream) Float64() float64 {
	s.draws++

	return s.r.Float64()
}

// Bit returns a single uniform random bit.
func (s *Stream) Bit() bool {
	s.draws++

	return s.r.Uint64()&1 == 1
}

// Shuffle performs an in-place Fisher–Yates shuffle of n elements using swap.
func (s *Stream) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		s.draws++
		j := s.r.IntN(i + 1)
		swap(i, j)
	}
}
