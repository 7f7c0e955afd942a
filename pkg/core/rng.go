package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Range returns a random int in [min, max). When the range is empty min is
// returned, so callers can pass degenerate bounds without guarding.
func (r *RNG) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.r.IntN(max-min)
}

// Int63 returns a non-negative pseudo-random 63-bit integer, used to derive
// seeds for noise layers.
func (r *RNG) Int63() int64 {
	return r.r.Int64()
}
