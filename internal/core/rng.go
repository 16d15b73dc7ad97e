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

// Derive returns an independent RNG for stream n of the given seed. Parallel
// runs use it so every run owns its own source.
func Derive(seed int64, n uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), n+1))}
}

// Bernoulli reports true with probability p. Values at or below zero never
// succeed and values at or above one always do; neither case consumes a draw.
func (r *RNG) Bernoulli(p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	}
	return r.r.Float64() < p
}

// IntN returns a uniform int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}
