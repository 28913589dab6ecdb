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

// Chance reports true with probability p. p is clamped to [0, 1].
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// FillRegion calls set for every coordinate in the half-open rectangle
// [top,bottom)×[left,right) that passes a Chance(density) roll, visiting
// row-major so the same seed always yields the same pattern.
func (r *RNG) FillRegion(top, left, bottom, right int, density float64, set func(Coord)) {
	for row := top; row < bottom; row++ {
		for col := left; col < right; col++ {
			if r.Chance(density) {
				set(Coord{Row: row, Col: col})
			}
		}
	}
}
