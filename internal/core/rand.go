package core

import "math/rand"

// Rand is the random source consumed by the simulation.
// Float64 returns a value in [0, 1).
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded random source.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandRange returns a uniform value in [lo, hi).
// Returns lo when the range is empty.
func RandRange(r Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}

// Chance returns true with probability p.
func Chance(r Rand, p float64) bool {
	return r.Float64() < p
}
