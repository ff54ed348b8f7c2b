package fireworks

import (
	"math/rand/v2"
)

// Rand is a random number generator that can be copied by value. A copy
// continues to produce the same sequence as the original.
// The simulation is not meant to be reproducible, the seed exists so that
// tests can pin the values they look at.
type Rand struct {
	pcg rand.PCG
}

func NewRand(seed int64) (r Rand) {
	r.pcg.Seed(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)
	return
}

// RInt returns a random integer in [min, max].
func (r *Rand) RInt(min int64, max int64) int64 {
	if max < min {
		panic("RInt called with max < min")
	}
	n := uint64(max-min) + 1
	return min + int64(r.pcg.Uint64()%n)
}

// RFloat returns a random float in [min, max).
func (r *Rand) RFloat(min float64, max float64) float64 {
	// Use the top 53 bits, the precision of a float64 mantissa.
	f := float64(r.pcg.Uint64()>>11) / (1 << 53)
	return min + f*(max-min)
}
