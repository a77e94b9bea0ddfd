package world

import (
	"math/rand/v2"
)

// Rand is a deterministic random number generator. Copying a Rand produces an
// independent generator in the same state, which is what a World needs when it
// is copied to explore what happens next without disturbing the original.
type Rand struct {
	pcg rand.PCG
}

func NewRand(seed int64) (r Rand) {
	r.pcg.Seed(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)
	return
}

// RInt returns a random number in the interval [min, max].
func (r *Rand) RInt(min int64, max int64) int64 {
	if max < min {
		panic("RInt: max < min")
	}
	n := uint64(max - min + 1)
	return min + int64(r.pcg.Uint64()%n)
}
