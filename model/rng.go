package model

import "math/rand/v2"

// NewRNG creates a deterministic random source for the given seed
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
