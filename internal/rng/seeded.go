package rng

import "math/rand"

// Seeded returns a deterministic Generator for the given seed.
// Only tests should rely on this; production code shuffles with Crypto.
func Seeded(seed int64) Generator {
	return rand.New(rand.NewSource(seed))
}
