package util

import "math/rand"

// New returns a seeded RNG for variant draws. Seed 0 is remapped so a
// zero-value config still produces a usable source.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}
