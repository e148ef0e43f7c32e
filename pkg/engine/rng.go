package engine

import "math/rand/v2"

// newRand builds a driver-owned seedable generator, never a global one, per
// spec.md §9's randomness-discipline note: construction and mutation thread
// this explicitly so that a fixed seed reproduces a run bit-for-bit.
func newRand(seed *int64) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s := uint64(*seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}
