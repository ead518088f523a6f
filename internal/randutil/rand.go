// Package randutil builds the seedable random sources used for shuffling.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both PCG seeds are derived from the one value so tests only carry one seed.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewFromTime returns a generator seeded from the wall clock, for tables
// that do not need reproducible shuffles.
func NewFromTime() *rand.Rand {
	return New(time.Now().UnixNano())
}

// Intn adapts a *rand.Rand to the Intn(int) shape older APIs expect.
type Intn struct {
	R *rand.Rand
}

// Intn returns a value in [0, n)
func (i Intn) Intn(n int) int {
	return i.R.IntN(n)
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
