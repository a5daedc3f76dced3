package utils

import (
	"math"
	"math/rand/v2"
)

// IntSource yields uniform integers in [0, n). *rand.Rand satisfies it.
type IntSource interface {
	IntN(n int) int
}

// globalSource draws from the package-level math/rand/v2 generator
type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n) //nolint:gosec // Game logic randomness, not security critical
}

// DefaultSource returns the process-wide random source
func DefaultSource() IntSource {
	return globalSource{}
}

// NewSeededSource returns a deterministic source. Seed 0 is a valid seed.
func NewSeededSource(seed uint64) IntSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec // Game logic randomness
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(min, max int) int {
	return RandomIntFrom(globalSource{}, min, max)
}

// RandomIntFrom returns a random integer between min and max (inclusive) drawn from src
func RandomIntFrom(src IntSource, min, max int) int {
	if min >= max {
		return min
	}
	if src == nil {
		src = globalSource{}
	}
	return src.IntN(max-min+1) + min
}

// RoundHalfUp rounds a single-precision value to the nearest integer, ties toward
// positive infinity. -1.5 rounds to -1, 2.5 rounds to 3.
func RoundHalfUp(x float32) int {
	return int(math.Floor(float64(x) + 0.5))
}
