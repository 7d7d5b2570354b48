package maze

import "math/rand/v2"

// Source supplies the random draws used for neighbor selection and shuffling.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
	// IntN returns a uniform integer in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// NewSource returns a PCG-backed Source seeded with seed. Equal seeds produce
// identical mazes for the same dimensions and strategy.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// globalSource draws from the process-wide math/rand/v2 generator.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) IntN(n int) int   { return rand.IntN(n) }

// Shuffle permutes cells in place with a Fisher–Yates shuffle driven by src.
func Shuffle(src Source, cells []int) {
	for i := len(cells) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		cells[i], cells[j] = cells[j], cells[i]
	}
}
