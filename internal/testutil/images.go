package testutil

import (
	"math"
	"math/rand"
)

// DC returns a constant-valued buffer of the given length.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a buffer of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}

// Impulse returns a buffer with a single 1.0 at the given flat position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DeterministicNoise returns uniform noise in [-amplitude, amplitude] with
// a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Ramp returns a buffer with values 1, 2, ..., length.
func Ramp(length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = float64(i + 1)
	}
	return out
}

// WithNaNs returns a copy of data with NaN written at the given flat
// positions.
func WithNaNs(data []float64, positions ...int) []float64 {
	out := make([]float64, len(data))
	copy(out, data)
	for _, p := range positions {
		if p >= 0 && p < len(out) {
			out[p] = math.NaN()
		}
	}
	return out
}

// SprinkleNaNs returns a copy of data with roughly fraction of its samples
// replaced by NaN, chosen with a fixed seed.
func SprinkleNaNs(data []float64, fraction float64, seed int64) []float64 {
	out := make([]float64, len(data))
	copy(out, data)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		if rng.Float64() < fraction {
			out[i] = math.NaN()
		}
	}
	return out
}
