package testutil

import (
	"math"
	"math/rand"
)

// UniformTimes generates length evenly spaced timestamps starting at t0.
func UniformTimes(t0, dt float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = t0 + float64(i)*dt
	}
	return out
}

// GaussianStrain generates seeded zero-mean Gaussian samples with the given
// standard deviation.
func GaussianStrain(seed int64, sigma float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.NormFloat64() * sigma
	}
	return out
}

// Sine generates a deterministic sine wave at freqHz.
func Sine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}
