package testutil

import (
	"math"
	"math/rand"
)

// Uniform generates a flat absorbance spectrum.
func Uniform(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Zeros returns a spectrum of length n with no absorbance.
func Zeros(n int) []float64 {
	return Uniform(0, n)
}

// Gaussian generates an absorbance band centred at index center with the
// given peak height and standard deviation in samples.
func Gaussian(peak, center, sigma float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		d := (float64(i) - center) / sigma
		out[i] = peak * math.Exp(-0.5*d*d)
	}
	return out
}

// DeterministicAbsorbance generates non-negative random absorbance in
// [0, max) with a fixed seed for reproducibility.
func DeterministicAbsorbance(seed int64, maxAbs float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Float64() * maxAbs
	}
	return out
}

// Step generates a spectrum with value before index edge and 0 from edge on.
func Step(value float64, edge, length int) []float64 {
	out := make([]float64, length)
	for i := 0; i < edge && i < length; i++ {
		out[i] = value
	}
	return out
}
