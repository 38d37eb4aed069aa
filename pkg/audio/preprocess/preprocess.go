// Package preprocess conditions raw waveforms before spectral analysis.
//
// Both functions are pure: they never modify the input slice and always
// return a freshly allocated result of the same length.
package preprocess

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultPreEmphasis is the first-order pre-emphasis coefficient used by
// the fingerprint front end.
const DefaultPreEmphasis = 0.9375

// Normalize scales samples so that the largest absolute value becomes 1.
// A silent (all-zero) or empty waveform is returned as an unscaled copy.
func Normalize(samples []float64) []float64 {
	out := make([]float64, len(samples))
	if len(samples) == 0 {
		return out
	}
	peak := floats.Norm(samples, math.Inf(1))
	if peak == 0 {
		copy(out, samples)
		return out
	}
	return floats.ScaleTo(out, 1/peak, samples)
}

// PreEmphasis applies the high-pass filter y[n] = x[n] - alpha*x[n-1].
// The first sample passes through unchanged. An alpha of 0 yields a copy.
func PreEmphasis(samples []float64, alpha float64) []float64 {
	out := make([]float64, len(samples))
	if len(samples) == 0 {
		return out
	}
	out[0] = samples[0]
	for i := 1; i < len(samples); i++ {
		out[i] = samples[i] - alpha*samples[i-1]
	}
	return out
}
