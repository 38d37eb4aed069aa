package fingerprint

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// HzToBark converts a frequency in Hz to the Bark scale, 6*asinh(f/600).
func HzToBark(hz float64) float64 {
	return 6 * math.Asinh(hz/600)
}

// BarkToHz converts a Bark value back to Hz, 600*sinh(b/6).
func BarkToHz(bark float64) float64 {
	return 600 * math.Sinh(bark/6)
}

// Filterbank builds the Bark-spaced band filters. The result has shape
// [numBands][fftPoints/2+1]. highFreq is clipped to the Nyquist frequency.
//
// numBands+2 points are spaced evenly on the Bark scale between lowFreq and
// highFreq and mapped to FFT bins as hz*(fftPoints/2+1)/sampleRate. Band m
// spans bins [edge[m-1], edge[m+1]) around its centre edge[m]; see
// bandWeight for the per-bin response.
func Filterbank(fftPoints, numBands int, lowFreq, highFreq float64, sampleRate int) *mat.Dense {
	bins := fftPoints/2 + 1
	highFreq = nyquistClip(highFreq, sampleRate)

	lowBark, highBark := HzToBark(lowFreq), HzToBark(highFreq)
	n := numBands + 2
	step := (highBark - lowBark) / float64(n-1)
	edges := make([]int, n)
	for i := range edges {
		b := lowBark + float64(i)*step
		if i == n-1 {
			b = highBark
		}
		edges[i] = int(BarkToHz(b) * float64(bins) / float64(sampleRate))
	}
	return filterbankFromEdges(edges, bins)
}

// filterbankFromEdges builds len(edges)-2 bands over the given bin edges.
func filterbankFromEdges(edges []int, bins int) *mat.Dense {
	numBands := len(edges) - 2
	bank := mat.NewDense(numBands, bins, nil)
	for m := 1; m <= numBands; m++ {
		low, center, high := edges[m-1], edges[m], min(edges[m+1], bins)
		for k := max(low, 0); k < high; k++ {
			bank.Set(m-1, k, bandWeight(center-k, k))
		}
	}
	return bank
}

// bandWeight is the response of a band centred on bin center at bin k,
// keyed on delta = center - k. The first matching region wins:
//
//	delta < -1.3          0
//	-1.3 <= delta <= -0.5 10^(2.5*(k+0.5))
//	-0.5 <= delta <= 0.5  1
//	 0.5 <= delta <= 2.5  10^(-0.1*(k-0.5))
//	otherwise             0
func bandWeight(delta, k int) float64 {
	d := float64(delta)
	switch {
	case d < -1.3:
		return 0
	case d <= -0.5:
		return math.Pow(10, 2.5*(float64(k)+0.5))
	case d <= 0.5:
		return 1
	case d <= 2.5:
		return math.Pow(10, -0.1*(float64(k)-0.5))
	default:
		return 0
	}
}
