package fingerprint

import (
	"github.com/mjibson/go-dsp/window"
)

var windowFuncs = map[WindowType]func(int) []float64{
	WindowRectangle: window.Rectangular,
	WindowHamming:   window.Hamming,
	WindowHann:      window.Hann,
	WindowBartlett:  window.Bartlett,
	WindowBlackman:  window.Blackman,
	WindowFlatTop:   window.FlatTop,
}

// Window returns the n coefficients of the named analysis window. An empty
// type selects the rectangle window.
func Window(t WindowType, n int) ([]float64, error) {
	if t == "" {
		t = WindowRectangle
	}
	fn, ok := windowFuncs[t]
	if !ok {
		return nil, invalidf("unknown window_type %q", t)
	}
	if n <= 0 {
		return nil, invalidf("window length must be positive, got %d", n)
	}
	if n == 1 {
		// The tapered windows divide by n-1.
		return []float64{1}, nil
	}
	return fn(n), nil
}
