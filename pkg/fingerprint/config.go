package fingerprint

import (
	"math"

	"github.com/haivivi/speechprint/pkg/audio/preprocess"
)

// WindowType selects the analysis window applied to each frame before the FFT.
type WindowType string

const (
	WindowRectangle WindowType = "rectangle"
	WindowHamming   WindowType = "hamming"
	WindowHann      WindowType = "hann"
	WindowBartlett  WindowType = "bartlett"
	WindowBlackman  WindowType = "blackman"
	WindowFlatTop   WindowType = "flattop"
)

// BoundaryPolicy decides how bit derivation treats the missing lower band
// neighbour of band 0 in the previous frame.
type BoundaryPolicy string

const (
	// BoundaryZero treats the missing neighbour as zero energy.
	BoundaryZero BoundaryPolicy = "zero"

	// BoundaryWrap uses the highest band of the previous frame, matching
	// fingerprints produced by index-wrapping implementations.
	BoundaryWrap BoundaryPolicy = "wrap"
)

// AnalysisConfig holds the framing and preprocessing options shared by both
// algorithms.
type AnalysisConfig struct {
	Normalize    bool       `yaml:"normalize" json:"normalize"`         // scale to peak amplitude 1 first
	PreEmphasis  float64    `yaml:"pre_emphasis" json:"pre_emphasis"`   // first-order coefficient, 0 disables
	FFTPoints    int        `yaml:"fft_points" json:"fft_points"`       // FFT size, >= WindowLength
	Overlap      float64    `yaml:"overlap" json:"overlap"`             // fraction in [0, 1)
	WindowLength int        `yaml:"window_length" json:"window_length"` // frame length in samples
	WindowType   WindowType `yaml:"window_type" json:"window_type"`     // empty means rectangle

	// Display asks the caller to route the result to a renderer. It never
	// changes the extracted matrix.
	Display bool `yaml:"display" json:"display"`
}

// BandEnergyConfig configures ExtractBandEnergy.
type BandEnergyConfig struct {
	AnalysisConfig `yaml:",inline"`

	NumBands int            `yaml:"n_bands" json:"n_bands"`
	LowFreq  float64        `yaml:"low_freq" json:"low_freq"`   // Hz
	HighFreq float64        `yaml:"high_freq" json:"high_freq"` // Hz, clipped to Nyquist
	Boundary BoundaryPolicy `yaml:"boundary" json:"boundary"`   // empty means zero
}

// LandmarkConfig configures ExtractLandmarks.
type LandmarkConfig struct {
	AnalysisConfig `yaml:",inline"`

	Height int `yaml:"height" json:"height"` // tile height in frequency bins
	Width  int `yaml:"width" json:"width"`   // tile width in frames
}

// DefaultAnalysisConfig returns the framing defaults shared by both
// algorithms.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		PreEmphasis:  preprocess.DefaultPreEmphasis,
		FFTPoints:    512,
		Overlap:      0,
		WindowLength: 240,
		WindowType:   WindowRectangle,
	}
}

// DefaultBandEnergyConfig returns 33 bands between 300 Hz and 2 kHz.
func DefaultBandEnergyConfig() BandEnergyConfig {
	return BandEnergyConfig{
		AnalysisConfig: DefaultAnalysisConfig(),
		NumBands:       33,
		LowFreq:        300,
		HighFreq:       2000,
		Boundary:       BoundaryZero,
	}
}

// DefaultLandmarkConfig returns 64×32 tiles.
func DefaultLandmarkConfig() LandmarkConfig {
	return LandmarkConfig{
		AnalysisConfig: DefaultAnalysisConfig(),
		Height:         64,
		Width:          32,
	}
}

// Hop returns the frame advance in samples, (1 - Overlap) * WindowLength
// rounded to the nearest integer.
func (c AnalysisConfig) Hop() int {
	return int(math.Round((1 - c.Overlap) * float64(c.WindowLength)))
}

// Validate checks the framing options against sampleRate.
func (c AnalysisConfig) Validate(sampleRate int) error {
	switch {
	case sampleRate <= 0:
		return invalidf("sample rate must be positive, got %d", sampleRate)
	case c.WindowLength <= 0:
		return invalidf("window_length must be positive, got %d", c.WindowLength)
	case c.FFTPoints <= 0:
		return invalidf("fft_points must be positive, got %d", c.FFTPoints)
	case c.FFTPoints < c.WindowLength:
		return invalidf("fft_points (%d) must be >= window_length (%d)", c.FFTPoints, c.WindowLength)
	case math.IsNaN(c.Overlap) || c.Overlap < 0 || c.Overlap >= 1:
		return invalidf("overlap must be in [0, 1), got %v", c.Overlap)
	case c.Hop() <= 0:
		return invalidf("hop must be positive, got %d (overlap %v, window_length %d)", c.Hop(), c.Overlap, c.WindowLength)
	case math.IsNaN(c.PreEmphasis) || math.IsInf(c.PreEmphasis, 0):
		return invalidf("pre_emphasis must be finite, got %v", c.PreEmphasis)
	}
	if _, ok := windowFuncs[c.windowType()]; !ok {
		return invalidf("unknown window_type %q", c.WindowType)
	}
	return nil
}

func (c AnalysisConfig) windowType() WindowType {
	if c.WindowType == "" {
		return WindowRectangle
	}
	return c.WindowType
}

// prepare applies the optional normalization and the pre-emphasis filter.
// The result never aliases samples.
func (c AnalysisConfig) prepare(samples []float64) []float64 {
	x := samples
	if c.Normalize {
		x = preprocess.Normalize(x)
	}
	return preprocess.PreEmphasis(x, c.PreEmphasis)
}

// Validate checks the configuration against sampleRate. HighFreq is
// clipped to the Nyquist frequency before it is compared with LowFreq.
func (c BandEnergyConfig) Validate(sampleRate int) error {
	if err := c.AnalysisConfig.Validate(sampleRate); err != nil {
		return err
	}
	switch {
	case c.NumBands < 1:
		return invalidf("n_bands must be >= 1, got %d", c.NumBands)
	case math.IsNaN(c.LowFreq) || c.LowFreq < 0:
		return invalidf("low_freq must be >= 0, got %v", c.LowFreq)
	case math.IsNaN(c.HighFreq) || nyquistClip(c.HighFreq, sampleRate) <= c.LowFreq:
		return invalidf("high_freq (%v, clipped to %v) must be > low_freq (%v)",
			c.HighFreq, nyquistClip(c.HighFreq, sampleRate), c.LowFreq)
	}
	switch c.boundary() {
	case BoundaryZero, BoundaryWrap:
	default:
		return invalidf("unknown boundary policy %q", c.Boundary)
	}
	return nil
}

func (c BandEnergyConfig) boundary() BoundaryPolicy {
	if c.Boundary == "" {
		return BoundaryZero
	}
	return c.Boundary
}

// Validate checks the configuration against sampleRate.
func (c LandmarkConfig) Validate(sampleRate int) error {
	if err := c.AnalysisConfig.Validate(sampleRate); err != nil {
		return err
	}
	if c.Height <= 0 {
		return invalidf("height must be positive, got %d", c.Height)
	}
	if c.Width <= 0 {
		return invalidf("width must be positive, got %d", c.Width)
	}
	return nil
}

func nyquistClip(freq float64, sampleRate int) float64 {
	return math.Min(freq, float64(sampleRate)/2)
}
