package fingerprint

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfigsValid(t *testing.T) {
	if err := DefaultBandEnergyConfig().Validate(16000); err != nil {
		t.Errorf("DefaultBandEnergyConfig invalid: %v", err)
	}
	if err := DefaultLandmarkConfig().Validate(16000); err != nil {
		t.Errorf("DefaultLandmarkConfig invalid: %v", err)
	}
}

func TestHop(t *testing.T) {
	tests := []struct {
		overlap float64
		length  int
		want    int
	}{
		{0, 240, 240},
		{0.5, 240, 120},
		{0.3, 240, 168}, // 0.7*240 is 167.99999999999997 in float64
		{0.75, 400, 100},
		{0.999, 240, 0},
	}
	for _, tt := range tests {
		c := AnalysisConfig{Overlap: tt.overlap, WindowLength: tt.length}
		if got := c.Hop(); got != tt.want {
			t.Errorf("Hop(overlap=%v, length=%d) = %d, want %d", tt.overlap, tt.length, got, tt.want)
		}
	}
}

func TestBandEnergyConfigInvalid(t *testing.T) {
	tests := []struct {
		name       string
		sampleRate int
		mutate     func(*BandEnergyConfig)
	}{
		{"zero sample rate", 0, func(c *BandEnergyConfig) {}},
		{"zero window length", 16000, func(c *BandEnergyConfig) { c.WindowLength = 0 }},
		{"negative fft points", 16000, func(c *BandEnergyConfig) { c.FFTPoints = -1 }},
		{"fft smaller than window", 16000, func(c *BandEnergyConfig) { c.FFTPoints = 128 }},
		{"overlap one", 16000, func(c *BandEnergyConfig) { c.Overlap = 1 }},
		{"negative overlap", 16000, func(c *BandEnergyConfig) { c.Overlap = -0.1 }},
		{"nan overlap", 16000, func(c *BandEnergyConfig) { c.Overlap = math.NaN() }},
		{"hop rounds to zero", 16000, func(c *BandEnergyConfig) { c.Overlap = 0.999 }},
		{"infinite pre-emphasis", 16000, func(c *BandEnergyConfig) { c.PreEmphasis = math.Inf(1) }},
		{"unknown window", 16000, func(c *BandEnergyConfig) { c.WindowType = "kaiser" }},
		{"zero bands", 16000, func(c *BandEnergyConfig) { c.NumBands = 0 }},
		{"negative low freq", 16000, func(c *BandEnergyConfig) { c.LowFreq = -1 }},
		{"high equals low", 16000, func(c *BandEnergyConfig) { c.HighFreq = c.LowFreq }},
		{"high below low", 16000, func(c *BandEnergyConfig) { c.HighFreq = 100 }},
		{"low above nyquist", 8000, func(c *BandEnergyConfig) { c.LowFreq = 4500; c.HighFreq = 6000 }},
		{"unknown boundary", 16000, func(c *BandEnergyConfig) { c.Boundary = "mirror" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBandEnergyConfig()
			tt.mutate(&cfg)
			err := cfg.Validate(tt.sampleRate)
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Fatalf("Validate() = %v, want ErrInvalidConfiguration", err)
			}

			// The extractor must fail the same way, with no result.
			fp, err := ExtractBandEnergy(make([]float64, 1000), tt.sampleRate, cfg)
			if !errors.Is(err, ErrInvalidConfiguration) || fp != nil {
				t.Errorf("ExtractBandEnergy() = %v, %v; want nil, ErrInvalidConfiguration", fp, err)
			}
		})
	}
}

func TestLandmarkConfigInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LandmarkConfig)
	}{
		{"zero height", func(c *LandmarkConfig) { c.Height = 0 }},
		{"negative width", func(c *LandmarkConfig) { c.Width = -3 }},
		{"zero window length", func(c *LandmarkConfig) { c.WindowLength = 0 }},
		{"fft smaller than window", func(c *LandmarkConfig) { c.FFTPoints = 200 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultLandmarkConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(16000); !errors.Is(err, ErrInvalidConfiguration) {
				t.Fatalf("Validate() = %v, want ErrInvalidConfiguration", err)
			}
			if _, err := ExtractLandmarks(make([]float64, 1000), 16000, cfg); !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("ExtractLandmarks() error = %v, want ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestHighFreqClippedToNyquist(t *testing.T) {
	cfg := DefaultBandEnergyConfig()
	cfg.HighFreq = 20000
	if err := cfg.Validate(16000); err != nil {
		t.Fatalf("high_freq above Nyquist should be clipped, got %v", err)
	}

	clipped := Filterbank(cfg.FFTPoints, cfg.NumBands, cfg.LowFreq, 8000, 16000)
	got := Filterbank(cfg.FFTPoints, cfg.NumBands, cfg.LowFreq, cfg.HighFreq, 16000)
	r, c := got.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if got.At(i, j) != clipped.At(i, j) {
				t.Fatalf("bank[%d][%d] = %g, want %g", i, j, got.At(i, j), clipped.At(i, j))
			}
		}
	}
}

func TestEmptyWindowAndBoundaryDefaults(t *testing.T) {
	cfg := DefaultBandEnergyConfig()
	cfg.WindowType = ""
	cfg.Boundary = ""
	if err := cfg.Validate(16000); err != nil {
		t.Fatalf("zero-value window and boundary should be accepted: %v", err)
	}
	if cfg.windowType() != WindowRectangle {
		t.Errorf("windowType() = %q, want %q", cfg.windowType(), WindowRectangle)
	}
	if cfg.boundary() != BoundaryZero {
		t.Errorf("boundary() = %q, want %q", cfg.boundary(), BoundaryZero)
	}
}
