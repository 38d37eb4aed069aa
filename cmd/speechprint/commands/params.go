package commands

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/haivivi/speechprint/pkg/cli"
	"github.com/haivivi/speechprint/pkg/fingerprint"
)

// analysisFlags binds the framing options shared by both algorithms.
// Only flags set on the command line override lower-precedence values.
type analysisFlags struct {
	normalize    bool
	preEmphasis  float64
	fftPoints    int
	overlap      float64
	windowLength int
	windowType   string
	display      bool

	rate int
	jobs int
}

func (f *analysisFlags) register(fs *pflag.FlagSet, d fingerprint.AnalysisConfig) {
	fs.BoolVar(&f.normalize, "normalize", d.Normalize, "scale input to peak amplitude 1")
	fs.Float64Var(&f.preEmphasis, "pre-emphasis", d.PreEmphasis, "pre-emphasis coefficient (0 disables)")
	fs.IntVar(&f.fftPoints, "fft-points", d.FFTPoints, "FFT size")
	fs.Float64Var(&f.overlap, "overlap", d.Overlap, "frame overlap fraction in [0, 1)")
	fs.IntVar(&f.windowLength, "window-length", d.WindowLength, "frame length in samples")
	fs.StringVar(&f.windowType, "window-type", string(d.WindowType), "analysis window: rectangle, hamming, hann, bartlett, blackman, flattop")
	fs.BoolVar(&f.display, "display", d.Display, "render the fingerprint to stderr")

	fs.IntVar(&f.rate, "rate", 0, "resample input to this rate before extraction (0 keeps the file's rate)")
	fs.IntVar(&f.jobs, "jobs", 1, "number of files processed concurrently")
}

func (f *analysisFlags) apply(fs *pflag.FlagSet, c *fingerprint.AnalysisConfig) {
	if fs.Changed("normalize") {
		c.Normalize = f.normalize
	}
	if fs.Changed("pre-emphasis") {
		c.PreEmphasis = f.preEmphasis
	}
	if fs.Changed("fft-points") {
		c.FFTPoints = f.fftPoints
	}
	if fs.Changed("overlap") {
		c.Overlap = f.overlap
	}
	if fs.Changed("window-length") {
		c.WindowLength = f.windowLength
	}
	if fs.Changed("window-type") {
		c.WindowType = fingerprint.WindowType(f.windowType)
	}
	if fs.Changed("display") {
		c.Display = f.display
	}
}

// targetRate returns the resampling rate: --rate if set, else the
// profile's, else 0.
func (f *analysisFlags) targetRate(fs *pflag.FlagSet, p *cli.Profile) (int, error) {
	rate := 0
	if p != nil {
		rate = p.SampleRate
	}
	if fs.Changed("rate") {
		rate = f.rate
	}
	if rate < 0 {
		return 0, fmt.Errorf("rate must be >= 0, got %d", rate)
	}
	return rate, nil
}

type bandEnergyFlags struct {
	analysisFlags

	bands    int
	lowFreq  float64
	highFreq float64
	boundary string
}

func (f *bandEnergyFlags) register(fs *pflag.FlagSet) {
	d := fingerprint.DefaultBandEnergyConfig()
	f.analysisFlags.register(fs, d.AnalysisConfig)
	fs.IntVar(&f.bands, "bands", d.NumBands, "number of Bark bands")
	fs.Float64Var(&f.lowFreq, "low-freq", d.LowFreq, "lowest band edge in Hz")
	fs.Float64Var(&f.highFreq, "high-freq", d.HighFreq, "highest band edge in Hz (clipped to Nyquist)")
	fs.StringVar(&f.boundary, "boundary", string(d.Boundary), "lower neighbour of band 0: zero or wrap")
}

// resolve merges profile, parameter file and flags, in that order.
func (f *bandEnergyFlags) resolve(fs *pflag.FlagSet, p *cli.Profile) (fingerprint.BandEnergyConfig, error) {
	cfg := p.BandEnergyConfig()
	if inputFile != "" {
		if err := cli.LoadRequest(inputFile, &cfg); err != nil {
			return cfg, fmt.Errorf("load parameters: %w", err)
		}
	}
	f.apply(fs, &cfg.AnalysisConfig)
	if fs.Changed("bands") {
		cfg.NumBands = f.bands
	}
	if fs.Changed("low-freq") {
		cfg.LowFreq = f.lowFreq
	}
	if fs.Changed("high-freq") {
		cfg.HighFreq = f.highFreq
	}
	if fs.Changed("boundary") {
		cfg.Boundary = fingerprint.BoundaryPolicy(f.boundary)
	}
	return cfg, nil
}

type landmarkFlags struct {
	analysisFlags

	height int
	width  int
}

func (f *landmarkFlags) register(fs *pflag.FlagSet) {
	d := fingerprint.DefaultLandmarkConfig()
	f.analysisFlags.register(fs, d.AnalysisConfig)
	fs.IntVar(&f.height, "height", d.Height, "tile height in frequency bins")
	fs.IntVar(&f.width, "width", d.Width, "tile width in frames")
}

// resolve merges profile, parameter file and flags, in that order.
func (f *landmarkFlags) resolve(fs *pflag.FlagSet, p *cli.Profile) (fingerprint.LandmarkConfig, error) {
	cfg := p.LandmarkConfig()
	if inputFile != "" {
		if err := cli.LoadRequest(inputFile, &cfg); err != nil {
			return cfg, fmt.Errorf("load parameters: %w", err)
		}
	}
	f.apply(fs, &cfg.AnalysisConfig)
	if fs.Changed("height") {
		cfg.Height = f.height
	}
	if fs.Changed("width") {
		cfg.Width = f.width
	}
	return cfg, nil
}
