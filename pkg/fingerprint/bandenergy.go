package fingerprint

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const (
	// machineEpsilon replaces exact zero energies before the logarithm.
	machineEpsilon = 0x1p-52

	// logFloor bounds log10 of a band energy from below.
	logFloor = 1e-5

	// meanOffset is added to every band mean before subtraction.
	meanOffset = 1e-8
)

// BandEnergies projects power spectra ([frames][bins]) onto bank
// ([bands][bins]) and returns log band energies ([frames][bands]) with each
// band's mean over time removed.
//
// Zero energies become machine epsilon, values are 20*max(log10(e), 1e-5),
// and each band has mean+1e-8 subtracted.
func BandEnergies(power, bank mat.Matrix) *mat.Dense {
	var e mat.Dense
	e.Mul(power, bank.T())
	e.Apply(func(_, _ int, v float64) float64 {
		if v == 0 {
			v = machineEpsilon
		}
		return 20 * math.Max(math.Log10(v), logFloor)
	}, &e)

	frames, bands := e.Dims()
	col := make([]float64, frames)
	for j := 0; j < bands; j++ {
		mat.Col(col, j, &e)
		mean := stat.Mean(col, nil) + meanOffset
		for i := range col {
			col[i] -= mean
		}
		e.SetCol(j, col)
	}
	return &e
}

// ExtractBandEnergy computes the band-energy fingerprint of samples. The
// result has one row per frame and NumBands-1 columns. A waveform shorter
// than WindowLength yields a matrix with zero rows.
func ExtractBandEnergy(samples []float64, sampleRate int, cfg BandEnergyConfig) (*BinaryMatrix, error) {
	if err := cfg.Validate(sampleRate); err != nil {
		return nil, err
	}

	frames := Frame(cfg.prepare(samples), cfg.WindowLength, cfg.Hop())
	if len(frames) == 0 {
		return newBinaryMatrix(0, cfg.NumBands-1), nil
	}

	power, err := PowerSpectra(frames, cfg.FFTPoints, cfg.windowType())
	if err != nil {
		return nil, err
	}
	bank := Filterbank(cfg.FFTPoints, cfg.NumBands, cfg.LowFreq, cfg.HighFreq, sampleRate)
	return DeriveBits(BandEnergies(power, bank), cfg.boundary()), nil
}
