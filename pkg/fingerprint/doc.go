// Package fingerprint computes binary audio fingerprints from raw waveforms.
//
// Two independent algorithms are provided, both pure functions of their
// input samples and configuration:
//
//   - Band energy (FBE): frames are transformed to power spectra, projected
//     onto a Bark-spaced filterbank, converted to mean-normalized log energy,
//     and turned into bits by the sign of a time/band second difference.
//     Output shape is [frames][bands-1].
//   - Landmarks: the magnitude spectrogram is split into Height×Width tiles
//     and the maximum of every tile is marked. Output shape is
//     [FFTPoints/2+1][frames].
//
// Default parameters follow the speech fingerprinting convention:
//
//	FFTPoints:    512
//	WindowLength: 240 (15 ms at 16 kHz)
//	Overlap:      0
//	WindowType:   rectangle
//	PreEmphasis:  0.9375
//	NumBands:     33
//	LowFreq:      300
//	HighFreq:     2000
//	Height×Width: 64×32
//
// Example usage:
//
//	cfg := fingerprint.DefaultBandEnergyConfig()
//	fp, err := fingerprint.ExtractBandEnergy(samples, 16000, cfg)
//	if err != nil {
//	    return err
//	}
//	for _, row := range fp.Strings() {
//	    fmt.Println(row)
//	}
//
// A waveform shorter than one frame is not an error: the result simply has
// no frames. Every intermediate (frames, filterbank, spectrogram, energy
// matrix) is allocated per call, so extractions may run concurrently.
package fingerprint
