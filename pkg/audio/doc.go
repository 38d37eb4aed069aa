// Package audio provides audio processing utilities.
//
// This package serves as an umbrella for audio-related sub-packages:
//
//   - preprocess: amplitude normalization and pre-emphasis filtering
//   - wavfile: PCM WAV loading into float64 sample slices
//   - resampler: sample rate conversion of mono waveforms
//
// Example usage:
//
//	import (
//	    "github.com/haivivi/speechprint/pkg/audio/preprocess"
//	    "github.com/haivivi/speechprint/pkg/audio/wavfile"
//	)
//
//	// Load a WAV file as mono samples
//	w, err := wavfile.Load("speech.wav")
//
//	// Scale to [-1, 1] and boost high frequencies
//	x := preprocess.PreEmphasis(preprocess.Normalize(w.Samples), preprocess.DefaultPreEmphasis)
package audio
