// Package wavfile loads PCM WAV files as mono float64 waveforms.
package wavfile

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// ErrInvalidFile is returned when the input is not a readable PCM WAV file.
var ErrInvalidFile = errors.New("wavfile: invalid WAV file")

// Audio is a decoded mono waveform in [-1, 1].
type Audio struct {
	Samples    []float64
	SampleRate int

	// Channels and BitDepth describe the source file.
	Channels int
	BitDepth int
}

// Duration returns the length of the waveform in seconds.
func (a *Audio) Duration() float64 {
	if a.SampleRate == 0 {
		return 0
	}
	return float64(len(a.Samples)) / float64(a.SampleRate)
}

// Load reads and decodes the WAV file at path.
func Load(path string) (*Audio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wavfile: open: %w", err)
	}
	defer f.Close()

	a, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("wavfile: loaded", "path", path, "sample_rate", a.SampleRate,
		"channels", a.Channels, "bit_depth", a.BitDepth, "samples", len(a.Samples))
	return a, nil
}

// Decode reads a PCM WAV stream. Multi-channel audio is downmixed to mono
// by averaging the channels.
func Decode(r io.ReadSeeker) (*Audio, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrInvalidFile
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wavfile: read PCM: %w", err)
	}
	if buf.Format == nil || buf.Format.NumChannels < 1 || buf.Format.SampleRate < 1 {
		return nil, ErrInvalidFile
	}

	return &Audio{
		Samples:    downmix(buf),
		SampleRate: buf.Format.SampleRate,
		Channels:   buf.Format.NumChannels,
		BitDepth:   buf.SourceBitDepth,
	}, nil
}

// downmix averages interleaved channels and scales integer PCM to [-1, 1].
func downmix(buf *audio.IntBuffer) []float64 {
	ch := buf.Format.NumChannels
	depth := buf.SourceBitDepth
	if depth <= 0 {
		depth = 16
	}
	scale := math.Ldexp(1, depth-1)
	offset := 0.0
	if depth == 8 {
		// 8-bit PCM is unsigned.
		offset = 128
	}

	out := make([]float64, len(buf.Data)/ch)
	for i := range out {
		var sum float64
		for c := 0; c < ch; c++ {
			sum += float64(buf.Data[i*ch+c]) - offset
		}
		out[i] = sum / float64(ch) / scale
	}
	return out
}

// Write encodes mono samples in [-1, 1] as a PCM WAV file with the given
// bit depth. Values outside the range are clipped.
func Write(w io.WriteSeeker, samples []float64, sampleRate, bitDepth int) error {
	if bitDepth != 8 && bitDepth != 16 && bitDepth != 24 && bitDepth != 32 {
		return fmt.Errorf("wavfile: unsupported bit depth %d", bitDepth)
	}
	peak := math.Ldexp(1, bitDepth-1) - 1
	offset := 0
	if bitDepth == 8 {
		offset = 128
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		s = math.Max(-1, math.Min(1, s))
		data[i] = int(math.Round(s*peak)) + offset
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavfile: write: %w", err)
	}
	return enc.Close()
}
