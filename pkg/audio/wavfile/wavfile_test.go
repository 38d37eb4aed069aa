package wavfile

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func writeFile(t *testing.T, samples []float64, sampleRate, bitDepth int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := Write(f, samples, sampleRate, bitDepth); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRoundTrip(t *testing.T) {
	samples := make([]float64, 1600)
	for i := range samples {
		samples[i] = 0.8 * math.Sin(2*math.Pi*440*float64(i)/16000)
	}

	for _, depth := range []int{16, 24} {
		a, err := Load(writeFile(t, samples, 16000, depth))
		if err != nil {
			t.Fatalf("depth %d: %v", depth, err)
		}
		if a.SampleRate != 16000 || a.Channels != 1 || a.BitDepth != depth {
			t.Errorf("depth %d: got rate=%d channels=%d depth=%d", depth, a.SampleRate, a.Channels, a.BitDepth)
		}
		if len(a.Samples) != len(samples) {
			t.Fatalf("depth %d: len = %d, want %d", depth, len(a.Samples), len(samples))
		}
		tol := 2 / math.Ldexp(1, depth-1)
		for i := range samples {
			if math.Abs(a.Samples[i]-samples[i]) > tol {
				t.Fatalf("depth %d: sample %d = %v, want %v", depth, i, a.Samples[i], samples[i])
			}
		}
		if d := a.Duration(); math.Abs(d-0.1) > 1e-9 {
			t.Errorf("Duration() = %v, want 0.1", d)
		}
	}
}

func TestLoadStereoDownmix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stereo.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	enc := wav.NewEncoder(f, 8000, 16, 2, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: 8000},
		Data:           []int{16384, 0, -16384, -16384, 8192, 24576},
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	a, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0.25, -0.5, 0.5}
	if a.Channels != 2 || len(a.Samples) != len(want) {
		t.Fatalf("channels=%d len=%d, want 2 and %d", a.Channels, len(a.Samples), len(want))
	}
	for i, w := range want {
		if math.Abs(a.Samples[i]-w) > 1e-12 {
			t.Errorf("sample %d = %v, want %v", i, a.Samples[i], w)
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("definitely not a wav file")))
	if !errors.Is(err, ErrInvalidFile) {
		t.Errorf("err = %v, want ErrInvalidFile", err)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Error("Load of missing file succeeded")
	}
}

func TestWriteUnsupportedDepth(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "x.wav"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := Write(f, []float64{0}, 8000, 12); err == nil {
		t.Error("Write accepted 12-bit depth")
	}
}
