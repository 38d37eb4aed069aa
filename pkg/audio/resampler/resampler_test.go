package resampler

import (
	"errors"
	"math"
	"testing"
)

func TestResampleSameRate(t *testing.T) {
	in := []float64{0.1, -0.2, 0.3}
	out, err := Resample(in, 16000, 16000)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}
	out[0] = 9
	if in[0] != 0.1 {
		t.Error("Resample aliased its input")
	}
}

func TestResampleDownsample(t *testing.T) {
	const src, dst = 48000, 16000
	in := make([]float64, 2*src)
	for i := range in {
		in[i] = 0.5 * math.Sin(2*math.Pi*440*float64(i)/src)
	}
	out, err := Resample(in, src, dst)
	if err != nil {
		t.Fatal(err)
	}
	want := 2 * dst
	t.Logf("resampled %d -> %d samples", len(in), len(out))
	if len(out) < want*8/10 || len(out) > want*105/100 {
		t.Errorf("len = %d, want about %d", len(out), want)
	}
}

func TestResampleInvalidRate(t *testing.T) {
	if _, err := Resample([]float64{1}, 0, 16000); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("err = %v, want ErrInvalidRate", err)
	}
	if _, err := Resample([]float64{1}, 16000, -1); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("err = %v, want ErrInvalidRate", err)
	}
}
