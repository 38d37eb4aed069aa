package fingerprint

import (
	"errors"
	"math"
	"testing"
)

func TestWindowRectangle(t *testing.T) {
	for _, typ := range []WindowType{"", WindowRectangle} {
		w, err := Window(typ, 5)
		if err != nil {
			t.Fatalf("Window(%q): %v", typ, err)
		}
		for i, v := range w {
			if v != 1 {
				t.Errorf("Window(%q)[%d] = %v, want 1", typ, i, v)
			}
		}
	}
}

func TestWindowHamming(t *testing.T) {
	w, err := Window(WindowHamming, 5)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(w[0]-0.08) > 1e-12 || math.Abs(w[4]-0.08) > 1e-12 {
		t.Errorf("endpoints = %v, %v; want 0.08", w[0], w[4])
	}
	if math.Abs(w[2]-1) > 1e-12 {
		t.Errorf("centre = %v, want 1", w[2])
	}
}

func TestWindowAllTypes(t *testing.T) {
	for typ := range windowFuncs {
		w, err := Window(typ, 240)
		if err != nil {
			t.Errorf("Window(%q): %v", typ, err)
			continue
		}
		if len(w) != 240 {
			t.Errorf("len(Window(%q)) = %d, want 240", typ, len(w))
		}
		one, err := Window(typ, 1)
		if err != nil || len(one) != 1 || one[0] != 1 {
			t.Errorf("Window(%q, 1) = %v, %v; want [1]", typ, one, err)
		}
	}
}

func TestWindowInvalid(t *testing.T) {
	if _, err := Window("kaiser", 8); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("unknown type: err = %v", err)
	}
	if _, err := Window(WindowHann, 0); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("zero length: err = %v", err)
	}
}
