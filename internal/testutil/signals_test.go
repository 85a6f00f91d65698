package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1, 100, 1.0, 100)
	if len(s) != 100 {
		t.Fatalf("length: got %d, want 100", len(s))
	}

	// Quarter period of a 1 Hz sine at 100 Hz.
	if math.Abs(s[25]-1) > 1e-9 {
		t.Errorf("peak sample: got %v, want 1", s[25])
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(7, 0.5, 64)
	b := DeterministicNoise(7, 0.5, 64)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed must reproduce, index %d differs", i)
		}

		if math.Abs(a[i]) > 0.5 {
			t.Fatalf("amplitude bound exceeded at %d: %v", i, a[i])
		}
	}
}

func TestECGTrain(t *testing.T) {
	s := ECGTrain(500, 4, 0.8)
	if len(s) != 2000 {
		t.Fatalf("length: got %d, want 2000", len(s))
	}

	RequireFinite(t, s)

	// R-waves stand well above the baseline wander.
	peak := 0.0
	for _, v := range s {
		if v > peak {
			peak = v
		}
	}

	if peak < 0.9 {
		t.Errorf("R-wave amplitude: got %v, want about 1", peak)
	}
}

func TestPPGTrain(t *testing.T) {
	s := PPGTrain(75, 10, 0.85)

	RequireFinite(t, s)

	for i, v := range s {
		if v < 100 || v > 200 {
			t.Errorf("sample %d outside the 8-bit pulse range: %v", i, v)
		}
	}
}

func TestRespSine(t *testing.T) {
	s := RespSine(10, 20, 0.25)
	if len(s) != 200 {
		t.Fatalf("length: got %d, want 200", len(s))
	}

	for _, v := range s {
		if math.Abs(v) > 1 {
			t.Fatalf("amplitude bound exceeded: %v", v)
		}
	}
}
