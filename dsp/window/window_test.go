package window

import (
	"math"
	"testing"
)

func TestGenerate_Hann(t *testing.T) {
	coeffs := Generate(TypeHann, 9)
	if len(coeffs) != 9 {
		t.Fatalf("length: got %d, want 9", len(coeffs))
	}

	// Symmetric form: endpoints zero, midpoint one.
	if math.Abs(coeffs[0]) > 1e-15 || math.Abs(coeffs[8]) > 1e-15 {
		t.Errorf("endpoints should be 0: got %v, %v", coeffs[0], coeffs[8])
	}

	if math.Abs(coeffs[4]-1) > 1e-15 {
		t.Errorf("midpoint should be 1: got %v", coeffs[4])
	}

	for i := 0; i < 4; i++ {
		if math.Abs(coeffs[i]-coeffs[8-i]) > 1e-15 {
			t.Errorf("symmetry broken at %d: %v != %v", i, coeffs[i], coeffs[8-i])
		}
	}
}

func TestGenerate_Periodic(t *testing.T) {
	sym := Generate(TypeHann, 8)
	per := Generate(TypeHann, 8, WithPeriodic())

	// Periodic form of length N equals symmetric form of length N+1 truncated.
	symLong := Generate(TypeHann, 9)
	for i := range per {
		if math.Abs(per[i]-symLong[i]) > 1e-15 {
			t.Errorf("periodic mismatch at %d: got %v, want %v", i, per[i], symLong[i])
		}
	}

	if math.Abs(sym[7]) > 1e-15 && math.Abs(per[7]) <= 1e-15 {
		t.Error("expected different tails for symmetric vs periodic")
	}
}

func TestGenerate_Rectangular(t *testing.T) {
	for _, v := range Generate(TypeRectangular, 16) {
		if v != 1 {
			t.Fatalf("rectangular coefficient: got %v, want 1", v)
		}
	}
}

func TestGenerate_InvalidLength(t *testing.T) {
	if Generate(TypeHann, 0) != nil {
		t.Error("zero length should return nil")
	}

	if Generate(TypeHann, -3) != nil {
		t.Error("negative length should return nil")
	}
}

func TestHammingEndpoints(t *testing.T) {
	coeffs, err := Hamming(11)
	if err != nil {
		t.Fatalf("Hamming: %v", err)
	}

	// Hamming does not reach zero at the edges.
	if math.Abs(coeffs[0]-0.08) > 1e-12 {
		t.Errorf("edge value: got %v, want 0.08", coeffs[0])
	}
}

func TestTukey_AlphaExtremes(t *testing.T) {
	rect, err := Tukey(32, 0)
	if err != nil {
		t.Fatalf("Tukey(0): %v", err)
	}

	for _, v := range rect {
		if v != 1 {
			t.Fatal("alpha=0 should be rectangular")
		}
	}

	hannLike, err := Tukey(32, 1)
	if err != nil {
		t.Fatalf("Tukey(1): %v", err)
	}

	hann := Generate(TypeHann, 32)
	for i := range hann {
		if math.Abs(hannLike[i]-hann[i]) > 1e-12 {
			t.Fatalf("alpha=1 should equal Hann at %d", i)
		}
	}

	if _, err := Tukey(32, 1.5); err == nil {
		t.Error("alpha > 1 should error")
	}
}

func TestEquivalentNoiseBandwidth(t *testing.T) {
	rect := Generate(TypeRectangular, 64)

	enbw, err := EquivalentNoiseBandwidth(rect)
	if err != nil {
		t.Fatalf("ENBW: %v", err)
	}

	if math.Abs(enbw-1) > 1e-12 {
		t.Errorf("rectangular ENBW: got %v, want 1", enbw)
	}

	hann := Generate(TypeHann, 4096)

	enbw, err = EquivalentNoiseBandwidth(hann)
	if err != nil {
		t.Fatalf("ENBW: %v", err)
	}

	// Hann ENBW is 1.5 bins asymptotically.
	if math.Abs(enbw-1.5) > 1e-3 {
		t.Errorf("hann ENBW: got %v, want ~1.5", enbw)
	}

	if _, err := EquivalentNoiseBandwidth(nil); err == nil {
		t.Error("empty coefficients should error")
	}
}

func TestPowerGain(t *testing.T) {
	rect := Generate(TypeRectangular, 128)

	gain, err := PowerGain(rect)
	if err != nil {
		t.Fatalf("PowerGain: %v", err)
	}

	if math.Abs(gain-1) > 1e-12 {
		t.Errorf("rectangular power gain: got %v, want 1", gain)
	}
}

func TestApplyCoefficients(t *testing.T) {
	samples := []float64{1, 2, 3, 4}
	coeffs := []float64{2, 2, 2, 2}

	out, err := ApplyCoefficients(samples, coeffs)
	if err != nil {
		t.Fatalf("ApplyCoefficients: %v", err)
	}

	want := []float64{2, 4, 6, 8}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("index %d: got %v, want %v", i, out[i], want[i])
		}
	}

	if _, err := ApplyCoefficients(samples, coeffs[:2]); err == nil {
		t.Error("length mismatch should error")
	}
}
