package frequency

import (
	"math"
	"testing"
)

// modulatedRR builds an RR series whose length oscillates at modHz.
func modulatedRR(n int, baseMs, depthMs, modHz float64) []float64 {
	out := make([]float64, n)

	acc := 0.0
	for i := range out {
		out[i] = baseMs + depthMs*math.Sin(2*math.Pi*modHz*acc)
		acc += out[i] / 1000
	}

	return out
}

func TestCalculate_LFModulation(t *testing.T) {
	rr := modulatedRR(600, 900, 80, 0.1)

	stats, err := Calculate(rr, DefaultConfig())
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	if stats.LF.PowerNu < 80 {
		t.Errorf("LF normalized power: got %v, want > 80", stats.LF.PowerNu)
	}

	if stats.LFHFRatio < 2 {
		t.Errorf("LF/HF ratio: got %v, want > 2", stats.LFHFRatio)
	}

	if math.Abs(stats.LF.Peak-0.1) > 0.02 {
		t.Errorf("LF peak: got %v Hz, want about 0.1", stats.LF.Peak)
	}

	if stats.TotalPower <= 0 {
		t.Errorf("total power: got %v", stats.TotalPower)
	}
}

func TestCalculate_HFModulation(t *testing.T) {
	rr := modulatedRR(600, 900, 60, 0.25)

	stats, err := Calculate(rr, DefaultConfig())
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	if stats.HF.PowerNu < 80 {
		t.Errorf("HF normalized power: got %v, want > 80", stats.HF.PowerNu)
	}

	if stats.LFHFRatio > 0.5 {
		t.Errorf("LF/HF ratio: got %v, want < 0.5", stats.LFHFRatio)
	}

	if math.Abs(stats.HF.Peak-0.25) > 0.03 {
		t.Errorf("HF peak: got %v Hz, want about 0.25", stats.HF.Peak)
	}
}

func TestCalculate_PercentagesSumToFull(t *testing.T) {
	rr := modulatedRR(400, 850, 50, 0.1)

	stats, err := Calculate(rr, DefaultConfig())
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	sum := stats.VLF.PowerPercent + stats.LF.PowerPercent + stats.HF.PowerPercent
	if math.Abs(sum-100) > 1e-9 {
		t.Errorf("band percentages sum: got %v, want 100", sum)
	}

	nu := stats.LF.PowerNu + stats.HF.PowerNu
	if math.Abs(nu-100) > 1e-9 {
		t.Errorf("normalized units sum: got %v, want 100", nu)
	}
}

func TestCalculate_SpectrumExposed(t *testing.T) {
	rr := modulatedRR(400, 850, 50, 0.1)

	stats, err := Calculate(rr, DefaultConfig())
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	if len(stats.Frequencies) == 0 || len(stats.Frequencies) != len(stats.PSD) {
		t.Errorf("spectrum lengths: %d frequencies, %d PSD bins",
			len(stats.Frequencies), len(stats.PSD))
	}
}

func TestCalculate_Validation(t *testing.T) {
	if _, err := Calculate([]float64{800, 810, 790}, DefaultConfig()); err == nil {
		t.Error("too few intervals should error")
	}

	cfg := DefaultConfig()
	cfg.ResampleRate = 0

	if _, err := Calculate(modulatedRR(100, 800, 10, 0.1), cfg); err == nil {
		t.Error("zero resample rate should error")
	}

	cfg = DefaultConfig()
	cfg.SegmentSec = 0

	if _, err := Calculate(modulatedRR(100, 800, 10, 0.1), cfg); err == nil {
		t.Error("zero segment length should error")
	}

	if _, err := Calculate([]float64{800, 810, math.NaN(), 805}, DefaultConfig()); err == nil {
		t.Error("NaN interval should error")
	}
}
