package nonlinear

import (
	"math"
	"testing"
)

func sineRR(n int, depth float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1000 + depth*math.Sin(2*math.Pi*float64(i)/40)
	}

	return out
}

func TestCalculate_PeriodicSeries(t *testing.T) {
	rr := sineRR(300, 100)

	stats, err := Calculate(rr, DefaultConfig())
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	// A noise-free periodic series is almost fully deterministic.
	if stats.Determinism < 90 {
		t.Errorf("determinism: got %v, want > 90", stats.Determinism)
	}

	if stats.RecurrenceRate <= 0 || stats.RecurrenceRate > 100 {
		t.Errorf("recurrence rate out of range: %v", stats.RecurrenceRate)
	}

	// Recurrences of a 40-beat cycle build long diagonal lines.
	if stats.LMax < 20 {
		t.Errorf("longest line: got %v, want >= 20", stats.LMax)
	}

	if stats.LMean < float64(DefaultConfig().LMin) {
		t.Errorf("mean line length below minimum: %v", stats.LMean)
	}

	if stats.ShannonEntropy < 0 {
		t.Errorf("entropy must be non-negative: %v", stats.ShannonEntropy)
	}
}

func TestCalculate_PoincareShape(t *testing.T) {
	// Alternating series: all spread lies across the identity line.
	alternating := make([]float64, 100)
	for i := range alternating {
		alternating[i] = 800
		if i%2 == 1 {
			alternating[i] = 900
		}
	}

	stats, err := Calculate(alternating, DefaultConfig())
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	if stats.SD1 < stats.SD2 {
		t.Errorf("alternating series: SD1 %v should exceed SD2 %v", stats.SD1, stats.SD2)
	}

	// Slow ramp: all spread lies along the identity line.
	ramp := make([]float64, 100)
	for i := range ramp {
		ramp[i] = 700 + 3*float64(i)
	}

	stats, err = Calculate(ramp, DefaultConfig())
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	if stats.SD2 < 10*stats.SD1 {
		t.Errorf("ramp: SD2 %v should dominate SD1 %v", stats.SD2, stats.SD1)
	}
}

func TestCalculate_PoincareIdentity(t *testing.T) {
	rr := sineRR(200, 60)

	stats, err := Calculate(rr, DefaultConfig())
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	// SD1^2 + SD2^2 approximates twice the series variance.
	variance := sampleStd(rr)
	variance *= variance

	got := stats.SD1*stats.SD1 + stats.SD2*stats.SD2
	if math.Abs(got-2*variance) > 0.1*2*variance {
		t.Errorf("SD identity: got %v, want about %v", got, 2*variance)
	}
}

func TestCalculate_FixedRadius(t *testing.T) {
	rr := sineRR(150, 50)

	cfg := DefaultConfig()
	cfg.Radius = 1e-6 // nothing recurs at a vanishing radius

	stats, err := Calculate(rr, cfg)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	if stats.RecurrenceRate != 0 || stats.Determinism != 0 || stats.LMax != 0 {
		t.Errorf("vanishing radius should yield empty recurrence: %+v", stats)
	}
}

func TestCalculate_Validation(t *testing.T) {
	cfg := DefaultConfig()

	if _, err := Calculate(sineRR(10, 10), cfg); err == nil {
		t.Error("series shorter than the embedding should error")
	}

	bad := cfg
	bad.M = 0

	if _, err := Calculate(sineRR(100, 10), bad); err == nil {
		t.Error("zero embedding dimension should error")
	}

	bad = cfg
	bad.LMin = 1

	if _, err := Calculate(sineRR(100, 10), bad); err == nil {
		t.Error("line length below two should error")
	}

	series := sineRR(100, 10)
	series[50] = -1

	if _, err := Calculate(series, cfg); err == nil {
		t.Error("negative interval should error")
	}
}
