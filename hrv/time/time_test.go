package time

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestCalculate_ConstantSeries(t *testing.T) {
	rr := []float64{800, 800, 800, 800}

	stats, err := Calculate(rr)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	if stats.MeanRR != 800 || stats.MedianRR != 800 || stats.MinRR != 800 || stats.MaxRR != 800 {
		t.Errorf("interval stats: %+v", stats)
	}

	if !almostEqual(stats.MeanBPM, 75, 1e-12) {
		t.Errorf("MeanBPM: got %v, want 75", stats.MeanBPM)
	}

	if stats.SDNN != 0 || stats.SDSD != 0 || stats.RMSSD != 0 {
		t.Errorf("spread of a constant series must be zero: %+v", stats)
	}

	if stats.NN50 != 0 || stats.PNN50 != 0 {
		t.Errorf("NN50 of a constant series must be zero: %+v", stats)
	}
}

func TestCalculate_KnownValues(t *testing.T) {
	rr := []float64{800, 860, 790, 900}

	stats, err := Calculate(rr)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	if !almostEqual(stats.MeanRR, 837.5, 1e-9) {
		t.Errorf("MeanRR: got %v, want 837.5", stats.MeanRR)
	}

	if !almostEqual(stats.MedianRR, 830, 1e-9) {
		t.Errorf("MedianRR: got %v, want 830", stats.MedianRR)
	}

	if stats.MinRR != 790 || stats.MaxRR != 900 {
		t.Errorf("MinRR/MaxRR: got %v/%v", stats.MinRR, stats.MaxRR)
	}

	// Diffs: 60, -70, 110.
	wantRMSSD := math.Sqrt((60.0*60 + 70*70 + 110*110) / 3)
	if !almostEqual(stats.RMSSD, wantRMSSD, 1e-9) {
		t.Errorf("RMSSD: got %v, want %v", stats.RMSSD, wantRMSSD)
	}

	if stats.NN50 != 3 {
		t.Errorf("NN50: got %d, want 3", stats.NN50)
	}

	if !almostEqual(stats.PNN50, 100, 1e-9) {
		t.Errorf("PNN50: got %v, want 100", stats.PNN50)
	}

	if stats.NN20 != 3 || !almostEqual(stats.PNN20, 100, 1e-9) {
		t.Errorf("NN20/PNN20: got %d/%v", stats.NN20, stats.PNN20)
	}

	// Sample standard deviation with one delta degree of freedom.
	wantSDNN := math.Sqrt(((800-837.5)*(800-837.5) + (860-837.5)*(860-837.5) +
		(790-837.5)*(790-837.5) + (900-837.5)*(900-837.5)) / 3)
	if !almostEqual(stats.SDNN, wantSDNN, 1e-9) {
		t.Errorf("SDNN: got %v, want %v", stats.SDNN, wantSDNN)
	}
}

func TestCalculate_BPMBounds(t *testing.T) {
	rr := []float64{500, 1000}

	stats, err := Calculate(rr)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	// Shortest interval gives the fastest rate.
	if !almostEqual(stats.MaxBPM, 120, 1e-12) || !almostEqual(stats.MinBPM, 60, 1e-12) {
		t.Errorf("BPM bounds: got %v..%v, want 60..120", stats.MinBPM, stats.MaxBPM)
	}
}

func TestCalculate_Validation(t *testing.T) {
	if _, err := Calculate([]float64{800}); err == nil {
		t.Error("single interval should error")
	}

	if _, err := Calculate([]float64{800, -5}); err == nil {
		t.Error("negative interval should error")
	}

	if _, err := Calculate([]float64{800, math.NaN()}); err == nil {
		t.Error("NaN interval should error")
	}
}
