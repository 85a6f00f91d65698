package detect

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-cardio/internal/testutil"
)

func TestECGPeaks_AllMethods(t *testing.T) {
	signal := testutil.ECGTrain(500, 10, 0.8)

	wantBeats := 12

	for method := range methodNames {
		cfg := DefaultECGConfig()
		cfg.SFreq = 500
		cfg.Method = method

		resampled, peaks, err := ECGPeaks(signal, cfg)
		if err != nil {
			t.Fatalf("%s: %v", method, err)
		}

		if len(peaks) != len(resampled) {
			t.Fatalf("%s: peaks length %d, signal length %d", method, len(peaks), len(resampled))
		}

		got := len(testutil.TrueIndices(peaks))
		if got < wantBeats-2 || got > wantBeats+1 {
			t.Errorf("%s: detected %d beats, want about %d", method, got, wantBeats)
		}
	}
}

func TestECGPeaks_PanTompkinsTiming(t *testing.T) {
	signal := testutil.ECGTrain(500, 10, 0.8)

	cfg := DefaultECGConfig()
	cfg.SFreq = 500

	_, peaks, err := ECGPeaks(signal, cfg)
	if err != nil {
		t.Fatalf("ECGPeaks: %v", err)
	}

	idx := testutil.TrueIndices(peaks)
	if len(idx) < 4 {
		t.Fatalf("too few detections: %d", len(idx))
	}

	// Interior RR intervals read directly in milliseconds at 1 kHz.
	for i := 2; i < len(idx)-1; i++ {
		rr := float64(idx[i] - idx[i-1])
		if math.Abs(rr-800) > 30 {
			t.Errorf("interval %d: got %v ms, want about 800", i, rr)
		}
	}

	// Snapped detections should sit on the R-wave crest.
	for _, i := range idx[1 : len(idx)-1] {
		phase := math.Mod(float64(i)-400, 800)
		if phase > 400 {
			phase -= 800
		}

		if math.Abs(phase) > 30 {
			t.Errorf("detection at %d ms is %v ms off the R-wave", i, phase)
		}
	}
}

func TestECGPeaks_ResamplesTo1kHz(t *testing.T) {
	signal := testutil.ECGTrain(250, 4, 0.8)

	cfg := DefaultECGConfig()
	cfg.SFreq = 250

	resampled, _, err := ECGPeaks(signal, cfg)
	if err != nil {
		t.Fatalf("ECGPeaks: %v", err)
	}

	// 4 s at 1 kHz, inclusive grid.
	want := 3997
	if len(resampled) < want-5 || len(resampled) > want+5 {
		t.Errorf("resampled length: got %d, want about %d", len(resampled), want)
	}
}

func TestECGPeaks_UnknownMethod(t *testing.T) {
	cfg := DefaultECGConfig()
	cfg.Method = Method(99)

	if _, _, err := ECGPeaks(testutil.ECGTrain(500, 2, 0.8), cfg); err == nil {
		t.Error("unknown method should error")
	}

	if _, err := ParseMethod("badmethod"); err == nil {
		t.Error("unknown method name should error")
	}
}

func TestECGPeaks_Validation(t *testing.T) {
	cfg := DefaultECGConfig()

	if _, _, err := ECGPeaks([]float64{1}, cfg); err == nil {
		t.Error("short signal should error")
	}

	cfg.SFreq = 0

	if _, _, err := ECGPeaks([]float64{1, 2, 3}, cfg); err == nil {
		t.Error("zero rate should error")
	}
}

func TestParseMethod_RoundTrip(t *testing.T) {
	for m, name := range methodNames {
		got, err := ParseMethod(name)
		if err != nil {
			t.Fatalf("ParseMethod(%q): %v", name, err)
		}

		if got != m {
			t.Errorf("ParseMethod(%q): got %v", name, got)
		}

		if m.String() != name {
			t.Errorf("String: got %q, want %q", m.String(), name)
		}
	}
}
