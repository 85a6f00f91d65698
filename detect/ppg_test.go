package detect

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-cardio/internal/testutil"
)

func TestPPGPeaks_BeatCount(t *testing.T) {
	signal := testutil.PPGTrain(75, 30, 0.85)

	cfg := DefaultPPGConfig()

	resampled, peaks, err := PPGPeaks(signal, cfg)
	if err != nil {
		t.Fatalf("PPGPeaks: %v", err)
	}

	if len(peaks) != len(resampled) {
		t.Fatalf("peaks length %d, signal length %d", len(peaks), len(resampled))
	}

	got := len(testutil.TrueIndices(peaks))
	if got < 32 || got > 36 {
		t.Errorf("detected %d beats, want about 35", got)
	}
}

func TestPPGPeaks_IntervalAccuracy(t *testing.T) {
	signal := testutil.PPGTrain(75, 30, 0.85)

	_, peaks, err := PPGPeaks(signal, DefaultPPGConfig())
	if err != nil {
		t.Fatalf("PPGPeaks: %v", err)
	}

	idx := testutil.TrueIndices(peaks)
	for i := 2; i < len(idx)-1; i++ {
		rr := float64(idx[i] - idx[i-1])
		if math.Abs(rr-850) > 60 {
			t.Errorf("interval %d: got %v ms, want about 850", i, rr)
		}
	}
}

func TestPPGPeaks_CleanExtra(t *testing.T) {
	idx := dropShortIntervals([]int{1000, 1150, 2000, 2950}, 300)

	want := []int{1000, 2000, 2950}
	if len(idx) != len(want) {
		t.Fatalf("got %v, want %v", idx, want)
	}

	for i := range want {
		if idx[i] != want[i] {
			t.Errorf("index %d: got %d, want %d", i, idx[i], want[i])
		}
	}
}

func TestPPGPeaks_Validation(t *testing.T) {
	cfg := DefaultPPGConfig()

	if _, _, err := PPGPeaks([]float64{1}, cfg); err == nil {
		t.Error("short signal should error")
	}

	cfg.SFreq = 0

	if _, _, err := PPGPeaks([]float64{1, 2, 3}, cfg); err == nil {
		t.Error("zero rate should error")
	}

	cfg = DefaultPPGConfig()
	cfg.MovingWindowSec = 0

	if _, _, err := PPGPeaks([]float64{1, 2, 3}, cfg); err == nil {
		t.Error("zero window should error")
	}
}
