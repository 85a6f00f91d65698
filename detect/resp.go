package detect

import (
	"fmt"

	"github.com/cwbudde/algo-cardio/dsp/biquad"
)

// RespConfig holds respiration cycle detection parameters.
type RespConfig struct {
	SFreq float64 // input sampling rate in Hz

	CutoffHz    float64 // lowpass cutoff isolating the breathing band
	MinCycleSec float64 // minimum distance between successive peaks or troughs
}

// DefaultRespConfig returns defaults suited to resting breathing rates.
func DefaultRespConfig() RespConfig {
	return RespConfig{
		SFreq:       1000,
		CutoffHz:    1,
		MinCycleSec: 1.5,
	}
}

// RespPeaks locates inhalation peaks and exhalation troughs in a
// respiration signal. Both masks have the length of the input signal.
//
// The signal is lowpass filtered in both directions so the extrema stay
// aligned with the raw trace; peaks and troughs then alternate by
// construction.
func RespPeaks(signal []float64, cfg RespConfig) (peaks, troughs []bool, err error) {
	if len(signal) < 3 {
		return nil, nil, fmt.Errorf("detect: respiration signal too short: %d samples", len(signal))
	}

	if cfg.SFreq <= 0 {
		return nil, nil, fmt.Errorf("detect: sampling rate must be > 0: %v", cfg.SFreq)
	}

	if cfg.CutoffHz <= 0 || cfg.CutoffHz >= cfg.SFreq/2 {
		return nil, nil, fmt.Errorf("detect: cutoff %v Hz outside (0, %v)", cfg.CutoffHz, cfg.SFreq/2)
	}

	coeffs := []biquad.Coefficients{biquad.Lowpass(cfg.CutoffHz, 0.7071, cfg.SFreq)}

	smoothed, err := biquad.FiltFilt(coeffs, signal)
	if err != nil {
		return nil, nil, err
	}

	minDist := int(cfg.MinCycleSec * cfg.SFreq)
	if minDist < 1 {
		minDist = 1
	}

	peaks = make([]bool, len(signal))
	troughs = make([]bool, len(signal))

	lastPeak := -minDist
	lastTrough := -minDist

	for i := 1; i < len(smoothed)-1; i++ {
		if smoothed[i] > smoothed[i-1] && smoothed[i] >= smoothed[i+1] && i-lastPeak >= minDist {
			peaks[i] = true
			lastPeak = i
		}

		if smoothed[i] < smoothed[i-1] && smoothed[i] <= smoothed[i+1] && i-lastTrough >= minDist {
			troughs[i] = true
			lastTrough = i
		}
	}

	return peaks, troughs, nil
}
