package rr

import "fmt"

// EpochConfig holds epoching parameters. Times are in seconds relative to
// the event onset.
type EpochConfig struct {
	SFreq    float64     // signal sampling rate in Hz
	TMin     float64     // epoch start, usually negative
	TMax     float64     // epoch end
	Baseline *[2]float64 // optional baseline window for mean subtraction
	Reject   []bool      // optional artefact mask, same length as signal
}

// DefaultEpochConfig returns the defaults: 1 kHz, -1 s to +10 s, no baseline,
// no rejection.
func DefaultEpochConfig() EpochConfig {
	return EpochConfig{SFreq: 1000, TMin: -1, TMax: 10}
}

// ToEpochs slices a continuous signal around event onsets.
//
// Each onset is a sample position. Epochs that would extend past the signal
// bounds, or that overlap a true sample of the rejection mask, are dropped;
// the returned rejected vector has one entry per onset and marks the dropped
// ones. With a baseline window, the mean of that window is subtracted from
// the epoch.
func ToEpochs(signal []float64, onsets []int, cfg EpochConfig) (epochs [][]float64, rejected []bool, err error) {
	if len(signal) == 0 {
		return nil, nil, fmt.Errorf("rr: empty signal")
	}

	if cfg.SFreq <= 0 {
		return nil, nil, fmt.Errorf("rr: sampling rate must be > 0: %f", cfg.SFreq)
	}

	if cfg.TMin >= cfg.TMax {
		return nil, nil, fmt.Errorf("rr: tmin %f must be below tmax %f", cfg.TMin, cfg.TMax)
	}

	if cfg.Reject != nil && len(cfg.Reject) != len(signal) {
		return nil, nil, fmt.Errorf("rr: rejection mask length %d does not match signal length %d", len(cfg.Reject), len(signal))
	}

	lo := int(cfg.TMin * cfg.SFreq)
	hi := int(cfg.TMax * cfg.SFreq)

	rejected = make([]bool, len(onsets))

	for k, onset := range onsets {
		start := onset + lo
		end := onset + hi

		if start < 0 || end > len(signal) {
			rejected[k] = true
			continue
		}

		if cfg.Reject != nil && anyTrue(cfg.Reject[start:end]) {
			rejected[k] = true
			continue
		}

		epoch := make([]float64, end-start)
		copy(epoch, signal[start:end])

		if cfg.Baseline != nil {
			b0 := onset + int(cfg.Baseline[0]*cfg.SFreq)
			b1 := onset + int(cfg.Baseline[1]*cfg.SFreq)

			if b0 < 0 || b1 > len(signal) || b0 >= b1 {
				rejected[k] = true
				continue
			}

			mean := 0.0
			for _, v := range signal[b0:b1] {
				mean += v
			}

			mean /= float64(b1 - b0)
			for i := range epoch {
				epoch[i] -= mean
			}
		}

		epochs = append(epochs, epoch)
	}

	return epochs, rejected, nil
}

// OnsetsFromTriggers returns the sample positions where the trigger vector
// equals the event value.
func OnsetsFromTriggers(triggers []float64, eventVal float64) []int {
	var onsets []int

	for i, v := range triggers {
		if v == eventVal {
			onsets = append(onsets, i)
		}
	}

	return onsets
}

func anyTrue(mask []bool) bool {
	for _, v := range mask {
		if v {
			return true
		}
	}

	return false
}
