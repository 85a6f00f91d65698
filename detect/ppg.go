package detect

import (
	"fmt"
	"math"
)

// PPGConfig holds systolic-peak detection parameters for pulse oximetry.
type PPGConfig struct {
	SFreq float64 // input sampling rate in Hz

	// Clipping bounds of the recording device. When HandleClipping is set,
	// samples at the bounds are replaced by interpolation first.
	HandleClipping bool
	ClippingMin    float64
	ClippingMax    float64

	MovingWindowSec float64 // rolling-mean window for detrending and thresholding
	RefractoryMs    float64 // minimum distance between accepted beats

	// CleanExtra drops detections that produce implausibly short intervals.
	CleanExtra bool
	MinRRMs    float64
}

// DefaultPPGConfig returns the defaults for a 75 Hz pulse oximeter with an
// 8-bit output range.
func DefaultPPGConfig() PPGConfig {
	return PPGConfig{
		SFreq:           75,
		HandleClipping:  true,
		ClippingMin:     0,
		ClippingMax:     255,
		MovingWindowSec: 0.75,
		RefractoryMs:    200,
		CleanExtra:      true,
		MinRRMs:         300,
	}
}

// PPGPeaks locates systolic peaks in a photoplethysmogram.
//
// The pipeline interpolates clipped segments, resamples to 1 kHz, removes a
// rolling mean, squares the positive part and accepts local maxima above a
// moving mean-plus-deviation threshold, with a refractory period between
// beats. The returned peaks vector matches the returned resampled signal.
func PPGPeaks(signal []float64, cfg PPGConfig) ([]float64, []bool, error) {
	if len(signal) < 2 {
		return nil, nil, fmt.Errorf("detect: PPG signal too short: %d samples", len(signal))
	}

	if cfg.SFreq <= 0 {
		return nil, nil, fmt.Errorf("detect: sampling rate must be > 0: %v", cfg.SFreq)
	}

	if cfg.MovingWindowSec <= 0 {
		return nil, nil, fmt.Errorf("detect: moving window must be > 0: %v", cfg.MovingWindowSec)
	}

	work := signal

	if cfg.HandleClipping {
		var err error

		work, err = InterpolateClipping(signal, cfg.ClippingMin, cfg.ClippingMax)
		if err != nil {
			return nil, nil, err
		}
	}

	resampled, err := resampleTo(work, cfg.SFreq, detectRate)
	if err != nil {
		return nil, nil, err
	}

	window := int(cfg.MovingWindowSec * detectRate)

	// Detrend, keep the positive part and square to sharpen the systolic
	// upstroke against the dicrotic notch.
	detrended := make([]float64, len(resampled))

	trend := movingMean(resampled, window)
	for i, v := range resampled {
		d := v - trend[i]
		if d < 0 {
			d = 0
		}

		detrended[i] = d * d
	}

	threshold := movingMean(detrended, window)
	dev := movingDeviation(detrended, threshold, window)

	refractory := int(cfg.RefractoryMs)
	if refractory <= 0 {
		refractory = 200
	}

	var idx []int

	last := -refractory

	for i := 1; i < len(detrended)-1; i++ {
		if !(detrended[i] > detrended[i-1] && detrended[i] >= detrended[i+1]) {
			continue
		}

		if detrended[i] <= threshold[i]+dev[i] {
			continue
		}

		if i-last < refractory {
			continue
		}

		idx = append(idx, i)
		last = i
	}

	idx = snapToLocalMax(resampled, idx, 100)

	if cfg.CleanExtra {
		idx = dropShortIntervals(idx, cfg.MinRRMs)
	}

	peaks := make([]bool, len(resampled))
	for _, i := range idx {
		peaks[i] = true
	}

	return resampled, peaks, nil
}

// dropShortIntervals removes detections closer than minRR milliseconds to
// their predecessor, keeping the earlier beat.
func dropShortIntervals(idx []int, minRR float64) []int {
	if len(idx) < 2 {
		return idx
	}

	out := idx[:1]
	for _, i := range idx[1:] {
		if float64(i-out[len(out)-1]) < minRR {
			continue
		}

		out = append(out, i)
	}

	return out
}

// movingDeviation returns the centered moving mean absolute deviation from
// a reference series.
func movingDeviation(x, ref []float64, window int) []float64 {
	dev := make([]float64, len(x))
	for i := range x {
		dev[i] = math.Abs(x[i] - ref[i])
	}

	return movingMean(dev, window)
}
