package detect

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-cardio/dsp/biquad"
	"github.com/cwbudde/algo-cardio/dsp/interp"
)

// detectRate is the common working rate: all detectors resample their input
// to 1 kHz, so sample indices double as milliseconds.
const detectRate = 1000.0

// ECGConfig holds R-peak detection parameters.
type ECGConfig struct {
	SFreq  float64 // input sampling rate in Hz
	Method Method

	// FindLocal snaps each detection to the signal maximum within
	// LocalWindowMs around it.
	FindLocal     bool
	LocalWindowMs float64
}

// DefaultECGConfig returns Pan-Tompkins detection with local-maximum
// snapping over a 100 ms window.
func DefaultECGConfig() ECGConfig {
	return ECGConfig{
		SFreq:         1000,
		Method:        MethodPanTompkins,
		FindLocal:     true,
		LocalWindowMs: 100,
	}
}

// ECGPeaks locates R-peaks in a single-lead ECG.
//
// The signal is resampled to 1 kHz before detection, so the returned peaks
// vector matches the returned resampled signal and peak-to-peak sample
// distances are RR intervals in milliseconds.
func ECGPeaks(signal []float64, cfg ECGConfig) ([]float64, []bool, error) {
	if len(signal) < 2 {
		return nil, nil, fmt.Errorf("detect: ECG signal too short: %d samples", len(signal))
	}

	if cfg.SFreq <= 0 {
		return nil, nil, fmt.Errorf("detect: sampling rate must be > 0: %v", cfg.SFreq)
	}

	if _, ok := methodNames[cfg.Method]; !ok {
		return nil, nil, fmt.Errorf("detect: unknown ECG method %q", cfg.Method)
	}

	resampled, err := resampleTo(signal, cfg.SFreq, detectRate)
	if err != nil {
		return nil, nil, err
	}

	var idx []int

	switch cfg.Method {
	case MethodPanTompkins:
		idx, err = panTompkins(resampled)
	case MethodHamilton:
		idx, err = hamilton(resampled)
	case MethodChristov:
		idx, err = christov(resampled)
	case MethodEngelseZeelenberg:
		idx, err = engelseZeelenberg(resampled)
	case MethodMovingAverage:
		idx, err = movingAverageDetector(resampled)
	}

	if err != nil {
		return nil, nil, err
	}

	if cfg.FindLocal {
		window := int(cfg.LocalWindowMs)
		if window <= 0 {
			window = 100
		}

		idx = snapToLocalMax(resampled, idx, window)
	}

	peaks := make([]bool, len(resampled))
	for _, i := range idx {
		peaks[i] = true
	}

	return resampled, peaks, nil
}

// panTompkins implements the classic bandpass, derivative, squaring and
// moving-window-integration chain with adaptive signal/noise thresholds
// (Pan & Tompkins 1985).
func panTompkins(sig []float64) ([]int, error) {
	coeffs := biquad.ButterworthBP(5, 15, 2, detectRate)

	filtered, err := biquad.FiltFilt(coeffs, sig)
	if err != nil {
		return nil, err
	}

	deriv := centralDiff(filtered)
	vecmath.MulBlockInPlace(deriv, deriv)

	integrated := movingMean(deriv, 150)

	return adaptiveSearch(integrated, 300), nil
}

// hamilton rectifies an 8-16 Hz band before a short integration window
// (Hamilton 2002).
func hamilton(sig []float64) ([]int, error) {
	coeffs := biquad.ButterworthBP(8, 16, 2, detectRate)

	filtered, err := biquad.FiltFilt(coeffs, sig)
	if err != nil {
		return nil, err
	}

	for i, v := range filtered {
		filtered[i] = math.Abs(v)
	}

	integrated := movingMean(filtered, 80)

	return adaptiveSearch(integrated, 300), nil
}

// christov smooths the rectified slope with two cascaded moving averages
// before thresholding (Christov 2004).
func christov(sig []float64) ([]int, error) {
	coeffs := biquad.ButterworthBP(1, 40, 2, detectRate)

	filtered, err := biquad.FiltFilt(coeffs, sig)
	if err != nil {
		return nil, err
	}

	slope := centralDiff(filtered)
	for i, v := range slope {
		slope[i] = math.Abs(v)
	}

	smoothed := movingMean(movingMean(slope, 28), 50)

	return adaptiveSearch(smoothed, 300), nil
}

// engelseZeelenberg differentiates over four samples and smooths with a
// binomial kernel (Engelse & Zeelenberg 1979).
func engelseZeelenberg(sig []float64) ([]int, error) {
	n := len(sig)

	diff4 := make([]float64, n)
	for i := 4; i < n; i++ {
		diff4[i] = sig[i] - sig[i-4]
	}

	// Binomial lowpass, zero-phase by construction.
	kernel := []float64{1, 4, 6, 4, 1}

	smoothed := make([]float64, n)
	for i := range smoothed {
		acc, norm := 0.0, 0.0

		for k, w := range kernel {
			j := i + k - 2
			if j < 0 || j >= n {
				continue
			}

			acc += w * diff4[j]
			norm += w
		}

		smoothed[i] = math.Abs(acc / norm)
	}

	return adaptiveSearch(smoothed, 300), nil
}

// movingAverageDetector marks QRS complexes where a short moving average of
// the squared band signal exceeds a long one (Elgendi 2013, two-event-window
// method).
func movingAverageDetector(sig []float64) ([]int, error) {
	coeffs := biquad.ButterworthBP(8, 20, 2, detectRate)

	filtered, err := biquad.FiltFilt(coeffs, sig)
	if err != nil {
		return nil, err
	}

	squared := make([]float64, len(filtered))
	vecmath.MulBlock(squared, filtered, filtered)

	maQRS := movingMean(squared, 120)
	maBeat := movingMean(squared, 600)

	level := 0.0
	for _, v := range squared {
		level += v
	}

	level /= float64(len(squared))

	var idx []int

	inBlock := false
	start := 0

	for i := range maQRS {
		above := maQRS[i] > maBeat[i]+0.08*level

		switch {
		case above && !inBlock:
			inBlock = true
			start = i
		case !above && inBlock:
			inBlock = false

			if i-start >= 80 {
				idx = append(idx, argmax(squared[start:i])+start)
			}
		}
	}

	if inBlock && len(maQRS)-start >= 80 {
		idx = append(idx, argmax(squared[start:])+start)
	}

	return idx, nil
}

// adaptiveSearch walks the local maxima of a non-negative detection
// function, keeping running signal and noise levels (SPKI/NPKI in the
// Pan-Tompkins nomenclature) and accepting maxima above the adaptive
// threshold outside the refractory period.
func adaptiveSearch(x []float64, refractory int) []int {
	n := len(x)
	if n < 3 {
		return nil
	}

	// Seed the levels from the first two seconds.
	warmup := n
	if warmup > 2000 {
		warmup = 2000
	}

	peak, mean := 0.0, 0.0
	for _, v := range x[:warmup] {
		if v > peak {
			peak = v
		}

		mean += v
	}

	mean /= float64(warmup)

	signalLevel := 0.5 * peak
	noiseLevel := 0.5 * mean

	var idx []int

	last := -refractory

	for i := 1; i < n-1; i++ {
		if !(x[i] > x[i-1] && x[i] >= x[i+1]) {
			continue
		}

		threshold := noiseLevel + 0.25*(signalLevel-noiseLevel)

		if x[i] > threshold && i-last >= refractory {
			idx = append(idx, i)
			last = i
			signalLevel = 0.125*x[i] + 0.875*signalLevel

			continue
		}

		noiseLevel = 0.125*x[i] + 0.875*noiseLevel
	}

	return idx
}

// snapToLocalMax moves each index to the signal maximum within +/-window
// samples. Duplicate targets collapse.
func snapToLocalMax(sig []float64, idx []int, window int) []int {
	out := make([]int, 0, len(idx))

	for _, i := range idx {
		lo := i - window
		if lo < 0 {
			lo = 0
		}

		hi := i + window + 1
		if hi > len(sig) {
			hi = len(sig)
		}

		best := argmax(sig[lo:hi]) + lo

		if len(out) == 0 || out[len(out)-1] != best {
			out = append(out, best)
		}
	}

	return out
}

func argmax(x []float64) int {
	best := 0
	for i, v := range x {
		if v > x[best] {
			best = i
		}
	}

	return best
}

// centralDiff returns the two-sided first derivative, zero at the edges.
func centralDiff(x []float64) []float64 {
	n := len(x)

	out := make([]float64, n)
	for i := 1; i < n-1; i++ {
		out[i] = (x[i+1] - x[i-1]) / 2
	}

	return out
}

// movingMean returns the centered moving average over window samples.
func movingMean(x []float64, window int) []float64 {
	n := len(x)
	half := window / 2
	out := make([]float64, n)

	// Prefix sums keep the sweep linear.
	prefix := make([]float64, n+1)
	for i, v := range x {
		prefix[i+1] = prefix[i] + v
	}

	for i := range out {
		lo := i - half
		if lo < 0 {
			lo = 0
		}

		hi := i + half + 1
		if hi > n {
			hi = n
		}

		out[i] = (prefix[hi] - prefix[lo]) / float64(hi-lo)
	}

	return out
}

// resampleTo interpolates the signal onto a uniform grid at the target rate.
func resampleTo(signal []float64, sfreq, target float64) ([]float64, error) {
	if sfreq == target {
		out := make([]float64, len(signal))
		copy(out, signal)

		return out, nil
	}

	x := make([]float64, len(signal))
	for i := range x {
		x[i] = float64(i) / sfreq
	}

	_, out, err := interp.Uniform(x, signal, 1/target, interp.KindCubic)
	if err != nil {
		return nil, fmt.Errorf("detect: resampling failed: %w", err)
	}

	return out, nil
}
