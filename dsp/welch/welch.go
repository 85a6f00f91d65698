package welch

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-cardio/dsp/window"
)

// Config holds Welch estimation parameters.
type Config struct {
	SampleRate    float64
	SegmentLength int
	Overlap       float64 // fraction of segment length, [0, 1)
	WindowType    window.Type
	Detrend       bool
}

// DefaultConfig returns the defaults used when fields are zero: Hann window,
// 50% overlap, mean detrending, segment length 256.
func DefaultConfig(sampleRate float64) Config {
	return Config{
		SampleRate:    sampleRate,
		SegmentLength: 256,
		Overlap:       0.5,
		WindowType:    window.TypeHann,
		Detrend:       true,
	}
}

// Result holds a one-sided power spectral density estimate.
type Result struct {
	Frequencies []float64 // Hz, DC to Nyquist
	PSD         []float64 // power per Hz
	Segments    int
}

// Estimate computes the Welch PSD of the signal.
//
// The signal is split into overlapping segments; each segment is detrended
// (optional), windowed, transformed, and the squared magnitudes are averaged.
// Scaling yields a one-sided density: integrating PSD over frequency
// approximates the signal variance.
func Estimate(signal []float64, cfg Config) (Result, error) {
	if cfg.SampleRate <= 0 {
		return Result{}, fmt.Errorf("welch: sample rate must be > 0: %f", cfg.SampleRate)
	}

	segLen := cfg.SegmentLength
	if segLen <= 0 {
		segLen = 256
	}

	if len(signal) < segLen {
		segLen = len(signal)
	}

	if segLen < 8 {
		return Result{}, fmt.Errorf("welch: signal too short: %d samples", len(signal))
	}

	if cfg.Overlap < 0 || cfg.Overlap >= 1 {
		return Result{}, fmt.Errorf("welch: overlap must be in [0, 1): %f", cfg.Overlap)
	}

	step := segLen - int(float64(segLen)*cfg.Overlap)
	if step < 1 {
		step = 1
	}

	fftSize := nextPowerOf2(segLen)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, fmt.Errorf("welch: fft plan: %w", err)
	}

	coeffs := window.Generate(cfg.WindowType, segLen, window.WithPeriodic())

	powerGain, err := window.PowerGain(coeffs)
	if err != nil {
		return Result{}, fmt.Errorf("welch: window power gain: %w", err)
	}

	binCount := fftSize/2 + 1
	acc := make([]float64, binCount)
	inData := make([]complex128, fftSize)
	out := make([]complex128, fftSize)
	segment := make([]float64, segLen)

	segments := 0
	for start := 0; start+segLen <= len(signal); start += step {
		copy(segment, signal[start:start+segLen])

		if cfg.Detrend {
			removeMean(segment)
		}

		for i := range inData {
			inData[i] = 0
		}

		for i, v := range segment {
			inData[i] = complex(v*coeffs[i], 0)
		}

		if err := plan.Forward(out, inData); err != nil {
			return Result{}, fmt.Errorf("welch: fft forward: %w", err)
		}

		for i := 0; i < binCount; i++ {
			re := real(out[i])
			im := imag(out[i])
			acc[i] += re*re + im*im
		}

		segments++
	}

	if segments == 0 {
		return Result{}, fmt.Errorf("welch: no complete segment in %d samples", len(signal))
	}

	// One-sided density scaling. Interior bins carry the power of their
	// negative-frequency twins.
	scale := 1 / (cfg.SampleRate * powerGain * float64(segLen) * float64(segments))

	psd := make([]float64, binCount)
	for i := range psd {
		psd[i] = acc[i] * scale
		if i > 0 && i < binCount-1 {
			psd[i] *= 2
		}
	}

	freqs := make([]float64, binCount)
	df := cfg.SampleRate / float64(fftSize)

	for i := range freqs {
		freqs[i] = float64(i) * df
	}

	return Result{Frequencies: freqs, PSD: psd, Segments: segments}, nil
}

// BandPower integrates the PSD over [lowHz, highHz) with the trapezoid rule.
func BandPower(res Result, lowHz, highHz float64) float64 {
	if len(res.Frequencies) < 2 || lowHz >= highHz {
		return 0
	}

	power := 0.0
	for i := 1; i < len(res.Frequencies); i++ {
		f0 := res.Frequencies[i-1]
		f1 := res.Frequencies[i]

		if f1 <= lowHz || f0 >= highHz {
			continue
		}

		power += 0.5 * (res.PSD[i-1] + res.PSD[i]) * (f1 - f0)
	}

	return power
}

// PeakFrequency returns the frequency of the largest PSD value in
// [lowHz, highHz), or 0 when the band is empty.
func PeakFrequency(res Result, lowHz, highHz float64) float64 {
	peakFreq := 0.0
	peakVal := math.Inf(-1)

	for i, f := range res.Frequencies {
		if f < lowHz || f >= highHz {
			continue
		}

		if res.PSD[i] > peakVal {
			peakVal = res.PSD[i]
			peakFreq = f
		}
	}

	if math.IsInf(peakVal, -1) {
		return 0
	}

	return peakFreq
}

func removeMean(buf []float64) {
	sum := 0.0
	for _, v := range buf {
		sum += v
	}

	mean := sum / float64(len(buf))
	for i := range buf {
		buf[i] -= mean
	}
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
