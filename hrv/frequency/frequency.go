// Package frequency computes frequency-domain heart-rate-variability
// statistics from RR interval series.
package frequency

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-cardio/dsp/interp"
	"github.com/cwbudde/algo-cardio/dsp/welch"
)

// Band is a frequency interval in Hz.
type Band struct {
	Low  float64
	High float64
}

// Standard short-term HRV analysis bands.
var (
	BandVLF = Band{0, 0.04}
	BandLF  = Band{0.04, 0.15}
	BandHF  = Band{0.15, 0.4}
)

// Config holds spectral estimation parameters for RR series.
type Config struct {
	// ResampleRate is the rate of the evenly spaced series interpolated
	// from the beat-to-beat intervals, in Hz.
	ResampleRate float64
	Interp       interp.Kind

	// SegmentSec is the Welch segment length in seconds.
	SegmentSec float64

	VLF Band
	LF  Band
	HF  Band
}

// DefaultConfig returns 4 Hz cubic resampling, 256 s Welch segments and the
// standard VLF/LF/HF bands.
func DefaultConfig() Config {
	return Config{
		ResampleRate: 4,
		Interp:       interp.KindCubic,
		SegmentSec:   256,
		VLF:          BandVLF,
		LF:           BandLF,
		HF:           BandHF,
	}
}

// BandStats summarizes one frequency band.
type BandStats struct {
	Peak         float64 // frequency of the PSD maximum, Hz
	Power        float64 // absolute power, ms^2
	PowerPercent float64 // share of total power
	PowerNu      float64 // normalized units, LF and HF only
}

// Stats holds the frequency-domain summary of an RR series.
type Stats struct {
	VLF BandStats
	LF  BandStats
	HF  BandStats

	TotalPower float64 // ms^2, sum over the three bands
	LFHFRatio  float64

	// Underlying spectrum, for reporting and plotting.
	Frequencies []float64
	PSD         []float64
}

// Calculate computes band powers from an RR series in milliseconds.
//
// The unevenly sampled series is interpolated onto an even grid at the
// configured rate before Welch estimation, with beats placed at their
// cumulative occurrence times.
func Calculate(rrMs []float64, cfg Config) (Stats, error) {
	if len(rrMs) < 4 {
		return Stats{}, fmt.Errorf("hrv/frequency: at least four intervals required, found %d", len(rrMs))
	}

	if cfg.ResampleRate <= 0 {
		return Stats{}, fmt.Errorf("hrv/frequency: resample rate must be > 0: %v", cfg.ResampleRate)
	}

	if cfg.SegmentSec <= 0 {
		return Stats{}, fmt.Errorf("hrv/frequency: segment length must be > 0: %v", cfg.SegmentSec)
	}

	for i, v := range rrMs {
		if v <= 0 || math.IsNaN(v) {
			return Stats{}, fmt.Errorf("hrv/frequency: invalid interval at %d: %v", i, v)
		}
	}

	// Beat times in seconds; each interval is anchored at its closing beat.
	times := make([]float64, len(rrMs))

	acc := 0.0
	for i, v := range rrMs {
		acc += v / 1000
		times[i] = acc
	}

	_, values, err := interp.Uniform(times, rrMs, 1/cfg.ResampleRate, cfg.Interp)
	if err != nil {
		return Stats{}, fmt.Errorf("hrv/frequency: resampling failed: %w", err)
	}

	wcfg := welch.DefaultConfig(cfg.ResampleRate)
	wcfg.SegmentLength = int(cfg.SegmentSec * cfg.ResampleRate)

	res, err := welch.Estimate(values, wcfg)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		VLF: BandStats{
			Peak:  welch.PeakFrequency(res, cfg.VLF.Low, cfg.VLF.High),
			Power: welch.BandPower(res, cfg.VLF.Low, cfg.VLF.High),
		},
		LF: BandStats{
			Peak:  welch.PeakFrequency(res, cfg.LF.Low, cfg.LF.High),
			Power: welch.BandPower(res, cfg.LF.Low, cfg.LF.High),
		},
		HF: BandStats{
			Peak:  welch.PeakFrequency(res, cfg.HF.Low, cfg.HF.High),
			Power: welch.BandPower(res, cfg.HF.Low, cfg.HF.High),
		},
		Frequencies: res.Frequencies,
		PSD:         res.PSD,
	}

	stats.TotalPower = stats.VLF.Power + stats.LF.Power + stats.HF.Power

	if stats.TotalPower > 0 {
		stats.VLF.PowerPercent = 100 * stats.VLF.Power / stats.TotalPower
		stats.LF.PowerPercent = 100 * stats.LF.Power / stats.TotalPower
		stats.HF.PowerPercent = 100 * stats.HF.Power / stats.TotalPower
	}

	// Normalized units exclude the VLF share.
	if nuTotal := stats.LF.Power + stats.HF.Power; nuTotal > 0 {
		stats.LF.PowerNu = 100 * stats.LF.Power / nuTotal
		stats.HF.PowerNu = 100 * stats.HF.Power / nuTotal
	}

	if stats.HF.Power > 0 {
		stats.LFHFRatio = stats.LF.Power / stats.HF.Power
	}

	return stats, nil
}
