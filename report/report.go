// Package report renders heart-rate-variability summaries across the time,
// frequency and nonlinear domains.
package report

import (
	"fmt"

	"github.com/cwbudde/algo-cardio/hrv/frequency"
	"github.com/cwbudde/algo-cardio/hrv/nonlinear"
	hrvtime "github.com/cwbudde/algo-cardio/hrv/time"
)

// Config bundles the per-domain analysis parameters.
type Config struct {
	Frequency frequency.Config
	Nonlinear nonlinear.Config
}

// DefaultConfig returns the per-domain defaults.
func DefaultConfig() Config {
	return Config{
		Frequency: frequency.DefaultConfig(),
		Nonlinear: nonlinear.DefaultConfig(),
	}
}

// Summary holds the results of all three analysis domains.
type Summary struct {
	Time      hrvtime.Stats
	Frequency frequency.Stats
	Nonlinear nonlinear.Stats
}

// Row is one metric of a rendered summary.
type Row struct {
	Metric string  `json:"metric" yaml:"metric"`
	Value  float64 `json:"value" yaml:"value"`
	Unit   string  `json:"unit" yaml:"unit"`
	Domain string  `json:"domain" yaml:"domain"`
}

// Compute runs the time, frequency and nonlinear analyses on an RR series
// in milliseconds.
func Compute(rrMs []float64, cfg Config) (Summary, error) {
	var s Summary

	var err error

	if s.Time, err = hrvtime.Calculate(rrMs); err != nil {
		return Summary{}, fmt.Errorf("report: time domain: %w", err)
	}

	if s.Frequency, err = frequency.Calculate(rrMs, cfg.Frequency); err != nil {
		return Summary{}, fmt.Errorf("report: frequency domain: %w", err)
	}

	if s.Nonlinear, err = nonlinear.Calculate(rrMs, cfg.Nonlinear); err != nil {
		return Summary{}, fmt.Errorf("report: nonlinear domain: %w", err)
	}

	return s, nil
}

// Rows flattens the summary into metric rows, grouped by domain.
func (s Summary) Rows() []Row {
	t := s.Time
	f := s.Frequency
	n := s.Nonlinear

	return []Row{
		{"mean_rr", t.MeanRR, "ms", "time"},
		{"median_rr", t.MedianRR, "ms", "time"},
		{"min_rr", t.MinRR, "ms", "time"},
		{"max_rr", t.MaxRR, "ms", "time"},
		{"mean_bpm", t.MeanBPM, "bpm", "time"},
		{"median_bpm", t.MedianBPM, "bpm", "time"},
		{"min_bpm", t.MinBPM, "bpm", "time"},
		{"max_bpm", t.MaxBPM, "bpm", "time"},
		{"sdnn", t.SDNN, "ms", "time"},
		{"sdsd", t.SDSD, "ms", "time"},
		{"rmssd", t.RMSSD, "ms", "time"},
		{"nn50", float64(t.NN50), "count", "time"},
		{"pnn50", t.PNN50, "%", "time"},
		{"nn20", float64(t.NN20), "count", "time"},
		{"pnn20", t.PNN20, "%", "time"},

		{"vlf_peak", f.VLF.Peak, "Hz", "frequency"},
		{"vlf_power", f.VLF.Power, "ms2", "frequency"},
		{"vlf_power_per", f.VLF.PowerPercent, "%", "frequency"},
		{"lf_peak", f.LF.Peak, "Hz", "frequency"},
		{"lf_power", f.LF.Power, "ms2", "frequency"},
		{"lf_power_per", f.LF.PowerPercent, "%", "frequency"},
		{"lf_power_nu", f.LF.PowerNu, "n.u.", "frequency"},
		{"hf_peak", f.HF.Peak, "Hz", "frequency"},
		{"hf_power", f.HF.Power, "ms2", "frequency"},
		{"hf_power_per", f.HF.PowerPercent, "%", "frequency"},
		{"hf_power_nu", f.HF.PowerNu, "n.u.", "frequency"},
		{"total_power", f.TotalPower, "ms2", "frequency"},
		{"lf_hf_ratio", f.LFHFRatio, "", "frequency"},

		{"sd1", n.SD1, "ms", "nonlinear"},
		{"sd2", n.SD2, "ms", "nonlinear"},
		{"sd1_sd2", n.SDRatio, "", "nonlinear"},
		{"recurrence_rate", n.RecurrenceRate, "%", "nonlinear"},
		{"determinism_rate", n.Determinism, "%", "nonlinear"},
		{"l_mean", n.LMean, "beats", "nonlinear"},
		{"l_max", n.LMax, "beats", "nonlinear"},
		{"shannon_entropy", n.ShannonEntropy, "nat", "nonlinear"},
	}
}
