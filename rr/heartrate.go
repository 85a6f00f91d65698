package rr

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-cardio/dsp/interp"
)

// Unit selects the output unit of instantaneous heart rate.
type Unit int

const (
	// UnitMillis reports interbeat intervals in milliseconds.
	UnitMillis Unit = iota
	// UnitBPM reports beats per minute (60000 / RR).
	UnitBPM
)

// ParseUnit maps the textual names "rr" and "bpm" to a Unit.
func ParseUnit(name string) (Unit, error) {
	switch name {
	case "rr", "ms":
		return UnitMillis, nil
	case "bpm":
		return UnitBPM, nil
	default:
		return 0, fmt.Errorf("rr: unknown unit %q", name)
	}
}

// HeartRateConfig holds instantaneous heart rate parameters.
type HeartRateConfig struct {
	Unit  Unit
	Kind  interp.Kind
	SFreq float64 // output grid rate in Hz
}

// DefaultHeartRateConfig returns the defaults: milliseconds, linear
// interpolation, 1 kHz output grid.
func DefaultHeartRateConfig() HeartRateConfig {
	return HeartRateConfig{
		Unit:  UnitMillis,
		Kind:  interp.KindLinear,
		SFreq: 1000,
	}
}

// HeartRate computes the instantaneous heart rate of a beat series, sampled
// on a uniform time grid.
//
// Each interval is anchored at the time of its closing beat; values between
// beats are interpolated, and samples before the first interval anchor or
// after the last beat are NaN. The returned time vector is in seconds and has
// the same length as the rate vector.
func HeartRate(s Series, cfg HeartRateConfig) (rate, time []float64, err error) {
	if s.Len() < 1 {
		return nil, nil, fmt.Errorf("rr: empty series")
	}

	if cfg.SFreq <= 0 {
		return nil, nil, fmt.Errorf("rr: output rate must be > 0: %f", cfg.SFreq)
	}

	// Anchor times in seconds, relative to the first beat.
	cum := s.CumulativeMillis()
	anchors := make([]float64, s.Len())
	values := make([]float64, s.Len())

	intervals := s.intervals
	for i, v := range intervals {
		anchors[i] = cum[i+1] / 1000
		values[i] = v

		if cfg.Unit == UnitBPM {
			values[i] = 60000 / v
		}
	}

	step := 1 / cfg.SFreq
	span := anchors[len(anchors)-1]
	n := int(span/step) + 1

	rate = make([]float64, n)
	time = make([]float64, n)

	for i := range time {
		time[i] = float64(i) * step
	}

	if s.Len() == 1 {
		for i := range rate {
			rate[i] = values[0]
		}

		return rate, time, nil
	}

	interpolated, err := interp.AtGrid(anchors, values, time, cfg.Kind)
	if err != nil {
		return nil, nil, err
	}

	copy(rate, interpolated)

	// The first interval is not defined before its closing beat.
	for i := range time {
		if time[i] < anchors[0] {
			rate[i] = math.NaN()
		} else {
			break
		}
	}

	return rate, time, nil
}
