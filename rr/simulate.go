package rr

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
)

// SimulateConfig holds synthetic RR generation parameters.
type SimulateConfig struct {
	N         int   // number of intervals
	Seed      int64 // rng seed for the jitter component
	Artefacts bool  // seed known artefact positions

	// Artefact positions, used when Artefacts is true. Values outside the
	// series are ignored.
	ExtraIdx    int
	MissedIdx   int
	EctopicIdx1 int
	EctopicIdx2 int
	ShortIdx    int
	LongIdx     int
}

// DefaultSimulateConfig returns the defaults: 350 intervals, seed 42,
// artefacts at fixed positions when enabled.
func DefaultSimulateConfig() SimulateConfig {
	return SimulateConfig{
		N:           350,
		Seed:        42,
		ExtraIdx:    50,
		EctopicIdx1: 100,
		MissedIdx:   150,
		EctopicIdx2: 200,
		ShortIdx:    250,
		LongIdx:     300,
	}
}

// Simulate generates a deterministic synthetic RR series in milliseconds.
//
// The base series oscillates slowly around 1000 ms with seeded Gaussian
// jitter. With artefacts enabled, an extra beat, a missed beat, two ectopic
// pairs, a short and a long interval are written at the configured positions;
// the extra/missed pair cancels out so the series length stays at N.
func Simulate(cfg SimulateConfig) ([]float64, error) {
	if cfg.N <= 0 {
		return nil, fmt.Errorf("rr: interval count must be > 0: %d", cfg.N)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	out := make([]float64, cfg.N)
	for i := range out {
		// ~0.1 Hz oscillation plus jitter models respiratory modulation.
		out[i] = 1000 + 50*math.Sin(2*math.Pi*0.05*float64(i)) + 20*rng.NormFloat64()
	}

	if !cfg.Artefacts {
		return out, nil
	}

	if i := cfg.MissedIdx; i >= 0 && i+1 < len(out) {
		// A missed beat merges two intervals.
		out[i] += out[i+1]
		out = slices.Delete(out, i+1, i+2)
	}

	if i := cfg.ExtraIdx; i >= 0 && i < len(out) {
		// An extra beat splits one interval.
		half := out[i] / 2
		out[i] = half
		out = slices.Insert(out, i+1, half)
	}

	if i := cfg.EctopicIdx1; i >= 0 && i+1 < len(out) {
		out[i] *= 0.7
		out[i+1] *= 1.3
	}

	if i := cfg.EctopicIdx2; i >= 0 && i+1 < len(out) {
		out[i] *= 1.3
		out[i+1] *= 0.7
	}

	if i := cfg.ShortIdx; i >= 0 && i < len(out) {
		out[i] *= 0.6
	}

	if i := cfg.LongIdx; i >= 0 && i < len(out) {
		out[i] *= 1.6
	}

	return out, nil
}
