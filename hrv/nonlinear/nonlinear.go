// Package nonlinear computes Poincare and recurrence-quantification
// statistics from RR interval series.
package nonlinear

import (
	"fmt"
	"math"
)

// Config holds recurrence-quantification parameters.
type Config struct {
	M   int // embedding dimension
	Tau int // embedding delay, in beats

	// Radius is the recurrence distance threshold in milliseconds. Zero
	// selects sqrt(M) times the sample standard deviation of the series.
	Radius float64

	// LMin is the minimum diagonal line length counted as deterministic.
	LMin int
}

// DefaultConfig returns an embedding of dimension 10 with unit delay and
// diagonal lines of at least two points.
func DefaultConfig() Config {
	return Config{M: 10, Tau: 1, LMin: 2}
}

// Stats holds the nonlinear summary of an RR series.
type Stats struct {
	// Poincare plot descriptors, milliseconds.
	SD1     float64
	SD2     float64
	SDRatio float64 // SD1 / SD2

	// Recurrence quantification.
	RecurrenceRate float64 // percent of recurrent off-diagonal pairs
	Determinism    float64 // percent of recurrent points on diagonal lines
	LMean          float64 // mean diagonal line length, beats
	LMax           float64 // longest diagonal line, beats
	ShannonEntropy float64 // entropy of the diagonal length distribution
}

// Calculate computes Poincare and recurrence statistics of an RR series in
// milliseconds.
func Calculate(rrMs []float64, cfg Config) (Stats, error) {
	if cfg.M < 1 || cfg.Tau < 1 {
		return Stats{}, fmt.Errorf("hrv/nonlinear: embedding M=%d, Tau=%d must be >= 1", cfg.M, cfg.Tau)
	}

	if cfg.LMin < 2 {
		return Stats{}, fmt.Errorf("hrv/nonlinear: minimum line length must be >= 2: %d", cfg.LMin)
	}

	embedded := len(rrMs) - (cfg.M-1)*cfg.Tau
	if len(rrMs) < 3 || embedded < 2 {
		return Stats{}, fmt.Errorf("hrv/nonlinear: series too short for embedding: %d intervals", len(rrMs))
	}

	for i, v := range rrMs {
		if v <= 0 || math.IsNaN(v) {
			return Stats{}, fmt.Errorf("hrv/nonlinear: invalid interval at %d: %v", i, v)
		}
	}

	stats := Stats{}
	stats.SD1, stats.SD2 = poincare(rrMs)

	if stats.SD2 > 0 {
		stats.SDRatio = stats.SD1 / stats.SD2
	}

	radius := cfg.Radius
	if radius <= 0 {
		radius = math.Sqrt(float64(cfg.M)) * sampleStd(rrMs)
	}

	recurrence(rrMs, cfg, radius, embedded, &stats)

	return stats, nil
}

// poincare returns the dispersion perpendicular to (SD1) and along (SD2) the
// identity line of the lag-1 return map.
func poincare(rr []float64) (sd1, sd2 float64) {
	n := len(rr) - 1

	d := make([]float64, n)
	s := make([]float64, n)

	for i := 0; i < n; i++ {
		d[i] = (rr[i+1] - rr[i]) / math.Sqrt2
		s[i] = (rr[i+1] + rr[i]) / math.Sqrt2
	}

	return sampleStd(d), sampleStd(s)
}

// recurrence fills the RQA fields: the series is embedded, pairwise
// distances are thresholded and diagonal line structures are measured on
// the upper triangle of the symmetric recurrence matrix.
func recurrence(rr []float64, cfg Config, radius float64, embedded int, stats *Stats) {
	recurrent := func(i, j int) bool {
		acc := 0.0
		for k := 0; k < cfg.M; k++ {
			d := rr[i+k*cfg.Tau] - rr[j+k*cfg.Tau]
			acc += d * d
		}

		return math.Sqrt(acc) <= radius
	}

	totalPoints := 0
	pointsInLines := 0

	var lineLengths []int

	// Diagonals of the upper triangle, one offset at a time.
	for offset := 1; offset < embedded; offset++ {
		run := 0

		for i := 0; i+offset < embedded; i++ {
			if recurrent(i, i+offset) {
				totalPoints++
				run++
				continue
			}

			if run >= cfg.LMin {
				lineLengths = append(lineLengths, run)
				pointsInLines += run
			}

			run = 0
		}

		if run >= cfg.LMin {
			lineLengths = append(lineLengths, run)
			pointsInLines += run
		}
	}

	pairs := embedded * (embedded - 1) / 2
	if pairs > 0 {
		stats.RecurrenceRate = 100 * float64(totalPoints) / float64(pairs)
	}

	if totalPoints > 0 {
		stats.Determinism = 100 * float64(pointsInLines) / float64(totalPoints)
	}

	if len(lineLengths) == 0 {
		return
	}

	sum := 0
	longest := 0

	hist := make(map[int]int)

	for _, l := range lineLengths {
		sum += l
		hist[l]++

		if l > longest {
			longest = l
		}
	}

	stats.LMean = float64(sum) / float64(len(lineLengths))
	stats.LMax = float64(longest)

	for _, count := range hist {
		p := float64(count) / float64(len(lineLengths))
		stats.ShannonEntropy -= p * math.Log(p)
	}
}

func sampleStd(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}

	mean := 0.0
	for _, v := range x {
		mean += v
	}

	mean /= float64(len(x))

	ss := 0.0
	for _, v := range x {
		ss += (v - mean) * (v - mean)
	}

	return math.Sqrt(ss / float64(len(x)-1))
}
