// Package time computes time-domain heart-rate-variability statistics from
// RR interval series.
package time

import (
	"fmt"
	"math"
	"sort"
)

// Stats holds the time-domain summary of an RR series. Interval statistics
// are in milliseconds, rate statistics in beats per minute.
type Stats struct {
	MeanRR   float64
	MedianRR float64
	MinRR    float64
	MaxRR    float64

	MeanBPM   float64
	MedianBPM float64
	MinBPM    float64
	MaxBPM    float64

	SDNN  float64
	SDSD  float64
	RMSSD float64

	NN50  int
	PNN50 float64
	NN20  int
	PNN20 float64
}

// Calculate computes the time-domain statistics of an RR series in
// milliseconds. At least two intervals are required.
func Calculate(rrMs []float64) (Stats, error) {
	if len(rrMs) < 2 {
		return Stats{}, fmt.Errorf("hrv/time: at least two intervals required, found %d", len(rrMs))
	}

	for i, v := range rrMs {
		if v <= 0 || math.IsNaN(v) {
			return Stats{}, fmt.Errorf("hrv/time: invalid interval at %d: %v", i, v)
		}
	}

	bpm := make([]float64, len(rrMs))
	for i, v := range rrMs {
		bpm[i] = 60000 / v
	}

	diffs := make([]float64, len(rrMs)-1)

	nn50, nn20 := 0, 0

	sumSq := 0.0

	for i := 1; i < len(rrMs); i++ {
		d := rrMs[i] - rrMs[i-1]
		diffs[i-1] = d
		sumSq += d * d

		if math.Abs(d) > 50 {
			nn50++
		}

		if math.Abs(d) > 20 {
			nn20++
		}
	}

	stats := Stats{
		MeanRR:   mean(rrMs),
		MedianRR: median(rrMs),
		MinRR:    minOf(rrMs),
		MaxRR:    maxOf(rrMs),

		MeanBPM:   mean(bpm),
		MedianBPM: median(bpm),
		MinBPM:    minOf(bpm),
		MaxBPM:    maxOf(bpm),

		SDNN:  sampleStd(rrMs),
		SDSD:  sampleStd(diffs),
		RMSSD: math.Sqrt(sumSq / float64(len(diffs))),

		NN50:  nn50,
		NN20:  nn20,
		PNN50: 100 * float64(nn50) / float64(len(diffs)),
		PNN20: 100 * float64(nn20) / float64(len(diffs)),
	}

	return stats, nil
}

func mean(x []float64) float64 {
	acc := 0.0
	for _, v := range x {
		acc += v
	}

	return acc / float64(len(x))
}

func median(x []float64) float64 {
	sorted := make([]float64, len(x))
	copy(sorted, x)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}

	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func minOf(x []float64) float64 {
	best := x[0]
	for _, v := range x[1:] {
		if v < best {
			best = v
		}
	}

	return best
}

func maxOf(x []float64) float64 {
	best := x[0]
	for _, v := range x[1:] {
		if v > best {
			best = v
		}
	}

	return best
}

// sampleStd returns the standard deviation with one delta degree of freedom.
func sampleStd(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}

	m := mean(x)

	ss := 0.0
	for _, v := range x {
		ss += (v - m) * (v - m)
	}

	return math.Sqrt(ss / float64(len(x)-1))
}
