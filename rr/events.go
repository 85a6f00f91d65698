package rr

import (
	"fmt"
	"math"
	"sort"
)

// TimeShift returns, for every event, the delay to the closest preceding
// reference time. Events before the first reference are skipped.
func TimeShift(reference, events []float64) []float64 {
	if len(reference) == 0 {
		return nil
	}

	ref := make([]float64, len(reference))
	copy(ref, reference)
	sort.Float64s(ref)

	var lags []float64

	for _, e := range events {
		j := sort.SearchFloat64s(ref, e)
		if j == 0 {
			continue
		}

		lags = append(lags, e-ref[j-1])
	}

	return lags
}

// ToAngles maps event times onto the phase of the cardiac cycle they fall in.
//
// beats holds cumulative beat times; for an event between beats k and k+1 the
// angle is 2*pi * (event - beats[k]) / (beats[k+1] - beats[k]). Events outside
// the recorded cycles are skipped. All returned values are in [0, 2*pi].
func ToAngles(beats, events []float64) ([]float64, error) {
	if len(beats) < 2 {
		return nil, fmt.Errorf("rr: at least two beats required, found %d", len(beats))
	}

	for i := 1; i < len(beats); i++ {
		if !(beats[i] > beats[i-1]) {
			return nil, fmt.Errorf("rr: beat times must be strictly increasing at index %d", i)
		}
	}

	var angles []float64

	for _, e := range events {
		if e < beats[0] || e > beats[len(beats)-1] {
			continue
		}

		j := sort.SearchFloat64s(beats, e)
		if j == 0 {
			j = 1
		}

		if e == beats[j-1] {
			angles = append(angles, 0)
			continue
		}

		prev := beats[j-1]
		next := beats[j]
		angles = append(angles, 2*math.Pi*(e-prev)/(next-prev))
	}

	return angles, nil
}
