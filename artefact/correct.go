package artefact

import (
	"fmt"
	"math"
	"slices"
)

// Counts reports how many intervals each correction rule touched.
type Counts struct {
	Ectopic int
	Missed  int
	Extra   int
	Long    int
	Short   int
}

// Total returns the number of corrected intervals across all classes.
func (c Counts) Total() int {
	return c.Ectopic + c.Missed + c.Extra + c.Long + c.Short
}

// CorrectRR detects and repairs artefacts in an RR series (milliseconds).
//
// Missed beats are split in two, extra beats are merged into their successor,
// and ectopic, long and short intervals are replaced by a linear interpolation
// of their valid neighbors. The returned series may therefore differ in
// length from the input.
func CorrectRR(rrMs []float64) ([]float64, Counts, error) {
	res, err := Detect(rrMs)
	if err != nil {
		return nil, Counts{}, err
	}

	return applyCorrections(rrMs, res)
}

// CorrectPeaks repairs a boolean peaks vector in place of its RR series and
// returns the corrected vector together with the correction counts. The
// output keeps the input length: extra peaks are cleared, missed peaks are
// inserted midway between their neighbors.
func CorrectPeaks(peaks []bool) ([]bool, Counts, error) {
	idx := make([]int, 0, len(peaks))
	for i, p := range peaks {
		if p {
			idx = append(idx, i)
		}
	}

	if len(idx) < 4 {
		return nil, Counts{}, fmt.Errorf("artefact: at least four peaks required, found %d", len(idx))
	}

	rr := make([]float64, len(idx)-1)
	for i := 1; i < len(idx); i++ {
		rr[i-1] = float64(idx[i] - idx[i-1])
	}

	res, err := Detect(rr)
	if err != nil {
		return nil, Counts{}, err
	}

	out := slices.Clone(peaks)

	var counts Counts

	for i := len(rr) - 1; i >= 0; i-- {
		switch {
		case res.Extra[i]:
			// rr[i] runs from idx[i] to idx[i+1]; the closing peak is the
			// spurious one.
			out[idx[i+1]] = false
			counts.Extra++
		case res.Missed[i]:
			out[(idx[i]+idx[i+1])/2] = true
			counts.Missed++
		case res.Ectopic[i]:
			counts.Ectopic++
		case res.Long[i]:
			counts.Long++
		case res.Short[i]:
			counts.Short++
		}
	}

	return out, counts, nil
}

func applyCorrections(rrMs []float64, res Result) ([]float64, Counts, error) {
	out := slices.Clone(rrMs)

	var counts Counts

	// Structural fixes first, walking backwards so earlier indices stay
	// valid while the slice grows and shrinks.
	for i := len(rrMs) - 1; i >= 0; i-- {
		switch {
		case res.Missed[i]:
			half := out[i] / 2
			out[i] = half
			out = slices.Insert(out, i+1, half)
			counts.Missed++
		case res.Extra[i]:
			if i+1 < len(out) {
				out[i+1] += out[i]
			}

			out = slices.Delete(out, i, i+1)
			counts.Extra++
		}
	}

	// Remaining flags index the original series; after missed/extra fixes
	// the offsets shift, so re-detect before interpolating.
	res2, err := Detect(out)
	if err != nil {
		return nil, Counts{}, err
	}

	interp := make([]bool, len(out))
	for i := range out {
		switch {
		case res2.Ectopic[i]:
			interp[i] = true
			counts.Ectopic++
		case res2.Long[i]:
			interp[i] = true
			counts.Long++
		case res2.Short[i]:
			interp[i] = true
			counts.Short++
		}
	}

	interpolateFlagged(out, interp)

	return out, counts, nil
}

// interpolateFlagged replaces flagged runs with a linear ramp between the
// nearest unflagged neighbors. Runs touching an edge are filled with the
// nearest valid value.
func interpolateFlagged(x []float64, flagged []bool) {
	n := len(x)

	for i := 0; i < n; {
		if !flagged[i] {
			i++
			continue
		}

		j := i
		for j < n && flagged[j] {
			j++
		}

		left := math.NaN()
		if i > 0 {
			left = x[i-1]
		}

		right := math.NaN()
		if j < n {
			right = x[j]
		}

		switch {
		case math.IsNaN(left) && math.IsNaN(right):
			// Everything flagged, nothing to anchor on.
		case math.IsNaN(left):
			for k := i; k < j; k++ {
				x[k] = right
			}
		case math.IsNaN(right):
			for k := i; k < j; k++ {
				x[k] = left
			}
		default:
			span := float64(j - i + 1)
			for k := i; k < j; k++ {
				t := float64(k-i+1) / span
				x[k] = left + t*(right-left)
			}
		}

		i = j
	}
}
