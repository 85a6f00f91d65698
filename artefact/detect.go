package artefact

import (
	"fmt"
	"math"
	"sort"
)

// Decision-rule constants from Lipponen & Tarvainen (2019), Journal of
// Medical Engineering & Technology 43(3).
const (
	slopeC1     = 0.13
	interceptC2 = 0.17
	alpha       = 5.2

	deviationWindow = 91 // centered window for the moving quantile deviation
	medianWindow    = 11 // centered window for the local median
)

// Result holds per-interval artefact classifications. Every slice has the
// length of the input RR series.
type Result struct {
	Ectopic []bool
	Missed  []bool
	Extra   []bool
	Long    []bool
	Short   []bool

	// Normalized decision subspaces and thresholds, kept for inspection.
	Subspace1  []float64 // dRR, normalized
	Subspace2  []float64 // neighbor extreme of Subspace1
	Subspace3  []float64 // forward extreme of Subspace1
	MedianDev  []float64 // deviation from the local median, normalized
	Threshold1 []float64
	Threshold2 []float64
}

// Detect classifies artefacts in an RR series (milliseconds) using the
// subspace method of Lipponen & Tarvainen (2019).
//
// Ectopic beats show as a short/long swing in successive differences; missed
// beats as a lone long interval close to twice the local median; extra beats
// as a lone short interval whose sum with its neighbor matches the median.
// Long and short mark the remaining outliers.
func Detect(rrMs []float64) (Result, error) {
	n := len(rrMs)
	if n < 3 {
		return Result{}, fmt.Errorf("artefact: at least three intervals required, found %d", n)
	}

	// First difference of the series, first element zero-padded.
	dRR := make([]float64, n)
	for i := 1; i < n; i++ {
		dRR[i] = rrMs[i] - rrMs[i-1]
	}

	th1 := movingQuantileDeviation(dRR, deviationWindow)
	s11 := normalize(dRR, th1)

	// Deviation from the local median; negative deviations are doubled so
	// that short intervals weigh as much as long ones.
	medRR := movingMedian(rrMs, medianWindow)

	mRR := make([]float64, n)
	for i := range mRR {
		mRR[i] = rrMs[i] - medRR[i]
		if mRR[i] < 0 {
			mRR[i] *= 2
		}
	}

	th2 := movingQuantileDeviation(mRR, deviationWindow)
	s21 := normalize(mRR, th2)

	s12 := make([]float64, n)
	s22 := make([]float64, n)

	for i := range s11 {
		prev := at(s11, i-1)
		next := at(s11, i+1)

		if s11[i] > 0 {
			s12[i] = math.Max(prev, next)
		} else {
			s12[i] = math.Min(prev, next)
		}

		n1 := at(s11, i+1)
		n2 := at(s11, i+2)

		if s11[i] >= 0 {
			s22[i] = math.Min(n1, n2)
		} else {
			s22[i] = math.Max(n1, n2)
		}
	}

	res := Result{
		Ectopic:    make([]bool, n),
		Missed:     make([]bool, n),
		Extra:      make([]bool, n),
		Long:       make([]bool, n),
		Short:      make([]bool, n),
		Subspace1:  s11,
		Subspace2:  s12,
		Subspace3:  s22,
		MedianDev:  s21,
		Threshold1: th1,
		Threshold2: th2,
	}

	for i := 0; i < n; i++ {
		// Ectopic: negative-positive or positive-negative swing crossing
		// the sloped decision lines.
		if (s11[i] > 1 && s12[i] < -slopeC1*s11[i]-interceptC2) ||
			(s11[i] < -1 && s12[i] > -slopeC1*s11[i]+interceptC2) {
			res.Ectopic[i] = true
			continue
		}

		long := (s11[i] > 1 && s22[i] < -1) || s21[i] > 3
		short := (s11[i] < -1 && s22[i] > 1) || s21[i] < -3

		if long {
			if math.Abs(rrMs[i]/2-medRR[i]) < th2[i] {
				res.Missed[i] = true
			} else {
				res.Long[i] = true
			}
		}

		if short {
			if i+1 < n && math.Abs(rrMs[i]+rrMs[i+1]-medRR[i]) < th2[i] {
				res.Extra[i] = true
			} else {
				res.Short[i] = true
			}
		}
	}

	return res, nil
}

// at returns s[i] clamped to the slice bounds.
func at(s []float64, i int) float64 {
	if i < 0 {
		i = 0
	}

	if i >= len(s) {
		i = len(s) - 1
	}

	return s[i]
}

func normalize(x, th []float64) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		if th[i] == 0 {
			out[i] = 0
			continue
		}

		out[i] = x[i] / th[i]
	}

	return out
}

// movingQuantileDeviation returns alpha times the centered moving
// quartile deviation ((q75-q25)/2) of the absolute values.
func movingQuantileDeviation(x []float64, windowLen int) []float64 {
	n := len(x)
	half := windowLen / 2
	out := make([]float64, n)
	buf := make([]float64, 0, windowLen)

	for i := range x {
		lo := i - half
		if lo < 0 {
			lo = 0
		}

		hi := i + half + 1
		if hi > n {
			hi = n
		}

		buf = buf[:0]
		for _, v := range x[lo:hi] {
			buf = append(buf, math.Abs(v))
		}

		sort.Float64s(buf)
		out[i] = alpha * (quantileSorted(buf, 0.75) - quantileSorted(buf, 0.25)) / 2
	}

	return out
}

// movingMedian returns the centered moving median.
func movingMedian(x []float64, windowLen int) []float64 {
	n := len(x)
	half := windowLen / 2
	out := make([]float64, n)
	buf := make([]float64, 0, windowLen)

	for i := range x {
		lo := i - half
		if lo < 0 {
			lo = 0
		}

		hi := i + half + 1
		if hi > n {
			hi = n
		}

		buf = append(buf[:0], x[lo:hi]...)
		sort.Float64s(buf)
		out[i] = quantileSorted(buf, 0.5)
	}

	return out
}

// quantileSorted interpolates the q-quantile of an ascending slice.
func quantileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}

	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))

	if lo == hi {
		return sorted[lo]
	}

	t := pos - float64(lo)

	return sorted[lo] + t*(sorted[hi]-sorted[lo])
}
