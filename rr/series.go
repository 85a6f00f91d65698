package rr

import "fmt"

// Format identifies the representation of an interbeat series.
type Format int

const (
	// FormatPeaks is a boolean vector sampled at 1 kHz where true marks a beat.
	FormatPeaks Format = iota
	// FormatPeaksIdx is a vector of beat sample positions at 1 kHz.
	FormatPeaksIdx
	// FormatRRMillis is a vector of interbeat intervals in milliseconds.
	FormatRRMillis
	// FormatRRSeconds is a vector of interbeat intervals in seconds.
	FormatRRSeconds
)

// ParseFormat maps the textual names "peaks", "peaks_idx", "rr_ms" and
// "rr_s" to a Format.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "peaks":
		return FormatPeaks, nil
	case "peaks_idx":
		return FormatPeaksIdx, nil
	case "rr_ms":
		return FormatRRMillis, nil
	case "rr_s":
		return FormatRRSeconds, nil
	default:
		return 0, fmt.Errorf("rr: unknown format %q", name)
	}
}

// String returns the textual name of the format.
func (f Format) String() string {
	switch f {
	case FormatPeaks:
		return "peaks"
	case FormatPeaksIdx:
		return "peaks_idx"
	case FormatRRMillis:
		return "rr_ms"
	case FormatRRSeconds:
		return "rr_s"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Series is an interbeat interval series in canonical form (milliseconds).
// Peaks-based inputs assume a 1 kHz sampling grid, so sample distances and
// milliseconds coincide.
type Series struct {
	intervals []float64 // ms
	firstIdx  int       // sample position of the first beat, 0 when unknown
}

// FromPeaks builds a Series from a boolean peaks vector at 1 kHz.
func FromPeaks(peaks []bool) (Series, error) {
	idx := PeaksToIdx(peaks)
	if len(idx) < 2 {
		return Series{}, fmt.Errorf("rr: at least two beats required, found %d", len(idx))
	}

	return FromPeaksIdx(idx)
}

// FromPeaksIdx builds a Series from beat sample positions at 1 kHz.
func FromPeaksIdx(idx []int) (Series, error) {
	if len(idx) < 2 {
		return Series{}, fmt.Errorf("rr: at least two beats required, found %d", len(idx))
	}

	intervals := make([]float64, len(idx)-1)
	for i := 1; i < len(idx); i++ {
		d := idx[i] - idx[i-1]
		if d <= 0 {
			return Series{}, fmt.Errorf("rr: peak positions must be strictly increasing at index %d", i)
		}

		intervals[i-1] = float64(d)
	}

	return Series{intervals: intervals, firstIdx: idx[0]}, nil
}

// FromRRMillis builds a Series from intervals in milliseconds.
func FromRRMillis(intervals []float64) (Series, error) {
	if len(intervals) == 0 {
		return Series{}, fmt.Errorf("rr: empty interval series")
	}

	out := make([]float64, len(intervals))
	for i, v := range intervals {
		if v <= 0 {
			return Series{}, fmt.Errorf("rr: intervals must be > 0, got %f at index %d", v, i)
		}

		out[i] = v
	}

	return Series{intervals: out}, nil
}

// FromRRSeconds builds a Series from intervals in seconds.
func FromRRSeconds(intervals []float64) (Series, error) {
	ms := make([]float64, len(intervals))
	for i, v := range intervals {
		ms[i] = v * 1000
	}

	return FromRRMillis(ms)
}

// From builds a Series from any supported representation. Peaks vectors are
// passed as []bool, index vectors as []int, interval vectors as []float64
// with the matching format.
func From(x []float64, format Format) (Series, error) {
	switch format {
	case FormatPeaks:
		peaks := make([]bool, len(x))
		for i, v := range x {
			switch v {
			case 0:
			case 1:
				peaks[i] = true
			default:
				return Series{}, fmt.Errorf("rr: peaks vector must contain only 0 and 1, got %f at index %d", v, i)
			}
		}

		return FromPeaks(peaks)
	case FormatPeaksIdx:
		idx := make([]int, len(x))
		for i, v := range x {
			idx[i] = int(v)
		}

		return FromPeaksIdx(idx)
	case FormatRRMillis:
		return FromRRMillis(x)
	case FormatRRSeconds:
		return FromRRSeconds(x)
	default:
		return Series{}, fmt.Errorf("rr: unknown format %v", format)
	}
}

// Convert translates a series between representations. Input and output use
// the float encoding of From: peaks vectors as 0/1 values, index vectors as
// whole numbers, interval vectors as ms or s.
func Convert(x []float64, from, to Format) ([]float64, error) {
	s, err := From(x, from)
	if err != nil {
		return nil, err
	}

	switch to {
	case FormatPeaks:
		peaks := s.Peaks()

		out := make([]float64, len(peaks))
		for i, p := range peaks {
			if p {
				out[i] = 1
			}
		}

		return out, nil
	case FormatPeaksIdx:
		idx := s.PeaksIdx()

		out := make([]float64, len(idx))
		for i, v := range idx {
			out[i] = float64(v)
		}

		return out, nil
	case FormatRRMillis:
		return s.Millis(), nil
	case FormatRRSeconds:
		return s.Seconds(), nil
	default:
		return nil, fmt.Errorf("rr: unknown format %v", to)
	}
}

// Len returns the number of intervals.
func (s Series) Len() int { return len(s.intervals) }

// Millis returns the intervals in milliseconds as a copy.
func (s Series) Millis() []float64 {
	out := make([]float64, len(s.intervals))
	copy(out, s.intervals)

	return out
}

// Seconds returns the intervals in seconds as a copy.
func (s Series) Seconds() []float64 {
	out := make([]float64, len(s.intervals))
	for i, v := range s.intervals {
		out[i] = v / 1000
	}

	return out
}

// PeaksIdx reconstructs beat sample positions on a 1 kHz grid. The first
// beat sits at the position recorded on construction, or 0 for interval-only
// inputs.
func (s Series) PeaksIdx() []int {
	idx := make([]int, len(s.intervals)+1)
	idx[0] = s.firstIdx

	pos := float64(s.firstIdx)
	for i, v := range s.intervals {
		pos += v
		idx[i+1] = int(pos + 0.5)
	}

	return idx
}

// Peaks reconstructs a boolean peaks vector at 1 kHz. Its length is the last
// beat position plus one.
func (s Series) Peaks() []bool {
	idx := s.PeaksIdx()

	out := make([]bool, idx[len(idx)-1]+1)
	for _, i := range idx {
		out[i] = true
	}

	return out
}

// CumulativeMillis returns beat times in milliseconds relative to the first
// beat: 0, rr[0], rr[0]+rr[1], ...
func (s Series) CumulativeMillis() []float64 {
	out := make([]float64, len(s.intervals)+1)

	sum := 0.0
	for i, v := range s.intervals {
		sum += v
		out[i+1] = sum
	}

	return out
}

// PeaksToIdx returns the positions of true values.
func PeaksToIdx(peaks []bool) []int {
	var idx []int

	for i, p := range peaks {
		if p {
			idx = append(idx, i)
		}
	}

	return idx
}

// IdxToPeaks builds a boolean vector of the given length with true at each
// position. Positions outside the vector are an error.
func IdxToPeaks(idx []int, length int) ([]bool, error) {
	out := make([]bool, length)

	for _, i := range idx {
		if i < 0 || i >= length {
			return nil, fmt.Errorf("rr: peak position %d outside vector of length %d", i, length)
		}

		out[i] = true
	}

	return out, nil
}
