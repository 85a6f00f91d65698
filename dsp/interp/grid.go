package interp

import (
	"fmt"
	"sort"
)

// Kind selects the interpolation scheme for grid resampling.
type Kind int

const (
	KindLinear Kind = iota
	KindCubic
)

// ParseKind maps the textual names "linear" and "cubic" to a Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "linear":
		return KindLinear, nil
	case "cubic":
		return KindCubic, nil
	default:
		return 0, fmt.Errorf("interp: unknown kind %q", name)
	}
}

// AtGrid interpolates the series (x, y) at each query position.
//
// x must be strictly increasing and the same length as y. Queries outside the
// x range are clamped to the boundary values. KindCubic uses Hermite 4-point
// interpolation with clamped end segments.
func AtGrid(x, y, queryX []float64, kind Kind) ([]float64, error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, fmt.Errorf("interp: non-empty x and y required")
	}

	if len(x) != len(y) {
		return nil, fmt.Errorf("interp: x/y length mismatch: %d != %d", len(x), len(y))
	}

	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return nil, fmt.Errorf("interp: x must be strictly increasing at index %d", i)
		}
	}

	out := make([]float64, len(queryX))
	for i, q := range queryX {
		out[i] = at(x, y, q, kind)
	}

	return out, nil
}

// Uniform resamples the series (x, y) onto a uniform grid with the given step
// starting at x[0] and ending at or before x[len(x)-1]. It returns the grid
// and the interpolated values.
func Uniform(x, y []float64, step float64, kind Kind) (grid, values []float64, err error) {
	if step <= 0 {
		return nil, nil, fmt.Errorf("interp: step must be > 0: %f", step)
	}

	if len(x) < 2 {
		return nil, nil, fmt.Errorf("interp: at least two points required: %d", len(x))
	}

	span := x[len(x)-1] - x[0]
	n := int(span/step) + 1

	grid = make([]float64, n)
	for i := range grid {
		grid[i] = x[0] + float64(i)*step
	}

	values, err = AtGrid(x, y, grid, kind)
	if err != nil {
		return nil, nil, err
	}

	return grid, values, nil
}

func at(x, y []float64, q float64, kind Kind) float64 {
	n := len(x)

	if q <= x[0] {
		return y[0]
	}

	if q >= x[n-1] {
		return y[n-1]
	}

	j := sort.SearchFloat64s(x, q)
	// x[j-1] < q <= x[j]
	x0, x1 := x[j-1], x[j]
	t := (q - x0) / (x1 - x0)

	if kind == KindLinear || n < 3 {
		return y[j-1] + t*(y[j]-y[j-1])
	}

	// Clamp neighbor samples at the series boundaries.
	ym1 := y[j-1]
	if j-2 >= 0 {
		ym1 = y[j-2]
	}

	y2 := y[j]
	if j+1 < n {
		y2 = y[j+1]
	}

	return Hermite4(t, ym1, y[j-1], y[j], y2)
}
