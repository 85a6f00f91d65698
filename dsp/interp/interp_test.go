package interp

import (
	"math"
	"testing"
)

func TestLagrange_Linear(t *testing.T) {
	li := NewLagrangeInterpolator(1)

	got := li.Interpolate([]float64{1, 3}, 0.5)
	if got != 2 {
		t.Errorf("linear midpoint: got %v, want 2", got)
	}

	if li.Interpolate(nil, 0.5) != 0 {
		t.Error("empty input should return 0")
	}

	if li.Interpolate([]float64{7}, 0.5) != 7 {
		t.Error("single sample should be returned as-is")
	}
}

func TestLagrange_CubicEndpoints(t *testing.T) {
	li := NewLagrangeInterpolator(3)
	samples := []float64{0, 1, 4, 9}

	if got := li.Interpolate(samples, 0); got != 1 {
		t.Errorf("t=0: got %v, want 1", got)
	}

	if got := li.Interpolate(samples, 1); got != 4 {
		t.Errorf("t=1: got %v, want 4", got)
	}
}

func TestHermite4_QuadraticExact(t *testing.T) {
	// Hermite 4-point reproduces quadratics exactly.
	f := func(x float64) float64 { return 2*x*x - 3*x + 1 }

	for _, frac := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		got := Hermite4(frac, f(-1), f(0), f(1), f(2))
		want := f(frac)

		if math.Abs(got-want) > 1e-12 {
			t.Errorf("frac %v: got %v, want %v", frac, got, want)
		}
	}
}

func TestAtGrid_Linear(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{0, 10, 20, 30}

	out, err := AtGrid(x, y, []float64{-1, 0.5, 2.5, 5}, KindLinear)
	if err != nil {
		t.Fatalf("AtGrid: %v", err)
	}

	want := []float64{0, 5, 25, 30}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-12 {
			t.Errorf("index %d: got %v, want %v", i, out[i], want[i])
		}
	}
}

func TestAtGrid_CubicSmooth(t *testing.T) {
	// Cubic interpolation of sin should beat linear between knots.
	n := 20
	x := make([]float64, n)
	y := make([]float64, n)

	for i := range x {
		x[i] = float64(i) * 0.5
		y[i] = math.Sin(x[i])
	}

	queries := []float64{1.25, 3.75, 6.25}

	lin, err := AtGrid(x, y, queries, KindLinear)
	if err != nil {
		t.Fatalf("linear: %v", err)
	}

	cub, err := AtGrid(x, y, queries, KindCubic)
	if err != nil {
		t.Fatalf("cubic: %v", err)
	}

	for i, q := range queries {
		errLin := math.Abs(lin[i] - math.Sin(q))
		errCub := math.Abs(cub[i] - math.Sin(q))

		if errCub >= errLin {
			t.Errorf("query %v: cubic error %v not below linear %v", q, errCub, errLin)
		}
	}
}

func TestAtGrid_Validation(t *testing.T) {
	if _, err := AtGrid(nil, nil, []float64{1}, KindLinear); err == nil {
		t.Error("empty input should error")
	}

	if _, err := AtGrid([]float64{0, 1}, []float64{0}, []float64{0.5}, KindLinear); err == nil {
		t.Error("length mismatch should error")
	}

	if _, err := AtGrid([]float64{0, 0}, []float64{1, 2}, []float64{0}, KindLinear); err == nil {
		t.Error("non-increasing x should error")
	}
}

func TestUniform(t *testing.T) {
	x := []float64{0, 2, 4, 6}
	y := []float64{0, 20, 40, 60}

	grid, values, err := Uniform(x, y, 1, KindLinear)
	if err != nil {
		t.Fatalf("Uniform: %v", err)
	}

	if len(grid) != 7 || len(values) != 7 {
		t.Fatalf("grid length: got %d/%d, want 7", len(grid), len(values))
	}

	for i := range grid {
		if math.Abs(values[i]-float64(i)*10) > 1e-12 {
			t.Errorf("index %d: got %v, want %v", i, values[i], float64(i)*10)
		}
	}

	if _, _, err := Uniform(x, y, 0, KindLinear); err == nil {
		t.Error("zero step should error")
	}

	if _, _, err := Uniform(x[:1], y[:1], 1, KindLinear); err == nil {
		t.Error("single point should error")
	}
}

func TestParseKind(t *testing.T) {
	if k, err := ParseKind("linear"); err != nil || k != KindLinear {
		t.Errorf("linear: got %v, %v", k, err)
	}

	if k, err := ParseKind("cubic"); err != nil || k != KindCubic {
		t.Errorf("cubic: got %v, %v", k, err)
	}

	if _, err := ParseKind("quadratic"); err == nil {
		t.Error("unknown kind should error")
	}
}
