package detect

import (
	"fmt"

	"github.com/cwbudde/algo-cardio/dsp/interp"
)

// InterpolateClipping replaces samples stuck at the recording floor or
// ceiling by a cubic interpolation of the surrounding valid samples.
//
// Clipped runs at the edges of the signal are filled with the nearest valid
// value. A signal with fewer than two valid samples is returned unchanged.
func InterpolateClipping(signal []float64, floor, ceiling float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("detect: empty signal")
	}

	if floor >= ceiling {
		return nil, fmt.Errorf("detect: clipping floor %v must be below ceiling %v", floor, ceiling)
	}

	validX := make([]float64, 0, len(signal))
	validY := make([]float64, 0, len(signal))
	queryX := make([]float64, 0)

	for i, v := range signal {
		if v <= floor || v >= ceiling {
			queryX = append(queryX, float64(i))
			continue
		}

		validX = append(validX, float64(i))
		validY = append(validY, v)
	}

	out := make([]float64, len(signal))
	copy(out, signal)

	if len(queryX) == 0 {
		return out, nil
	}

	if len(validX) < 2 {
		return out, nil
	}

	filled, err := interp.AtGrid(validX, validY, queryX, interp.KindCubic)
	if err != nil {
		return nil, fmt.Errorf("detect: clipping interpolation failed: %w", err)
	}

	for k, x := range queryX {
		out[int(x)] = filled[k]
	}

	return out, nil
}
