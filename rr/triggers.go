package rr

import "fmt"

// Direction selects which side of the threshold marks a trigger.
type Direction int

const (
	// DirectionHigher triggers on values at or above the threshold.
	DirectionHigher Direction = iota
	// DirectionLower triggers on values at or below the threshold.
	DirectionLower
)

// ParseDirection maps the textual names "higher" and "lower" to a Direction.
func ParseDirection(name string) (Direction, error) {
	switch name {
	case "higher":
		return DirectionHigher, nil
	case "lower":
		return DirectionLower, nil
	default:
		return 0, fmt.Errorf("rr: unknown direction %q", name)
	}
}

// TriggerConfig holds trigger normalization parameters.
type TriggerConfig struct {
	Threshold float64
	N         int // samples silenced after each accepted trigger
	Direction Direction
}

// DefaultTriggerConfig returns the defaults: threshold 1, higher direction,
// 5-sample debounce.
func DefaultTriggerConfig() TriggerConfig {
	return TriggerConfig{Threshold: 1, N: 5, Direction: DirectionHigher}
}

// NormTriggers cleans a trigger vector: only the first sample of each
// crossing run is kept, and the N samples after an accepted trigger are
// ignored. Recording devices commonly duplicate triggers across adjacent
// samples; this removes the duplicates.
func NormTriggers(triggers []float64, cfg TriggerConfig) ([]bool, error) {
	if len(triggers) == 0 {
		return nil, fmt.Errorf("rr: empty trigger vector")
	}

	if cfg.N < 0 {
		return nil, fmt.Errorf("rr: debounce length must be >= 0: %d", cfg.N)
	}

	out := make([]bool, len(triggers))

	silencedUntil := -1
	for i, v := range triggers {
		if i <= silencedUntil {
			continue
		}

		hit := false
		switch cfg.Direction {
		case DirectionHigher:
			hit = v >= cfg.Threshold
		case DirectionLower:
			hit = v <= cfg.Threshold
		default:
			return nil, fmt.Errorf("rr: unknown direction %v", cfg.Direction)
		}

		if hit {
			out[i] = true
			silencedUntil = i + cfg.N
		}
	}

	return out, nil
}
