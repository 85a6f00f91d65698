package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)

	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// DeterministicNoise generates white noise with a fixed seed for
// reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)

	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}

// ECGTrain generates a synthetic single-lead ECG: Gaussian R-waves of 10 ms
// width every rrSec seconds, the first at rrSec/2, over a mild 0.3 Hz
// baseline wander.
func ECGTrain(sampleRate, durationSec, rrSec float64) []float64 {
	n := int(sampleRate * durationSec)
	out := make([]float64, n)

	for i := range out {
		t := float64(i) / sampleRate
		out[i] = 0.1 * math.Sin(2*math.Pi*0.3*t)

		for beat := rrSec / 2; beat < durationSec; beat += rrSec {
			d := t - beat
			out[i] += math.Exp(-d * d / (2 * 0.01 * 0.01))
		}
	}

	return out
}

// PPGTrain generates a synthetic 8-bit pulse-oximeter trace: broad Gaussian
// systolic pulses on a slowly drifting baseline around 120 counts.
func PPGTrain(sampleRate, durationSec, rrSec float64) []float64 {
	n := int(sampleRate * durationSec)
	out := make([]float64, n)

	for i := range out {
		t := float64(i) / sampleRate
		out[i] = 120 + 3*math.Sin(2*math.Pi*0.2*t)

		for beat := rrSec / 2; beat < durationSec; beat += rrSec {
			d := t - beat
			out[i] += 60 * math.Exp(-d*d/(2*0.12*0.12))
		}
	}

	return out
}

// RespSine generates a sinusoidal respiration trace at the given breathing
// frequency.
func RespSine(sampleRate, durationSec, breathHz float64) []float64 {
	n := int(sampleRate * durationSec)
	out := make([]float64, n)

	for i := range out {
		out[i] = math.Sin(2 * math.Pi * breathHz * float64(i) / sampleRate)
	}

	return out
}
