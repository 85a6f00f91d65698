// Package window generates window functions for spectral estimation.
//
// The set is intentionally small: the windows here are the ones used by the
// Welch estimator in dsp/welch. Coefficients are generated in symmetric form
// by default; use WithPeriodic for FFT framing.
package window
