// Package detect locates heartbeats in ECG and PPG recordings and breathing
// cycles in respiration signals.
//
// All cardiac detectors resample their input to 1 kHz and return the
// resampled signal together with a boolean peaks vector of the same length,
// so peak-to-peak sample distances read directly as interbeat intervals in
// milliseconds. ECG detection offers five classic R-peak algorithms behind a
// single entry point; PPG detection follows the clipping-correction,
// detrending and adaptive-threshold pipeline common to pulse oximetry.
package detect
