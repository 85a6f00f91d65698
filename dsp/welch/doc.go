// Package welch estimates power spectral densities by Welch's method of
// averaged modified periodograms.
//
// The FFT backend is github.com/MeKo-Christian/algo-fft; windows come from
// dsp/window. BandPower and PeakFrequency post-process the estimate into the
// band metrics used by frequency-domain HRV analysis.
package welch
