// Package biquad implements second-order IIR filter sections with RBJ and
// Butterworth designs.
//
// Sections use Direct Form II Transposed processing. Cascades combine
// sections in series; FiltFilt runs a cascade forward and backward for
// zero-phase filtering, which keeps detected beat positions aligned with the
// raw signal.
package biquad
