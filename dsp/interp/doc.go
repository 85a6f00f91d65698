// Package interp provides fractional-delay and grid interpolation.
//
// LagrangeInterpolator serves sample-by-sample fractional interpolation.
// AtGrid and Uniform resample nonuniform series (such as RR intervals over
// time) onto arbitrary or uniform grids, which spectral HRV analysis requires.
package interp
