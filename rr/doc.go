// Package rr handles interbeat interval series.
//
// Series is the canonical representation: intervals in milliseconds,
// convertible to and from boolean peaks vectors and beat positions on a
// 1 kHz grid. The package also provides instantaneous heart rate,
// trigger normalization, event epoching, cardiac-phase angles, and a
// deterministic RR simulator used by tests and the artefact pipeline.
package rr
