// Package artefact detects and corrects beat-detection artefacts in RR
// interval series.
//
// Detection follows the subspace method described by Lipponen & Tarvainen
// (2019): successive-difference and median-deviation series are normalized
// by time-varying quantile-deviation thresholds and classified into ectopic,
// missed, extra, long and short beats. Correction splits missed beats,
// merges extra beats and interpolates over the remaining outliers.
package artefact
