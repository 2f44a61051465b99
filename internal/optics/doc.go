// Package optics derives microscope imaging metrics from optical, sensor and
// display parameters.
//
// The package is a pure computation layer: Compute takes a SystemInput and
// returns a SystemOutput with no I/O, no shared state and no error return.
// Inputs that make a formula undefined (zero NA, missing pixel counts,
// non-positive magnification and so on) produce an indeterminate Value
// instead of an error, so callers can render partial results while a user
// is still editing parameters.
//
// # Indeterminate values
//
// Value is an explicit optional float64. Of maps NaN and ±Inf to the
// indeterminate Value, which means no non-finite float is ever exposed by
// this package and comparisons never depend on NaN semantics.
//
// # Derivation precedence
//
// A sensor can be described by its physical size in millimeters, by pixel
// counts and a pixel pitch, or both. SensorSpec.Resolve centralizes the
// precedence rules: when pixel counts and pitch are all present they win
// over any explicit millimeter values.
package optics
