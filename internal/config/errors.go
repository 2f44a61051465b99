package config

import "errors"

// Configuration validation errors.
// These are returned by Config.Validate and InputFile.Validate and can be
// checked with errors.Is.
var (
	// ErrConfigNotFound is returned when an input file does not exist.
	ErrConfigNotFound = errors.New("input file not found")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrWatchWithoutInput is returned when --watch is used without an input
	// file; there is nothing to watch.
	ErrWatchWithoutInput = errors.New("--watch requires an input file (use --config or create " + DefaultInputFile + ")")

	// ErrInvalidWavelength is returned when the wavelength is negative.
	ErrInvalidWavelength = errors.New("invalid wavelength: must not be negative")
)
