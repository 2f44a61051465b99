package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default values for the calculator. The objective defaults describe a common
// 10x/0.25 achromat with a 22 mm field number behind a 1x adapter.
const (
	// DefaultWavelengthUm is green light, where the eye and most sensors peak.
	DefaultWavelengthUm = 0.55

	// DefaultFieldNumberMm is the field number of a wide-field eyepiece tube.
	DefaultFieldNumberMm = 22.0

	// DefaultCouplerMagnification is a 1x C-mount adapter.
	DefaultCouplerMagnification = 1.0

	// DefaultObjectiveMagnification is the nominal objective magnification.
	DefaultObjectiveMagnification = 10.0

	// DefaultNumericalAperture belongs to the default objective.
	DefaultNumericalAperture = 0.25

	// AppName is the application name used for XDG directory paths.
	AppName = "scopecalc"

	// DefaultInputFile is the input file looked up in the current and home
	// directories when --config is not given.
	DefaultInputFile = ".scopecalc.yaml"

	// DefaultLocale is the interface language used before a preference is saved.
	DefaultLocale = "zh"
)

// Config holds the options of one scopecalc invocation. It is populated from
// CLI flags and passed down explicitly.
type Config struct {
	// Verbose enables debug logging.
	Verbose bool

	// Locale overrides the saved locale preference for this run when set.
	Locale string

	// InputFile is the YAML input path. Empty means search the defaults.
	InputFile string

	// Camera and SensorFormat name presets applied on top of the input file.
	Camera       string
	SensorFormat string

	// JSONReport and MarkdownReport select the output format.
	// They are mutually exclusive; neither means plain text.
	JSONReport     bool
	MarkdownReport bool

	// ReportFile is the output path. Empty means stdout.
	ReportFile string

	// Watch keeps running and recomputes whenever InputFile changes.
	Watch bool
}

// NewConfig creates a Config with default values: plain-text output to
// stdout, no watching and the saved locale.
func NewConfig() *Config {
	return &Config{}
}

// XDGConfigDir returns the XDG config directory for scopecalc, where the
// locale preference is stored.
// On Linux: ~/.config/scopecalc
// On macOS: ~/Library/Application Support/scopecalc
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the flag combination and returns the first problem found.
// InputFile must already be resolved when Watch is set.
func (c *Config) Validate() error {
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if c.Watch && c.InputFile == "" {
		return ErrWatchWithoutInput
	}
	return nil
}
