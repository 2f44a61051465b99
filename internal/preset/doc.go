// Package preset holds the static camera and sensor-format tables used to
// pre-fill calculator inputs.
//
// Presets only copy values into an optics.SystemInput; the optics package
// never reads them directly.
package preset
