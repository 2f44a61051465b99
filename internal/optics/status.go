package optics

import "fmt"

// SamplingStatus rates the object-side pixel size against the Nyquist limit
// of the optical resolution.
type SamplingStatus int

const (
	// SamplingOptimal means two to three pixels per Rayleigh distance.
	// It is also the fallback when either input is indeterminate.
	SamplingOptimal SamplingStatus = iota

	// SamplingUndersampled means fewer than two pixels per Rayleigh distance:
	// the sensor, not the optics, limits resolution.
	SamplingUndersampled

	// SamplingOversampled means more than three pixels per Rayleigh distance.
	SamplingOversampled
)

// String returns the stable label used in reports and translation keys.
func (s SamplingStatus) String() string {
	switch s {
	case SamplingOptimal:
		return "optimal"
	case SamplingUndersampled:
		return "undersampled"
	case SamplingOversampled:
		return "oversampled"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s SamplingStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SamplingStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "optimal":
		*s = SamplingOptimal
	case "undersampled":
		*s = SamplingUndersampled
	case "oversampled":
		*s = SamplingOversampled
	default:
		return fmt.Errorf("invalid sampling status: %q", text)
	}
	return nil
}

// CoverageStatus rates how the sensor projection fills the field number.
//
// The labels follow the adapter, not the picture: "too_small" means the
// adapter magnification is too low for the sensor, so the projected sensor
// diagonal approaches or exceeds the field stop and the image corners
// vignette. "too_large" means the adapter magnifies so much that the sensor
// captures less than half of the available field.
type CoverageStatus int

const (
	// CoverageOK is a coverage ratio within [50, 90] percent, and the
	// fallback when the ratio is indeterminate.
	CoverageOK CoverageStatus = iota

	// CoverageAdapterTooSmall is a coverage ratio above 90 percent.
	CoverageAdapterTooSmall

	// CoverageAdapterTooLarge is a coverage ratio below 50 percent.
	CoverageAdapterTooLarge
)

// String returns the stable label used in reports and translation keys.
func (c CoverageStatus) String() string {
	switch c {
	case CoverageOK:
		return "ok"
	case CoverageAdapterTooSmall:
		return "too_small"
	case CoverageAdapterTooLarge:
		return "too_large"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c CoverageStatus) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CoverageStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "ok":
		*c = CoverageOK
	case "too_small":
		*c = CoverageAdapterTooSmall
	case "too_large":
		*c = CoverageAdapterTooLarge
	default:
		return fmt.Errorf("invalid coverage status: %q", text)
	}
	return nil
}
