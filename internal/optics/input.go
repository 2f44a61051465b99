package optics

// SensorSpec describes a camera sensor. Its size can be given in millimeters,
// as pixel counts plus a pixel pitch, or both; Resolve applies the precedence.
type SensorSpec struct {
	WidthMm  Value `json:"widthMm"`
	HeightMm Value `json:"heightMm"`

	WidthPx  Value `json:"widthPx"`
	HeightPx Value `json:"heightPx"`

	// PixelPitchUm is the sensor pixel pitch in micrometers.
	PixelPitchUm Value `json:"pixelPitchUm"`

	// IsColor marks a color (Bayer) sensor. It does not enter any formula.
	IsColor bool `json:"isColor"`
}

// ObjectiveSpec describes the objective and the camera adapter.
type ObjectiveSpec struct {
	// Magnification is the nominal objective magnification (4, 10, 40 ...).
	Magnification Value `json:"magnification"`

	// NumericalAperture must be positive for resolution metrics to exist.
	NumericalAperture Value `json:"numericalAperture"`

	// FieldNumberMm is the usable field diameter at the intermediate image plane.
	FieldNumberMm Value `json:"fieldNumberMm"`

	// CouplerMagnification is the C-mount adapter magnification.
	// Total magnification treats a missing or non-positive value as 1.
	CouplerMagnification Value `json:"couplerMagnification"`
}

// DisplaySpec describes a monitor used for the on-screen magnification estimate.
type DisplaySpec struct {
	DiagonalInch float64 `json:"diagonalInch"`
	WidthPx      int     `json:"widthPx"`
	HeightPx     int     `json:"heightPx"`
}

// SystemInput is the complete parameter set consumed by Compute.
type SystemInput struct {
	Sensor    SensorSpec    `json:"sensor"`
	Objective ObjectiveSpec `json:"objective"`

	// WavelengthUm is the illumination wavelength in micrometers.
	WavelengthUm Value `json:"wavelengthUm"`

	// Display is optional.
	Display *DisplaySpec `json:"display,omitempty"`
}

// ResolvedSensor is a SensorSpec after derivation: a single physical size
// and pixel pitch that every formula consumes.
type ResolvedSensor struct {
	WidthMm      Value
	HeightMm     Value
	PixelPitchUm Value
}

// Resolve derives the physical size and pixel pitch of the sensor.
//
// When both pixel counts and the pixel pitch are positive, the size is
// pixels × pitch / 1000 and explicit millimeter values are ignored.
// Otherwise the explicit millimeter values are used as given.
// An explicit positive pitch is kept verbatim; without one the pitch is
// derived from the width and the horizontal pixel count.
func (s SensorSpec) Resolve() ResolvedSensor {
	r := ResolvedSensor{
		WidthMm:  s.WidthMm,
		HeightMm: s.HeightMm,
	}

	if s.WidthPx.Positive() && s.HeightPx.Positive() && s.PixelPitchUm.Positive() {
		r.WidthMm = LengthFromPixels(s.WidthPx, s.PixelPitchUm)
		r.HeightMm = LengthFromPixels(s.HeightPx, s.PixelPitchUm)
	}

	if s.PixelPitchUm.Positive() {
		r.PixelPitchUm = s.PixelPitchUm
	} else {
		r.PixelPitchUm = PixelPitchFromWidth(r.WidthMm, s.WidthPx)
	}

	return r
}
