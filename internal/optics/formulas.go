package optics

import "math"

const (
	// RayleighFactor is the 0.61 coefficient of the Rayleigh criterion.
	RayleighFactor = 0.61

	// NyquistSamples is the number of pixels required per resolved feature.
	NyquistSamples = 2

	// OversamplingFactor divides the Nyquist pixel size to get the point
	// below which sampling is considered wasteful (about three pixels per
	// Rayleigh distance).
	OversamplingFactor = 1.5

	// CoverageUpperPct and CoverageLowerPct bound the acceptable coverage ratio.
	CoverageUpperPct = 90
	CoverageLowerPct = 50

	// MinProjectionCoupler keeps the projection diagonal finite for tiny couplers.
	MinProjectionCoupler = 0.01

	// MillimetersPerInch converts display diagonals.
	MillimetersPerInch = 25.4

	micrometersPerMillimeter = 1000
)

// LengthFromPixels returns pixels × pitch(µm) / 1000 in millimeters,
// or Indeterminate unless both are positive.
func LengthFromPixels(pixels, pitchUm Value) Value {
	if !pixels.Positive() || !pitchUm.Positive() {
		return Indeterminate
	}
	return Of(pixels.v * pitchUm.v / micrometersPerMillimeter)
}

// PixelPitchFromWidth returns widthMm × 1000 / widthPx in micrometers.
func PixelPitchFromWidth(widthMm, widthPx Value) Value {
	if !widthPx.Positive() {
		return Indeterminate
	}
	return div(scale(widthMm, micrometersPerMillimeter), widthPx)
}

// SensorDiagonal returns the Euclidean diagonal of a width × height rectangle.
func SensorDiagonal(widthMm, heightMm Value) Value {
	return hypot(widthMm, heightMm)
}

// EffectiveCoupler returns the coupler magnification used for total
// magnification: the given value when positive, otherwise 1.
func EffectiveCoupler(coupler Value) float64 {
	if coupler.Positive() {
		return coupler.v
	}
	return 1
}

// TotalMagnification returns max(0, objective) × EffectiveCoupler(coupler).
func TotalMagnification(objective, coupler Value) Value {
	if !objective.ok {
		return Indeterminate
	}
	return Of(math.Max(0, objective.v) * EffectiveCoupler(coupler))
}

// RayleighResolution returns 0.61 × λ / NA in micrometers.
func RayleighResolution(wavelengthUm, na Value) Value {
	if !wavelengthUm.Positive() || !na.Positive() {
		return Indeterminate
	}
	return Of(RayleighFactor * wavelengthUm.v / na.v)
}

// ObjectPixelSize returns the sensor pitch projected onto the object plane.
func ObjectPixelSize(pitchUm, totalMagnification Value) Value {
	if !totalMagnification.Positive() {
		return Indeterminate
	}
	return div(pitchUm, totalMagnification)
}

// SensorLimitedResolution returns the smallest feature the sensor can sample
// at two pixels per feature.
func SensorLimitedResolution(objectPixelUm Value) Value {
	return scale(objectPixelUm, NyquistSamples)
}

// LimitingResolution returns the worse (larger) of the two resolution limits.
// An indeterminate operand makes the result indeterminate.
func LimitingResolution(opticalUm, sensorUm Value) Value {
	return lift(opticalUm, sensorUm, math.Max)
}

// ClassifySampling compares the object-side pixel size with half the
// Rayleigh resolution.
func ClassifySampling(objectPixelUm, rayleighUm Value) SamplingStatus {
	if !objectPixelUm.ok || !rayleighUm.ok {
		return SamplingOptimal
	}
	nyquist := rayleighUm.v / NyquistSamples
	switch {
	case objectPixelUm.v > nyquist:
		return SamplingUndersampled
	case objectPixelUm.v < nyquist/OversamplingFactor:
		return SamplingOversampled
	default:
		return SamplingOptimal
	}
}

// ObjectFOV returns the object-side field of view in millimeters.
func ObjectFOV(widthMm, heightMm, totalMagnification Value) (width, height Value) {
	if !totalMagnification.Positive() {
		return Indeterminate, Indeterminate
	}
	return div(widthMm, totalMagnification), div(heightMm, totalMagnification)
}

// RequiredPixelSizeForNyquist returns the sensor pitch in micrometers that
// samples the Rayleigh resolution exactly at Nyquist.
func RequiredPixelSizeForNyquist(totalMagnification, rayleighUm Value) Value {
	return mul(totalMagnification, scale(rayleighUm, 1.0/NyquistSamples))
}

// OptimumArraySize returns the pixel count along one sensor axis that would
// satisfy Nyquist with the required pitch.
func OptimumArraySize(sizeMm, requiredPitchUm Value) Value {
	return Round(div(scale(sizeMm, micrometersPerMillimeter), requiredPitchUm), 0)
}

// ProjectionSize returns the sensor rectangle projected back onto the
// intermediate image plane. The coupler is clamped to MinProjectionCoupler.
func ProjectionSize(widthMm, heightMm, coupler Value) (width, height Value) {
	if !coupler.ok {
		return Indeterminate, Indeterminate
	}
	c := Of(math.Max(MinProjectionCoupler, coupler.v))
	return div(widthMm, c), div(heightMm, c)
}

// ProjectionDiagonal returns the diagonal of ProjectionSize.
func ProjectionDiagonal(widthMm, heightMm, coupler Value) Value {
	return hypot(ProjectionSize(widthMm, heightMm, coupler))
}

// CoverageRatio returns projection diagonal / field number × 100.
func CoverageRatio(projectionDiagonalMm, fieldNumberMm Value) Value {
	if !fieldNumberMm.Positive() {
		return Indeterminate
	}
	return scale(div(projectionDiagonalMm, fieldNumberMm), 100)
}

// ClassifyCoverage rates a coverage ratio in percent.
func ClassifyCoverage(ratioPct Value) CoverageStatus {
	if !ratioPct.ok {
		return CoverageOK
	}
	switch {
	case ratioPct.v > CoverageUpperPct:
		return CoverageAdapterTooSmall
	case ratioPct.v < CoverageLowerPct:
		return CoverageAdapterTooLarge
	default:
		return CoverageOK
	}
}

// DisplayMagnification estimates how many times larger the object appears
// on screen at 100% zoom: display pixel pitch over object-side pixel size.
func DisplayMagnification(objectPixelUm Value, display *DisplaySpec) Value {
	if display == nil || !objectPixelUm.Positive() || display.DiagonalInch <= 0 {
		return Indeterminate
	}
	pixelDiagonal := math.Hypot(float64(display.WidthPx), float64(display.HeightPx))
	if pixelDiagonal == 0 {
		return Indeterminate
	}
	ppi := pixelDiagonal / display.DiagonalInch
	displayPixelMm := MillimetersPerInch / ppi
	objectPixelMm := objectPixelUm.v / micrometersPerMillimeter
	return Of(displayPixelMm / objectPixelMm)
}
