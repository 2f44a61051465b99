package optics

import "math"

// halfTolerance absorbs binary representation error when deciding whether a
// scaled value sits exactly on a half.
const halfTolerance = 1e-9

// Round rounds v to the given number of decimals, half away from zero.
// Indeterminate passes through, as do values too large to scale.
//
// Scaling by a power of ten can land a decimal half such as 0.1725 a hair
// below x.5, so values within halfTolerance of a half are treated as halves.
func Round(v Value, digits int) Value {
	if !v.ok {
		return Indeterminate
	}
	p := math.Pow10(digits)
	scaled := v.v * p
	if math.IsInf(scaled, 0) {
		// No fractional digits remain at this magnitude.
		return v
	}
	whole, frac := math.Modf(scaled)
	if math.Abs(math.Abs(frac)-0.5) < halfTolerance {
		return Of((whole + math.Copysign(1, scaled)) / p)
	}
	return Of(math.Round(scaled) / p)
}
