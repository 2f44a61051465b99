package optics

// Decimal precision of the output fields.
const (
	LengthDigits        = 3
	MagnificationDigits = 2
	CoverageDigits      = 1
)

// SystemOutput holds every derived metric, rounded for display.
type SystemOutput struct {
	// Sensor
	SensorWidthMm    Value `json:"sensorWidthMm"`
	SensorHeightMm   Value `json:"sensorHeightMm"`
	SensorDiagonalMm Value `json:"sensorDiagonalMm"`
	PixelSizeUm      Value `json:"pixelSizeUm"`

	TotalMagnification Value `json:"totalMagnification"`

	// Resolution and sampling
	RayleighResolutionUm      Value          `json:"rayleighResolutionUm"`
	ObjectPixelSizeUm         Value          `json:"objectPixelSizeUm"`
	SensorLimitedResolutionUm Value          `json:"sensorLimitedResolutionUm"`
	LimitingResolutionUm      Value          `json:"limitingResolutionUm"`
	SamplingStatus            SamplingStatus `json:"samplingStatus"`

	// Field of view and adapter coverage
	ObjectFovWidthMm     Value          `json:"objectFovWidthMm"`
	ObjectFovHeightMm    Value          `json:"objectFovHeightMm"`
	ImagePlaneFnMm       Value          `json:"imagePlaneFnMm"`
	ProjectionWidthMm    Value          `json:"projectionWidthMm"`
	ProjectionHeightMm   Value          `json:"projectionHeightMm"`
	ProjectionDiagonalMm Value          `json:"projectionDiagonalMm"`
	CoverageRatioPct     Value          `json:"coverageRatioPct"`
	CoverageStatus       CoverageStatus `json:"coverageStatus"`

	// Recommendations
	RequiredPixelSizeUmForNyquist Value `json:"requiredPixelSizeUmForNyquist"`
	OptimumArrayWidthPx           Value `json:"optimumArrayWidthPx"`
	OptimumArrayHeightPx          Value `json:"optimumArrayHeightPx"`

	// DisplayMagnification is indeterminate when no display is given.
	DisplayMagnification Value `json:"displayMagnification"`
}

// Compute derives all metrics for in. Classifications use unrounded values;
// every numeric field is rounded only when the output is assembled.
func Compute(in SystemInput) SystemOutput {
	sensor := in.Sensor.Resolve()
	obj := in.Objective

	diagonal := SensorDiagonal(sensor.WidthMm, sensor.HeightMm)
	totalMag := TotalMagnification(obj.Magnification, obj.CouplerMagnification)

	rayleigh := RayleighResolution(in.WavelengthUm, obj.NumericalAperture)
	objectPixel := ObjectPixelSize(sensor.PixelPitchUm, totalMag)
	sensorLimited := SensorLimitedResolution(objectPixel)
	limiting := LimitingResolution(rayleigh, sensorLimited)

	fovWidth, fovHeight := ObjectFOV(sensor.WidthMm, sensor.HeightMm, totalMag)

	required := RequiredPixelSizeForNyquist(totalMag, rayleigh)

	projWidth, projHeight := ProjectionSize(sensor.WidthMm, sensor.HeightMm, obj.CouplerMagnification)
	projDiagonal := hypot(projWidth, projHeight)
	coverage := CoverageRatio(projDiagonal, obj.FieldNumberMm)

	return SystemOutput{
		SensorWidthMm:    Round(sensor.WidthMm, LengthDigits),
		SensorHeightMm:   Round(sensor.HeightMm, LengthDigits),
		SensorDiagonalMm: Round(diagonal, LengthDigits),
		PixelSizeUm:      Round(sensor.PixelPitchUm, LengthDigits),

		TotalMagnification: Round(totalMag, MagnificationDigits),

		RayleighResolutionUm:      Round(rayleigh, LengthDigits),
		ObjectPixelSizeUm:         Round(objectPixel, LengthDigits),
		SensorLimitedResolutionUm: Round(sensorLimited, LengthDigits),
		LimitingResolutionUm:      Round(limiting, LengthDigits),
		SamplingStatus:            ClassifySampling(objectPixel, rayleigh),

		ObjectFovWidthMm:     Round(fovWidth, LengthDigits),
		ObjectFovHeightMm:    Round(fovHeight, LengthDigits),
		ImagePlaneFnMm:       Round(obj.FieldNumberMm, LengthDigits),
		ProjectionWidthMm:    Round(projWidth, LengthDigits),
		ProjectionHeightMm:   Round(projHeight, LengthDigits),
		ProjectionDiagonalMm: Round(projDiagonal, LengthDigits),
		CoverageRatioPct:     Round(coverage, CoverageDigits),
		CoverageStatus:       ClassifyCoverage(coverage),

		RequiredPixelSizeUmForNyquist: Round(required, LengthDigits),
		OptimumArrayWidthPx:           OptimumArraySize(sensor.WidthMm, required),
		OptimumArrayHeightPx:          OptimumArraySize(sensor.HeightMm, required),

		DisplayMagnification: Round(DisplayMagnification(objectPixel, in.Display), MagnificationDigits),
	}
}
