package report

import (
	"github.com/nao1215/scopecalc/internal/i18n"
	"github.com/nao1215/scopecalc/internal/optics"
)

// Units appended to values.
const (
	unitMm = "mm"
	unitUm = "µm"
	unitX  = "×"
)

// metric is one labeled value of a report section.
type metric struct {
	// key is the translation key of the label. tip, if set, explains it.
	key   string
	tip   string
	value string
}

// section is a titled group of metrics.
type section struct {
	key     string
	metrics []metric
}

// parameterSection lists the inputs that drive the calculation.
func parameterSection(in optics.SystemInput) section {
	s := in.Sensor
	o := in.Objective
	metrics := []metric{
		{key: "labels.cameraPixels", tip: "tips.cameraPixels", value: pair(s.WidthPx, s.HeightPx, "px")},
		{key: "labels.pixelPitch", tip: "tips.sensorPixel", value: s.PixelPitchUm.String()},
		{key: "labels.objectiveMag", tip: "tips.objectiveMag", value: withUnit(o.Magnification, unitX)},
		{key: "labels.NA", tip: "tips.NA", value: o.NumericalAperture.String()},
		{key: "labels.fieldNumber", tip: "tips.fieldNumber", value: o.FieldNumberMm.String()},
		{key: "labels.couplerMag", tip: "tips.couplerMag", value: withUnit(o.CouplerMagnification, unitX)},
		{key: "labels.wavelength", tip: "tips.wavelength", value: in.WavelengthUm.String()},
	}
	if !s.WidthPx.Valid() {
		metrics[0] = metric{key: "cards.sensorSize", value: pair(s.WidthMm, s.HeightMm, unitMm)}
	}
	if d := in.Display; d != nil {
		metrics = append(metrics,
			metric{key: "labels.diagonalInch", tip: "tips.display", value: optics.Of(d.DiagonalInch).String()},
			metric{key: "labels.displayRes", value: pair(optics.Of(float64(d.WidthPx)), optics.Of(float64(d.HeightPx)), "px")},
		)
	}
	return section{key: "titles.parameters", metrics: metrics}
}

// resultSections groups the outputs the way the calculator shows them.
func resultSections(tr i18n.Translator, out optics.SystemOutput) []section {
	sensor := section{key: "groups.sensor", metrics: []metric{
		{key: "cards.sensorSize", value: pair(out.SensorWidthMm, out.SensorHeightMm, unitMm)},
		{key: "cards.sensorDiagonal", tip: "tips.sensorDiagonal", value: withUnit(out.SensorDiagonalMm, unitMm)},
		{key: "labels.pixelPitch", tip: "tips.sensorPixel", value: out.PixelSizeUm.String()},
		{key: "cards.totalMag", tip: "tips.totalMag", value: withUnit(out.TotalMagnification, unitX)},
	}}

	sampling := section{key: "groups.sampling", metrics: []metric{
		{key: "cards.opticalResolution", tip: "tips.opticalResolution", value: withUnit(out.RayleighResolutionUm, unitUm)},
		{key: "cards.objectPixel", tip: "tips.objectPixel", value: withUnit(out.ObjectPixelSizeUm, unitUm)},
		{key: "cards.sensorLimited", tip: "tips.sensorLimited", value: withUnit(out.SensorLimitedResolutionUm, unitUm)},
		{key: "cards.limitingResolution", tip: "tips.limitingResolution", value: withUnit(out.LimitingResolutionUm, unitUm)},
		{key: "cards.sampling", tip: "tips.sampling", value: samplingLabel(tr, out.SamplingStatus)},
		{key: "cards.requiredPixel", value: withUnit(out.RequiredPixelSizeUmForNyquist, unitUm)},
		{key: "cards.optimumArray", tip: "tips.optimumArray", value: pair(out.OptimumArrayWidthPx, out.OptimumArrayHeightPx, tr.T("units.px", nil))},
	}}

	fov := section{key: "groups.opticsFov", metrics: []metric{
		{key: "cards.objectFov", tip: "tips.objectFov", value: pair(out.ObjectFovWidthMm, out.ObjectFovHeightMm, unitMm)},
		{key: "labels.fieldNumber", tip: "tips.fieldNumber", value: out.ImagePlaneFnMm.String()},
		{key: "cards.projectionDiagonal", tip: "tips.projectionDiagonal", value: withUnit(out.ProjectionDiagonalMm, unitMm)},
		{key: "cards.coverage", tip: "tips.coverage", value: withUnit(out.CoverageRatioPct, "%")},
		{key: "cards.coverageEval", tip: "tips.coverageEval", value: coverageLabel(tr, out.CoverageStatus)},
	}}
	if out.DisplayMagnification.Valid() {
		fov.metrics = append(fov.metrics, metric{
			key: "cards.displayMag", tip: "tips.displayMag", value: withUnit(out.DisplayMagnification, unitX),
		})
	}

	return []section{sensor, sampling, fov}
}

// projectionCaption is the one-line description of the adapter geometry.
func projectionCaption(tr i18n.Translator, out optics.SystemOutput) string {
	return tr.T("misc.projectionLabel", i18n.Params{
		"w": out.ProjectionWidthMm.String(),
		"h": out.ProjectionHeightMm.String(),
	})
}

func samplingLabel(tr i18n.Translator, s optics.SamplingStatus) string {
	return tr.T("status."+s.String(), nil)
}

func coverageLabel(tr i18n.Translator, c optics.CoverageStatus) string {
	return tr.T("coverage."+c.String(), nil)
}

// withUnit formats v followed by unit, or "-" when v is indeterminate.
func withUnit(v optics.Value, unit string) string {
	if !v.Valid() {
		return v.String()
	}
	if unit == unitX || unit == "%" {
		return v.String() + unit
	}
	return v.String() + " " + unit
}

// pair formats "a × b unit". It is "-" only when both are indeterminate.
func pair(a, b optics.Value, unit string) string {
	if !a.Valid() && !b.Valid() {
		return optics.Indeterminate.String()
	}
	return a.String() + " × " + b.String() + " " + unit
}
