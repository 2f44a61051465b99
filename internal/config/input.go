package config

import (
	"fmt"

	"github.com/nao1215/scopecalc/internal/optics"
	"github.com/nao1215/scopecalc/internal/preset"
)

// SensorFields is the sensor block of an input file. Nil fields are unset.
type SensorFields struct {
	WidthMm      *float64 `yaml:"widthMm,omitempty"`
	HeightMm     *float64 `yaml:"heightMm,omitempty"`
	WidthPx      *int     `yaml:"widthPx,omitempty"`
	HeightPx     *int     `yaml:"heightPx,omitempty"`
	PixelPitchUm *float64 `yaml:"pixelPitchUm,omitempty"`
	IsColor      *bool    `yaml:"isColor,omitempty"`
}

// ObjectiveFields is the objective block of an input file.
type ObjectiveFields struct {
	Magnification        *float64 `yaml:"magnification,omitempty"`
	NumericalAperture    *float64 `yaml:"numericalAperture,omitempty"`
	FieldNumberMm        *float64 `yaml:"fieldNumberMm,omitempty"`
	CouplerMagnification *float64 `yaml:"couplerMagnification,omitempty"`
}

// DisplayFields is the display block of an input file.
type DisplayFields struct {
	DiagonalInch float64 `yaml:"diagonalInch"`
	WidthPx      int     `yaml:"widthPx"`
	HeightPx     int     `yaml:"heightPx"`
}

// InputFile represents the structure of a .scopecalc.yaml input file.
//
//	camera: Axiocam 105 color
//	objective:
//	  magnification: 40
//	  numericalAperture: 0.65
type InputFile struct {
	// Camera names a camera preset. It fills pixel counts, pitch and adapter.
	Camera string `yaml:"camera,omitempty"`

	// SensorFormat names a sensor-format preset. It fills the size in mm
	// and clears the pixel counts.
	SensorFormat string `yaml:"sensorFormat,omitempty"`

	Sensor       SensorFields    `yaml:"sensor,omitempty"`
	Objective    ObjectiveFields `yaml:"objective,omitempty"`
	WavelengthUm *float64        `yaml:"wavelengthUm,omitempty"`
	Display      *DisplayFields  `yaml:"display,omitempty"`
}

// Validate rejects values that cannot describe a physical system.
func (f *InputFile) Validate() error {
	if f.WavelengthUm != nil && *f.WavelengthUm < 0 {
		return fmt.Errorf("%w: %g", ErrInvalidWavelength, *f.WavelengthUm)
	}
	return nil
}

// DefaultSystemInput returns the calculator defaults: a 10x/0.25 objective,
// 22 mm field number, 1x adapter and 0.55 µm light. The sensor is unset.
func DefaultSystemInput() optics.SystemInput {
	return optics.SystemInput{
		Objective: optics.ObjectiveSpec{
			Magnification:        optics.Of(DefaultObjectiveMagnification),
			NumericalAperture:    optics.Of(DefaultNumericalAperture),
			FieldNumberMm:        optics.Of(DefaultFieldNumberMm),
			CouplerMagnification: optics.Of(DefaultCouplerMagnification),
		},
		WavelengthUm: optics.Of(DefaultWavelengthUm),
	}
}

// SystemInput builds the calculator input. Layers are applied in order:
// defaults, the camera preset, the sensor-format preset, then every field
// set explicitly in the file.
func (f *InputFile) SystemInput() (optics.SystemInput, error) {
	return f.Overlay(nil)
}

// Overlay builds the calculator input from f and then layers over on top of
// it, presets first and explicit fields last, so that a camera named in over
// replaces the sensor fields of f. A nil over is the same as SystemInput.
func (f *InputFile) Overlay(over *InputFile) (optics.SystemInput, error) {
	in := DefaultSystemInput()
	for _, layer := range []*InputFile{f, over} {
		if layer == nil {
			continue
		}
		if err := layer.applyTo(&in); err != nil {
			return optics.SystemInput{}, err
		}
	}
	return in, nil
}

// applyTo applies the presets of f and then its explicit fields.
func (f *InputFile) applyTo(in *optics.SystemInput) error {
	if f.Camera != "" {
		c, err := preset.FindCamera(f.Camera)
		if err != nil {
			return fmt.Errorf("camera %q: %w", f.Camera, err)
		}
		c.Apply(in)
	}

	if f.SensorFormat != "" {
		s, err := preset.FindSensorFormat(f.SensorFormat)
		if err != nil {
			return fmt.Errorf("sensor format %q: %w", f.SensorFormat, err)
		}
		s.Apply(in)
	}

	f.apply(in)
	return nil
}

// apply copies every explicitly set field into in.
func (f *InputFile) apply(in *optics.SystemInput) {
	s := f.Sensor
	setFloat(&in.Sensor.WidthMm, s.WidthMm)
	setFloat(&in.Sensor.HeightMm, s.HeightMm)
	setInt(&in.Sensor.WidthPx, s.WidthPx)
	setInt(&in.Sensor.HeightPx, s.HeightPx)
	setFloat(&in.Sensor.PixelPitchUm, s.PixelPitchUm)
	if s.IsColor != nil {
		in.Sensor.IsColor = *s.IsColor
	}

	o := f.Objective
	setFloat(&in.Objective.Magnification, o.Magnification)
	setFloat(&in.Objective.NumericalAperture, o.NumericalAperture)
	setFloat(&in.Objective.FieldNumberMm, o.FieldNumberMm)
	setFloat(&in.Objective.CouplerMagnification, o.CouplerMagnification)

	setFloat(&in.WavelengthUm, f.WavelengthUm)

	if f.Display != nil {
		in.Display = &optics.DisplaySpec{
			DiagonalInch: f.Display.DiagonalInch,
			WidthPx:      f.Display.WidthPx,
			HeightPx:     f.Display.HeightPx,
		}
	}
}

func setFloat(dst *optics.Value, src *float64) {
	if src != nil {
		*dst = optics.Of(*src)
	}
}

func setInt(dst *optics.Value, src *int) {
	if src != nil {
		*dst = optics.Of(float64(*src))
	}
}
