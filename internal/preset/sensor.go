package preset

import "github.com/nao1215/scopecalc/internal/optics"

// SensorFormat is a nominal sensor size such as 2/3" or Micro Four Thirds.
type SensorFormat struct {
	Name     string  `json:"name" yaml:"name"`
	WidthMm  float64 `json:"widthMm" yaml:"widthMm"`
	HeightMm float64 `json:"heightMm" yaml:"heightMm"`
}

var sensorFormats = []SensorFormat{
	{Name: "Full Frame (36 x 24 mm)", WidthMm: 36, HeightMm: 24},
	{Name: "APS-C Canon (22.3 x 14.9 mm)", WidthMm: 22.3, HeightMm: 14.9},
	{Name: "Micro Four Thirds (17.3 x 13.0 mm)", WidthMm: 17.3, HeightMm: 13.0},
	{Name: `1" (13.2 x 8.8 mm)`, WidthMm: 13.2, HeightMm: 8.8},
	{Name: `2/3" (8.8 x 6.6 mm)`, WidthMm: 8.8, HeightMm: 6.6},
	{Name: `1/1.8" (7.18 x 5.32 mm)`, WidthMm: 7.18, HeightMm: 5.32},
	{Name: `1/1.7" (7.60 x 5.70 mm)`, WidthMm: 7.6, HeightMm: 5.7},
	{Name: `1/2.3" (6.17 x 4.55 mm)`, WidthMm: 6.17, HeightMm: 4.55},
	{Name: `1/3" (4.8 x 3.6 mm)`, WidthMm: 4.8, HeightMm: 3.6},
	{Name: `1/4" (3.6 x 2.7 mm)`, WidthMm: 3.6, HeightMm: 2.7},
}

// SensorFormats returns a copy of the sensor-format table in display order.
func SensorFormats() []SensorFormat {
	out := make([]SensorFormat, len(sensorFormats))
	copy(out, sensorFormats)
	return out
}

// Apply sets the physical sensor size. Pixel counts are cleared because
// they would otherwise override the millimeter values; an explicit pixel
// pitch is kept.
func (s SensorFormat) Apply(in *optics.SystemInput) {
	in.Sensor.WidthMm = optics.Of(s.WidthMm)
	in.Sensor.HeightMm = optics.Of(s.HeightMm)
	in.Sensor.WidthPx = optics.Indeterminate
	in.Sensor.HeightPx = optics.Indeterminate
}

// FindSensorFormat looks up a sensor format by name.
func FindSensorFormat(name string) (SensorFormat, error) {
	idx, err := find(name, sensorFormatNames())
	if err != nil {
		return SensorFormat{}, err
	}
	return sensorFormats[idx], nil
}

// SearchSensorFormats returns formats matching query, best match first.
func SearchSensorFormats(query string) []SensorFormat {
	indexes := search(query, sensorFormatNames())
	out := make([]SensorFormat, 0, len(indexes))
	for _, i := range indexes {
		out = append(out, sensorFormats[i])
	}
	return out
}

func sensorFormatNames() []string {
	names := make([]string, len(sensorFormats))
	for i, s := range sensorFormats {
		names[i] = s.Name
	}
	return names
}
