package preset

import "github.com/nao1215/scopecalc/internal/optics"

// Camera is a microscope camera with its recommended C-mount adapter.
type Camera struct {
	Name                 string  `json:"name" yaml:"name"`
	WidthPx              int     `json:"widthPx" yaml:"widthPx"`
	HeightPx             int     `json:"heightPx" yaml:"heightPx"`
	PixelPitchUm         float64 `json:"pixelPitchUm" yaml:"pixelPitchUm"`
	CouplerMagnification float64 `json:"couplerMagnification" yaml:"couplerMagnification"`
}

var cameras = []Camera{
	{Name: "Educam 105", WidthPx: 2592, HeightPx: 1944, PixelPitchUm: 2.0, CouplerMagnification: 0.5},
	{Name: "Axiocam 105 color", WidthPx: 2592, HeightPx: 1944, PixelPitchUm: 2.2, CouplerMagnification: 0.5},
	{Name: `Axiocam 212 color (12MP; 1/1.7")`, WidthPx: 4032, HeightPx: 3044, PixelPitchUm: 1.85, CouplerMagnification: 0.5},
	{Name: `Axiocam 212 color (4K; 1/2.1")`, WidthPx: 3840, HeightPx: 2160, PixelPitchUm: 1.85, CouplerMagnification: 0.5},
	{Name: `Axiocam 212 color (1080p; 1/2.1")`, WidthPx: 1920, HeightPx: 1080, PixelPitchUm: 3.7, CouplerMagnification: 0.5},
	{Name: `Axiocam 203 mono (3MP; 1/1.7")`, WidthPx: 1984, HeightPx: 1522, PixelPitchUm: 3.7, CouplerMagnification: 0.5},
	{Name: `Axiocam 203 mono (1080p; 1/2.1")`, WidthPx: 1920, HeightPx: 1080, PixelPitchUm: 3.7, CouplerMagnification: 0.5},
	{Name: `Axiocam 305 color (2/3")`, WidthPx: 2464, HeightPx: 2056, PixelPitchUm: 3.45, CouplerMagnification: 0.63},
	{Name: `Axiocam 705 color (2/3")`, WidthPx: 2464, HeightPx: 2056, PixelPitchUm: 3.45, CouplerMagnification: 0.63},
	{Name: `Axiocam 712 color (1")`, WidthPx: 4096, HeightPx: 3008, PixelPitchUm: 3.45, CouplerMagnification: 1},
	{Name: `Axiocam 807 color (1.1")`, WidthPx: 3216, HeightPx: 2208, PixelPitchUm: 4.5, CouplerMagnification: 1},
	{Name: `Axiocam 820 color (1.1")`, WidthPx: 4512, HeightPx: 4512, PixelPitchUm: 2.74, CouplerMagnification: 1},
}

// Cameras returns a copy of the camera table in display order.
func Cameras() []Camera {
	out := make([]Camera, len(cameras))
	copy(out, cameras)
	return out
}

// Apply copies the sensor geometry and adapter magnification into in.
// Objective, wavelength and display fields are left untouched.
func (c Camera) Apply(in *optics.SystemInput) {
	in.Sensor.WidthPx = optics.Of(float64(c.WidthPx))
	in.Sensor.HeightPx = optics.Of(float64(c.HeightPx))
	in.Sensor.PixelPitchUm = optics.Of(c.PixelPitchUm)
	in.Objective.CouplerMagnification = optics.Of(c.CouplerMagnification)
}

// FindCamera looks up a camera by name: an exact case-insensitive match
// first, then the best fuzzy match.
func FindCamera(name string) (Camera, error) {
	idx, err := find(name, cameraNames())
	if err != nil {
		return Camera{}, err
	}
	return cameras[idx], nil
}

// SearchCameras returns cameras matching query, best match first.
// An empty query returns every camera.
func SearchCameras(query string) []Camera {
	indexes := search(query, cameraNames())
	out := make([]Camera, 0, len(indexes))
	for _, i := range indexes {
		out = append(out, cameras[i])
	}
	return out
}

func cameraNames() []string {
	names := make([]string, len(cameras))
	for i, c := range cameras {
		names[i] = c.Name
	}
	return names
}
