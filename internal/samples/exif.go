package samples

import (
	"errors"
	"strings"

	"github.com/dsoprea/go-exif/v3"
)

// errNoCamera is returned when the EXIF block carries neither Make nor Model.
var errNoCamera = errors.New("no camera tags")

// cameraFromEXIF returns "Make Model" from the image's EXIF block.
func cameraFromEXIF(data []byte) (string, error) {
	raw, err := exif.SearchAndExtractExif(data)
	if err != nil {
		return "", err
	}

	entries, _, err := exif.GetFlatExifData(raw, nil)
	if err != nil {
		return "", err
	}

	var maker, model string
	for _, entry := range entries {
		switch entry.TagName {
		case "Make":
			if maker == "" {
				maker = strings.TrimSpace(entry.Formatted)
			}
		case "Model":
			if model == "" {
				model = strings.TrimSpace(entry.Formatted)
			}
		}
	}

	name := cameraName(maker, model)
	if name == "" {
		return "", errNoCamera
	}
	return name, nil
}

// cameraName joins the EXIF Make and Model tags. Many vendors repeat the
// make in the model string, so the make is only prepended when missing.
func cameraName(maker, model string) string {
	switch {
	case model == "":
		return maker
	case maker == "", strings.HasPrefix(model, maker):
		return model
	default:
		return maker + " " + model
	}
}
