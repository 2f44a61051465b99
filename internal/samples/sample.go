package samples

// HatchKey is the key of the synthetic hatched-pattern entry.
const HatchKey = "hatch"

// HatchLabel is the translation key used as the label of the Hatch entry.
const HatchLabel = "samples.hatch"

// URLPrefix is prepended to each file name to form Sample.Filename.
const URLPrefix = "samples/"

// Sample is one entry of the sample picker.
type Sample struct {
	// Key identifies the sample. For files it is the file name.
	Key string `yaml:"key" json:"key"`

	// Label is shown in the picker. For Hatch it is a translation key.
	Label string `yaml:"label" json:"label"`

	// Filename is the path the front end loads the image from.
	// Empty for Hatch.
	Filename string `yaml:"filename,omitempty" json:"filename,omitempty"`

	// Camera is the EXIF make and model, when requested and present.
	Camera string `yaml:"camera,omitempty" json:"camera,omitempty"`
}

// Hatch returns the sentinel entry that always heads the list.
func Hatch() Sample {
	return Sample{Key: HatchKey, Label: HatchLabel}
}

// IsHatch reports whether s is the synthetic entry.
func (s Sample) IsHatch() bool {
	return s.Key == HatchKey && s.Filename == ""
}

// fromFile builds the entry for an image file name.
func fromFile(name string) Sample {
	return Sample{Key: name, Label: name, Filename: URLPrefix + name}
}
