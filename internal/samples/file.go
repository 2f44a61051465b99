package samples

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// listFile is the YAML document layout.
type listFile struct {
	Samples []Sample `yaml:"samples"`
}

// Write encodes list as YAML.
func Write(w io.Writer, list []Sample) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(listFile{Samples: list}); err != nil {
		return fmt.Errorf("failed to encode sample list: %w", err)
	}
	return enc.Close()
}

// WriteFile writes list to path, creating parent directories.
func WriteFile(path string, list []Sample) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path) //nolint:gosec // output path is user-provided
	if err != nil {
		return fmt.Errorf("failed to create sample list: %w", err)
	}
	if err := Write(f, list); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Load reads a list written by WriteFile.
func Load(path string) ([]Sample, error) {
	data, err := os.ReadFile(path) //nolint:gosec // input path is user-provided
	if err != nil {
		return nil, fmt.Errorf("failed to read sample list: %w", err)
	}

	var lf listFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("failed to parse sample list %s: %w", path, err)
	}
	return lf.Samples, nil
}
