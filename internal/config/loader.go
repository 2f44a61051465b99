package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadInputFile reads an input file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadInputFile(path string) (*InputFile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}
	return ParseInputFile(data)
}

// ParseInputFile decodes an input document. Unknown keys are rejected so
// that typos do not silently fall back to defaults.
func ParseInputFile(data []byte) (*InputFile, error) {
	var f InputFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		// A document holding only comments decodes to nothing.
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("failed to parse input file: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// FindInputFile searches for the input file in the following order:
// 1. If inputPath is specified, use it directly
// 2. Look for .scopecalc.yaml in the current directory
// 3. Look for .scopecalc.yaml in the user's home directory
//
// Returns the path to the input file if found, or empty string if not found.
func FindInputFile(inputPath string) string {
	if inputPath != "" {
		if _, err := os.Stat(inputPath); err == nil {
			return inputPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdInput := filepath.Join(cwd, DefaultInputFile)
		if _, err := os.Stat(cwdInput); err == nil {
			return cwdInput
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeInput := filepath.Join(home, DefaultInputFile)
		if _, err := os.Stat(homeInput); err == nil {
			return homeInput
		}
	}

	return ""
}
