package i18n

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// PreferenceFile is the file name of the saved locale preference.
const PreferenceFile = "locale.yaml"

// Store persists the locale preference.
type Store interface {
	// Load returns the saved locale, or ErrNoPreference.
	Load() (Locale, error)

	// Save replaces the saved locale.
	Save(l Locale) error
}

// preference is the on-disk layout of FileStore.
type preference struct {
	Locale string `yaml:"locale"`
}

// FileStore keeps the preference in a small YAML file.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the preference file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the preference file. A missing file yields ErrNoPreference;
// a saved tag that is no longer supported yields ErrUnsupportedLocale.
func (s *FileStore) Load() (Locale, error) {
	data, err := os.ReadFile(s.path) //nolint:gosec // path comes from the XDG config dir
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNoPreference
		}
		return "", fmt.Errorf("failed to read locale preference: %w", err)
	}

	var p preference
	if err := yaml.Unmarshal(data, &p); err != nil {
		return "", fmt.Errorf("failed to parse locale preference %s: %w", s.path, err)
	}
	if p.Locale == "" {
		return "", ErrNoPreference
	}
	return ParseLocale(p.Locale)
}

// Save writes the preference file, creating parent directories.
func (s *FileStore) Save(l Locale) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(preference{Locale: string(l)})
	if err != nil {
		return fmt.Errorf("failed to encode locale preference: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write locale preference: %w", err)
	}
	return nil
}

// MemoryStore keeps the preference in memory.
type MemoryStore struct {
	mu     sync.Mutex
	locale Locale
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load implements Store.
func (s *MemoryStore) Load() (Locale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locale == "" {
		return "", ErrNoPreference
	}
	return s.locale, nil
}

// Save implements Store.
func (s *MemoryStore) Save(l Locale) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locale = l
	return nil
}
