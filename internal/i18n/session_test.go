package i18n

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSession(t *testing.T) {
	t.Parallel()

	t.Run("defaults to Chinese", func(t *testing.T) {
		t.Parallel()
		s := NewSession(NewMemoryStore())
		if err := s.Load(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Locale() != Chinese {
			t.Errorf("expected zh, got %s", s.Locale())
		}
	})

	t.Run("Set persists and Load restores", func(t *testing.T) {
		t.Parallel()
		store := NewMemoryStore()
		if err := NewSession(store).Set(German); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		s := NewSession(store)
		if err := s.Load(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Locale() != German {
			t.Errorf("expected de, got %s", s.Locale())
		}
		if s.Translator().Locale() != German {
			t.Errorf("translator bound to %s", s.Translator().Locale())
		}
	})

	t.Run("Set rejects unsupported locale", func(t *testing.T) {
		t.Parallel()
		s := NewSession(NewMemoryStore())
		if err := s.Set("fr"); !errors.Is(err, ErrUnsupportedLocale) {
			t.Errorf("expected ErrUnsupportedLocale, got %v", err)
		}
		if s.Locale() != Chinese {
			t.Errorf("locale changed to %s", s.Locale())
		}
	})

	t.Run("Use does not persist", func(t *testing.T) {
		t.Parallel()
		store := NewMemoryStore()
		s := NewSession(store)
		s.Use(English)
		if s.Locale() != English {
			t.Errorf("expected en, got %s", s.Locale())
		}
		if _, err := store.Load(); !errors.Is(err, ErrNoPreference) {
			t.Errorf("expected nothing saved, got %v", err)
		}
	})

	t.Run("nil store", func(t *testing.T) {
		t.Parallel()
		s := NewSession(nil)
		if err := s.Load(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if err := s.Set(English); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestFileStore(t *testing.T) {
	t.Parallel()

	t.Run("missing file has no preference", func(t *testing.T) {
		t.Parallel()
		store := NewFileStore(filepath.Join(t.TempDir(), PreferenceFile))
		if _, err := store.Load(); !errors.Is(err, ErrNoPreference) {
			t.Errorf("expected ErrNoPreference, got %v", err)
		}
	})

	t.Run("round trip creates directories", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "nested", "scopecalc", PreferenceFile)
		store := NewFileStore(path)
		if err := store.Save(English); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := store.Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != English {
			t.Errorf("expected en, got %s", got)
		}
		if store.Path() != path {
			t.Errorf("unexpected path %s", store.Path())
		}
	})

	t.Run("unsupported saved tag", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), PreferenceFile)
		if err := os.WriteFile(path, []byte("locale: fr\n"), 0600); err != nil {
			t.Fatal(err)
		}
		if _, err := NewFileStore(path).Load(); !errors.Is(err, ErrUnsupportedLocale) {
			t.Errorf("expected ErrUnsupportedLocale, got %v", err)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), PreferenceFile)
		if err := os.WriteFile(path, []byte("locale: [unterminated\n"), 0600); err != nil {
			t.Fatal(err)
		}
		if _, err := NewFileStore(path).Load(); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("session surfaces load errors", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), PreferenceFile)
		if err := os.WriteFile(path, []byte("locale: fr\n"), 0600); err != nil {
			t.Fatal(err)
		}
		s := NewSession(NewFileStore(path))
		if err := s.Load(); err == nil {
			t.Error("expected error")
		}
		if s.Locale() != DefaultLocale {
			t.Errorf("expected default locale, got %s", s.Locale())
		}
	})
}
