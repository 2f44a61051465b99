package i18n

import (
	"errors"
	"fmt"
	"sync"
)

// Session owns the active locale and its persistence. The preference is
// loaded once with Load and saved on every Set.
type Session struct {
	mu     sync.RWMutex
	locale Locale
	store  Store
}

// NewSession returns a Session using DefaultLocale until Load is called.
// A nil store disables persistence.
func NewSession(store Store) *Session {
	return &Session{locale: DefaultLocale, store: store}
}

// Load replaces the active locale with the saved preference. Having no
// preference is not an error.
func (s *Session) Load() error {
	if s.store == nil {
		return nil
	}
	l, err := s.store.Load()
	if err != nil {
		if errors.Is(err, ErrNoPreference) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	s.locale = l
	s.mu.Unlock()
	return nil
}

// Locale returns the active locale.
func (s *Session) Locale() Locale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locale
}

// Set activates l and saves it.
func (s *Session) Set(l Locale) error {
	if !l.Supported() {
		return fmt.Errorf("%w: %q", ErrUnsupportedLocale, string(l))
	}

	s.mu.Lock()
	s.locale = l
	s.mu.Unlock()

	if s.store == nil {
		return nil
	}
	return s.store.Save(l)
}

// Use activates l for this session without saving it.
func (s *Session) Use(l Locale) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locale = l
}

// Translator returns a Translator bound to the active locale.
func (s *Session) Translator() Translator {
	return NewTranslator(s.Locale())
}
