package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Locale identifies one of the supported translation tables.
type Locale string

// Supported locales.
const (
	Chinese Locale = "zh"
	English Locale = "en"
	German  Locale = "de"
)

const (
	// DefaultLocale is used until a preference is loaded and for unknown locales.
	DefaultLocale = Chinese

	// FallbackLocale supplies keys missing from the active table.
	FallbackLocale = English
)

// Locales returns the supported locales in menu order.
func Locales() []Locale {
	return []Locale{Chinese, English, German}
}

var (
	supportedTags = []language.Tag{language.Chinese, language.English, language.German}
	matcher       = language.NewMatcher(supportedTags)
)

// ParseLocale maps a BCP 47 tag such as "de-AT" or "en_US" to a supported locale.
func ParseLocale(tag string) (Locale, error) {
	s := strings.ReplaceAll(strings.TrimSpace(tag), "_", "-")
	if s == "" {
		return "", fmt.Errorf("%w: empty tag", ErrUnsupportedLocale)
	}
	t, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrUnsupportedLocale, tag, err)
	}
	_, idx, confidence := matcher.Match(t)
	if confidence == language.No {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, tag)
	}
	return Locales()[idx], nil
}

// Tag returns the language tag of l.
func (l Locale) Tag() language.Tag {
	switch l {
	case English:
		return language.English
	case German:
		return language.German
	default:
		return language.Chinese
	}
}

// Supported reports whether l has a translation table.
func (l Locale) Supported() bool {
	_, ok := tables[l]
	return ok
}

// DisplayName returns the locale's name in its own language, e.g. "Deutsch".
func (l Locale) DisplayName() string {
	if name := display.Self.Name(l.Tag()); name != "" {
		return name
	}
	return string(l)
}

// String implements fmt.Stringer.
func (l Locale) String() string {
	return string(l)
}
