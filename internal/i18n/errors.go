package i18n

import "errors"

var (
	// ErrUnsupportedLocale is returned when a language tag matches none of
	// the supported locales.
	ErrUnsupportedLocale = errors.New("unsupported locale")

	// ErrNoPreference is returned by a Store that has nothing saved yet.
	ErrNoPreference = errors.New("no locale preference saved")
)
