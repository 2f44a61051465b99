package i18n

import (
	"fmt"
	"strings"
)

// Params holds named placeholder values for Translator.T.
type Params map[string]any

// Translator looks up strings for one locale.
type Translator struct {
	locale Locale
}

// NewTranslator returns a Translator for l. Unsupported locales use the
// DefaultLocale table.
func NewTranslator(l Locale) Translator {
	return Translator{locale: l}
}

// Locale returns the locale the translator was created for.
func (t Translator) Locale() Locale {
	return t.locale
}

// T returns the string for key. Lookup order is the active table, the
// FallbackLocale table, then the key itself. Every "{name}" placeholder is
// replaced by the matching entry of params.
func (t Translator) T(key string, params Params) string {
	table, ok := tables[t.locale]
	if !ok {
		table = tables[DefaultLocale]
	}
	value, ok := table[key]
	if !ok {
		value, ok = tables[FallbackLocale][key]
		if !ok {
			value = key
		}
	}
	for name, v := range params {
		value = strings.ReplaceAll(value, "{"+name+"}", fmt.Sprint(v))
	}
	return value
}
