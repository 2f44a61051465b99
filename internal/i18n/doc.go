// Package i18n provides the localized strings shown around calculator results.
//
// Three locales are supported: Chinese (the default), English (the fallback
// for missing keys) and German. A Session owns the active locale and its
// persisted preference; callers pass its Translator to whatever renders
// text. The optics package never depends on this package.
package i18n
