package i18n

import (
	"errors"
	"testing"
)

func TestParseLocale(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		tag      string
		expected Locale
	}{
		{"zh", Chinese},
		{"en", English},
		{"de", German},
		{"en-US", English},
		{"en_GB", English},
		{"de-AT", German},
		{" de ", German},
	}

	for _, tc := range testCases {
		t.Run(tc.tag, func(t *testing.T) {
			t.Parallel()
			got, err := ParseLocale(tc.tag)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("ParseLocale(%q) = %q, expected %q", tc.tag, got, tc.expected)
			}
		})
	}

	for _, tag := range []string{"", "fr", "ja-JP", "not a tag!"} {
		t.Run("rejects "+tag, func(t *testing.T) {
			t.Parallel()
			if _, err := ParseLocale(tag); !errors.Is(err, ErrUnsupportedLocale) {
				t.Errorf("expected ErrUnsupportedLocale for %q, got %v", tag, err)
			}
		})
	}
}

func TestLocaleProperties(t *testing.T) {
	t.Parallel()

	for _, l := range Locales() {
		if !l.Supported() {
			t.Errorf("%s should be supported", l)
		}
		if l.DisplayName() == "" {
			t.Errorf("%s has empty display name", l)
		}
		if l.Tag().String() != string(l) {
			t.Errorf("tag of %s is %s", l, l.Tag())
		}
	}

	if Locale("fr").Supported() {
		t.Error("fr should not be supported")
	}
}

func TestCatalogCompleteness(t *testing.T) {
	t.Parallel()

	for key := range tables[FallbackLocale] {
		for _, l := range Locales() {
			if _, ok := tables[l][key]; !ok {
				t.Errorf("key %q missing from %s table", key, l)
			}
		}
	}
}
