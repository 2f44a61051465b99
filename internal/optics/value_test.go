package optics

import (
	"encoding/json"
	"log/slog"
	"math"
	"testing"
)

func TestOf(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input float64
		valid bool
	}{
		{"finite", 1.5, true},
		{"zero", 0, true},
		{"negative", -3, true},
		{"NaN", math.NaN(), false},
		{"positive infinity", math.Inf(1), false},
		{"negative infinity", math.Inf(-1), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Of(tc.input).Valid(); got != tc.valid {
				t.Errorf("Of(%v).Valid() = %v, expected %v", tc.input, got, tc.valid)
			}
		})
	}
}

func TestValueAccessors(t *testing.T) {
	t.Parallel()

	t.Run("zero Value is indeterminate", func(t *testing.T) {
		t.Parallel()
		var v Value
		if v.Valid() {
			t.Error("expected zero Value to be indeterminate")
		}
		if v != Indeterminate {
			t.Error("expected zero Value to equal Indeterminate")
		}
	})

	t.Run("Or returns default for indeterminate", func(t *testing.T) {
		t.Parallel()
		if got := Indeterminate.Or(7); got != 7 {
			t.Errorf("expected 7, got %v", got)
		}
		if got := Of(2).Or(7); got != 2 {
			t.Errorf("expected 2, got %v", got)
		}
	})

	t.Run("Positive", func(t *testing.T) {
		t.Parallel()
		if !Of(0.1).Positive() {
			t.Error("expected 0.1 to be positive")
		}
		if Of(0).Positive() || Of(-1).Positive() || Indeterminate.Positive() {
			t.Error("expected zero, negative and indeterminate to be non-positive")
		}
	})

	t.Run("String", func(t *testing.T) {
		t.Parallel()
		if got := Of(0.516).String(); got != "0.516" {
			t.Errorf("expected 0.516, got %q", got)
		}
		if got := Indeterminate.String(); got != "-" {
			t.Errorf("expected -, got %q", got)
		}
	})

	t.Run("LogValue", func(t *testing.T) {
		t.Parallel()
		if got := Indeterminate.LogValue(); got.Kind() != slog.KindString {
			t.Errorf("expected string kind, got %v", got.Kind())
		}
		if got := Of(1).LogValue(); got.Kind() != slog.KindFloat64 {
			t.Errorf("expected float64 kind, got %v", got.Kind())
		}
	})
}

func TestValueJSON(t *testing.T) {
	t.Parallel()

	t.Run("indeterminate marshals to null", func(t *testing.T) {
		t.Parallel()
		data, err := json.Marshal(struct {
			X Value `json:"x"`
		}{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != `{"x":null}` {
			t.Errorf("unexpected JSON: %s", data)
		}
	})

	t.Run("null and numbers unmarshal", func(t *testing.T) {
		t.Parallel()
		var got struct {
			A Value `json:"a"`
			B Value `json:"b"`
		}
		if err := json.Unmarshal([]byte(`{"a":null,"b":2.2}`), &got); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.A.Valid() {
			t.Error("expected a to be indeterminate")
		}
		if got.B != Of(2.2) {
			t.Errorf("expected b to be 2.2, got %v", got.B)
		}
	})

	t.Run("invalid JSON returns error", func(t *testing.T) {
		t.Parallel()
		var v Value
		if err := json.Unmarshal([]byte(`"abc"`), &v); err == nil {
			t.Error("expected error for string input")
		}
	})
}
