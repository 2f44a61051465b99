package optics

import (
	"encoding/json"
	"log/slog"
	"math"
	"strconv"
)

// Value is a float64 that may be indeterminate.
// The zero Value is indeterminate.
type Value struct {
	v  float64
	ok bool
}

// Indeterminate is the Value for results whose preconditions are not met.
var Indeterminate = Value{}

// Of returns a present Value holding x, or Indeterminate when x is NaN or infinite.
func Of(x float64) Value {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Indeterminate
	}
	return Value{v: x, ok: true}
}

// Get returns the underlying number and whether it is present.
func (v Value) Get() (float64, bool) {
	return v.v, v.ok
}

// Valid reports whether v holds a number.
func (v Value) Valid() bool {
	return v.ok
}

// Positive reports whether v holds a number greater than zero.
func (v Value) Positive() bool {
	return v.ok && v.v > 0
}

// Or returns the held number, or def when v is indeterminate.
func (v Value) Or(def float64) float64 {
	if !v.ok {
		return def
	}
	return v.v
}

// String formats v with the shortest representation, or "-" when indeterminate.
func (v Value) String() string {
	if !v.ok {
		return "-"
	}
	return strconv.FormatFloat(v.v, 'f', -1, 64)
}

// MarshalJSON encodes an indeterminate Value as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.ok {
		return []byte("null"), nil
	}
	return json.Marshal(v.v)
}

// UnmarshalJSON decodes null as Indeterminate.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Indeterminate
		return nil
	}
	var x float64
	if err := json.Unmarshal(data, &x); err != nil {
		return err
	}
	*v = Of(x)
	return nil
}

// LogValue implements slog.LogValuer.
func (v Value) LogValue() slog.Value {
	if !v.ok {
		return slog.StringValue("indeterminate")
	}
	return slog.Float64Value(v.v)
}

// lift applies f when both operands are present and normalizes the result.
func lift(a, b Value, f func(x, y float64) float64) Value {
	if !a.ok || !b.ok {
		return Indeterminate
	}
	return Of(f(a.v, b.v))
}

func hypot(a, b Value) Value {
	return lift(a, b, math.Hypot)
}

func mul(a, b Value) Value {
	return lift(a, b, func(x, y float64) float64 { return x * y })
}

// div is indeterminate for a zero divisor.
func div(a, b Value) Value {
	if b.ok && b.v == 0 {
		return Indeterminate
	}
	return lift(a, b, func(x, y float64) float64 { return x / y })
}

func scale(a Value, k float64) Value {
	if !a.ok {
		return Indeterminate
	}
	return Of(a.v * k)
}
