package report

import (
	"encoding/json"
	"io"
)

// JSONWriter outputs calculations in JSON format for tool integration.
// Indeterminate values are written as null; statuses as their labels.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string

	// version is recorded in every document when set.
	version string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// WithVersion records the scopecalc version in the output.
func WithVersion(version string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.version = version
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// JSONReport is the document written for a single calculation.
type JSONReport struct {
	Version string `json:"version,omitempty"`
	*Calculation
}

// JSONComparison is the document written for a comparison.
type JSONComparison struct {
	Version      string         `json:"version,omitempty"`
	Calculations []*Calculation `json:"calculations"`
}

// Write outputs c as a JSONReport.
func (w *JSONWriter) Write(c *Calculation) (int, error) {
	return w.writeJSON(JSONReport{Version: w.version, Calculation: c})
}

// WriteComparison outputs cs as a JSONComparison.
func (w *JSONWriter) WriteComparison(cs []*Calculation) (int, error) {
	if cs == nil {
		cs = []*Calculation{}
	}
	return w.writeJSON(JSONComparison{Version: w.version, Calculations: cs})
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
