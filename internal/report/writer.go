package report

import (
	"io"

	"github.com/nao1215/scopecalc/internal/i18n"
	"github.com/nao1215/scopecalc/internal/optics"
)

// Calculation is one computed system: its input and the derived metrics.
type Calculation struct {
	// Label names the system, e.g. a camera preset or an input file.
	Label string `json:"label,omitempty"`

	Input  optics.SystemInput  `json:"input"`
	Output optics.SystemOutput `json:"output"`
}

// NewCalculation computes in and wraps it with label.
func NewCalculation(label string, in optics.SystemInput) *Calculation {
	return &Calculation{Label: label, Input: in, Output: optics.Compute(in)}
}

// Writer defines the interface for report output.
type Writer interface {
	// Write outputs a single calculation.
	// Returns the number of bytes written and any error encountered.
	Write(c *Calculation) (int, error)

	// WriteComparison outputs several calculations side by side.
	WriteComparison(cs []*Calculation) (int, error)
}

// MultiWriter writes to multiple Writers in order.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the calculation to all configured Writers.
// Returns the total bytes written. Stops on first error encountered.
func (m *MultiWriter) Write(c *Calculation) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(c)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteComparison outputs the comparison to all configured Writers.
func (m *MultiWriter) WriteComparison(cs []*Calculation) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteComparison(cs)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
	tr     i18n.Translator
}

// newBaseWriter creates a baseWriter using the default locale.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output, tr: i18n.NewTranslator(i18n.DefaultLocale)}
}

func (b *baseWriter) setTranslator(tr i18n.Translator) {
	b.tr = tr
}
