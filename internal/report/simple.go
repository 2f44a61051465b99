package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/scopecalc/internal/i18n"
	"golang.org/x/text/width"
)

// lineWidth is the width of the rules framing each section.
const lineWidth = 64

// SimpleWriter outputs localized plain text for terminal display.
type SimpleWriter struct {
	baseWriter

	// verbose prints the explanation below each metric.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables the per-metric explanations.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// WithSimpleTranslator sets the language of labels.
func WithSimpleTranslator(tr i18n.Translator) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.setTranslator(tr)
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the parameters and grouped results of c.
func (w *SimpleWriter) Write(c *Calculation) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, w.tr.T("titles.results", nil), c.Label)
	w.writeSection(&sb, parameterSection(c.Input))
	for _, s := range resultSections(w.tr, c.Output) {
		w.writeSection(&sb, s)
	}
	sb.WriteString("  " + projectionCaption(w.tr, c.Output) + "\n\n")
	sb.WriteString(strings.Repeat("=", lineWidth) + "\n")

	return w.output.Write([]byte(sb.String()))
}

// WriteComparison outputs one block per calculation, separated by rules.
func (w *SimpleWriter) WriteComparison(cs []*Calculation) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, w.tr.T("titles.comparison", nil), "")
	for _, c := range cs {
		out := c.Output
		sb.WriteString(fmt.Sprintf("[%s]\n", c.Label))
		w.writeMetrics(&sb, []metric{
			{key: "cards.totalMag", value: withUnit(out.TotalMagnification, unitX)},
			{key: "cards.objectPixel", value: withUnit(out.ObjectPixelSizeUm, unitUm)},
			{key: "cards.limitingResolution", value: withUnit(out.LimitingResolutionUm, unitUm)},
			{key: "cards.sampling", value: samplingLabel(w.tr, out.SamplingStatus)},
			{key: "cards.objectFov", value: pair(out.ObjectFovWidthMm, out.ObjectFovHeightMm, unitMm)},
			{key: "cards.coverage", value: withUnit(out.CoverageRatioPct, "%")},
			{key: "cards.coverageEval", value: coverageLabel(w.tr, out.CoverageStatus)},
		})
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Repeat("=", lineWidth) + "\n")

	return w.output.Write([]byte(sb.String()))
}

func (w *SimpleWriter) writeHeader(sb *strings.Builder, title, label string) {
	sb.WriteString(strings.Repeat("=", lineWidth) + "\n")
	sb.WriteString("  " + title + "\n")
	if label != "" {
		sb.WriteString("  " + label + "\n")
	}
	sb.WriteString(strings.Repeat("=", lineWidth) + "\n\n")
}

func (w *SimpleWriter) writeSection(sb *strings.Builder, s section) {
	sb.WriteString(w.tr.T(s.key, nil) + "\n")
	sb.WriteString(strings.Repeat("-", lineWidth) + "\n")
	w.writeMetrics(sb, s.metrics)
	sb.WriteString("\n")
}

// writeMetrics prints "label  value" lines with the values aligned. CJK
// labels take two columns each, so padding uses the display width.
func (w *SimpleWriter) writeMetrics(sb *strings.Builder, metrics []metric) {
	labels := make([]string, len(metrics))
	maxWidth := 0
	for i, m := range metrics {
		labels[i] = w.tr.T(m.key, nil)
		maxWidth = max(maxWidth, displayWidth(labels[i]))
	}

	for i, m := range metrics {
		pad := strings.Repeat(" ", maxWidth-displayWidth(labels[i]))
		sb.WriteString(fmt.Sprintf("  %s%s  %s\n", labels[i], pad, m.value))
		if w.verbose && m.tip != "" {
			sb.WriteString("    " + w.tr.T(m.tip, nil) + "\n")
		}
	}
}

// displayWidth counts East Asian wide and fullwidth runes as two columns.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}
