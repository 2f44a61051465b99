package report

import (
	"io"

	"github.com/nao1215/markdown"
	"github.com/nao1215/scopecalc/internal/i18n"
	"github.com/nao1215/scopecalc/internal/optics"
)

// MarkdownWriter outputs calculations as GitHub Flavored Markdown, with one
// table per result group and alerts for poor sampling or adapter match.
type MarkdownWriter struct {
	baseWriter
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithMarkdownTranslator sets the language of labels.
func WithMarkdownTranslator(tr i18n.Translator) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.setTranslator(tr)
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs a single calculation.
func (w *MarkdownWriter) Write(c *Calculation) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1(w.tr.T("titles.results", nil))
	md.PlainText("")
	if c.Label != "" {
		md.PlainText("**" + c.Label + "**")
		md.PlainText("")
	}

	w.writeAlert(md, c.Output)

	w.writeSection(md, parameterSection(c.Input))
	for _, s := range resultSections(w.tr, c.Output) {
		w.writeSection(md, s)
	}
	md.PlainText(projectionCaption(w.tr, c.Output))
	md.PlainText("")

	w.writeNotes(md, c.Input, c.Output)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// WriteComparison outputs one table row per calculation.
func (w *MarkdownWriter) WriteComparison(cs []*Calculation) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1(w.tr.T("titles.comparison", nil))
	md.PlainText("")

	rows := make([][]string, 0, len(cs))
	for _, c := range cs {
		out := c.Output
		rows = append(rows, []string{
			c.Label,
			withUnit(out.TotalMagnification, unitX),
			withUnit(out.ObjectPixelSizeUm, unitUm),
			withUnit(out.LimitingResolutionUm, unitUm),
			samplingLabel(w.tr, out.SamplingStatus),
			pair(out.ObjectFovWidthMm, out.ObjectFovHeightMm, unitMm),
			withUnit(out.CoverageRatioPct, "%"),
			coverageLabel(w.tr, out.CoverageStatus),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{
			w.tr.T("labels.camera", nil),
			w.tr.T("cards.totalMag", nil),
			w.tr.T("cards.objectPixel", nil),
			w.tr.T("cards.limitingResolution", nil),
			w.tr.T("cards.sampling", nil),
			w.tr.T("cards.objectFov", nil),
			w.tr.T("cards.coverage", nil),
			w.tr.T("cards.coverageEval", nil),
		},
		Rows: rows,
	})
	md.PlainText("")
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeSection(md *markdown.Markdown, s section) {
	md.H2(w.tr.T(s.key, nil))
	md.PlainText("")

	rows := make([][]string, len(s.metrics))
	for i, m := range s.metrics {
		rows[i] = []string{w.tr.T(m.key, nil), m.value}
	}
	md.Table(markdown.TableSet{
		Header: []string{w.tr.T("report.metric", nil), w.tr.T("report.value", nil)},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeAlert summarizes the sampling and coverage assessments. Each
// problem gets its own alert; a sound setup gets a single tip.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, out optics.SystemOutput) {
	sampling := w.tr.T("cards.sampling", nil) + ": " + samplingLabel(w.tr, out.SamplingStatus)
	coverage := w.tr.T("cards.coverageEval", nil) + ": " + coverageLabel(w.tr, out.CoverageStatus)
	ratio := withUnit(out.CoverageRatioPct, "%")

	alerted := false
	switch out.SamplingStatus {
	case optics.SamplingUndersampled:
		md.Warningf("%s. %s", sampling, w.tr.T("tips.sampling", nil))
		alerted = true
	case optics.SamplingOversampled:
		md.Note(sampling)
		alerted = true
	}

	switch out.CoverageStatus {
	case optics.CoverageAdapterTooSmall:
		if alerted {
			md.PlainText("")
		}
		md.Cautionf("%s (%s). %s", coverage, ratio, w.tr.T("tips.coverageEval", nil))
		alerted = true
	case optics.CoverageAdapterTooLarge:
		if alerted {
			md.PlainText("")
		}
		md.Note(coverage + " (" + ratio + ")")
		alerted = true
	}

	if !alerted {
		md.Tip(sampling + " / " + coverage)
	}
	md.PlainText("")
}

// writeNotes adds collapsible explanations of the formulas.
func (w *MarkdownWriter) writeNotes(md *markdown.Markdown, in optics.SystemInput, out optics.SystemOutput) {
	seen := make(map[string]bool)
	sections := append([]section{parameterSection(in)}, resultSections(w.tr, out)...)
	for _, s := range sections {
		for _, m := range s.metrics {
			if m.tip == "" || seen[m.tip] {
				continue
			}
			seen[m.tip] = true
			md.Details(w.tr.T(m.key, nil), w.tr.T(m.tip, nil))
		}
	}
	md.PlainText("")
}

func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [scopecalc](https://github.com/nao1215/scopecalc)*")
}
