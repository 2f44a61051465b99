package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/nao1215/scopecalc/internal/i18n"
	"github.com/nao1215/scopecalc/internal/optics"
)

// createTestCalculation returns the 2592x1944 / 2.2 µm camera behind a
// 40x/0.65 objective and a 0.5x adapter.
func createTestCalculation() *Calculation {
	return NewCalculation("Axiocam 105 color", optics.SystemInput{
		Sensor: optics.SensorSpec{
			WidthPx:      optics.Of(2592),
			HeightPx:     optics.Of(1944),
			PixelPitchUm: optics.Of(2.2),
		},
		Objective: optics.ObjectiveSpec{
			Magnification:        optics.Of(40),
			NumericalAperture:    optics.Of(0.65),
			FieldNumberMm:        optics.Of(22),
			CouplerMagnification: optics.Of(0.5),
		},
		WavelengthUm: optics.Of(0.55),
	})
}

// createUndersampledCalculation uses a coarse 8 µm pixel at 10x/0.25.
func createUndersampledCalculation() *Calculation {
	return NewCalculation("coarse", optics.SystemInput{
		Sensor: optics.SensorSpec{
			WidthPx:      optics.Of(1000),
			HeightPx:     optics.Of(1000),
			PixelPitchUm: optics.Of(8),
		},
		Objective: optics.ObjectiveSpec{
			Magnification:        optics.Of(10),
			NumericalAperture:    optics.Of(0.25),
			FieldNumberMm:        optics.Of(22),
			CouplerMagnification: optics.Of(1),
		},
		WavelengthUm: optics.Of(0.55),
	})
}

var english = i18n.NewTranslator(i18n.English)

// TestSimpleWriter tests the plain text writer.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes grouped results", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithSimpleTranslator(english))
		if _, err := w.Write(createTestCalculation()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{
			"Results",
			"Axiocam 105 color",
			"Parameters",
			"Sampling & Resolution",
			"5.702 × 4.277 mm",
			"7.128 mm",
			"20×",
			"0.516 µm",
			"oversampled",
			"1105 × 829 px",
			"64.8%",
			"OK",
			"Sensor projection = 11.405 × 8.554 mm",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q\n%s", want, output)
			}
		}
		if strings.Contains(output, "Display Magnification") {
			t.Error("display magnification should be omitted without a display")
		}
	})

	t.Run("defaults to Chinese labels", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(createTestCalculation()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "计算结果") || !strings.Contains(buf.String(), "过采样") {
			t.Errorf("expected Chinese output:\n%s", buf.String())
		}
	})

	t.Run("verbose prints explanations", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithSimpleTranslator(english), WithVerbose(true))
		if _, err := w.Write(createTestCalculation()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "Rayleigh criterion: 0.61×λ/NA.") {
			t.Error("expected tips in verbose output")
		}
	})

	t.Run("indeterminate values print as dash", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithSimpleTranslator(english))
		if _, err := w.Write(NewCalculation("", optics.SystemInput{})); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "Total Magnification M_total") {
			t.Fatal("expected labels")
		}
		for _, line := range strings.Split(buf.String(), "\n") {
			if strings.Contains(line, "Optical Resolution") && !strings.HasSuffix(line, "-") {
				t.Errorf("expected dash, got %q", line)
			}
		}
	})

	t.Run("writes comparison", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithSimpleTranslator(english))
		_, err := w.WriteComparison([]*Calculation{createTestCalculation(), createUndersampledCalculation()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output := buf.String()
		for _, want := range []string{"Camera Comparison", "[Axiocam 105 color]", "[coarse]", "undersampled"} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})
}

func TestDisplayWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"NA", 2},
		{"采样评估", 8},
		{"FN (mm)", 7},
	}
	for _, tt := range tests {
		if got := displayWidth(tt.input); got != tt.expected {
			t.Errorf("displayWidth(%q) = %d, expected %d", tt.input, got, tt.expected)
		}
	}
}

// TestJSONWriter tests the JSON report writer.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes valid JSON with nulls and labels", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, WithVersion("v1.2.3"))
		if _, err := w.Write(createTestCalculation()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var doc struct {
			Version string         `json:"version"`
			Label   string         `json:"label"`
			Output  map[string]any `json:"output"`
		}
		if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
			t.Fatalf("failed to parse JSON output: %v", err)
		}
		if doc.Version != "v1.2.3" || doc.Label != "Axiocam 105 color" {
			t.Errorf("unexpected header %+v", doc)
		}
		if doc.Output["totalMagnification"] != float64(20) {
			t.Errorf("unexpected totalMagnification %v", doc.Output["totalMagnification"])
		}
		if doc.Output["samplingStatus"] != "oversampled" || doc.Output["coverageStatus"] != "ok" {
			t.Errorf("unexpected statuses %v / %v", doc.Output["samplingStatus"], doc.Output["coverageStatus"])
		}
		if v, ok := doc.Output["displayMagnification"]; !ok || v != nil {
			t.Errorf("expected null displayMagnification, got %v", v)
		}
	})

	t.Run("compact by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(createTestCalculation()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Count(buf.String(), "\n") != 1 {
			t.Error("expected a single line of JSON")
		}
	})

	t.Run("pretty print", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(createTestCalculation()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\n  \"label\"") {
			t.Errorf("expected indented output:\n%s", buf.String())
		}
	})

	t.Run("custom indent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithIndent(">", "\t")).Write(createTestCalculation()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\n>\t\"label\"") {
			t.Errorf("expected prefixed tab indentation:\n%s", buf.String())
		}
	})

	t.Run("comparison", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)
		if _, err := w.WriteComparison([]*Calculation{createTestCalculation(), createUndersampledCalculation()}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var doc JSONComparison
		if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
			t.Fatalf("failed to parse JSON output: %v", err)
		}
		if len(doc.Calculations) != 2 {
			t.Fatalf("expected 2 calculations, got %d", len(doc.Calculations))
		}
		if doc.Calculations[1].Output.SamplingStatus != optics.SamplingUndersampled {
			t.Errorf("unexpected status %v", doc.Calculations[1].Output.SamplingStatus)
		}
	})

	t.Run("empty comparison is an empty array", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).WriteComparison(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), `"calculations":[]`) {
			t.Errorf("unexpected output %s", buf.String())
		}
	})
}

// TestMarkdownWriter tests the Markdown report writer.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes tables and tip", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf, WithMarkdownTranslator(english))
		if _, err := w.Write(createTestCalculation()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{
			"# Results",
			"**Axiocam 105 color**",
			"## Sensor",
			"## Sampling & Resolution",
			"0.516 µm",
			"<details>",
			"[scopecalc]",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q\n%s", want, output)
			}
		}
		if !strings.Contains(output, "[!NOTE]") {
			t.Errorf("oversampled system should produce a note:\n%s", output)
		}
	})

	t.Run("undersampling is a warning", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf, WithMarkdownTranslator(english))
		if _, err := w.Write(createUndersampledCalculation()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "[!WARNING]") {
			t.Errorf("expected warning:\n%s", buf.String())
		}
	})

	t.Run("adapter too small is a caution", func(t *testing.T) {
		t.Parallel()

		c := createTestCalculation()
		c.Input.Objective.FieldNumberMm = optics.Of(12)
		c = NewCalculation(c.Label, c.Input)

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf, WithMarkdownTranslator(english))
		if _, err := w.Write(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "[!CAUTION]") {
			t.Errorf("expected caution:\n%s", buf.String())
		}
	})

	t.Run("sampling and coverage problems both alert", func(t *testing.T) {
		t.Parallel()

		c := createUndersampledCalculation()
		c.Input.Objective.FieldNumberMm = optics.Of(12)
		c = NewCalculation(c.Label, c.Input)
		if c.Output.CoverageStatus != optics.CoverageAdapterTooSmall {
			t.Fatalf("fixture should have a too small adapter, got %s", c.Output.CoverageStatus)
		}

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf, WithMarkdownTranslator(english))
		if _, err := w.Write(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"[!WARNING]", "[!CAUTION]"} {
			if !strings.Contains(buf.String(), want) {
				t.Errorf("expected %s:\n%s", want, buf.String())
			}
		}
		if strings.Contains(buf.String(), "[!TIP]") {
			t.Errorf("no tip expected when a problem is reported:\n%s", buf.String())
		}
	})

	t.Run("comparison table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf, WithMarkdownTranslator(english))
		if _, err := w.WriteComparison([]*Calculation{createTestCalculation(), createUndersampledCalculation()}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output := buf.String()
		if !strings.Contains(output, "# Camera Comparison") || !strings.Contains(output, "coarse") {
			t.Errorf("unexpected comparison:\n%s", output)
		}
	})
}

type failingWriter struct{}

func (failingWriter) Write(*Calculation) (int, error) { return 0, errors.New("boom") }
func (failingWriter) WriteComparison([]*Calculation) (int, error) {
	return 0, errors.New("boom")
}

// TestMultiWriter tests writing to several writers.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes to all writers", func(t *testing.T) {
		t.Parallel()

		var text, js bytes.Buffer
		mw := NewMultiWriter(NewSimpleWriter(&text), NewJSONWriter(&js))
		n, err := mw.Write(createTestCalculation())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text.Len() == 0 || js.Len() == 0 {
			t.Error("expected both writers to receive output")
		}
		if n != text.Len()+js.Len() {
			t.Errorf("expected %d bytes, got %d", text.Len()+js.Len(), n)
		}
	})

	t.Run("stops on first error", func(t *testing.T) {
		t.Parallel()

		var js bytes.Buffer
		mw := NewMultiWriter(failingWriter{}, NewJSONWriter(&js))
		if _, err := mw.WriteComparison([]*Calculation{createTestCalculation()}); err == nil {
			t.Error("expected error")
		}
		if js.Len() != 0 {
			t.Error("second writer should not run after an error")
		}
	})
}
