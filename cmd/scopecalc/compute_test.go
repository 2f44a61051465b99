package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/scopecalc/internal/config"
	"github.com/nao1215/scopecalc/internal/i18n"
	"github.com/nao1215/scopecalc/internal/preset"
)

var axiocamArgs = []string{
	"compute", "--camera", "Axiocam 105 color", "--objective", "40", "--na", "0.65",
}

func writeScopeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scope.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func decodeOutput(t *testing.T, out string) map[string]any {
	t.Helper()
	var doc struct {
		Output map[string]any `json:"output"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	return doc.Output
}

func TestComputeCmd(t *testing.T) {
	t.Parallel()

	t.Run("plain text in English", func(t *testing.T) {
		t.Parallel()
		out, _, err := execute(t, nil, append(axiocamArgs, "--lang", "en")...)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{
			"Axiocam 105 color",
			"0.516 µm",
			"oversampled",
			"Sensor projection = 11.405 × 8.554 mm",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q\n%s", want, out)
			}
		}
	})

	t.Run("saved locale is used", func(t *testing.T) {
		t.Parallel()
		store := i18n.NewMemoryStore()
		if err := store.Save(i18n.German); err != nil {
			t.Fatal(err)
		}
		out, _, err := execute(t, store, axiocamArgs...)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "Überabtastung") {
			t.Errorf("expected German output:\n%s", out)
		}
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		out, _, err := execute(t, nil, append(axiocamArgs, "--json")...)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var doc struct {
			Label  string         `json:"label"`
			Output map[string]any `json:"output"`
		}
		if err := json.Unmarshal([]byte(out), &doc); err != nil {
			t.Fatalf("invalid JSON: %v\n%s", err, out)
		}
		if doc.Output["totalMagnification"] != float64(20) || doc.Output["coverageRatioPct"] != 64.8 {
			t.Errorf("unexpected output %v", doc.Output)
		}
	})

	t.Run("flags override input file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "scope.yaml")
		content := "camera: Axiocam 105 color\nobjective:\n  magnification: 10\n  numericalAperture: 0.65\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		out, _, err := execute(t, nil, "compute", "-c", path, "--objective", "40", "--json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, `"totalMagnification": 20`) {
			t.Errorf("flag should override file:\n%s", out)
		}
	})

	t.Run("sensor from pixels and display", func(t *testing.T) {
		t.Parallel()
		out, _, err := execute(t, nil, "compute", "--lang", "en",
			"--width-px", "2592", "--height-px", "1944", "--pixel-pitch", "2.2",
			"--display-inch", "24", "--display-width", "1920", "--display-height", "1080")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "5.702 × 4.277 mm") || !strings.Contains(out, "Display Magnification") {
			t.Errorf("unexpected output:\n%s", out)
		}
	})

	t.Run("writes report file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "reports", "scope.md")
		out, _, err := execute(t, nil, append(axiocamArgs, "-m", "-o", path, "--lang", "en")...)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "" {
			t.Errorf("expected nothing on stdout, got %q", out)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("report not written: %v", err)
		}
		if !strings.Contains(string(data), "# Results") {
			t.Errorf("unexpected report:\n%s", data)
		}
	})

	t.Run("tee prints text while writing json", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "scope.json")
		out, _, err := execute(t, nil, append(axiocamArgs, "-j", "-o", path, "--tee", "--lang", "en")...)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "Sensor projection") {
			t.Errorf("expected plain text on stdout:\n%s", out)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("report not written: %v", err)
		}
		if !json.Valid(data) {
			t.Errorf("expected JSON file:\n%s", data)
		}
	})

	t.Run("json logs", func(t *testing.T) {
		t.Parallel()
		_, errOut, err := execute(t, nil, append(axiocamArgs, "--log-json", "-v")...)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		line, _, _ := strings.Cut(errOut, "\n")
		if !json.Valid([]byte(line)) || !strings.Contains(errOut, `"msg":"computed"`) {
			t.Errorf("expected JSON log lines:\n%s", errOut)
		}
	})

	t.Run("conflicting formats", func(t *testing.T) {
		t.Parallel()
		_, _, err := execute(t, nil, append(axiocamArgs, "-j", "-m")...)
		if !errors.Is(err, config.ErrConflictingReportFormats) {
			t.Errorf("expected ErrConflictingReportFormats, got %v", err)
		}
	})

	t.Run("missing explicit input file", func(t *testing.T) {
		t.Parallel()
		_, _, err := execute(t, nil, "compute", "-c", filepath.Join(t.TempDir(), "none.yaml"))
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("unknown camera", func(t *testing.T) {
		t.Parallel()
		_, _, err := execute(t, nil, "compute", "--camera", "zzzzqqq")
		if !errors.Is(err, preset.ErrNotFound) {
			t.Errorf("expected preset.ErrNotFound, got %v", err)
		}
	})

	t.Run("negative wavelength", func(t *testing.T) {
		t.Parallel()
		_, _, err := execute(t, nil, "compute", "--wavelength", "-1")
		if !errors.Is(err, config.ErrInvalidWavelength) {
			t.Errorf("expected ErrInvalidWavelength, got %v", err)
		}
	})

	t.Run("watch without input file", func(t *testing.T) {
		t.Parallel()
		_, _, err := execute(t, nil, append(axiocamArgs, "--watch")...)
		if !errors.Is(err, config.ErrWatchWithoutInput) {
			t.Errorf("expected ErrWatchWithoutInput, got %v", err)
		}
	})

	t.Run("camera flag replaces sensor from file", func(t *testing.T) {
		t.Parallel()
		path := writeScopeFile(t, "sensor:\n  widthPx: 1000\n  heightPx: 1000\n  pixelPitchUm: 5\n")

		out, _, err := execute(t, nil, "compute", "-c", path, "--camera", "Educam 105", "--json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output := decodeOutput(t, out)
		if output["pixelSizeUm"] != 2.0 || output["sensorWidthMm"] != 5.184 {
			t.Errorf("expected Educam 105 sensor, got pitch %v width %v", output["pixelSizeUm"], output["sensorWidthMm"])
		}
	})

	t.Run("sensor format flag replaces pixels from file", func(t *testing.T) {
		t.Parallel()
		path := writeScopeFile(t, "sensor:\n  widthPx: 1000\n  heightPx: 1000\n  pixelPitchUm: 5\n")

		out, _, err := execute(t, nil, "compute", "-c", path, "--sensor-format", `2/3" (8.8 x 6.6 mm)`, "--json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output := decodeOutput(t, out)
		if output["sensorWidthMm"] != 8.8 || output["sensorHeightMm"] != 6.6 {
			t.Errorf("expected 2/3\" sensor, got %v × %v", output["sensorWidthMm"], output["sensorHeightMm"])
		}
	})

	t.Run("pitch flag refines camera flag", func(t *testing.T) {
		t.Parallel()
		out, _, err := execute(t, nil, "compute", "--camera", "Educam 105", "--pixel-pitch", "3", "--json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := decodeOutput(t, out)["pixelSizeUm"]; got != 3.0 {
			t.Errorf("expected pitch 3, got %v", got)
		}
	})

	t.Run("watch stops when context is cancelled", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "scope.yaml")
		if err := os.WriteFile(path, []byte("camera: Educam 105\n"), 0600); err != nil {
			t.Fatal(err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		out, _, err := executeContext(ctx, t, nil, "compute", "-c", path, "--watch", "--lang", "en")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Count(out, "Educam 105") != 1 {
			t.Errorf("expected one report before stopping:\n%s", out)
		}
	})
}
