package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nao1215/scopecalc/internal/config"
	"github.com/nao1215/scopecalc/internal/i18n"
	"github.com/nao1215/scopecalc/internal/report"
	"github.com/nao1215/scopecalc/internal/watch"
	"github.com/spf13/cobra"
)

// findInputFile locates the input file; tests replace it to keep the
// developer's own files out of the search.
var findInputFile = config.FindInputFile

// NewComputeCmd creates the compute command.
func NewComputeCmd(store i18n.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute resolution, sampling and field of view for one setup",
		Long: `Compute derives every metric for a single microscope setup.

Inputs are layered, later layers winning field by field:
  1. built-in defaults (10x/0.25 objective, FN 22 mm, 1x adapter, 0.55 µm)
  2. the input file (--config, or .scopecalc.yaml in the current or home directory)
  3. --camera and --sensor-format presets
  4. individual flags such as --objective or --pixel-pitch

Examples:
  # A preset camera behind a 40x/0.65 objective
  scopecalc compute --camera "Axiocam 105 color" --objective 40 --na 0.65

  # A sensor given by pixel count and pitch, in English
  scopecalc compute --width-px 2592 --height-px 1944 --pixel-pitch 2.2 --lang en

  # Markdown report written to a file
  scopecalc compute -c scope.yaml -m -o report/scope.md

  # Recompute whenever the input file is saved
  scopecalc compute -c scope.yaml --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runComputeCmd(cmd, store)
		},
	}

	cmd.Flags().StringP("config", "c", "",
		"Input file path (default: "+config.DefaultInputFile+" in current or home directory)")
	cmd.Flags().String("camera", "", "Camera preset name (fuzzy matched)")
	cmd.Flags().String("sensor-format", "", "Sensor format preset name (fuzzy matched)")

	addSystemFlags(cmd)
	cmd.Flags().Float64("width-mm", 0, "Sensor width in mm")
	cmd.Flags().Float64("height-mm", 0, "Sensor height in mm")
	cmd.Flags().Int("width-px", 0, "Sensor width in pixels")
	cmd.Flags().Int("height-px", 0, "Sensor height in pixels")
	cmd.Flags().Float64("pixel-pitch", 0, "Sensor pixel pitch in µm")
	cmd.Flags().Float64("display-inch", 0, "Display diagonal in inches")
	cmd.Flags().Int("display-width", 0, "Display width in pixels")
	cmd.Flags().Int("display-height", 0, "Display height in pixels")

	addReportFlags(cmd)
	cmd.Flags().BoolP("watch", "w", false,
		"Recompute whenever the input file changes (until interrupted)")

	return cmd
}

// addSystemFlags registers the objective and wavelength flags shared by
// compute and compare.
func addSystemFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("objective", config.DefaultObjectiveMagnification, "Objective magnification")
	cmd.Flags().Float64("na", config.DefaultNumericalAperture, "Objective numerical aperture")
	cmd.Flags().Float64("fn", config.DefaultFieldNumberMm, "Field number in mm")
	cmd.Flags().Float64("coupler", config.DefaultCouplerMagnification, "C-mount adapter magnification")
	cmd.Flags().Float64("wavelength", config.DefaultWavelengthUm, "Wavelength in µm")
}

// runComputeCmd executes the compute command.
func runComputeCmd(cmd *cobra.Command, store i18n.Store) error {
	cfg, err := buildComputeConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd)
	session, err := loadSession(cmd, store, logger)
	if err != nil {
		return err
	}

	run := func() error {
		calc, err := buildCalculation(cmd, cfg)
		if err != nil {
			return err
		}
		logger.Debug("computed",
			"label", calc.Label,
			"totalMagnification", calc.Output.TotalMagnification,
			"sampling", calc.Output.SamplingStatus.String(),
			"coverage", calc.Output.CoverageStatus.String(),
		)
		return writeReport(cmd, cfg, session.Translator(), func(w report.Writer) error {
			_, err := w.Write(calc)
			return err
		})
	}

	if err := run(); err != nil {
		return err
	}
	if !cfg.Watch {
		return nil
	}

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, stopping watch")
			cancel()
		case <-ctx.Done():
		}
	}()

	return watch.Watch(ctx, cfg.InputFile, run, watch.WithLogger(logger))
}

// buildComputeConfig creates a Config from cobra command flags and resolves
// the input file path.
func buildComputeConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	if err := readReportFlags(cmd, cfg); err != nil {
		return nil, err
	}

	var err error
	if cfg.Camera, err = cmd.Flags().GetString("camera"); err != nil {
		return nil, err
	}
	if cfg.SensorFormat, err = cmd.Flags().GetString("sensor-format"); err != nil {
		return nil, err
	}
	if cfg.Watch, err = cmd.Flags().GetBool("watch"); err != nil {
		return nil, err
	}

	explicit, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// If the user named an input file it must exist; otherwise a missing
	// default file means "no input file".
	cfg.InputFile = findInputFile(explicit)
	if explicit != "" && cfg.InputFile == "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, explicit)
	}
	return cfg, nil
}

// buildCalculation reads the input file, layers presets and flags on top and
// computes the result. It runs again on every change in watch mode.
func buildCalculation(cmd *cobra.Command, cfg *config.Config) (*report.Calculation, error) {
	f := &config.InputFile{}
	if cfg.InputFile != "" {
		loaded, err := config.LoadInputFile(cfg.InputFile)
		if err != nil {
			return nil, err
		}
		f = loaded
		slog.Debug("input file loaded", "path", cfg.InputFile)
	}

	// Presets and flags given on the command line form one layer above the
	// file. The display block is replaced as a whole, so it starts from the
	// file's values.
	over := &config.InputFile{Camera: cfg.Camera, SensorFormat: cfg.SensorFormat}
	if f.Display != nil {
		d := *f.Display
		over.Display = &d
	}
	if err := applyFlags(cmd, over); err != nil {
		return nil, err
	}

	in, err := f.Overlay(over)
	if err != nil {
		return nil, err
	}
	return report.NewCalculation(calculationLabel(cfg, f), in), nil
}

// calculationLabel names the setup after its camera, sensor format or input
// file, preferring names given on the command line.
func calculationLabel(cfg *config.Config, f *config.InputFile) string {
	for _, name := range []string{cfg.Camera, cfg.SensorFormat, f.Camera, f.SensorFormat} {
		if name != "" {
			return name
		}
	}
	if cfg.InputFile != "" {
		return filepath.Base(cfg.InputFile)
	}
	return ""
}

// applyFlags copies every flag the user set into f as an explicit field.
func applyFlags(cmd *cobra.Command, f *config.InputFile) error {
	flags := cmd.Flags()

	floats := []struct {
		name string
		dst  **float64
	}{
		{"objective", &f.Objective.Magnification},
		{"na", &f.Objective.NumericalAperture},
		{"fn", &f.Objective.FieldNumberMm},
		{"coupler", &f.Objective.CouplerMagnification},
		{"wavelength", &f.WavelengthUm},
		{"width-mm", &f.Sensor.WidthMm},
		{"height-mm", &f.Sensor.HeightMm},
		{"pixel-pitch", &f.Sensor.PixelPitchUm},
	}
	for _, fl := range floats {
		if flags.Lookup(fl.name) == nil || !flags.Changed(fl.name) {
			continue
		}
		v, err := flags.GetFloat64(fl.name)
		if err != nil {
			return err
		}
		*fl.dst = &v
	}

	ints := []struct {
		name string
		dst  **int
	}{
		{"width-px", &f.Sensor.WidthPx},
		{"height-px", &f.Sensor.HeightPx},
	}
	for _, fl := range ints {
		if flags.Lookup(fl.name) == nil || !flags.Changed(fl.name) {
			continue
		}
		v, err := flags.GetInt(fl.name)
		if err != nil {
			return err
		}
		*fl.dst = &v
	}

	if err := applyDisplayFlags(cmd, f); err != nil {
		return err
	}
	return f.Validate()
}

// applyDisplayFlags overrides the display block. Setting any display flag
// creates the block.
func applyDisplayFlags(cmd *cobra.Command, f *config.InputFile) error {
	flags := cmd.Flags()
	if flags.Lookup("display-inch") == nil {
		return nil
	}
	if !flags.Changed("display-inch") && !flags.Changed("display-width") && !flags.Changed("display-height") {
		return nil
	}

	if f.Display == nil {
		f.Display = &config.DisplayFields{}
	}
	var err error
	if flags.Changed("display-inch") {
		if f.Display.DiagonalInch, err = flags.GetFloat64("display-inch"); err != nil {
			return err
		}
	}
	if flags.Changed("display-width") {
		if f.Display.WidthPx, err = flags.GetInt("display-width"); err != nil {
			return err
		}
	}
	if flags.Changed("display-height") {
		if f.Display.HeightPx, err = flags.GetInt("display-height"); err != nil {
			return err
		}
	}
	return nil
}
