package main

import (
	"errors"
	"fmt"

	"github.com/nao1215/scopecalc/internal/config"
	"github.com/nao1215/scopecalc/internal/i18n"
	"github.com/nao1215/scopecalc/internal/optics"
	"github.com/nao1215/scopecalc/internal/preset"
	"github.com/nao1215/scopecalc/internal/report"
	"github.com/spf13/cobra"
)

// errNoCameras is returned when --filter matches no camera preset.
var errNoCameras = errors.New("no camera preset matches the filter")

// NewCompareCmd creates the compare command.
func NewCompareCmd(store i18n.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare every camera preset on the same objective",
		Long: `Compare computes every camera preset behind the same objective,
field number and wavelength, each with its recommended C-mount adapter,
and prints the results side by side. An adapter given with --coupler or
as objective.couplerMagnification in the input file replaces the
recommended adapter for every camera.

Examples:
  # All cameras on a 20x/0.5 objective
  scopecalc compare --objective 20 --na 0.5

  # Only the Axiocam 212 variants, with a 0.63x adapter for all
  scopecalc compare --filter "212" --coupler 0.63

  # Markdown table for documentation
  scopecalc compare --objective 40 --na 0.75 -m -o compare.md`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompareCmd(cmd, store)
		},
	}

	cmd.Flags().StringP("config", "c", "",
		"Input file whose objective, wavelength and display are used")
	cmd.Flags().StringP("filter", "f", "", "Only compare cameras matching this fuzzy query")
	addSystemFlags(cmd)
	addReportFlags(cmd)

	return cmd
}

// runCompareCmd executes the compare command.
func runCompareCmd(cmd *cobra.Command, store i18n.Store) error {
	cfg := config.NewConfig()
	if err := readReportFlags(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	inputFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	filter, err := cmd.Flags().GetString("filter")
	if err != nil {
		return err
	}

	logger := setupLogger(cmd)
	session, err := loadSession(cmd, store, logger)
	if err != nil {
		return err
	}

	base, keepCoupler, err := systemFromFlags(cmd, inputFile)
	if err != nil {
		return err
	}

	calcs, err := compareCameras(base, filter, keepCoupler)
	if err != nil {
		return err
	}
	logger.Debug("compared cameras", "count", len(calcs), "filter", filter)

	return writeReport(cmd, cfg, session.Translator(), func(w report.Writer) error {
		_, err := w.WriteComparison(calcs)
		return err
	})
}

// compareCameras computes base with each matching camera applied. With
// keepCoupler the adapter of base replaces the per-camera adapter.
func compareCameras(base optics.SystemInput, filter string, keepCoupler bool) ([]*report.Calculation, error) {
	cameras := preset.SearchCameras(filter)
	if len(cameras) == 0 {
		return nil, fmt.Errorf("%w: %q", errNoCameras, filter)
	}

	calcs := make([]*report.Calculation, 0, len(cameras))
	for _, c := range cameras {
		in := base
		c.Apply(&in)
		if keepCoupler {
			in.Objective.CouplerMagnification = base.Objective.CouplerMagnification
		}
		calcs = append(calcs, report.NewCalculation(c.Name, in))
	}
	return calcs, nil
}

// systemFromFlags builds the objective, wavelength and display shared by all
// compared cameras: defaults, then the input file, then flags. Sensor fields
// and presets in the file are dropped because each camera replaces them.
// It also reports whether the file or --coupler fixed the adapter.
func systemFromFlags(cmd *cobra.Command, inputFile string) (optics.SystemInput, bool, error) {
	f := &config.InputFile{}
	if inputFile != "" {
		loaded, err := config.LoadInputFile(inputFile)
		if err != nil {
			return optics.SystemInput{}, false, err
		}
		f = loaded
	}
	f.Camera, f.SensorFormat = "", ""
	f.Sensor = config.SensorFields{}

	if err := applyFlags(cmd, f); err != nil {
		return optics.SystemInput{}, false, err
	}
	in, err := f.SystemInput()
	if err != nil {
		return optics.SystemInput{}, false, err
	}
	return in, f.Objective.CouplerMagnification != nil, nil
}
