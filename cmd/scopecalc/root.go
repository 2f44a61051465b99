package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/scopecalc/internal/config"
	"github.com/nao1215/scopecalc/internal/i18n"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for scopecalc, storing the locale
// preference under the XDG config directory.
func NewRootCmd() *cobra.Command {
	return newRootCmd(i18n.NewFileStore(filepath.Join(config.XDGConfigDir(), i18n.PreferenceFile)))
}

// newRootCmd creates the root command with the given preference store.
func newRootCmd(store i18n.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scopecalc",
		Short: "Microscope camera and objective calculator",
		Long: `scopecalc estimates what a microscope camera setup can resolve.

From the camera sensor, the objective, the C-mount adapter and the
illumination wavelength it derives the Rayleigh resolution, the object-side
pixel size and Nyquist sampling, the field of view, and how well the sensor
projection fits the eyepiece field number.

Reports are localized (zh, en, de). The language is remembered between runs
with "scopecalc locale set" and can be overridden per run with --lang.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write logs to stderr as JSON")
	cmd.PersistentFlags().StringP("lang", "l", "",
		"Report language for this run (zh, en, de); overrides the saved preference")

	// Add subcommands
	cmd.AddCommand(NewComputeCmd(store))
	cmd.AddCommand(NewCompareCmd(store))
	cmd.AddCommand(NewPresetsCmd())
	cmd.AddCommand(NewSamplesCmd())
	cmd.AddCommand(NewLocaleCmd(store))
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
