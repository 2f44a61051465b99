package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/nao1215/scopecalc/internal/preset"
	"github.com/spf13/cobra"
)

// NewPresetsCmd creates the presets command and its subcommands.
func NewPresetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List camera and sensor-format presets",
		Long: `List the built-in presets. With a query, only fuzzy matches are shown,
best match first. The names shown can be passed to --camera and
--sensor-format, or used in an input file.

Examples:
  scopecalc presets cameras
  scopecalc presets cameras 305
  scopecalc presets sensors "2/3" --json`,
	}

	cmd.PersistentFlags().BoolP("json", "j", false, "Output JSON")

	cmd.AddCommand(&cobra.Command{
		Use:   "cameras [query]",
		Short: "List camera presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPresetCamerasCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "sensors [query]",
		Short: "List sensor-format presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPresetSensorsCmd,
	})

	return cmd
}

func queryArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func runPresetCamerasCmd(cmd *cobra.Command, args []string) error {
	cameras := preset.SearchCameras(queryArg(args))
	if len(cameras) == 0 {
		return fmt.Errorf("%w: %q", preset.ErrNotFound, queryArg(args))
	}

	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	if asJSON {
		return writeJSON(cmd.OutOrStdout(), cameras)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPIXELS\tPITCH (µm)\tADAPTER")
	for _, c := range cameras {
		fmt.Fprintf(tw, "%s\t%d × %d\t%s\t%s×\n",
			c.Name, c.WidthPx, c.HeightPx, formatFloat(c.PixelPitchUm), formatFloat(c.CouplerMagnification))
	}
	return tw.Flush()
}

func runPresetSensorsCmd(cmd *cobra.Command, args []string) error {
	formats := preset.SearchSensorFormats(queryArg(args))
	if len(formats) == 0 {
		return fmt.Errorf("%w: %q", preset.ErrNotFound, queryArg(args))
	}

	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	if asJSON {
		return writeJSON(cmd.OutOrStdout(), formats)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tWIDTH (mm)\tHEIGHT (mm)")
	for _, s := range formats {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Name, formatFloat(s.WidthMm), formatFloat(s.HeightMm))
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
