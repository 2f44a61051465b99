package main

import (
	"fmt"
	"path/filepath"

	"github.com/nao1215/scopecalc/internal/samples"
	"github.com/spf13/cobra"
)

// defaultSamplesDir is where the web front end keeps its sample images.
var defaultSamplesDir = filepath.Join("public", "samples")

// NewSamplesCmd creates the samples command and its subcommands.
func NewSamplesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "samples",
		Short: "Manage the microscope sample image list",
	}

	generate := &cobra.Command{
		Use:   "generate",
		Short: "Generate the sample list from a directory of JPEG images",
		Long: `Generate scans a directory for .jpg and .jpeg files and writes the sample
list used by the sample picker. The synthetic hatched pattern always comes
first; image files follow in English alphabetical order.

A missing directory is not an error: the list then holds only the hatched
pattern.

Examples:
  # Print the list for public/samples
  scopecalc samples generate

  # Write it to a file, reading camera make and model from EXIF
  scopecalc samples generate --dir images --output data/samples.yaml --exif`,
		Args: cobra.NoArgs,
		RunE: runSamplesGenerateCmd,
	}
	generate.Flags().StringP("dir", "d", defaultSamplesDir, "Directory containing sample images")
	generate.Flags().StringP("output", "o", "", "Write the list to this file instead of stdout")
	generate.Flags().Bool("exif", false, "Read camera make and model from each image")
	generate.Flags().Int("concurrency", 4, "Number of images read in parallel with --exif")

	cmd.AddCommand(generate)
	return cmd
}

// runSamplesGenerateCmd executes the samples generate command.
func runSamplesGenerateCmd(cmd *cobra.Command, _ []string) error {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return err
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	withEXIF, err := cmd.Flags().GetBool("exif")
	if err != nil {
		return err
	}
	concurrency, err := cmd.Flags().GetInt("concurrency")
	if err != nil {
		return err
	}

	logger := setupLogger(cmd)
	list, err := samples.Generate(cmd.Context(), dir,
		samples.WithEXIF(withEXIF),
		samples.WithConcurrency(concurrency),
		samples.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	if output == "" {
		return samples.Write(cmd.OutOrStdout(), list)
	}
	if err := samples.WriteFile(output, list); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Generated %s with %d sample(s).\n", output, len(list)-1)
	return nil
}
