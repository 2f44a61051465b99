package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/scopecalc/internal/config"
	"github.com/spf13/cobra"
)

//go:embed templates/scopecalc.yaml
var inputTemplate embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a scopecalc input file",
		Long: `Initialize creates a commented .scopecalc.yaml input file in the current directory.

The generated file describes a complete setup (camera preset, objective,
wavelength and display) and documents every available field.

Examples:
  # Create .scopecalc.yaml in current directory
  scopecalc init

  # Create the input file at a specific path
  scopecalc init -o scope/40x.yaml

  # Force overwrite existing file
  scopecalc init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultInputFile,
		"Output file path for the input file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing input file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("input file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := inputTemplate.ReadFile("templates/scopecalc.yaml")
	if err != nil {
		return fmt.Errorf("failed to read input template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write input file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created input file: %s\n", outputPath)
	fmt.Fprintln(out, "\nEdit this file to describe your microscope, then run:")
	fmt.Fprintf(out, "  scopecalc compute -c %s\n", outputPath)

	return nil
}
