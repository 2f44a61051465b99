package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nao1215/scopecalc/internal/config"
	"github.com/nao1215/scopecalc/internal/i18n"
	scopelog "github.com/nao1215/scopecalc/internal/log"
	"github.com/nao1215/scopecalc/internal/report"
	"github.com/spf13/cobra"
)

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// getLangFlag retrieves the --lang flag from the command or its parent.
func getLangFlag(cmd *cobra.Command) string {
	lang, err := cmd.Flags().GetString("lang")
	if err != nil {
		lang, err = cmd.Root().PersistentFlags().GetString("lang")
		if err != nil {
			return ""
		}
	}
	return lang
}

// getLogJSONFlag retrieves the --log-json flag from the root command.
func getLogJSONFlag(cmd *cobra.Command) bool {
	logJSON, err := cmd.Root().PersistentFlags().GetBool("log-json")
	if err != nil {
		return false
	}
	return logJSON
}

// setupLogger creates the logger for a command run and makes it the default.
func setupLogger(cmd *cobra.Command) *slog.Logger {
	newLogger := scopelog.NewLogger
	if getLogJSONFlag(cmd) {
		newLogger = scopelog.NewJSONLogger
	}
	logger := newLogger(cmd.ErrOrStderr(), getVerboseFlag(cmd))
	slog.SetDefault(logger)
	return logger
}

// loadSession restores the saved locale and applies --lang. A damaged
// preference file only produces a warning.
func loadSession(cmd *cobra.Command, store i18n.Store, logger *slog.Logger) (*i18n.Session, error) {
	session := i18n.NewSession(store)
	if err := session.Load(); err != nil {
		logger.Warn("ignoring saved locale", "error", err)
	}

	if lang := getLangFlag(cmd); lang != "" {
		l, err := i18n.ParseLocale(lang)
		if err != nil {
			return nil, err
		}
		session.Use(l)
	}
	return session, nil
}

// addReportFlags registers the output flags shared by compute and compare.
func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().BoolP("explain", "e", false,
		"Explain each metric in the plain text report")
	cmd.Flags().Bool("tee", false,
		"With --output, also print the plain text report to stdout")
}

// readReportFlags copies the output flags into cfg.
func readReportFlags(cmd *cobra.Command, cfg *config.Config) error {
	var err error
	if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
		return err
	}
	if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
		return err
	}
	if cfg.ReportFile, err = cmd.Flags().GetString("output"); err != nil {
		return err
	}
	cfg.Verbose = getVerboseFlag(cmd)
	cfg.Locale = getLangFlag(cmd)
	return nil
}

// writeReport sends the report to cfg.ReportFile, or stdout if unset. The
// file is truncated on every call. With --tee a plain text copy also goes
// to stdout.
func writeReport(cmd *cobra.Command, cfg *config.Config, tr i18n.Translator, write func(report.Writer) error) error {
	var output io.Writer = cmd.OutOrStdout()
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	}

	explain, err := cmd.Flags().GetBool("explain")
	if err != nil {
		explain = false
	}
	w := newReportWriter(cfg, output, tr, explain)

	if tee, _ := cmd.Flags().GetBool("tee"); tee && cfg.ReportFile != "" {
		w = report.NewMultiWriter(w, report.NewSimpleWriter(cmd.OutOrStdout(),
			report.WithSimpleTranslator(tr), report.WithVerbose(explain)))
	}
	return write(w)
}

// newReportWriter selects the writer for the configured format.
func newReportWriter(cfg *config.Config, output io.Writer, tr i18n.Translator, explain bool) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output, report.WithPrettyPrint(), report.WithVersion(getVersion()))
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output, report.WithMarkdownTranslator(tr))
	default:
		return report.NewSimpleWriter(output, report.WithSimpleTranslator(tr), report.WithVerbose(explain))
	}
}
