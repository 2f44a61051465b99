package main

import (
	"fmt"

	"github.com/nao1215/scopecalc/internal/i18n"
	"github.com/spf13/cobra"
)

// NewLocaleCmd creates the locale command and its subcommands.
func NewLocaleCmd(store i18n.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locale",
		Short: "Show or change the report language",
		Long: `Show or change the language used for reports.

The choice is saved in the user config directory and used by every later
run. --lang overrides it for a single run without saving.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the active locale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := loadSession(cmd, store, setupLogger(cmd))
			if err != nil {
				return err
			}
			l := session.Locale()
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", l, l.DisplayName())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <locale>",
		Short: "Save the report language (zh, en, de or a tag such as de-AT)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := i18n.ParseLocale(args[0])
			if err != nil {
				return err
			}
			session := i18n.NewSession(store)
			if err := session.Set(l); err != nil {
				return fmt.Errorf("failed to save locale: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Locale set to %s (%s)\n", l, l.DisplayName())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List supported locales; the active one is marked with *",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := loadSession(cmd, store, setupLogger(cmd))
			if err != nil {
				return err
			}
			for _, l := range i18n.Locales() {
				mark := " "
				if l == session.Locale() {
					mark = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s\n", mark, l, l.DisplayName())
			}
			return nil
		},
	})

	return cmd
}
