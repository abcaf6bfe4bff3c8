package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/translatable/pkg/config"
	"github.com/doodlesbykumbi/translatable/pkg/localization"
)

// localesCmd represents the locales command
var localesCmd = &cobra.Command{
	Use:   "locales",
	Short: "List the configured locales and their labels",
	Long: `List the configured locales in display order, labelled in the UI locale.

Example:
  translatablectl locales
  translatablectl locales --current fr`,
	Run: func(cmd *cobra.Command, args []string) {
		current, _ := cmd.Flags().GetString("current")

		cfg, err := config.Load()
		if err == nil {
			err = printLocales(cmd.OutOrStdout(), cfg, current)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to list locales: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(localesCmd)
	localesCmd.Flags().String("current", "", "UI locale labels are rendered in (default app_locale)")
}

func printLocales(w io.Writer, cfg *config.TranslatableConfig, current string) error {
	if current == "" {
		current = cfg.AppLocale
	}
	l10n := localization.NewDisplay(current, cfg.Labels)

	if len(cfg.Locales) == 0 {
		_, err := fmt.Fprintln(w, "No locales configured")
		return err
	}

	for _, code := range cfg.Locales {
		if _, err := fmt.Fprintf(w, "%-10s %s\n", code, l10n.Translate(code)); err != nil {
			return err
		}
	}
	return nil
}
