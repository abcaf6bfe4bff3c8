package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/translatable/pkg/config"
)

// configurationValidateCmd represents the configuration validate command
var configurationValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration",
	Long: `Load the configuration file and environment and check that every
locale is a valid language tag and every resource names a usable table.

Example:
  translatablectl configuration validate`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err == nil {
			err = validateConfiguration(cmd.OutOrStdout(), cfg)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to validate configuration: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	configurationCmd.AddCommand(configurationValidateCmd)
}

func validateConfiguration(w io.Writer, cfg *config.TranslatableConfig) error {
	_, _ = fmt.Fprintf(w, "Config file: %s\n", cfg.ConfigFilePath())

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	_, _ = fmt.Fprintf(w, "Configuration is valid: %d locale(s), %d resource(s)\n", len(cfg.Locales), len(cfg.Resources))
	return nil
}
