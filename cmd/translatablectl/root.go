package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "translatablectl",
	Short: "Translatable field admin server",
	Long: `Serve and manage the admin API editing translatable fields.

Records keep one translation row per locale; the server reads and writes
those rows through the resources declared in translatable.yml.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
