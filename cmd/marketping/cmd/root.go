// Package cmd implements the CLI commands for the marketping server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "marketping",
	Short: "Watch marketplace item prices and alert Discord users",
	Long: "A service that polls the R6 Siege marketplace for item prices, " +
		"compares them against per-user alert baselines, and DMs Discord " +
		"users when a tracked item's price changes.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
