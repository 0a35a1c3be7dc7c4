// Package cmd implements the mpctl CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/marketping/marketping/internal/api/client"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "mpctl",
		Short: "CLI client for marketping",
		Long: "mpctl is a command-line client for the marketping API.\n" +
			"It lets you manage price alerts and query the marketplace\n" +
			"from the terminal.",
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.mpctl.yaml)")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")
	rootCmd.PersistentFlags().
		Int64("guild", 0, "Discord guild ID")
	rootCmd.PersistentFlags().
		Int64("user", 0, "Discord user ID")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))
	cobra.CheckErr(viper.BindPFlag("guild", rootCmd.PersistentFlags().Lookup("guild")))
	cobra.CheckErr(viper.BindPFlag("user", rootCmd.PersistentFlags().Lookup("user")))

	rootCmd.AddCommand(alertsCmd())
	rootCmd.AddCommand(resolveCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(versionCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".mpctl")
	}

	viper.SetEnvPrefix("MPCTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}

// guildAndUser returns the guild and user IDs from flags, env, or config.
// Both are required for alert commands.
func guildAndUser() (int64, int64, error) {
	guildID := viper.GetInt64("guild")
	userID := viper.GetInt64("user")

	if guildID == 0 || userID == 0 {
		return 0, 0, fmt.Errorf("--guild and --user are required (or set guild/user in $HOME/.mpctl.yaml)")
	}

	return guildID, userID, nil
}
