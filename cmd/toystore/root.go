package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacwu/toy-store/internal/app"
	"github.com/jacwu/toy-store/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "toystore",
	Short: "Toy store catalogue and reviews API",
	Long: `toystore serves a catalogue of toy types and toys, customer reviews
and simple user accounts over a JSON HTTP API.

Storage is selected with STORAGE_DRIVER: memory, sqlite or postgres.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath == "" {
			return nil
		}
		return os.Setenv("CONFIG_PATH", configPath)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the YAML config file (overrides CONFIG_PATH)")
	rootCmd.Version = app.BuildVersion()

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, versionCmd)
}

// loadConfig resolves configuration and builds the logger for a command.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, app.NewLogger(cfg.Log), nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
	},
}
