package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/zaproute/pkg/zaproute"
	"github.com/BrandonKowalski/zaproute/pkg/zaproute/config"
)

// Global flag values.
var (
	flagConfig      string
	flagLogLevel    string
	flagLogPath     string
	flagDiagnostics bool
)

// cfg holds the configuration loaded by PersistentPreRunE.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "zapdemo",
	Short: "Demonstrates routing between pages with zaproute",
	Long: `zapdemo serves a small multi-page app in the browser. Pages are reached
through a select box, radio buttons, links and the ?route= query parameter.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}

		loaded, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if cmd.Flags().Changed("log-level") {
			loaded.Log.Level = flagLogLevel
		}
		if cmd.Flags().Changed("log-path") {
			loaded.Log.Path = flagLogPath
		}
		cfg = loaded

		zaproute.Init(zaproute.Options{
			LogPath:     cfg.Log.Path,
			LogLevel:    cfg.Log.Level,
			Diagnostics: flagDiagnostics,
		})
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		zaproute.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "zaproute.toml", "config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log-path", "", "also write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDiagnostics, "diagnostics", false, "log router internals at debug level")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
