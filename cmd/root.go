package cmd

import (
	"fmt"

	"github.com/abhisek/finecheck/internal/config"
	"github.com/abhisek/finecheck/internal/store"
	"github.com/abhisek/finecheck/internal/telemetry"
	"github.com/abhisek/finecheck/internal/verdict"
	"github.com/spf13/cobra"
)

var (
	cfg    config.Config
	cfgErr error
)

var rootCmd = &cobra.Command{
	Use:   "finecheck",
	Short: "Classify and contest traffic fines",
	Long: `finecheck keeps a registry of traffic fine reports, asks an LLM whether each
fine is worth contesting, turns the answer into a verdict card and drafts
cancellation letters.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgErr != nil {
			return fmt.Errorf("load config: %w", cfgErr)
		}
		// Operational logs stay off stdout except for the API server.
		if cmd.Name() != "serve" {
			telemetry.SetOutput(cmd.ErrOrStderr())
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FINECHECK_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Config file (default: ./finecheck.yaml or ~/.config/finecheck/finecheck.yaml)")
	rootCmd.PersistentFlags().String("locale", "", "Output language: en or he (default from config)")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(fineCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(letterCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	file, _ := rootCmd.PersistentFlags().GetString("config")
	cfg, cfgErr = config.Load(file)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured path, then FINECHECK_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// resolveLocale prefers --locale over the configured default.
func resolveLocale(cmd *cobra.Command) verdict.Locale {
	if l, _ := cmd.Flags().GetString("locale"); l != "" {
		return verdict.ParseLocale(l)
	}
	return verdict.ParseLocale(string(cfg.Locale))
}
