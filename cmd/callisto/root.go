package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gravitas-hq/callisto/pkg/config"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "callisto",
	Short: "Callisto - budget-enforced contribution scoring pipeline",
	Long: `Callisto computes contribution scores over a weighted graph while
enforcing per-prefix weight budgets on weekly intervals.

Each run loads the stored graph, scales node weights so that no address
prefix exceeds its configured budget in any week, propagates scores over
the graph edges, and persists the result.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads the pipeline configuration for a command. When the
// config flag was left at its default and no file exists there, the
// built-in defaults are used instead of failing.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) && !rootCmd.PersistentFlags().Changed("config") {
		cfg = config.NewDefault()
		if err := config.Validate(cfg); err != nil {
			return nil, err
		}
	} else {
		cfg, err = config.LoadConfigWithEnvOverrides(cfgFile)
		if err != nil {
			return nil, err
		}
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}
	return cfg, nil
}
