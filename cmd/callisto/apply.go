package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"gravitas-hq/callisto/pkg/cli"
	"gravitas-hq/callisto/pkg/pipeline"
	"gravitas-hq/callisto/pkg/store"
	"gravitas-hq/callisto/pkg/telemetry/logging"
)

var applyFlags struct {
	output string
}

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Run the scoring pipeline once",
	Long: `Run the scoring pipeline once: load the stored graph, enforce the
budget policy, propagate scores, and persist the result.

The command exits nonzero without touching stored scores if the policy is
invalid or any stage fails.

Examples:
  # Run with default config
  callisto apply

  # Run with custom config
  callisto apply --config /etc/callisto/config.yaml

  # Print the run summary as JSON
  callisto apply --output json`,
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().StringVarP(&applyFlags.output, "output", "o", "text", "output format (text, json, csv)")
}

func runApply(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}

	logger, err := logging.Setup(cfg.Telemetry.Logging, os.Stderr)
	if err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}

	st, err := store.OpenWithConfig(store.Config{
		Path:        cfg.Store.Path,
		BusyTimeout: cfg.Store.BusyTimeout,
	})
	if err != nil {
		return cli.NewCommandError("apply", err)
	}
	defer st.Close()

	runner := pipeline.New(cfg, st, nil, logger)
	result, err := runner.Run(cmd.Context())
	if err != nil {
		return cli.NewCommandError("apply", err)
	}

	table := cli.Table{
		Headers: []string{"run_id", "nodes", "buckets", "reweighted", "duration"},
		Rows: [][]string{{
			result.RunID,
			strconv.Itoa(result.Nodes),
			strconv.Itoa(result.Buckets),
			strconv.Itoa(result.Reweighted),
			result.Duration.String(),
		}},
	}
	return cli.NewFormatter(cli.OutputFormat(applyFlags.output)).FormatTo(os.Stdout, table)
}
