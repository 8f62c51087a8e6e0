package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gravitas-hq/callisto/pkg/cli"
	"gravitas-hq/callisto/pkg/policy"
)

var validateFlags struct {
	policyPath string
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a budget policy file",
	Long: `Validate a budget policy file without running the pipeline.

Checks that the file parses, that no entry prefix is a prefix of another,
that the interval length is supported, and that every entry's periods are
sorted ascending by start.

Examples:
  # Validate the policy named by the config file
  callisto validate

  # Validate a specific policy file
  callisto validate --policy budgets.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateFlags.policyPath, "policy", "p", "", "policy file to validate (default: the config's policy path)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := validateFlags.policyPath
	if path == "" {
		cfg, err := loadConfig()
		if err != nil {
			return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
		}
		path = cfg.Policy.Path
	}

	pol, err := policy.Load(path)
	if err != nil {
		return cli.NewCommandError("validate", err)
	}
	if err := pol.Validate(); err != nil {
		return cli.NewCommandError("validate", err)
	}

	fmt.Printf("✓ Policy valid (%d entries)\n", len(pol.Entries))
	return nil
}
