package cmd

import (
	"errors"
	"fmt"

	"github.com/k021c1498/lifeplan-suisoku/internal/domain"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a scenario file without running it",
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	cfg, source, err := loadConfiguration(settings)
	if err != nil {
		var ce *domain.ConfigurationError
		if errors.As(err, &ce) {
			fmt.Fprintf(cmd.ErrOrStderr(), "  Scenario: %s\n  Field:    %s\n  Problem:  %s\n", ce.Scenario, ce.Field, ce.Reason)
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s is valid (%d scenario(s))\n", source, len(cfg.Scenarios))
	for _, s := range cfg.Scenarios {
		fmt.Fprintf(cmd.OutOrStdout(), "  - %s: ages %d-%d, %d event(s)\n", s.Name, s.StartAge, s.EndAge, len(s.Events))
	}
	return nil
}
