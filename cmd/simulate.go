// Package cmd implements the lifeplan CLI commands.
package cmd

import (
	"fmt"

	"github.com/k021c1498/lifeplan-suisoku/internal/config"
	"github.com/k021c1498/lifeplan-suisoku/internal/domain"
	"github.com/k021c1498/lifeplan-suisoku/internal/output"

	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the scenarios and print the savings report",
	RunE:  runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	results, source, err := runConfiguration(cmd, settings)
	if err != nil {
		return err
	}
	if flagVerbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "  Ran %d scenario(s) from %s\n", len(results.Results), source)
	}
	return emitReport(cmd, settings, results)
}

// runConfiguration loads the scenario file and runs every scenario in it.
func runConfiguration(cmd *cobra.Command, settings config.Settings) (*domain.ScenarioComparison, string, error) {
	cfg, source, err := loadConfiguration(settings)
	if err != nil {
		return nil, source, err
	}
	results, err := newEngine(cmd.ErrOrStderr()).RunScenarios(cmd.Context(), cfg)
	if err != nil {
		return nil, source, fmt.Errorf("simulation of %s failed: %w", source, err)
	}
	return results, source, nil
}

// emitReport prints the report or writes it into --output.
func emitReport(cmd *cobra.Command, settings config.Settings, results *domain.ScenarioComparison) error {
	format := reportFormat(settings)
	if flagOutput != "" {
		path, err := output.WriteReportFile(results, format, flagOutput)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
		return nil
	}

	if output.NormalizeFormatName(format) == "console" {
		f := output.ConsoleFormatter{ChartHeight: settings.Appearance.ChartHeight}
		return output.RenderTo(f, results, cmd.OutOrStdout())
	}
	return output.GenerateReport(results, format, cmd.OutOrStdout())
}
