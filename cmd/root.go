package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/k021c1498/lifeplan-suisoku/internal/calculation"
	"github.com/k021c1498/lifeplan-suisoku/internal/config"
	"github.com/k021c1498/lifeplan-suisoku/internal/domain"

	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagFormat  string
	flagOutput  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "lifeplan",
	Short: "Life plan savings simulator",
	Long: "Project yearly income, taxes, living costs, life events and investment returns " +
		"from a starting age to retirement, and compare savings across scenarios.",
	RunE:          runSimulate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Scenario file (YAML); defaults to settings scenario_file, then the built-in example")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "", "Report format (console, csv, detailed-csv, json, html)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "Write the report into this directory instead of stdout")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log each simulated year to stderr")
}

// loadSettings resolves settings.toml plus LIFEPLAN_* overrides.
func loadSettings() (config.Settings, error) {
	s, err := config.Resolve()
	if err != nil {
		return s, fmt.Errorf("loading settings: %w", err)
	}
	return s, nil
}

// loadConfiguration reads the scenario file named by --config or the settings.
// Without either it falls back to the built-in example plan.
func loadConfiguration(s config.Settings) (*domain.Configuration, string, error) {
	parser := config.NewInputParser()
	path := flagConfig
	if path == "" {
		path = s.General.ScenarioFile
	}
	if path == "" {
		return parser.CreateExampleConfiguration(), "built-in example", nil
	}
	cfg, err := parser.LoadFromFile(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// newEngine builds a simulation engine that logs to stderr when --verbose is set.
func newEngine(stderr io.Writer) *calculation.SimulationEngine {
	engine := calculation.NewSimulationEngine()
	if flagVerbose {
		engine.Debug = true
		engine.SetLogger(calculation.NewStdLogger(stderr, true))
	}
	return engine
}

// reportFormat picks --format over the settings default.
func reportFormat(s config.Settings) string {
	if flagFormat != "" {
		return flagFormat
	}
	if s.General.DefaultFormat != "" {
		return s.General.DefaultFormat
	}
	return "console"
}
