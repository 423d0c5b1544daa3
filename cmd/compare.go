package cmd

import (
	"fmt"

	"github.com/k021c1498/lifeplan-suisoku/internal/calculation"
	"github.com/k021c1498/lifeplan-suisoku/internal/output"

	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Rank scenarios by final savings",
	Long:  "Run every scenario in the file, rank them by savings at the end age and show where the leader changes.",
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	results, _, err := runConfiguration(cmd, settings)
	if err != nil {
		return err
	}

	// Non-console formats carry the ranking themselves
	if flagOutput != "" || output.NormalizeFormatName(reportFormat(settings)) != "console" {
		return emitReport(cmd, settings, results)
	}

	w := cmd.OutOrStdout()
	rec := output.AnalyzeScenarios(results)

	fmt.Fprintln(w, output.RenderTitle("SCENARIO COMPARISON"))
	fmt.Fprintln(w)

	t := output.Table{
		Title:   "Ranking by final savings",
		Headers: []string{"Rank", "Scenario", "Final", "Peak", "First deficit"},
	}
	for _, r := range rec.Ranking {
		deficit := "-"
		if r.DeficitYear > 0 {
			deficit = fmt.Sprintf("year %d", r.DeficitYear)
		}
		t.Rows = append(t.Rows, []string{
			fmt.Sprintf("%d", r.Rank),
			r.Name,
			output.FormatCurrency(r.FinalSavings),
			output.FormatCurrency(r.PeakSavings),
			deficit,
		})
	}
	fmt.Fprintln(w, output.RenderTable(t))

	if len(rec.Ranking) > 1 {
		fmt.Fprintf(w, "  %s leads %s by %s\n", rec.ScenarioName, rec.Ranking[1].Name, output.FormatCurrency(rec.LeadOverNext))
	}

	if len(results.Results) >= 2 {
		a, b := &results.Results[0], &results.Results[1]
		x, err := calculation.SavingsCrossover(a, b)
		if err != nil {
			return err
		}
		if x == nil {
			fmt.Fprintf(w, "  %s and %s never swap places\n", a.Name, b.Name)
		} else {
			fmt.Fprintf(w, "  Crossover in year %d: %s -> %s (%s vs %s)\n",
				x.YearIndex, x.LeaderBefore, x.LeaderAfter,
				output.FormatCurrency(x.SavingsA), output.FormatCurrency(x.SavingsB))
		}
	}
	return nil
}
