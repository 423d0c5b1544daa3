package output

import (
	"bytes"
	"fmt"

	"github.com/k021c1498/lifeplan-suisoku/internal/domain"
)

// ConsoleFormatter renders the yearly tables, savings charts and summary for
// a terminal.
type ConsoleFormatter struct {
	ChartHeight int // rows in the savings chart, defaults to 12
}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	height := c.ChartHeight
	if height == 0 {
		height = defaultChartHeight
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, RenderTitle("LIFE PLAN SAVINGS PROJECTION"))
	fmt.Fprintln(&buf)

	for i := range results.Results {
		r := &results.Results[i]
		fmt.Fprintln(&buf, RenderTable(yearTable(r)))
		fmt.Fprintln(&buf, RenderSavingsChart(r, height))
		writeSummary(&buf, r)
		fmt.Fprintln(&buf)
	}

	if len(results.Results) > 1 {
		fmt.Fprintln(&buf, RenderTable(rankingTable(results)))
	}

	fmt.Fprintln(&buf, headerStyle.Render("  Assumptions"))
	for _, a := range assumptionsFor(results) {
		fmt.Fprintf(&buf, "  %s %s\n", dimStyle.Render("•"), mutedStyle.Render(a))
	}

	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Best savings: %s (%s)\n", rec.ScenarioName, FormatCurrency(rec.FinalSavings))
	}
	return buf.Bytes(), nil
}

func yearTable(r *domain.ScenarioResult) Table {
	t := Table{
		Title:   r.Name,
		Headers: []string{"Year", "Age", "Income", "Tax", "Living", "Event", "Return", "Saving", "Cumulative", "Note"},
	}
	for _, rec := range r.Records {
		t.Rows = append(t.Rows, []string{
			intToString(rec.YearIndex),
			intToString(rec.Age),
			FormatCurrency(rec.Income),
			FormatCurrency(rec.TotalTax()),
			FormatCurrency(rec.LivingCost),
			FormatCurrency(rec.EventCost),
			FormatCurrency(rec.InvestmentReturn),
			FormatCurrency(rec.AnnualSaving),
			FormatCurrency(rec.CumulativeSavings),
			rec.EventLabel,
		})
	}
	return t
}

func writeSummary(buf *bytes.Buffer, r *domain.ScenarioResult) {
	s := r.Summary
	fmt.Fprintf(buf, "  %s %s\n", headerStyle.Render("Final savings:"), signed(FormatCurrency(s.FinalSavings), s.FinalSavings.IsNegative()))
	fmt.Fprintf(buf, "  Peak savings:   %s (year %d)\n", FormatCurrency(s.PeakSavings), s.PeakYear)
	fmt.Fprintf(buf, "  Lowest savings: %s (year %d)\n", FormatCurrency(s.LowestSavings), s.LowestYear)
	if s.FirstDeficitYear > 0 {
		fmt.Fprintf(buf, "  %s\n", lossStyle.Render(fmt.Sprintf("Savings first go negative in year %d", s.FirstDeficitYear)))
	}
	fmt.Fprintf(buf, "  Total income %s, taxes %s, living %s, events %s, returns %s\n",
		FormatCurrency(s.TotalIncome), FormatCurrency(s.TotalTaxes), FormatCurrency(s.TotalLivingCost),
		FormatCurrency(s.TotalEventCost), FormatCurrency(s.TotalInvestmentReturn))
}

func rankingTable(results *domain.ScenarioComparison) Table {
	rec := AnalyzeScenarios(results)
	t := Table{
		Title:   "Scenario ranking",
		Headers: []string{"Scenario", "Rank", "Final savings", "Peak savings", "First deficit"},
	}
	for _, r := range rec.Ranking {
		deficit := "-"
		if r.DeficitYear > 0 {
			deficit = "year " + intToString(r.DeficitYear)
		}
		t.Rows = append(t.Rows, []string{r.Name, intToString(r.Rank), FormatCurrency(r.FinalSavings), FormatCurrency(r.PeakSavings), deficit})
	}
	return t
}
