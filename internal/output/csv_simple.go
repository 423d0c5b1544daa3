package output

import (
	"bytes"
	"encoding/csv"

	"github.com/k021c1498/lifeplan-suisoku/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Years", "FinalSavings", "PeakSavings", "PeakYear", "LowestSavings", "LowestYear", "FirstDeficitYear", "TotalIncome", "TotalTaxes", "TotalLivingCost", "TotalEventCost", "TotalInvestmentReturn", "EventCount"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range results.Results {
		s := r.Summary
		row := []string{
			r.Name,
			intToString(len(r.Records)),
			yenString(s.FinalSavings),
			yenString(s.PeakSavings),
			intToString(s.PeakYear),
			yenString(s.LowestSavings),
			intToString(s.LowestYear),
			intToString(s.FirstDeficitYear),
			yenString(s.TotalIncome),
			yenString(s.TotalTaxes),
			yenString(s.TotalLivingCost),
			yenString(s.TotalEventCost),
			yenString(s.TotalInvestmentReturn),
			intToString(s.EventCount),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
