package output

import (
	"bytes"
	"encoding/csv"

	"github.com/k021c1498/lifeplan-suisoku/internal/domain"
)

// CSVDetailedExporter writes one row per scenario and simulated year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "Age", "Income", "IncomeTax", "ResidentTax", "PropertyTax", "AfterTaxIncome", "LivingCost", "EventCost", "InvestmentReturn", "AnnualSaving", "CumulativeSavings", "Married", "HouseOwned", "Event"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range results.Results {
		for _, yr := range r.Records {
			event := ""
			if yr.Event != nil {
				event = string(*yr.Event)
			}
			row := []string{
				r.Name,
				intToString(yr.YearIndex),
				intToString(yr.Age),
				yenString(yr.Income),
				yenString(yr.IncomeTax),
				yenString(yr.ResidentTax),
				yenString(yr.PropertyTax),
				yenString(yr.AfterTaxIncome),
				yenString(yr.LivingCost),
				yenString(yr.EventCost),
				yenString(yr.InvestmentReturn),
				yenString(yr.AnnualSaving),
				yenString(yr.CumulativeSavings),
				boolToString(yr.Married),
				boolToString(yr.HouseOwned),
				event,
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
