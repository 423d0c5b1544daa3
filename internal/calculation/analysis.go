package calculation

import (
	"fmt"

	"github.com/k021c1498/lifeplan-suisoku/internal/domain"
	"github.com/shopspring/decimal"
)

// Summarize computes the headline numbers of a projection.
func Summarize(records []domain.YearRecord) domain.ScenarioSummary {
	var sum domain.ScenarioSummary
	if len(records) == 0 {
		return sum
	}

	sum.PeakSavings = records[0].CumulativeSavings
	sum.PeakYear = records[0].YearIndex
	sum.LowestSavings = records[0].CumulativeSavings
	sum.LowestYear = records[0].YearIndex

	for _, r := range records {
		sum.TotalIncome = sum.TotalIncome.Add(r.Income)
		sum.TotalTaxes = sum.TotalTaxes.Add(r.TotalTax())
		sum.TotalLivingCost = sum.TotalLivingCost.Add(r.LivingCost)
		sum.TotalEventCost = sum.TotalEventCost.Add(r.EventCost)
		sum.TotalInvestmentReturn = sum.TotalInvestmentReturn.Add(r.InvestmentReturn)
		if r.HasEvent() {
			sum.EventCount++
		}

		if r.CumulativeSavings.GreaterThan(sum.PeakSavings) {
			sum.PeakSavings = r.CumulativeSavings
			sum.PeakYear = r.YearIndex
		}
		if r.CumulativeSavings.LessThan(sum.LowestSavings) {
			sum.LowestSavings = r.CumulativeSavings
			sum.LowestYear = r.YearIndex
		}
		if sum.FirstDeficitYear == 0 && r.CumulativeSavings.IsNegative() {
			sum.FirstDeficitYear = r.YearIndex
		}
	}

	sum.FinalSavings = records[len(records)-1].CumulativeSavings
	return sum
}

// Compare picks the scenario with the highest final savings and lists the
// assumptions behind the run. Ties go to the earlier scenario.
func Compare(results []domain.ScenarioResult) *domain.ScenarioComparison {
	cmp := &domain.ScenarioComparison{Results: results}

	var best decimal.Decimal
	for i, r := range results {
		if i == 0 || r.Summary.FinalSavings.GreaterThan(best) {
			best = r.Summary.FinalSavings
			cmp.BestScenarioForSavings = r.Name
		}
	}

	if len(results) > 0 {
		cmp.Assumptions = Assumptions(&results[0].Scenario)
	}
	return cmp
}

// Assumptions lists the modelling assumptions of a scenario in plain text.
func Assumptions(s *domain.Scenario) []string {
	return []string{
		fmt.Sprintf("Ages %d to %d (%d years)", s.StartAge, s.EndAge, s.Years()),
		fmt.Sprintf("Income raised by %s every %d years", percent(s.RaiseRate), s.RaiseInterval),
		fmt.Sprintf("Living costs inflate by %s a year", percent(s.InflationRate)),
		fmt.Sprintf("%s of gross income invested at a %s return (flat, not compounded)", percent(s.InvestRatio), percent(s.ReturnRate)),
		fmt.Sprintf("Resident tax %s of income; property tax %s of purchase price / %s from the year after purchase",
			percent(s.Tax.ResidentRate), percent(s.Tax.PropertyRate), s.Tax.AssessmentDivisor.String()),
		"Income tax brackets are not indexed to inflation",
	}
}

func percent(r decimal.Decimal) string {
	return r.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}
