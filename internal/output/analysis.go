package output

import (
	"sort"

	"github.com/k021c1498/lifeplan-suisoku/internal/domain"
	"github.com/shopspring/decimal"
)

// RankedScenario is one line of the savings ranking.
type RankedScenario struct {
	Rank         int
	Name         string
	FinalSavings decimal.Decimal
	PeakSavings  decimal.Decimal
	DeficitYear  int
}

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName string
	FinalSavings decimal.Decimal
	LeadOverNext decimal.Decimal // zero when only one scenario ran
	Ranking      []RankedScenario
}

// AnalyzeScenarios ranks scenarios by final savings, highest first. Ties keep
// input order.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	if results == nil || len(results.Results) == 0 {
		return Recommendation{}
	}
	ranks := make([]RankedScenario, 0, len(results.Results))
	for _, r := range results.Results {
		ranks = append(ranks, RankedScenario{
			Name:         r.Name,
			FinalSavings: r.Summary.FinalSavings,
			PeakSavings:  r.Summary.PeakSavings,
			DeficitYear:  r.Summary.FirstDeficitYear,
		})
	}
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].FinalSavings.GreaterThan(ranks[j].FinalSavings) })
	for i := range ranks {
		ranks[i].Rank = i + 1
	}

	rec := Recommendation{ScenarioName: ranks[0].Name, FinalSavings: ranks[0].FinalSavings, Ranking: ranks}
	if len(ranks) > 1 {
		rec.LeadOverNext = ranks[0].FinalSavings.Sub(ranks[1].FinalSavings)
	}
	return rec
}
