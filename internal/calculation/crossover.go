package calculation

import (
	"fmt"

	"github.com/k021c1498/lifeplan-suisoku/internal/domain"
	"github.com/shopspring/decimal"
)

// CrossoverResult describes where the cumulative savings of two scenarios
// swap order.
type CrossoverResult struct {
	// Year index (1-based) at the end of which the leader has changed
	YearIndex int `json:"year_index"`

	// Fraction (0..1] of YearIndex elapsed when the two balances are equal,
	// assuming savings accrue evenly over the year
	Fraction decimal.Decimal `json:"fraction_of_year"`

	// Scenario ahead before and after the crossover
	LeaderBefore string `json:"leader_before"`
	LeaderAfter  string `json:"leader_after"`

	// Balances at the end of YearIndex
	SavingsA decimal.Decimal `json:"savings_a"`
	SavingsB decimal.Decimal `json:"savings_b"`
}

// SavingsCrossover finds the first year in which the cumulative savings of a
// overtake b or the other way round. It returns nil without error when the
// leader never changes.
func SavingsCrossover(a, b *domain.ScenarioResult) (*CrossoverResult, error) {
	if len(a.Records) == 0 || len(b.Records) == 0 {
		return nil, fmt.Errorf("one or both projections are empty")
	}

	// Align to the shorter run
	n := min(len(a.Records), len(b.Records))

	leader := func(diff decimal.Decimal) string {
		if diff.IsNegative() {
			return b.Name
		}
		return a.Name
	}

	prevDiff := decimal.Zero
	for i := 0; i < n; i++ {
		currDiff := a.Records[i].CumulativeSavings.Sub(b.Records[i].CumulativeSavings)

		// Until the runs diverge there is no leader
		if i == 0 || prevDiff.IsZero() {
			prevDiff = currDiff
			continue
		}

		if currDiff.IsZero() || prevDiff.Sign() != currDiff.Sign() {
			// prevDiff + (currDiff - prevDiff) * f = 0
			fraction := decimal.NewFromInt(1)
			if step := currDiff.Sub(prevDiff); !step.IsZero() {
				fraction = prevDiff.Neg().DivRound(step, 4)
			}
			after := leader(currDiff)
			if currDiff.IsZero() {
				after = "tie"
			}
			return &CrossoverResult{
				YearIndex:    a.Records[i].YearIndex,
				Fraction:     fraction,
				LeaderBefore: leader(prevDiff),
				LeaderAfter:  after,
				SavingsA:     a.Records[i].CumulativeSavings,
				SavingsB:     b.Records[i].CumulativeSavings,
			}, nil
		}
		prevDiff = currDiff
	}
	return nil, nil
}
