package output

import (
	"github.com/k021c1498/lifeplan-suisoku/internal/calculation"
	"github.com/k021c1498/lifeplan-suisoku/internal/domain"
)

// DefaultAssumptions lists the modelling assumptions of the default scenario.
var DefaultAssumptions = func() []string {
	s := domain.DefaultScenario()
	return calculation.Assumptions(&s)
}()

// assumptionsFor returns the assumptions carried by results, or the defaults.
func assumptionsFor(results *domain.ScenarioComparison) []string {
	if len(results.Assumptions) > 0 {
		return results.Assumptions
	}
	return DefaultAssumptions
}
