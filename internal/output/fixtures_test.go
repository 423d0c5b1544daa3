package output

import (
	"context"
	"testing"

	"github.com/k021c1498/lifeplan-suisoku/internal/calculation"
	"github.com/k021c1498/lifeplan-suisoku/internal/domain"
	"github.com/shopspring/decimal"
)

// buildTestComparison runs two scenarios through the engine: the default plan
// with the car moved to 46, and a higher earner who buys the house later.
func buildTestComparison(t *testing.T) *domain.ScenarioComparison {
	t.Helper()
	baseline := domain.DefaultScenario()
	baseline.Events[4].Age = 46

	late := baseline
	late.Name = "Late House"
	late.AnnualIncome = decimal.NewFromInt(4000000)
	late.Events = domain.Schedule{
		{Age: 30, Kind: domain.EventMarriage},
		{Age: 48, Kind: domain.EventHousePurchase},
	}

	cfg := &domain.Configuration{Scenarios: []domain.Scenario{baseline, late}}
	cmp, err := calculation.NewSimulationEngine().RunScenarios(context.Background(), cfg)
	if err != nil {
		t.Fatalf("RunScenarios: %v", err)
	}
	return cmp
}
