package calculation

import (
	"context"
	"fmt"
	"sync"

	"github.com/k021c1498/lifeplan-suisoku/internal/domain"
)

// maxParallelScenarios bounds the number of scenarios simulated at once.
const maxParallelScenarios = 10

// SimulationEngine runs scenarios and condenses their results.
type SimulationEngine struct {
	Debug  bool // Enable per-year debug output
	Logger Logger
}

// NewSimulationEngine creates a new engine with a no-op logger.
func NewSimulationEngine() *SimulationEngine {
	return &SimulationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (se *SimulationEngine) SetLogger(l Logger) {
	if l == nil {
		se.Logger = NopLogger{}
		return
	}
	se.Logger = l
}

func (se *SimulationEngine) logger() Logger {
	if se.Logger == nil {
		return NopLogger{}
	}
	return se.Logger
}

// RunScenario validates and simulates a single scenario.
func (se *SimulationEngine) RunScenario(ctx context.Context, scenario *domain.Scenario) (*domain.ScenarioResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate scenario %q: %w", scenario.Name, err)
	}

	log := se.logger()
	log.Infof("simulating %q: ages %d-%d (%d years)", scenario.Name, scenario.StartAge, scenario.EndAge, scenario.Years())

	records := GenerateProjection(scenario)
	if se.Debug {
		for _, r := range records {
			log.Debugf("%s year %d age %d: income=%s tax=%s living=%s event=%s saving=%s cumulative=%s",
				scenario.Name, r.YearIndex, r.Age,
				r.Income.StringFixed(0), r.TotalTax().StringFixed(0), r.LivingCost.StringFixed(0),
				r.EventCost.StringFixed(0), r.AnnualSaving.StringFixed(0), r.CumulativeSavings.StringFixed(0))
		}
	}

	return &domain.ScenarioResult{
		Name:     scenario.Name,
		Scenario: *scenario,
		Records:  records,
		Summary:  Summarize(records),
	}, nil
}

// RunScenarios simulates every scenario of cfg concurrently and compares the
// results. Results keep the order of cfg.Scenarios. The first failure, in
// input order, is returned.
func (se *SimulationEngine) RunScenarios(ctx context.Context, cfg *domain.Configuration) (*domain.ScenarioComparison, error) {
	if cfg == nil || len(cfg.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios to run")
	}

	results := make([]*domain.ScenarioResult, len(cfg.Scenarios))
	errs := make([]error, len(cfg.Scenarios))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, maxParallelScenarios) // Limit concurrent scenarios

	for i := range cfg.Scenarios {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			semaphore <- struct{}{}        // Acquire semaphore
			defer func() { <-semaphore }() // Release semaphore

			results[idx], errs[idx] = se.RunScenario(ctx, &cfg.Scenarios[idx])
		}(i)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	ordered := make([]domain.ScenarioResult, len(results))
	for i, r := range results {
		ordered[i] = *r
	}
	return Compare(ordered), nil
}
