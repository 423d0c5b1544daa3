package calculation

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/k021c1498/lifeplan-suisoku/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunScenario(t *testing.T) {
	engine := NewSimulationEngine()
	s := testScenario()

	result, err := engine.RunScenario(context.Background(), &s)
	require.NoError(t, err)
	assert.Equal(t, "Baseline", result.Name)
	require.Len(t, result.Records, 44)
	assert.True(t, result.Summary.FinalSavings.Equal(result.Records[43].CumulativeSavings))
	assert.Equal(t, 6, result.Summary.EventCount)
	assert.Len(t, result.Annotations(), 6)
}

func TestRunScenario_DefaultScheduleRejected(t *testing.T) {
	engine := NewSimulationEngine()
	s := domain.DefaultScenario()

	result, err := engine.RunScenario(context.Background(), &s)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfiguration))
	assert.Contains(t, err.Error(), "duplicate event age 45")
}

func TestRunScenario_DebugLogging(t *testing.T) {
	var buf bytes.Buffer
	engine := NewSimulationEngine()
	engine.Debug = true
	engine.SetLogger(NewStdLogger(&buf, true))

	s := testScenario()
	_, err := engine.RunScenario(context.Background(), &s)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "DEBUG Baseline year 1 age 22")
	assert.Contains(t, buf.String(), "cumulative=770620")
}

func TestSetLoggerNil(t *testing.T) {
	engine := NewSimulationEngine()
	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}

func TestRunScenarios_PreservesOrder(t *testing.T) {
	cfg := &domain.Configuration{}
	for i := 0; i < 15; i++ {
		s := testScenario()
		s.Name = fmt.Sprintf("income-%02d", i)
		s.AnnualIncome = decimal.NewFromInt(int64(3000000 + i*100000))
		cfg.Scenarios = append(cfg.Scenarios, s)
	}

	engine := NewSimulationEngine()
	cmp, err := engine.RunScenarios(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, cmp.Results, 15)

	for i, r := range cmp.Results {
		assert.Equal(t, cfg.Scenarios[i].Name, r.Name)
		sequential := GenerateProjection(&cfg.Scenarios[i])
		assert.True(t, sequential[len(sequential)-1].CumulativeSavings.Equal(r.Summary.FinalSavings), r.Name)
	}
	assert.Equal(t, "income-14", cmp.BestScenarioForSavings)
	assert.NotEmpty(t, cmp.Assumptions)
}

func TestRunScenarios_Errors(t *testing.T) {
	engine := NewSimulationEngine()

	_, err := engine.RunScenarios(context.Background(), &domain.Configuration{})
	assert.Error(t, err)

	bad := domain.DefaultConfiguration()
	_, err = engine.RunScenarios(context.Background(), bad)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfiguration))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := &domain.Configuration{Scenarios: []domain.Scenario{testScenario()}}
	_, err = engine.RunScenarios(ctx, cfg)
	assert.ErrorIs(t, err, context.Canceled)
}
