package output

import (
	"strings"
	"testing"

	"github.com/k021c1498/lifeplan-suisoku/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRenderSavingsChart(t *testing.T) {
	cmp := buildTestComparison(t)
	chart := RenderSavingsChart(&cmp.Results[0], 10)

	lines := strings.Split(strings.TrimRight(chart, "\n"), "\n")
	// header + 10 rows + axis + x labels + legend header + 6 events
	assert.Len(t, lines, 1+10+2+1+6)
	assert.Contains(t, chart, "unit: ¥10M")
	assert.Equal(t, 6, strings.Count(chart, string(eventRune))-1, "one marker per event plus the legend key")
	assert.Contains(t, chart, "year  9 (age 30) Marriage")
}

func TestRenderSavingsChart_NegativeSavingsDrawZeroLine(t *testing.T) {
	r := &domain.ScenarioResult{Records: []domain.YearRecord{
		{YearIndex: 1, CumulativeSavings: decimal.NewFromInt(-20000000)},
		{YearIndex: 2, CumulativeSavings: decimal.NewFromInt(10000000)},
	}}
	chart := RenderSavingsChart(r, 4)
	assert.Contains(t, chart, string(zeroRune))
	assert.Contains(t, chart, "-2.0")
	assert.Contains(t, chart, "1.0")
	assert.NotContains(t, chart, "life events")
}

func TestRenderSavingsChart_Empty(t *testing.T) {
	assert.Empty(t, RenderSavingsChart(&domain.ScenarioResult{}, 10))
}

func TestChartScale(t *testing.T) {
	s := newChartScale([]float64{0, 50, 100}, 11)
	assert.Equal(t, 0, s.row(0))
	assert.Equal(t, 5, s.row(50))
	assert.Equal(t, 10, s.row(100))
	assert.Equal(t, 10, s.row(1000), "clamped to the top row")

	flat := newChartScale([]float64{0, 0}, 4)
	assert.Equal(t, 0, flat.row(0))
}

func TestXAxisLabels(t *testing.T) {
	assert.Equal(t, "1         6         11", xAxisLabels(11))
	assert.Equal(t, "1", xAxisLabels(1))
}
