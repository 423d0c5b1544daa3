package output

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k021c1498/lifeplan-suisoku/internal/calculation"
	"github.com/k021c1498/lifeplan-suisoku/internal/config"
)

type snapshotScenario struct {
	Name             string `json:"name"`
	Years            int    `json:"years"`
	Year1Cumulative  string `json:"year1_cumulative"`
	Year2Cumulative  string `json:"year2_cumulative"`
	Events           int    `json:"events"`
	FirstPropertyTax string `json:"first_property_tax"`
}

type engineSnapshot struct {
	Scenarios []snapshotScenario `json:"scenarios"`
}

// TestEngineSnapshot runs the example scenario file and checks stable metrics
// against testdata/engine_snapshot.golden.json.
func TestEngineSnapshot(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile("../../example_config.yaml")
	require.NoError(t, err, "load config")

	res, err := calculation.NewSimulationEngine().RunScenarios(context.Background(), cfg)
	require.NoError(t, err, "run scenarios")

	var have engineSnapshot
	for _, r := range res.Results {
		sc := snapshotScenario{
			Name:            r.Name,
			Years:           len(r.Records),
			Year1Cumulative: yenString(r.Records[0].CumulativeSavings),
			Year2Cumulative: yenString(r.Records[1].CumulativeSavings),
			Events:          r.Summary.EventCount,
		}
		for _, rec := range r.Records {
			if rec.PropertyTax.IsPositive() {
				sc.FirstPropertyTax = yenString(rec.PropertyTax)
				break
			}
		}
		have.Scenarios = append(have.Scenarios, sc)
	}

	goldenPath := filepath.Join("testdata", "engine_snapshot.golden.json")
	if os.Getenv("UPDATE_GOLDEN") == "1" {
		data, err := json.MarshalIndent(have, "", "  ")
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(goldenPath, append(data, '\n'), 0644), "write golden")
	}

	golden, err := os.ReadFile(goldenPath)
	require.NoError(t, err, "read golden")
	var want engineSnapshot
	require.NoError(t, json.Unmarshal(golden, &want))
	assert.Equal(t, want, have, "engine snapshot drift; run UPDATE_GOLDEN=1 to accept")
}
