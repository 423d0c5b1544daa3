package output

import (
	json "github.com/goccy/go-json"

	"github.com/k021c1498/lifeplan-suisoku/internal/domain"
)

const defaultJSONIndent = "  "

// JSONFormatter writes the comparison as indented JSON. With RecordsOnly it
// writes just each scenario's yearly records, which is what chart tools and
// spreadsheets usually want.
type JSONFormatter struct {
	Indent      string // defaults to two spaces
	RecordsOnly bool
}

// scenarioRecords is one entry of the records-only document.
type scenarioRecords struct {
	Name         string              `json:"name"`
	FinalSavings string              `json:"final_savings"`
	Records      []domain.YearRecord `json:"records"`
}

func (j JSONFormatter) Name() string {
	if j.RecordsOnly {
		return "json-records"
	}
	return "json"
}

func (j JSONFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	indent := j.Indent
	if indent == "" {
		indent = defaultJSONIndent
	}
	if !j.RecordsOnly {
		return json.MarshalIndent(results, "", indent)
	}

	out := make([]scenarioRecords, 0, len(results.Results))
	for _, r := range results.Results {
		out = append(out, scenarioRecords{
			Name:         r.Name,
			FinalSavings: yenString(r.Summary.FinalSavings),
			Records:      r.Records,
		})
	}
	return json.MarshalIndent(out, "", indent)
}
