package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"math"
	"strings"

	"github.com/k021c1498/lifeplan-suisoku/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with an SVG savings chart per scenario.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"pct":   FormatPercentage,
	"units": FormatTenMillions,
	"f1":    func(v float64) string { return fmt.Sprintf("%.1f", v) },
}).Parse(htmlTemplateSource))

// SVG chart geometry
const (
	svgWidth       = 760.0
	svgHeight      = 320.0
	svgMarginLeft  = 56.0
	svgMarginRight = 24.0
	svgMarginTop   = 28.0
	svgMarginBot   = 36.0
	svgYTicks      = 5
)

type svgPoint struct {
	X, Y      float64
	YearIndex int
	Age       int
	Label     string
	Savings   string
}

type svgTick struct {
	Pos   float64
	Label string
}

type svgChart struct {
	Width, Height float64
	Left, Right   float64
	Top, Bottom   float64
	Path          string
	Points        []svgPoint
	Annotations   []svgPoint
	YTicks        []svgTick
	XTicks        []svgTick
	ZeroY         float64
}

// buildSVGChart lays out cumulative savings against the year index. Every
// annotated point sits at its own (year index, cumulative savings) position.
func buildSVGChart(r *domain.ScenarioResult) svgChart {
	c := svgChart{
		Width:  svgWidth,
		Height: svgHeight,
		Left:   svgMarginLeft,
		Right:  svgWidth - svgMarginRight,
		Top:    svgMarginTop,
		Bottom: svgHeight - svgMarginBot,
	}
	n := len(r.Records)
	if n == 0 {
		return c
	}

	lo, hi := 0.0, 0.0
	for _, rec := range r.Records {
		v := rec.CumulativeSavings.InexactFloat64()
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}

	xOf := func(yearIndex int) float64 {
		if n == 1 {
			return (c.Left + c.Right) / 2
		}
		return c.Left + (c.Right-c.Left)*float64(yearIndex-1)/float64(n-1)
	}
	yOf := func(v float64) float64 {
		return c.Bottom - (c.Bottom-c.Top)*(v-lo)/(hi-lo)
	}

	var path strings.Builder
	for i, rec := range r.Records {
		p := svgPoint{
			X:         xOf(rec.YearIndex),
			Y:         yOf(rec.CumulativeSavings.InexactFloat64()),
			YearIndex: rec.YearIndex,
			Age:       rec.Age,
			Label:     rec.EventLabel,
			Savings:   FormatCurrency(rec.CumulativeSavings),
		}
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&path, "%s%.1f %.1f ", cmd, p.X, p.Y)
		c.Points = append(c.Points, p)
		if rec.HasEvent() {
			c.Annotations = append(c.Annotations, p)
		}
	}
	c.Path = strings.TrimSpace(path.String())
	c.ZeroY = yOf(0)

	for i := 0; i <= svgYTicks; i++ {
		v := lo + (hi-lo)*float64(i)/svgYTicks
		c.YTicks = append(c.YTicks, svgTick{Pos: yOf(v), Label: fmt.Sprintf("%.1f", v/1e7)})
	}
	for i := 1; i <= n; i += 5 {
		c.XTicks = append(c.XTicks, svgTick{Pos: xOf(i), Label: intToString(i)})
	}
	return c
}

type htmlScenario struct {
	*domain.ScenarioResult
	Chart svgChart
}

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer

	scenarios := make([]htmlScenario, 0, len(results.Results))
	for i := range results.Results {
		r := &results.Results[i]
		scenarios = append(scenarios, htmlScenario{ScenarioResult: r, Chart: buildSVGChart(r)})
	}

	data := struct {
		Scenarios      []htmlScenario
		Recommendation Recommendation
		Assumptions    []string
	}{scenarios, AnalyzeScenarios(results), assumptionsFor(results)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
