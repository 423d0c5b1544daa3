package output

import (
	"fmt"
	"math"
	"strings"

	"github.com/k021c1498/lifeplan-suisoku/internal/domain"
)

const (
	defaultChartHeight = 12
	minChartHeight     = 4
	chartColWidth      = 2
	pointRune          = '•'
	eventRune          = '◆'
	zeroRune           = '┈'
)

// chartScale maps cumulative savings onto chart rows. Row 0 is the bottom.
type chartScale struct {
	lo, hi float64
	height int
}

func newChartScale(values []float64, height int) chartScale {
	lo, hi := 0.0, 0.0
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}
	return chartScale{lo: lo, hi: hi, height: height}
}

func (s chartScale) row(v float64) int {
	r := int(math.Round((v - s.lo) / (s.hi - s.lo) * float64(s.height-1)))
	return max(0, min(s.height-1, r))
}

func (s chartScale) value(row int) float64 {
	return s.lo + (s.hi-s.lo)*float64(row)/float64(s.height-1)
}

// RenderSavingsChart draws cumulative savings against the year index as a
// terminal line chart. Years with a life event are marked and listed in a
// legend below the chart. The y axis is labelled in units of ¥10,000,000.
func RenderSavingsChart(r *domain.ScenarioResult, height int) string {
	if len(r.Records) == 0 {
		return ""
	}
	if height < minChartHeight {
		height = minChartHeight
	}

	values := make([]float64, len(r.Records))
	for i, rec := range r.Records {
		values[i] = rec.CumulativeSavings.InexactFloat64()
	}
	scale := newChartScale(values, height)

	// grid[row][col], row 0 at the bottom
	width := len(values) * chartColWidth
	grid := make([][]rune, height)
	for row := range grid {
		grid[row] = []rune(strings.Repeat(" ", width))
	}
	if scale.lo < 0 {
		zero := scale.row(0)
		for col := range grid[zero] {
			grid[zero][col] = zeroRune
		}
	}
	for i, v := range values {
		ch := pointRune
		if r.Records[i].HasEvent() {
			ch = eventRune
		}
		grid[scale.row(v)][i*chartColWidth] = ch
	}

	labelRows := map[int]bool{0: true, height - 1: true, (height - 1) / 2: true}
	if scale.lo < 0 {
		labelRows[scale.row(0)] = true
	}
	labelW := 6

	var b strings.Builder
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%*s  cumulative savings (unit: ¥10M)", labelW, "")))
	b.WriteString("\n")
	for row := height - 1; row >= 0; row-- {
		label := ""
		if labelRows[row] {
			label = fmt.Sprintf("%.1f", scale.value(row)/1e7)
		}
		b.WriteString(dimStyle.Render(fmt.Sprintf("%*s ┤", labelW, label)))
		b.WriteString(styleChartRow(grid[row]))
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render(fmt.Sprintf("%*s └%s", labelW, "", strings.Repeat("─", width))))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%*s  %s", labelW, "", xAxisLabels(len(values)))))
	b.WriteString("\n")

	if ann := r.Annotations(); len(ann) > 0 {
		b.WriteString(fmt.Sprintf("%*s  ", labelW, ""))
		b.WriteString(eventStyle.Render(string(eventRune)))
		b.WriteString(mutedStyle.Render(" life events:"))
		b.WriteString("\n")
		for _, rec := range ann {
			fmt.Fprintf(&b, "%*s    year %2d (age %d) %-16s %s\n", labelW, "",
				rec.YearIndex, rec.Age, rec.EventLabel, FormatTenMillions(rec.CumulativeSavings))
		}
	}
	return b.String()
}

// styleChartRow colours markers and leaves spacing unstyled.
func styleChartRow(cells []rune) string {
	var b strings.Builder
	for _, c := range cells {
		switch c {
		case eventRune:
			b.WriteString(eventStyle.Render(string(c)))
		case pointRune:
			b.WriteString(lineStyle.Render(string(c)))
		case zeroRune:
			b.WriteString(dimStyle.Render(string(c)))
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// xAxisLabels places the year index under every fifth point, starting at 1.
func xAxisLabels(n int) string {
	line := []rune(strings.Repeat(" ", n*chartColWidth))
	for i := 0; i < n; i += 5 {
		label := []rune(intToString(i + 1))
		pos := i * chartColWidth
		for j, c := range label {
			if pos+j < len(line) {
				line[pos+j] = c
			}
		}
	}
	return strings.TrimRight(string(line), " ")
}
