package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spektr-org/barh/engine"
)

// DefaultBarWidth is the number of cells the longest bar spans.
const DefaultBarWidth = 40

const (
	labelWidth = 18
	barGlyph   = "█"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Width(labelWidth)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	toggleStyle = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("#656abb"))
)

// Terminal draws the chart as colored horizontal bars. Stacked charts get
// one line per row; grouped charts one line per row and series.
func Terminal(w io.Writer, chart *engine.ChartData, barWidth int) error {
	if barWidth < 4 {
		barWidth = DefaultBarWidth
	}

	var b strings.Builder
	if chart.Title != "" {
		b.WriteString(titleStyle.Render(chart.Title))
		b.WriteString("\n\n")
	}

	if len(chart.Rows) == 0 {
		b.WriteString(dimStyle.Render("  No data available"))
		b.WriteString("\n")
	}

	max := maxExtent(chart)
	for i, row := range chart.Rows {
		if chart.Stacked {
			b.WriteString(stackedLine(chart, i, row.Name, max, barWidth))
			b.WriteString("\n")
			continue
		}
		label := row.Name
		for _, s := range chart.Series {
			c := s.Cells[i]
			if !c.Present {
				continue
			}
			b.WriteString(fmt.Sprintf("  %s %s  %s\n",
				labelStyle.Render(truncate(label, labelWidth)),
				paint(c.Color, barLength(c.Value, max, barWidth, chart.Scale)),
				dimStyle.Render(chart.Format(c.Value))))
			label = ""
		}
	}

	if chart.ShowLegend && len(chart.Series) > 0 {
		b.WriteString("\n  ")
		b.WriteString(legend(chart.Series))
		b.WriteString("\n")
	}
	if chart.Toggle != nil {
		b.WriteString("\n  ")
		b.WriteString(toggleStyle.Render(chart.Toggle.Label))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func stackedLine(chart *engine.ChartData, i int, name string, max float64, barWidth int) string {
	var bars strings.Builder
	total := 0.0
	drawn := 0
	for _, s := range chart.Series {
		c := s.Cells[i]
		if !c.Present {
			continue
		}
		total += c.Value
		// Segment lengths come from the running total so rounding never
		// lets the stack outgrow the longest bar.
		n := barLength(total, max, barWidth, chart.Scale) - drawn
		if n < 0 {
			n = 0
		}
		bars.WriteString(paint(c.Color, n))
		drawn += n
	}
	return fmt.Sprintf("  %s %s  %s",
		labelStyle.Render(truncate(name, labelWidth)),
		bars.String(),
		dimStyle.Render(chart.Format(total)))
}

// barLength maps v onto [0, width] cells against the largest extent. On a
// log axis values at or below the domain minimum draw nothing.
func barLength(v, max float64, width int, scale engine.ScaleConfig) int {
	if v <= 0 || max <= 0 {
		return 0
	}
	var ratio float64
	if scale.Kind == engine.ScaleLog {
		lo := scale.DomainMin
		if lo <= 0 {
			lo = engine.DefaultMinLogScale
		}
		if v <= lo || max <= lo {
			return 0
		}
		ratio = (math.Log10(v) - math.Log10(lo)) / (math.Log10(max) - math.Log10(lo))
	} else {
		ratio = v / max
	}
	n := int(math.Round(ratio * float64(width)))
	if n < 1 {
		n = 1
	}
	if n > width {
		n = width
	}
	return n
}

// maxExtent is the longest bar: the largest row total when stacked,
// otherwise the largest single value.
func maxExtent(chart *engine.ChartData) float64 {
	max := 0.0
	for i := range chart.Rows {
		total := 0.0
		for _, s := range chart.Series {
			c := s.Cells[i]
			if !c.Present {
				continue
			}
			if chart.Stacked {
				total += c.Value
			} else if c.Value > max {
				max = c.Value
			}
		}
		if total > max {
			max = total
		}
	}
	return max
}

func legend(series []engine.Series) string {
	parts := make([]string, len(series))
	for i, s := range series {
		parts[i] = paint(s.Color, 1) + " " + LabelForSeries(s.Key)
	}
	return strings.Join(parts, "   ")
}

func paint(color string, n int) string {
	if n <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(strings.Repeat(barGlyph, n))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
