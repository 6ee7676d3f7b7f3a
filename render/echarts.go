package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/spektr-org/barh/engine"
)

// emptyValue is how ECharts spells "no bar here".
const emptyValue = "-"

// NewBar configures a horizontal ECharts bar chart from shaped data.
// Rows are drawn top to bottom in dataset order.
func NewBar(chart *engine.ChartData) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: pageTitle(chart),
			Width:     fmt.Sprintf("%dpx", ChartWidth),
			Height:    fmt.Sprintf("%dpx", chart.Height),
		}),
		charts.WithTitleOpts(opts.Title{Title: chart.Title}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "axis",
			Formatter: opts.FuncOpts(tooltipFormatter(chart.Percentual)),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(chart.ShowLegend)}),
		charts.WithXAxisOpts(valueAxis(chart.Scale, chart.Percentual)),
		charts.WithYAxisOpts(opts.YAxis{Type: "category"}),
		charts.WithGridOpts(opts.Grid{
			Left:   strconv.Itoa(CategoryWidth),
			Right:  strconv.Itoa(MarginRight),
			Top:    strconv.Itoa(MarginTop + gridTop(chart)),
			Bottom: strconv.Itoa(MarginBottom + 20),
		}),
	)

	// ECharts stacks categories from the bottom up; feed them reversed so
	// the first dataset row ends up on top.
	labels := chart.Labels()
	bar.SetXAxis(reversed(labels))

	for _, s := range chart.Series {
		seriesOpts := []charts.SeriesOpts{
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
		}
		if s.StackID != "" {
			seriesOpts = append(seriesOpts, charts.WithBarChartOpts(opts.BarChart{Stack: s.StackID}))
		}
		bar.AddSeries(LabelForSeries(s.Key), barData(s.Cells), seriesOpts...)
	}

	return bar.XYReversal()
}

// ECharts writes a standalone HTML page with the chart.
func ECharts(w io.Writer, chart *engine.ChartData) error {
	return NewBar(chart).Render(w)
}

func barData(cells []engine.Cell) []opts.BarData {
	data := make([]opts.BarData, len(cells))
	for i, c := range cells {
		j := len(cells) - 1 - i
		if !c.Present {
			data[j] = opts.BarData{Name: c.Label, Value: emptyValue}
			continue
		}
		data[j] = opts.BarData{
			Name:      c.Label,
			Value:     c.Value,
			ItemStyle: &opts.ItemStyle{Color: c.Color},
		}
	}
	return data
}

func valueAxis(scale engine.ScaleConfig, percentual bool) opts.XAxis {
	axis := opts.XAxis{
		Type: "value",
		AxisLabel: &opts.AxisLabel{
			Formatter: opts.FuncOpts(valueFormatter(percentual)),
		},
	}
	if scale.Kind == engine.ScaleLog {
		axis.Type = "log"
		axis.Min = scale.DomainMin
	}
	return axis
}

// valueFormatter mirrors engine.ToPercent / engine.ToNumber at default
// precision for the browser side.
func valueFormatter(percentual bool) string {
	if percentual {
		return fmt.Sprintf(
			"function (v) { return (Math.round(v * 10000) / 100).toFixed(%d) + '%%'; }",
			engine.DefaultPercentPrecision)
	}
	return fmt.Sprintf(
		"function (v) { var s = Math.pow(10, %d); return String(Math.round(v * 100 * s) / s); }",
		engine.DefaultNumberPrecision)
}

func tooltipFormatter(percentual bool) string {
	return fmt.Sprintf(`function (params) {
	var fmt = %s;
	var lines = [params[0].name];
	params.forEach(function (p) {
		if (p.value === '%s') { return; }
		lines.push(p.marker + p.seriesName + ': ' + fmt(p.value));
	});
	return lines.join('<br/>');
}`, valueFormatter(percentual), emptyValue)
}

func gridTop(chart *engine.ChartData) int {
	top := 0
	if chart.Title != "" {
		top += 30
	}
	if chart.ShowLegend {
		top += 25
	}
	return top
}

func pageTitle(chart *engine.ChartData) string {
	if chart.Title != "" {
		return chart.Title
	}
	return "barh"
}

func reversed(in []string) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}
