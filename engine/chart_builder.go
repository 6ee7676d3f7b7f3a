package engine

// ============================================================================
// CHART BUILDER — Produces ChartData from a dataset, options and view state
// ============================================================================
// shape rows → resolve series keys → color series → size and scale the chart.
// ============================================================================

// Pixel allowances behind the chart height.
const (
	RowHeight    = 31
	HeightRows   = 2
	HeightMargin = 20
)

// StackID groups every series into one stack when the chart is stacked.
const StackID = "a"

// Build shapes dataset for display. It is pure: the same inputs always give
// the same ChartData, and neither dataset nor the palette is modified.
func Build(dataset Dataset, cfg Config, state ViewState) *ChartData {
	cfg = cfg.Normalized()
	mode := DetectMode(dataset)
	rows := ShapeMode(dataset, cfg.Cutoff, state.Collapsed, mode)
	if rows == nil {
		rows = Dataset{}
	}
	keys := SeriesKeys(rows)
	visible := VisibleRowCount(dataset, cfg.Cutoff, state.Collapsed)

	chart := &ChartData{
		Title:      cfg.Title,
		Rows:       rows,
		SeriesKeys: keys,
		Mode:       mode,
		Height:     Height(visible),
		Hidden:     len(dataset) - visible,
		Scale:      ScaleFor(cfg),
		Stacked:    cfg.Stacked,
		Percentual: cfg.Percentual,
		ShowLegend: !containsKey(keys, ValueKey),
		formatter:  FormatterFor(cfg.Percentual),
	}

	chart.Series = buildSeries(rows, keys, cfg.Stacked, mode)

	if cfg.Cutoff > 0 {
		chart.Toggle = &ToggleLink{
			Label:     ToggleLabel(state),
			Collapsed: state.Collapsed,
		}
	}
	return chart
}

// Height is the pixel height of a chart showing rowCount rows.
func Height(rowCount int) int {
	return RowHeight*(rowCount+HeightRows) + HeightMargin
}

// ScaleFor returns the value axis configuration.
func ScaleFor(cfg Config) ScaleConfig {
	if !cfg.LogScale {
		return ScaleConfig{Kind: ScaleLinear}
	}
	min := cfg.MinLogScale
	if min <= 0 {
		min = DefaultMinLogScale
	}
	return ScaleConfig{
		Kind:          ScaleLog,
		DomainMin:     min,
		DomainMax:     "auto",
		AllowOverflow: true,
	}
}

// ============================================================================
// SERIES BUILDERS
// ============================================================================

// buildSeries lays out one Series per key. In single-series mode the Otros
// cell takes the override color.
func buildSeries(rows Dataset, keys []string, stacked bool, mode Mode) []Series {
	series := make([]Series, 0, len(keys))
	for i, key := range keys {
		s := Series{
			Key:   key,
			Color: ColorFor(i),
			Cells: make([]Cell, 0, len(rows)),
		}
		if stacked {
			s.StackID = StackID
		}
		for _, r := range rows {
			v, ok := r.Get(key)
			s.Cells = append(s.Cells, Cell{
				Label:   r.Name,
				Value:   v,
				Present: ok,
				Color:   CellColor(r, i, mode),
			})
		}
		series = append(series, s)
	}
	return series
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
