package engine

// ============================================================================
// AGGREGATORS — Tail collapsing into the "Otros" bucket
// ============================================================================
// Pipeline: detect mode → split at cutoff → (single series) fold hidden tail.
// The input dataset is never mutated; every returned slice is freshly allocated.
// ============================================================================

// DetectMode reports whether the dataset is single-series. Only the first
// row decides: a dataset whose later rows disagree with the first keeps the
// first row's mode. An empty dataset is multi-series.
func DetectMode(dataset Dataset) Mode {
	if len(dataset) == 0 {
		return MultiSeries
	}
	if dataset[0].Has(ValueKey) {
		return SingleSeries
	}
	return MultiSeries
}

// Shape returns the rows to display for the given cutoff and toggle state.
//
//   - collapsed == false or cutoff <= 0 → dataset unchanged
//   - single series → first cutoff rows + {"Otros", Σ hidden values}
//   - multi series  → first cutoff rows, hidden rows dropped
func Shape(dataset Dataset, cutoff int, collapsed bool) Dataset {
	return ShapeMode(dataset, cutoff, collapsed, DetectMode(dataset))
}

// ShapeMode is Shape with an already detected mode.
func ShapeMode(dataset Dataset, cutoff int, collapsed bool, mode Mode) Dataset {
	if !collapsed || cutoff <= 0 {
		return dataset
	}
	if len(dataset) == 0 {
		return Dataset{}
	}

	visible, hidden := splitAt(dataset, cutoff)
	if mode != SingleSeries || len(hidden) == 0 {
		return visible
	}

	return append(visible, Row{
		Name:   OthersLabel,
		Fields: []Field{{Key: ValueKey, Value: SumValues(hidden)}},
	})
}

// splitAt splits by position. visible has spare capacity for the Otros row
// so appending never touches the caller's backing array.
func splitAt(dataset Dataset, cutoff int) (Dataset, Dataset) {
	if cutoff > len(dataset) {
		cutoff = len(dataset)
	}
	visible := make(Dataset, cutoff, cutoff+1)
	copy(visible, dataset[:cutoff])
	return visible, dataset[cutoff:]
}

// SumValues adds the "value" field across rows. Rows without it add nothing.
func SumValues(rows Dataset) float64 {
	var total float64
	for _, r := range rows {
		if v, ok := r.Get(ValueKey); ok {
			total += v
		}
	}
	return total
}

// VisibleRowCount is the number of dataset rows on screen, not counting the
// synthetic Otros row.
func VisibleRowCount(dataset Dataset, cutoff int, collapsed bool) int {
	if collapsed && cutoff > 0 && cutoff < len(dataset) {
		return cutoff
	}
	return len(dataset)
}
