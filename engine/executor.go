package engine

// ============================================================================
// EXECUTOR — Options-driven entry point
// ============================================================================
// Entry point: Execute(dataset, state, opts...)
//
// Pipeline:
//   1. Resolve options (defaults, normalization)
//   2. Detect single/multi series mode from the first row
//   3. Shape rows (cutoff + Otros bucket)
//   4. Resolve series keys over the shaped rows
//   5. Color, size and scale → ChartData
//
// Nothing here performs I/O; the presentation layer owns the ViewState and
// calls Execute again on every data change or toggle.
// ============================================================================

// Execute builds the ChartData for dataset under state.
//
// Options:
//   - WithCutoff(n) — rows kept while collapsed (0 disables collapsing)
//   - WithPercentual(on) — percent formatter instead of plain numbers
//   - WithLogScale(min) — log value axis starting at min
//   - WithStacked(on) — stack series into one bar per row
func Execute(dataset Dataset, state ViewState, opts ...Option) *ChartData {
	return Build(dataset, applyOptions(opts), state)
}
