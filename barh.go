// Package barh shapes datasets for horizontal bar charts.
//
// Usage:
//
//	import "github.com/spektr-org/barh/engine"
//
//	chart := engine.Execute(dataset, engine.InitialViewState(),
//	    engine.WithCutoff(5),
//	    engine.WithPercentual(true),
//	)
//
// The engine folds rows past the cutoff into an "Otros" row while the
// chart is collapsed, resolves series keys, assigns palette colors and
// sizes the chart. Drawing is handled by the render package; the widget
// package owns the collapsed/expanded state and serves the toggle link.
// The engine itself performs no I/O.
package barh
