package engine

// ============================================================================
// DOMAIN ADAPTER — Datasets from typed structs
// ============================================================================
//
// Usage:
//
//	adapter := engine.NewDomainAdapter[Browser]().
//	    Name(func(b Browser) string { return b.Label }).
//	    Series("value", func(b Browser) float64 { return b.Share })
//
//	dataset := adapter.Bind(browsers)
//	chart := engine.Execute(dataset, engine.InitialViewState(), engine.WithCutoff(5))
//
// Series accessors that return ok == false leave the field out of the row,
// which is how "no data for this series" reaches the renderer.
// ============================================================================

// DomainAdapter builds a Dataset from typed structs.
// Declare once, bind many times.
type DomainAdapter[T any] struct {
	name   func(T) string
	order  []string
	series map[string]func(T) (float64, bool)
}

// NewDomainAdapter creates a new adapter for type T.
func NewDomainAdapter[T any]() *DomainAdapter[T] {
	return &DomainAdapter[T]{
		series: make(map[string]func(T) (float64, bool)),
	}
}

// Name registers the row label accessor.
func (a *DomainAdapter[T]) Name(fn func(T) string) *DomainAdapter[T] {
	a.name = fn
	return a
}

// Series registers an accessor that always yields a value.
func (a *DomainAdapter[T]) Series(key string, fn func(T) float64) *DomainAdapter[T] {
	return a.OptionalSeries(key, func(t T) (float64, bool) { return fn(t), true })
}

// OptionalSeries registers an accessor that may report the value as absent.
// Registering "name" is ignored: the label has its own accessor.
func (a *DomainAdapter[T]) OptionalSeries(key string, fn func(T) (float64, bool)) *DomainAdapter[T] {
	if key == NameKey {
		return a
	}
	if _, exists := a.series[key]; !exists {
		a.order = append(a.order, key)
	}
	a.series[key] = fn
	return a
}

// Bind converts data into a Dataset, in slice order.
func (a *DomainAdapter[T]) Bind(data []T) Dataset {
	dataset := make(Dataset, 0, len(data))
	for _, item := range data {
		row := Row{Fields: make([]Field, 0, len(a.order))}
		if a.name != nil {
			row.Name = a.name(item)
		}
		for _, key := range a.order {
			if v, ok := a.series[key](item); ok {
				row.Fields = append(row.Fields, Field{Key: key, Value: v})
			}
		}
		dataset = append(dataset, row)
	}
	return dataset
}
