package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type browserShare struct {
	Label  string
	Share  float64
	Mobile float64
	HasMob bool
}

func TestDomainAdapterSingleSeries(t *testing.T) {
	adapter := NewDomainAdapter[browserShare]().
		Name(func(b browserShare) string { return b.Label }).
		Series("value", func(b browserShare) float64 { return b.Share })

	data := adapter.Bind([]browserShare{
		{Label: "Chrome", Share: 0.6},
		{Label: "Firefox", Share: 0.3},
		{Label: "Safari", Share: 0.1},
	})

	require.Len(t, data, 3)
	assert.Equal(t, SingleSeries, DetectMode(data))
	assert.Equal(t, "Firefox", data[1].Name)

	shaped := Shape(data, 1, true)
	require.Len(t, shaped, 2)
	v, _ := shaped[1].Get(ValueKey)
	assert.InDelta(t, 0.4, v, 1e-12)
}

func TestDomainAdapterOptionalSeries(t *testing.T) {
	adapter := NewDomainAdapter[browserShare]().
		Name(func(b browserShare) string { return b.Label }).
		Series("desktop", func(b browserShare) float64 { return b.Share }).
		OptionalSeries("mobile", func(b browserShare) (float64, bool) { return b.Mobile, b.HasMob }).
		Series("name", func(b browserShare) float64 { return 1 })

	data := adapter.Bind([]browserShare{
		{Label: "Chrome", Share: 0.6, Mobile: 0.7, HasMob: true},
		{Label: "Edge", Share: 0.1},
	})

	assert.Equal(t, []string{"desktop", "mobile"}, data[0].Keys())
	assert.Equal(t, []string{"desktop"}, data[1].Keys())
	assert.Equal(t, MultiSeries, DetectMode(data))
}

func TestDomainAdapterRebindReplacesAccessor(t *testing.T) {
	adapter := NewDomainAdapter[browserShare]().
		Series("value", func(b browserShare) float64 { return 1 }).
		Series("value", func(b browserShare) float64 { return b.Share })

	data := adapter.Bind([]browserShare{{Share: 0.25}})
	assert.Equal(t, []Field{{Key: "value", Value: 0.25}}, data[0].Fields)
	assert.Empty(t, data[0].Name)
}
