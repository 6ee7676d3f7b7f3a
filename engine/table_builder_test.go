package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTableSingleSeries(t *testing.T) {
	chart := Build(singleSeries(), Config{Cutoff: 1, Percentual: true, Title: "Cuota"}, InitialViewState())
	table := BuildTable(chart)

	assert.Equal(t, "Cuota", table.Title)
	require.Len(t, table.Columns, 2)
	assert.Equal(t, "Name", table.Columns[0].Label)
	assert.Equal(t, "Value", table.Columns[1].Label)
	assert.Equal(t, "percent", table.Columns[1].Type)
	assert.Equal(t, [][]string{{"a", "50%"}, {"Otros", "50%"}}, table.Rows)
}

func TestBuildTableMultiSeriesAbsentCells(t *testing.T) {
	data := Dataset{
		NewRow("a", F("x", 0.1)),
		NewRow("b", F("y", 0.25)),
	}
	table := BuildTable(Build(data, DefaultConfig(), InitialViewState()))

	require.Len(t, table.Columns, 3)
	assert.Equal(t, "number", table.Columns[1].Type)
	assert.Equal(t, [][]string{{"a", "10", ""}, {"b", "", "25"}}, table.Rows)
}

func TestBuildTableNil(t *testing.T) {
	table := BuildTable(nil)
	assert.Empty(t, table.Columns)
	assert.Empty(t, table.Rows)
}

func TestLabelForKey(t *testing.T) {
	assert.Equal(t, "Desktop", LabelForKey("desktop"))
	assert.Equal(t, "", LabelForKey(""))
}
