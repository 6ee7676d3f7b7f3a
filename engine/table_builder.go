package engine

import "strings"

// ============================================================================
// TABLE BUILDER — Produces TableData from ChartData
// ============================================================================
// One row per visible bar, one column per series. Absent cells stay empty.
// ============================================================================

// BuildTable renders chart values as formatted strings.
func BuildTable(chart *ChartData) *TableData {
	if chart == nil {
		return &TableData{Columns: []Column{}, Rows: [][]string{}}
	}

	valueType := "number"
	if chart.Percentual {
		valueType = "percent"
	}

	columns := make([]Column, 0, len(chart.Series)+1)
	columns = append(columns, Column{
		Key:   NameKey,
		Label: LabelForKey(NameKey),
		Type:  "text",
		Align: "left",
	})
	for _, s := range chart.Series {
		columns = append(columns, Column{
			Key:   s.Key,
			Label: LabelForKey(s.Key),
			Type:  valueType,
			Align: "right",
		})
	}

	rows := make([][]string, 0, len(chart.Rows))
	for i, r := range chart.Rows {
		row := make([]string, 0, len(columns))
		row = append(row, r.Name)
		for _, s := range chart.Series {
			cell := s.Cells[i]
			if !cell.Present {
				row = append(row, "")
				continue
			}
			row = append(row, chart.Format(cell.Value))
		}
		rows = append(rows, row)
	}

	return &TableData{
		Title:   chart.Title,
		Columns: columns,
		Rows:    rows,
	}
}

// LabelForKey returns a capitalized label for a field key.
func LabelForKey(key string) string {
	if len(key) == 0 {
		return ""
	}
	return strings.ToUpper(key[:1]) + key[1:]
}
