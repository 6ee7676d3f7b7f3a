package engine

import "fmt"

// ============================================================================
// TEXT BUILDER — One-line summaries of a shaped chart
// ============================================================================

// Summary describes what a chart shows relative to the full dataset.
type Summary struct {
	Rows    int    `json:"rows"`
	Visible int    `json:"visible"`
	Hidden  int    `json:"hidden"`
	Leader  string `json:"leader,omitempty"`
	Value   string `json:"value,omitempty"`
	Total   string `json:"total,omitempty"`
	Text    string `json:"text"`
}

// BuildSummary summarizes chart, which must have been built from dataset.
// Leader and Total are only filled for single-series charts.
func BuildSummary(dataset Dataset, chart *ChartData) *Summary {
	s := &Summary{Rows: len(dataset)}
	if chart == nil || len(dataset) == 0 {
		s.Text = "No data"
		return s
	}

	s.Hidden = chart.Hidden
	s.Visible = s.Rows - s.Hidden

	if chart.Mode == MultiSeries {
		s.Text = fmt.Sprintf("%d rows, %d series", s.Rows, len(chart.SeriesKeys))
		if s.Hidden > 0 {
			s.Text += fmt.Sprintf(", %d hidden", s.Hidden)
		}
		return s
	}

	leader, best := "", 0.0
	for _, r := range dataset {
		v, ok := r.Get(ValueKey)
		if ok && (leader == "" || v > best) {
			leader, best = r.Name, v
		}
	}
	s.Leader = leader
	s.Value = chart.Format(best)
	s.Total = chart.Format(SumValues(dataset))

	s.Text = fmt.Sprintf("%d rows, total %s", s.Rows, s.Total)
	if leader != "" {
		s.Text += fmt.Sprintf(", %s leads with %s", leader, s.Value)
	}
	if s.Hidden > 0 {
		s.Text += fmt.Sprintf(", %d folded into %s", s.Hidden, OthersLabel)
	}
	return s
}
