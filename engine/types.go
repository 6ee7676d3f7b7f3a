package engine

// ============================================================================
// BARH ENGINE TYPES — Rows, shaping state, render-ready chart data
// ============================================================================
// Dependency: engine has ZERO external dependencies.
// ============================================================================

// NameKey is the label field of a row. It is never a series key.
const NameKey = "name"

// ValueKey is the field carried by rows of a single-series dataset.
const ValueKey = "value"

// OthersLabel is the label of the synthetic row that folds the hidden tail.
const OthersLabel = "Otros"

// ============================================================================
// ROW — One labelled bar (or stack of bars)
// ============================================================================

// Field is a named numeric value of a row.
type Field struct {
	Key   string
	Value float64
}

// Row is a labelled set of series values. Fields keep their declared order;
// series key discovery relies on it.
//
// Single series: Row{Name: "Chrome", Fields: []Field{{"value", 0.61}}}
// Multi series:  Row{Name: "2024", Fields: []Field{{"desktop", 0.4}, {"mobile", 0.6}}}
type Row struct {
	Name   string
	Fields []Field
}

// NewRow builds a row from its label and fields.
func NewRow(name string, fields ...Field) Row {
	return Row{Name: name, Fields: fields}
}

// F is shorthand for a Field literal.
func F(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

// Get returns the value stored under key and whether the row carries it.
func (r Row) Get(key string) (float64, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return 0, false
}

// Has reports whether the row carries a field named key.
func (r Row) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// Keys returns the row's field names in declared order.
func (r Row) Keys() []string {
	keys := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		keys[i] = f.Key
	}
	return keys
}

// Dataset is an ordered sequence of rows. Order is display order.
type Dataset []Row

// ============================================================================
// MODE — Single vs multi series
// ============================================================================

// Mode tells whether a dataset is single-series (rows carry "value") or
// multi-series. It is computed once per shaping call and passed along.
type Mode int

const (
	MultiSeries Mode = iota
	SingleSeries
)

func (m Mode) String() string {
	if m == SingleSeries {
		return "single"
	}
	return "multi"
}

// MarshalText lets Mode appear as "single"/"multi" in JSON output.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// ============================================================================
// VIEW STATE — Owned by the presentation layer
// ============================================================================

// ViewState is the show-more toggle of one chart instance.
type ViewState struct {
	Collapsed bool `json:"collapsed"`
}

// InitialViewState is the state of a freshly created chart: collapsed.
func InitialViewState() ViewState {
	return ViewState{Collapsed: true}
}

// ============================================================================
// CHART DATA — Render-ready output consumed by the chart collaborator
// ============================================================================

// ScaleKind is the value axis scale.
type ScaleKind string

const (
	ScaleLinear ScaleKind = "linear"
	ScaleLog    ScaleKind = "log"
)

// ScaleConfig describes the value axis. DomainMax "auto" lets the renderer
// pick the upper bound.
type ScaleConfig struct {
	Kind          ScaleKind `json:"scale"`
	DomainMin     float64   `json:"domainMin,omitempty"`
	DomainMax     string    `json:"domainMax,omitempty"`
	AllowOverflow bool      `json:"allowOverflow,omitempty"`
}

// Cell is the value of one series for one row. Present is false when the
// row does not carry the series; renderers leave the bar out.
type Cell struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Present bool    `json:"present"`
	Color   string  `json:"color"`
}

// Series is one bar category across all visible rows.
type Series struct {
	Key     string `json:"key"`
	Color   string `json:"color"`
	StackID string `json:"stackId,omitempty"`
	Cells   []Cell `json:"cells"`
}

// ToggleLink is the show-more / show-less link state. Nil when cutoff is 0.
type ToggleLink struct {
	Label     string `json:"label"`
	Collapsed bool   `json:"collapsed"`
}

// ChartData is everything the chart collaborator needs to draw the bars.
type ChartData struct {
	Title      string      `json:"title,omitempty"`
	Rows       Dataset     `json:"rows"`
	SeriesKeys []string    `json:"seriesKeys"`
	Series     []Series    `json:"series"`
	Mode       Mode        `json:"mode"`
	Height     int         `json:"height"`
	Hidden     int         `json:"hidden"`
	Scale      ScaleConfig `json:"scaleConfig"`
	Stacked    bool        `json:"stacked"`
	Percentual bool        `json:"percentual"`
	ShowLegend bool        `json:"showLegend"`
	Toggle     *ToggleLink `json:"toggle,omitempty"`

	formatter Formatter
}

// Format renders v with the formatter selected for this chart.
func (c *ChartData) Format(v float64) string {
	if c.formatter == nil {
		return FormatterFor(c.Percentual)(v)
	}
	return c.formatter(v)
}

// ColorFor is the series color callback handed to renderers.
func (c *ChartData) ColorFor(index int) string {
	return ColorFor(index)
}

// Labels returns the row labels in display order.
func (c *ChartData) Labels() []string {
	labels := make([]string, len(c.Rows))
	for i, r := range c.Rows {
		labels[i] = r.Name
	}
	return labels
}

// ============================================================================
// TABLE TYPES
// ============================================================================

// TableData is a formatted, text-only view of a chart for CSV or terminal export.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number", "percent"
	Align string `json:"align"` // "left", "right"
}
