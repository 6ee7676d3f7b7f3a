// Package widget holds a live horizontal bar chart: the dataset, the
// options and the collapsed/expanded view state, safe for concurrent use.
package widget

import (
	"io"
	"log"
	"sync"

	"github.com/spektr-org/barh/engine"
	"github.com/spektr-org/barh/render"
)

// Barh is one chart instance. The view state starts collapsed and only
// changes through Toggle.
type Barh struct {
	mu    sync.Mutex
	cfg   engine.Config
	state engine.ViewState
	data  engine.Dataset
}

// New creates a chart with no data.
func New(opts ...engine.Option) *Barh {
	return &Barh{
		cfg:   engine.NewConfig(opts...),
		state: engine.InitialViewState(),
	}
}

// SetData replaces the dataset. The view state is left alone.
func (b *Barh) SetData(data engine.Dataset) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = data
}

// Config returns the resolved chart options.
func (b *Barh) Config() engine.Config {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cfg
}

// State returns the current view state.
func (b *Barh) State() engine.ViewState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Toggle flips between collapsed and expanded and returns the new state.
func (b *Barh) Toggle(action engine.Action) engine.ViewState {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = b.state.Toggle(action)
	log.Printf("🔀 Toggled chart → %s", engine.ToggleLabel(b.state))
	return b.state
}

// Chart shapes the current dataset for the current view state.
func (b *Barh) Chart() *engine.ChartData {
	b.mu.Lock()
	defer b.mu.Unlock()
	return engine.Build(b.data, b.cfg, b.state)
}

// Render writes the chart as a standalone HTML page.
func (b *Barh) Render(w io.Writer) error {
	return render.Page(w, b.Chart(), TogglePath)
}
