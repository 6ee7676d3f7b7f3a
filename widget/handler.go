package widget

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"

	"github.com/spektr-org/barh/render"
)

// Routes served by Handler.
const (
	IndexPath  = "/"
	TogglePath = "/toggle"
	DataPath   = "/data.json"
)

// httpAction is the toggle link click. Cancelling its default turns the
// navigation into a redirect back to the chart.
type httpAction struct {
	prevented bool
}

func (a *httpAction) PreventDefault() {
	a.prevented = true
}

// Handler serves the chart page, the toggle link and the shaped chart JSON.
func (b *Barh) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(IndexPath, b.handleIndex)
	mux.HandleFunc(TogglePath, b.handleToggle)
	mux.HandleFunc(DataPath, b.handleData)
	return mux
}

func (b *Barh) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != IndexPath {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var buf bytes.Buffer
	if err := render.Page(&buf, b.Chart(), TogglePath); err != nil {
		log.Printf("❌ Render failed: %v", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (b *Barh) handleToggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	action := &httpAction{}
	b.Toggle(action)
	if action.prevented {
		http.Redirect(w, r, IndexPath, http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (b *Barh) handleData(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(b.Chart()); err != nil {
		log.Printf("❌ Encode failed: %v", err)
	}
}
