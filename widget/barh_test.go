package widget

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spektr-org/barh/engine"
)

type recordingAction struct{ prevented int }

func (a *recordingAction) PreventDefault() { a.prevented++ }

func browsers() engine.Dataset {
	return engine.Dataset{
		engine.NewRow("Chrome", engine.F("value", 0.6)),
		engine.NewRow("Firefox", engine.F("value", 0.2)),
		engine.NewRow("Safari", engine.F("value", 0.1)),
		engine.NewRow("Edge", engine.F("value", 0.1)),
	}
}

func TestNewStartsCollapsed(t *testing.T) {
	b := New(engine.WithCutoff(2))
	assert.True(t, b.State().Collapsed)
	assert.Equal(t, 2, b.Config().Cutoff)
	assert.Empty(t, b.Chart().Rows)
}

func TestToggleRoundTrip(t *testing.T) {
	b := New(engine.WithCutoff(2))
	b.SetData(browsers())

	require.Len(t, b.Chart().Rows, 3)
	assert.Equal(t, engine.OthersLabel, b.Chart().Rows[2].Name)

	action := &recordingAction{}
	state := b.Toggle(action)
	assert.False(t, state.Collapsed)
	assert.Equal(t, 1, action.prevented)
	assert.Len(t, b.Chart().Rows, 4)
	assert.Equal(t, "ver menos", b.Chart().Toggle.Label)

	b.Toggle(nil)
	assert.True(t, b.State().Collapsed)
	assert.Len(t, b.Chart().Rows, 3)
}

func TestSetDataKeepsState(t *testing.T) {
	b := New(engine.WithCutoff(1))
	b.Toggle(nil)
	b.SetData(browsers())
	assert.False(t, b.State().Collapsed)
	assert.Len(t, b.Chart().Rows, 4)
}

func TestConcurrentToggles(t *testing.T) {
	b := New(engine.WithCutoff(2))
	b.SetData(browsers())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Toggle(nil)
			_ = b.Chart()
		}()
	}
	wg.Wait()

	// An even number of flips lands back on the initial state.
	assert.True(t, b.State().Collapsed)
}

func TestRenderPage(t *testing.T) {
	b := New(engine.WithCutoff(2), engine.WithPercentual(true))
	b.SetData(browsers())

	var sb strings.Builder
	require.NoError(t, b.Render(&sb))
	assert.Contains(t, sb.String(), `href="/toggle"`)
	assert.Contains(t, sb.String(), "ver más")
}

// ============================================================================
// HTTP
// ============================================================================

func TestHandlerIndex(t *testing.T) {
	b := New(engine.WithCutoff(2))
	b.SetData(browsers())
	srv := httptest.NewServer(b.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + IndexPath)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}

func TestHandlerConcurrentPages(t *testing.T) {
	b := New(engine.WithCutoff(2))
	b.SetData(engine.Dataset{
		engine.NewRow("2022", engine.F("desktop", 10), engine.F("mobile_web", 20)),
		engine.NewRow("2023", engine.F("tablet", 5)),
		engine.NewRow("2024", engine.F("desktop", 7)),
	})
	h := b.Handler()

	var wg sync.WaitGroup
	codes := make(chan int, 16*20)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				rec := httptest.NewRecorder()
				h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, IndexPath, nil))
				codes <- rec.Code
			}
		}()
	}
	wg.Wait()
	close(codes)

	for code := range codes {
		assert.Equal(t, http.StatusOK, code)
	}
}

func TestHandlerToggleRedirects(t *testing.T) {
	b := New(engine.WithCutoff(2))
	b.SetData(browsers())
	h := b.Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, TogglePath, nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, IndexPath, rec.Header().Get("Location"))
	assert.False(t, b.State().Collapsed)
}

func TestHandlerData(t *testing.T) {
	b := New(engine.WithCutoff(2))
	b.SetData(browsers())
	h := b.Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, DataPath, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Height int `json:"height"`
		Mode   string
		Toggle struct {
			Label string `json:"label"`
		} `json:"toggle"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, engine.Height(2), got.Height)
	assert.Equal(t, "single", got.Mode)
	assert.Equal(t, "ver más", got.Toggle.Label)
}

func TestHandlerRejects(t *testing.T) {
	h := New().Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, TogglePath, nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
