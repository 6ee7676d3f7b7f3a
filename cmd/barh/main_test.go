package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spektr-org/barh/config"
)

const browsersCSV = `name,value
Chrome,0.6
Firefox,0.2
Safari,0.1
Edge,0.07
Opera,0.03
`

func writeData(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "browsers.csv")
	require.NoError(t, os.WriteFile(path, []byte(browsersCSV), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestShapeCollapsed(t *testing.T) {
	out, err := runCLI(t, "shape", "--data", writeData(t), "--cutoff", "3", "--percentual")
	require.NoError(t, err)

	var got struct {
		Rows []struct {
			Name  string  `json:"name"`
			Value float64 `json:"value"`
		} `json:"rows"`
		Height int    `json:"height"`
		Mode   string `json:"mode"`
		Toggle struct {
			Label string `json:"label"`
		} `json:"toggle"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	require.Len(t, got.Rows, 4)
	assert.Equal(t, "Otros", got.Rows[3].Name)
	assert.InDelta(t, 0.1, got.Rows[3].Value, 1e-9)
	assert.Equal(t, 31*(3+2)+20, got.Height)
	assert.Equal(t, "single", got.Mode)
	assert.Equal(t, "ver más", got.Toggle.Label)
}

func TestShapeExpanded(t *testing.T) {
	out, err := runCLI(t, "shape", "--data", writeData(t), "--cutoff", "3", "--expanded")
	require.NoError(t, err)

	var got struct {
		Rows []json.RawMessage `json:"rows"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Rows, 5)
}

func TestTableCSV(t *testing.T) {
	out, err := runCLI(t, "table", "--data", writeData(t), "--cutoff", "2", "--percentual")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"Chrome", "60%"}, records[1])
	assert.Equal(t, []string{"Otros", "20%"}, records[3])
}

func TestHTMLToFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "chart.html")
	_, err := runCLI(t, "html", "--data", writeData(t), "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Chrome")
}

func TestPreview(t *testing.T) {
	out, err := runCLI(t, "preview", "--data", writeData(t), "--cutoff", "1", "--title", "Navegadores")
	require.NoError(t, err)
	assert.Contains(t, out, "Navegadores")
	assert.Contains(t, out, "Otros")
}

func TestMissingData(t *testing.T) {
	t.Setenv("BARH_DATA", "")
	_, err := runCLI(t, "shape")
	assert.ErrorIs(t, err, config.ErrInvalidSetting)
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "barh.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("chart:\n  cutoff: 1\ndata: "+writeData(t)+"\n"), 0o644))

	out, err := runCLI(t, "shape", "--config", cfgPath)
	require.NoError(t, err)
	var got struct {
		Rows []json.RawMessage `json:"rows"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Rows, 2)

	out, err = runCLI(t, "shape", "--config", cfgPath, "--cutoff", "4")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Rows, 5)
}

func TestExcludeBeforeShaping(t *testing.T) {
	out, err := runCLI(t, "table", "--data", writeData(t), "--cutoff", "2", "--percentual", "--exclude", "firefox,OPERA")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"Safari", "10%"}, records[2])
	assert.Equal(t, []string{"Otros", "7%"}, records[3])
}
