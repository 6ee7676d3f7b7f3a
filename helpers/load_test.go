package helpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileByExtension(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "browsers.CSV")
	require.NoError(t, os.WriteFile(csvPath, browsersCSV, 0o644))
	data, err := LoadFile(csvPath, "")
	require.NoError(t, err)
	assert.Len(t, data, 5)

	jsonPath := filepath.Join(dir, "browsers.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"name":"a","value":1}]`), 0o644))
	data, err = LoadFile(jsonPath, "")
	require.NoError(t, err)
	assert.Len(t, data, 1)
}

func TestLoadFileUnsupported(t *testing.T) {
	_, err := LoadFile("data.parquet", "")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.csv"), "")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
