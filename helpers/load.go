package helpers

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spektr-org/barh/engine"
)

// LoadFile reads a dataset from disk, picking the parser by extension
// (.csv, .json, .xlsx). sheet only applies to workbooks.
func LoadFile(path, sheet string) (engine.Dataset, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var (
		dataset engine.Dataset
		err     error
	)
	switch ext {
	case ".xlsx", ".xlsm":
		dataset, err = ParseXLSXFile(path, sheet)
	case ".csv", ".json":
		var data []byte
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if ext == ".csv" {
			dataset, err = ParseCSV(data)
		} else {
			dataset, err = ParseJSON(data)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	log.Printf("📊 Loaded %d rows from %s (%s series)", len(dataset), filepath.Base(path), engine.DetectMode(dataset))
	return dataset, nil
}
