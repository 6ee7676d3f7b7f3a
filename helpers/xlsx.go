package helpers

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/spektr-org/barh/engine"
)

// ParseXLSX reads one worksheet into a Dataset. The first non-empty row is
// the header; the rest follow the same rules as ParseCSV. An empty sheet
// name selects the active sheet.
func ParseXLSX(r io.Reader, sheet string) (engine.Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, newParseError("xlsx", 0, err)
	}
	defer f.Close()

	return datasetFromWorkbook(f, sheet)
}

// ParseXLSXFile is ParseXLSX over a file on disk.
func ParseXLSXFile(path, sheet string) (engine.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, newParseError("xlsx", 0, err)
	}
	defer f.Close()

	return datasetFromWorkbook(f, sheet)
}

func datasetFromWorkbook(f *excelize.File, sheet string) (engine.Dataset, error) {
	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, newParseError("xlsx", 0, err)
	}

	for len(rows) > 0 && isBlank(rows[0]) {
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	return DatasetFromTable(rows[0], rows[1:]), nil
}
