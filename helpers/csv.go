package helpers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/spektr-org/barh/engine"
)

// ============================================================================
// CSV HELPER — Parses CSV data into an engine.Dataset
// ============================================================================
// Consumer reads the CSV from wherever it lives (file, S3, Sheets).
// The "name" column (or the first column when none is called that) labels
// each row; every other column is a series. Blank or non-numeric cells are
// left out of the row, so the renderer treats them as absent.
// ============================================================================

// ParseCSV parses CSV bytes into a Dataset, keeping row order.
func ParseCSV(data []byte) (engine.Dataset, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoRows
	}
	if err != nil {
		return nil, newParseError("csv", 1, err)
	}

	var records [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				log.Printf("⚠️ CSV: skipping malformed line %d: %v", perr.Line, perr.Err)
				continue
			}
			return nil, newParseError("csv", 0, err)
		}
		records = append(records, row)
	}

	return DatasetFromTable(headers, records), nil
}

// DatasetFromTable converts a header row plus records into a Dataset.
// Shared by the CSV and XLSX loaders.
func DatasetFromTable(headers []string, records [][]string) engine.Dataset {
	keys := make([]string, len(headers))
	nameCol := 0
	for i, h := range headers {
		keys[i] = toSnakeCase(strings.TrimSpace(h))
	}
	for i, k := range keys {
		if k == engine.NameKey {
			nameCol = i
			break
		}
	}

	dataset := make(engine.Dataset, 0, len(records))
	for _, rec := range records {
		if isBlank(rec) {
			continue
		}
		row := engine.Row{Fields: make([]engine.Field, 0, len(keys))}
		for i, val := range rec {
			if i >= len(keys) {
				break
			}
			if i == nameCol {
				row.Name = strings.TrimSpace(val)
				continue
			}
			if keys[i] == "" || keys[i] == engine.NameKey {
				continue
			}
			if f, ok := parseNumber(val); ok {
				row.Fields = append(row.Fields, engine.Field{Key: keys[i], Value: f})
			}
		}
		dataset = append(dataset, row)
	}
	return dataset
}

// parseNumber reads "1,234.5", "$12", "12.5%" (→ 0.125). Blank and
// non-finite cells ("NaN", "Inf") are absent.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	percent := strings.HasSuffix(s, "%")
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(s, "€")
	s = strings.TrimPrefix(s, "£")
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if percent {
		f /= 100
	}
	return f, true
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// toSnakeCase converts "Column Name" → "column_name".
func toSnakeCase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
