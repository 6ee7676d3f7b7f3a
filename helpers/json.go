package helpers

import (
	"bytes"
	"encoding/json"

	"github.com/spektr-org/barh/engine"
)

// ParseJSON accepts either a bare array of rows or an object with a "data"
// array, the shape the chart component receives as props. A missing or
// null "data" is an empty dataset.
func ParseJSON(data []byte) (engine.Dataset, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return engine.Dataset{}, nil
	}

	if trimmed[0] == '[' {
		var rows engine.Dataset
		if err := json.Unmarshal(trimmed, &rows); err != nil {
			return nil, newParseError("json", 0, err)
		}
		return rows, nil
	}

	var doc struct {
		Data engine.Dataset `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, newParseError("json", 0, err)
	}
	if doc.Data == nil {
		return engine.Dataset{}, nil
	}
	return doc.Data, nil
}
