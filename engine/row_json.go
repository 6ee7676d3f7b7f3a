package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ============================================================================
// ROW JSON — {"name": "a", "x": 1, "y": 2} with field order preserved
// ============================================================================

// MarshalJSON writes the name first, then the fields in declared order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	name, err := json.Marshal(r.Name)
	if err != nil {
		return nil, err
	}
	buf.WriteString(`"name":`)
	buf.Write(name)
	for _, f := range r.Fields {
		if f.Key == NameKey {
			continue
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Key, err)
		}
		buf.WriteByte(',')
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a row object keeping the order of its keys.
// null series values are treated as absent; numeric strings are accepted.
func (r *Row) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("row must be a JSON object, got %v", tok)
	}

	row := Row{Fields: []Field{}}
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected row key %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}

		if key == NameKey {
			name, err := decodeName(raw)
			if err != nil {
				return err
			}
			row.Name = name
			continue
		}

		v, present, err := decodeNumber(raw)
		if err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		if !present {
			continue
		}
		if i, seen := index[key]; seen {
			row.Fields[i].Value = v
			continue
		}
		index[key] = len(row.Fields)
		row.Fields = append(row.Fields, Field{Key: key, Value: v})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	*r = row
	return nil
}

func decodeName(raw json.RawMessage) (string, error) {
	if bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), nil
	}
	return "", fmt.Errorf("row name must be a string, got %s", raw)
}

func decodeNumber(raw json.RawMessage) (float64, bool, error) {
	if bytes.Equal(raw, []byte("null")) {
		return 0, false, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		v, err := n.Float64()
		return v, err == nil, err
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false, fmt.Errorf("not a number: %q", s)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false, nil
		}
		return v, true, nil
	}
	return 0, false, fmt.Errorf("not a number: %s", raw)
}
