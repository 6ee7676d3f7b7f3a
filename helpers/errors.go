package helpers

import (
	"errors"
	"fmt"
)

// ErrNoRows indicates the source has no header row to read series keys from.
var ErrNoRows = errors.New("no rows")

// ErrUnsupportedFormat indicates a file extension no loader handles.
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// ErrSheetNotFound indicates the requested worksheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// ParseError represents a failure while decoding a dataset source.
type ParseError struct {
	Source string // "csv", "json", "xlsx"
	Line   int    // 0 when unknown
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s parse error at line %d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("%s parse error: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(source string, line int, err error) *ParseError {
	return &ParseError{Source: source, Line: line, Err: err}
}
