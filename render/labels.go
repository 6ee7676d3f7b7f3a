// Package render hands shaped chart data to drawing collaborators: an
// ECharts HTML page and a colored terminal preview.
package render

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Chart layout in pixels.
const (
	ChartWidth    = 620
	CategoryWidth = 200
	MarginTop     = 5
	MarginRight   = 50
	MarginBottom  = 5
)

// LabelForSeries turns a series key into a legend label:
// "unique_visitors" → "Unique Visitors".
func LabelForSeries(key string) string {
	key = strings.TrimSpace(strings.NewReplacer("_", " ", "-", " ").Replace(key))
	if key == "" {
		return ""
	}
	return cases.Title(language.Spanish).String(key)
}
