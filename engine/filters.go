package engine

import (
	"strings"
)

// ============================================================================
// FILTERS — Row exclusion by name
// ============================================================================
// Runs before shaping, so excluded rows never reach the Otros bucket.
// ============================================================================

// ExcludeRows returns the rows whose name is not in names (case-insensitive).
// No names = no restriction (returns dataset as is).
func ExcludeRows(dataset Dataset, names []string) Dataset {
	set := toLowerSet(names)
	if len(set) == 0 {
		return dataset
	}

	out := make(Dataset, 0, len(dataset))
	for _, r := range dataset {
		if set[strings.ToLower(strings.TrimSpace(r.Name))] {
			continue
		}
		out = append(out, r)
	}
	return out
}

// toLowerSet converts a string slice to a lowercase lookup set.
func toLowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		set[strings.ToLower(item)] = true
	}
	return set
}
