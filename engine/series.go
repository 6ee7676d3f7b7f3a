package engine

// SeriesKeys returns the distinct field names of rows in first-seen order
// (row by row, then field order within a row). The literal "name" key is
// never a series. Run it over shaped rows so series that only live in the
// folded tail stay out of the legend.
func SeriesKeys(rows Dataset) []string {
	seen := make(map[string]bool)
	keys := make([]string, 0)
	for _, r := range rows {
		for _, f := range r.Fields {
			if f.Key == NameKey || seen[f.Key] {
				continue
			}
			seen[f.Key] = true
			keys = append(keys, f.Key)
		}
	}
	return keys
}
