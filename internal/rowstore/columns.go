package rowstore

import "strings"

// ColumnIndex returns the zero-based index of the first header cell whose
// normalized name equals the normalized target, or -1 when no column matches.
// Sheet columns are reordered and retitled by humans, so every field access
// goes through this lookup instead of a fixed offset.
func ColumnIndex(header []string, name string) int {
	want := NormalizeColumn(name)
	for i, h := range header {
		if NormalizeColumn(h) == want {
			return i
		}
	}
	return -1
}

// NormalizeColumn lower-cases a column name and strips all whitespace plus
// the invisible characters (BOM, zero-width space) that pasted sheet headers
// tend to pick up. Matching is otherwise exact; there is no fuzzy matching.
func NormalizeColumn(name string) string {
	name = strings.NewReplacer("\u200b", "", "\ufeff", "").Replace(name)
	return strings.ToLower(strings.Join(strings.Fields(name), ""))
}

// Cell returns row[idx] or "" when the row is too short or the index is -1.
// Legacy rows are routinely shorter than the header.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
