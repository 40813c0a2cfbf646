package dict

import "strings"

// Row is one dictionary entry.
type Row struct {
	// Line is the 1-based line of the record in its source.
	Line int
	// Input is the romanized form the user types, e.g. "ti1-tsa2".
	Input string
	// Unicode is the phonetic rendering aligned to Input.
	Unicode string
	// Han is the Han-character rendering.
	Han *string
	// InputAlt and UnicodeAlt are a secondary pronunciation pair.
	InputAlt   *string
	UnicodeAlt *string
}

// Filter keeps the rows whose Input is a non-empty string.
func Filter(rows []Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if strings.TrimSpace(r.Input) == "" {
			continue
		}

		out = append(out, r)
	}

	return out
}

// Text returns a pointer to s, or nil when s is empty.
func Text(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
