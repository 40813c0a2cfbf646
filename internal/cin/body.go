package cin

import (
	"strings"

	"cin-generator/internal/cinmap"
)

// Body renders the chardef lines of m, one "key candidate" per line.
func Body(m cinmap.Map) string {
	var b strings.Builder

	for _, key := range m.Keys() {
		for _, c := range m[key].Sorted() {
			b.WriteString(key)
			b.WriteByte(' ')
			b.WriteString(c)
			b.WriteByte('\n')
		}
	}

	return b.String()
}
