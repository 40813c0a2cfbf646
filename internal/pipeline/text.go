package pipeline

import (
	"strings"
)

// beforeMarker returns s up to the earliest marker, without the dangling
// opening parenthesis and spaces that introduce it. s is returned whole when
// no marker occurs.
//
// The trim is intentional: markers are written as "(白)" annotations, and a
// plain cut would turn "tsit8(白)" into the untypeable key "tsit8(".
func beforeMarker(s string, markers []string) string {
	cut := len(s)

	for _, m := range markers {
		if m == "" {
			continue
		}

		if i := strings.Index(s, m); i >= 0 && i < cut {
			cut = i
		}
	}

	return strings.TrimRight(s[:cut], " (（")
}

// beforeParen drops a trailing parenthetical annotation.
func beforeParen(s string) string {
	if i := strings.IndexAny(s, "(（"); i >= 0 {
		s = s[:i]
	}

	return strings.TrimSpace(s)
}

// stripSeparators removes hyphens and spaces.
func stripSeparators(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if r != '-' && r != ' ' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// stripTones deletes every tone digit from key.
func stripTones(key, toneDigits string) string {
	if toneDigits == "" {
		return key
	}

	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(toneDigits, r) {
			return -1
		}

		return r
	}, key)
}

// splitTrim splits s on sep and trims each piece.
func splitTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}

	return parts
}
