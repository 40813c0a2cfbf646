package pipeline

import (
	"regexp"
	"strings"
)

var compoundPattern = regexp.MustCompile(`^[A-Za-z0-9]+(-[A-Za-z0-9]+)+$`)

// IsSingleWord reports whether input is one plain word: no parenthesis,
// slash, hyphen or space, and none of the foreign-script markers.
func IsSingleWord(input string, foreignMarkers []string) bool {
	if strings.ContainsAny(input, "()/- ") {
		return false
	}

	return !containsAny(input, foreignMarkers)
}

// IsHyphenatedCompound reports whether input is two or more alphanumeric
// syllables joined by single hyphens, e.g. "ti1-tsa2".
func IsHyphenatedCompound(input string) bool {
	return !strings.Contains(input, "/") && compoundPattern.MatchString(input)
}

// HasAltMarker reports whether input carries one of the alternative-reading
// markers. Rows with a double hyphen or a slash are left to other passes.
func HasAltMarker(input string, markers []string) bool {
	if strings.Contains(input, "--") || strings.Contains(input, "/") {
		return false
	}

	return containsAny(input, markers)
}

// HasSlashAlternatives reports whether input lists readings separated by slashes.
func HasSlashAlternatives(input string) bool {
	return strings.Contains(input, "/")
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}

	return false
}
