package cinmap

// Merge unions the maps built from independent dictionary sources.
//
// The candidate set of every key in the result is the union of that key's
// sets across all inputs; a map lacking the key contributes nothing. The
// inputs are left untouched and the result shares no sets with them, so
// merging the same inputs again yields an equal map.
func Merge(maps ...Map) Map {
	size := 0
	for _, m := range maps {
		size = max(size, len(m))
	}

	merged := make(Map, size)
	for _, m := range maps {
		merged.Union(m)
	}

	return merged
}
