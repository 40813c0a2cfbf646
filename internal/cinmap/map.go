package cinmap

import (
	"slices"
)

// Set is an unordered set of candidates.
type Set map[string]struct{}

// Add inserts a candidate. Empty candidates carry nothing to type and are ignored.
func (s Set) Add(candidate string) {
	if candidate == "" {
		return
	}

	s[candidate] = struct{}{}
}

// Has reports whether the candidate is in the set.
func (s Set) Has(candidate string) bool {
	_, ok := s[candidate]
	return ok
}

// Sorted returns the candidates in ascending order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for c := range s {
		out = append(out, c)
	}

	slices.Sort(out)

	return out
}

// Map is a cin map: key to candidate set.
type Map map[string]Set

// New creates an empty map.
func New() Map {
	return make(Map)
}

// Add associates a candidate with a key. Empty keys and empty candidates are ignored.
func (m Map) Add(key, candidate string) {
	if key == "" || candidate == "" {
		return
	}

	set, ok := m[key]
	if !ok {
		set = make(Set)
		m[key] = set
	}

	set.Add(candidate)
}

// AddAll unions candidates into the bucket for key, creating it if needed.
func (m Map) AddAll(key string, candidates Set) {
	if key == "" || len(candidates) == 0 {
		return
	}

	set, ok := m[key]
	if !ok {
		set = make(Set, len(candidates))
		m[key] = set
	}

	for c := range candidates {
		set[c] = struct{}{}
	}
}

// Keys returns all keys in ascending byte order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

// Pairs counts the (key, candidate) associations held by the map.
func (m Map) Pairs() int {
	n := 0
	for _, set := range m {
		n += len(set)
	}

	return n
}

// Clone returns a deep copy. The copy shares no sets with m.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, set := range m {
		out.AddAll(k, set)
	}

	return out
}

// Union adds every association of other into m.
func (m Map) Union(other Map) {
	for k, set := range other {
		m.AddAll(k, set)
	}
}
