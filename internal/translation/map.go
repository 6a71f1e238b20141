// Package translation holds the reverse translation index shared by the
// parsers and the gloss translator that consumes it.
package translation

import (
	"maps"
	"slices"
	"strings"
)

// Map is a reverse index from a normalized source-language key to the set
// of target-script strings. The zero value is not usable; call NewMap.
// All mutating operations are set unions, so merging is commutative and
// idempotent.
type Map struct {
	index map[string]map[string]struct{}
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{index: make(map[string]map[string]struct{})}
}

// Add unions values into the set stored under key.
// Empty keys and empty values are ignored.
func (m *Map) Add(key string, values ...string) {
	if key == "" {
		return
	}
	set := m.index[key]
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if set == nil {
			set = make(map[string]struct{}, len(values))
			m.index[key] = set
		}
		set[v] = struct{}{}
	}
}

// Lookup returns the sorted values under key, or nil when absent.
func (m *Map) Lookup(key string) []string {
	set, ok := m.index[key]
	if !ok {
		return nil
	}
	return slices.Sorted(maps.Keys(set))
}

// Has reports whether key has at least one value.
func (m *Map) Has(key string) bool {
	return len(m.index[key]) > 0
}

// Keys returns all keys in sorted order.
func (m *Map) Keys() []string {
	return slices.Sorted(maps.Keys(m.index))
}

// Len returns the number of keys.
func (m *Map) Len() int {
	return len(m.index)
}

// MergeInto unions every key of m into dst.
func (m *Map) MergeInto(dst *Map) {
	for key, set := range m.index {
		for v := range set {
			dst.Add(key, v)
		}
	}
}

// Merge returns a new Map holding the union of all inputs.
// Nil inputs are skipped; the inputs are not modified.
func Merge(sources ...*Map) *Map {
	out := NewMap()
	for _, m := range sources {
		if m != nil {
			m.MergeInto(out)
		}
	}
	return out
}

// Equal reports whether m and other hold exactly the same key/value sets.
func (m *Map) Equal(other *Map) bool {
	if len(m.index) != len(other.index) {
		return false
	}
	for key, set := range m.index {
		otherSet, ok := other.index[key]
		if !ok || len(otherSet) != len(set) {
			return false
		}
		for v := range set {
			if _, ok := otherSet[v]; !ok {
				return false
			}
		}
	}
	return true
}
