package models

import "sort"

// FieldMap holds the synchronized field values of a record keyed by field
// name. Values are kept as strings so records of any collection can be
// diffed and displayed uniformly; typed views in this package convert to
// and from FieldMap.
type FieldMap map[string]string

// Clone returns a deep copy of m. A nil map clones to an empty map so the
// result is always safe to mutate.
func (m FieldMap) Clone() FieldMap {
	out := make(FieldMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Equal reports whether m and other hold exactly the same field values.
// Missing keys and empty-string values are distinct.
func (m FieldMap) Equal(other FieldMap) bool {
	if len(m) != len(other) {
		return false
	}
	for k, v := range m {
		ov, ok := other[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// Keys returns the field names of m in lexicographic order, giving diffs
// and rendered dialogs a deterministic field order.
func (m FieldMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DiffKeys returns the names of fields whose values differ between m and
// other, in lexicographic order. A field present on one side only counts
// as differing.
func (m FieldMap) DiffKeys(other FieldMap) []string {
	seen := make(map[string]struct{}, len(m)+len(other))
	var diff []string

	for k, v := range m {
		seen[k] = struct{}{}
		if ov, ok := other[k]; !ok || ov != v {
			diff = append(diff, k)
		}
	}
	for k, v := range other {
		if _, ok := seen[k]; ok {
			continue
		}
		if mv, has := m[k]; !has || mv != v {
			diff = append(diff, k)
		}
	}

	sort.Strings(diff)
	return diff
}
