package plannerconfig

import "sort"

// Table maps parameter names to values
type Table map[string]float64

// Keys returns the parameter names in lexicographic order
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns an independent copy of t
func (t Table) Clone() Table {
	c := make(Table, len(t))
	for k, v := range t {
		c[k] = v
	}
	return c
}

// Merge returns the union of t and overlay. Values from overlay win.
func (t Table) Merge(overlay Table) Table {
	merged := make(Table, len(t)+len(overlay))
	for k, v := range t {
		merged[k] = v
	}
	for k, v := range overlay {
		merged[k] = v
	}
	return merged
}

// Has reports whether key is present
func (t Table) Has(key string) bool {
	_, ok := t[key]
	return ok
}
