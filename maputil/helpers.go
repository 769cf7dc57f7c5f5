package maputil

// Entry is a single key/value pair lifted out of a map.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Keys collects the keys of m into a pre-sized slice, in map iteration order.
func Keys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	return keys
}

// Values collects the values of m into a pre-sized slice, in map iteration
// order.
func Values[K comparable, V any](m map[K]V) []V {
	values := make([]V, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}

	return values
}

// Entries collects all key/value pairs of m, in map iteration order.
func Entries[K comparable, V any](m map[K]V) []Entry[K, V] {
	entries := make([]Entry[K, V], 0, len(m))
	for k, v := range m {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
	}

	return entries
}

// FromEntries builds a map from a slice of entries. Duplicate keys resolve
// last-write-wins in slice order.
func FromEntries[K comparable, V any](entries []Entry[K, V]) map[K]V {
	out := make(map[K]V, len(entries))
	for _, e := range entries {
		out[e.Key] = e.Value
	}

	return out
}

// Invert swaps keys and values. Duplicate values resolve last-write-wins in
// map iteration order.
func Invert[K, V comparable](m map[K]V) map[V]K {
	out := make(map[V]K, len(m))
	for k, v := range m {
		out[v] = k
	}

	return out
}

// Merge copies all maps into a single new map, left to right, so entries of
// later maps overwrite entries of earlier ones on equal keys.
func Merge[K comparable, V any](ms ...map[K]V) map[K]V {
	size := 0
	for _, m := range ms {
		size += len(m)
	}

	out := make(map[K]V, size)

	for _, m := range ms {
		for k, v := range m {
			out[k] = v
		}
	}

	return out
}
