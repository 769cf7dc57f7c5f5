package maputil

// MapKeys builds a new map by passing every key through f and keeping the
// value untouched.
//
// If f maps two distinct keys to the same output key, the entry processed
// last wins; the processing order is Go's map iteration order, which is
// unspecified. No error is reported on collision.
func MapKeys[K, R comparable, V any](m map[K]V, f func(K) R) map[R]V {
	out := make(map[R]V, len(m))
	for k, v := range m {
		out[f(k)] = v
	}

	return out
}

// MapValues builds a new map by passing every value through f. Keys are
// untouched, so the result always has exactly len(m) entries.
func MapValues[K comparable, V, R any](m map[K]V, f func(V) R) map[K]R {
	out := make(map[K]R, len(m))
	for k, v := range m {
		out[k] = f(v)
	}

	return out
}

// MapValuesWithKey builds a new map by passing every key/value pair through
// f to produce a new value under the same key. The result always has exactly
// len(m) entries.
func MapValuesWithKey[K comparable, V, R any](m map[K]V, f func(K, V) R) map[K]R {
	out := make(map[K]R, len(m))
	for k, v := range m {
		out[k] = f(k, v)
	}

	return out
}

// MapEntries builds a new map by passing every key/value pair through f to
// produce a new key and a new value. Key collisions resolve the same way as
// in MapKeys: last processed entry wins, silently.
func MapEntries[K, RK comparable, V, RV any](m map[K]V, f func(K, V) (RK, RV)) map[RK]RV {
	out := make(map[RK]RV, len(m))
	for k, v := range m {
		rk, rv := f(k, v)
		out[rk] = rv
	}

	return out
}

// MapKeysErr is MapKeys with a fallible transform. The first error stops the
// transformation and is returned with a nil map; no partial result escapes.
func MapKeysErr[K, R comparable, V any](m map[K]V, f func(K) (R, error)) (map[R]V, error) {
	out := make(map[R]V, len(m))
	for k, v := range m {
		rk, err := f(k)
		if err != nil {
			return nil, err
		}

		out[rk] = v
	}

	return out, nil
}

// MapValuesErr is MapValues with a fallible transform. The first error stops
// the transformation and is returned with a nil map.
func MapValuesErr[K comparable, V, R any](m map[K]V, f func(V) (R, error)) (map[K]R, error) {
	out := make(map[K]R, len(m))
	for k, v := range m {
		rv, err := f(v)
		if err != nil {
			return nil, err
		}

		out[k] = rv
	}

	return out, nil
}

// MapValuesWithKeyErr is MapValuesWithKey with a fallible transform. The
// first error stops the transformation and is returned with a nil map.
func MapValuesWithKeyErr[K comparable, V, R any](m map[K]V, f func(K, V) (R, error)) (map[K]R, error) {
	out := make(map[K]R, len(m))
	for k, v := range m {
		rv, err := f(k, v)
		if err != nil {
			return nil, err
		}

		out[k] = rv
	}

	return out, nil
}

// MapEntriesErr is MapEntries with a fallible transform. The first error
// stops the transformation and is returned with a nil map.
func MapEntriesErr[K, RK comparable, V, RV any](m map[K]V, f func(K, V) (RK, RV, error)) (map[RK]RV, error) {
	out := make(map[RK]RV, len(m))
	for k, v := range m {
		rk, rv, err := f(k, v)
		if err != nil {
			return nil, err
		}

		out[rk] = rv
	}

	return out, nil
}

// MapEntriesSkip is MapEntries with a transform that may drop entries:
// returning skip=true leaves the entry out of the result.
func MapEntriesSkip[K, RK comparable, V, RV any](m map[K]V, f func(K, V) (RK, RV, bool)) map[RK]RV {
	out := make(map[RK]RV, len(m))
	for k, v := range m {
		rk, rv, skip := f(k, v)
		if skip {
			continue
		}

		out[rk] = rv
	}

	return out
}
