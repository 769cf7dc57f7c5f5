package maputil

import (
	"context"
	"sync"
)

// asyncResult carries one transformed entry back to the coordinating
// goroutine.
type asyncResult[K comparable, V any] struct {
	key K
	val V
	err error
}

// MapEntriesAsync runs f concurrently for every entry of m, one goroutine
// per entry, and assembles the results into a new map once every goroutine
// has finished.
//
// The call always joins all goroutines before returning. If any transform
// fails, the first error observed in completion order is returned with a nil
// map; no partial result escapes. Sibling transforms are not cancelled on
// failure, but every transform receives ctx, so callers can wire their own
// cancellation through it.
//
// Key collisions resolve last-write-wins by completion order, which is
// nondeterministic. Use MapEntriesAsyncOrdered when collisions must resolve
// deterministically.
func MapEntriesAsync[K, RK comparable, V, RV any](
	ctx context.Context,
	m map[K]V,
	f func(context.Context, K, V) (RK, RV, error),
) (map[RK]RV, error) {
	results := make(chan asyncResult[RK, RV], len(m))

	for k, v := range m {
		go func(k K, v V) {
			rk, rv, err := f(ctx, k, v)
			results <- asyncResult[RK, RV]{key: rk, val: rv, err: err}
		}(k, v)
	}

	out := make(map[RK]RV, len(m))

	var firstErr error

	for i := 0; i < len(m); i++ {
		res := <-results
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
			}

			continue
		}

		out[res.key] = res.val
	}

	if firstErr != nil {
		return nil, firstErr
	}

	return out, nil
}

// MapKeysAsync runs the key transform f concurrently for every entry of m,
// keeping values untouched. Same join, failure, and collision semantics as
// MapEntriesAsync.
func MapKeysAsync[K, R comparable, V any](
	ctx context.Context,
	m map[K]V,
	f func(context.Context, K) (R, error),
) (map[R]V, error) {
	return MapEntriesAsync(ctx, m, func(ctx context.Context, k K, v V) (R, V, error) {
		rk, err := f(ctx, k)
		return rk, v, err
	})
}

// MapValuesAsync runs the value transform f concurrently for every entry of
// m, keeping keys untouched. Keys never collide, so on success the result
// has exactly len(m) entries. Same join and failure semantics as
// MapEntriesAsync.
func MapValuesAsync[K comparable, V, R any](
	ctx context.Context,
	m map[K]V,
	f func(context.Context, V) (R, error),
) (map[K]R, error) {
	return MapEntriesAsync(ctx, m, func(ctx context.Context, k K, v V) (K, R, error) {
		rv, err := f(ctx, v)
		return k, rv, err
	})
}

// MapValuesWithKeyAsync runs the transform f concurrently for every entry of
// m, producing a new value under the unchanged key. Keys never collide, so
// on success the result has exactly len(m) entries. Same join and failure
// semantics as MapEntriesAsync.
func MapValuesWithKeyAsync[K comparable, V, R any](
	ctx context.Context,
	m map[K]V,
	f func(context.Context, K, V) (R, error),
) (map[K]R, error) {
	return MapEntriesAsync(ctx, m, func(ctx context.Context, k K, v V) (K, R, error) {
		rv, err := f(ctx, k, v)
		return k, rv, err
	})
}

// MapEntriesAsyncOrdered is MapEntriesAsync with deterministic collision
// resolution: every entry is tagged with its submission index at launch, and
// after the full join the results fold into the output map in submission
// order, so on key collision the entry submitted last wins regardless of
// which goroutine finished first.
//
// Submission order is the map iteration order of the single call, so the
// determinism is relative to one launch sequence, not across calls.
func MapEntriesAsyncOrdered[K, RK comparable, V, RV any](
	ctx context.Context,
	m map[K]V,
	f func(context.Context, K, V) (RK, RV, error),
) (map[RK]RV, error) {
	results := make([]asyncResult[RK, RV], len(m))

	var wg sync.WaitGroup

	idx := 0

	for k, v := range m {
		wg.Add(1)

		go func(idx int, k K, v V) {
			defer wg.Done()

			rk, rv, err := f(ctx, k, v)
			results[idx] = asyncResult[RK, RV]{key: rk, val: rv, err: err}
		}(idx, k, v)

		idx++
	}

	wg.Wait()

	out := make(map[RK]RV, len(m))

	for _, res := range results {
		if res.err != nil {
			return nil, res.err
		}

		out[res.key] = res.val
	}

	return out, nil
}

// MapKeysAsyncOrdered is MapKeysAsync with the deterministic collision
// resolution of MapEntriesAsyncOrdered.
func MapKeysAsyncOrdered[K, R comparable, V any](
	ctx context.Context,
	m map[K]V,
	f func(context.Context, K) (R, error),
) (map[R]V, error) {
	return MapEntriesAsyncOrdered(ctx, m, func(ctx context.Context, k K, v V) (R, V, error) {
		rk, err := f(ctx, k)
		return rk, v, err
	})
}
