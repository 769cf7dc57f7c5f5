package maputil_test

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapkit/maputil"
)

func TestMapValuesAsync(t *testing.T) {
	t.Parallel()

	t.Run("append suffix", func(t *testing.T) {
		t.Parallel()

		in := map[string]int{"a": 1, "b": 2}
		out, err := maputil.MapValuesAsync(context.Background(), in,
			func(_ context.Context, v int) (string, error) {
				return strconv.Itoa(v) + "!", nil
			})

		require.NoError(t, err)
		assert.Equal(t, map[string]string{"a": "1!", "b": "2!"}, out)
	})

	t.Run("cardinality preserved", func(t *testing.T) {
		t.Parallel()

		in := map[int]int{}
		for i := 0; i < 100; i++ {
			in[i] = i
		}

		out, err := maputil.MapValuesAsync(context.Background(), in,
			func(_ context.Context, v int) (int, error) { return v * v, nil })

		require.NoError(t, err)
		assert.Len(t, out, len(in))
	})
}

func TestMapKeysAsync(t *testing.T) {
	t.Parallel()

	t.Run("matches sync result for pure transform", func(t *testing.T) {
		t.Parallel()

		in := map[string]int{"a": 1, "b": 2, "c": 3, "d": 4}

		want := maputil.MapKeys(in, strings.ToUpper)
		got, err := maputil.MapKeysAsync(context.Background(), in,
			func(_ context.Context, k string) (string, error) {
				return strings.ToUpper(k), nil
			})

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("collision keeps exactly one entry", func(t *testing.T) {
		t.Parallel()

		in := map[string]int{"a": 1, "b": 2, "c": 3}
		out, err := maputil.MapKeysAsync(context.Background(), in,
			func(_ context.Context, _ string) (string, error) { return "X", nil })

		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Contains(t, []int{1, 2, 3}, out["X"])
	})
}

func TestMapValuesWithKeyAsync(t *testing.T) {
	t.Parallel()

	in := map[string]int{"a": 1, "b": 2}
	out, err := maputil.MapValuesWithKeyAsync(context.Background(), in,
		func(_ context.Context, k string, v int) (string, error) {
			return k + strconv.Itoa(v), nil
		})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "a1", "b": "b2"}, out)
}

func TestMapEntriesAsync(t *testing.T) {
	t.Parallel()

	t.Run("uppercase keys and values", func(t *testing.T) {
		t.Parallel()

		in := map[string]string{"a": "x", "b": "y"}
		out, err := maputil.MapEntriesAsync(context.Background(), in,
			func(_ context.Context, k, v string) (string, string, error) {
				return strings.ToUpper(k), strings.ToUpper(v), nil
			})

		require.NoError(t, err)
		assert.Equal(t, map[string]string{"A": "X", "B": "Y"}, out)
	})

	t.Run("failure yields nil map", func(t *testing.T) {
		t.Parallel()

		errBoom := errors.New("boom")

		in := map[string]int{"a": 1, "b": 2, "c": 3}
		out, err := maputil.MapEntriesAsync(context.Background(), in,
			func(_ context.Context, k string, v int) (string, int, error) {
				if k == "b" {
					return "", 0, errBoom
				}
				return k, v, nil
			})

		require.ErrorIs(t, err, errBoom)
		assert.Nil(t, out)
	})

	t.Run("joins every task even on early failure", func(t *testing.T) {
		t.Parallel()

		var completed atomic.Int64

		in := map[int]int{}
		for i := 0; i < 16; i++ {
			in[i] = i
		}

		_, err := maputil.MapEntriesAsync(context.Background(), in,
			func(_ context.Context, k, v int) (int, int, error) {
				defer completed.Add(1)

				if k == 0 {
					return 0, 0, errors.New("fast failure")
				}

				time.Sleep(10 * time.Millisecond)

				return k, v, nil
			})

		require.Error(t, err)
		assert.Equal(t, int64(len(in)), completed.Load())
	})

	t.Run("context reaches every transform", func(t *testing.T) {
		t.Parallel()

		type ctxKey struct{}

		ctx := context.WithValue(context.Background(), ctxKey{}, "marker")

		in := map[string]int{"a": 1, "b": 2}
		out, err := maputil.MapEntriesAsync(ctx, in,
			func(ctx context.Context, k string, v int) (string, int, error) {
				if ctx.Value(ctxKey{}) != "marker" {
					return "", 0, errors.New("context value lost")
				}
				return k, v, nil
			})

		require.NoError(t, err)
		assert.Equal(t, in, out)
	})
}

func TestMapEntriesAsyncOrdered(t *testing.T) {
	t.Parallel()

	t.Run("matches sync result for pure transform", func(t *testing.T) {
		t.Parallel()

		in := map[string]int{"a": 1, "b": 2, "c": 3}

		want := maputil.MapEntries(in, func(k string, v int) (string, int) {
			return strings.ToUpper(k), v * 10
		})
		got, err := maputil.MapEntriesAsyncOrdered(context.Background(), in,
			func(_ context.Context, k string, v int) (string, int, error) {
				return strings.ToUpper(k), v * 10, nil
			})

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("collision keeps exactly one entry under jitter", func(t *testing.T) {
		t.Parallel()

		in := map[int]int{}
		for i := 0; i < 32; i++ {
			in[i] = i
		}

		out, err := maputil.MapEntriesAsyncOrdered(context.Background(), in,
			func(_ context.Context, k, v int) (string, int, error) {
				time.Sleep(time.Duration(k%4) * time.Millisecond)
				return "X", v, nil
			})

		require.NoError(t, err)
		assert.Len(t, out, 1)
	})

	t.Run("failure yields nil map", func(t *testing.T) {
		t.Parallel()

		errBoom := errors.New("boom")

		in := map[string]int{"a": 1, "b": 2}
		out, err := maputil.MapEntriesAsyncOrdered(context.Background(), in,
			func(_ context.Context, k string, v int) (string, int, error) {
				return "", 0, errBoom
			})

		require.ErrorIs(t, err, errBoom)
		assert.Nil(t, out)
	})
}

func TestMapKeysAsyncOrdered(t *testing.T) {
	t.Parallel()

	in := map[string]int{"a": 1, "b": 2}
	out, err := maputil.MapKeysAsyncOrdered(context.Background(), in,
		func(_ context.Context, k string) (string, error) {
			return strings.ToUpper(k), nil
		})

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 1, "B": 2}, out)
}
