package maputil_test

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"mapkit/maputil"
)

func printSorted[V any](m map[string]V) {
	keys := maputil.Keys(m)
	slices.Sort(keys)

	for _, k := range keys {
		fmt.Printf("%s=%v\n", k, m[k])
	}
}

func ExampleMapKeys() {
	m := map[string]int{"a": 1, "b": 2}

	printSorted(maputil.MapKeys(m, strings.ToUpper))
	// Output:
	// A=1
	// B=2
}

func ExampleMapValuesWithKey() {
	m := map[string]int{"a": 1, "b": 2}

	printSorted(maputil.MapValuesWithKey(m, func(k string, v int) string {
		return k + strconv.Itoa(v)
	}))
	// Output:
	// a=a1
	// b=b2
}

func ExampleMapEntries() {
	m := map[string]string{"a": "x", "b": "y"}

	printSorted(maputil.MapEntries(m, func(k, v string) (string, string) {
		return strings.ToUpper(k), strings.ToUpper(v)
	}))
	// Output:
	// A=X
	// B=Y
}

func ExampleMapValuesAsync() {
	m := map[string]int{"a": 1, "b": 2}

	out, err := maputil.MapValuesAsync(context.Background(), m,
		func(_ context.Context, v int) (string, error) {
			return strconv.Itoa(v) + "!", nil
		})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	printSorted(out)
	// Output:
	// a=1!
	// b=2!
}
