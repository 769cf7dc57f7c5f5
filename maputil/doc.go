// Package maputil provides generic transformations over Go maps.
//
// Every operation builds a brand-new map and never mutates its input.
// The surface splits into three groups:
//
//   - Synchronous transforms: MapKeys, MapValues, MapValuesWithKey,
//     MapEntries, plus fail-fast Err variants and MapEntriesSkip
//   - Asynchronous transforms: MapKeysAsync, MapValuesAsync,
//     MapValuesWithKeyAsync, MapEntriesAsync, and the Ordered variants
//     with deterministic collision resolution
//   - Plain helpers: Keys, Values, Entries, FromEntries, Invert, Merge
//
// When a key transform sends two distinct input keys to the same output
// key, the entry processed last wins and the earlier value is silently
// overwritten. For the synchronous variants "last" follows Go's map
// iteration order; for the asynchronous variants it follows task
// completion order unless an Ordered variant is used.
package maputil
