package rename

import (
	"fmt"

	"mapkit/maputil"
)

// Apply renames the top-level keys of doc according to the table and
// returns the transformed document. The input document is never mutated.
//
// Keys absent from the table follow the table's OnMissing policy; keys that
// collide after renaming resolve last-write-wins.
func Apply(t *Table, doc map[string]any) (map[string]any, error) {
	switch t.OnMissing {
	case PolicyKeep:
		return maputil.MapKeys(doc, func(k string) string {
			if nk, ok := t.Renames[k]; ok {
				return nk
			}
			return k
		}), nil

	case PolicySkip:
		return maputil.MapEntriesSkip(doc, func(k string, v any) (string, any, bool) {
			nk, ok := t.Renames[k]
			if !ok {
				return "", nil, true
			}
			return nk, v, false
		}), nil

	case PolicyError:
		return maputil.MapKeysErr(doc, func(k string) (string, error) {
			nk, ok := t.Renames[k]
			if !ok {
				return "", fmt.Errorf("no rename for key %q", k)
			}
			return nk, nil
		})

	default:
		return nil, fmt.Errorf("invalid on_missing policy %s", t.OnMissing)
	}
}
