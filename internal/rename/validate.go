package rename

import (
	"fmt"
	"slices"
	"strings"

	"mapkit/internal/diagnostic"
)

// Validate validates a rename table. This is a structural validation step
// only; it does not look at any document the table may be applied to.
//
// Duplicate rename targets are legal (they resolve last-write-wins when
// applied) but are reported as warnings so callers can surface them.
func Validate(t *Table) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if t == nil {
		res.AddError("table_is_nil", "rename table is nil", "")
		return res
	}

	if t.OnMissing.Word() == "" {
		res.AddError("invalid_policy", fmt.Sprintf("invalid on_missing policy %s", t.OnMissing), "")
	}

	if len(t.Renames) == 0 {
		res.AddWarning("empty_table", "rename table has no entries", "")
		return res
	}

	sources := map[string][]string{}

	for source, target := range t.Renames {
		if source == "" {
			res.AddError("empty_source", "rename source key is empty", "")
			continue
		}

		if target == "" {
			res.AddError("empty_target", "rename target key is empty", source)
			continue
		}

		if source == target {
			res.AddWarning("identity_rename", "source and target are identical", source)
		}

		sources[target] = append(sources[target], source)
	}

	for target, srcs := range sources {
		if len(srcs) < 2 {
			continue
		}

		slices.Sort(srcs)
		res.AddWarning("duplicate_target",
			fmt.Sprintf("keys %s all rename to %q; last write wins", strings.Join(srcs, ", "), target),
			target)
	}

	return res
}
