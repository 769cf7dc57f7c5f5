// Package rename provides YAML schema definitions, parsing, and validation
// for key rename tables, plus the application of a table to a document's
// top-level keys.
//
// A rename table has the following structure:
//
//	version: "1"
//	on_missing: keep   # keep | skip | error
//	renames:
//	  old_key: new_key
//
// on_missing decides what happens to document keys the table does not
// mention: keep them unchanged, drop them, or fail the whole run. Two
// sources renaming to the same target are legal and resolve last-write-wins,
// but validation reports them so the caller can surface a warning.
package rename
