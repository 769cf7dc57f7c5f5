// Package diagnostic collects validation findings with severities, so
// callers can report warnings without aborting and still fail hard on
// errors.
package diagnostic
