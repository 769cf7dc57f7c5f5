package diagnostic

import (
	"fmt"

	"mapkit/internal/common"
)

// Diagnostics holds all findings from a validation pass.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single finding.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of finding.
	Code string
	// Message is the human-readable description.
	Message string
	// Key identifies which table entry this relates to (if any).
	Key string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// String renders the diagnostic for terminal output.
func (d Diagnostic) String() string {
	if d.Key != "" {
		return fmt.Sprintf("%s [%s] %s: %s", d.Severity, d.Code, d.Key, d.Message)
	}

	return fmt.Sprintf("%s [%s] %s", d.Severity, d.Code, d.Message)
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, key string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Key:      key,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, key string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Key:      key,
	})
}

// HasErrors reports whether any error-grade finding was recorded.
func (d *Diagnostics) HasErrors() bool {
	return !common.IsEmpty(d.Errors)
}

// FirstError returns the first error-grade finding, if any.
func (d *Diagnostics) FirstError() (Diagnostic, bool) {
	return common.First(d.Errors)
}
