// Package parsererror defines the error types returned by the extraction
// pipeline so callers can tell a broken document from an empty result.
package parsererror

import (
	"errors"
	"fmt"
)

// Marker is the header text every cardholder block starts with. It is quoted
// in user-facing messages about empty results.
const Marker = "Cardholder Name:"

// ErrNoRecords is matched (errors.Is) by every EmptyResultError.
var ErrNoRecords = errors.New("no cardholder records found")

// SourceOpenError means the PDF could not be opened or decoded at all.
type SourceOpenError struct {
	FilePath string
	Err      error
}

func (e *SourceOpenError) Error() string {
	return fmt.Sprintf("cannot open PDF '%s': %v", e.FilePath, e.Err)
}

func (e *SourceOpenError) Unwrap() error {
	return e.Err
}

// EmptyResultError means the document was readable but no block survived
// splitting.
type EmptyResultError struct {
	Source string
}

func (e *EmptyResultError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("no valid records found: check that '%s' is present", Marker)
	}
	return fmt.Sprintf("no valid records found in '%s': check that '%s' is present", e.Source, Marker)
}

func (e *EmptyResultError) Is(target error) bool {
	return target == ErrNoRecords
}

// ParseError represents a failure to interpret a configuration value, such as
// a field pattern.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents an input that failed a precondition check.
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

// IsSourceOpen reports whether err is (or wraps) a SourceOpenError.
func IsSourceOpen(err error) bool {
	var target *SourceOpenError
	return errors.As(err, &target)
}
