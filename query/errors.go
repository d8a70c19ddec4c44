package query

import (
	"fmt"
)

// ============================================================================
// QUERY ERRORS
// ============================================================================
// Both kinds are recoverable: the caller gets the error, the process and
// the Dataset are unaffected.
// ============================================================================

// FieldError reports a filter, sort, or aggregate referencing a field
// that is not in the schema.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("unknown field %q", e.Field)
}

// QueryError reports a structurally invalid query: a bad operator, an
// operator applied to an incompatible field kind, or a value that cannot
// be coerced to the field's type.
type QueryError struct {
	Reason string
}

func (e *QueryError) Error() string {
	return "invalid query: " + e.Reason
}

func newQueryErrorf(format string, args ...any) *QueryError {
	return &QueryError{Reason: fmt.Sprintf(format, args...)}
}
