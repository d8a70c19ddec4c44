package dataset

import (
	"errors"
	"fmt"
)

// ============================================================================
// LOAD ERRORS
// ============================================================================
// Loading is all-or-nothing: any LoadError is fatal to startup. The cause
// is reachable with errors.Is / errors.Unwrap.
// ============================================================================

var (
	// ErrMissingColumn is wrapped by a LoadError when a required schema
	// column is absent from the source header.
	ErrMissingColumn = errors.New("missing required column")

	// ErrBadValue is wrapped by a LoadError when a non-empty cell cannot
	// be parsed as its column's type.
	ErrBadValue = errors.New("value does not match column type")

	// ErrEmptySource is wrapped by a LoadError when the source has no
	// header row.
	ErrEmptySource = errors.New("source has no header row")
)

// LoadError reports a data source that could not be loaded. Unrecoverable;
// callers should treat it as fatal to startup.
type LoadError struct {
	Source string
	cause  error
}

func newLoadError(source string, cause error) *LoadError {
	return &LoadError{Source: source, cause: cause}
}

func newLoadErrorf(source, format string, args ...any) *LoadError {
	return &LoadError{Source: source, cause: fmt.Errorf(format, args...)}
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.cause)
}

func (e *LoadError) Unwrap() error { return e.cause }
