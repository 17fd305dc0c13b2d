package corpus

import "errors"

var (
	// ErrNotFound indicates the requested entry doesn't exist.
	ErrNotFound = errors.New("corpus entry not found")

	// ErrConstraint indicates a check constraint violation.
	ErrConstraint = errors.New("constraint violation")
)
