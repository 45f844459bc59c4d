package accrete

import "errors"

var (
	// ErrSizing indicates that a population growth computation was
	// given neither, or both, of a body count and a body radius.
	// Exactly one sizing strategy must be supplied.
	ErrSizing = errors.New("accrete: exactly one of body count or body radius required")
)
