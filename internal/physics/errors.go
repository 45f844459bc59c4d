package physics

import "errors"

var (
	// ErrNoRoot indicates the bracketing interval does not contain a
	// sign change.
	ErrNoRoot = errors.New("physics: no sign change in bracketing interval")

	// ErrNoConvergence indicates the root solve hit its iteration cap
	// before reaching the requested tolerance.
	ErrNoConvergence = errors.New("physics: root solve did not converge")
)
