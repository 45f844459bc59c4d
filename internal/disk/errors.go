package disk

import "errors"

// Structural invariant violations. A disk failing these is a
// programming error in the caller, not a recoverable condition.
var (
	// ErrGridOrder indicates annulus radii that are not strictly increasing.
	ErrGridOrder = errors.New("disk: annulus radii not strictly increasing")

	// ErrLengthMismatch indicates inconsistent grid array lengths.
	ErrLengthMismatch = errors.New("disk: surface density and bounds lengths disagree")

	// ErrEmptyGrid indicates a disk with no annuli.
	ErrEmptyGrid = errors.New("disk: grid has no annuli")

	// ErrBadEdges indicates invalid inner/outer edge arguments.
	ErrBadEdges = errors.New("disk: edges must satisfy 0 < inner < outer")
)
