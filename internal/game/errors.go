package game

import "github.com/jmakela/crossroads/internal/errors"

// Error kinds returned by the core. The HTTP layer maps these to status codes,
// the core never formats user-facing text.
var (
	// ErrValidation marks malformed or missing input. The caller can recover by correcting the input.
	ErrValidation = errors.NewSentinel("validation failed")
	// ErrNotFound marks a reference to a player or scenario that does not exist.
	ErrNotFound = errors.NewSentinel("not found")
	// ErrConflict marks an operation that is not allowed in the current state,
	// such as submitting a second choice for the same level.
	ErrConflict = errors.NewSentinel("conflict")
)
