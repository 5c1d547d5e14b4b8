package walker

import "errors"

// Error definitions for walker package.
var (
	ErrInvalidRoot    = errors.New("invalid walk root")
	ErrInvalidPattern = errors.New("invalid glob pattern")
)
