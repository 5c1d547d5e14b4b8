package hooks

import "errors"

// Error definitions for hooks package.
var (
	ErrNilHook = errors.New("hook cannot be nil")
)
