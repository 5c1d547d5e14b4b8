package aster

import "errors"

// Error definitions for aster package.
var (
	ErrMissingRoot = errors.New("missing root")
)
