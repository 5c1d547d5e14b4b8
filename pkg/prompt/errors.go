// Package prompt provides interactive prompt functionality for aster.
package prompt

import "errors"

// Error definitions for prompt package.
var (
	ErrInvalidConfirmationInput = errors.New("invalid input: please enter 'y' or 'n'")
	ErrReadInput                = errors.New("failed to read user input")
)
