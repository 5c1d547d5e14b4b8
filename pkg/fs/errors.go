package fs

import "errors"

// Error definitions for fs package.
var (
	// Atomic write errors.
	ErrAtomicWrite = errors.New("atomic write failed")

	// Path resolution errors.
	ErrHomeDir = errors.New("failed to determine home directory")
)
