package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse     = errors.New("failed to parse config file")
	ErrConfigFileRead      = errors.New("failed to read config file")
	ErrConfigFileWrite     = errors.New("failed to write config file")
	ErrConfigNotFound      = errors.New("config file not found")
	ErrConfigAlreadyExists = errors.New("config file already exists, use --force to overwrite")

	// Configuration validation errors.
	ErrInvalidWorkers     = errors.New("workers cannot be negative")
	ErrEmptyDenylistEntry = errors.New("denylist entries cannot be empty")
	ErrEmptyExclude       = errors.New("exclude patterns cannot be empty")
)
