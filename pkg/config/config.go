// Package config provides configuration management functionality for the aster application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config represents the application configuration.
type Config struct {
	// CacheDir is the directory holding the index snapshot.
	CacheDir string `yaml:"cache_dir"`
	// Workers bounds the number of concurrent extraction workers per walk. Zero means one per CPU.
	Workers int `yaml:"workers"`
	// Denylist holds substrings of identifiers that are never reported as unused.
	Denylist []string `yaml:"denylist"`
	// Excludes holds glob patterns of paths skipped while walking.
	Excludes []string `yaml:"excludes"`
}

// DefaultDenylist contains the substrings of identifiers referenced dynamically
// for gender and emoji variants.
var DefaultDenylist = []string{"emoji", "f1gender", "m2gender"}

// DefaultExcludes contains the paths skipped by default while walking.
var DefaultExcludes = []string{"build"}

// DefaultCacheDir returns the default cache directory.
func DefaultCacheDir() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		// Fallback to the temporary directory if no user cache directory is defined
		cacheDir = os.TempDir()
	}
	return filepath.Join(cacheDir, "aster")
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}

	for _, entry := range c.Denylist {
		if strings.TrimSpace(entry) == "" {
			return ErrEmptyDenylistEntry
		}
	}

	for _, pattern := range c.Excludes {
		if pattern == "" {
			return ErrEmptyExclude
		}
	}

	return nil
}

// expandTildes expands the home directory prefix of path fields.
func (c *Config) expandTildes(expand func(string) (string, error)) error {
	if c.CacheDir == "" {
		c.CacheDir = DefaultCacheDir()
		return nil
	}

	expanded, err := expand(c.CacheDir)
	if err != nil {
		return err
	}
	c.CacheDir = expanded

	return nil
}
