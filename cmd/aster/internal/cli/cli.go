// Package cli provides the shared flags and constructors of the aster CLI.
package cli

import (
	"github.com/lerenn/aster/pkg/aster"
	"github.com/lerenn/aster/pkg/aster/consts"
	"github.com/lerenn/aster/pkg/cache"
	"github.com/lerenn/aster/pkg/config"
	"github.com/lerenn/aster/pkg/dependencies"
	"github.com/lerenn/aster/pkg/fs"
	"github.com/lerenn/aster/pkg/hooks"
	"github.com/lerenn/aster/pkg/logger"
)

var (
	// JavaRoot is the root of the Java and Kotlin sources.
	JavaRoot string
	// ResRoot is the root of the resource files.
	ResRoot string
	// ManifestRoot is the root of the manifest files.
	ManifestRoot string
	// CacheDir overrides the configured cache directory.
	CacheDir string
	// ConfigPath specifies a custom config file path.
	ConfigPath string
	// Quiet suppresses all output except errors.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
)

// NewConfigManager creates a new Manager with the appropriate config path.
func NewConfigManager(fsys fs.FS) config.Manager {
	path := ConfigPath
	if path == "" {
		path = config.DefaultConfigPath
	}
	return config.NewManager(fsys, path)
}

// NewLogger returns the logger matching the quiet and verbose flags.
func NewLogger() logger.Logger {
	switch {
	case Quiet:
		return logger.NewNoopLogger()
	case Verbose:
		return logger.NewDefaultLogger()
	default:
		return logger.NewWarnLogger()
	}
}

// NewAster creates an Aster whose snapshot lives in the configured cache directory,
// or in the one given by --cache-dir.
func NewAster() (aster.Aster, error) {
	fsys := fs.NewFS()
	configManager := NewConfigManager(fsys)

	cfg, err := configManager.GetConfigWithFallback()
	if err != nil {
		return nil, err
	}

	cacheDir := cfg.CacheDir
	if CacheDir != "" {
		if cacheDir, err = fsys.ExpandPath(CacheDir); err != nil {
			return nil, err
		}
	}

	return newAster(fsys, configManager, cacheDir)
}

// NewInitAster creates an Aster for init. The existing configuration is not read
// so that a broken file can be overwritten with --force.
func NewInitAster() (aster.Aster, error) {
	fsys := fs.NewFS()
	return newAster(fsys, NewConfigManager(fsys), config.DefaultCacheDir())
}

func newAster(fsys fs.FS, configManager config.Manager, cacheDir string) (aster.Aster, error) {
	log := NewLogger()

	hookManager := hooks.NewHookManager()
	if Verbose {
		if err := registerVerboseHooks(hookManager, log); err != nil {
			return nil, err
		}
	}

	return aster.NewAster(aster.NewAsterParams{
		Dependencies: dependencies.New().
			WithFS(fsys).
			WithConfig(configManager).
			WithLogger(log).
			WithHookManager(hookManager).
			WithCache(cache.NewStore(fsys, cacheDir)),
	})
}

// registerVerboseHooks traces every operation and its duration.
func registerVerboseHooks(hm hooks.HookManagerInterface, log logger.Logger) error {
	logging := hooks.NewLoggingHook(log)
	timing := hooks.NewTimingHook(log)

	for _, op := range consts.All {
		for _, err := range []error{
			hm.RegisterPreHook(op, logging),
			hm.RegisterPostHook(op, logging),
			hm.RegisterErrorHook(op, logging),
			hm.RegisterPreHook(op, timing),
			hm.RegisterPostHook(op, timing),
			hm.RegisterErrorHook(op, timing),
		} {
			if err != nil {
				return err
			}
		}
	}

	return nil
}
