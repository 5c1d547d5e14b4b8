package aster

import (
	"fmt"

	"github.com/lerenn/aster/configs"
	"github.com/lerenn/aster/pkg/aster/consts"
	"github.com/lerenn/aster/pkg/config"
)

// InitOpts contains optional parameters for Init.
type InitOpts struct {
	// Force overwrites an existing configuration file.
	Force bool
	// CacheDir sets the cache directory of the written configuration.
	CacheDir string
}

// Init writes the default configuration file.
func (a *realAster) Init(opts InitOpts) error {
	params := map[string]interface{}{
		"force":    opts.Force,
		"cacheDir": opts.CacheDir,
	}

	_, err := executeWithHooks(a, consts.Init, params, func() (struct{}, error) {
		return struct{}{}, a.performInit(opts)
	})
	return err
}

func (a *realAster) performInit(opts InitOpts) error {
	configPath := a.deps.Config.GetConfigPath()

	exists, err := a.deps.FS.Exists(configPath)
	if err != nil {
		return fmt.Errorf("failed to check configuration file: %w", err)
	}
	if exists && !opts.Force {
		return fmt.Errorf("%w: %s", config.ErrConfigAlreadyExists, configPath)
	}

	if opts.CacheDir != "" {
		cfg := a.deps.Config.DefaultConfig()
		cfg.CacheDir = opts.CacheDir
		if err := a.deps.Config.SaveConfig(cfg); err != nil {
			return err
		}
	} else if err := a.deps.FS.WriteFileAtomic(configPath, configs.DefaultConfigYAML, 0644); err != nil {
		return fmt.Errorf("%w: %s: %w", config.ErrConfigFileWrite, configPath, err)
	}

	a.VerbosePrint("Configuration written to %s", configPath)
	return nil
}
