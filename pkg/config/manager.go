package config

import (
	"fmt"

	"github.com/lerenn/aster/pkg/fs"
	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// DefaultConfigPath is the configuration file used when none is given.
const DefaultConfigPath = "~/.aster/config.yaml"

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	// GetConfig loads the configuration file, failing when it is absent.
	GetConfig() (Config, error)
	// GetConfigWithFallback loads the configuration file, returning the default configuration when it is absent.
	GetConfigWithFallback() (Config, error)
	// SaveConfig writes the configuration to the config path.
	SaveConfig(config Config) error
	// GetConfigPath returns the config path with the home directory expanded.
	GetConfigPath() string
	// DefaultConfig returns the default configuration.
	DefaultConfig() Config
}

// realManager manages configuration with an embedded config path.
type realManager struct {
	fs         fs.FS
	configPath string
}

// NewManager creates a new Manager instance with the specified config path.
func NewManager(fsys fs.FS, configPath string) Manager {
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	if expanded, err := fsys.ExpandPath(configPath); err == nil {
		configPath = expanded
	}

	return &realManager{
		fs:         fsys,
		configPath: configPath,
	}
}

// GetConfig loads configuration from the embedded config path.
func (c *realManager) GetConfig() (Config, error) {
	exists, err := c.fs.Exists(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrConfigFileRead, c.configPath, err)
	}
	if !exists {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, c.configPath)
	}

	data, err := c.fs.ReadFile(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrConfigFileRead, c.configPath, err)
	}

	// Keys absent from the file keep their default values
	config := c.DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	if err := config.expandTildes(c.fs.ExpandPath); err != nil {
		return Config{}, fmt.Errorf("failed to expand tildes in configuration: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// GetConfigWithFallback loads the configuration from the embedded config path, falling back to default if not found.
// A file that exists but cannot be parsed is still an error.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	config, err := c.GetConfig()
	if err == nil {
		return config, nil
	}

	exists, existsErr := c.fs.Exists(c.configPath)
	if existsErr == nil && !exists {
		return c.DefaultConfig(), nil
	}

	return Config{}, err
}

// SaveConfig saves configuration to the embedded config path.
func (c *realManager) SaveConfig(config Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := c.fs.WriteFileAtomic(c.configPath, data, 0644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrConfigFileWrite, c.configPath, err)
	}

	return nil
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// DefaultConfig returns the default configuration.
func (c *realManager) DefaultConfig() Config {
	return Config{
		CacheDir: DefaultCacheDir(),
		Workers:  0,
		Denylist: append([]string(nil), DefaultDenylist...),
		Excludes: append([]string(nil), DefaultExcludes...),
	}
}
