// Package dependencies provides a centralized dependency container for the aster application.
package dependencies

import (
	"errors"

	"github.com/lerenn/aster/pkg/cache"
	"github.com/lerenn/aster/pkg/config"
	"github.com/lerenn/aster/pkg/fs"
	"github.com/lerenn/aster/pkg/hooks"
	"github.com/lerenn/aster/pkg/logger"
	"github.com/lerenn/aster/pkg/prompt"
	"github.com/lerenn/aster/pkg/xmledit"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing          = errors.New("fs dependency is required but not set")
	ErrConfigMissing      = errors.New("config dependency is required but not set")
	ErrLoggerMissing      = errors.New("logger dependency is required but not set")
	ErrPromptMissing      = errors.New("prompt dependency is required but not set")
	ErrHookManagerMissing = errors.New("hook manager dependency is required but not set")
	ErrCacheMissing       = errors.New("cache dependency is required but not set")
	ErrEditorMissing      = errors.New("editor dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS          fs.FS
	Config      config.Manager
	Logger      logger.Logger
	Prompt      prompt.Prompter
	HookManager hooks.HookManagerInterface
	Cache       cache.Store
	Editor      xmledit.Editor
}

// New creates a new Dependencies instance with sensible defaults.
// Config and Cache depend on user supplied paths and are left nil.
func New() *Dependencies {
	fsys := fs.NewFS()
	return &Dependencies{
		FS:          fsys,
		Logger:      logger.NewWarnLogger(),
		Prompt:      prompt.NewPrompt(),
		HookManager: hooks.NewHookManager(),
		Editor:      xmledit.NewEditor(fsys),
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
// The editor keeps the filesystem it was built with.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(prompt prompt.Prompter) *Dependencies {
	d.Prompt = prompt
	return d
}

// WithHookManager sets the hook manager and returns the instance for chaining.
func (d *Dependencies) WithHookManager(hm hooks.HookManagerInterface) *Dependencies {
	d.HookManager = hm
	return d
}

// WithCache sets the snapshot store and returns the instance for chaining.
func (d *Dependencies) WithCache(store cache.Store) *Dependencies {
	d.Cache = store
	return d
}

// WithEditor sets the XML editor and returns the instance for chaining.
func (d *Dependencies) WithEditor(editor xmledit.Editor) *Dependencies {
	d.Editor = editor
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Config, ErrConfigMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Prompt, ErrPromptMissing},
		{d.HookManager, ErrHookManagerMissing},
		{d.Cache, ErrCacheMissing},
		{d.Editor, ErrEditorMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
