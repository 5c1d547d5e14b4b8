// Package aster finds unused Android string resources and removes them.
package aster

import (
	"fmt"

	"github.com/lerenn/aster/pkg/config"
	"github.com/lerenn/aster/pkg/dependencies"
	"github.com/lerenn/aster/pkg/extractor"
	"github.com/lerenn/aster/pkg/fs"
	"github.com/lerenn/aster/pkg/hooks"
	"github.com/lerenn/aster/pkg/index"
	"github.com/lerenn/aster/pkg/logger"
	"github.com/lerenn/aster/pkg/walker"
)

// Aster interface provides the indexing, query and removal operations.
type Aster interface {
	// Index walks the roots, builds the resource index and saves its snapshot.
	Index(opts IndexOpts) (*IndexResult, error)
	// Counts reports the number of defined, used and unused strings of the snapshot.
	Counts() (*Counts, error)
	// ListUnused lists the unused strings of the snapshot in lexicographic order.
	ListUnused() ([]UnusedString, error)
	// RemoveUnused removes the declarations of unused strings from their resource files.
	RemoveUnused(opts RemoveUnusedOpts) (*RemoveResult, error)
	// Init writes the default configuration file.
	Init(opts InitOpts) error
	// SetLogger sets the logger for this Aster instance.
	SetLogger(logger logger.Logger)
}

// NewAsterParams contains parameters for creating a new Aster instance.
type NewAsterParams struct {
	Dependencies *dependencies.Dependencies
}

type realAster struct {
	deps         *dependencies.Dependencies
	newWalker    func(logger.Logger) walker.Walker
	newExtractor func(fs.FS) extractor.Extractor
}

// NewAster creates a new Aster instance.
func NewAster(params NewAsterParams) (Aster, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}

	if err := deps.Validate(); err != nil {
		return nil, err
	}

	return &realAster{
		deps:         deps,
		newWalker:    walker.New,
		newExtractor: extractor.New,
	}, nil
}

// VerbosePrint logs a formatted message using the current logger.
func (a *realAster) VerbosePrint(msg string, args ...interface{}) {
	a.deps.Logger.Logf(msg, args...)
}

// SetLogger sets the logger for this Aster instance.
func (a *realAster) SetLogger(logger logger.Logger) {
	a.deps.Logger = logger
}

// getConfig gets the configuration from the config manager with fallback.
func (a *realAster) getConfig() (config.Config, error) {
	return a.deps.Config.GetConfigWithFallback()
}

// loadIndex loads the snapshot saved by the last indexing run.
func (a *realAster) loadIndex() (*index.ResourceIndex, error) {
	a.VerbosePrint("Loading index from %s", a.deps.Cache.Path())
	return a.deps.Cache.Load()
}

// executeWithHooks executes an operation with pre and post hooks.
// The operation result is exposed to post-hooks under the "result" key.
func executeWithHooks[T any](
	a *realAster, operationName string, params map[string]interface{}, operation func() (T, error),
) (T, error) {
	ctx := hooks.NewHookContext(operationName, params)

	var zero T
	if err := a.deps.HookManager.ExecutePreHooks(operationName, ctx); err != nil {
		return zero, err
	}

	var result T
	var resultErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				resultErr = fmt.Errorf("panic in %s: %v", operationName, r)
			}
		}()
		result, resultErr = operation()
	}()

	ctx.Error = resultErr
	ctx.Results["result"] = result
	if resultErr == nil {
		ctx.Results["success"] = true
	}

	if hookErr := a.executeHooks(operationName, ctx, resultErr); hookErr != nil {
		return zero, hookErr
	}
	return result, resultErr
}

// executeHooks executes post-hooks or error-hooks based on the operation result.
func (a *realAster) executeHooks(operationName string, ctx *hooks.HookContext, resultErr error) error {
	if resultErr != nil {
		return a.deps.HookManager.ExecuteErrorHooks(operationName, ctx)
	}
	return a.deps.HookManager.ExecutePostHooks(operationName, ctx)
}
