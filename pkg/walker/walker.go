// Package walker enumerates the files of a directory tree and extracts their facts concurrently.
package walker

import (
	"fmt"
	iofs "io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bmatcuk/doublestar"
	"github.com/lerenn/aster/pkg/index"
	"github.com/lerenn/aster/pkg/logger"
	"golang.org/x/sync/errgroup"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=walker.go -destination=mocks/walker.gen.go -package=mocks

// ExtractFunc extracts the record of one file.
type ExtractFunc func(path string) (index.FileRecord, error)

// Options configures one walk.
type Options struct {
	// Root is the directory to walk.
	Root string
	// Patterns selects the files to extract.
	Patterns []string
	// Excludes lists the paths to skip. Excluded directories are not descended into.
	// Entries matched by the .gitignore and .ignore files of the tree are skipped too.
	Excludes []string
	// Workers bounds the number of concurrent extractions. Zero or less means one per CPU.
	Workers int
}

// Walker walks directory trees.
type Walker interface {
	// Walk extracts every file under opts.Root selected by opts.Patterns and returns
	// the records once all extractions are done. Files that fail extraction are
	// reported through the logger and left out.
	Walk(opts Options, extract ExtractFunc) ([]index.FileRecord, error)
}

type realWalker struct {
	logger logger.Logger
}

// New creates a Walker reporting skipped files through logger.
func New(logger logger.Logger) Walker {
	return &realWalker{logger: logger}
}

// Walk implements Walker.
func (w *realWalker) Walk(opts Options, extract ExtractFunc) ([]index.FileRecord, error) {
	opts.Root = filepath.Clean(opts.Root)
	if err := validateRoot(opts.Root); err != nil {
		return nil, err
	}
	for _, pattern := range append(append([]string(nil), opts.Patterns...), opts.Excludes...) {
		if err := validatePattern(pattern); err != nil {
			return nil, err
		}
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan index.FileRecord)
	done := make(chan []index.FileRecord)

	go func() {
		var records []index.FileRecord
		for record := range results {
			records = append(records, record)
		}
		done <- records
	}()

	var g errgroup.Group
	g.SetLimit(workers)

	rules := newIgnoreRules(opts.Root)
	walkErr := filepath.WalkDir(opts.Root, func(p string, d iofs.DirEntry, err error) error {
		if err != nil {
			if p == opts.Root {
				return fmt.Errorf("%w: %s: %w", ErrInvalidRoot, p, err)
			}
			w.logger.Warnf("skipping %s: %v", p, err)
			return nil
		}
		if p == opts.Root {
			w.loadIgnoreFiles(rules, p)
			return nil
		}

		rel, err := filepath.Rel(opts.Root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if strings.HasPrefix(d.Name(), ".") || matchAny(opts.Excludes, rel, d.Name()) ||
			rules.ignored(p, d.IsDir()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			w.loadIgnoreFiles(rules, p)
			return nil
		}

		if !d.Type().IsRegular() || !matchAny(opts.Patterns, rel, d.Name()) {
			return nil
		}

		// Blocks while all workers are busy
		g.Go(func() error {
			record, err := extract(p)
			if err != nil {
				w.logger.Warnf("skipping %s: %v", p, err)
				return nil
			}
			results <- record
			return nil
		})

		return nil
	})

	// Workers never return errors, extraction failures are only logged
	_ = g.Wait()
	close(results)
	records := <-done

	if walkErr != nil {
		return nil, walkErr
	}

	return records, nil
}

// loadIgnoreFiles reads the ignore files of dir. An unreadable one is reported and
// the directory is walked without it.
func (w *realWalker) loadIgnoreFiles(rules *ignoreRules, dir string) {
	if err := rules.load(dir); err != nil {
		w.logger.Warnf("ignoring ignore files of %s: %v", dir, err)
	}
}

func validateRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidRoot, root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s: not a directory", ErrInvalidRoot, root)
	}
	return nil
}

func validatePattern(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("%w: empty pattern", ErrInvalidPattern)
	}
	// doublestar reports syntax errors lazily, path.Match checks the whole pattern
	if _, err := path.Match(pattern, ""); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidPattern, pattern, err)
	}
	if _, err := doublestar.Match(pattern, pattern); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidPattern, pattern, err)
	}
	return nil
}

// matchAny reports whether one of patterns matches. Patterns holding a slash are
// matched against the relative path, the others against the base name.
func matchAny(patterns []string, rel, name string) bool {
	for _, pattern := range patterns {
		target := name
		if strings.Contains(pattern, "/") {
			target = rel
		}
		if ok, err := doublestar.Match(pattern, target); err == nil && ok {
			return true
		}
	}
	return false
}
