package aster

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/lerenn/aster/pkg/aster/consts"
	"github.com/lerenn/aster/pkg/extractor"
	"github.com/lerenn/aster/pkg/index"
	"github.com/lerenn/aster/pkg/walker"
)

// IndexOpts contains the roots to index.
type IndexOpts struct {
	// SourceRoot holds the Java and Kotlin sources.
	SourceRoot string
	// ResRoot holds the resource files.
	ResRoot string
	// ManifestRoot holds the manifest files. Defaults to ResRoot.
	ManifestRoot string
}

// WalkSummary describes one walk of an indexing run.
type WalkSummary struct {
	Kind     string
	Root     string
	Files    int
	Duration time.Duration
}

// IndexResult describes an indexing run.
type IndexResult struct {
	Walks        []WalkSummary
	Defined      int
	Used         int
	SnapshotPath string
}

// Walk kinds.
const (
	KindResource = "xml"
	KindSource   = "source"
	KindManifest = "manifest"
)

type walkSpec struct {
	kind     string
	root     string
	patterns []string
	extract  walker.ExtractFunc
}

// Index walks the resource, source and manifest roots one after the other and saves the result.
func (a *realAster) Index(opts IndexOpts) (*IndexResult, error) {
	params := map[string]interface{}{
		"sourceRoot":   opts.SourceRoot,
		"resRoot":      opts.ResRoot,
		"manifestRoot": opts.ManifestRoot,
	}

	return executeWithHooks(a, consts.Index, params, func() (*IndexResult, error) {
		return a.performIndex(opts)
	})
}

func (a *realAster) performIndex(opts IndexOpts) (*IndexResult, error) {
	if opts.SourceRoot == "" {
		return nil, fmt.Errorf("%w: source root is required", ErrMissingRoot)
	}
	if opts.ResRoot == "" {
		return nil, fmt.Errorf("%w: resource root is required", ErrMissingRoot)
	}

	cfg, err := a.getConfig()
	if err != nil {
		return nil, err
	}

	w := a.newWalker(a.deps.Logger)
	ext := a.newExtractor(a.deps.FS)

	specs := []walkSpec{
		{kind: KindResource, root: opts.ResRoot, patterns: extractor.ResourcePatterns, extract: ext.ExtractXML},
		{kind: KindSource, root: opts.SourceRoot, patterns: extractor.SourcePatterns, extract: ext.ExtractSource},
	}

	// Manifests under the resource root are already covered by the resource walk
	manifestRoot := opts.ManifestRoot
	if manifestRoot == "" {
		manifestRoot = opts.ResRoot
	}
	if filepath.Clean(manifestRoot) != filepath.Clean(opts.ResRoot) {
		specs = append(specs, walkSpec{
			kind: KindManifest, root: manifestRoot, patterns: extractor.ManifestPatterns, extract: ext.ExtractXML,
		})
	} else {
		a.VerbosePrint("Manifest root is the resource root, skipping manifest walk")
	}

	result := &IndexResult{}
	lists := make([][]index.FileRecord, 0, len(specs))
	for _, spec := range specs {
		start := time.Now()
		records, err := w.Walk(walker.Options{
			Root:     spec.root,
			Patterns: spec.patterns,
			Excludes: cfg.Excludes,
			Workers:  cfg.Workers,
		}, spec.extract)
		if err != nil {
			return nil, err
		}

		summary := WalkSummary{Kind: spec.kind, Root: spec.root, Files: len(records), Duration: time.Since(start)}
		a.VerbosePrint("Indexed %d %s files in %s", summary.Files, summary.Kind, summary.Duration.Round(time.Millisecond))

		result.Walks = append(result.Walks, summary)
		lists = append(lists, records)
	}

	idx := index.New(index.Merge(lists...))
	if err := a.deps.Cache.Save(idx); err != nil {
		return nil, err
	}
	a.VerbosePrint("Saved index to %s", a.deps.Cache.Path())

	result.Defined = idx.DefinedIDs().Len()
	result.Used = idx.UsedIDs().Len()
	result.SnapshotPath = a.deps.Cache.Path()

	return result, nil
}
