package aster

import (
	"errors"
	"fmt"

	"github.com/lerenn/aster/pkg/aster/consts"
	"github.com/lerenn/aster/pkg/xmledit"
)

// RemoveUnusedOpts contains optional parameters for RemoveUnused.
type RemoveUnusedOpts struct {
	// Prefix restricts removal to identifiers starting with it.
	Prefix string
	// Yes skips the confirmation prompt.
	Yes bool
}

// Removal is one element removed from a resource file.
type Removal struct {
	ID   string
	Path string
}

// RemoveResult describes a removal run.
type RemoveResult struct {
	Candidates []string
	Removed    []Removal
	Cancelled  bool
}

// RemoveUnused removes the declarations of unused strings from their resource files.
// A failure on one file does not stop the others; all failures are returned joined.
func (a *realAster) RemoveUnused(opts RemoveUnusedOpts) (*RemoveResult, error) {
	params := map[string]interface{}{
		"prefix": opts.Prefix,
		"yes":    opts.Yes,
	}

	return executeWithHooks(a, consts.RemoveUnused, params, func() (*RemoveResult, error) {
		return a.performRemoveUnused(opts)
	})
}

func (a *realAster) performRemoveUnused(opts RemoveUnusedOpts) (*RemoveResult, error) {
	idx, err := a.loadIndex()
	if err != nil {
		return nil, err
	}

	ids, err := a.filteredUnused(idx, opts.Prefix)
	if err != nil {
		return nil, err
	}

	result := &RemoveResult{Candidates: ids}
	if len(ids) == 0 {
		a.VerbosePrint("No unused strings to remove")
		return result, nil
	}

	if !opts.Yes {
		confirmed, err := a.deps.Prompt.PromptForConfirmation(
			fmt.Sprintf("Remove %d unused strings?", len(ids)), false)
		if err != nil {
			return nil, err
		}
		if !confirmed {
			result.Cancelled = true
			return result, nil
		}
	}

	definitions := idx.Definitions()
	var errs []error
	for _, id := range ids {
		matcher := xmledit.ForLocalName("string").Attr("name", id)

		// A path listed twice declares the identifier twice, each call removes one element
		for _, path := range definitions.Get(id) {
			removed, err := a.deps.Editor.RemoveElement(path, matcher)
			if err != nil {
				a.deps.Logger.Warnf("failed to remove %s: %v", id, err)
				errs = append(errs, fmt.Errorf("%s: %w", id, err))
				continue
			}
			if !removed {
				a.VerbosePrint("%s not found in %s, snapshot may be stale", id, path)
				continue
			}

			a.VerbosePrint("Removed %s from %s", id, path)
			result.Removed = append(result.Removed, Removal{ID: id, Path: path})
		}
	}

	return result, errors.Join(errs...)
}
