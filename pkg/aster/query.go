package aster

import (
	"strings"

	"github.com/lerenn/aster/pkg/aster/consts"
	"github.com/lerenn/aster/pkg/index"
)

// Counts holds the identifier counts of a snapshot.
type Counts struct {
	Defined int
	Used    int
	// Unused excludes denylisted identifiers.
	Unused int
}

// UnusedString is an unused identifier with the files declaring it.
type UnusedString struct {
	ID        string
	Locations []string
}

// Counts reports the number of defined, used and unused strings of the snapshot.
func (a *realAster) Counts() (*Counts, error) {
	return executeWithHooks(a, consts.Counts, nil, a.performCounts)
}

func (a *realAster) performCounts() (*Counts, error) {
	idx, err := a.loadIndex()
	if err != nil {
		return nil, err
	}

	unused, err := a.filteredUnused(idx, "")
	if err != nil {
		return nil, err
	}

	return &Counts{
		Defined: idx.DefinedIDs().Len(),
		Used:    idx.UsedIDs().Len(),
		Unused:  len(unused),
	}, nil
}

// ListUnused lists the unused strings of the snapshot in lexicographic order.
func (a *realAster) ListUnused() ([]UnusedString, error) {
	return executeWithHooks(a, consts.ListUnused, nil, a.performListUnused)
}

func (a *realAster) performListUnused() ([]UnusedString, error) {
	idx, err := a.loadIndex()
	if err != nil {
		return nil, err
	}

	ids, err := a.filteredUnused(idx, "")
	if err != nil {
		return nil, err
	}

	definitions := idx.Definitions()
	unused := make([]UnusedString, 0, len(ids))
	for _, id := range ids {
		unused = append(unused, UnusedString{ID: id, Locations: definitions.Get(id)})
	}

	return unused, nil
}

// filteredUnused returns the sorted unused identifiers starting with prefix that the
// configured denylist allows.
func (a *realAster) filteredUnused(idx *index.ResourceIndex, prefix string) ([]string, error) {
	cfg, err := a.getConfig()
	if err != nil {
		return nil, err
	}

	denylist := index.Denylist(cfg.Denylist)
	var ids []string
	for _, id := range denylist.Filter(idx.UnusedIDs()).Sorted() {
		if strings.HasPrefix(id, prefix) {
			ids = append(ids, id)
		}
	}

	return ids, nil
}
