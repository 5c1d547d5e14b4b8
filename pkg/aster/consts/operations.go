// Package consts provides operation name constants for the hook system.
package consts

// Operation names for the hook system.
const (
	// Indexing operations.
	Index = "Index"

	// Query operations.
	Counts     = "Counts"
	ListUnused = "ListUnused"

	// Editing operations.
	RemoveUnused = "RemoveUnused"

	// Initialization operations.
	Init = "Init"
)

// All lists every operation name, for registering hooks on each of them.
var All = []string{Index, Counts, ListUnused, RemoveUnused, Init}
