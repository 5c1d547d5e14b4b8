// Package index holds the cross-reference between string resource declarations and their usages.
package index

// FileRecord holds the facts extracted from one scanned file.
// Fields are exported so the snapshot encoder can serialize them.
type FileRecord struct {
	// Path is the path of the scanned file.
	Path string
	// Declared lists each identifier declared in the file, one entry per occurrence.
	Declared []string
	// Referenced lists each identifier referenced by the file, one entry per occurrence.
	Referenced []string
}
