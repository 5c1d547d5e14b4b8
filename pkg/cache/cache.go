// Package cache persists resource indexes between runs.
package cache

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"path/filepath"

	"github.com/lerenn/aster/pkg/fs"
	"github.com/lerenn/aster/pkg/index"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=cache.go -destination=mocks/cache.gen.go -package=mocks

// SnapshotFileName is the name of the snapshot file inside the cache directory.
const SnapshotFileName = "res_cache.bin"

// Store saves and loads the snapshot of a resource index.
// Snapshots carry no fingerprint of the roots they were built from.
type Store interface {
	// Save writes the index over any previous snapshot.
	Save(idx *index.ResourceIndex) error
	// Load reads the last saved snapshot.
	Load() (*index.ResourceIndex, error)
	// Path returns the snapshot file path.
	Path() string
}

// snapshot is the encoded form of a resource index.
type snapshot struct {
	Files []index.FileRecord
}

type realStore struct {
	fs       fs.FS
	cacheDir string
}

// NewStore creates a Store keeping its snapshot in cacheDir.
func NewStore(fsys fs.FS, cacheDir string) Store {
	return &realStore{
		fs:       fsys,
		cacheDir: cacheDir,
	}
}

// Path returns the snapshot file path.
func (s *realStore) Path() string {
	return filepath.Join(s.cacheDir, SnapshotFileName)
}

// Save encodes the index records and writes them atomically.
func (s *realStore) Save(idx *index.ResourceIndex) error {
	if err := s.fs.MkdirAll(s.cacheDir, 0755); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCacheDirUncreatable, s.cacheDir, err)
	}

	var buffer bytes.Buffer
	if err := gob.NewEncoder(&buffer).Encode(snapshot{Files: idx.Files()}); err != nil {
		return fmt.Errorf("%w: %w", ErrSnapshotEncode, err)
	}

	if err := s.fs.WriteFileAtomic(s.Path(), buffer.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSnapshotWrite, s.Path(), err)
	}

	return nil
}

// Load decodes the snapshot into a new index.
func (s *realStore) Load() (*index.ResourceIndex, error) {
	data, err := s.fs.ReadFile(s.Path())
	if err != nil {
		if s.fs.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s, run 'aster index' first", ErrSnapshotNotFound, s.Path())
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrSnapshotRead, s.Path(), err)
	}

	var snap snapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&snap); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSnapshotDecode, s.Path(), err)
	}

	return index.New(snap.Files), nil
}
