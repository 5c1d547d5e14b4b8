package cache

import "errors"

// Error definitions for cache package.
var (
	ErrCacheDirUncreatable = errors.New("cache directory cannot be created")
	ErrSnapshotEncode      = errors.New("failed to encode snapshot")
	ErrSnapshotWrite       = errors.New("failed to write snapshot")
	ErrSnapshotRead        = errors.New("failed to read snapshot")
	ErrSnapshotNotFound    = errors.New("snapshot not found")
	ErrSnapshotDecode      = errors.New("failed to decode snapshot")
)
