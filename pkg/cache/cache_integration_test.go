//go:build integration

package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/aster/pkg/fs"
	"github.com/lerenn/aster/pkg/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RoundTripOnDisk(t *testing.T) {
	cacheDir := filepath.Join(t.TempDir(), "nested", "aster")
	store := NewStore(fs.NewFS(), cacheDir)

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	first := index.New([]index.FileRecord{{Path: "a.xml", Declared: []string{"a"}}})
	second := index.New([]index.FileRecord{{Path: "b.xml", Declared: []string{"b"}}})
	require.NoError(t, store.Save(first))
	require.NoError(t, store.Save(second))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, second.Files(), loaded.Files())

	_, err = os.Stat(filepath.Join(cacheDir, SnapshotFileName))
	assert.NoError(t, err)
}
