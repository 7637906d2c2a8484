// Package storagetest opens throwaway SQLite storage for tests.
package storagetest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// Config returns a config rooted in a fresh temp directory.
func Config(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		DBPath:    filepath.Join(dir, "data", "finance.db"),
		PhotoDir:  filepath.Join(dir, "data", "photos"),
		ChartDir:  filepath.Join(dir, "data", "charts"),
		LogLevel:  "error",
		LogFormat: "text",
	}
}

// Open returns migrated storage that is closed when the test ends.
func Open(t *testing.T) *storage.Storage {
	t.Helper()
	store, err := storage.Open(context.Background(), Config(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// Write runs fn inside a committed writer.
func Write(t *testing.T, store *storage.Storage, fn func(w *storage.Writer)) {
	t.Helper()
	w, err := store.Write(context.Background())
	require.NoError(t, err)
	fn(w)
	require.NoError(t, w.Commit())
}
