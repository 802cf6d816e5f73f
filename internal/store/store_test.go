package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shloka-app/shloka-server/internal/catalog"
)

// setupTestStore creates a temporary store for testing
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "shloka-test-*")
	require.NoError(t, err)

	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := New(dbPath, nil)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		store.Close()
		os.RemoveAll(tmpDir)
	}

	return store, cleanup
}

// seedDefault seeds the shipped catalog and fails the test on any error.
func seedDefault(t *testing.T, s *Store) {
	t.Helper()

	seeded, err := s.SeedCatalog(context.Background(), catalog.Default())
	require.NoError(t, err)
	require.True(t, seeded)
}
