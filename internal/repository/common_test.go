package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tabrez-nitr/doit/internal/storage/sqlite"
)

func setupTestStore(t *testing.T) sqlite.Store {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "doit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}
