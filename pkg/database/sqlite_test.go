package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocknest/stocknest_app/internal/apperrors"
)

func TestOpenSQLite(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.Ping())
}

func TestOpenSQLiteMissingDirectory(t *testing.T) {
	// The driver opens lazily, so a bad path surfaces on the first pragma.
	_, err := OpenSQLite(filepath.Join(t.TempDir(), "no-such-dir", "app.db"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStorageInit)
}
