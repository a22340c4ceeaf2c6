package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocknest/stocknest_app/internal/apperrors"
	"github.com/stocknest/stocknest_app/pkg/database"
)

func TestEnsureSchemaIdempotent(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, EnsureSchema(db))
	require.NoError(t, EnsureSchema(db))
}

func TestEnsureSchemaOnClosedDB(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	err = EnsureSchema(db)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStorageInit)
}
