package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocknest/stocknest_app/internal/core/domain"
)

func TestAddValueIsIdempotent(t *testing.T) {
	repo := NewVocabularyRepository(NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.AddValue(ctx, "b1", domain.VocabCategory, "Tools"))
	require.NoError(t, repo.AddValue(ctx, "b1", domain.VocabCategory, "Tools"))

	values, err := repo.ListValues(ctx, "b1", domain.VocabCategory)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tools"}, values)
}

func TestValuesPreserveInsertionOrder(t *testing.T) {
	repo := NewVocabularyRepository(NewTestDB(t))
	ctx := context.Background()

	for _, v := range []string{"Zulu", "Alpha", "Mike"} {
		require.NoError(t, repo.AddValue(ctx, "b1", domain.VocabLabel, v))
	}

	values, err := repo.ListValues(ctx, "b1", domain.VocabLabel)
	require.NoError(t, err)
	assert.Equal(t, []string{"Zulu", "Alpha", "Mike"}, values)
}

func TestRemoveAbsentValueIsNoOp(t *testing.T) {
	repo := NewVocabularyRepository(NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.RemoveValue(ctx, "b1", domain.VocabCategory, "Ghost"))

	values, err := repo.ListValues(ctx, "b1", domain.VocabCategory)
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestRemoveValue(t *testing.T) {
	repo := NewVocabularyRepository(NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.AddValue(ctx, "b1", domain.VocabPaidTo, "Acme Supplies"))
	require.NoError(t, repo.RemoveValue(ctx, "b1", domain.VocabPaidTo, "Acme Supplies"))

	values, err := repo.ListValues(ctx, "b1", domain.VocabPaidTo)
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestVocabulariesAreBoardAndKindScoped(t *testing.T) {
	repo := NewVocabularyRepository(NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.AddValue(ctx, "b1", domain.VocabCategory, "Tools"))
	require.NoError(t, repo.AddValue(ctx, "b2", domain.VocabCategory, "Plants"))
	require.NoError(t, repo.AddValue(ctx, "b1", domain.VocabLabel, "Tools"))

	values, err := repo.ListValues(ctx, "b1", domain.VocabCategory)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tools"}, values)

	values, err = repo.ListValues(ctx, "b2", domain.VocabCategory)
	require.NoError(t, err)
	assert.Equal(t, []string{"Plants"}, values)
}
