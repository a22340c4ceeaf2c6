package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocknest/stocknest_app/internal/apperrors"
	"github.com/stocknest/stocknest_app/internal/core/domain"
)

func newTxn(id, boardID string) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		BoardID:       boardID,
		Type:          domain.Income,
		Amount:        decimal.NewFromInt(10),
		Date:          time.Now(),
		CreatedAt:     time.Now(),
	}
}

func TestSaveTransactionPrepends(t *testing.T) {
	repo := NewTransactionRepository(nil)
	ctx := context.Background()

	require.NoError(t, repo.SaveTransaction(ctx, newTxn("t1", "b1")))
	require.NoError(t, repo.SaveTransaction(ctx, newTxn("t2", "b1")))

	txns, err := repo.ListTransactions(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, "t2", txns[0].TransactionID, "newest entry should come first")
}

func TestListTransactionsFiltersByBoard(t *testing.T) {
	repo := NewTransactionRepository(nil)
	ctx := context.Background()

	require.NoError(t, repo.SaveTransaction(ctx, newTxn("t1", "b1")))
	require.NoError(t, repo.SaveTransaction(ctx, newTxn("t2", "b2")))

	txns, err := repo.ListTransactions(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "t1", txns[0].TransactionID)
}

func TestUpdateMissingTransactionFails(t *testing.T) {
	repo := NewTransactionRepository(nil)

	err := repo.UpdateTransaction(context.Background(), newTxn("missing", "b1"))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteMissingTransactionFails(t *testing.T) {
	repo := NewTransactionRepository(nil)

	err := repo.DeleteTransaction(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteRemovesEntry(t *testing.T) {
	repo := NewTransactionRepository(nil)
	ctx := context.Background()

	require.NoError(t, repo.SaveTransaction(ctx, newTxn("t1", "b1")))
	require.NoError(t, repo.DeleteTransaction(ctx, "t1"))

	_, err := repo.FindTransactionByID(ctx, "t1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSeedTransactionsPopulateDemoBoard(t *testing.T) {
	repo := NewTransactionRepository(SeedTransactions())

	txns, err := repo.ListTransactions(context.Background(), "demo")
	require.NoError(t, err)
	assert.NotEmpty(t, txns)
}
