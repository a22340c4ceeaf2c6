package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocknest/stocknest_app/internal/apperrors"
	"github.com/stocknest/stocknest_app/internal/core/domain"
	"github.com/stocknest/stocknest_app/internal/dto"
)

func txnRequest(amount int64, items ...dto.TransactionItemInput) dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Type:        domain.Income,
		Amount:      decimal.NewFromInt(amount),
		Date:        time.Now().UTC(),
		PaymentMode: "cash",
		Items:       items,
	}
}

func TestCreateAndListTransactions(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()
	svc := env.container.Transaction

	first, err := svc.CreateTransaction(ctx, "b1", txnRequest(100))
	require.NoError(t, err)
	_, err = svc.CreateTransaction(ctx, "b1", txnRequest(200))
	require.NoError(t, err)

	txns, err := svc.GetTransactions(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, first.TransactionID, txns[1].TransactionID, "ledger reads newest first")

	other, err := svc.GetTransactions(ctx, "b2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestCreateTransactionRejectsNegativeAmount(t *testing.T) {
	env := newTestEnv(t, false)

	req := txnRequest(0)
	req.Amount = decimal.NewFromInt(-5)

	_, err := env.container.Transaction.CreateTransaction(context.Background(), "b1", req)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUpdateTransactionMergesFields(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()
	svc := env.container.Transaction

	created, err := svc.CreateTransaction(ctx, "b1", txnRequest(100))
	require.NoError(t, err)

	notes := "corrected entry"
	updated, err := svc.UpdateTransaction(ctx, created.TransactionID, dto.UpdateTransactionRequest{Notes: &notes})
	require.NoError(t, err)

	assert.Equal(t, "corrected entry", updated.Notes)
	assert.True(t, updated.Amount.Equal(decimal.NewFromInt(100)), "unspecified fields keep their values")
	assert.Equal(t, domain.Income, updated.Type)
}

func TestUpdateAndDeleteMissingTransaction(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()
	svc := env.container.Transaction

	notes := "ghost"
	_, err := svc.UpdateTransaction(ctx, "missing", dto.UpdateTransactionRequest{Notes: &notes})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.ErrorIs(t, svc.DeleteTransaction(ctx, "missing"), apperrors.ErrNotFound)
}

func TestTransactionItemsAreIndependentOfInventory(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()
	svc := env.container.Transaction

	item, err := env.inventory.CreateItem(ctx, "b1", itemRequest("Widget", 5))
	require.NoError(t, err)

	created, err := svc.CreateTransaction(ctx, "b1",
		txnRequest(100, dto.TransactionItemInput{ItemID: item.ItemID, Quantity: 2}))
	require.NoError(t, err)

	// Deleting the referenced item leaves the ledger entry untouched.
	require.NoError(t, env.inventory.DeleteItem(ctx, item.ItemID))

	got, err := svc.GetTransactionByID(ctx, created.TransactionID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, item.ItemID, got.Items[0].ItemID)
	assert.Equal(t, int64(2), got.Items[0].Quantity)
}

func TestTransactionAcceptsUnknownItemReference(t *testing.T) {
	env := newTestEnv(t, false)

	created, err := env.container.Transaction.CreateTransaction(context.Background(), "b1",
		txnRequest(50, dto.TransactionItemInput{ItemID: "never-existed", Quantity: 1}))
	require.NoError(t, err)
	assert.Equal(t, "never-existed", created.Items[0].ItemID)
}
