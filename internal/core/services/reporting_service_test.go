package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocknest/stocknest_app/internal/dto"
)

func TestBoardSummaryAggregates(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	_, err := env.container.Transaction.CreateTransaction(ctx, "b1", txnRequest(1000))
	require.NoError(t, err)

	expense := txnRequest(300)
	expense.Type = "expense"
	_, err = env.container.Transaction.CreateTransaction(ctx, "b1", expense)
	require.NoError(t, err)

	// 20 in stock at 19.99, 3 in stock (low), 0 in stock (out).
	_, err = env.inventory.CreateItem(ctx, "b1", itemRequest("Plenty", 20))
	require.NoError(t, err)
	_, err = env.inventory.CreateItem(ctx, "b1", itemRequest("Scarce", 3))
	require.NoError(t, err)
	_, err = env.inventory.CreateItem(ctx, "b1", itemRequest("Gone", 0))
	require.NoError(t, err)

	summary, err := env.container.Reporting.GetBoardSummary(ctx, "b1")
	require.NoError(t, err)

	assert.True(t, summary.IncomeTotal.Equal(decimal.NewFromInt(1000)))
	assert.True(t, summary.ExpenseTotal.Equal(decimal.NewFromInt(300)))
	assert.True(t, summary.Net.Equal(decimal.NewFromInt(700)))

	wantValue := decimal.NewFromFloat(19.99).Mul(decimal.NewFromInt(23))
	assert.True(t, summary.InventoryValue.Equal(wantValue), "inventory value is price times quantity")
	wantCost := decimal.NewFromFloat(7.50).Mul(decimal.NewFromInt(23))
	assert.True(t, summary.InventoryCost.Equal(wantCost))

	assert.Equal(t, 3, summary.ItemCount)
	assert.Equal(t, 1, summary.LowStockCount)
	assert.Equal(t, 1, summary.OutOfStockCount)
}

func TestBoardSummaryEmptyBoard(t *testing.T) {
	env := newTestEnv(t, false)

	summary, err := env.container.Reporting.GetBoardSummary(context.Background(), "empty")
	require.NoError(t, err)

	assert.True(t, summary.Net.IsZero())
	assert.Zero(t, summary.ItemCount)
}

// fakeSummaryCache records lookups and returns a canned summary once primed.
type fakeSummaryCache struct {
	stored map[string]dto.BoardSummaryResponse
	sets   int
}

func (f *fakeSummaryCache) GetSummary(_ context.Context, boardID string, out any) bool {
	summary, ok := f.stored[boardID]
	if !ok {
		return false
	}
	*out.(*dto.BoardSummaryResponse) = summary
	return true
}

func (f *fakeSummaryCache) SetSummary(_ context.Context, boardID string, value any) {
	f.sets++
	f.stored[boardID] = value.(dto.BoardSummaryResponse)
}

func (f *fakeSummaryCache) InvalidateSummary(_ context.Context, boardID string) {
	delete(f.stored, boardID)
}

func TestBoardSummaryUsesCache(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	fake := &fakeSummaryCache{stored: map[string]dto.BoardSummaryResponse{}}
	svc := NewReportingService(env.repos.TransactionRepo, env.repos.InventoryRepo, fake)

	_, err := svc.GetBoardSummary(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, 1, fake.sets, "miss computes and stores")

	_, err = svc.GetBoardSummary(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, 1, fake.sets, "hit skips recomputation")
}
