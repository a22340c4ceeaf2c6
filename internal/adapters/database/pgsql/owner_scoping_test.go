package pgsql

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocknest/stocknest_app/internal/apperrors"
	"github.com/stocknest/stocknest_app/internal/core/domain"
	"github.com/stocknest/stocknest_app/internal/middleware"
	"github.com/stocknest/stocknest_app/pkg/database"
)

// testPoolEnv names the connection string for the integration tests below.
// They exercise a real PostgreSQL instance and are skipped when it is unset.
const testPoolEnv = "STOCKNEST_TEST_DATABASE_URL"

const testSchema = `
CREATE TABLE IF NOT EXISTS inventory_items (
    item_id     TEXT PRIMARY KEY,
    owner_id    TEXT NOT NULL DEFAULT '',
    board_id    TEXT NOT NULL,
    name        TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    category    TEXT NOT NULL DEFAULT '',
    label       TEXT NOT NULL DEFAULT '',
    paid_to     TEXT NOT NULL DEFAULT '',
    price       NUMERIC(19, 4) NOT NULL DEFAULT 0,
    cost_price  NUMERIC(19, 4) NOT NULL DEFAULT 0,
    quantity    BIGINT NOT NULL DEFAULT 0,
    image_ids   TEXT[] NOT NULL DEFAULT '{}',
    created_at  TIMESTAMPTZ NOT NULL,
    updated_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS item_media (
    image_id     TEXT PRIMARY KEY,
    owner_id     TEXT NOT NULL DEFAULT '',
    board_id     TEXT NOT NULL,
    url          TEXT NOT NULL,
    storage_path TEXT NOT NULL DEFAULT '',
    description  TEXT NOT NULL DEFAULT '',
    created_at   TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
    transaction_id TEXT PRIMARY KEY,
    owner_id       TEXT NOT NULL DEFAULT '',
    board_id       TEXT NOT NULL,
    type           TEXT NOT NULL CHECK (type IN ('income', 'expense')),
    amount         NUMERIC(19, 4) NOT NULL,
    date           TIMESTAMPTZ NOT NULL,
    payment_mode   TEXT NOT NULL DEFAULT '',
    reference      TEXT NOT NULL DEFAULT '',
    notes          TEXT NOT NULL DEFAULT '',
    created_at     TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS transaction_items (
    transaction_id TEXT NOT NULL REFERENCES transactions (transaction_id) ON DELETE CASCADE,
    position       BIGINT NOT NULL,
    item_id        TEXT NOT NULL,
    quantity       BIGINT NOT NULL,
    PRIMARY KEY (transaction_id, position)
);
`

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv(testPoolEnv)
	if url == "" {
		t.Skipf("%s not set, skipping PostgreSQL integration test", testPoolEnv)
	}

	ctx := context.Background()
	pool, err := database.NewPgxPool(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, testSchema)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `TRUNCATE inventory_items, item_media, transactions, transaction_items;`)
	require.NoError(t, err)

	return pool
}

func ownerCtx(userID string) context.Context {
	return middleware.WithUserID(context.Background(), userID)
}

func TestItemQueriesScopedByOwner(t *testing.T) {
	repo := NewInventoryRepository(testPool(t))
	ctxA := ownerCtx("user-a")
	ctxB := ownerCtx("user-b")

	now := time.Now().UTC().Truncate(time.Second)
	item := domain.InventoryItem{
		ItemID:    "item-1",
		BoardID:   "b1",
		Name:      "Widget",
		Price:     decimal.RequireFromString("100.50"),
		CostPrice: decimal.RequireFromString("60.25"),
		Quantity:  3,
		ImageIDs:  []string{"img-1"},
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	require.NoError(t, repo.SaveItem(ctxA, item))

	// Another account cannot read, rewrite, or remove the row by id.
	_, err := repo.FindItemByID(ctxB, "item-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	hijack := item
	hijack.Name = "Hijacked"
	assert.ErrorIs(t, repo.UpdateItem(ctxB, hijack), apperrors.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteItem(ctxB, "item-1"), apperrors.ErrNotFound)

	// The owner still sees the original row.
	got, err := repo.FindItemByID(ctxA, "item-1")
	require.NoError(t, err)
	assert.Equal(t, "Widget", got.Name)
}

func TestImageQueriesScopedByOwner(t *testing.T) {
	repo := NewImageRepository(testPool(t))
	ctxA := ownerCtx("user-a")
	ctxB := ownerCtx("user-b")

	img := domain.Image{
		ImageID:     "img-1",
		BoardID:     "b1",
		URL:         "data:image/png;base64,xyz",
		StoragePath: "b1/photo.png",
		Description: "photo.png",
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, repo.SaveImage(ctxA, img))

	_, err := repo.FindImageByID(ctxB, "img-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	hijack := img
	hijack.Description = "hijacked"
	assert.ErrorIs(t, repo.UpdateImage(ctxB, hijack), apperrors.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteImage(ctxB, "img-1"), apperrors.ErrNotFound)

	got, err := repo.FindImageByID(ctxA, "img-1")
	require.NoError(t, err)
	assert.Equal(t, "photo.png", got.Description)
}

func TestTransactionQueriesScopedByOwner(t *testing.T) {
	repo := NewTransactionRepository(testPool(t))
	ctxA := ownerCtx("user-a")
	ctxB := ownerCtx("user-b")

	now := time.Now().UTC().Truncate(time.Second)
	txn := domain.Transaction{
		TransactionID: "txn-1",
		BoardID:       "b1",
		Type:          domain.Income,
		Amount:        decimal.RequireFromString("250.00"),
		Date:          now,
		PaymentMode:   "cash",
		Items:         []domain.TransactionItem{{ItemID: "item-1", Quantity: 2}},
		CreatedAt:     now,
	}
	require.NoError(t, repo.SaveTransaction(ctxA, txn))

	_, err := repo.FindTransactionByID(ctxB, "txn-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	hijack := txn
	hijack.Notes = "hijacked"
	assert.ErrorIs(t, repo.UpdateTransaction(ctxB, hijack), apperrors.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteTransaction(ctxB, "txn-1"), apperrors.ErrNotFound)

	got, err := repo.FindTransactionByID(ctxA, "txn-1")
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)
}
