// Package pgsql adapts the repository ports onto the hosted PostgreSQL
// persistence service. Rows carry an owner id taken from the request context
// so multiple accounts can share one database.
package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stocknest/stocknest_app/internal/apperrors"
	"github.com/stocknest/stocknest_app/internal/core/domain"
	"github.com/stocknest/stocknest_app/internal/core/ports/repositories"
	"github.com/stocknest/stocknest_app/internal/middleware"
)

// ownerFromCtx returns the authenticated user id. Every id-based query
// filters on it, so one account can never reach another account's rows.
func ownerFromCtx(ctx context.Context) string {
	owner, _ := middleware.GetUserIDFromCtx(ctx)
	return owner
}

type InventoryRepository struct {
	db *pgxpool.Pool
}

func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// Ensure InventoryRepository implements the port.
var _ repositories.InventoryRepository = (*InventoryRepository)(nil)

func (r *InventoryRepository) SaveItem(ctx context.Context, item domain.InventoryItem) error {
	query := `
        INSERT INTO inventory_items (item_id, owner_id, board_id, name, description, category, label, paid_to,
            price, cost_price, quantity, image_ids, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        ON CONFLICT (item_id) DO UPDATE SET
            board_id = EXCLUDED.board_id,
            name = EXCLUDED.name,
            description = EXCLUDED.description,
            category = EXCLUDED.category,
            label = EXCLUDED.label,
            paid_to = EXCLUDED.paid_to,
            price = EXCLUDED.price,
            cost_price = EXCLUDED.cost_price,
            quantity = EXCLUDED.quantity,
            image_ids = EXCLUDED.image_ids,
            updated_at = EXCLUDED.updated_at;
    `
	imageIDs := item.ImageIDs
	if imageIDs == nil {
		imageIDs = []string{}
	}
	_, err := r.db.Exec(ctx, query,
		item.ItemID,
		ownerFromCtx(ctx),
		item.BoardID,
		item.Name,
		item.Description,
		item.Category,
		item.Label,
		item.PaidTo,
		item.Price,
		item.CostPrice,
		item.Quantity,
		imageIDs,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, "saving item", err)
	}
	return nil
}

const itemSelect = `
        SELECT item_id, board_id, name, description, category, label, paid_to,
               price, cost_price, quantity, image_ids, created_at, updated_at
        FROM inventory_items`

func (r *InventoryRepository) FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	row := r.db.QueryRow(ctx, itemSelect+` WHERE item_id = $1 AND owner_id = $2;`,
		itemID, ownerFromCtx(ctx))

	item, err := scanItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrReadFailed, "finding item by id", err)
	}
	return item, nil
}

func (r *InventoryRepository) ListItems(ctx context.Context, boardID string) ([]domain.InventoryItem, error) {
	rows, err := r.db.Query(ctx,
		itemSelect+` WHERE board_id = $1 AND owner_id = $2 ORDER BY created_at DESC;`,
		boardID, ownerFromCtx(ctx))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrReadFailed, "listing items", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

func (r *InventoryRepository) ListAllItems(ctx context.Context) ([]domain.InventoryItem, error) {
	rows, err := r.db.Query(ctx, itemSelect+` ORDER BY created_at DESC;`)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrReadFailed, "listing all items", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

func (r *InventoryRepository) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	query := `
        UPDATE inventory_items
        SET name = $1, description = $2, category = $3, label = $4, paid_to = $5,
            price = $6, cost_price = $7, quantity = $8, image_ids = $9, updated_at = $10
        WHERE item_id = $11 AND owner_id = $12;
    `
	imageIDs := item.ImageIDs
	if imageIDs == nil {
		imageIDs = []string{}
	}
	cmdTag, err := r.db.Exec(ctx, query,
		item.Name,
		item.Description,
		item.Category,
		item.Label,
		item.PaidTo,
		item.Price,
		item.CostPrice,
		item.Quantity,
		imageIDs,
		item.UpdatedAt,
		item.ItemID,
		ownerFromCtx(ctx),
	)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, "updating item", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *InventoryRepository) DeleteItem(ctx context.Context, itemID string) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM inventory_items WHERE item_id = $1 AND owner_id = $2;`,
		itemID, ownerFromCtx(ctx))
	if err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, "deleting item", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanItem(row pgx.Row) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := row.Scan(
		&item.ItemID,
		&item.BoardID,
		&item.Name,
		&item.Description,
		&item.Category,
		&item.Label,
		&item.PaidTo,
		&item.Price,
		&item.CostPrice,
		&item.Quantity,
		&item.ImageIDs,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func collectItems(rows pgx.Rows) ([]domain.InventoryItem, error) {
	items := []domain.InventoryItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrReadFailed, "scanning item row", err)
		}
		items = append(items, *item)
	}
	if rows.Err() != nil {
		return nil, apperrors.Wrap(apperrors.ErrReadFailed, "iterating item rows", rows.Err())
	}
	return items, nil
}
