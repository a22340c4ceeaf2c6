package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/stocknest/stocknest_app/internal/apperrors"
	"github.com/stocknest/stocknest_app/internal/core/domain"
	"github.com/stocknest/stocknest_app/internal/core/ports/repositories"
)

// InventoryRepository persists inventory items in the embedded database.
// Image ids are stored as a JSON array; money amounts as exact decimal text.
type InventoryRepository struct {
	db *sql.DB
}

func NewInventoryRepository(db *sql.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// Ensure InventoryRepository implements the port.
var _ repositories.InventoryRepository = (*InventoryRepository)(nil)

const itemColumns = `item_id, board_id, name, description, category, label, paid_to,
	price, cost_price, quantity, image_ids, created_at, updated_at`

func (r *InventoryRepository) SaveItem(ctx context.Context, item domain.InventoryItem) error {
	imageIDs, err := encodeImageIDs(item.ImageIDs)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, "encoding image ids", err)
	}

	query := `
        INSERT INTO inventory_items (` + itemColumns + `)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT (item_id) DO UPDATE SET
            board_id = excluded.board_id,
            name = excluded.name,
            description = excluded.description,
            category = excluded.category,
            label = excluded.label,
            paid_to = excluded.paid_to,
            price = excluded.price,
            cost_price = excluded.cost_price,
            quantity = excluded.quantity,
            image_ids = excluded.image_ids,
            updated_at = excluded.updated_at;
    `
	_, err = r.db.ExecContext(ctx, query,
		item.ItemID,
		item.BoardID,
		item.Name,
		item.Description,
		item.Category,
		item.Label,
		item.PaidTo,
		item.Price.String(),
		item.CostPrice.String(),
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

func (r *InventoryRepository) FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM inventory_items WHERE item_id = ?`, itemID)

	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrReadFailed, "finding item by id", err)
	}
	return item, nil
}

func (r *InventoryRepository) ListItems(ctx context.Context, boardID string) ([]domain.InventoryItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM inventory_items WHERE board_id = ? ORDER BY created_at DESC`, boardID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrReadFailed, "listing items", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

func (r *InventoryRepository) ListAllItems(ctx context.Context) ([]domain.InventoryItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM inventory_items ORDER BY created_at DESC`)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrReadFailed, "listing all items", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

func (r *InventoryRepository) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	imageIDs, err := encodeImageIDs(item.ImageIDs)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, "encoding image ids", err)
	}

	query := `
        UPDATE inventory_items
        SET name = ?, description = ?, category = ?, label = ?, paid_to = ?,
            price = ?, cost_price = ?, quantity = ?, image_ids = ?, updated_at = ?
        WHERE item_id = ?;
    `
	result, err := r.db.ExecContext(ctx, query,
		item.Name,
		item.Description,
		item.Category,
		item.Label,
		item.PaidTo,
		item.Price.String(),
		item.CostPrice.String(),
		item.Quantity,
		imageIDs,
		item.UpdatedAt,
		item.ItemID,
	)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, "updating item", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, "updating item", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *InventoryRepository) DeleteItem(ctx context.Context, itemID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM inventory_items WHERE item_id = ?`, itemID)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, "deleting item", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, "deleting item", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for the shared scan path.
type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	var price, costPrice, imageIDs string
	err := s.Scan(
		&item.ItemID,
		&item.BoardID,
		&item.Name,
		&item.Description,
		&item.Category,
		&item.Label,
		&item.PaidTo,
		&price,
		&costPrice,
		&item.Quantity,
		&imageIDs,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if item.Price, err = decimal.NewFromString(price); err != nil {
		return nil, fmt.Errorf("parsing price %q: %w", price, err)
	}
	if item.CostPrice, err = decimal.NewFromString(costPrice); err != nil {
		return nil, fmt.Errorf("parsing cost price %q: %w", costPrice, err)
	}
	if err := json.Unmarshal([]byte(imageIDs), &item.ImageIDs); err != nil {
		return nil, fmt.Errorf("parsing image ids: %w", err)
	}
	return &item, nil
}

func collectItems(rows *sql.Rows) ([]domain.InventoryItem, error) {
	items := []domain.InventoryItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrReadFailed, "scanning item row", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrReadFailed, "iterating item rows", err)
	}
	return items, nil
}

func encodeImageIDs(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	encoded, err := json.Marshal(ids)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
