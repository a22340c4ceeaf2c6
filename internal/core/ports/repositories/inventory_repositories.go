package repositories

import (
	"context"

	"github.com/stocknest/stocknest_app/internal/core/domain"
)

// InventoryReader defines read operations for inventory item data.
type InventoryReader interface {
	// FindItemByID retrieves a specific item by its unique identifier.
	// Returns apperrors.ErrNotFound if no item has that id.
	FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error)

	// ListItems retrieves every item belonging to the given board.
	// An empty board yields an empty slice, not an error.
	ListItems(ctx context.Context, boardID string) ([]domain.InventoryItem, error)

	// ListAllItems retrieves every item across all boards. Used to rebuild
	// the in-memory image reverse index at startup.
	ListAllItems(ctx context.Context) ([]domain.InventoryItem, error)
}

// InventoryWriter defines write operations for inventory item data.
type InventoryWriter interface {
	// SaveItem persists an item, overwriting any existing record with the same id.
	SaveItem(ctx context.Context, item domain.InventoryItem) error

	// UpdateItem replaces an existing item's record.
	// Returns apperrors.ErrNotFound if no item has that id.
	UpdateItem(ctx context.Context, item domain.InventoryItem) error

	// DeleteItem removes an item record.
	// Returns apperrors.ErrNotFound if no item has that id.
	DeleteItem(ctx context.Context, itemID string) error
}

// InventoryRepository combines all inventory repository interfaces.
type InventoryRepository interface {
	InventoryReader
	InventoryWriter
}
