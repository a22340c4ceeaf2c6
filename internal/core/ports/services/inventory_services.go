package services

import (
	"context"

	"github.com/stocknest/stocknest_app/internal/core/domain"
	"github.com/stocknest/stocknest_app/internal/dto"
)

// InventoryReaderSvc defines read operations over inventory items.
type InventoryReaderSvc interface {
	// GetItemByID retrieves a single item.
	GetItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error)

	// GetItems retrieves every item on a board.
	GetItems(ctx context.Context, boardID string) ([]domain.InventoryItem, error)

	// GetAllItems retrieves every item across boards.
	GetAllItems(ctx context.Context) ([]domain.InventoryItem, error)

	// GetItemsByImageID returns the items currently referencing an image,
	// answered from the in-memory reverse index.
	GetItemsByImageID(ctx context.Context, imageID string) ([]domain.InventoryItem, error)
}

// InventoryWriterSvc defines mutations over inventory items.
type InventoryWriterSvc interface {
	// CreateItem creates a new item on a board, auto-registering any new
	// vocabulary values it carries.
	CreateItem(ctx context.Context, boardID string, req dto.CreateItemRequest) (*domain.InventoryItem, error)

	// UpdateItem merges the provided fields into an existing item.
	UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest) (*domain.InventoryItem, error)

	// DeleteItem removes an item and cascades to every image it references.
	DeleteItem(ctx context.Context, itemID string) error
}

// ImageReferenceCleaner is the reverse-cascade entry point invoked by the
// image service after it deletes an image.
type ImageReferenceCleaner interface {
	// RemoveImageFromItems drops the image id from every item referencing it.
	RemoveImageFromItems(ctx context.Context, imageID string) error
}

// VocabularySvc manages the per-board dropdown vocabularies.
type VocabularySvc interface {
	GetVocabulary(ctx context.Context, boardID string, kind domain.VocabularyKind) ([]string, error)
	AddVocabularyValue(ctx context.Context, boardID string, kind domain.VocabularyKind, value string) error
	RemoveVocabularyValue(ctx context.Context, boardID string, kind domain.VocabularyKind, value string) error
}

// InventorySvcFacade combines all inventory-related service interfaces.
type InventorySvcFacade interface {
	InventoryReaderSvc
	InventoryWriterSvc
	ImageReferenceCleaner
	VocabularySvc
}
