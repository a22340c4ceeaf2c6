package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stocknest/stocknest_app/internal/core/domain"
)

// CreateItemRequest defines the data needed to create a new inventory item.
type CreateItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Label       string          `json:"label"`
	PaidTo      string          `json:"paidTo"`
	Price       decimal.Decimal `json:"price" binding:"dgte0"`
	CostPrice   decimal.Decimal `json:"costPrice" binding:"dgte0"`
	Quantity    int64           `json:"quantity" binding:"gte=0"`
	ImageIDs    []string        `json:"imageIDs"`
}

// UpdateItemRequest defines the data allowed for updating an item.
// Use pointers to distinguish between zero-value updates and fields not provided.
// ImageIDs nil means "keep the existing list"; a non-nil slice replaces it.
type UpdateItemRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Label       *string          `json:"label"`
	PaidTo      *string          `json:"paidTo"`
	Price       *decimal.Decimal `json:"price"`
	CostPrice   *decimal.Decimal `json:"costPrice"`
	Quantity    *int64           `json:"quantity"`
	ImageIDs    []string         `json:"imageIDs"`
}

// ItemResponse defines the data returned for an inventory item.
// Mirrors domain.InventoryItem plus the derived status.
type ItemResponse struct {
	ItemID      string            `json:"itemID"`
	BoardID     string            `json:"boardID"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Label       string            `json:"label"`
	PaidTo      string            `json:"paidTo"`
	Price       decimal.Decimal   `json:"price"`
	CostPrice   decimal.Decimal   `json:"costPrice"`
	Quantity    int64             `json:"quantity"`
	Status      domain.ItemStatus `json:"status"`
	ImageIDs    []string          `json:"imageIDs"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// ToItemResponse converts a domain.InventoryItem to an ItemResponse DTO.
func ToItemResponse(item *domain.InventoryItem) ItemResponse {
	return ItemResponse{
		ItemID:      item.ItemID,
		BoardID:     item.BoardID,
		Name:        item.Name,
		Description: item.Description,
		Category:    item.Category,
		Label:       item.Label,
		PaidTo:      item.PaidTo,
		Price:       item.Price,
		CostPrice:   item.CostPrice,
		Quantity:    item.Quantity,
		Status:      item.Status(),
		ImageIDs:    item.ImageIDs,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// ToListItemResponse converts a slice of domain items to response DTOs.
func ToListItemResponse(items []domain.InventoryItem) []ItemResponse {
	res := make([]ItemResponse, len(items))
	for i := range items {
		res[i] = ToItemResponse(&items[i])
	}
	return res
}
