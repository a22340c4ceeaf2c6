package domain

import (
	"github.com/shopspring/decimal"
)

// ItemStatus describes the stock state of an inventory item, derived from quantity.
type ItemStatus string

const (
	StatusActive     ItemStatus = "active"
	StatusLowStock   ItemStatus = "low_stock"
	StatusOutOfStock ItemStatus = "out_of_stock"
)

// Legacy statuses from the original data model. Still accepted as stored values
// on imported records, but new records always derive status from quantity.
const (
	StatusAvailable ItemStatus = "available"
	StatusSold      ItemStatus = "sold"
	StatusReserved  ItemStatus = "reserved"
)

// LowStockThreshold is the quantity at or below which an item counts as low stock.
const LowStockThreshold = 10

// InventoryItem represents a stock item within the core domain.
// This is the primary representation used by services.
type InventoryItem struct {
	ItemID      string          `json:"itemID"`      // Primary Key (UUID)
	BoardID     string          `json:"boardID"`     // Grouping collection (NON-NULL)
	Name        string          `json:"name"`        // User-defined name
	Description string          `json:"description"` // Nullable user description
	Category    string          `json:"category"`    // Drawn from (not constrained to) the board's category vocabulary
	Label       string          `json:"label"`       // Free-text tag, feeds the board's label vocabulary
	PaidTo      string          `json:"paidTo"`      // Supplier/vendor, feeds the board's paid-to vocabulary
	Price       decimal.Decimal `json:"price"`       // Selling price, non-negative
	CostPrice   decimal.Decimal `json:"costPrice"`   // Acquisition cost, non-negative
	Quantity    int64           `json:"quantity"`    // Non-negative; drives derived status
	ImageIDs    []string        `json:"imageIDs"`    // Ordered; first is the primary image for list views
	Timestamps
}

// Status derives the stock status from the current quantity.
func (i InventoryItem) Status() ItemStatus {
	return DeriveStatus(i.Quantity)
}

// DeriveStatus maps a quantity onto an ItemStatus.
func DeriveStatus(quantity int64) ItemStatus {
	switch {
	case quantity <= 0:
		return StatusOutOfStock
	case quantity <= LowStockThreshold:
		return StatusLowStock
	default:
		return StatusActive
	}
}

// HasImage reports whether the item currently references the given image id.
func (i InventoryItem) HasImage(imageID string) bool {
	for _, id := range i.ImageIDs {
		if id == imageID {
			return true
		}
	}
	return false
}
