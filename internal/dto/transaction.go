package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stocknest/stocknest_app/internal/core/domain"
)

// TransactionItemInput references an inventory item with a quantity. The
// reference is recorded as plain data; the item is not required to exist.
type TransactionItemInput struct {
	ItemID   string `json:"itemID" binding:"required"`
	Quantity int64  `json:"quantity" binding:"gt=0"`
}

// CreateTransactionRequest defines the data needed to record an income or
// expense event.
type CreateTransactionRequest struct {
	Type        domain.TransactionType `json:"type" binding:"required,oneof=income expense"`
	Amount      decimal.Decimal        `json:"amount" binding:"dgte0"`
	Date        time.Time              `json:"date" binding:"required"`
	PaymentMode string                 `json:"paymentMode"`
	Reference   string                 `json:"reference"`
	Notes       string                 `json:"notes"`
	Items       []TransactionItemInput `json:"items"`
}

// UpdateTransactionRequest defines the data allowed for updating a transaction.
// Pointers distinguish zero-value updates from fields not provided; Items nil
// keeps the existing references, non-nil replaces them.
type UpdateTransactionRequest struct {
	Type        *domain.TransactionType `json:"type" binding:"omitempty,oneof=income expense"`
	Amount      *decimal.Decimal        `json:"amount"`
	Date        *time.Time              `json:"date"`
	PaymentMode *string                 `json:"paymentMode"`
	Reference   *string                 `json:"reference"`
	Notes       *string                 `json:"notes"`
	Items       []TransactionItemInput  `json:"items"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	TransactionID string                   `json:"transactionID"`
	BoardID       string                   `json:"boardID"`
	Type          domain.TransactionType   `json:"type"`
	Amount        decimal.Decimal          `json:"amount"`
	Date          time.Time                `json:"date"`
	PaymentMode   string                   `json:"paymentMode"`
	Reference     string                   `json:"reference"`
	Notes         string                   `json:"notes"`
	Items         []domain.TransactionItem `json:"items"`
	CreatedAt     time.Time                `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to a response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		BoardID:       txn.BoardID,
		Type:          txn.Type,
		Amount:        txn.Amount,
		Date:          txn.Date,
		PaymentMode:   txn.PaymentMode,
		Reference:     txn.Reference,
		Notes:         txn.Notes,
		Items:         txn.Items,
		CreatedAt:     txn.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain transactions to DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// ToTransactionItems converts item inputs to their domain representation.
func ToTransactionItems(inputs []TransactionItemInput) []domain.TransactionItem {
	if inputs == nil {
		return nil
	}
	items := make([]domain.TransactionItem, len(inputs))
	for i, in := range inputs {
		items[i] = domain.TransactionItem{ItemID: in.ItemID, Quantity: in.Quantity}
	}
	return items
}
