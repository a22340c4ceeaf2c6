package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction records money coming in or going out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// TransactionItem records a quantity reference to an inventory item at the time
// the transaction was created. It is plain data: deleting the referenced item
// later does not mutate or invalidate the transaction.
type TransactionItem struct {
	ItemID   string `json:"itemID"`
	Quantity int64  `json:"quantity"`
}

// Transaction represents a single income or expense event in the ledger,
// optionally cross-referencing inventory items.
type Transaction struct {
	TransactionID string            `json:"transactionID"` // Primary Key (UUID)
	BoardID       string            `json:"boardID"`       // Board the transaction belongs to
	Type          TransactionType   `json:"type"`          // income or expense
	Amount        decimal.Decimal   `json:"amount"`        // Non-negative
	Date          time.Time         `json:"date"`          // Date the event occurred
	PaymentMode   string            `json:"paymentMode"`   // e.g. cash, card, transfer
	Reference     string            `json:"reference"`     // Optional external reference
	Notes         string            `json:"notes"`         // Nullable
	Items         []TransactionItem `json:"items"`         // Optional inventory references
	CreatedAt     time.Time         `json:"createdAt"`
}
