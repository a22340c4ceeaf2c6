package repositories

import (
	"context"

	"github.com/stocknest/stocknest_app/internal/core/domain"
)

// TransactionReader defines read operations for the transaction ledger.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by id.
	// Returns apperrors.ErrNotFound if no transaction has that id.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves the ledger for a board, newest first.
	ListTransactions(ctx context.Context, boardID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for the transaction ledger.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction replaces an existing transaction's record.
	// Returns apperrors.ErrNotFound if no transaction has that id.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction from the ledger.
	// Returns apperrors.ErrNotFound if no transaction has that id.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepository combines all transaction repository interfaces.
type TransactionRepository interface {
	TransactionReader
	TransactionWriter
}
