package services

import (
	"context"

	"github.com/stocknest/stocknest_app/internal/core/domain"
	"github.com/stocknest/stocknest_app/internal/dto"
)

// TransactionSvcFacade manages the income/expense ledger. Referenced inventory
// items are recorded as plain data; no referential integrity is enforced
// between transactions and inventory.
type TransactionSvcFacade interface {
	// GetTransactions returns the board ledger, newest first.
	GetTransactions(ctx context.Context, boardID string) ([]domain.Transaction, error)

	// GetTransactionByID retrieves a single ledger entry.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// CreateTransaction records a new ledger entry and returns it.
	CreateTransaction(ctx context.Context, boardID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction merges the provided fields into an existing entry.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a ledger entry.
	DeleteTransaction(ctx context.Context, transactionID string) error
}
