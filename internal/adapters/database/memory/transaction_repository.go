// Package memory holds the session-scoped transaction ledger used by the
// local storage backend. The ledger lives only as long as the process; the
// remote backend persists transactions durably instead.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stocknest/stocknest_app/internal/apperrors"
	"github.com/stocknest/stocknest_app/internal/core/domain"
	"github.com/stocknest/stocknest_app/internal/core/ports/repositories"
)

// TransactionRepository keeps the ledger in memory, newest first.
type TransactionRepository struct {
	mu   sync.Mutex
	txns []domain.Transaction
}

// NewTransactionRepository creates a ledger pre-populated with the given
// transactions (pass nil for an empty ledger).
func NewTransactionRepository(seed []domain.Transaction) *TransactionRepository {
	return &TransactionRepository{txns: seed}
}

var _ repositories.TransactionRepository = (*TransactionRepository)(nil)

func (r *TransactionRepository) ListTransactions(ctx context.Context, boardID string) ([]domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []domain.Transaction{}
	for _, txn := range r.txns {
		if txn.BoardID == boardID {
			out = append(out, txn)
		}
	}
	return out, nil
}

func (r *TransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.txns {
		if r.txns[i].TransactionID == transactionID {
			txn := r.txns[i]
			return &txn, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *TransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Prepend: the ledger reads newest first.
	r.txns = append([]domain.Transaction{txn}, r.txns...)
	return nil
}

func (r *TransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.txns {
		if r.txns[i].TransactionID == txn.TransactionID {
			r.txns[i] = txn
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *TransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.txns {
		if r.txns[i].TransactionID == transactionID {
			r.txns = append(r.txns[:i], r.txns[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// SeedTransactions returns the demo ledger shown before any real entries are
// recorded in local mode.
func SeedTransactions() []domain.Transaction {
	now := time.Now()
	return []domain.Transaction{
		{
			TransactionID: "seed-income-1",
			BoardID:       "demo",
			Type:          domain.Income,
			Amount:        decimal.NewFromInt(1200),
			Date:          now.AddDate(0, 0, -2),
			PaymentMode:   "cash",
			Notes:         "Weekend market sales",
			CreatedAt:     now.AddDate(0, 0, -2),
		},
		{
			TransactionID: "seed-expense-1",
			BoardID:       "demo",
			Type:          domain.Expense,
			Amount:        decimal.NewFromInt(450),
			Date:          now.AddDate(0, 0, -5),
			PaymentMode:   "transfer",
			Reference:     "INV-0042",
			Notes:         "Restock order",
			CreatedAt:     now.AddDate(0, 0, -5),
		},
	}
}
