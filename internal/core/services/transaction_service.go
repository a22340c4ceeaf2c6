package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/stocknest/stocknest_app/internal/apperrors"
	"github.com/stocknest/stocknest_app/internal/core/domain"
	portsrepo "github.com/stocknest/stocknest_app/internal/core/ports/repositories"
	portssvc "github.com/stocknest/stocknest_app/internal/core/ports/services"
	"github.com/stocknest/stocknest_app/internal/dto"
)

// TransactionService manages the income/expense ledger. Item references on a
// transaction are plain data: they are stored as given and never checked
// against the inventory, so deleting an item leaves past transactions intact.
type TransactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepository
}

var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)

func NewTransactionService(txnRepo portsrepo.TransactionRepository) *TransactionService {
	return &TransactionService{txnRepo: txnRepo}
}

func (s *TransactionService) GetTransactions(ctx context.Context, boardID string) ([]domain.Transaction, error) {
	return s.txnRepo.ListTransactions(ctx, boardID)
}

func (s *TransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.txnRepo.FindTransactionByID(ctx, transactionID)
}

func (s *TransactionService) CreateTransaction(ctx context.Context, boardID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if req.Amount.IsNegative() {
		return nil, apperrors.Wrap(apperrors.ErrValidation, "validating transaction", errors.New("amount must be non-negative"))
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		BoardID:       boardID,
		Type:          req.Type,
		Amount:        req.Amount,
		Date:          req.Date,
		PaymentMode:   req.PaymentMode,
		Reference:     req.Reference,
		Notes:         req.Notes,
		Items:         dto.ToTransactionItems(req.Items),
		CreatedAt:     time.Now().UTC(),
	}
	if txn.Items == nil {
		txn.Items = []domain.TransactionItem{}
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "failed to create transaction", "board_id", boardID)
		return nil, err
	}

	s.LogInfo(ctx, "transaction created", "transaction_id", txn.TransactionID, "board_id", boardID, "type", string(txn.Type))
	return &txn, nil
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		txn.Type = *req.Type
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, apperrors.Wrap(apperrors.ErrValidation, "validating transaction", errors.New("amount must be non-negative"))
		}
		txn.Amount = *req.Amount
	}
	if req.Date != nil {
		txn.Date = *req.Date
	}
	if req.PaymentMode != nil {
		txn.PaymentMode = *req.PaymentMode
	}
	if req.Reference != nil {
		txn.Reference = *req.Reference
	}
	if req.Notes != nil {
		txn.Notes = *req.Notes
	}
	if req.Items != nil {
		txn.Items = dto.ToTransactionItems(req.Items)
	}

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "failed to update transaction", "transaction_id", transactionID)
		return nil, err
	}
	return txn, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		return err
	}
	s.LogInfo(ctx, "transaction deleted", "transaction_id", transactionID)
	return nil
}
