package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stocknest/stocknest_app/internal/apperrors"
	"github.com/stocknest/stocknest_app/internal/core/domain"
	"github.com/stocknest/stocknest_app/internal/core/ports/repositories"
)

type TransactionRepository struct {
	db *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{db: db}
}

var _ repositories.TransactionRepository = (*TransactionRepository)(nil)

const txnSelect = `
        SELECT transaction_id, board_id, type, amount, date, payment_mode, reference, notes, created_at
        FROM transactions`

func (r *TransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, "beginning transaction save", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
        INSERT INTO transactions (transaction_id, owner_id, board_id, type, amount, date, payment_mode, reference, notes, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		txn.TransactionID,
		ownerFromCtx(ctx),
		txn.BoardID,
		txn.Type,
		txn.Amount,
		txn.Date,
		txn.PaymentMode,
		txn.Reference,
		txn.Notes,
		txn.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, "saving transaction", err)
	}

	if err := insertTxnItems(ctx, tx, txn.TransactionID, txn.Items); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, "committing transaction save", err)
	}
	return nil
}

func (r *TransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	row := r.db.QueryRow(ctx, txnSelect+` WHERE transaction_id = $1 AND owner_id = $2;`,
		transactionID, ownerFromCtx(ctx))

	txn, err := scanTxn(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrReadFailed, "finding transaction by id", err)
	}
	if err := r.loadItems(ctx, txn); err != nil {
		return nil, err
	}
	return txn, nil
}

func (r *TransactionRepository) ListTransactions(ctx context.Context, boardID string) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx,
		txnSelect+` WHERE board_id = $1 AND owner_id = $2 ORDER BY date DESC, created_at DESC;`,
		boardID, ownerFromCtx(ctx))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrReadFailed, "listing transactions", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTxn(rows)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrReadFailed, "scanning transaction row", err)
		}
		txns = append(txns, *txn)
	}
	if rows.Err() != nil {
		return nil, apperrors.Wrap(apperrors.ErrReadFailed, "iterating transaction rows", rows.Err())
	}

	for i := range txns {
		if err := r.loadItems(ctx, &txns[i]); err != nil {
			return nil, err
		}
	}
	return txns, nil
}

func (r *TransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, "beginning transaction update", err)
	}
	defer tx.Rollback(ctx)

	cmdTag, err := tx.Exec(ctx, `
        UPDATE transactions
        SET type = $1, amount = $2, date = $3, payment_mode = $4, reference = $5, notes = $6
        WHERE transaction_id = $7 AND owner_id = $8;`,
		txn.Type,
		txn.Amount,
		txn.Date,
		txn.PaymentMode,
		txn.Reference,
		txn.Notes,
		txn.TransactionID,
		ownerFromCtx(ctx),
	)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, "updating transaction", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	// Item references are replaced wholesale on update.
	if _, err := tx.Exec(ctx, `DELETE FROM transaction_items WHERE transaction_id = $1;`, txn.TransactionID); err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, "clearing transaction items", err)
	}
	if err := insertTxnItems(ctx, tx, txn.TransactionID, txn.Items); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, "committing transaction update", err)
	}
	return nil
}

func (r *TransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	// transaction_items rows go with it via ON DELETE CASCADE.
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM transactions WHERE transaction_id = $1 AND owner_id = $2;`,
		transactionID, ownerFromCtx(ctx))
	if err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, "deleting transaction", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *TransactionRepository) loadItems(ctx context.Context, txn *domain.Transaction) error {
	rows, err := r.db.Query(ctx, `
        SELECT item_id, quantity FROM transaction_items
        WHERE transaction_id = $1 ORDER BY position;`, txn.TransactionID)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrReadFailed, "loading transaction items", err)
	}
	defer rows.Close()

	items := []domain.TransactionItem{}
	for rows.Next() {
		var item domain.TransactionItem
		if err := rows.Scan(&item.ItemID, &item.Quantity); err != nil {
			return apperrors.Wrap(apperrors.ErrReadFailed, "scanning transaction item row", err)
		}
		items = append(items, item)
	}
	if rows.Err() != nil {
		return apperrors.Wrap(apperrors.ErrReadFailed, "iterating transaction item rows", rows.Err())
	}
	txn.Items = items
	return nil
}

func insertTxnItems(ctx context.Context, tx pgx.Tx, transactionID string, items []domain.TransactionItem) error {
	for i, item := range items {
		_, err := tx.Exec(ctx, `
            INSERT INTO transaction_items (transaction_id, position, item_id, quantity)
            VALUES ($1, $2, $3, $4);`,
			transactionID, i, item.ItemID, item.Quantity)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrWriteFailed, "saving transaction item", err)
		}
	}
	return nil
}

func scanTxn(row pgx.Row) (*domain.Transaction, error) {
	var txn domain.Transaction
	err := row.Scan(
		&txn.TransactionID,
		&txn.BoardID,
		&txn.Type,
		&txn.Amount,
		&txn.Date,
		&txn.PaymentMode,
		&txn.Reference,
		&txn.Notes,
		&txn.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}
