package sqlite

import (
	"context"
	"database/sql"

	"github.com/stocknest/stocknest_app/internal/apperrors"
	"github.com/stocknest/stocknest_app/internal/core/domain"
	"github.com/stocknest/stocknest_app/internal/core/ports/repositories"
)

// VocabularyRepository persists the per-board dropdown vocabularies. Insertion
// order is preserved through an explicit position column.
type VocabularyRepository struct {
	db *sql.DB
}

func NewVocabularyRepository(db *sql.DB) *VocabularyRepository {
	return &VocabularyRepository{db: db}
}

var _ repositories.VocabularyRepository = (*VocabularyRepository)(nil)

func (r *VocabularyRepository) ListValues(ctx context.Context, boardID string, kind domain.VocabularyKind) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT value FROM vocabularies
        WHERE board_id = ? AND kind = ?
        ORDER BY position`, boardID, string(kind))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrReadFailed, "listing vocabulary values", err)
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrReadFailed, "scanning vocabulary value", err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrReadFailed, "iterating vocabulary values", err)
	}
	return values, nil
}

func (r *VocabularyRepository) AddValue(ctx context.Context, boardID string, kind domain.VocabularyKind, value string) error {
	// INSERT OR IGNORE keeps the original position when the value exists,
	// making the add idempotent.
	_, err := r.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO vocabularies (board_id, kind, value, position)
        VALUES (?, ?, ?, (
            SELECT COALESCE(MAX(position), 0) + 1 FROM vocabularies
            WHERE board_id = ? AND kind = ?
        ))`,
		boardID, string(kind), value, boardID, string(kind))
	if err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, "adding vocabulary value", err)
	}
	return nil
}

func (r *VocabularyRepository) RemoveValue(ctx context.Context, boardID string, kind domain.VocabularyKind, value string) error {
	// Removing an absent value is a no-op; items keep any stale values.
	_, err := r.db.ExecContext(ctx, `
        DELETE FROM vocabularies
        WHERE board_id = ? AND kind = ? AND value = ?`,
		boardID, string(kind), value)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, "removing vocabulary value", err)
	}
	return nil
}
