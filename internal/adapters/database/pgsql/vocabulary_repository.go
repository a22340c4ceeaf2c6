package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stocknest/stocknest_app/internal/apperrors"
	"github.com/stocknest/stocknest_app/internal/core/domain"
	"github.com/stocknest/stocknest_app/internal/core/ports/repositories"
)

type VocabularyRepository struct {
	db *pgxpool.Pool
}

func NewVocabularyRepository(db *pgxpool.Pool) *VocabularyRepository {
	return &VocabularyRepository{db: db}
}

var _ repositories.VocabularyRepository = (*VocabularyRepository)(nil)

func (r *VocabularyRepository) ListValues(ctx context.Context, boardID string, kind domain.VocabularyKind) ([]string, error) {
	rows, err := r.db.Query(ctx, `
        SELECT value FROM vocabularies
        WHERE board_id = $1 AND kind = $2
        ORDER BY position;`, boardID, kind)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrReadFailed, "listing vocabulary values", err)
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrReadFailed, "scanning vocabulary row", err)
		}
		values = append(values, v)
	}
	if rows.Err() != nil {
		return nil, apperrors.Wrap(apperrors.ErrReadFailed, "iterating vocabulary rows", rows.Err())
	}
	return values, nil
}

func (r *VocabularyRepository) AddValue(ctx context.Context, boardID string, kind domain.VocabularyKind, value string) error {
	// ON CONFLICT DO NOTHING keeps the add idempotent while the position
	// subquery preserves first-insertion order.
	_, err := r.db.Exec(ctx, `
        INSERT INTO vocabularies (board_id, kind, value, position)
        SELECT $1, $2, $3, COALESCE(MAX(position), 0) + 1
        FROM vocabularies WHERE board_id = $1 AND kind = $2
        ON CONFLICT (board_id, kind, value) DO NOTHING;`,
		boardID, kind, value)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, "adding vocabulary value", err)
	}
	return nil
}

func (r *VocabularyRepository) RemoveValue(ctx context.Context, boardID string, kind domain.VocabularyKind, value string) error {
	_, err := r.db.Exec(ctx, `
        DELETE FROM vocabularies
        WHERE board_id = $1 AND kind = $2 AND value = $3;`,
		boardID, kind, value)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, "removing vocabulary value", err)
	}
	return nil
}
