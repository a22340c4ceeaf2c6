package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stocknest/stocknest_app/internal/apperrors"
	"github.com/stocknest/stocknest_app/internal/core/domain"
	"github.com/stocknest/stocknest_app/internal/core/ports/repositories"
)

const uniqueViolationCode = "23505"

type ProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

var _ repositories.ProfileRepository = (*ProfileRepository)(nil)

func (r *ProfileRepository) SaveProfile(ctx context.Context, profile domain.Profile) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO profiles (profile_id, username, display_name, password_hash, created_at)
        VALUES ($1, $2, $3, $4, $5);`,
		profile.ProfileID,
		profile.Username,
		profile.DisplayName,
		profile.PasswordHash,
		profile.CreatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return apperrors.Wrap(apperrors.ErrDuplicate, "saving profile", err)
	}
	if err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, "saving profile", err)
	}
	return nil
}

func (r *ProfileRepository) FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	return r.findProfile(ctx, `WHERE profile_id = $1`, profileID)
}

func (r *ProfileRepository) FindProfileByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	return r.findProfile(ctx, `WHERE username = $1`, username)
}

func (r *ProfileRepository) findProfile(ctx context.Context, where string, arg any) (*domain.Profile, error) {
	var p domain.Profile
	err := r.db.QueryRow(ctx, `
        SELECT profile_id, username, display_name, password_hash, created_at
        FROM profiles `+where+`;`, arg,
	).Scan(&p.ProfileID, &p.Username, &p.DisplayName, &p.PasswordHash, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrReadFailed, "finding profile", err)
	}
	return &p, nil
}
