package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/stocknest/stocknest_app/internal/apperrors"
	"github.com/stocknest/stocknest_app/internal/core/domain"
	"github.com/stocknest/stocknest_app/internal/core/ports/repositories"
)

// ProfileRepository persists user accounts in the embedded database.
type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

var _ repositories.ProfileRepository = (*ProfileRepository)(nil)

func (r *ProfileRepository) SaveProfile(ctx context.Context, profile domain.Profile) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO profiles (profile_id, username, display_name, password_hash, created_at)
        VALUES (?, ?, ?, ?, ?)`,
		profile.ProfileID,
		profile.Username,
		profile.DisplayName,
		profile.PasswordHash,
		profile.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return apperrors.ErrDuplicate
		}
		return apperrors.Wrap(apperrors.ErrWriteFailed, "saving profile", err)
	}
	return nil
}

func (r *ProfileRepository) FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	return r.findProfile(ctx, `profile_id = ?`, profileID)
}

func (r *ProfileRepository) FindProfileByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	return r.findProfile(ctx, `username = ?`, username)
}

func (r *ProfileRepository) findProfile(ctx context.Context, where string, arg any) (*domain.Profile, error) {
	var p domain.Profile
	err := r.db.QueryRowContext(ctx, `
        SELECT profile_id, username, display_name, password_hash, created_at
        FROM profiles WHERE `+where, arg,
	).Scan(&p.ProfileID, &p.Username, &p.DisplayName, &p.PasswordHash, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrReadFailed, "finding profile", err)
	}
	return &p, nil
}
