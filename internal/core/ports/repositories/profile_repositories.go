package repositories

import (
	"context"

	"github.com/stocknest/stocknest_app/internal/core/domain"
)

// ProfileRepository persists user accounts for the minimal identity layer.
type ProfileRepository interface {
	// SaveProfile persists a new profile.
	// Returns apperrors.ErrDuplicate if the username is already taken.
	SaveProfile(ctx context.Context, profile domain.Profile) error

	// FindProfileByID retrieves a profile by id.
	// Returns apperrors.ErrNotFound if absent.
	FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error)

	// FindProfileByUsername retrieves a profile by login name.
	// Returns apperrors.ErrNotFound if absent.
	FindProfileByUsername(ctx context.Context, username string) (*domain.Profile, error)
}
