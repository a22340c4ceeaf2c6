package services

import (
	"context"

	"github.com/stocknest/stocknest_app/internal/core/domain"
	"github.com/stocknest/stocknest_app/internal/dto"
)

// AuthSvcFacade provides the minimal identity layer: profile registration and
// credential verification yielding a signed token.
type AuthSvcFacade interface {
	// Register creates a new profile with a hashed password.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.Profile, error)

	// Login verifies credentials and issues a JWT for the profile.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// GetProfile retrieves a profile by id.
	GetProfile(ctx context.Context, profileID string) (*domain.Profile, error)
}
