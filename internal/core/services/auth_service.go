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
	"github.com/stocknest/stocknest_app/internal/utils"
)

// AuthService provides the minimal identity layer: registration, credential
// verification and JWT issuance. Unknown usernames and wrong passwords both
// report ErrUnauthorized so responses do not leak which part failed.
type AuthService struct {
	BaseService
	profileRepo portsrepo.ProfileRepository

	jwtSecret string
	jwtExpiry time.Duration
	jwtIssuer string
}

var _ portssvc.AuthSvcFacade = (*AuthService)(nil)

func NewAuthService(profileRepo portsrepo.ProfileRepository, jwtSecret string, jwtExpiry time.Duration, jwtIssuer string) *AuthService {
	return &AuthService{
		profileRepo: profileRepo,
		jwtSecret:   jwtSecret,
		jwtExpiry:   jwtExpiry,
		jwtIssuer:   jwtIssuer,
	}
}

func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.Profile, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrValidation, "hashing password", err)
	}

	profile := domain.Profile{
		ProfileID:    uuid.NewString(),
		Username:     req.Username,
		DisplayName:  req.DisplayName,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if profile.DisplayName == "" {
		profile.DisplayName = req.Username
	}

	if err := s.profileRepo.SaveProfile(ctx, profile); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		s.LogError(ctx, err, "failed to register profile", "username", req.Username)
		return nil, err
	}

	s.LogInfo(ctx, "profile registered", "profile_id", profile.ProfileID)
	return &profile, nil
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	profile, err := s.profileRepo.FindProfileByUsername(ctx, req.Username)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}

	if !utils.CheckPasswordHash(req.Password, profile.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	token, err := utils.GenerateJWT(profile.ProfileID, s.jwtSecret, s.jwtExpiry, s.jwtIssuer)
	if err != nil {
		s.LogError(ctx, err, "failed to sign token", "profile_id", profile.ProfileID)
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(s.jwtExpiry),
		Profile:   dto.ToProfileResponse(profile),
	}, nil
}

func (s *AuthService) GetProfile(ctx context.Context, profileID string) (*domain.Profile, error) {
	return s.profileRepo.FindProfileByID(ctx, profileID)
}
