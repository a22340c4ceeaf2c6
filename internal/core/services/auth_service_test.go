package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocknest/stocknest_app/internal/apperrors"
	"github.com/stocknest/stocknest_app/internal/dto"
	"github.com/stocknest/stocknest_app/internal/utils"
)

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Username:    "shopkeeper",
		Password:    "correct-horse",
		DisplayName: "The Shopkeeper",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()
	svc := env.container.Auth

	profile, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, profile.ProfileID)
	assert.NotEqual(t, "correct-horse", profile.PasswordHash, "password is stored hashed")

	resp, err := svc.Login(ctx, dto.LoginRequest{Username: "shopkeeper", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, profile.ProfileID, resp.Profile.ProfileID)

	claims, err := utils.ParseAndValidateJWT(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, profile.ProfileID, claims.Subject)
}

func TestRegisterDefaultsDisplayName(t *testing.T) {
	env := newTestEnv(t, false)

	req := registerRequest()
	req.DisplayName = ""
	profile, err := env.container.Auth.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "shopkeeper", profile.DisplayName)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	_, err := env.container.Auth.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = env.container.Auth.Register(ctx, registerRequest())
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()
	svc := env.container.Auth

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "shopkeeper", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "nobody", Password: "correct-horse"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
