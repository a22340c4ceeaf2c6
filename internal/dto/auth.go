package dto

import (
	"time"

	"github.com/stocknest/stocknest_app/internal/core/domain"
)

// RegisterRequest defines the data needed to create a profile.
type RegisterRequest struct {
	Username    string `json:"username" binding:"required,min=3"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"displayName"`
}

// LoginRequest defines the credentials for a login attempt.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ProfileResponse defines the public view of a profile.
type ProfileResponse struct {
	ProfileID   string    `json:"profileID"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}

// LoginResponse carries the issued token and the authenticated profile.
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	Profile   ProfileResponse `json:"profile"`
}

// ToProfileResponse converts a domain.Profile to its public DTO.
func ToProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ProfileID:   p.ProfileID,
		Username:    p.Username,
		DisplayName: p.DisplayName,
		CreatedAt:   p.CreatedAt,
	}
}
