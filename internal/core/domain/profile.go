package domain

import "time"

// Profile represents an authenticated user account. Authentication is
// deliberately minimal: the rest of the system only needs a stable user id.
type Profile struct {
	ProfileID    string    `json:"profileID"` // Primary Key (UUID)
	Username     string    `json:"username"`  // Unique login name
	DisplayName  string    `json:"displayName"`
	PasswordHash string    `json:"-"` // bcrypt hash, never serialized
	CreatedAt    time.Time `json:"createdAt"`
}
