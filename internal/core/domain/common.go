package domain

import "time"

// Timestamps holds standard creation/modification times for domain entities.
// CreatedAt is set once at creation; UpdatedAt is refreshed on every mutation.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
