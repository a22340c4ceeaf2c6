package domain

import "time"

// Image represents an uploaded media record attached to a board and referenced
// by zero or more inventory items. The payload is stored inline as a data URI
// (or a remote URL when the record came from the hosted backend).
type Image struct {
	ImageID     string    `json:"imageID"`     // Primary Key (UUID)
	BoardID     string    `json:"boardID"`     // Board the image belongs to (NON-NULL)
	URL         string    `json:"url"`         // data URI payload or remote URL
	StoragePath string    `json:"storagePath"` // "{board_id}/{filename}", mirrors remote object storage
	Description string    `json:"description"` // Defaults to the original filename
	CreatedAt   time.Time `json:"createdAt"`
}
