package models

import (
	"time"

	"github.com/google/uuid"
)

// Category represents the structure of a video category in the database.
type Category struct {
	ID        uuid.UUID `json:"id,omitempty"`
	Name      string    `json:"name"`
	NameAr    *string   `json:"name_ar,omitempty"` // Arabic display name, nullable TEXT
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
