package models

import (
	"time"

	"github.com/google/uuid"
)

// VideoTranslation holds the localized title and description of a video.
// The (video_id, language) pair is unique; writes must upsert on that key.
type VideoTranslation struct {
	ID          *uuid.UUID `json:"id,omitempty"`
	VideoID     uuid.UUID  `json:"video_id"`
	Language    string     `json:"language"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"` // Nullable TEXT
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// IsComplete reports whether the translation carries a usable title.
func (t *VideoTranslation) IsComplete() bool {
	return t.Title != ""
}
