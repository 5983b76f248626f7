package models

import (
	"time"

	"github.com/google/uuid"
)

// Video represents the structure of a video in the database.
// Duration is always stored in display form ("H:MM:SS" or "M:SS"); raw
// ISO-8601 strings from the metadata API never reach this struct.
type Video struct {
	ID         uuid.UUID  `json:"id"`
	VideoURL   string     `json:"video_url"`
	Thumbnail  string     `json:"thumbnail"`
	Duration   string     `json:"duration"`
	Author     string     `json:"author"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"` // Nullable foreign key
	Views      int64      `json:"views"`
	IsFeatured bool       `json:"is_featured"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"` // Non-nil marks soft deletion
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// IsDeleted reports whether the video has been soft-deleted.
func (v *Video) IsDeleted() bool {
	return v.DeletedAt != nil
}
