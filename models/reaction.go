package models

import (
	"time"

	"github.com/google/uuid"
)

// Reaction types a user can put on a video.
const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
	ReactionHeart   = "heart"
	ReactionStar    = "star"
)

// ValidReactionType reports whether t is one of the supported reaction types.
func ValidReactionType(t string) bool {
	switch t {
	case ReactionLike, ReactionDislike, ReactionHeart, ReactionStar:
		return true
	}
	return false
}

// Reaction represents one user's reaction of a given type on a video.
// A (video_id, user_id, type) triple exists at most once.
type Reaction struct {
	ID        uuid.UUID `json:"id"`
	VideoID   uuid.UUID `json:"video_id"`
	UserID    uuid.UUID `json:"user_id"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}
