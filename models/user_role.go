package models

import (
	"time"

	"github.com/google/uuid"
)

// RoleAdmin is the role granting access to the admin endpoints.
const RoleAdmin = "admin"

// UserRole represents a role assignment for a user.
type UserRole struct {
	ID        uuid.UUID `json:"id,omitempty"`
	UserID    uuid.UUID `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
