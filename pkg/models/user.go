package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the canonical identity record exchanged between tracklog services.
// Profile fields are optional and omitted from the wire when unset.
type User struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      *string    `json:"name,omitempty"`
	AvatarURL *string    `json:"avatarUrl,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
