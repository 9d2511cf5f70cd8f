package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
type User struct {
	ID           uuid.UUID `json:"id"`         // Primary key
	Email        string    `json:"email"`      // Unique email
	Name         string    `json:"name"`       // Display name
	Role         Role      `json:"role"`       // student, vendor or admin
	PasswordHash string    `json:"-"`          // Bcrypt hash, never serialized
	CreatedAt    time.Time `json:"created_at"` // Registration timestamp
}
