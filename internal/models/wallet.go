package models

import (
	"time"

	"github.com/google/uuid"
)

// Wallet holds a student's balance in integer cents.
// Balance never goes below zero; all mutation goes through the account store.
type Wallet struct {
	ID        uuid.UUID `json:"id"`         // Unique wallet identifier
	UserID    uuid.UUID `json:"user_id"`    // Identifier of the wallet's owner
	Balance   int64     `json:"balance"`    // Current balance in cents
	CreatedAt time.Time `json:"created_at"` // Timestamp when the wallet was created
}
