package models

import (
	"time"

	"github.com/google/uuid"
)

// Vendor represents a merchant account. Vendors have no wallet: TotalSales is
// the aggregate of all settled payments addressed to them, in cents, and is
// monotonically non-decreasing.
type Vendor struct {
	ID         uuid.UUID `json:"id"`          // Equal to the owning user's id
	Name       string    `json:"name"`        // Display name
	Email      string    `json:"email"`       // Contact email
	TotalSales int64     `json:"total_sales"` // Lifetime settled sales in cents
	CreatedAt  time.Time `json:"created_at"`  // Registration timestamp
}
