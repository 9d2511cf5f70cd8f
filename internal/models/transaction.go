package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionKind distinguishes balance-increasing from balance-decreasing entries.
type TransactionKind string

const (
	KindCredit TransactionKind = "credit" // Balance increased (top-up)
	KindDebit  TransactionKind = "debit"  // Balance decreased (payment to a vendor)
)

// Transaction is an immutable ledger entry. Entries are append-only and
// insertion-ordered; once written they are never mutated or deleted.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`                  // Assigned by the ledger on append
	UserID      uuid.UUID       `json:"user_id"`             // Subject of the balance change
	VendorID    *uuid.UUID      `json:"vendor_id,omitempty"` // Counterparty vendor, nil for top-ups
	Kind        TransactionKind `json:"type"`                // credit or debit
	Amount      int64           `json:"amount"`              // Positive amount in cents
	Description string          `json:"description"`         // Human-readable note
	Timestamp   time.Time       `json:"timestamp"`           // Assigned by the ledger on append
}
