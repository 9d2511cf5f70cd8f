package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentState is the lifecycle state of a payment request.
// pending is the only non-terminal state.
type PaymentState string

const (
	PaymentPending PaymentState = "pending" // Issued, waiting for settlement
	PaymentSettled PaymentState = "settled" // Settled exactly once, money moved
	PaymentExpired PaymentState = "expired" // TTL elapsed before settlement
	PaymentFailed  PaymentState = "failed"  // Claimed but the debit was refused
)

// PaymentRequest is a short-lived payment intent, typically carried to the
// vendor inside a QR code. It is consumed exactly once: the registry's
// check-and-set transition out of pending is the claim that authorizes
// settlement, and no request is ever claimable twice.
type PaymentRequest struct {
	ID        uuid.UUID    `json:"payment_id"` // Unique request identifier
	PayerID   uuid.UUID    `json:"user_id"`    // Student whose wallet is debited
	VendorID  uuid.UUID    `json:"vendor_id"`  // Vendor credited on settlement
	Amount    int64        `json:"amount"`     // Positive amount in cents
	State     PaymentState `json:"state"`      // pending, settled, expired or failed
	CreatedAt time.Time    `json:"created_at"` // Issuance timestamp
	ExpiresAt time.Time    `json:"expires_at"` // Settlement refused after this instant
}
