package repositories

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/itsmeishwar/CampusPay/internal/logger"
	"github.com/itsmeishwar/CampusPay/internal/models"
)

// Error variables
var (
	ErrRequestNotFound = errors.New("payment request not found")
	ErrAlreadySettled  = errors.New("payment request already settled")
	ErrRequestExpired  = errors.New("payment request expired")
)

// WalletChecker is the slice of the account store the registry needs to
// validate a payer at issuance.
type WalletChecker interface {
	GetWallet(ctx context.Context, userID uuid.UUID) (models.Wallet, error)
}

type requestEntry struct {
	mu  sync.Mutex
	req models.PaymentRequest
}

// PaymentRequestRepository owns all PaymentRequest records and is the only
// writer allowed to move them out of the pending state. The transition is a
// check-and-set under the request's own lock, which makes it the linearization
// point for settlement: exactly one caller wins the claim per request id.
type PaymentRequestRepository struct {
	mu       sync.RWMutex
	requests map[uuid.UUID]*requestEntry
	wallets  WalletChecker
}

func NewPaymentRequestRepository(wallets WalletChecker) *PaymentRequestRepository {
	return &PaymentRequestRepository{
		requests: make(map[uuid.UUID]*requestEntry),
		wallets:  wallets,
	}
}

// Issue creates a pending payment request after checking that the payer's
// wallet exists and currently covers the amount. The balance check is
// optimistic: the balance may drift before settlement, which re-validates
// under the wallet's own lock.
func (r *PaymentRequestRepository) Issue(ctx context.Context, payerID, vendorID uuid.UUID, amount int64, ttl time.Duration) (*models.PaymentRequest, error) {
	if amount <= 0 {
		return nil, models.ErrInvalidAmount
	}

	wallet, err := r.wallets.GetWallet(ctx, payerID)
	if err != nil {
		return nil, err
	}
	if wallet.Balance < amount {
		return nil, ErrInsufficientBalance
	}

	now := time.Now()
	req := models.PaymentRequest{
		ID:        uuid.New(),
		PayerID:   payerID,
		VendorID:  vendorID,
		Amount:    amount,
		State:     models.PaymentPending,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	r.mu.Lock()
	r.requests[req.ID] = &requestEntry{req: req}
	r.mu.Unlock()

	logger.Log.Infow("payment request issued",
		"payment_id", req.ID,
		"user_id", payerID,
		"vendor_id", vendorID,
		"amount", amount,
		"expires_at", req.ExpiresAt,
	)
	return &req, nil
}

// Get returns a snapshot of the request, observing expiry lazily: a pending
// request past its deadline is moved to expired before being returned.
func (r *PaymentRequestRepository) Get(ctx context.Context, requestID uuid.UUID) (*models.PaymentRequest, error) {
	entry, err := r.entry(requestID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.req.State == models.PaymentPending && time.Now().After(entry.req.ExpiresAt) {
		entry.req.State = models.PaymentExpired
	}
	req := entry.req
	return &req, nil
}

// Settle transitions the request pending→settled exactly once, running apply
// inside the same critical section as the state check. apply carries the
// monetary effect (debit, ledger entry, sale record); if it fails the request
// lands in the terminal failed state and is never claimable again, so every
// request gets one settlement attempt, success or definitive failure.
//
// A request already past pending yields ErrAlreadySettled (settled or failed)
// or ErrRequestExpired; a pending request past its deadline is expired and
// refused without running apply.
func (r *PaymentRequestRepository) Settle(ctx context.Context, requestID uuid.UUID, apply func(req models.PaymentRequest) error) (*models.PaymentRequest, error) {
	entry, err := r.entry(requestID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	switch entry.req.State {
	case models.PaymentSettled, models.PaymentFailed:
		return nil, ErrAlreadySettled
	case models.PaymentExpired:
		return nil, ErrRequestExpired
	case models.PaymentPending:
		// Fall through to the claim below.
	}

	if time.Now().After(entry.req.ExpiresAt) {
		entry.req.State = models.PaymentExpired
		logger.Log.Warnw("settlement refused, request expired",
			"payment_id", requestID,
			"expires_at", entry.req.ExpiresAt,
		)
		return nil, ErrRequestExpired
	}

	if err := apply(entry.req); err != nil {
		entry.req.State = models.PaymentFailed
		logger.Log.Warnw("settlement failed",
			"payment_id", requestID,
			"error", err,
		)
		return nil, err
	}

	entry.req.State = models.PaymentSettled
	req := entry.req

	logger.Log.Infow("payment request settled",
		"payment_id", requestID,
		"user_id", req.PayerID,
		"vendor_id", req.VendorID,
		"amount", req.Amount,
	)
	return &req, nil
}

func (r *PaymentRequestRepository) entry(requestID uuid.UUID) (*requestEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.requests[requestID]
	if !ok {
		return nil, ErrRequestNotFound
	}
	return entry, nil
}
