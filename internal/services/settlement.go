package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/itsmeishwar/CampusPay/internal/logger"
	"github.com/itsmeishwar/CampusPay/internal/models"
)

// AccountDebitor defines the account-store operations settlement needs.
type AccountDebitor interface {
	Debit(ctx context.Context, userID uuid.UUID, amount int64) (models.Wallet, error)
}

// SaleRecorder defines the vendor-store operations settlement needs.
type SaleRecorder interface {
	GetVendor(ctx context.Context, vendorID uuid.UUID) (models.Vendor, error)
	RecordSale(ctx context.Context, vendorID uuid.UUID, amount int64) (models.Vendor, error)
}

// RequestRegistry defines the payment-request registry operations settlement needs.
type RequestRegistry interface {
	Issue(ctx context.Context, payerID, vendorID uuid.UUID, amount int64, ttl time.Duration) (*models.PaymentRequest, error)
	Get(ctx context.Context, requestID uuid.UUID) (*models.PaymentRequest, error)
	Settle(ctx context.Context, requestID uuid.UUID, apply func(req models.PaymentRequest) error) (*models.PaymentRequest, error)
}

// SettlementAppender defines the ledger operations settlement needs.
type SettlementAppender interface {
	Append(ctx context.Context, entry models.Transaction) models.Transaction
}

// SettlementResult is returned by a successful settlement.
type SettlementResult struct {
	Request     models.PaymentRequest // The settled request
	Wallet      models.Wallet         // Payer wallet after the debit
	Transaction models.Transaction    // The debit ledger entry
	Vendor      models.Vendor         // Vendor after the sale was recorded
}

// SettlementService applies a payment request's monetary effect exactly once.
// Amount, payer and vendor are always re-derived from the stored request by
// id; nothing in a settlement call is taken from the caller beyond the id.
type SettlementService struct {
	accounts    AccountDebitor
	vendors     SaleRecorder
	ledger      SettlementAppender
	registry    RequestRegistry
	kafkaWriter KafkaWriter
}

// NewSettlementService creates a new SettlementService.
func NewSettlementService(
	accounts AccountDebitor,
	vendors SaleRecorder,
	ledger SettlementAppender,
	registry RequestRegistry,
	kafkaWriter KafkaWriter,
) *SettlementService {
	return &SettlementService{
		accounts:    accounts,
		vendors:     vendors,
		ledger:      ledger,
		registry:    registry,
		kafkaWriter: kafkaWriter,
	}
}

// Issue creates a pending payment request for the payer against the vendor.
// The vendor must exist; the registry validates the payer's wallet and
// balance. ttl bounds how long the request stays settleable.
func (s *SettlementService) Issue(ctx context.Context, payerID, vendorID uuid.UUID, amount int64, ttl time.Duration) (*models.PaymentRequest, error) {
	if _, err := s.vendors.GetVendor(ctx, vendorID); err != nil {
		logger.Log.Warnw("payment request against unknown vendor", "vendor_id", vendorID, "error", err)
		return nil, err
	}

	req, err := s.registry.Issue(ctx, payerID, vendorID, amount, ttl)
	if err != nil {
		logger.Log.Warnw("failed to issue payment request",
			"user_id", payerID,
			"vendor_id", vendorID,
			"amount", amount,
			"error", err,
		)
		return nil, err
	}
	return req, nil
}

// Get returns the stored request by id.
func (s *SettlementService) Get(ctx context.Context, requestID uuid.UUID) (*models.PaymentRequest, error) {
	return s.registry.Get(ctx, requestID)
}

// Settle claims the request and applies its monetary effect: debit the payer,
// append the debit ledger entry, add the amount to the vendor's sales total.
// All three steps run inside the registry's per-request critical section, so
// the claim and the mutations are observed together. A debit refused for
// insufficient balance moves the request to its terminal failed state with no
// observable mutation; the vendor side is re-checked before the debit so a
// vanished vendor cannot leave a half-applied settlement behind.
func (s *SettlementService) Settle(ctx context.Context, requestID uuid.UUID) (*SettlementResult, error) {
	var result SettlementResult

	req, err := s.registry.Settle(ctx, requestID, func(req models.PaymentRequest) error {
		if _, err := s.vendors.GetVendor(ctx, req.VendorID); err != nil {
			return err
		}

		wallet, err := s.accounts.Debit(ctx, req.PayerID, req.Amount)
		if err != nil {
			return err
		}

		vendor, err := s.vendors.RecordSale(ctx, req.VendorID, req.Amount)
		if err != nil {
			return err
		}

		txn := s.ledger.Append(ctx, models.Transaction{
			UserID:      req.PayerID,
			VendorID:    &req.VendorID,
			Kind:        models.KindDebit,
			Amount:      req.Amount,
			Description: "Payment to vendor",
		})

		result.Wallet = wallet
		result.Vendor = vendor
		result.Transaction = txn
		return nil
	})
	if err != nil {
		logger.Log.Warnw("settlement refused", "payment_id", requestID, "error", err)
		return nil, err
	}

	result.Request = *req
	publishTransaction(ctx, s.kafkaWriter, result.Transaction)

	return &result, nil
}
