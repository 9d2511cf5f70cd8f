package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/itsmeishwar/CampusPay/internal/logger"
	"github.com/itsmeishwar/CampusPay/internal/models"
)

// VendorReader defines the vendor-store reads the vendor service needs.
type VendorReader interface {
	GetVendor(ctx context.Context, vendorID uuid.UUID) (models.Vendor, error)
}

// VendorLedgerReader defines the ledger reads the vendor service needs.
type VendorLedgerReader interface {
	ListForVendor(ctx context.Context, vendorID uuid.UUID) ([]models.Transaction, error)
}

// VendorService serves the vendor-facing sales view.
type VendorService struct {
	vendors VendorReader
	ledger  VendorLedgerReader
}

// NewVendorService creates a new VendorService.
func NewVendorService(vendors VendorReader, ledger VendorLedgerReader) *VendorService {
	return &VendorService{
		vendors: vendors,
		ledger:  ledger,
	}
}

// GetSales returns the vendor record together with the transactions addressed
// to it, most recent first. TotalSales on the returned vendor equals the sum
// of those settled debit entries.
func (s *VendorService) GetSales(ctx context.Context, vendorID uuid.UUID) (models.Vendor, []models.Transaction, error) {
	vendor, err := s.vendors.GetVendor(ctx, vendorID)
	if err != nil {
		logger.Log.Warnw("failed to get vendor", "vendor_id", vendorID, "error", err)
		return models.Vendor{}, nil, err
	}

	txns, err := s.ledger.ListForVendor(ctx, vendorID)
	if err != nil {
		logger.Log.Errorw("failed to list vendor transactions", "vendor_id", vendorID, "error", err)
		return models.Vendor{}, nil, err
	}

	return vendor, txns, nil
}
