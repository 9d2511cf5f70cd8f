package repositories

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/itsmeishwar/CampusPay/internal/logger"
	"github.com/itsmeishwar/CampusPay/internal/models"
)

// ErrVendorNotFound is returned when no vendor exists under the given id.
var ErrVendorNotFound = errors.New("vendor not found")

type vendorEntry struct {
	mu     sync.Mutex
	vendor models.Vendor
}

// VendorRepository owns all Vendor records and their running sales totals.
// RecordSale is only ever invoked by the settlement engine; totals are
// serialized per vendor and never decrease.
type VendorRepository struct {
	mu      sync.RWMutex
	vendors map[uuid.UUID]*vendorEntry
}

func NewVendorRepository() *VendorRepository {
	return &VendorRepository{vendors: make(map[uuid.UUID]*vendorEntry)}
}

// SaveVendor stores a new vendor record with a zero sales total.
func (r *VendorRepository) SaveVendor(ctx context.Context, vendor models.Vendor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.vendors[vendor.ID]; exists {
		return errors.New("vendor already exists")
	}
	r.vendors[vendor.ID] = &vendorEntry{vendor: vendor}
	return nil
}

// GetVendor returns a snapshot of the vendor with the given id.
func (r *VendorRepository) GetVendor(ctx context.Context, vendorID uuid.UUID) (models.Vendor, error) {
	entry, err := r.entry(vendorID)
	if err != nil {
		return models.Vendor{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.vendor, nil
}

// ListVendors returns all vendor records.
func (r *VendorRepository) ListVendors(ctx context.Context) ([]models.Vendor, error) {
	r.mu.RLock()
	entries := make([]*vendorEntry, 0, len(r.vendors))
	for _, e := range r.vendors {
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	vendors := make([]models.Vendor, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		vendors = append(vendors, e.vendor)
		e.mu.Unlock()
	}
	return vendors, nil
}

// RecordSale adds amount cents to the vendor's sales total and returns the
// post-mutation snapshot. amount must be positive.
func (r *VendorRepository) RecordSale(ctx context.Context, vendorID uuid.UUID, amount int64) (models.Vendor, error) {
	if amount <= 0 {
		return models.Vendor{}, models.ErrInvalidAmount
	}

	entry, err := r.entry(vendorID)
	if err != nil {
		return models.Vendor{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.vendor.TotalSales += amount

	logger.Log.Infow("sale recorded",
		"vendor_id", vendorID,
		"amount", amount,
		"total_sales", entry.vendor.TotalSales,
	)
	return entry.vendor, nil
}

func (r *VendorRepository) entry(vendorID uuid.UUID) (*vendorEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.vendors[vendorID]
	if !ok {
		return nil, ErrVendorNotFound
	}
	return entry, nil
}
