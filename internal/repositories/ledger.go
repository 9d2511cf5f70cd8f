package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/itsmeishwar/CampusPay/internal/logger"
	"github.com/itsmeishwar/CampusPay/internal/models"
)

// LedgerRepository is the append-only transaction log and the source of truth
// for all financial history. Entries are insertion-ordered, never mutated and
// never removed; every balance mutation in the system writes exactly one entry.
type LedgerRepository struct {
	mu      sync.RWMutex
	entries []models.Transaction
}

func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{}
}

// Append assigns an id and timestamp to the entry and stores it.
func (r *LedgerRepository) Append(ctx context.Context, entry models.Transaction) models.Transaction {
	entry.ID = uuid.New()
	entry.Timestamp = time.Now()

	r.mu.Lock()
	r.entries = append(r.entries, entry)
	r.mu.Unlock()

	logger.Log.Infow("ledger entry appended",
		"transaction_id", entry.ID,
		"user_id", entry.UserID,
		"type", entry.Kind,
		"amount", entry.Amount,
	)
	return entry
}

// ListFor returns the subject user's transactions, most recent first.
func (r *LedgerRepository) ListFor(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Transaction
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].UserID == userID {
			out = append(out, r.entries[i])
		}
	}
	return out, nil
}

// ListForVendor returns transactions addressed to the vendor, most recent first.
func (r *LedgerRepository) ListForVendor(ctx context.Context, vendorID uuid.UUID) ([]models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Transaction
	for i := len(r.entries) - 1; i >= 0; i-- {
		e := r.entries[i]
		if e.VendorID != nil && *e.VendorID == vendorID {
			out = append(out, e)
		}
	}
	return out, nil
}

// ListRecent returns up to n of the newest entries, most recent first.
func (r *LedgerRepository) ListRecent(ctx context.Context, n int) ([]models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if n > len(r.entries) {
		n = len(r.entries)
	}
	out := make([]models.Transaction, 0, n)
	for i := len(r.entries) - 1; i >= len(r.entries)-n; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}

// ListAll returns every entry, most recent first.
func (r *LedgerRepository) ListAll(ctx context.Context) ([]models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Transaction, 0, len(r.entries))
	for i := len(r.entries) - 1; i >= 0; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}

// Count returns the number of ledger entries.
func (r *LedgerRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries), nil
}
