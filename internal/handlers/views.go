package handlers

import (
	"time"

	"github.com/itsmeishwar/CampusPay/internal/models"
)

// The core keeps money in integer cents; the JSON boundary speaks decimal
// amounts. The view types below are the only place that conversion happens.

// WalletView is the wire shape of a wallet.
// swagger:model WalletView
type WalletView struct {
	// Unique wallet identifier
	ID string `json:"id"`

	// Identifier of the wallet's owner
	UserID string `json:"user_id"`

	// Current balance as a decimal amount
	// default: 100.0
	Balance float64 `json:"balance"`

	// Timestamp when the wallet was created
	CreatedAt time.Time `json:"created_at"`
}

func newWalletView(w models.Wallet) WalletView {
	return WalletView{
		ID:        w.ID.String(),
		UserID:    w.UserID.String(),
		Balance:   models.FromCents(w.Balance),
		CreatedAt: w.CreatedAt,
	}
}

// TransactionView is the wire shape of a ledger entry.
// swagger:model TransactionView
type TransactionView struct {
	// Unique transaction identifier
	ID string `json:"id"`

	// Subject user of the balance change
	UserID string `json:"user_id"`

	// Counterparty vendor, omitted for top-ups
	VendorID string `json:"vendor_id,omitempty"`

	// credit or debit
	Type string `json:"type"`

	// Decimal amount
	// default: 5.0
	Amount float64 `json:"amount"`

	// Human-readable note
	Description string `json:"description"`

	// When the entry was appended
	Timestamp time.Time `json:"timestamp"`
}

func newTransactionView(t models.Transaction) TransactionView {
	v := TransactionView{
		ID:          t.ID.String(),
		UserID:      t.UserID.String(),
		Type:        string(t.Kind),
		Amount:      models.FromCents(t.Amount),
		Description: t.Description,
		Timestamp:   t.Timestamp,
	}
	if t.VendorID != nil {
		v.VendorID = t.VendorID.String()
	}
	return v
}

func newTransactionViews(txns []models.Transaction) []TransactionView {
	views := make([]TransactionView, 0, len(txns))
	for _, t := range txns {
		views = append(views, newTransactionView(t))
	}
	return views
}

// VendorView is the wire shape of a vendor record.
// swagger:model VendorView
type VendorView struct {
	// Vendor identifier (equal to the owning user's id)
	ID string `json:"id"`

	// Display name
	Name string `json:"name"`

	// Contact email
	Email string `json:"email"`

	// Lifetime settled sales as a decimal amount
	TotalSales float64 `json:"totalSales"`

	// Registration timestamp
	CreatedAt time.Time `json:"created_at"`
}

func newVendorView(v models.Vendor) VendorView {
	return VendorView{
		ID:         v.ID.String(),
		Name:       v.Name,
		Email:      v.Email,
		TotalSales: models.FromCents(v.TotalSales),
		CreatedAt:  v.CreatedAt,
	}
}

// UserView is the public wire shape of a user, without the credential hash.
// swagger:model UserView
type UserView struct {
	// User identifier
	ID string `json:"id"`

	// Unique email
	Email string `json:"email"`

	// Display name
	Name string `json:"name"`

	// student, vendor or admin
	Role string `json:"role"`
}

func newUserView(u models.User) UserView {
	return UserView{
		ID:    u.ID.String(),
		Email: u.Email,
		Name:  u.Name,
		Role:  string(u.Role),
	}
}
