package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/itsmeishwar/CampusPay/internal/logger"
	"github.com/itsmeishwar/CampusPay/internal/models"
	"github.com/itsmeishwar/CampusPay/internal/repositories"
)

// recentTransactionLimit bounds the dashboard's transaction preview.
const recentTransactionLimit = 10

// AccountLister defines the account-store reads the admin service needs.
type AccountLister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetWallet(ctx context.Context, userID uuid.UUID) (models.Wallet, error)
	TotalBalance(ctx context.Context) (int64, error)
}

// LedgerReader defines the ledger reads the admin service needs.
type LedgerReader interface {
	Count(ctx context.Context) (int, error)
	ListRecent(ctx context.Context, n int) ([]models.Transaction, error)
	ListAll(ctx context.Context) ([]models.Transaction, error)
}

// Dashboard aggregates system-wide activity for the admin view.
type Dashboard struct {
	TotalUsers         int                  `json:"totalUsers"`
	TotalStudents      int                  `json:"totalStudents"`
	TotalVendors       int                  `json:"totalVendors"`
	TotalTransactions  int                  `json:"totalTransactions"`
	TotalWalletBalance int64                `json:"totalWalletBalance"`
	RecentTransactions []models.Transaction `json:"recentTransactions"`
}

// UserWithBalance is a user row enriched with its wallet balance.
type UserWithBalance struct {
	models.User
	WalletBalance int64 `json:"walletBalance"`
}

// AdminService provides read-only aggregates over the stores.
type AdminService struct {
	accounts AccountLister
	ledger   LedgerReader
}

// NewAdminService creates a new AdminService.
func NewAdminService(accounts AccountLister, ledger LedgerReader) *AdminService {
	return &AdminService{
		accounts: accounts,
		ledger:   ledger,
	}
}

// GetDashboard returns the aggregate activity snapshot.
func (s *AdminService) GetDashboard(ctx context.Context) (*Dashboard, error) {
	users, err := s.accounts.ListUsers(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, err
	}

	var students, vendors int
	for _, u := range users {
		switch u.Role {
		case models.RoleStudent:
			students++
		case models.RoleVendor:
			vendors++
		case models.RoleAdmin:
		}
	}

	count, err := s.ledger.Count(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count transactions", "error", err)
		return nil, err
	}

	total, err := s.accounts.TotalBalance(ctx)
	if err != nil {
		logger.Log.Errorw("failed to sum wallet balances", "error", err)
		return nil, err
	}

	recent, err := s.ledger.ListRecent(ctx, recentTransactionLimit)
	if err != nil {
		logger.Log.Errorw("failed to list recent transactions", "error", err)
		return nil, err
	}

	return &Dashboard{
		TotalUsers:         len(users),
		TotalStudents:      students,
		TotalVendors:       vendors,
		TotalTransactions:  count,
		TotalWalletBalance: total,
		RecentTransactions: recent,
	}, nil
}

// ListUsersWithBalances returns all users enriched with wallet balances.
// Users without a wallet (vendors, admins) report a zero balance.
func (s *AdminService) ListUsersWithBalances(ctx context.Context) ([]UserWithBalance, error) {
	users, err := s.accounts.ListUsers(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, err
	}

	out := make([]UserWithBalance, 0, len(users))
	for _, u := range users {
		row := UserWithBalance{User: u}
		wallet, err := s.accounts.GetWallet(ctx, u.ID)
		switch {
		case err == nil:
			row.WalletBalance = wallet.Balance
		case errors.Is(err, repositories.ErrWalletNotFound):
			// No wallet for this role.
		default:
			logger.Log.Errorw("failed to get wallet", "user_id", u.ID, "error", err)
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}

// ListTransactions returns the full transaction feed, most recent first.
func (s *AdminService) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	txns, err := s.ledger.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "error", err)
		return nil, err
	}
	return txns, nil
}
