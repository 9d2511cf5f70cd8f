package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/itsmeishwar/CampusPay/internal/logger"
	"github.com/itsmeishwar/CampusPay/internal/models"
	"github.com/itsmeishwar/CampusPay/internal/services"
)

// AdminReader defines the interface that the service must implement.
type AdminReader interface {
	GetDashboard(ctx context.Context) (*services.Dashboard, error)
	ListUsersWithBalances(ctx context.Context) ([]services.UserWithBalance, error)
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
}

// DashboardResponse represents the admin dashboard
// swagger:model DashboardResponse
type DashboardResponse struct {
	TotalUsers         int               `json:"totalUsers"`
	TotalStudents      int               `json:"totalStudents"`
	TotalVendors       int               `json:"totalVendors"`
	TotalTransactions  int               `json:"totalTransactions"`
	TotalWalletBalance float64           `json:"totalWalletBalance"`
	RecentTransactions []TransactionView `json:"recentTransactions"`
}

// AdminUserRow is a user row enriched with its wallet balance
// swagger:model AdminUserRow
type AdminUserRow struct {
	UserView
	WalletBalance float64 `json:"walletBalance"`
}

// NewAdminDashboardHandler returns an HTTP handler for the admin dashboard.
// @Summary Admin dashboard
// @Description Returns system-wide aggregates: user counts, transaction count, total balance.
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.DashboardResponse "Dashboard"
// @Failure 403 {object} handlers.RegisterErrorResponse "Access denied"
// @Router /admin/dashboard [get]
// @Security BearerAuth
func NewAdminDashboardHandler(svc AdminReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		dashboard, err := svc.GetDashboard(ctx)
		if err != nil {
			logger.Log.Errorw("failed to build dashboard", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DashboardResponse{
			TotalUsers:         dashboard.TotalUsers,
			TotalStudents:      dashboard.TotalStudents,
			TotalVendors:       dashboard.TotalVendors,
			TotalTransactions:  dashboard.TotalTransactions,
			TotalWalletBalance: models.FromCents(dashboard.TotalWalletBalance),
			RecentTransactions: newTransactionViews(dashboard.RecentTransactions),
		})
	}
}

// NewAdminUsersHandler returns an HTTP handler listing users with balances.
// @Summary List users
// @Description Returns all users with their wallet balances. Credential hashes are never included.
// @Tags admin
// @Produce json
// @Success 200 {array} handlers.AdminUserRow "Users"
// @Failure 403 {object} handlers.RegisterErrorResponse "Access denied"
// @Router /admin/users [get]
// @Security BearerAuth
func NewAdminUsersHandler(svc AdminReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		users, err := svc.ListUsersWithBalances(ctx)
		if err != nil {
			logger.Log.Errorw("failed to list users", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		rows := make([]AdminUserRow, 0, len(users))
		for _, u := range users {
			rows = append(rows, AdminUserRow{
				UserView:      newUserView(u.User),
				WalletBalance: models.FromCents(u.WalletBalance),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(rows)
	}
}

// NewAdminTransactionsHandler returns an HTTP handler for the full ledger feed.
// @Summary List all transactions
// @Description Returns every ledger entry, most recent first.
// @Tags admin
// @Produce json
// @Success 200 {array} handlers.TransactionView "Transactions"
// @Failure 403 {object} handlers.RegisterErrorResponse "Access denied"
// @Router /admin/transactions [get]
// @Security BearerAuth
func NewAdminTransactionsHandler(svc AdminReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		txns, err := svc.ListTransactions(ctx)
		if err != nil {
			logger.Log.Errorw("failed to list transactions", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newTransactionViews(txns))
	}
}
