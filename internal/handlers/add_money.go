package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/itsmeishwar/CampusPay/internal/logger"
	"github.com/itsmeishwar/CampusPay/internal/middlewares"
	"github.com/itsmeishwar/CampusPay/internal/models"
	"github.com/itsmeishwar/CampusPay/internal/repositories"
)

// MoneyAdder defines the interface that the service must implement.
type MoneyAdder interface {
	AddMoney(ctx context.Context, userID uuid.UUID, amount int64) (models.Wallet, models.Transaction, error)
}

// AddMoneyRequest represents the JSON body for topping up a wallet
// swagger:model AddMoneyRequest
type AddMoneyRequest struct {
	// Decimal amount to add
	// required: true
	// default: 100.0
	Amount float64 `json:"amount"`
}

// AddMoneyResponse represents a successful top-up response
// swagger:model AddMoneyResponse
type AddMoneyResponse struct {
	// Success message
	// default: Money added successfully
	Message string `json:"message"`

	// New balance as a decimal amount
	Balance float64 `json:"balance"`

	// The credit ledger entry
	Transaction TransactionView `json:"transaction"`
}

// AddMoneyErrorResponse represents an error response for top-up
// swagger:model AddMoneyErrorResponse
type AddMoneyErrorResponse struct {
	// Error message
	// default: Invalid amount
	Error string `json:"error"`
}

// NewAddMoneyHandler returns an HTTP handler for topping up the caller's wallet.
// @Summary Add money
// @Description Credits the authenticated user's wallet and records a credit transaction.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.AddMoneyRequest true "Add Money Request"
// @Success 200 {object} handlers.AddMoneyResponse "Money added successfully"
// @Failure 400 {object} handlers.AddMoneyErrorResponse "Invalid amount"
// @Failure 404 {object} handlers.AddMoneyErrorResponse "Wallet not found"
// @Router /wallet/add-money [post]
// @Security BearerAuth
func NewAddMoneyHandler(svc MoneyAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.ClaimsFromContext(ctx)
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		var req AddMoneyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Warnw("failed to decode add-money request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		cents, err := models.ToCents(req.Amount)
		if err != nil {
			logger.Log.Warnw("invalid top-up amount", "amount", req.Amount)
			writeError(w, http.StatusBadRequest, "Invalid amount")
			return
		}

		wallet, txn, err := svc.AddMoney(ctx, claims.UserID, cents)
		if err != nil {
			switch {
			case errors.Is(err, repositories.ErrWalletNotFound):
				writeError(w, http.StatusNotFound, "Wallet not found")
			case errors.Is(err, models.ErrInvalidAmount):
				writeError(w, http.StatusBadRequest, "Invalid amount")
			default:
				logger.Log.Errorw("failed to add money", "user_id", claims.UserID, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AddMoneyResponse{
			Message:     "Money added successfully",
			Balance:     models.FromCents(wallet.Balance),
			Transaction: newTransactionView(txn),
		})
	}
}
