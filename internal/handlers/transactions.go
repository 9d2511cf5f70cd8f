package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/itsmeishwar/CampusPay/internal/logger"
	"github.com/itsmeishwar/CampusPay/internal/middlewares"
	"github.com/itsmeishwar/CampusPay/internal/models"
)

// TransactionLister defines the interface that the service must implement.
type TransactionLister interface {
	ListTransactions(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error)
}

// NewListTransactionsHandler returns an HTTP handler for the caller's history.
// @Summary List transactions
// @Description Returns the authenticated user's transactions, most recent first.
// @Tags wallet
// @Produce json
// @Success 200 {array} handlers.TransactionView "Transaction history"
// @Router /transactions [get]
// @Security BearerAuth
func NewListTransactionsHandler(svc TransactionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.ClaimsFromContext(ctx)
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		txns, err := svc.ListTransactions(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list transactions", "user_id", claims.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newTransactionViews(txns))
	}
}
