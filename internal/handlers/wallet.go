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

// WalletGetter defines the interface that the service must implement.
type WalletGetter interface {
	GetWallet(ctx context.Context, userID uuid.UUID) (models.Wallet, error)
}

// NewGetWalletHandler returns an HTTP handler for reading the caller's wallet.
// @Summary Get wallet
// @Description Returns the authenticated user's wallet snapshot.
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.WalletView "Wallet snapshot"
// @Failure 404 {object} handlers.RegisterErrorResponse "Wallet not found"
// @Router /wallet [get]
// @Security BearerAuth
func NewGetWalletHandler(svc WalletGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.ClaimsFromContext(ctx)
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		wallet, err := svc.GetWallet(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, repositories.ErrWalletNotFound) {
				writeError(w, http.StatusNotFound, "Wallet not found")
				return
			}
			logger.Log.Errorw("failed to get wallet", "user_id", claims.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newWalletView(wallet))
	}
}
