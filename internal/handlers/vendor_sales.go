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

// SalesGetter defines the interface that the service must implement.
type SalesGetter interface {
	GetSales(ctx context.Context, vendorID uuid.UUID) (models.Vendor, []models.Transaction, error)
}

// VendorSalesResponse represents the vendor's sales view
// swagger:model VendorSalesResponse
type VendorSalesResponse struct {
	// The vendor record
	Vendor VendorView `json:"vendor"`

	// Transactions addressed to this vendor, most recent first
	Transactions []TransactionView `json:"transactions"`

	// Lifetime settled sales as a decimal amount
	TotalSales float64 `json:"totalSales"`
}

// NewVendorSalesHandler returns an HTTP handler for the vendor sales view.
// @Summary Get vendor sales
// @Description Returns the calling vendor's record, transaction feed and sales total.
// @Tags vendor
// @Produce json
// @Success 200 {object} handlers.VendorSalesResponse "Vendor sales"
// @Failure 403 {object} handlers.RegisterErrorResponse "Access denied"
// @Failure 404 {object} handlers.RegisterErrorResponse "Vendor not found"
// @Router /vendor/sales [get]
// @Security BearerAuth
func NewVendorSalesHandler(svc SalesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.ClaimsFromContext(ctx)
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		vendor, txns, err := svc.GetSales(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, repositories.ErrVendorNotFound) {
				writeError(w, http.StatusNotFound, "Vendor not found")
				return
			}
			logger.Log.Errorw("failed to get vendor sales", "vendor_id", claims.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(VendorSalesResponse{
			Vendor:       newVendorView(vendor),
			Transactions: newTransactionViews(txns),
			TotalSales:   models.FromCents(vendor.TotalSales),
		})
	}
}
