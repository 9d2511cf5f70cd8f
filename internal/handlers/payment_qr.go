package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/itsmeishwar/CampusPay/internal/logger"
	"github.com/itsmeishwar/CampusPay/internal/middlewares"
	"github.com/itsmeishwar/CampusPay/internal/models"
	"github.com/itsmeishwar/CampusPay/internal/qr"
	"github.com/itsmeishwar/CampusPay/internal/repositories"
)

// PaymentIssuer defines the interface that the service must implement.
type PaymentIssuer interface {
	Issue(ctx context.Context, payerID, vendorID uuid.UUID, amount int64, ttl time.Duration) (*models.PaymentRequest, error)
}

// PaymentQRRequest represents the JSON body for issuing a payment request
// swagger:model PaymentQRRequest
type PaymentQRRequest struct {
	// Decimal amount to pay
	// required: true
	// default: 3.0
	Amount float64 `json:"amount"`

	// Vendor to pay
	// required: true
	VendorID string `json:"vendorId"`
}

// PaymentQRResponse represents a successful payment-request issuance
// swagger:model PaymentQRResponse
type PaymentQRResponse struct {
	// Identifier to present at settlement
	PaymentID string `json:"paymentId"`

	// QR code of the payment payload as a base64 PNG data URL
	QRCode string `json:"qrCode"`

	// Decimal amount of the request
	Amount float64 `json:"amount"`

	// Instant after which settlement is refused
	ExpiresAt time.Time `json:"expiresAt"`
}

// PaymentQRErrorResponse represents an error response for issuance
// swagger:model PaymentQRErrorResponse
type PaymentQRErrorResponse struct {
	// Error message
	// default: Insufficient balance
	Error string `json:"error"`
}

// qrPayload is the JSON document encoded into the QR image. Settlement only
// ever uses the payment id; the rest is display data for the scanning side.
type qrPayload struct {
	PaymentID string    `json:"paymentId"`
	UserID    string    `json:"userId"`
	VendorID  string    `json:"vendorId"`
	Amount    float64   `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

// NewPaymentQRHandler returns an HTTP handler that issues a payment request
// and renders it as a QR code.
// @Summary Issue a payment request
// @Description Creates a pending payment request against a vendor and returns its QR code.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body handlers.PaymentQRRequest true "Payment QR Request"
// @Success 200 {object} handlers.PaymentQRResponse "Payment request issued"
// @Failure 400 {object} handlers.PaymentQRErrorResponse "Invalid amount or insufficient balance"
// @Failure 404 {object} handlers.PaymentQRErrorResponse "Wallet or vendor not found"
// @Router /payments/qr [post]
// @Security BearerAuth
func NewPaymentQRHandler(svc PaymentIssuer, ttl time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.ClaimsFromContext(ctx)
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		var req PaymentQRRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Warnw("failed to decode payment QR request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		vendorID, err := uuid.Parse(req.VendorID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid vendor id")
			return
		}

		cents, err := models.ToCents(req.Amount)
		if err != nil {
			logger.Log.Warnw("invalid payment amount", "amount", req.Amount)
			writeError(w, http.StatusBadRequest, "Invalid amount")
			return
		}

		payment, err := svc.Issue(ctx, claims.UserID, vendorID, cents, ttl)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrInvalidAmount):
				writeError(w, http.StatusBadRequest, "Invalid amount")
			case errors.Is(err, repositories.ErrInsufficientBalance):
				writeError(w, http.StatusBadRequest, "Insufficient balance")
			case errors.Is(err, repositories.ErrWalletNotFound):
				writeError(w, http.StatusNotFound, "Wallet not found")
			case errors.Is(err, repositories.ErrVendorNotFound):
				writeError(w, http.StatusNotFound, "Vendor not found")
			default:
				logger.Log.Errorw("failed to issue payment request", "user_id", claims.UserID, "error", err)
				writeError(w, http.StatusInternalServerError, "Failed to generate QR code")
			}
			return
		}

		dataURL, err := qr.DataURL(qrPayload{
			PaymentID: payment.ID.String(),
			UserID:    payment.PayerID.String(),
			VendorID:  payment.VendorID.String(),
			Amount:    models.FromCents(payment.Amount),
			Timestamp: payment.CreatedAt,
		})
		if err != nil {
			logger.Log.Errorw("failed to render QR code", "payment_id", payment.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to generate QR code")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PaymentQRResponse{
			PaymentID: payment.ID.String(),
			QRCode:    dataURL,
			Amount:    models.FromCents(payment.Amount),
			ExpiresAt: payment.ExpiresAt,
		})
	}
}
