package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/itsmeishwar/CampusPay/internal/logger"
	"github.com/itsmeishwar/CampusPay/internal/models"
	"github.com/itsmeishwar/CampusPay/internal/repositories"
	"github.com/itsmeishwar/CampusPay/internal/services"
)

// PaymentSettler defines the interface that the service must implement.
type PaymentSettler interface {
	Settle(ctx context.Context, requestID uuid.UUID) (*services.SettlementResult, error)
}

// PaymentProcessRequest represents the JSON body for settling a payment.
// Only the id is accepted: amount, payer and vendor are re-derived from the
// stored request so a forged or altered payload cannot move money.
// swagger:model PaymentProcessRequest
type PaymentProcessRequest struct {
	// Identifier of the payment request to settle
	// required: true
	PaymentID string `json:"paymentId"`
}

// PaymentProcessResponse represents a successful settlement
// swagger:model PaymentProcessResponse
type PaymentProcessResponse struct {
	// Success message
	// default: Payment processed successfully
	Message string `json:"message"`

	// The debit ledger entry
	Transaction TransactionView `json:"transaction"`

	// Payer balance after the debit, as a decimal amount
	NewBalance float64 `json:"newBalance"`
}

// PaymentProcessErrorResponse represents an error response for settlement
// swagger:model PaymentProcessErrorResponse
type PaymentProcessErrorResponse struct {
	// Error message
	// default: Payment failed - insufficient balance
	Error string `json:"error"`
}

// NewPaymentProcessHandler returns an HTTP handler that settles a payment
// request by id.
// @Summary Settle a payment request
// @Description Applies the stored payment request's monetary effect exactly once.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body handlers.PaymentProcessRequest true "Payment Process Request"
// @Success 200 {object} handlers.PaymentProcessResponse "Payment processed successfully"
// @Failure 400 {object} handlers.PaymentProcessErrorResponse "Insufficient balance"
// @Failure 404 {object} handlers.PaymentProcessErrorResponse "Payment request not found"
// @Failure 409 {object} handlers.PaymentProcessErrorResponse "Already settled"
// @Failure 410 {object} handlers.PaymentProcessErrorResponse "Expired"
// @Router /payments/process [post]
// @Security BearerAuth
func NewPaymentProcessHandler(svc PaymentSettler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req PaymentProcessRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Warnw("failed to decode payment process request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		paymentID, err := uuid.Parse(req.PaymentID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid payment id")
			return
		}

		result, err := svc.Settle(ctx, paymentID)
		if err != nil {
			switch {
			case errors.Is(err, repositories.ErrRequestNotFound):
				writeError(w, http.StatusNotFound, "Payment request not found")
			case errors.Is(err, repositories.ErrAlreadySettled):
				writeError(w, http.StatusConflict, "Payment request already settled")
			case errors.Is(err, repositories.ErrRequestExpired):
				writeError(w, http.StatusGone, "Payment request expired")
			case errors.Is(err, repositories.ErrInsufficientBalance):
				writeError(w, http.StatusBadRequest, "Payment failed - insufficient balance")
			default:
				logger.Log.Errorw("settlement failed", "payment_id", paymentID, "error", err)
				writeError(w, http.StatusInternalServerError, "Payment processing failed")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PaymentProcessResponse{
			Message:     "Payment processed successfully",
			Transaction: newTransactionView(result.Transaction),
			NewBalance:  models.FromCents(result.Wallet.Balance),
		})
	}
}
