package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/itsmeishwar/CampusPay/internal/models"
	"github.com/itsmeishwar/CampusPay/internal/repositories"
	"github.com/itsmeishwar/CampusPay/internal/services"
)

func TestPaymentProcessHandler(t *testing.T) {
	paymentID := uuid.New()
	userID := uuid.New()
	vendorID := uuid.New()

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockSettler *MockPaymentSettler)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:        "successful settlement",
			requestBody: PaymentProcessRequest{PaymentID: paymentID.String()},
			setupMocks: func(mockSettler *MockPaymentSettler) {
				mockSettler.EXPECT().Settle(gomock.Any(), paymentID).Return(&services.SettlementResult{
					Request: models.PaymentRequest{ID: paymentID, PayerID: userID, VendorID: vendorID, Amount: 30000, State: models.PaymentSettled},
					Wallet:  models.Wallet{UserID: userID, Balance: 20000},
					Transaction: models.Transaction{
						ID: uuid.New(), UserID: userID, VendorID: &vendorID,
						Kind: models.KindDebit, Amount: 30000,
					},
				}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "message",
		},
		{
			name:               "invalid request body",
			requestBody:        "invalid-json",
			setupMocks:         func(mockSettler *MockPaymentSettler) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:               "invalid payment id",
			requestBody:        PaymentProcessRequest{PaymentID: "not-a-uuid"},
			setupMocks:         func(mockSettler *MockPaymentSettler) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:        "request not found",
			requestBody: PaymentProcessRequest{PaymentID: paymentID.String()},
			setupMocks: func(mockSettler *MockPaymentSettler) {
				mockSettler.EXPECT().Settle(gomock.Any(), paymentID).Return(nil, repositories.ErrRequestNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
			expectedKey:        "error",
		},
		{
			name:        "already settled",
			requestBody: PaymentProcessRequest{PaymentID: paymentID.String()},
			setupMocks: func(mockSettler *MockPaymentSettler) {
				mockSettler.EXPECT().Settle(gomock.Any(), paymentID).Return(nil, repositories.ErrAlreadySettled)
			},
			expectedStatusCode: http.StatusConflict,
			expectedKey:        "error",
		},
		{
			name:        "expired",
			requestBody: PaymentProcessRequest{PaymentID: paymentID.String()},
			setupMocks: func(mockSettler *MockPaymentSettler) {
				mockSettler.EXPECT().Settle(gomock.Any(), paymentID).Return(nil, repositories.ErrRequestExpired)
			},
			expectedStatusCode: http.StatusGone,
			expectedKey:        "error",
		},
		{
			name:        "insufficient balance",
			requestBody: PaymentProcessRequest{PaymentID: paymentID.String()},
			setupMocks: func(mockSettler *MockPaymentSettler) {
				mockSettler.EXPECT().Settle(gomock.Any(), paymentID).Return(nil, repositories.ErrInsufficientBalance)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSettler := NewMockPaymentSettler(ctrl)
			tt.setupMocks(mockSettler)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/payments/process", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()

			handler := NewPaymentProcessHandler(mockSettler)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			var resp map[string]interface{}
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)

			_, ok := resp[tt.expectedKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedKey)
		})
	}
}
