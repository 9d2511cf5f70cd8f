package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/itsmeishwar/CampusPay/internal/logger"
	"github.com/itsmeishwar/CampusPay/internal/models"
	"github.com/itsmeishwar/CampusPay/internal/services"
)

// LoginAuthenticator defines the interface that the service must implement.
type LoginAuthenticator interface {
	Login(ctx context.Context, email, password string) (models.User, string, error)
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// User email
	// required: true
	Email string `json:"email"`

	// Password in plain text
	// required: true
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Success message
	// default: Login successful
	Message string `json:"message"`

	// Signed access token
	Token string `json:"token"`

	// Public view of the authenticated user
	User UserView `json:"user"`
}

// LoginErrorResponse represents an error response for login
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	// Error message
	// default: Invalid credentials
	Error string `json:"error"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Log in
// @Description Verifies credentials and returns a signed access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "Login successful"
// @Failure 400 {object} handlers.LoginErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func NewLoginHandler(svc LoginAuthenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Warnw("failed to decode login request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, token, err := svc.Login(ctx, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				writeError(w, http.StatusBadRequest, "Invalid credentials")
				return
			}
			logger.Log.Errorw("login failed", "email", req.Email, "error", err)
			writeError(w, http.StatusInternalServerError, "Login failed")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{
			Message: "Login successful",
			Token:   token,
			User:    newUserView(user),
		})
	}
}
