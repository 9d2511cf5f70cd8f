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

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password, name string, role models.Role) (models.User, string, error)
}

// RegisterRequest represents the JSON body for registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// User email
	// required: true
	Email string `json:"email"`

	// Password in plain text, hashed before storage
	// required: true
	Password string `json:"password"`

	// Display name
	// required: true
	Name string `json:"name"`

	// Role: student, vendor or admin; defaults to student
	// default: student
	Role string `json:"role"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: User registered successfully
	Message string `json:"message"`

	// Signed access token
	Token string `json:"token"`

	// Public view of the created user
	User UserView `json:"user"`
}

// RegisterErrorResponse represents an error response for registration
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Error message
	// default: User already exists
	Error string `json:"error"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a user account. Students get a zero-balance wallet, vendors a vendor record.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.RegisterRequest true "Register Request"
// @Success 201 {object} handlers.RegisterResponse "User registered successfully"
// @Failure 400 {object} handlers.RegisterErrorResponse "Invalid request or user already exists"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Warnw("failed to decode register request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.Email == "" || req.Password == "" || req.Name == "" {
			writeError(w, http.StatusBadRequest, "Email, password and name are required")
			return
		}

		if req.Role == "" {
			req.Role = string(models.RoleStudent)
		}
		role, err := models.ParseRole(req.Role)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid role")
			return
		}

		user, token, err := svc.Register(ctx, req.Email, req.Password, req.Name, role)
		if err != nil {
			if errors.Is(err, services.ErrUserAlreadyExists) {
				writeError(w, http.StatusBadRequest, "User already exists")
				return
			}
			logger.Log.Errorw("registration failed", "email", req.Email, "error", err)
			writeError(w, http.StatusInternalServerError, "Registration failed")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterResponse{
			Message: "User registered successfully",
			Token:   token,
			User:    newUserView(user),
		})
	}
}

// writeError writes a JSON error body with the given status code.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
