package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/itsmeishwar/CampusPay/internal/logger"
	"github.com/itsmeishwar/CampusPay/internal/models"
	"github.com/itsmeishwar/CampusPay/internal/repositories"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserStore defines the account-store operations registration and login need.
type UserStore interface {
	SaveUser(ctx context.Context, user models.User) error
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	CreateWallet(ctx context.Context, userID uuid.UUID) (models.Wallet, error)
}

// VendorStore defines the vendor-store operations registration needs.
type VendorStore interface {
	SaveVendor(ctx context.Context, vendor models.Vendor) error
}

// TokenGenerator defines an interface for generating JWT tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, role models.Role) (string, error)
}

// AuthService handles registration and login. Registration provisions the
// role-specific records: students get a zero-balance wallet, vendors a vendor
// record with a zero sales total.
type AuthService struct {
	users   UserStore
	vendors VendorStore
	jwt     TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users UserStore, vendors VendorStore, jwt TokenGenerator) *AuthService {
	return &AuthService{
		users:   users,
		vendors: vendors,
		jwt:     jwt,
	}
}

// Register creates a new user and returns it together with a signed token.
func (svc *AuthService) Register(ctx context.Context, email, password, name string, role models.Role) (models.User, string, error) {
	if _, err := svc.users.GetUserByEmail(ctx, email); err == nil {
		logger.Log.Warnw("user already exists", "email", email)
		return models.User{}, "", ErrUserAlreadyExists
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		logger.Log.Errorw("failed to check user exists", "email", email, "error", err)
		return models.User{}, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return models.User{}, "", err
	}

	user := models.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
	}

	if err := svc.users.SaveUser(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "email", email, "error", err)
		if errors.Is(err, repositories.ErrEmailTaken) {
			return models.User{}, "", ErrUserAlreadyExists
		}
		return models.User{}, "", err
	}

	switch role {
	case models.RoleStudent:
		if _, err := svc.users.CreateWallet(ctx, user.ID); err != nil {
			logger.Log.Errorw("failed to create wallet", "user_id", user.ID, "error", err)
			return models.User{}, "", err
		}
	case models.RoleVendor:
		vendor := models.Vendor{
			ID:        user.ID,
			Name:      name,
			Email:     email,
			CreatedAt: user.CreatedAt,
		}
		if err := svc.vendors.SaveVendor(ctx, vendor); err != nil {
			logger.Log.Errorw("failed to create vendor record", "user_id", user.ID, "error", err)
			return models.User{}, "", err
		}
	case models.RoleAdmin:
		// Admins hold no wallet and no vendor record.
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "user_id", user.ID, "error", err)
		return models.User{}, "", err
	}

	return user, token, nil
}

// Login authenticates a user and returns it together with a signed token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	user, err := svc.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			logger.Log.Warnw("login for unknown email", "email", email)
			return models.User{}, "", ErrInvalidCredentials
		}
		logger.Log.Errorw("failed to get user", "email", email, "error", err)
		return models.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "email", email)
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "user_id", user.ID, "error", err)
		return models.User{}, "", err
	}

	return user, token, nil
}
