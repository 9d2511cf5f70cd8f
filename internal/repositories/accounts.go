package repositories

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/itsmeishwar/CampusPay/internal/logger"
	"github.com/itsmeishwar/CampusPay/internal/models"
)

// Error variables
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// walletEntry pairs a wallet with its own mutex so that operations on
// different wallets never contend with each other.
type walletEntry struct {
	mu     sync.Mutex
	wallet models.Wallet
}

// AccountRepository owns all User and Wallet records. State is in-memory and
// process-lifetime; nothing outside this type mutates a balance. Credit and
// Debit serialize per wallet and never let a balance go negative, independent
// of any checks the caller may have done.
type AccountRepository struct {
	mu      sync.RWMutex
	users   map[uuid.UUID]models.User
	byEmail map[string]uuid.UUID
	wallets map[uuid.UUID]*walletEntry // keyed by owning user id
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		users:   make(map[uuid.UUID]models.User),
		byEmail: make(map[string]uuid.UUID),
		wallets: make(map[uuid.UUID]*walletEntry),
	}
}

// SaveUser stores a new user. Emails are unique; matching is case-insensitive.
func (r *AccountRepository) SaveUser(ctx context.Context, user models.User) error {
	key := strings.ToLower(user.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[key]; taken {
		return ErrEmailTaken
	}
	r.users[user.ID] = user
	r.byEmail[key] = user.ID
	return nil
}

// GetUser returns the user with the given id.
func (r *AccountRepository) GetUser(ctx context.Context, userID uuid.UUID) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

// GetUserByEmail returns the user registered under the given email.
func (r *AccountRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return r.users[userID], nil
}

// ListUsers returns all users ordered by registration time.
func (r *AccountRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

// CreateWallet provisions a zero-balance wallet for the given user.
func (r *AccountRepository) CreateWallet(ctx context.Context, userID uuid.UUID) (models.Wallet, error) {
	wallet := models.Wallet{
		ID:        uuid.New(),
		UserID:    userID,
		Balance:   0,
		CreatedAt: time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.wallets[userID]; exists {
		return models.Wallet{}, errors.New("wallet already exists")
	}
	r.wallets[userID] = &walletEntry{wallet: wallet}
	return wallet, nil
}

// GetWallet returns a snapshot of the user's wallet.
func (r *AccountRepository) GetWallet(ctx context.Context, userID uuid.UUID) (models.Wallet, error) {
	entry, err := r.entry(userID)
	if err != nil {
		return models.Wallet{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.wallet, nil
}

// Credit adds amount cents to the user's wallet and returns the post-mutation
// snapshot. amount must be positive.
func (r *AccountRepository) Credit(ctx context.Context, userID uuid.UUID, amount int64) (models.Wallet, error) {
	if amount <= 0 {
		return models.Wallet{}, models.ErrInvalidAmount
	}

	entry, err := r.entry(userID)
	if err != nil {
		return models.Wallet{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.wallet.Balance += amount

	logger.Log.Infow("wallet credited",
		"user_id", userID,
		"amount", amount,
		"balance", entry.wallet.Balance,
	)
	return entry.wallet, nil
}

// Debit removes amount cents from the user's wallet and returns the
// post-mutation snapshot. The check and the subtraction happen under the
// wallet's lock, so the balance can never be observed below zero.
func (r *AccountRepository) Debit(ctx context.Context, userID uuid.UUID, amount int64) (models.Wallet, error) {
	if amount <= 0 {
		return models.Wallet{}, models.ErrInvalidAmount
	}

	entry, err := r.entry(userID)
	if err != nil {
		return models.Wallet{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.wallet.Balance-amount < 0 {
		return models.Wallet{}, ErrInsufficientBalance
	}
	entry.wallet.Balance -= amount

	logger.Log.Infow("wallet debited",
		"user_id", userID,
		"amount", amount,
		"balance", entry.wallet.Balance,
	)
	return entry.wallet, nil
}

// TotalBalance sums all wallet balances, in cents.
func (r *AccountRepository) TotalBalance(ctx context.Context) (int64, error) {
	r.mu.RLock()
	entries := make([]*walletEntry, 0, len(r.wallets))
	for _, e := range r.wallets {
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	var total int64
	for _, e := range entries {
		e.mu.Lock()
		total += e.wallet.Balance
		e.mu.Unlock()
	}
	return total, nil
}

func (r *AccountRepository) entry(userID uuid.UUID) (*walletEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.wallets[userID]
	if !ok {
		return nil, ErrWalletNotFound
	}
	return entry, nil
}
