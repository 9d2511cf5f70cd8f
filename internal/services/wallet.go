package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/itsmeishwar/CampusPay/internal/logger"
	"github.com/itsmeishwar/CampusPay/internal/models"
)

// WalletStore defines the account-store operations the wallet service needs.
type WalletStore interface {
	GetWallet(ctx context.Context, userID uuid.UUID) (models.Wallet, error)
	Credit(ctx context.Context, userID uuid.UUID, amount int64) (models.Wallet, error)
}

// LedgerWriter defines the ledger operations the wallet service needs.
type LedgerWriter interface {
	Append(ctx context.Context, entry models.Transaction) models.Transaction
	ListFor(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// WalletService handles top-ups and wallet reads. A top-up is a single-step
// credit: one balance mutation plus exactly one credit ledger entry, with no
// settlement involvement since there is no counterparty.
type WalletService struct {
	wallets     WalletStore
	ledger      LedgerWriter
	kafkaWriter KafkaWriter
}

// NewWalletService creates a new WalletService.
func NewWalletService(wallets WalletStore, ledger LedgerWriter, kafkaWriter KafkaWriter) *WalletService {
	return &WalletService{
		wallets:     wallets,
		ledger:      ledger,
		kafkaWriter: kafkaWriter,
	}
}

// publishTransaction publishes a transaction to Kafka.
func publishTransaction(ctx context.Context, w KafkaWriter, txn models.Transaction) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.ID)
		return
	}

	data, err := json.Marshal(txn)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction for Kafka", "transaction_id", txn.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(txn.ID.String()),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction to Kafka", "transaction_id", txn.ID, "error", err)
	} else {
		logger.Log.Infow("Transaction published to Kafka", "transaction_id", txn.ID, "amount", txn.Amount)
	}
}

// AddMoney credits the user's wallet and appends the matching ledger entry.
// Returns the post-mutation wallet snapshot and the new entry.
func (s *WalletService) AddMoney(ctx context.Context, userID uuid.UUID, amount int64) (models.Wallet, models.Transaction, error) {
	wallet, err := s.wallets.Credit(ctx, userID, amount)
	if err != nil {
		logger.Log.Errorw("failed to add money", "user_id", userID, "amount", amount, "error", err)
		return models.Wallet{}, models.Transaction{}, err
	}

	txn := s.ledger.Append(ctx, models.Transaction{
		UserID:      userID,
		Kind:        models.KindCredit,
		Amount:      amount,
		Description: "Wallet top-up",
	})
	publishTransaction(ctx, s.kafkaWriter, txn)

	return wallet, txn, nil
}

// GetWallet returns the user's wallet snapshot.
func (s *WalletService) GetWallet(ctx context.Context, userID uuid.UUID) (models.Wallet, error) {
	wallet, err := s.wallets.GetWallet(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get wallet", "user_id", userID, "error", err)
		return models.Wallet{}, err
	}
	return wallet, nil
}

// ListTransactions returns the user's transaction history, most recent first.
func (s *WalletService) ListTransactions(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	txns, err := s.ledger.ListFor(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "user_id", userID, "error", err)
		return nil, err
	}
	return txns, nil
}
