package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/itsmeishwar/CampusPay/internal/models"
)

func TestWalletService_AddMoney(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallets := NewMockWalletStore(ctrl)
	ledger := NewMockLedgerWriter(ctrl)
	kafkaWriter := NewMockKafkaWriter(ctrl)

	wallets.EXPECT().Credit(ctx, userID, int64(50000)).Return(models.Wallet{UserID: userID, Balance: 50000}, nil)
	ledger.EXPECT().Append(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, entry models.Transaction) models.Transaction {
		assert.Equal(t, userID, entry.UserID)
		assert.Equal(t, models.KindCredit, entry.Kind)
		assert.Equal(t, int64(50000), entry.Amount)
		entry.ID = uuid.New()
		return entry
	})
	kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	svc := NewWalletService(wallets, ledger, kafkaWriter)
	wallet, txn, err := svc.AddMoney(ctx, userID, 50000)

	assert.NoError(t, err)
	assert.Equal(t, int64(50000), wallet.Balance)
	assert.Equal(t, int64(50000), txn.Amount)
}

func TestWalletService_AddMoney_CreditError(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallets := NewMockWalletStore(ctrl)
	ledger := NewMockLedgerWriter(ctrl)

	// No ledger entry and no Kafka publish when the credit fails
	wallets.EXPECT().Credit(ctx, userID, int64(100)).Return(models.Wallet{}, errors.New("credit error"))

	svc := NewWalletService(wallets, ledger, nil)
	_, _, err := svc.AddMoney(ctx, userID, 100)
	assert.EqualError(t, err, "credit error")
}

func TestWalletService_GetWallet(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallets := NewMockWalletStore(ctrl)
	wallets.EXPECT().GetWallet(ctx, userID).Return(models.Wallet{UserID: userID, Balance: 4200}, nil)

	svc := NewWalletService(wallets, nil, nil)
	wallet, err := svc.GetWallet(ctx, userID)

	assert.NoError(t, err)
	assert.Equal(t, int64(4200), wallet.Balance)
}

func TestWalletService_ListTransactions(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := NewMockLedgerWriter(ctrl)
	ledger.EXPECT().ListFor(ctx, userID).Return([]models.Transaction{
		{UserID: userID, Kind: models.KindDebit, Amount: 300},
		{UserID: userID, Kind: models.KindCredit, Amount: 500},
	}, nil)

	svc := NewWalletService(nil, ledger, nil)
	txns, err := svc.ListTransactions(ctx, userID)

	assert.NoError(t, err)
	assert.Len(t, txns, 2)
}

func TestWalletService_publishTransaction(t *testing.T) {
	ctx := context.Background()
	txn := models.Transaction{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Kind:   models.KindCredit,
		Amount: 1000,
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKafka := NewMockKafkaWriter(ctrl)

	// Successful publish
	mockKafka.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil).Times(1)
	publishTransaction(ctx, mockKafka, txn)

	// Publish error is swallowed
	mockKafka.EXPECT().WriteMessages(ctx, gomock.Any()).Return(errors.New("kafka error")).Times(1)
	publishTransaction(ctx, mockKafka, txn)

	// nil writer must not panic
	publishTransaction(ctx, nil, txn)
}
