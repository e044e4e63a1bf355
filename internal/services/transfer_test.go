package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-bank-accounts/internal/models"
	"github.com/sbilibin2017/gw-bank-accounts/internal/repositories"
)

type bank struct {
	accounts *repositories.AccountMemoryRepository
	txns     *repositories.TransactionMemoryRepository
	ledger   *LedgerService
	transfer *TransferService
}

func newBank(allowSelfTransfer bool, accounts ...models.Account) *bank {
	b := &bank{
		accounts: repositories.NewAccountMemoryRepository(accounts...),
		txns:     repositories.NewTransactionMemoryRepository(),
	}
	b.ledger = NewLedgerService(b.txns, fixedClock())
	b.transfer = NewTransferService(b.accounts, b.ledger, allowSelfTransfer)
	return b
}

func (b *bank) balances(t *testing.T) map[int64]int64 {
	t.Helper()
	accounts, err := b.accounts.Load(context.Background())
	require.NoError(t, err)
	out := make(map[int64]int64, len(accounts))
	for _, a := range accounts {
		out[a.Number] = a.Balance
	}
	return out
}

func (b *bank) ledgerEntries(t *testing.T) []models.Transaction {
	t.Helper()
	txns, err := b.txns.Load(context.Background())
	require.NoError(t, err)
	return txns
}

func ptr(v int64) *int64 { return &v }

func TestTransferService_Scenario(t *testing.T) {
	ctx := context.Background()
	b := newBank(false, alice(), bob())

	// 1000-600=400 < 500
	err := b.transfer.Transfer(ctx, 1001, 1002, 600)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, map[int64]int64{1001: 1000, 1002: 2000}, b.balances(t))
	assert.Empty(t, b.ledgerEntries(t))

	require.NoError(t, b.transfer.Transfer(ctx, 1001, 1002, 400))
	assert.Equal(t, map[int64]int64{1001: 600, 1002: 2400}, b.balances(t))

	assert.Equal(t, []models.Transaction{
		{Timestamp: "2025-01-02 15:04:05", AccountNumber: 1001, Kind: models.KindTransferSent, Amount: 400, RelatedAccount: ptr(1002)},
		{Timestamp: "2025-01-02 15:04:05", AccountNumber: 1002, Kind: models.KindTransferReceived, Amount: 400, RelatedAccount: ptr(1001)},
	}, b.ledgerEntries(t))
}

func TestTransferService_RoundTrip(t *testing.T) {
	ctx := context.Background()
	b := newBank(false, alice(), bob())

	require.NoError(t, b.transfer.Transfer(ctx, 1001, 1002, 250))
	require.NoError(t, b.transfer.Transfer(ctx, 1002, 1001, 250))

	assert.Equal(t, map[int64]int64{1001: 1000, 1002: 2000}, b.balances(t))

	entries := b.ledgerEntries(t)
	require.Len(t, entries, 4)
	for i := 0; i < len(entries); i += 2 {
		sent, received := entries[i], entries[i+1]
		assert.Equal(t, models.KindTransferSent, sent.Kind)
		assert.Equal(t, models.KindTransferReceived, received.Kind)
		assert.Equal(t, sent.AccountNumber, *received.RelatedAccount)
		assert.Equal(t, received.AccountNumber, *sent.RelatedAccount)
		assert.Equal(t, sent.Amount, received.Amount)
	}
}

func TestTransferService_Errors(t *testing.T) {
	ctx := context.Background()
	b := newBank(false, alice(), bob())

	err := b.transfer.Transfer(ctx, 1001, 9999, 10)
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.Contains(t, err.Error(), "one or both accounts not found")

	err = b.transfer.Transfer(ctx, 9999, 1001, 10)
	assert.ErrorIs(t, err, ErrAccountNotFound)

	assert.ErrorIs(t, b.transfer.Transfer(ctx, 1001, 1002, 0), ErrInvalidAmount)
	assert.ErrorIs(t, b.transfer.Transfer(ctx, 1001, 1001, 10), ErrSameAccount)

	// current floor is 1000
	err = b.transfer.Transfer(ctx, 1002, 1001, 1001)
	assert.EqualError(t, err, "insufficient balance: current accounts must keep at least 1000")

	assert.Equal(t, map[int64]int64{1001: 1000, 1002: 2000}, b.balances(t))
	assert.Empty(t, b.ledgerEntries(t))
}

func TestTransferService_Overflow(t *testing.T) {
	rich := models.Account{Number: 1002, Name: "Rich", Type: models.Current, Balance: math.MaxInt64 - 10}

	tests := []struct {
		name    string
		from    int64
		to      int64
		amount  int64
		wantErr error
	}{
		{name: "credit past max", from: 1001, to: 1002, amount: 400, wantErr: ErrBalanceOverflow},
		{name: "debit max from max", from: 1002, to: 1001, amount: math.MaxInt64, wantErr: ErrInsufficientBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			b := newBank(false, alice(), rich)

			err := b.transfer.Transfer(ctx, tt.from, tt.to, tt.amount)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, map[int64]int64{1001: 1000, 1002: math.MaxInt64 - 10}, b.balances(t))
			assert.Empty(t, b.ledgerEntries(t))
		})
	}

	// a credit that lands exactly on the max still goes through
	ctx := context.Background()
	b := newBank(false, alice(), rich)
	require.NoError(t, b.transfer.Transfer(ctx, 1001, 1002, 10))
	assert.Equal(t, map[int64]int64{1001: 990, 1002: math.MaxInt64}, b.balances(t))
}

func TestTransferService_SelfTransferAllowed(t *testing.T) {
	ctx := context.Background()
	b := newBank(true, alice())

	require.NoError(t, b.transfer.Transfer(ctx, 1001, 1001, 100))
	assert.Equal(t, map[int64]int64{1001: 1000}, b.balances(t))

	entries := b.ledgerEntries(t)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(1001), *entries[0].RelatedAccount)
	assert.Equal(t, int64(1001), *entries[1].RelatedAccount)

	// the floor still applies to the debit side
	assert.ErrorIs(t, b.transfer.Transfer(ctx, 1001, 1001, 600), ErrInsufficientBalance)
}

func TestTransferService_LedgerFailureAfterSave(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockAccountStore(ctrl)
	ledger := NewMockLedgerAppender(ctrl)
	svc := NewTransferService(store, ledger, false)

	from, to := alice(), bob()
	from.Balance, to.Balance = 600, 2400

	gomock.InOrder(
		store.EXPECT().Load(ctx).Return([]models.Account{alice(), bob()}, nil),
		store.EXPECT().Save(ctx, []models.Account{from, to}).Return(nil),
		ledger.EXPECT().Append(ctx, int64(1001), models.KindTransferSent, int64(400), ptr(1002)).Return(models.Transaction{}, nil),
		ledger.EXPECT().Append(ctx, int64(1002), models.KindTransferReceived, int64(400), ptr(1001)).Return(models.Transaction{}, errors.New("disk full")),
	)

	err := svc.Transfer(ctx, 1001, 1002, 400)
	assert.EqualError(t, err, "record transfer: disk full")
}

func TestTransferService_SaveFailureSkipsLedger(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockAccountStore(ctrl)
	ledger := NewMockLedgerAppender(ctrl)
	svc := NewTransferService(store, ledger, false)

	store.EXPECT().Load(ctx).Return([]models.Account{alice(), bob()}, nil)
	store.EXPECT().Save(ctx, gomock.Any()).Return(errors.New("permission denied"))

	assert.EqualError(t, svc.Transfer(ctx, 1001, 1002, 400), "permission denied")
}
