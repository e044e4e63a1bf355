package services

import (
	"context"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-bank-accounts/internal/models"
	"github.com/sbilibin2017/gw-bank-accounts/internal/repositories"
)

// randomCase draws a starting balance at or above the floor and a positive amount.
func randomCase(f *fuzz.Fuzzer) (models.Account, int64) {
	var isCurrent bool
	var extra, amount uint16
	f.Fuzz(&isCurrent)
	f.Fuzz(&extra)
	f.Fuzz(&amount)

	acc := models.Account{Number: 1, Name: "Holder", Type: models.Savings}
	if isCurrent {
		acc.Type = models.Current
	}
	acc.Balance = acc.Type.Floor() + int64(extra)
	return acc, int64(amount) + 1
}

func TestWithdraw_FloorProperty(t *testing.T) {
	f := fuzz.NewWithSeed(42)

	for i := 0; i < 500; i++ {
		ctx := context.Background()
		acc, amount := randomCase(f)

		store := repositories.NewAccountMemoryRepository(acc)
		txns := repositories.NewTransactionMemoryRepository()
		svc := NewAccountService(store, NewLedgerService(txns, fixedClock()), false)

		got, err := svc.Withdraw(ctx, acc.Number, amount)
		after, loadErr := svc.Get(ctx, acc.Number)
		require.NoError(t, loadErr)
		history, histErr := txns.Load(ctx)
		require.NoError(t, histErr)

		if acc.Balance-amount >= acc.Type.Floor() {
			require.NoError(t, err, "balance=%d amount=%d type=%s", acc.Balance, amount, acc.Type)
			assert.Equal(t, acc.Balance-amount, got.Balance)
			assert.GreaterOrEqual(t, after.Balance, acc.Type.Floor())
			assert.Len(t, history, 1)
		} else {
			assert.ErrorIs(t, err, ErrInsufficientBalance, "balance=%d amount=%d type=%s", acc.Balance, amount, acc.Type)
			assert.Equal(t, acc.Balance, after.Balance)
			assert.Empty(t, history)
		}
	}
}

func TestTransfer_MatchesWithdrawPolicy(t *testing.T) {
	f := fuzz.NewWithSeed(7)

	for i := 0; i < 500; i++ {
		ctx := context.Background()
		acc, amount := randomCase(f)
		other := models.Account{Number: 2, Name: "Other", Type: models.Current, Balance: 5000}

		withdrawSvc := NewAccountService(repositories.NewAccountMemoryRepository(acc), NewLedgerService(repositories.NewTransactionMemoryRepository(), nil), false)
		_, withdrawErr := withdrawSvc.Withdraw(ctx, acc.Number, amount)

		b := newBank(false, acc, other)
		transferErr := b.transfer.Transfer(ctx, acc.Number, other.Number, amount)

		assert.Equal(t, withdrawErr == nil, transferErr == nil, "balance=%d amount=%d type=%s", acc.Balance, amount, acc.Type)
		if transferErr == nil {
			balances := b.balances(t)
			assert.Equal(t, acc.Balance+other.Balance, balances[1]+balances[2])
		}
	}
}
