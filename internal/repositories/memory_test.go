package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-bank-accounts/internal/models"
)

func TestAccountMemoryRepository_CopiesOnLoadAndSave(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountMemoryRepository(models.Account{Number: 1, Name: "A", Type: models.Savings, Balance: 600})

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	loaded[0].Balance = 0

	again, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(600), again[0].Balance, "mutating a loaded slice must not touch the store")

	saved := []models.Account{{Number: 2, Name: "B", Type: models.Current, Balance: 1000}}
	require.NoError(t, repo.Save(ctx, saved))
	saved[0].Balance = 1

	again, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), again[0].Balance)
}

func TestTransactionMemoryRepository_EmptyLoad(t *testing.T) {
	txns, err := NewTransactionMemoryRepository().Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, txns)
	assert.Empty(t, txns)
}
