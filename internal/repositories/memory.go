package repositories

import (
	"context"
	"slices"

	"github.com/sbilibin2017/gw-bank-accounts/internal/models"
)

// memoryRepository keeps a collection in process memory.
// Load and Save copy the slice so callers never share backing arrays with it.
type memoryRepository[T any] struct {
	items []T
}

func (r *memoryRepository[T]) Load(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := slices.Clone(r.items)
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (r *memoryRepository[T]) Save(ctx context.Context, items []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.items = slices.Clone(items)
	return nil
}

// AccountMemoryRepository is an in-memory account store.
type AccountMemoryRepository struct {
	memoryRepository[models.Account]
}

// NewAccountMemoryRepository creates a store seeded with accounts.
func NewAccountMemoryRepository(accounts ...models.Account) *AccountMemoryRepository {
	return &AccountMemoryRepository{memoryRepository[models.Account]{items: slices.Clone(accounts)}}
}

// TransactionMemoryRepository is an in-memory ledger store.
type TransactionMemoryRepository struct {
	memoryRepository[models.Transaction]
}

// NewTransactionMemoryRepository creates a ledger store seeded with txns.
func NewTransactionMemoryRepository(txns ...models.Transaction) *TransactionMemoryRepository {
	return &TransactionMemoryRepository{memoryRepository[models.Transaction]{items: slices.Clone(txns)}}
}
