package repositories

import (
	"context"

	"github.com/sbilibin2017/gw-bank-accounts/internal/logger"
	"github.com/sbilibin2017/gw-bank-accounts/internal/models"
)

// TransactionFileRepository persists the ledger as one JSON document.
type TransactionFileRepository struct {
	path string
}

// NewTransactionFileRepository creates a repository backed by the file at path.
func NewTransactionFileRepository(path string) *TransactionFileRepository {
	return &TransactionFileRepository{path: path}
}

// Load reads the full ledger in append order. A missing file yields an empty ledger.
func (r *TransactionFileRepository) Load(ctx context.Context) ([]models.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	txns, err := readJSONFile[models.Transaction](r.path)

	logger.Log.Infow(
		"load",
		"file", r.path,
		"records", len(txns),
		"error", err,
	)

	return txns, err
}

// Save overwrites the file with txns.
func (r *TransactionFileRepository) Save(ctx context.Context, txns []models.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := writeJSONFile(r.path, txns)

	logger.Log.Infow(
		"save",
		"file", r.path,
		"records", len(txns),
		"error", err,
	)

	return err
}
