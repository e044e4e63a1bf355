package repositories

import (
	"context"

	"github.com/sbilibin2017/gw-bank-accounts/internal/logger"
	"github.com/sbilibin2017/gw-bank-accounts/internal/models"
)

// AccountFileRepository persists the whole account collection as one JSON document.
type AccountFileRepository struct {
	path string
}

// NewAccountFileRepository creates a repository backed by the file at path.
func NewAccountFileRepository(path string) *AccountFileRepository {
	return &AccountFileRepository{path: path}
}

// Load reads every account in file order. A missing file yields an empty list.
func (r *AccountFileRepository) Load(ctx context.Context) ([]models.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	accounts, err := readJSONFile[models.Account](r.path)

	logger.Log.Infow(
		"load",
		"file", r.path,
		"records", len(accounts),
		"error", err,
	)

	return accounts, err
}

// Save overwrites the file with accounts.
func (r *AccountFileRepository) Save(ctx context.Context, accounts []models.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := writeJSONFile(r.path, accounts)

	logger.Log.Infow(
		"save",
		"file", r.path,
		"records", len(accounts),
		"error", err,
	)

	return err
}
