package services

//go:generate mockgen -source=ledger.go -destination=ledger_mock.go -package=services

import (
	"context"
	"time"

	"github.com/sbilibin2017/gw-bank-accounts/internal/logger"
	"github.com/sbilibin2017/gw-bank-accounts/internal/models"
)

// TransactionStore loads and saves the whole ledger.
type TransactionStore interface {
	Load(ctx context.Context) ([]models.Transaction, error)
	Save(ctx context.Context, txns []models.Transaction) error
}

// LedgerService is the append-only transaction log.
type LedgerService struct {
	store TransactionStore
	now   func() time.Time
}

// NewLedgerService creates a new LedgerService. A nil now defaults to time.Now.
func NewLedgerService(store TransactionStore, now func() time.Time) *LedgerService {
	if now == nil {
		now = time.Now
	}
	return &LedgerService{store: store, now: now}
}

// Append stamps a record with the current time and adds it to the end of the ledger.
func (s *LedgerService) Append(ctx context.Context, acno int64, kind models.TransactionKind, amount int64, related *int64) (models.Transaction, error) {
	if amount <= 0 {
		return models.Transaction{}, ErrInvalidAmount
	}

	txns, err := s.store.Load(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load ledger", "error", err)
		return models.Transaction{}, err
	}

	txn := models.NewTransaction(s.now(), acno, kind, amount, related)
	txns = append(txns, txn)
	if err := s.store.Save(ctx, txns); err != nil {
		logger.Log.Errorw("failed to save ledger", "acno", acno, "type", kind, "error", err)
		return models.Transaction{}, err
	}

	logger.Log.Infow("transaction recorded", "acno", acno, "type", kind, "amount", amount)
	return txn, nil
}

// HistoryFor returns the records of one account in the order they were appended.
func (s *LedgerService) HistoryFor(ctx context.Context, acno int64) ([]models.Transaction, error) {
	txns, err := s.store.Load(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load ledger", "error", err)
		return nil, err
	}

	out := make([]models.Transaction, 0)
	for _, txn := range txns {
		if txn.AccountNumber == acno {
			out = append(out, txn)
		}
	}
	return out, nil
}
