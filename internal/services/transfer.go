package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-bank-accounts/internal/logger"
	"github.com/sbilibin2017/gw-bank-accounts/internal/models"
)

// ErrSameAccount is returned for a transfer whose source and destination match.
var ErrSameAccount = errors.New("cannot transfer to the same account")

// TransferService moves funds between two accounts.
type TransferService struct {
	store             AccountStore
	ledger            LedgerAppender
	allowSelfTransfer bool
}

// NewTransferService creates a new TransferService.
// With allowSelfTransfer set, a transfer to the source account itself leaves the
// balance unchanged and still records both ledger entries.
func NewTransferService(store AccountStore, ledger LedgerAppender, allowSelfTransfer bool) *TransferService {
	return &TransferService{
		store:             store,
		ledger:            ledger,
		allowSelfTransfer: allowSelfTransfer,
	}
}

// Transfer debits from and credits to by amount.
//
// Both balances change on the same loaded snapshot and land in a single
// Save. The two ledger records are appended only after that write succeeds;
// if appending fails the balances stay committed and the error is returned.
func (s *TransferService) Transfer(ctx context.Context, from, to, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if from == to && !s.allowSelfTransfer {
		return ErrSameAccount
	}

	accounts, err := s.store.Load(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load accounts", "error", err)
		return err
	}

	src, dst := indexOf(accounts, from), indexOf(accounts, to)
	if src < 0 || dst < 0 {
		return fmt.Errorf("one or both accounts not found (%d, %d): %w", from, to, ErrAccountNotFound)
	}
	if err := checkDebit(accounts[src], amount); err != nil {
		logger.Log.Warnw("transfer rejected", "from", from, "to", to, "amount", amount, "balance", accounts[src].Balance)
		return err
	}
	if src != dst {
		if err := checkCredit(accounts[dst], amount); err != nil {
			logger.Log.Warnw("transfer rejected", "from", from, "to", to, "amount", amount, "balance", accounts[dst].Balance)
			return err
		}
	}

	accounts[src].Balance -= amount
	accounts[dst].Balance += amount
	if err := s.store.Save(ctx, accounts); err != nil {
		logger.Log.Errorw("failed to save transfer", "from", from, "to", to, "amount", amount, "error", err)
		return err
	}

	if _, err := s.ledger.Append(ctx, from, models.KindTransferSent, amount, &to); err != nil {
		logger.Log.Errorw("transfer saved but ledger incomplete", "from", from, "to", to, "amount", amount, "missing", 2, "error", err)
		return fmt.Errorf("record transfer: %w", err)
	}
	if _, err := s.ledger.Append(ctx, to, models.KindTransferReceived, amount, &from); err != nil {
		logger.Log.Errorw("transfer saved but ledger incomplete", "from", from, "to", to, "amount", amount, "missing", 1, "error", err)
		return fmt.Errorf("record transfer: %w", err)
	}

	logger.Log.Infow("transfer completed", "from", from, "to", to, "amount", amount)
	return nil
}
