package services

//go:generate mockgen -source=account.go -destination=account_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/sbilibin2017/gw-bank-accounts/internal/logger"
	"github.com/sbilibin2017/gw-bank-accounts/internal/models"
)

var (
	// ErrDuplicateAccount is returned when creating an account whose number is taken.
	ErrDuplicateAccount = errors.New("account number already exists")
	// ErrInvalidAccountType is returned when the account type is neither S nor C.
	ErrInvalidAccountType = models.ErrInvalidAccountType
	// ErrMinimumDepositNotMet is returned when a balance is set below the type floor.
	ErrMinimumDepositNotMet = errors.New("minimum deposit not met")
	// ErrAccountNotFound is returned when no account has the requested number.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInsufficientBalance is returned when a debit would breach the type floor.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrInvalidAmount is returned for zero or negative amounts.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrBalanceOverflow is returned when a credit would not fit into the balance.
	ErrBalanceOverflow = errors.New("balance would overflow")
)

// AccountStore loads and saves the whole account collection.
type AccountStore interface {
	Load(ctx context.Context) ([]models.Account, error)
	Save(ctx context.Context, accounts []models.Account) error
}

// LedgerAppender records balance-changing events.
type LedgerAppender interface {
	Append(ctx context.Context, acno int64, kind models.TransactionKind, amount int64, related *int64) (models.Transaction, error)
}

// AccountService implements account management on top of an AccountStore.
// Every operation is a full load, modify, save cycle.
type AccountService struct {
	store        AccountStore
	ledger       LedgerAppender
	strictModify bool
}

// NewAccountService creates a new AccountService.
// With strictModify set, Modify rejects balances below the floor of the new type.
func NewAccountService(store AccountStore, ledger LedgerAppender, strictModify bool) *AccountService {
	return &AccountService{
		store:        store,
		ledger:       ledger,
		strictModify: strictModify,
	}
}

// List returns all accounts in stored order.
func (s *AccountService) List(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.store.Load(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load accounts", "error", err)
		return nil, err
	}
	return accounts, nil
}

// Get returns a single account.
func (s *AccountService) Get(ctx context.Context, acno int64) (*models.Account, error) {
	accounts, err := s.store.Load(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load accounts", "error", err)
		return nil, err
	}
	i := indexOf(accounts, acno)
	if i < 0 {
		return nil, ErrAccountNotFound
	}
	acc := accounts[i]
	return &acc, nil
}

// Create opens a new account funded with deposit.
func (s *AccountService) Create(ctx context.Context, acno int64, name, accType string, deposit int64) (*models.Account, error) {
	t, err := models.ParseAccountType(accType)
	if err != nil {
		return nil, err
	}
	if err := checkMinimum(t, deposit); err != nil {
		return nil, err
	}

	accounts, err := s.store.Load(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load accounts", "error", err)
		return nil, err
	}
	if indexOf(accounts, acno) >= 0 {
		logger.Log.Warnw("account already exists", "acno", acno)
		return nil, ErrDuplicateAccount
	}

	acc := models.Account{Number: acno, Name: name, Type: t, Balance: deposit}
	accounts = append(accounts, acc)
	if err := s.store.Save(ctx, accounts); err != nil {
		logger.Log.Errorw("failed to save new account", "acno", acno, "error", err)
		return nil, err
	}

	logger.Log.Infow("account created", "acno", acno, "type", t, "balance", deposit)
	return &acc, nil
}

// Modify overwrites name, type and balance of an existing account.
// The floor is only enforced when the service was built with strictModify.
func (s *AccountService) Modify(ctx context.Context, acno int64, name, accType string, balance int64) (*models.Account, error) {
	t, err := models.ParseAccountType(accType)
	if err != nil {
		return nil, err
	}
	if s.strictModify {
		if err := checkMinimum(t, balance); err != nil {
			return nil, err
		}
	}

	accounts, err := s.store.Load(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load accounts", "error", err)
		return nil, err
	}
	i := indexOf(accounts, acno)
	if i < 0 {
		return nil, ErrAccountNotFound
	}

	accounts[i].Name = name
	accounts[i].Type = t
	accounts[i].Balance = balance
	if err := s.store.Save(ctx, accounts); err != nil {
		logger.Log.Errorw("failed to save modified account", "acno", acno, "error", err)
		return nil, err
	}

	acc := accounts[i]
	return &acc, nil
}

// Delete removes the account. Unknown numbers are ignored and nothing is written.
func (s *AccountService) Delete(ctx context.Context, acno int64) error {
	accounts, err := s.store.Load(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load accounts", "error", err)
		return err
	}

	kept := slices.DeleteFunc(accounts, func(a models.Account) bool { return a.Number == acno })
	if len(kept) == len(accounts) {
		return nil
	}
	if err := s.store.Save(ctx, kept); err != nil {
		logger.Log.Errorw("failed to save accounts after delete", "acno", acno, "error", err)
		return err
	}
	return nil
}

// Deposit adds amount to the balance and records a DEPOSIT.
func (s *AccountService) Deposit(ctx context.Context, acno, amount int64) (*models.Account, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	accounts, err := s.store.Load(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load accounts", "error", err)
		return nil, err
	}
	i := indexOf(accounts, acno)
	if i < 0 {
		return nil, ErrAccountNotFound
	}
	if err := checkCredit(accounts[i], amount); err != nil {
		logger.Log.Warnw("deposit rejected", "acno", acno, "amount", amount, "balance", accounts[i].Balance)
		return nil, err
	}

	accounts[i].Balance += amount
	if err := s.store.Save(ctx, accounts); err != nil {
		logger.Log.Errorw("failed to save deposit", "acno", acno, "amount", amount, "error", err)
		return nil, err
	}
	if _, err := s.ledger.Append(ctx, acno, models.KindDeposit, amount, nil); err != nil {
		logger.Log.Errorw("deposit saved but not recorded in ledger", "acno", acno, "amount", amount, "error", err)
		return nil, fmt.Errorf("record deposit: %w", err)
	}

	acc := accounts[i]
	return &acc, nil
}

// Withdraw takes amount from the balance and records a WITHDRAW.
// It fails with ErrInsufficientBalance, leaving everything untouched, when the
// balance would drop below the floor of the account type.
func (s *AccountService) Withdraw(ctx context.Context, acno, amount int64) (*models.Account, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	accounts, err := s.store.Load(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load accounts", "error", err)
		return nil, err
	}
	i := indexOf(accounts, acno)
	if i < 0 {
		return nil, ErrAccountNotFound
	}
	if err := checkDebit(accounts[i], amount); err != nil {
		logger.Log.Warnw("withdrawal rejected", "acno", acno, "amount", amount, "balance", accounts[i].Balance)
		return nil, err
	}

	accounts[i].Balance -= amount
	if err := s.store.Save(ctx, accounts); err != nil {
		logger.Log.Errorw("failed to save withdrawal", "acno", acno, "amount", amount, "error", err)
		return nil, err
	}
	if _, err := s.ledger.Append(ctx, acno, models.KindWithdraw, amount, nil); err != nil {
		logger.Log.Errorw("withdrawal saved but not recorded in ledger", "acno", acno, "amount", amount, "error", err)
		return nil, fmt.Errorf("record withdrawal: %w", err)
	}

	acc := accounts[i]
	return &acc, nil
}

// checkDebit applies the floor policy shared by withdrawals and transfers.
func checkDebit(acc models.Account, amount int64) error {
	if acc.CanDebit(amount) {
		return nil
	}
	return fmt.Errorf("%w: %s accounts must keep at least %d",
		ErrInsufficientBalance, strings.ToLower(acc.Type.String()), acc.Type.Floor())
}

func checkCredit(acc models.Account, amount int64) error {
	if acc.CanCredit(amount) {
		return nil
	}
	return fmt.Errorf("%w: account %d cannot take %d more", ErrBalanceOverflow, acc.Number, amount)
}

func checkMinimum(t models.AccountType, balance int64) error {
	if balance >= t.Floor() {
		return nil
	}
	return fmt.Errorf("%w: %s accounts require at least %d",
		ErrMinimumDepositNotMet, strings.ToLower(t.String()), t.Floor())
}

func indexOf(accounts []models.Account, acno int64) int {
	return slices.IndexFunc(accounts, func(a models.Account) bool { return a.Number == acno })
}
