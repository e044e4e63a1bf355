package models

import (
	"errors"
	"math"
	"strings"
)

// AccountType is the one-letter account type code stored in the accounts file.
type AccountType string

// Supported account types
const (
	Savings AccountType = "S"
	Current AccountType = "C"
)

// Minimum balances each account type must retain.
const (
	SavingsFloor int64 = 500
	CurrentFloor int64 = 1000
)

// ErrInvalidAccountType is returned when an account type is neither savings nor current.
var ErrInvalidAccountType = errors.New("invalid account type")

// ParseAccountType converts user input ("s", "C", "savings", "CURRENT") into an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "S", "SAVINGS":
		return Savings, nil
	case "C", "CURRENT":
		return Current, nil
	default:
		return "", ErrInvalidAccountType
	}
}

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	return t == Savings || t == Current
}

// Floor returns the minimum balance for the account type.
// Unknown types have no floor.
func (t AccountType) Floor() int64 {
	switch t {
	case Savings:
		return SavingsFloor
	case Current:
		return CurrentFloor
	default:
		return 0
	}
}

// String returns a human readable name of the account type.
func (t AccountType) String() string {
	switch t {
	case Savings:
		return "SAVINGS"
	case Current:
		return "CURRENT"
	default:
		return string(t)
	}
}

// Account represents a bank account record as persisted in the accounts file.
// swagger:model Account
type Account struct {
	// Account number, unique key
	// example: 1001
	Number int64 `json:"acno"`

	// Holder name
	// example: Alice
	Name string `json:"name"`

	// Account type: S (savings) or C (current)
	// example: S
	Type AccountType `json:"type" swaggertype:"string" enums:"S,C"`

	// Current balance in integer units
	// example: 1000
	Balance int64 `json:"deposit"`
}

// CanDebit reports whether amount can be taken from the account without
// breaching the floor of its type. Withdrawals and transfers share this check.
// An account already below its floor cannot be debited.
func (a Account) CanDebit(amount int64) bool {
	floor := a.Type.Floor()
	if a.Balance < floor {
		return false
	}
	return amount <= a.Balance-floor
}

// CanCredit reports whether amount can be added without overflowing the balance.
func (a Account) CanCredit(amount int64) bool {
	return a.Balance <= 0 || amount <= math.MaxInt64-a.Balance
}
