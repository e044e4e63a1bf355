package models

import "time"

// TimestampLayout is the layout of Transaction.Timestamp (YYYY-MM-DD HH:MM:SS).
const TimestampLayout = "2006-01-02 15:04:05"

// TransactionKind describes the monetary event recorded in the ledger.
type TransactionKind string

// Ledger record kinds
const (
	KindDeposit          TransactionKind = "DEPOSIT"
	KindWithdraw         TransactionKind = "WITHDRAW"
	KindTransferSent     TransactionKind = "TRANSFER_SENT"
	KindTransferReceived TransactionKind = "TRANSFER_RECEIVED"
)

// Transaction is an append-only ledger record.
// swagger:model Transaction
type Transaction struct {
	// Time the record was appended
	// example: 2025-01-02 15:04:05
	Timestamp string `json:"timestamp"`

	// Account the record belongs to
	// example: 1001
	AccountNumber int64 `json:"acno"`

	// Kind of event
	// example: TRANSFER_SENT
	Kind TransactionKind `json:"type" swaggertype:"string" enums:"DEPOSIT,WITHDRAW,TRANSFER_SENT,TRANSFER_RECEIVED"`

	// Positive amount in integer units
	// example: 400
	Amount int64 `json:"amount"`

	// Counterparty account for transfers, null otherwise
	// example: 1002
	RelatedAccount *int64 `json:"related_acno"`
}

// NewTransaction builds a ledger record stamped with at.
func NewTransaction(at time.Time, acno int64, kind TransactionKind, amount int64, related *int64) Transaction {
	return Transaction{
		Timestamp:      at.Format(TimestampLayout),
		AccountNumber:  acno,
		Kind:           kind,
		Amount:         amount,
		RelatedAccount: related,
	}
}
