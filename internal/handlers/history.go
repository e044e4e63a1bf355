package handlers

//go:generate mockgen -source=history.go -destination=history_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-bank-accounts/internal/models"
)

// HistoryReader defines the interface that the ledger must implement.
type HistoryReader interface {
	HistoryFor(ctx context.Context, acno int64) ([]models.Transaction, error)
}

// HistoryResponse represents the transactions of one account
// swagger:model HistoryResponse
type HistoryResponse struct {
	// Account number
	// default: 1001
	AccountNumber int64 `json:"acno"`

	// Transactions in the order they were recorded
	Transactions []models.Transaction `json:"transactions"`
}

// NewHistoryHandler returns an HTTP handler for the transaction history of an account.
// Records of deleted accounts remain readable.
// @Summary Transaction history
// @Description Returns ledger records of one account in the order they were recorded
// @Tags transactions
// @Produce json
// @Param acno path int true "Account number"
// @Success 200 {object} handlers.HistoryResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /accounts/{acno}/transactions [get]
func NewHistoryHandler(svc HistoryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acno, err := accountNumberParam(r)
		if err != nil {
			writeInvalidInput(w, r, err)
			return
		}

		txns, err := svc.HistoryFor(r.Context(), acno)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, HistoryResponse{AccountNumber: acno, Transactions: txns})
	}
}
