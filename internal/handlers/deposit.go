package handlers

//go:generate mockgen -source=deposit.go -destination=deposit_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-bank-accounts/internal/models"
)

// Depositor defines the interface that the service must implement.
type Depositor interface {
	Deposit(ctx context.Context, acno, amount int64) (*models.Account, error)
}

// DepositRequest represents the JSON body for depositing funds
// swagger:model DepositRequest
type DepositRequest struct {
	// Amount to deposit
	// required: true
	// default: 100
	Amount int64 `json:"amount"`
}

// NewDepositHandler returns an HTTP handler for depositing funds into an account.
// @Summary Deposit funds
// @Description Adds funds to an account and records a DEPOSIT transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param acno path int true "Account number"
// @Param request body handlers.DepositRequest true "Deposit Request"
// @Success 200 {object} handlers.AccountResponse "Deposit successful"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input, amount or balance overflow"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Router /accounts/{acno}/deposit [post]
func NewDepositHandler(svc Depositor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acno, err := accountNumberParam(r)
		if err != nil {
			writeInvalidInput(w, r, err)
			return
		}

		var req DepositRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeInvalidInput(w, r, err)
			return
		}

		acc, err := svc.Deposit(r.Context(), acno, req.Amount)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, AccountResponse{Message: "Deposit successful", Account: *acc})
	}
}
