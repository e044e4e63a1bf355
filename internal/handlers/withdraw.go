package handlers

//go:generate mockgen -source=withdraw.go -destination=withdraw_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-bank-accounts/internal/models"
)

// Withdrawer defines the interface that the service must implement.
type Withdrawer interface {
	Withdraw(ctx context.Context, acno, amount int64) (*models.Account, error)
}

// WithdrawRequest represents the JSON body for withdrawing funds
// swagger:model WithdrawRequest
type WithdrawRequest struct {
	// Amount to withdraw
	// required: true
	// default: 100
	Amount int64 `json:"amount"`
}

// NewWithdrawHandler returns an HTTP handler for withdrawing funds from an account.
// @Summary Withdraw funds
// @Description Takes funds from an account unless the balance would drop below the type minimum
// @Tags transactions
// @Accept json
// @Produce json
// @Param acno path int true "Account number"
// @Param request body handlers.WithdrawRequest true "Withdraw Request"
// @Success 200 {object} handlers.AccountResponse "Withdraw successful"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input or amount"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Failure 409 {object} handlers.ErrorResponse "Insufficient balance"
// @Router /accounts/{acno}/withdraw [post]
func NewWithdrawHandler(svc Withdrawer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acno, err := accountNumberParam(r)
		if err != nil {
			writeInvalidInput(w, r, err)
			return
		}

		var req WithdrawRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeInvalidInput(w, r, err)
			return
		}

		acc, err := svc.Withdraw(r.Context(), acno, req.Amount)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, AccountResponse{Message: "Withdraw successful", Account: *acc})
	}
}
