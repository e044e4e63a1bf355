package handlers

//go:generate mockgen -source=modify_account.go -destination=modify_account_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-bank-accounts/internal/models"
)

// AccountModifier defines the interface that the service must implement.
type AccountModifier interface {
	Modify(ctx context.Context, acno int64, name, accType string, balance int64) (*models.Account, error)
}

// ModifyAccountRequest represents the JSON body for modifying an account
// swagger:model ModifyAccountRequest
type ModifyAccountRequest struct {
	// Holder name
	// required: true
	// default: Alice
	Name string `json:"name"`

	// Account type, S or C
	// required: true
	// default: C
	Type string `json:"type"`

	// New balance
	// required: true
	// default: 1500
	Deposit int64 `json:"deposit"`
}

// NewModifyAccountHandler returns an HTTP handler for modifying accounts.
// @Summary Modify account
// @Description Overwrites name, type and balance of an existing account
// @Tags accounts
// @Accept json
// @Produce json
// @Param acno path int true "Account number"
// @Param request body handlers.ModifyAccountRequest true "New values"
// @Success 200 {object} handlers.AccountResponse "Account modified."
// @Failure 400 {object} handlers.ErrorResponse "Invalid input or type"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Router /accounts/{acno} [put]
func NewModifyAccountHandler(svc AccountModifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acno, err := accountNumberParam(r)
		if err != nil {
			writeInvalidInput(w, r, err)
			return
		}

		var req ModifyAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeInvalidInput(w, r, err)
			return
		}

		acc, err := svc.Modify(r.Context(), acno, req.Name, req.Type, req.Deposit)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, AccountResponse{Message: "Account modified.", Account: *acc})
	}
}
