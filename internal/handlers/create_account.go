package handlers

//go:generate mockgen -source=create_account.go -destination=create_account_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-bank-accounts/internal/models"
)

// AccountCreator defines the interface that the service must implement.
type AccountCreator interface {
	Create(ctx context.Context, acno int64, name, accType string, deposit int64) (*models.Account, error)
}

// CreateAccountRequest represents the JSON body for opening an account
// swagger:model CreateAccountRequest
type CreateAccountRequest struct {
	// Account number
	// required: true
	// default: 1001
	AccountNumber int64 `json:"acno"`

	// Holder name
	// required: true
	// default: Alice
	Name string `json:"name"`

	// Account type, S or C
	// required: true
	// default: S
	Type string `json:"type"`

	// Initial deposit, at least 500 for S and 1000 for C
	// required: true
	// default: 1000
	Deposit int64 `json:"deposit"`
}

// AccountResponse represents a successful account operation
// swagger:model AccountResponse
type AccountResponse struct {
	// Success message
	// default: Account created.
	Message string `json:"message"`

	// Account after the operation
	Account models.Account `json:"account"`
}

// NewCreateAccountHandler returns an HTTP handler for opening accounts.
// @Summary Create account
// @Description Opens an account. The number must be unused and the deposit must meet the type minimum.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body handlers.CreateAccountRequest true "New account"
// @Success 201 {object} handlers.AccountResponse "Account created."
// @Failure 400 {object} handlers.ErrorResponse "Invalid input, type or minimum deposit"
// @Failure 409 {object} handlers.ErrorResponse "Account number exists"
// @Router /accounts [post]
func NewCreateAccountHandler(svc AccountCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeInvalidInput(w, r, err)
			return
		}

		acc, err := svc.Create(r.Context(), req.AccountNumber, req.Name, req.Type, req.Deposit)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, AccountResponse{Message: "Account created.", Account: *acc})
	}
}
