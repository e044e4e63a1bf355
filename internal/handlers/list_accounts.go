package handlers

//go:generate mockgen -source=list_accounts.go -destination=list_accounts_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-bank-accounts/internal/models"
)

// AccountLister defines the interface that the service must implement.
type AccountLister interface {
	List(ctx context.Context) ([]models.Account, error)
}

// ListAccountsResponse represents all stored accounts
// swagger:model ListAccountsResponse
type ListAccountsResponse struct {
	// Accounts in stored order
	Accounts []models.Account `json:"accounts"`
}

// NewListAccountsHandler returns an HTTP handler listing every account.
// @Summary List accounts
// @Description Returns all accounts in the order they were created
// @Tags accounts
// @Produce json
// @Success 200 {object} handlers.ListAccountsResponse
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /accounts [get]
func NewListAccountsHandler(svc AccountLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accounts, err := svc.List(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, ListAccountsResponse{Accounts: accounts})
	}
}
