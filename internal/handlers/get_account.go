package handlers

//go:generate mockgen -source=get_account.go -destination=get_account_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-bank-accounts/internal/models"
)

// AccountGetter defines the interface that the service must implement.
type AccountGetter interface {
	Get(ctx context.Context, acno int64) (*models.Account, error)
}

// NewGetAccountHandler returns an HTTP handler for balance enquiry.
// @Summary Balance enquiry
// @Description Returns holder, type and balance of one account
// @Tags accounts
// @Produce json
// @Param acno path int true "Account number"
// @Success 200 {object} models.Account
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Router /accounts/{acno} [get]
func NewGetAccountHandler(svc AccountGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acno, err := accountNumberParam(r)
		if err != nil {
			writeInvalidInput(w, r, err)
			return
		}

		acc, err := svc.Get(r.Context(), acno)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, acc)
	}
}
