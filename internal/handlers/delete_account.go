package handlers

//go:generate mockgen -source=delete_account.go -destination=delete_account_mock.go -package=handlers

import (
	"context"
	"net/http"
)

// AccountDeleter defines the interface that the service must implement.
type AccountDeleter interface {
	Delete(ctx context.Context, acno int64) error
}

// MessageResponse represents a plain success message
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	// default: Account deleted.
	Message string `json:"message"`
}

// NewDeleteAccountHandler returns an HTTP handler for deleting accounts.
// Deleting an unknown number succeeds without changes.
// @Summary Delete account
// @Description Removes an account. Unknown numbers are ignored.
// @Tags accounts
// @Produce json
// @Param acno path int true "Account number"
// @Success 200 {object} handlers.MessageResponse "Account deleted."
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Router /accounts/{acno} [delete]
func NewDeleteAccountHandler(svc AccountDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acno, err := accountNumberParam(r)
		if err != nil {
			writeInvalidInput(w, r, err)
			return
		}

		if err := svc.Delete(r.Context(), acno); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Account deleted."})
	}
}
