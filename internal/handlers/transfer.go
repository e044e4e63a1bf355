package handlers

//go:generate mockgen -source=transfer.go -destination=transfer_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-bank-accounts/internal/logger"
	"github.com/sbilibin2017/gw-bank-accounts/internal/middlewares"
)

// Transferer defines the interface that the service must implement.
type Transferer interface {
	Transfer(ctx context.Context, from, to, amount int64) error
}

// TransferRequest represents the JSON body for a transfer between accounts
// swagger:model TransferRequest
type TransferRequest struct {
	// Source account number
	// required: true
	// default: 1001
	From int64 `json:"from_acno"`

	// Destination account number
	// required: true
	// default: 1002
	To int64 `json:"to_acno"`

	// Amount to move
	// required: true
	// default: 400
	Amount int64 `json:"amount"`
}

// TransferResponse reports the outcome of a transfer
// swagger:model TransferResponse
type TransferResponse struct {
	// Whether both balances were updated
	// default: true
	Success bool `json:"success"`

	// Outcome message
	// default: Transfer successful
	Message string `json:"message"`
}

// NewTransferHandler returns an HTTP handler for transfers between accounts.
// @Summary Transfer funds
// @Description Moves funds between two accounts and records TRANSFER_SENT and TRANSFER_RECEIVED
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body handlers.TransferRequest true "Transfer Request"
// @Success 200 {object} handlers.TransferResponse "Transfer successful"
// @Failure 400 {object} handlers.TransferResponse "Invalid input, amount, same account or balance overflow"
// @Failure 404 {object} handlers.TransferResponse "One or both accounts not found"
// @Failure 409 {object} handlers.TransferResponse "Insufficient balance"
// @Router /transfers [post]
func NewTransferHandler(svc Transferer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqID := middlewares.RequestIDFromContext(r.Context())

		var req TransferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Warnw("failed to decode transfer request", "request_id", reqID, "error", err)
			writeJSON(w, http.StatusBadRequest, TransferResponse{Message: msgInvalidInput})
			return
		}

		if err := svc.Transfer(r.Context(), req.From, req.To, req.Amount); err != nil {
			status := statusFor(err)
			if status == http.StatusInternalServerError {
				logger.Log.Errorw("transfer failed", "request_id", reqID, "from", req.From, "to", req.To, "amount", req.Amount, "error", err)
			}
			writeJSON(w, status, TransferResponse{Message: errorMessage(status, err)})
			return
		}
		writeJSON(w, http.StatusOK, TransferResponse{Success: true, Message: "Transfer successful"})
	}
}
