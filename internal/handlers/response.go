package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-bank-accounts/internal/logger"
	"github.com/sbilibin2017/gw-bank-accounts/internal/middlewares"
	"github.com/sbilibin2017/gw-bank-accounts/internal/services"
)

const (
	msgInvalidInput  = "Invalid input"
	msgInternalError = "Internal server error"
)

// ErrorResponse represents an error returned by any endpoint
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Account not found
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Debugw("failed to encode response", "status", status, "error", err)
	}
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrDuplicateAccount),
		errors.Is(err, services.ErrInsufficientBalance):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInvalidAccountType),
		errors.Is(err, services.ErrMinimumDepositNotMet),
		errors.Is(err, services.ErrSameAccount),
		errors.Is(err, services.ErrBalanceOverflow):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage hides internal failures behind a generic message.
func errorMessage(status int, err error) string {
	if status == http.StatusInternalServerError {
		return msgInternalError
	}
	return err.Error()
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	reqID := middlewares.RequestIDFromContext(r.Context())
	if status == http.StatusInternalServerError {
		logger.Log.Errorw("internal server error", "request_id", reqID, "error", err)
	} else {
		logger.Log.Infow("request rejected", "request_id", reqID, "status", status, "error", err)
	}
	writeJSON(w, status, ErrorResponse{Error: errorMessage(status, err)})
}

func writeInvalidInput(w http.ResponseWriter, r *http.Request, err error) {
	logger.Log.Warnw("invalid input",
		"request_id", middlewares.RequestIDFromContext(r.Context()),
		"error", err,
	)
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidInput})
}

// accountNumberParam reads the {acno} path segment.
func accountNumberParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "acno"), 10, 64)
}
