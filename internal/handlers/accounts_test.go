package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-bank-accounts/internal/models"
	"github.com/sbilibin2017/gw-bank-accounts/internal/services"
)

var alice = models.Account{Number: 1001, Name: "Alice", Type: models.Savings, Balance: 1000}

func TestCreateAccountHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAccountCreator(ctrl)
	handler := NewCreateAccountHandler(mockSvc)

	tests := []struct {
		name           string
		reqBody        any
		mockCreate     func()
		expectedStatus int
		expectedBody   any
	}{
		{
			name:    "success",
			reqBody: CreateAccountRequest{AccountNumber: 1001, Name: "Alice", Type: "s", Deposit: 1000},
			mockCreate: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), int64(1001), "Alice", "s", int64(1000)).
					Return(&alice, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   AccountResponse{Message: "Account created.", Account: alice},
		},
		{
			name:           "non_numeric_deposit",
			reqBody:        `{"acno": 1001, "name": "Alice", "type": "S", "deposit": "lots"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrorResponse{Error: "Invalid input"},
		},
		{
			name:    "duplicate",
			reqBody: CreateAccountRequest{AccountNumber: 1001, Name: "Alice", Type: "S", Deposit: 1000},
			mockCreate: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), int64(1001), "Alice", "S", int64(1000)).
					Return(nil, services.ErrDuplicateAccount)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrorResponse{Error: "account number already exists"},
		},
		{
			name:    "minimum_deposit",
			reqBody: CreateAccountRequest{AccountNumber: 1003, Name: "Eve", Type: "C", Deposit: 999},
			mockCreate: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), int64(1003), "Eve", "C", int64(999)).
					Return(nil, fmt.Errorf("%w: current accounts require at least 1000", services.ErrMinimumDepositNotMet))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrorResponse{Error: "minimum deposit not met: current accounts require at least 1000"},
		},
		{
			name:    "invalid_type",
			reqBody: CreateAccountRequest{AccountNumber: 1003, Name: "Eve", Type: "X", Deposit: 5000},
			mockCreate: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), int64(1003), "Eve", "X", int64(5000)).
					Return(nil, services.ErrInvalidAccountType)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrorResponse{Error: "invalid account type"},
		},
		{
			name:    "storage_failure",
			reqBody: CreateAccountRequest{AccountNumber: 1003, Name: "Eve", Type: "S", Deposit: 5000},
			mockCreate: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), int64(1003), "Eve", "S", int64(5000)).
					Return(nil, errors.New("permission denied"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrorResponse{Error: "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCreate != nil {
				tt.mockCreate()
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, newRequest(t, http.MethodPost, "/accounts", "", tt.reqBody))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			switch expected := tt.expectedBody.(type) {
			case AccountResponse:
				assert.Equal(t, expected, decode[AccountResponse](t, rec))
			case ErrorResponse:
				assert.Equal(t, expected, decode[ErrorResponse](t, rec))
			}
		})
	}
}

func TestListAccountsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAccountLister(ctrl)
	handler := NewListAccountsHandler(mockSvc)

	mockSvc.EXPECT().List(gomock.Any()).Return([]models.Account{alice}, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, newRequest(t, http.MethodGet, "/accounts", "", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ListAccountsResponse{Accounts: []models.Account{alice}}, decode[ListAccountsResponse](t, rec))

	mockSvc.EXPECT().List(gomock.Any()).Return(nil, errors.New("decode accounts.json: bad"))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, newRequest(t, http.MethodGet, "/accounts", "", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetAccountHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAccountGetter(ctrl)
	handler := NewGetAccountHandler(mockSvc)

	tests := []struct {
		name           string
		acno           string
		mockGet        func()
		expectedStatus int
	}{
		{
			name: "success",
			acno: "1001",
			mockGet: func() {
				mockSvc.EXPECT().Get(gomock.Any(), int64(1001)).Return(&alice, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not_found",
			acno: "4242",
			mockGet: func() {
				mockSvc.EXPECT().Get(gomock.Any(), int64(4242)).Return(nil, services.ErrAccountNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "non_numeric",
			acno:           "abc",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockGet != nil {
				tt.mockGet()
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, newRequest(t, http.MethodGet, "/accounts/"+tt.acno, tt.acno, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, alice, decode[models.Account](t, rec))
			}
		})
	}
}

func TestModifyAccountHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAccountModifier(ctrl)
	handler := NewModifyAccountHandler(mockSvc)

	modified := models.Account{Number: 1001, Name: "Alice B", Type: models.Current, Balance: 1500}
	mockSvc.EXPECT().
		Modify(gomock.Any(), int64(1001), "Alice B", "C", int64(1500)).
		Return(&modified, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, newRequest(t, http.MethodPut, "/accounts/1001", "1001",
		ModifyAccountRequest{Name: "Alice B", Type: "C", Deposit: 1500}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, AccountResponse{Message: "Account modified.", Account: modified}, decode[AccountResponse](t, rec))

	mockSvc.EXPECT().
		Modify(gomock.Any(), int64(7), "X", "S", int64(600)).
		Return(nil, services.ErrAccountNotFound)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, newRequest(t, http.MethodPut, "/accounts/7", "7",
		ModifyAccountRequest{Name: "X", Type: "S", Deposit: 600}))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, ErrorResponse{Error: "account not found"}, decode[ErrorResponse](t, rec))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, newRequest(t, http.MethodPut, "/accounts/7", "7", `not-json`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteAccountHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAccountDeleter(ctrl)
	handler := NewDeleteAccountHandler(mockSvc)

	// unknown numbers are a successful no-op in the service
	mockSvc.EXPECT().Delete(gomock.Any(), int64(4242)).Return(nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, newRequest(t, http.MethodDelete, "/accounts/4242", "4242", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, MessageResponse{Message: "Account deleted."}, decode[MessageResponse](t, rec))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, newRequest(t, http.MethodDelete, "/accounts/x", "x", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
