package wallet

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/obralink/obralink/internal/currency"
	"github.com/obralink/obralink/internal/domain"
	"github.com/obralink/obralink/internal/service/walletservice"
	"github.com/obralink/obralink/pkg/auth"
)

func NewMock(t *testing.T) (*WalletHandler, *MockService, *MockRateService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	rateService := NewMockRateService(ctrl)
	handler := New(service, rateService)
	defer ctrl.Finish()
	return handler, service, rateService
}

func TestGetWallet(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Returns the wallet",
			prepareMock: func() {
				service.EXPECT().GetOrCreateWallet(gomock.Any(), 1).
					Return(&domain.Wallet{ID: 4, Balance: decimal.RequireFromString("35000.00")}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":4,"balance":"35000.00"}`,
		},
		{
			name: "Internal error",
			prepareMock: func() {
				service.EXPECT().GetOrCreateWallet(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/wallet", nil)
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()

			handler.GetWallet(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestDeposit(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful deposit",
			body: `{"card":"4539148803436467","amount":"50000.00"}`,
			prepareMock: func() {
				service.EXPECT().Deposit(gomock.Any(), 1, decimal.RequireFromString("50000.00")).
					Return(&domain.Wallet{ID: 4, Balance: decimal.RequireFromString("85000.00")}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Card fails the Luhn check",
			body:         `{"card":"1234567890","amount":"50000.00"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Invalid amount",
			body:         `{"card":"4539148803436467","amount":"abc"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Non positive amount",
			body: `{"card":"4539148803436467","amount":"-5.00"}`,
			prepareMock: func() {
				service.EXPECT().Deposit(gomock.Any(), 1, decimal.RequireFromString("-5.00")).
					Return(nil, walletservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid body",
			body:         `{invalid`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/wallet/deposit", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()

			handler.Deposit(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetEscrowSummary(t *testing.T) {
	handler, service, _ := NewMock(t)

	t.Run("Returns balance and locked total", func(t *testing.T) {
		service.EXPECT().GetEscrowSummary(gomock.Any(), 1).
			Return(&walletservice.EscrowSummary{
				Wallet: &domain.Wallet{ID: 4, Balance: decimal.RequireFromString("35000.00")},
				Locked: decimal.RequireFromString("70000.00"),
			}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/wallet/escrow", nil)
		r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
		w := httptest.NewRecorder()

		handler.GetEscrowSummary(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"balance":"35000.00","locked":"70000.00"}`, w.Body.String())
	})
}

func TestGetRate(t *testing.T) {
	handler, _, rateService := NewMock(t)

	t.Run("Returns the cached quote", func(t *testing.T) {
		fetched := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
		rateService.EXPECT().GetRate().Return(&currency.Rate{
			Buy:       decimal.RequireFromString("1185.50"),
			Sell:      decimal.RequireFromString("1225.50"),
			Source:    "Oficial",
			FetchedAt: fetched,
		})

		r := httptest.NewRequest(http.MethodGet, "/api/wallet/rate", nil)
		r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
		w := httptest.NewRecorder()

		handler.GetRate(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"buy":"1185.50","sell":"1225.50","source":"Oficial","fetched_at":"2026-08-30T10:00:00Z"}`, w.Body.String())
	})
}
