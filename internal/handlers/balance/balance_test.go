package balance

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/domainstore/internal/domain"
	"github.com/GlebRadaev/domainstore/internal/dto"
	"github.com/GlebRadaev/domainstore/internal/service/balanceservice"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*BalanceHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func TestGetBalanceHandler(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		prepareMock  func(service *MockService)
		expectedCode int
		expectedBody dto.BalanceResponseDTO
	}{
		{
			name: "Defaults to live",
			prepareMock: func(service *MockService) {
				service.EXPECT().Balance(gomock.Any(), domain.ModeLive).Return(decimal.RequireFromString("512.40"), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{Mode: "live", Available: decimal.RequireFromString("512.40")},
		},
		{
			name:  "Test mode",
			query: "?mode=test",
			prepareMock: func(service *MockService) {
				service.EXPECT().Balance(gomock.Any(), domain.ModeTest).Return(decimal.RequireFromString("3"), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{Mode: "test", Available: decimal.RequireFromString("3")},
		},
		{
			name:  "Unknown mode",
			query: "?mode=sandbox",
			prepareMock: func(service *MockService) {
				service.EXPECT().Balance(gomock.Any(), domain.RegistrarMode("sandbox")).Return(decimal.Zero, balanceservice.ErrInvalidMode)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Registrar unreachable",
			prepareMock: func(service *MockService) {
				service.EXPECT().Balance(gomock.Any(), domain.ModeLive).Return(decimal.Zero, errors.New("dial tcp: timeout"))
			},
			expectedCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			r := httptest.NewRequest(http.MethodGet, "/api/admin/balance"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.GetBalance(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedBody.Mode, body.Mode)
				assert.True(t, tt.expectedBody.Available.Equal(body.Available))
			}
		})
	}
}

func TestRefillHandler(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Manual refill",
			body: `{"mode":"test","amount":"100","note":"top-up"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Refill(gomock.Any(), domain.ModeTest, decimal.RequireFromString("100"), "top-up").
					Return(&domain.BalanceTransaction{
						ID: 3, Type: domain.TransactionRefill,
						Amount: decimal.RequireFromString("100"), Fee: decimal.RequireFromString("3.5"), NetAmount: decimal.RequireFromString("96.5"),
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid body",
			body:          `{"amount":`,
			prepareMock:   func(*MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Non-positive amount",
			body: `{"amount":"0"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Refill(gomock.Any(), domain.ModeLive, gomock.Any(), "").Return(nil, balanceservice.ErrInvalidAmount)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: balanceservice.ErrInvalidAmount.Error(),
		},
		{
			name: "Registrar refuses",
			body: `{"mode":"live","amount":"50"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Refill(gomock.Any(), domain.ModeLive, gomock.Any(), "").Return(nil, balanceservice.ErrRefillFailed)
			},
			expectedCode: http.StatusBadGateway,
		},
		{
			name: "Ledger write fails",
			body: `{"mode":"live","amount":"50"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Refill(gomock.Any(), domain.ModeLive, gomock.Any(), "").Return(nil, errors.New("conn reset"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			r := httptest.NewRequest(http.MethodPost, "/api/admin/balance/refill", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Refill(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestTransactionsHandler(t *testing.T) {
	name := "example.com"
	tests := []struct {
		name         string
		query        string
		prepareMock  func(service *MockService)
		expectedCode int
		expectedLen  int
	}{
		{
			name:  "Lists entries",
			query: "?limit=2",
			prepareMock: func(service *MockService) {
				service.EXPECT().Transactions(gomock.Any(), 2).Return([]domain.BalanceTransaction{
					{ID: 2, Type: domain.TransactionAutoRefill, DomainName: &name},
					{ID: 1, Type: domain.TransactionRefill},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "Empty ledger",
			prepareMock: func(service *MockService) {
				service.EXPECT().Transactions(gomock.Any(), 0).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal server error",
			prepareMock: func(service *MockService) {
				service.EXPECT().Transactions(gomock.Any(), 0).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			r := httptest.NewRequest(http.MethodGet, "/api/admin/balance/transactions"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.Transactions(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedLen > 0 {
				var body []dto.BalanceTransactionDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Len(t, body, tt.expectedLen)
				assert.Equal(t, "auto_refill", body[0].Type)
			}
		})
	}
}
