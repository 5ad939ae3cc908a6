package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/domainstore/internal/domain"
	"github.com/GlebRadaev/domainstore/internal/dto"
	"github.com/GlebRadaev/domainstore/internal/payments"
	"github.com/GlebRadaev/domainstore/internal/service/fulfillmentservice"
	"github.com/GlebRadaev/domainstore/internal/service/paymentservice"
	"github.com/GlebRadaev/domainstore/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

const validNumber = "2404815702"

func NewMock(t *testing.T) (*OrderHandler, *MockService, *MockRefundService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	refunds := NewMockRefundService(ctrl)
	return New(service, refunds), service, refunds
}

func request(method, target, body string, userID int, admin bool, params map[string]string) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(context.Background(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, auth.UserIDKey, userID)
	ctx = context.WithValue(ctx, auth.IsAdminKey, admin)
	return r.WithContext(ctx)
}

func TestGetOrderHandler(t *testing.T) {
	order := &domain.Order{
		OrderNumber: validNumber, Status: domain.OrderPartial, PaymentStatus: domain.PaymentPaid,
		Total: decimal.RequireFromString("25.98"), Mode: domain.ModeLive,
	}
	items := []domain.OrderItem{
		{ID: 1, Type: domain.ItemRegister, DomainName: "fresh.com", Years: 1, TotalPrice: decimal.RequireFromString("12.99"), Status: domain.ItemCompleted, RegistrarOrderID: "R-1"},
		{ID: 2, Type: domain.ItemRegister, DomainName: "taken.com", Years: 1, TotalPrice: decimal.RequireFromString("12.99"), Status: domain.ItemFailed, ErrorMessage: "registrar declined: domain is not available"},
	}

	tests := []struct {
		name          string
		number        string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Owner sees the order",
			number: validNumber,
			prepareMock: func(service *MockService) {
				service.EXPECT().GetOrder(gomock.Any(), fulfillmentservice.Actor{UserID: 1}, validNumber).Return(order, items, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid order number",
			number:        "12345",
			prepareMock:   func(*MockService) {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Invalid order number",
		},
		{
			name:   "Not found",
			number: validNumber,
			prepareMock: func(service *MockService) {
				service.EXPECT().GetOrder(gomock.Any(), gomock.Any(), validNumber).Return(nil, nil, fulfillmentservice.ErrOrderNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Order not found",
		},
		{
			name:   "Another account",
			number: validNumber,
			prepareMock: func(service *MockService) {
				service.EXPECT().GetOrder(gomock.Any(), gomock.Any(), validNumber).Return(nil, nil, fulfillmentservice.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:   "Internal server error",
			number: validNumber,
			prepareMock: func(service *MockService) {
				service.EXPECT().GetOrder(gomock.Any(), gomock.Any(), validNumber).Return(nil, nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service, _ := NewMock(t)
			tt.prepareMock(service)

			r := request(http.MethodGet, "/api/user/orders/"+tt.number, "", 1, false, map[string]string{"number": tt.number})
			w := httptest.NewRecorder()

			handler.GetOrder(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.OrderResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, "partial", body.Status)
				assert.True(t, decimal.RequireFromString("25.98").Equal(body.Total))
				require.Len(t, body.Items, 2)
				assert.Equal(t, "registrar declined: domain is not available", body.Items[1].Error)
			}
		})
	}
}

func TestRetryItemHandler(t *testing.T) {
	tests := []struct {
		name         string
		itemID       string
		admin        bool
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name:   "Owner retries",
			itemID: "2",
			prepareMock: func(service *MockService) {
				service.EXPECT().RetryItem(gomock.Any(), fulfillmentservice.Actor{UserID: 1}, validNumber, 2).
					Return(&domain.OrderItem{ID: 2, Status: domain.ItemCompleted}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Staff retries",
			itemID: "2",
			admin:  true,
			prepareMock: func(service *MockService) {
				service.EXPECT().RetryItem(gomock.Any(), fulfillmentservice.Actor{UserID: 1, IsAdmin: true}, validNumber, 2).
					Return(&domain.OrderItem{ID: 2, Status: domain.ItemFailed}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid item id",
			itemID:       "two",
			prepareMock:  func(*MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Item is not failed",
			itemID: "1",
			prepareMock: func(service *MockService) {
				service.EXPECT().RetryItem(gomock.Any(), gomock.Any(), validNumber, 1).Return(nil, fulfillmentservice.ErrNotRetryable)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:   "Unknown item",
			itemID: "9",
			prepareMock: func(service *MockService) {
				service.EXPECT().RetryItem(gomock.Any(), gomock.Any(), validNumber, 9).Return(nil, fulfillmentservice.ErrItemNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "Missing contact",
			itemID: "2",
			prepareMock: func(service *MockService) {
				service.EXPECT().RetryItem(gomock.Any(), gomock.Any(), validNumber, 2).Return(nil, fulfillmentservice.ErrMissingContact)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service, _ := NewMock(t)
			tt.prepareMock(service)

			r := request(http.MethodPost, "/retry", "", 1, tt.admin, map[string]string{"number": validNumber, "itemID": tt.itemID})
			w := httptest.NewRecorder()

			handler.RetryItem(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestRefundHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(refunds *MockRefundService)
		expectedCode int
	}{
		{
			name: "Full refund",
			body: "",
			prepareMock: func(refunds *MockRefundService) {
				refunds.EXPECT().Refund(gomock.Any(), validNumber, decimal.Decimal{}).Return(&payments.Refund{ID: "re_1", Status: "pending"}, nil)
			},
			expectedCode: http.StatusAccepted,
		},
		{
			name: "Partial refund",
			body: `{"amount":"10.50"}`,
			prepareMock: func(refunds *MockRefundService) {
				refunds.EXPECT().Refund(gomock.Any(), validNumber, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, amount decimal.Decimal) (*payments.Refund, error) {
						assert.True(t, decimal.RequireFromString("10.50").Equal(amount))
						return &payments.Refund{ID: "re_2", Status: "succeeded"}, nil
					})
			},
			expectedCode: http.StatusAccepted,
		},
		{
			name:         "Invalid body",
			body:         `{"amount":`,
			prepareMock:  func(*MockRefundService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unpaid order",
			body: "",
			prepareMock: func(refunds *MockRefundService) {
				refunds.EXPECT().Refund(gomock.Any(), validNumber, gomock.Any()).Return(nil, paymentservice.ErrNotRefundable)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Processor declines",
			body: "",
			prepareMock: func(refunds *MockRefundService) {
				refunds.EXPECT().Refund(gomock.Any(), validNumber, gomock.Any()).Return(nil, payments.ErrRefundFailed)
			},
			expectedCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _, refunds := NewMock(t)
			tt.prepareMock(refunds)

			r := request(http.MethodPost, "/refund", tt.body, 1, true, map[string]string{"number": validNumber})
			w := httptest.NewRecorder()

			handler.Refund(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
