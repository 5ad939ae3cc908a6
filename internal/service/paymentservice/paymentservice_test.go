package paymentservice

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/GlebRadaev/domainstore/internal/domain"
	"github.com/GlebRadaev/domainstore/internal/payments"
	"github.com/GlebRadaev/domainstore/pkg/signature"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

const secret = "whsec_test"

type mocks struct {
	orchestrator *MockOrchestrator
	orders       *MockOrderRepo
	notifier     *MockNotifier
	refunder     *MockRefunder
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		orchestrator: NewMockOrchestrator(ctrl),
		orders:       NewMockOrderRepo(ctrl),
		notifier:     NewMockNotifier(ctrl),
		refunder:     NewMockRefunder(ctrl),
	}
	verifier := signature.NewVerifier(secret, 5*time.Minute)
	return New(verifier, m.orchestrator, m.orders, m.notifier, m.refunder), m
}

func event(typ, orderType string, amount, refunded int64) []byte {
	return []byte(fmt.Sprintf(`{"id":"evt_1","type":%q,"data":{"object":{"id":"pi_1","amount":%d,"amount_refunded":%d,`+
		`"failure_message":"","metadata":{"order_type":%q,"account_id":"7"}}}}`, typ, amount, refunded, orderType))
}

func sign(payload []byte) string {
	return signature.NewVerifier(secret, 0).Sign(payload, time.Now())
}

func TestHandleEvent(t *testing.T) {
	ctx := context.Background()
	order := func(status domain.PaymentStatus) *domain.Order {
		return &domain.Order{ID: 1, OrderNumber: "1001", PaymentRef: "pi_1", PaymentStatus: status, Status: domain.OrderPending}
	}
	dbErr := errors.New("db is down")

	tests := []struct {
		name      string
		payload   []byte
		signature func(payload []byte) string
		mockSetup func(m *mocks)
		wantErr   error
	}{
		{
			name:      "unsigned event is rejected",
			payload:   event(EventPaymentSucceeded, OrderTypeDomain, 1500, 0),
			signature: func([]byte) string { return "" },
			mockSetup: func(*mocks) {},
			wantErr:   ErrInvalidSignature,
		},
		{
			name:    "tampered body is rejected",
			payload: event(EventPaymentSucceeded, OrderTypeDomain, 1500, 0),
			signature: func([]byte) string {
				return sign(event(EventPaymentSucceeded, OrderTypeDomain, 1, 0))
			},
			mockSetup: func(*mocks) {},
			wantErr:   ErrInvalidSignature,
		},
		{
			name:      "malformed json",
			payload:   []byte(`{"type":`),
			signature: sign,
			mockSetup: func(*mocks) {},
			wantErr:   ErrMalformedEvent,
		},
		{
			name:      "missing payment reference",
			payload:   []byte(`{"id":"evt_1","type":"payment.succeeded","data":{"object":{}}}`),
			signature: sign,
			mockSetup: func(*mocks) {},
			wantErr:   ErrMalformedEvent,
		},
		{
			name:      "other product is ignored",
			payload:   event(EventPaymentSucceeded, "gift_card", 1500, 0),
			signature: sign,
			mockSetup: func(*mocks) {},
		},
		{
			name:      "unknown event type is ignored",
			payload:   event("payment.created", OrderTypeDomain, 1500, 0),
			signature: sign,
			mockSetup: func(*mocks) {},
		},
		{
			name:      "succeeded drives fulfillment",
			payload:   event(EventPaymentSucceeded, OrderTypeDomain, 1500, 0),
			signature: sign,
			mockSetup: func(m *mocks) {
				m.orchestrator.EXPECT().ProcessPayment(gomock.Any(), "pi_1").Return(nil)
			},
		},
		{
			name:      "fulfillment error is returned",
			payload:   event(EventPaymentSucceeded, OrderTypeDomain, 1500, 0),
			signature: sign,
			mockSetup: func(m *mocks) {
				m.orchestrator.EXPECT().ProcessPayment(gomock.Any(), "pi_1").Return(dbErr)
			},
			wantErr: dbErr,
		},
		{
			name:      "failed payment",
			payload:   event(EventPaymentFailed, OrderTypeDomain, 1500, 0),
			signature: sign,
			mockSetup: func(m *mocks) {
				m.orders.EXPECT().FindByPaymentRef(gomock.Any(), "pi_1").Return(order(domain.PaymentPending), nil)
				m.orders.EXPECT().SetPaymentStatus(gomock.Any(), 1, domain.PaymentFailed).Return(nil)
				m.orders.EXPECT().AddActivity(gomock.Any(), 1, "payment_failed", gomock.Any()).Return(nil)
				m.notifier.EXPECT().OrderFailed(gomock.Any(), gomock.Any(), "payment was declined").Return(errors.New("broker down"))
			},
		},
		{
			name:      "late failure for a paid order",
			payload:   event(EventPaymentFailed, OrderTypeDomain, 1500, 0),
			signature: sign,
			mockSetup: func(m *mocks) {
				m.orders.EXPECT().FindByPaymentRef(gomock.Any(), "pi_1").Return(order(domain.PaymentPaid), nil)
			},
		},
		{
			name:      "failure for unknown order",
			payload:   event(EventPaymentFailed, OrderTypeDomain, 1500, 0),
			signature: sign,
			mockSetup: func(m *mocks) {
				m.orders.EXPECT().FindByPaymentRef(gomock.Any(), "pi_1").Return(nil, nil)
			},
			wantErr: ErrOrderNotFound,
		},
		{
			name:      "full refund",
			payload:   event(EventChargeRefunded, OrderTypeDomain, 1500, 1500),
			signature: sign,
			mockSetup: func(m *mocks) {
				m.orders.EXPECT().FindByPaymentRef(gomock.Any(), "pi_1").Return(order(domain.PaymentPaid), nil)
				m.orders.EXPECT().MarkRefunded(gomock.Any(), 1, true).Return(nil)
				m.orders.EXPECT().AddActivity(gomock.Any(), 1, "refunded", gomock.Any()).Return(nil)
			},
		},
		{
			name:      "partial refund",
			payload:   event(EventChargeRefunded, OrderTypeDomain, 1500, 500),
			signature: sign,
			mockSetup: func(m *mocks) {
				m.orders.EXPECT().FindByPaymentRef(gomock.Any(), "pi_1").Return(order(domain.PaymentPaid), nil)
				m.orders.EXPECT().MarkRefunded(gomock.Any(), 1, false).Return(nil)
				m.orders.EXPECT().AddActivity(gomock.Any(), 1, "refunded", gomock.Any()).Return(dbErr)
			},
		},
		{
			name:      "refund without amounts",
			payload:   event(EventChargeRefunded, OrderTypeDomain, 0, 0),
			signature: sign,
			mockSetup: func(*mocks) {},
			wantErr:   ErrMalformedEvent,
		},
		{
			name:      "refund without refunded amount",
			payload:   event(EventChargeRefunded, OrderTypeDomain, 1500, 0),
			signature: sign,
			mockSetup: func(*mocks) {},
			wantErr:   ErrMalformedEvent,
		},
		{
			name:      "repeated refund notification",
			payload:   event(EventChargeRefunded, OrderTypeDomain, 1500, 1500),
			signature: sign,
			mockSetup: func(m *mocks) {
				m.orders.EXPECT().FindByPaymentRef(gomock.Any(), "pi_1").Return(order(domain.PaymentRefunded), nil)
			},
		},
		{
			name:      "refund store error",
			payload:   event(EventChargeRefunded, OrderTypeDomain, 1500, 1500),
			signature: sign,
			mockSetup: func(m *mocks) {
				m.orders.EXPECT().FindByPaymentRef(gomock.Any(), "pi_1").Return(order(domain.PaymentPaid), nil)
				m.orders.EXPECT().MarkRefunded(gomock.Any(), 1, true).Return(dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.mockSetup(m)

			err := service.HandleEvent(ctx, tt.payload, tt.signature(tt.payload))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRefund(t *testing.T) {
	ctx := context.Background()
	paid := &domain.Order{ID: 1, OrderNumber: "1001", PaymentRef: "pi_1", PaymentStatus: domain.PaymentPaid, Total: decimal.RequireFromString("25.98")}

	tests := []struct {
		name      string
		amount    string
		mockSetup func(m *mocks)
		wantErr   error
	}{
		{
			name:   "full refund",
			amount: "0",
			mockSetup: func(m *mocks) {
				m.orders.EXPECT().FindByOrderNumber(gomock.Any(), "1001").Return(paid, nil)
				m.refunder.EXPECT().Refund(gomock.Any(), "pi_1", gomock.Any()).Return(&payments.Refund{ID: "re_1", Status: "pending"}, nil)
				m.orders.EXPECT().AddActivity(gomock.Any(), 1, "refund_requested", gomock.Any()).Return(nil)
			},
		},
		{
			name:   "more than the order total",
			amount: "30",
			mockSetup: func(m *mocks) {
				m.orders.EXPECT().FindByOrderNumber(gomock.Any(), "1001").Return(paid, nil)
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name:   "unpaid order",
			amount: "0",
			mockSetup: func(m *mocks) {
				m.orders.EXPECT().FindByOrderNumber(gomock.Any(), "1001").Return(&domain.Order{ID: 1, PaymentRef: "pi_1", PaymentStatus: domain.PaymentPending}, nil)
			},
			wantErr: ErrNotRefundable,
		},
		{
			name:   "unknown order",
			amount: "0",
			mockSetup: func(m *mocks) {
				m.orders.EXPECT().FindByOrderNumber(gomock.Any(), "1001").Return(nil, nil)
			},
			wantErr: ErrOrderNotFound,
		},
		{
			name:   "processor declines",
			amount: "10",
			mockSetup: func(m *mocks) {
				m.orders.EXPECT().FindByOrderNumber(gomock.Any(), "1001").Return(paid, nil)
				m.refunder.EXPECT().Refund(gomock.Any(), "pi_1", gomock.Any()).Return(nil, payments.ErrRefundFailed)
			},
			wantErr: payments.ErrRefundFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.mockSetup(m)

			refund, err := service.Refund(ctx, "1001", decimal.RequireFromString(tt.amount))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "re_1", refund.ID)
		})
	}
}
