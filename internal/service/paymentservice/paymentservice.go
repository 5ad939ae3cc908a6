package paymentservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/GlebRadaev/domainstore/internal/domain"
	"github.com/GlebRadaev/domainstore/internal/metrics"
	"github.com/GlebRadaev/domainstore/internal/payments"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	EventPaymentSucceeded = "payment.succeeded"
	EventPaymentFailed    = "payment.failed"
	EventChargeRefunded   = "charge.refunded"

	// OrderTypeDomain tags payments created for domain orders. Other products
	// share the same webhook endpoint.
	OrderTypeDomain = "domain_order"
)

type Verifier interface {
	Verify(payload []byte, header string) error
}

type Orchestrator interface {
	ProcessPayment(ctx context.Context, paymentRef string) error
}

type OrderRepo interface {
	FindByPaymentRef(ctx context.Context, paymentRef string) (*domain.Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
	SetPaymentStatus(ctx context.Context, orderID int, status domain.PaymentStatus) error
	MarkRefunded(ctx context.Context, orderID int, full bool) error
	AddActivity(ctx context.Context, orderID int, action string, details any) error
}

type Notifier interface {
	OrderFailed(ctx context.Context, order *domain.Order, reason string) error
}

type Refunder interface {
	Refund(ctx context.Context, paymentRef string, amount decimal.Decimal) (*payments.Refund, error)
}

var (
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrMalformedEvent   = errors.New("malformed payment event")
	ErrOrderNotFound    = errors.New("order not found")
	ErrNotRefundable    = errors.New("order has no captured payment to refund")
	ErrInvalidAmount    = errors.New("refund amount must be positive and within the order total")
)

// Event is the payment processor notification envelope.
type Event struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object PaymentObject `json:"object"`
	} `json:"data"`
}

type PaymentObject struct {
	ID             string            `json:"id"`
	Amount         int64             `json:"amount"`
	AmountRefunded int64             `json:"amount_refunded"`
	FailureMessage string            `json:"failure_message"`
	Metadata       map[string]string `json:"metadata"`
}

type Service struct {
	verifier     Verifier
	orchestrator Orchestrator
	orders       OrderRepo
	notifier     Notifier
	refunder     Refunder
}

func New(verifier Verifier, orchestrator Orchestrator, orders OrderRepo, notifier Notifier, refunder Refunder) *Service {
	return &Service{
		verifier:     verifier,
		orchestrator: orchestrator,
		orders:       orders,
		notifier:     notifier,
		refunder:     refunder,
	}
}

// HandleEvent authenticates and applies one payment notification. Nothing is
// read from the payload before the signature checks out.
func (s *Service) HandleEvent(ctx context.Context, payload []byte, signature string) error {
	if err := s.verifier.Verify(payload, signature); err != nil {
		metrics.IncWebhookEvent("unknown", "rejected")
		zap.L().Warn("payment event rejected", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		metrics.IncWebhookEvent("unknown", "malformed")
		return fmt.Errorf("%w: %w", ErrMalformedEvent, err)
	}
	obj := event.Data.Object
	if event.Type == "" || obj.ID == "" {
		metrics.IncWebhookEvent("unknown", "malformed")
		return ErrMalformedEvent
	}
	if obj.Metadata["order_type"] != OrderTypeDomain {
		metrics.IncWebhookEvent(event.Type, "ignored")
		zap.L().Debug("ignoring payment event for another product",
			zap.String("event_id", event.ID), zap.String("order_type", obj.Metadata["order_type"]))
		return nil
	}

	log := zap.L().With(zap.String("event_id", event.ID), zap.String("type", event.Type), zap.String("payment_ref", obj.ID))
	var err error
	switch event.Type {
	case EventPaymentSucceeded:
		log.Info("payment succeeded")
		err = s.orchestrator.ProcessPayment(ctx, obj.ID)
	case EventPaymentFailed:
		err = s.paymentFailed(ctx, obj)
	case EventChargeRefunded:
		if obj.Amount <= 0 || obj.AmountRefunded <= 0 {
			metrics.IncWebhookEvent(event.Type, "malformed")
			log.Warn("refund event without amounts", zap.Int64("amount", obj.Amount), zap.Int64("amount_refunded", obj.AmountRefunded))
			return ErrMalformedEvent
		}
		err = s.chargeRefunded(ctx, obj)
	default:
		metrics.IncWebhookEvent(event.Type, "ignored")
		log.Debug("ignoring payment event type")
		return nil
	}
	if err != nil {
		metrics.IncWebhookEvent(event.Type, "error")
		log.Error("payment event not fully applied", zap.Error(err))
		return err
	}
	metrics.IncWebhookEvent(event.Type, "processed")
	return nil
}

func (s *Service) paymentFailed(ctx context.Context, obj PaymentObject) error {
	order, err := s.orders.FindByPaymentRef(ctx, obj.ID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	if order.PaymentStatus != domain.PaymentPending {
		zap.L().Info("payment failure for a settled order ignored",
			zap.String("order_number", order.OrderNumber), zap.String("payment_status", string(order.PaymentStatus)))
		return nil
	}
	if err := s.orders.SetPaymentStatus(ctx, order.ID, domain.PaymentFailed); err != nil {
		return err
	}
	order.PaymentStatus = domain.PaymentFailed
	s.activity(ctx, order, "payment_failed", map[string]string{"payment_ref": obj.ID, "message": obj.FailureMessage})

	reason := "payment was declined"
	if obj.FailureMessage != "" {
		reason = obj.FailureMessage
	}
	if err := s.notifier.OrderFailed(ctx, order, reason); err != nil {
		zap.L().Error("can't send notification", zap.String("order_number", order.OrderNumber),
			zap.String("notification", "order_failed"), zap.Error(err))
	}
	return nil
}

func (s *Service) chargeRefunded(ctx context.Context, obj PaymentObject) error {
	order, err := s.orders.FindByPaymentRef(ctx, obj.ID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	if order.PaymentStatus == domain.PaymentRefunded {
		return nil
	}
	full := obj.AmountRefunded >= obj.Amount
	if err := s.orders.MarkRefunded(ctx, order.ID, full); err != nil {
		return err
	}
	s.activity(ctx, order, "refunded", map[string]any{
		"payment_ref":     obj.ID,
		"amount_refunded": decimal.New(obj.AmountRefunded, -2).StringFixed(2),
		"full":            full,
	})
	zap.L().Info("order refunded", zap.String("order_number", order.OrderNumber), zap.Bool("full", full))
	return nil
}

// Refund asks the processor to refund a paid order. amount zero refunds the
// whole payment; the order itself changes when charge.refunded arrives.
func (s *Service) Refund(ctx context.Context, orderNumber string, amount decimal.Decimal) (*payments.Refund, error) {
	order, err := s.orders.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.PaymentRef == "" || (order.PaymentStatus != domain.PaymentPaid && order.PaymentStatus != domain.PaymentPartialRefund) {
		return nil, ErrNotRefundable
	}
	if amount.IsNegative() || amount.GreaterThan(order.Total) {
		return nil, ErrInvalidAmount
	}

	refund, err := s.refunder.Refund(ctx, order.PaymentRef, amount)
	if err != nil {
		return nil, err
	}
	s.activity(ctx, order, "refund_requested", map[string]string{
		"refund_id": refund.ID,
		"status":    refund.Status,
		"amount":    amount.StringFixed(2),
	})
	zap.L().Info("refund requested", zap.String("order_number", orderNumber),
		zap.String("refund_id", refund.ID), zap.String("amount", amount.StringFixed(2)))
	return refund, nil
}

func (s *Service) activity(ctx context.Context, order *domain.Order, action string, details any) {
	if err := s.orders.AddActivity(ctx, order.ID, action, details); err != nil {
		zap.L().Error("can't record order activity", zap.String("order_number", order.OrderNumber),
			zap.String("action", action), zap.Error(err))
	}
}
