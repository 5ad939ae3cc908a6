package fulfillmentservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/GlebRadaev/domainstore/internal/domain"
	"go.uber.org/zap"
)

type activityItem struct {
	ID               int               `json:"id"`
	Type             domain.ItemType   `json:"type"`
	Domain           string            `json:"domain"`
	Status           domain.ItemStatus `json:"status"`
	RegistrarOrderID string            `json:"registrar_order_id,omitempty"`
	Error            string            `json:"error,omitempty"`
	Skipped          bool              `json:"skipped,omitempty"`
	Refilled         bool              `json:"refilled,omitempty"`
}

type activityDetails struct {
	Status         domain.OrderStatus `json:"status"`
	RequiresReview bool               `json:"requires_review,omitempty"`
	Items          []activityItem     `json:"items"`
}

func activity(status domain.OrderStatus, outcomes []itemOutcome, review bool) activityDetails {
	details := activityDetails{Status: status, RequiresReview: review, Items: make([]activityItem, 0, len(outcomes))}
	for _, out := range outcomes {
		details.Items = append(details.Items, activityItem{
			ID:               out.item.ID,
			Type:             out.item.Type,
			Domain:           out.item.DomainName,
			Status:           out.item.Status,
			RegistrarOrderID: out.item.RegistrarOrderID,
			Error:            out.item.ErrorMessage,
			Skipped:          out.skipped,
			Refilled:         out.refilled,
		})
	}
	return details
}

func (s *Service) recordActivity(ctx context.Context, order *domain.Order, action string, details any) {
	if err := s.orders.AddActivity(ctx, order.ID, action, details); err != nil {
		zap.L().Error("can't record order activity", zap.String("order_number", order.OrderNumber),
			zap.String("action", action), zap.Error(err))
	}
}

// notify never lets a notification problem reach the caller.
func (s *Service) notify(ctx context.Context, order *domain.Order, kind string, send func(ctx context.Context) error) {
	defer func() {
		if p := recover(); p != nil {
			zap.L().Error("notifier panicked", zap.String("order_number", order.OrderNumber),
				zap.String("notification", kind), zap.Any("panic", p))
		}
	}()
	if err := send(ctx); err != nil {
		zap.L().Error("can't send notification", zap.String("order_number", order.OrderNumber),
			zap.String("notification", kind), zap.Error(err))
	}
}

func (s *Service) notifyFulfilled(ctx context.Context, order *domain.Order, items []domain.OrderItem, outcomes []itemOutcome) {
	if order.Status == domain.OrderFailed {
		s.notify(ctx, order, "order_failed", func(ctx context.Context) error {
			return s.notifier.OrderFailed(ctx, order, failureReason(items))
		})
		return
	}
	s.notify(ctx, order, "order_confirmed", func(ctx context.Context) error {
		return s.notifier.OrderConfirmed(ctx, order, items)
	})
	for _, out := range outcomes {
		s.notifyItem(ctx, order, out)
	}
}

func (s *Service) notifyItem(ctx context.Context, order *domain.Order, out itemOutcome) {
	if out.item.Status != domain.ItemCompleted {
		return
	}
	switch out.item.Type {
	case domain.ItemRegister:
		s.notify(ctx, order, "domain_registered", func(ctx context.Context) error {
			return s.notifier.DomainRegistered(ctx, order, out.item, out.expiresAt)
		})
	case domain.ItemTransfer:
		s.notify(ctx, order, "transfer_initiated", func(ctx context.Context) error {
			return s.notifier.TransferInitiated(ctx, order, out.item)
		})
	}
}

func failureReason(items []domain.OrderItem) string {
	reasons := make([]string, 0, len(items))
	for _, item := range items {
		if item.ErrorMessage != "" {
			reasons = append(reasons, fmt.Sprintf("%s: %s", item.DomainName, item.ErrorMessage))
		}
	}
	if len(reasons) == 0 {
		return "no domain in the order could be processed"
	}
	return strings.Join(reasons, "; ")
}
