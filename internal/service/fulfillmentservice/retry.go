package fulfillmentservice

import (
	"context"

	"github.com/GlebRadaev/domainstore/internal/domain"
	"go.uber.org/zap"
)

// GetOrder returns the order with its items. Only the owner and staff may see it.
func (s *Service) GetOrder(ctx context.Context, actor Actor, orderNumber string) (*domain.Order, []domain.OrderItem, error) {
	order, err := s.orders.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, nil, err
	}
	if order == nil {
		return nil, nil, ErrOrderNotFound
	}
	if !actor.IsAdmin && order.UserID != actor.UserID {
		return nil, nil, ErrForbidden
	}
	items, err := s.orders.Items(ctx, order.ID)
	if err != nil {
		return nil, nil, err
	}
	return order, items, nil
}

// RetryItem re-runs a failed item of a paid order and re-aggregates the order,
// which may move it from partial to completed.
func (s *Service) RetryItem(ctx context.Context, actor Actor, orderNumber string, itemID int) (*domain.OrderItem, error) {
	order, err := s.orders.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !actor.IsAdmin && order.UserID != actor.UserID {
		return nil, ErrForbidden
	}
	if order.PaymentStatus != domain.PaymentPaid || order.Status == domain.OrderRefunded {
		return nil, ErrNotRetryable
	}
	if err := order.Contact.Validate(); err != nil {
		return nil, ErrMissingContact
	}

	release, ok, err := s.locker.TryLock(ctx, lockKey(order.ID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotRetryable
	}
	defer release()

	items, err := s.orders.Items(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	var target *domain.OrderItem
	for i := range items {
		if items[i].ID == itemID {
			target = &items[i]
			break
		}
	}
	if target == nil {
		return nil, ErrItemNotFound
	}
	if target.Status != domain.ItemFailed {
		return nil, ErrNotRetryable
	}

	reopened, err := s.orders.ReopenItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !reopened {
		return nil, ErrNotRetryable
	}
	if _, err := s.orders.Transition(ctx, order.ID,
		[]domain.OrderStatus{domain.OrderPartial, domain.OrderFailed}, domain.OrderProcessing); err != nil {
		return nil, err
	}
	order.Status = domain.OrderProcessing

	zap.L().Info("retrying order item", zap.String("order_number", orderNumber), zap.Int("item_id", itemID),
		zap.Int("actor", actor.UserID), zap.Bool("admin", actor.IsAdmin))
	out, err := s.processItem(ctx, order, *target)
	if out.refilled && out.item.Status != domain.ItemCompleted {
		s.flagForReview(ctx, order, reviewUnreconciledRefill)
	}
	if err != nil {
		return nil, err
	}

	items, err = s.orders.Items(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	won, status, err := s.finalize(ctx, order, items)
	if err != nil {
		return nil, err
	}
	if won {
		s.recordActivity(ctx, order, "item_retry", activity(status, []itemOutcome{out}, order.RequiresReview))
		s.notifyItem(ctx, order, out)
	}
	return &out.item, nil
}
