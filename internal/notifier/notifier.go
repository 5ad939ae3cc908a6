// Package notifier emits customer notifications about order fulfillment.
// Delivery is fire-and-forget: callers log failures and move on.
package notifier

import (
	"context"
	"time"

	"github.com/GlebRadaev/domainstore/internal/domain"
	"github.com/google/uuid"
)

const (
	EventOrderConfirmed    = "order.confirmed"
	EventDomainRegistered  = "domain.registered"
	EventTransferInitiated = "domain.transfer_initiated"
	EventOrderFailed       = "order.failed"
)

// Event is the message handed to the external notification service.
type Event struct {
	ID          uuid.UUID  `json:"id"`
	Type        string     `json:"type"`
	OrderNumber string     `json:"order_number"`
	UserID      int        `json:"user_id"`
	Email       string     `json:"email,omitempty"`
	Domain      string     `json:"domain,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	Reason      string     `json:"reason,omitempty"`
	Domains     []string   `json:"domains,omitempty"`
	OccurredAt  time.Time  `json:"occurred_at"`
}

type publisher interface {
	publish(ctx context.Context, e Event) error
}

// Notifier turns fulfillment outcomes into events for a publisher.
type Notifier struct {
	pub publisher
	now func() time.Time
}

func newNotifier(pub publisher) *Notifier {
	return &Notifier{pub: pub, now: time.Now}
}

func (n *Notifier) event(typ string, order *domain.Order) Event {
	e := Event{
		ID:          uuid.New(),
		Type:        typ,
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID,
		OccurredAt:  n.now().UTC(),
	}
	if order.Contact != nil {
		e.Email = order.Contact.Email
	}
	return e
}

func (n *Notifier) OrderConfirmed(ctx context.Context, order *domain.Order, items []domain.OrderItem) error {
	e := n.event(EventOrderConfirmed, order)
	for _, item := range items {
		if item.Status == domain.ItemCompleted {
			e.Domains = append(e.Domains, item.DomainName)
		}
	}
	return n.pub.publish(ctx, e)
}

func (n *Notifier) DomainRegistered(ctx context.Context, order *domain.Order, item domain.OrderItem, expiresAt *time.Time) error {
	e := n.event(EventDomainRegistered, order)
	e.Domain = item.DomainName
	e.ExpiresAt = expiresAt
	return n.pub.publish(ctx, e)
}

func (n *Notifier) TransferInitiated(ctx context.Context, order *domain.Order, item domain.OrderItem) error {
	e := n.event(EventTransferInitiated, order)
	e.Domain = item.DomainName
	return n.pub.publish(ctx, e)
}

func (n *Notifier) OrderFailed(ctx context.Context, order *domain.Order, reason string) error {
	e := n.event(EventOrderFailed, order)
	e.Reason = reason
	return n.pub.publish(ctx, e)
}
