package fulfillmentservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/GlebRadaev/domainstore/internal/domain"
	"github.com/GlebRadaev/domainstore/internal/lock"
	"github.com/GlebRadaev/domainstore/internal/metrics"
	"github.com/GlebRadaev/domainstore/internal/pg"
	"github.com/GlebRadaev/domainstore/internal/registrar"
	"github.com/GlebRadaev/domainstore/internal/service/balanceservice"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type OrderRepo interface {
	FindByPaymentRef(ctx context.Context, paymentRef string) (*domain.Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
	Items(ctx context.Context, orderID int) ([]domain.OrderItem, error)
	LockItem(ctx context.Context, itemID int) (*domain.OrderItem, error)
	MarkPaid(ctx context.Context, orderID int) (bool, error)
	CompleteItem(ctx context.Context, itemID int, registrarOrderID string, at time.Time) error
	FailItem(ctx context.Context, itemID int, message string, at time.Time) error
	ReopenItem(ctx context.Context, itemID int) (bool, error)
	Transition(ctx context.Context, orderID int, from []domain.OrderStatus, to domain.OrderStatus) (bool, error)
	FlagForReview(ctx context.Context, orderID int) error
	AddActivity(ctx context.Context, orderID int, action string, details any) error
}

type DomainRepo interface {
	FindByName(ctx context.Context, name string) (*domain.Domain, error)
	Upsert(ctx context.Context, d *domain.Domain) error
	UpdateExpiration(ctx context.Context, id int, expiresAt time.Time) error
}

type Guard interface {
	Run(ctx context.Context, op balanceservice.Operation, perform func(ctx context.Context) error) (*balanceservice.GuardResult, error)
}

type Registrar interface {
	Register(ctx context.Context, mode domain.RegistrarMode, req registrar.RegisterRequest) (*registrar.RegisterResult, error)
	Renew(ctx context.Context, mode domain.RegistrarMode, name string, years int) (*registrar.RenewResult, error)
	InitiateTransfer(ctx context.Context, mode domain.RegistrarMode, req registrar.TransferRequest) (*registrar.TransferResult, error)
	DomainInfo(ctx context.Context, mode domain.RegistrarMode, name string) (*registrar.DomainInfo, error)
}

type Notifier interface {
	OrderConfirmed(ctx context.Context, order *domain.Order, items []domain.OrderItem) error
	DomainRegistered(ctx context.Context, order *domain.Order, item domain.OrderItem, expiresAt *time.Time) error
	TransferInitiated(ctx context.Context, order *domain.Order, item domain.OrderItem) error
	OrderFailed(ctx context.Context, order *domain.Order, reason string) error
}

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrItemNotFound   = errors.New("order item not found")
	ErrMissingContact = errors.New("order has no usable registrant contact")
	ErrIncomplete     = errors.New("order fulfillment incomplete")
	ErrForbidden      = errors.New("order belongs to another account")
	ErrNotRetryable   = errors.New("order item can't be retried")
	ErrModeMismatch   = errors.New("registrar mode mismatch")
)

// ItemError is a failure that belongs to a single order item. It is recorded
// on the item and never stops the remaining items.
type ItemError struct {
	Reason string
	Err    error
}

func (e *ItemError) Error() string { return e.Reason }

func (e *ItemError) Unwrap() error { return e.Err }

// Actor is the account asking for a manual action.
type Actor struct {
	UserID  int
	IsAdmin bool
}

type Service struct {
	orders    OrderRepo
	domains   DomainRepo
	guard     Guard
	registrar Registrar
	notifier  Notifier
	locker    lock.Locker
	txManager pg.TXManager
	timeout   time.Duration
	now       func() time.Time
	tracer    trace.Tracer
}

func New(orders OrderRepo, domains DomainRepo, guard Guard, registrar Registrar, notifier Notifier,
	locker lock.Locker, txManager pg.TXManager, timeout time.Duration) *Service {
	return &Service{
		orders:    orders,
		domains:   domains,
		guard:     guard,
		registrar: registrar,
		notifier:  notifier,
		locker:    locker,
		txManager: txManager,
		timeout:   timeout,
		now:       time.Now,
		tracer:    otel.Tracer("github.com/GlebRadaev/domainstore/internal/service/fulfillmentservice"),
	}
}

type itemOutcome struct {
	item      domain.OrderItem
	skipped   bool
	refilled  bool
	expiresAt *time.Time
}

func lockKey(orderID int) string {
	return "order:" + strconv.Itoa(orderID)
}

// ProcessPayment fulfills the order paid by paymentRef. Repeated deliveries of
// the same payment are harmless: finished orders and finished items are never
// executed twice.
func (s *Service) ProcessPayment(ctx context.Context, paymentRef string) error {
	ctx, span := s.tracer.Start(ctx, "fulfillment.process_payment", trace.WithAttributes(attribute.String("payment_ref", paymentRef)))
	defer span.End()

	order, err := s.orders.FindByPaymentRef(ctx, paymentRef)
	if err != nil {
		return err
	}
	if order == nil {
		zap.L().Warn("payment for unknown order", zap.String("payment_ref", paymentRef))
		return ErrOrderNotFound
	}
	span.SetAttributes(attribute.String("order_number", order.OrderNumber))
	return s.resume(ctx, order)
}

// ResumeOrder drives a paid order that stalled before finishing.
func (s *Service) ResumeOrder(ctx context.Context, order domain.Order) error {
	return s.resume(ctx, &order)
}

func (s *Service) resume(ctx context.Context, order *domain.Order) error {
	if order.Fulfilled() {
		zap.L().Info("order already fulfilled, ignoring delivery",
			zap.String("order_number", order.OrderNumber), zap.String("status", string(order.Status)))
		return nil
	}

	release, ok, err := s.locker.TryLock(ctx, lockKey(order.ID))
	if err != nil {
		return err
	}
	if !ok {
		zap.L().Info("order already being fulfilled", zap.String("order_number", order.OrderNumber))
		return nil
	}
	defer release()

	marked, err := s.orders.MarkPaid(ctx, order.ID)
	if err != nil {
		return err
	}
	if !marked {
		zap.L().Info("order finished by another delivery", zap.String("order_number", order.OrderNumber))
		return nil
	}
	order.PaymentStatus = domain.PaymentPaid
	order.Status = domain.OrderProcessing

	if err := order.Contact.Validate(); err != nil {
		return s.failMissingContact(ctx, order, err)
	}

	items, err := s.orders.Items(ctx, order.ID)
	if err != nil {
		return err
	}

	outcomes := make([]itemOutcome, 0, len(items))
	needsReview := len(items) == 0
	reviewReason := reviewNoItems
	var errs []error
	for _, it := range items {
		out, err := s.processItem(ctx, order, it)
		if out.refilled && out.item.Status != domain.ItemCompleted {
			needsReview, reviewReason = true, reviewUnreconciledRefill
		}
		if err != nil {
			zap.L().Error("order item left unfinished",
				zap.String("order_number", order.OrderNumber), zap.Int("item_id", it.ID), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		outcomes = append(outcomes, out)
	}

	if needsReview {
		s.flagForReview(ctx, order, reviewReason)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrIncomplete, errors.Join(errs...))
	}

	final := make([]domain.OrderItem, len(outcomes))
	for i, out := range outcomes {
		final[i] = out.item
	}
	won, status, err := s.finalize(ctx, order, final)
	if err != nil || !won {
		return err
	}

	s.recordActivity(ctx, order, "fulfillment", activity(status, outcomes, needsReview))
	s.notifyFulfilled(ctx, order, final, outcomes)
	return nil
}

// processItem runs one item in its own transaction holding the item row lock.
// A non-nil error means the item could not be settled and stays non-terminal.
func (s *Service) processItem(ctx context.Context, order *domain.Order, it domain.OrderItem) (itemOutcome, error) {
	var out itemOutcome
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		item, err := s.orders.LockItem(ctx, it.ID)
		if err != nil {
			return err
		}
		if item == nil {
			return fmt.Errorf("%w: %d", ErrItemNotFound, it.ID)
		}
		if item.Terminal() {
			out.item, out.skipped = *item, true
			return nil
		}

		res, err := s.execute(ctx, order, item)
		out.refilled = res.refilled
		now := s.now()
		var itemErr *ItemError
		switch {
		case errors.As(err, &itemErr):
			if err := s.orders.FailItem(ctx, item.ID, itemErr.Reason, now); err != nil {
				return err
			}
			item.Status, item.ErrorMessage = domain.ItemFailed, itemErr.Reason
			metrics.IncFulfillmentItem(string(item.Type), "failed")
			zap.L().Warn("order item failed", zap.String("order_number", order.OrderNumber),
				zap.String("domain", item.DomainName), zap.String("reason", itemErr.Reason), zap.Error(itemErr.Err))
		case err != nil:
			if res.registrarOrderID != "" {
				zap.L().Error("registrar accepted the operation but it was not recorded, reconcile manually",
					zap.String("order_number", order.OrderNumber), zap.String("domain", item.DomainName),
					zap.String("registrar_order_id", res.registrarOrderID), zap.Error(err))
			}
			return err
		default:
			if err := s.orders.CompleteItem(ctx, item.ID, res.registrarOrderID, now); err != nil {
				return err
			}
			item.Status, item.RegistrarOrderID, item.ErrorMessage = domain.ItemCompleted, res.registrarOrderID, ""
			out.expiresAt = res.expiresAt
			metrics.IncFulfillmentItem(string(item.Type), "completed")
		}
		item.ProcessedAt = &now
		out.item = *item
		return nil
	})
	if out.refilled && out.item.Status != domain.ItemCompleted {
		metrics.IncUnreconciledRefill()
	}
	return out, err
}

const (
	reviewUnreconciledRefill = "registrar balance refilled for an unfinished item"
	reviewNoItems            = "paid order has no items"
)

func (s *Service) flagForReview(ctx context.Context, order *domain.Order, reason string) {
	if err := s.orders.FlagForReview(ctx, order.ID); err != nil {
		zap.L().Error("can't flag order for review", zap.String("order_number", order.OrderNumber), zap.Error(err))
		return
	}
	order.RequiresReview = true
	zap.L().Warn("order needs review", zap.String("order_number", order.OrderNumber), zap.String("reason", reason))
}

// finalize moves the order out of processing. Only the call that wins the
// transition reports won; a concurrent delivery that lost must stay silent.
func (s *Service) finalize(ctx context.Context, order *domain.Order, items []domain.OrderItem) (bool, domain.OrderStatus, error) {
	status := Aggregate(items)
	won, err := s.orders.Transition(ctx, order.ID, []domain.OrderStatus{domain.OrderProcessing}, status)
	if err != nil {
		return false, status, err
	}
	if !won {
		zap.L().Info("order finalized by another delivery", zap.String("order_number", order.OrderNumber))
		return false, status, nil
	}
	order.Status = status
	metrics.IncOrderFinalized(string(status))
	zap.L().Info("order fulfilled", zap.String("order_number", order.OrderNumber), zap.String("status", string(status)))
	return true, status, nil
}

// Aggregate derives the order status from its items. An order without
// items is failed.
func Aggregate(items []domain.OrderItem) domain.OrderStatus {
	completed := 0
	for _, item := range items {
		if item.Status == domain.ItemCompleted {
			completed++
		}
	}
	switch {
	case completed == 0:
		return domain.OrderFailed
	case completed == len(items):
		return domain.OrderCompleted
	default:
		return domain.OrderPartial
	}
}

func (s *Service) failMissingContact(ctx context.Context, order *domain.Order, cause error) error {
	zap.L().Error("order has an incomplete registrant contact",
		zap.String("order_number", order.OrderNumber), zap.Error(cause))
	won, err := s.orders.Transition(ctx, order.ID, []domain.OrderStatus{domain.OrderProcessing}, domain.OrderFailed)
	if err != nil {
		return err
	}
	if err := s.orders.FlagForReview(ctx, order.ID); err != nil {
		return err
	}
	order.RequiresReview = true
	if won {
		order.Status = domain.OrderFailed
		metrics.IncOrderFinalized(string(domain.OrderFailed))
		s.recordActivity(ctx, order, "contact_missing", map[string]string{"error": cause.Error()})
		s.notify(ctx, order, "order_failed", func(ctx context.Context) error {
			return s.notifier.OrderFailed(ctx, order, "registrant contact information is incomplete")
		})
	}
	return fmt.Errorf("%w: %w", ErrMissingContact, cause)
}
