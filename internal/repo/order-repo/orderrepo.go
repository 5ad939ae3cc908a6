package orderrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/GlebRadaev/domainstore/internal/domain"
	"github.com/GlebRadaev/domainstore/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const orderColumns = `id, user_id, order_number, status, payment_status, subtotal, tax, total,
        COALESCE(payment_ref, ''), registrant_contact, extended_attributes, registrar_mode,
        auto_renew, requires_review, created_at, updated_at`

const itemColumns = `id, order_id, item_type, domain_name, tld, years, unit_price, total_price,
        auth_code, status, registrar_order_id, error_message, processed_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(&order.ID, &order.UserID, &order.OrderNumber, &order.Status, &order.PaymentStatus,
		&order.Subtotal, &order.Tax, &order.Total, &order.PaymentRef, &order.Contact, &order.Attributes,
		&order.Mode, &order.AutoRenew, &order.RequiresReview, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func scanItem(row pgx.Row) (*domain.OrderItem, error) {
	var item domain.OrderItem
	err := row.Scan(&item.ID, &item.OrderID, &item.Type, &item.DomainName, &item.TLD, &item.Years,
		&item.UnitPrice, &item.TotalPrice, &item.AuthCode, &item.Status, &item.RegistrarOrderID,
		&item.ErrorMessage, &item.ProcessedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repository) findOne(ctx context.Context, query string, arg any) (*domain.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

// FindByPaymentRef returns nil when no order carries the reference.
func (r *Repository) FindByPaymentRef(ctx context.Context, paymentRef string) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE payment_ref = $1
    `
	return r.findOne(ctx, query, paymentRef)
}

func (r *Repository) FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE order_number = $1
    `
	return r.findOne(ctx, query, orderNumber)
}

func (r *Repository) FindByID(ctx context.Context, orderID int) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE id = $1
    `
	return r.findOne(ctx, query, orderID)
}

// Create stores a checked-out order together with its items.
func (r *Repository) Create(ctx context.Context, order *domain.Order, items []domain.OrderItem) error {
	orderQuery := `
        INSERT INTO orders (user_id, order_number, status, payment_status, subtotal, tax, total,
            payment_ref, registrant_contact, extended_attributes, registrar_mode, auto_renew)
        VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10, $11, $12)
        RETURNING id
    `
	itemQuery := `
        INSERT INTO order_items (order_id, item_type, domain_name, tld, years, unit_price, total_price, auth_code, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if order.Status == "" {
			order.Status = domain.OrderPending
		}
		if order.PaymentStatus == "" {
			order.PaymentStatus = domain.PaymentPending
		}
		attrs := order.Attributes
		if attrs == nil {
			attrs = domain.Attributes{}
		}
		err := r.db.QueryRow(ctx, orderQuery, order.UserID, order.OrderNumber, order.Status, order.PaymentStatus,
			order.Subtotal, order.Tax, order.Total, order.PaymentRef, order.Contact, attrs,
			order.Mode, order.AutoRenew).Scan(&order.ID)
		if err != nil {
			zap.L().Error("can't save order", zap.Error(err))
			return err
		}
		for i := range items {
			item := &items[i]
			item.OrderID = order.ID
			if item.Status == "" {
				item.Status = domain.ItemPending
			}
			err := r.db.QueryRow(ctx, itemQuery, item.OrderID, item.Type, item.DomainName, item.TLD, item.Years,
				item.UnitPrice, item.TotalPrice, item.AuthCode, item.Status).Scan(&item.ID)
			if err != nil {
				zap.L().Error("can't save order item", zap.Error(err), zap.String("domain", item.DomainName))
				return err
			}
		}
		return nil
	})
}

func (r *Repository) Items(ctx context.Context, orderID int) ([]domain.OrderItem, error) {
	query := `
        SELECT ` + itemColumns + `
        FROM order_items
        WHERE order_id = $1
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get order items", zap.Error(err), zap.Int("order_id", orderID))
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			zap.L().Error("can't scan order item row", zap.Error(err))
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// LockItem reads the item with a row lock. It must run inside a transaction.
func (r *Repository) LockItem(ctx context.Context, itemID int) (*domain.OrderItem, error) {
	query := `
        SELECT ` + itemColumns + `
        FROM order_items
        WHERE id = $1
        FOR UPDATE
    `
	item, err := scanItem(r.db.QueryRow(ctx, query, itemID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock order item", zap.Error(err), zap.Int("item_id", itemID))
		return nil, err
	}
	return item, nil
}

// MarkPaid records a confirmed payment and moves a pending order into processing.
// It reports false when the order has already left pending/processing.
func (r *Repository) MarkPaid(ctx context.Context, orderID int) (bool, error) {
	query := `
        UPDATE orders SET payment_status = 'paid', status = 'processing', updated_at = NOW()
        WHERE id = $1 AND status IN ('pending', 'processing')
    `
	tag, err := r.db.Exec(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't mark order paid", zap.Error(err), zap.Int("order_id", orderID))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) CompleteItem(ctx context.Context, itemID int, registrarOrderID string, at time.Time) error {
	query := `
        UPDATE order_items SET status = 'completed', registrar_order_id = $2, error_message = '', processed_at = $3
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, itemID, registrarOrderID, at); err != nil {
		zap.L().Error("can't complete order item", zap.Error(err), zap.Int("item_id", itemID))
		return err
	}
	return nil
}

func (r *Repository) FailItem(ctx context.Context, itemID int, message string, at time.Time) error {
	query := `
        UPDATE order_items SET status = 'failed', error_message = $2, processed_at = $3
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, itemID, message, at); err != nil {
		zap.L().Error("can't fail order item", zap.Error(err), zap.Int("item_id", itemID))
		return err
	}
	return nil
}

// ReopenItem moves a failed item back to processing for a retry.
func (r *Repository) ReopenItem(ctx context.Context, itemID int) (bool, error) {
	query := `
        UPDATE order_items SET status = 'processing', error_message = ''
        WHERE id = $1 AND status = 'failed'
    `
	tag, err := r.db.Exec(ctx, query, itemID)
	if err != nil {
		zap.L().Error("can't reopen order item", zap.Error(err), zap.Int("item_id", itemID))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Transition moves the order to status `to` only while it is in one of `from`.
// The boolean tells the caller whether this call won the transition.
func (r *Repository) Transition(ctx context.Context, orderID int, from []domain.OrderStatus, to domain.OrderStatus) (bool, error) {
	query := `
        UPDATE orders SET status = $2, updated_at = NOW()
        WHERE id = $1 AND status = ANY($3)
    `
	states := make([]string, len(from))
	for i, s := range from {
		states[i] = string(s)
	}
	tag, err := r.db.Exec(ctx, query, orderID, to, states)
	if err != nil {
		zap.L().Error("can't update order status", zap.Error(err), zap.Int("order_id", orderID))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) FlagForReview(ctx context.Context, orderID int) error {
	query := `
        UPDATE orders SET requires_review = TRUE, updated_at = NOW()
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, orderID); err != nil {
		zap.L().Error("can't flag order for review", zap.Error(err), zap.Int("order_id", orderID))
		return err
	}
	return nil
}

func (r *Repository) SetPaymentStatus(ctx context.Context, orderID int, status domain.PaymentStatus) error {
	query := `
        UPDATE orders SET payment_status = $2, updated_at = NOW()
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, orderID, status); err != nil {
		zap.L().Error("can't update payment status", zap.Error(err), zap.Int("order_id", orderID))
		return err
	}
	return nil
}

// MarkRefunded records a refund. A full refund also closes the order as refunded.
func (r *Repository) MarkRefunded(ctx context.Context, orderID int, full bool) error {
	query := `
        UPDATE orders SET payment_status = 'partial_refund', updated_at = NOW()
        WHERE id = $1
    `
	if full {
		query = `
        UPDATE orders SET payment_status = 'refunded', status = 'refunded', updated_at = NOW()
        WHERE id = $1
    `
	}
	if _, err := r.db.Exec(ctx, query, orderID); err != nil {
		zap.L().Error("can't mark order refunded", zap.Error(err), zap.Int("order_id", orderID))
		return err
	}
	return nil
}

func (r *Repository) AddActivity(ctx context.Context, orderID int, action string, details any) error {
	query := `
        INSERT INTO order_activity (order_id, action, details)
        VALUES ($1, $2, $3)
    `
	payload, err := json.Marshal(details)
	if err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, query, orderID, action, payload); err != nil {
		zap.L().Error("can't save order activity", zap.Error(err), zap.Int("order_id", orderID))
		return err
	}
	return nil
}

// FindStalled returns paid orders that are still pending or processing and
// have not been touched since the given time.
func (r *Repository) FindStalled(ctx context.Context, before time.Time, limit uint32) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE payment_status = 'paid' AND status IN ('pending', 'processing') AND updated_at < $1
        ORDER BY updated_at ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, before, int(limit))
	if err != nil {
		zap.L().Error("can't get stalled orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan stalled order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}
