package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RegistrarMode string

const (
	ModeTest RegistrarMode = "test"
	ModeLive RegistrarMode = "live"
)

func (m RegistrarMode) Valid() bool {
	return m == ModeTest || m == ModeLive
}

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderCompleted  OrderStatus = "completed"
	OrderPartial    OrderStatus = "partial"
	OrderFailed     OrderStatus = "failed"
	OrderRefunded   OrderStatus = "refunded"
)

type PaymentStatus string

const (
	PaymentPending       PaymentStatus = "pending"
	PaymentPaid          PaymentStatus = "paid"
	PaymentFailed        PaymentStatus = "failed"
	PaymentRefunded      PaymentStatus = "refunded"
	PaymentPartialRefund PaymentStatus = "partial_refund"
)

type ItemType string

const (
	ItemRegister ItemType = "register"
	ItemTransfer ItemType = "transfer"
	ItemRenew    ItemType = "renew"
)

type ItemStatus string

const (
	ItemPending    ItemStatus = "pending"
	ItemProcessing ItemStatus = "processing"
	ItemCompleted  ItemStatus = "completed"
	ItemFailed     ItemStatus = "failed"
)

type DomainStatus string

const (
	DomainActive          DomainStatus = "active"
	DomainTransferPending DomainStatus = "transfer_pending"
	DomainSuspended       DomainStatus = "suspended"
	DomainExpired         DomainStatus = "expired"
)

type PushStatus string

const (
	PushPending   PushStatus = "pending"
	PushAccepted  PushStatus = "accepted"
	PushRejected  PushStatus = "rejected"
	PushCancelled PushStatus = "cancelled"
	PushExpired   PushStatus = "expired"
)

type TransactionType string

const (
	TransactionRefill          TransactionType = "refill"
	TransactionAutoRefill      TransactionType = "auto_refill"
	TransactionPrivacyPurchase TransactionType = "privacy_purchase"
)

type User struct {
	ID           int       `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
}

type Order struct {
	ID             int             `db:"id"`
	UserID         int             `db:"user_id"`
	OrderNumber    string          `db:"order_number"`
	Status         OrderStatus     `db:"status"`
	PaymentStatus  PaymentStatus   `db:"payment_status"`
	Subtotal       decimal.Decimal `db:"subtotal"`
	Tax            decimal.Decimal `db:"tax"`
	Total          decimal.Decimal `db:"total"`
	PaymentRef     string          `db:"payment_ref"`
	Contact        *Contact        `db:"registrant_contact"`
	Attributes     Attributes      `db:"extended_attributes"`
	Mode           RegistrarMode   `db:"registrar_mode"`
	AutoRenew      bool            `db:"auto_renew"`
	RequiresReview bool            `db:"requires_review"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

// Fulfilled reports whether the order has left the fulfillment state machine.
func (o *Order) Fulfilled() bool {
	switch o.Status {
	case OrderCompleted, OrderPartial, OrderFailed, OrderRefunded:
		return true
	}
	return false
}

type OrderItem struct {
	ID               int             `db:"id"`
	OrderID          int             `db:"order_id"`
	Type             ItemType        `db:"item_type"`
	DomainName       string          `db:"domain_name"`
	TLD              string          `db:"tld"`
	Years            int             `db:"years"`
	UnitPrice        decimal.Decimal `db:"unit_price"`
	TotalPrice       decimal.Decimal `db:"total_price"`
	AuthCode         string          `db:"auth_code"`
	Status           ItemStatus      `db:"status"`
	RegistrarOrderID string          `db:"registrar_order_id"`
	ErrorMessage     string          `db:"error_message"`
	ProcessedAt      *time.Time      `db:"processed_at"`
}

// Terminal items are never re-executed by a repeated payment delivery.
func (i *OrderItem) Terminal() bool {
	return i.Status == ItemCompleted || i.Status == ItemFailed
}

type Domain struct {
	ID                     int           `db:"id"`
	UserID                 int           `db:"user_id"`
	Name                   string        `db:"name"`
	TLD                    string        `db:"tld"`
	Status                 DomainStatus  `db:"status"`
	ExpiresAt              *time.Time    `db:"expires_at"`
	AutoRenew              bool          `db:"auto_renew"`
	AutoRenewPaymentMethod string        `db:"auto_renew_payment_method"`
	Locked                 bool          `db:"locked"`
	Mode                   RegistrarMode `db:"registrar_mode"`
	CreatedAt              time.Time     `db:"created_at"`
	UpdatedAt              time.Time     `db:"updated_at"`
}

type BalanceTransaction struct {
	ID            int             `db:"id"`
	Type          TransactionType `db:"type"`
	Amount        decimal.Decimal `db:"amount"`
	Fee           decimal.Decimal `db:"fee"`
	NetAmount     decimal.Decimal `db:"net_amount"`
	BalanceBefore decimal.Decimal `db:"balance_before"`
	BalanceAfter  decimal.Decimal `db:"balance_after"`
	DomainName    *string         `db:"domain_name"`
	OrderID       *int            `db:"order_id"`
	AutoRefill    bool            `db:"auto_refill"`
	Note          string          `db:"note"`
	CreatedAt     time.Time       `db:"created_at"`
}

type DomainPushRequest struct {
	ID             uuid.UUID  `db:"id"`
	DomainID       int        `db:"domain_id"`
	FromUserID     int        `db:"from_user_id"`
	ToUserID       int        `db:"to_user_id"`
	ToEmail        string     `db:"to_email"`
	Note           string     `db:"note"`
	Status         PushStatus `db:"status"`
	AdminInitiated bool       `db:"admin_initiated"`
	ExpiresAt      time.Time  `db:"expires_at"`
	RespondedAt    *time.Time `db:"responded_at"`
	CreatedAt      time.Time  `db:"created_at"`
}

// Overdue is true for a pending request whose expiry has passed.
func (p *DomainPushRequest) Overdue(now time.Time) bool {
	return p.Status == PushPending && !now.Before(p.ExpiresAt)
}

type Activity struct {
	ID        int             `db:"id"`
	OrderID   int             `db:"order_id"`
	Action    string          `db:"action"`
	Details   json.RawMessage `db:"details"`
	CreatedAt time.Time       `db:"created_at"`
}
