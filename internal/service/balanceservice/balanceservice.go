package balanceservice

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/GlebRadaev/domainstore/internal/domain"
	"github.com/GlebRadaev/domainstore/internal/metrics"
	"github.com/GlebRadaev/domainstore/internal/pg"
	"github.com/GlebRadaev/domainstore/internal/registrar"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Registrar interface {
	CheckBalance(ctx context.Context, mode domain.RegistrarMode) (decimal.Decimal, error)
	RefillBalance(ctx context.Context, mode domain.RegistrarMode, amount decimal.Decimal) (*registrar.RefillResult, error)
}

type LedgerRepo interface {
	Append(ctx context.Context, tx *domain.BalanceTransaction) (*domain.BalanceTransaction, error)
	List(ctx context.Context, limit int) ([]domain.BalanceTransaction, error)
}

var (
	ErrRefillFailed       = errors.New("registrar balance refill failed")
	ErrBalanceUnavailable = errors.New("registrar balance check failed")
	ErrInvalidAmount      = errors.New("refill amount must be positive")
	ErrInvalidMode        = errors.New("unknown registrar mode")
)

// Settings drive the auto-refill amount.
type Settings struct {
	SafetyMargin decimal.Decimal
	Increment    decimal.Decimal
	Minimum      decimal.Decimal
}

// Operation describes the registrar call the guard protects.
type Operation struct {
	Type    domain.ItemType
	Domain  string
	Years   int
	Cost    decimal.Decimal
	Mode    domain.RegistrarMode
	OrderID int
}

// GuardResult carries the refill made on behalf of the operation, if any.
// It is returned even when the operation itself failed afterwards.
type GuardResult struct {
	Refill *domain.BalanceTransaction
}

func (r *GuardResult) Refilled() bool {
	return r != nil && r.Refill != nil
}

type Service struct {
	registrar Registrar
	ledger    LedgerRepo
	settings  Settings
	// one check-then-refill sequence per mode at a time within this process
	mu sync.Map
}

func New(registrar Registrar, ledger LedgerRepo, settings Settings) *Service {
	return &Service{
		registrar: registrar,
		ledger:    ledger,
		settings:  settings,
	}
}

func (s *Service) modeLock(mode domain.RegistrarMode) *sync.Mutex {
	m, _ := s.mu.LoadOrStore(mode, &sync.Mutex{})
	return m.(*sync.Mutex)
}

// RefillAmount is the top-up needed to afford cost with the safety margin,
// rounded up to the increment and never below the minimum.
func (s *Service) RefillAmount(balance, cost decimal.Decimal) decimal.Decimal {
	needed := cost.Sub(balance).Add(s.settings.SafetyMargin)
	amount := needed
	if s.settings.Increment.IsPositive() {
		amount = needed.Div(s.settings.Increment).Ceil().Mul(s.settings.Increment)
	}
	if amount.LessThan(s.settings.Minimum) {
		amount = s.settings.Minimum
	}
	return amount
}

// Run makes sure the registrar balance covers op.Cost, refilling it if
// necessary, and then calls perform. A failed refill fails closed: perform is
// never invoked and ErrRefillFailed is returned.
func (s *Service) Run(ctx context.Context, op Operation, perform func(ctx context.Context) error) (*GuardResult, error) {
	result := &GuardResult{}
	refill, err := s.ensure(ctx, op)
	if err != nil {
		return result, err
	}
	result.Refill = refill

	if err := perform(ctx); err != nil {
		return result, err
	}
	return result, nil
}

func (s *Service) ensure(ctx context.Context, op Operation) (*domain.BalanceTransaction, error) {
	mu := s.modeLock(op.Mode)
	mu.Lock()
	defer mu.Unlock()

	balance, err := s.registrar.CheckBalance(ctx, op.Mode)
	if err != nil {
		zap.L().Error("can't check registrar balance", zap.String("domain", op.Domain), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrBalanceUnavailable, err)
	}
	if balance.GreaterThanOrEqual(op.Cost) {
		return nil, nil
	}

	amount := s.RefillAmount(balance, op.Cost)
	zap.L().Info("registrar balance too low, refilling",
		zap.String("domain", op.Domain),
		zap.String("mode", string(op.Mode)),
		zap.String("balance", balance.StringFixed(2)),
		zap.String("cost", op.Cost.StringFixed(2)),
		zap.String("refill", amount.StringFixed(2)),
	)
	res, err := s.registrar.RefillBalance(ctx, op.Mode, amount)
	metrics.IncRefill("auto", err)
	if err != nil {
		zap.L().Error("registrar refill failed", zap.String("domain", op.Domain), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrRefillFailed, err)
	}

	domainName := op.Domain
	tx := &domain.BalanceTransaction{
		Type:          domain.TransactionAutoRefill,
		Amount:        amount,
		Fee:           res.FeeAmount,
		NetAmount:     res.NetAmount,
		BalanceBefore: balance,
		BalanceAfter:  balance.Add(res.NetAmount),
		DomainName:    &domainName,
		AutoRefill:    true,
		Note:          fmt.Sprintf("auto refill for %s %s", op.Type, op.Domain),
	}
	if op.OrderID != 0 {
		orderID := op.OrderID
		tx.OrderID = &orderID
	}

	// The money has moved at the registrar; the ledger row must survive a
	// rollback of the caller's transaction.
	if _, err := s.ledger.Append(pg.Detach(ctx), tx); err != nil {
		metrics.IncUnreconciledRefill()
		zap.L().Error("refill succeeded but ledger append failed, reconcile manually",
			zap.String("domain", op.Domain),
			zap.Int("order_id", op.OrderID),
			zap.String("mode", string(op.Mode)),
			zap.String("amount", tx.Amount.StringFixed(2)),
			zap.String("fee", tx.Fee.StringFixed(2)),
			zap.String("net_amount", tx.NetAmount.StringFixed(2)),
			zap.String("balance_before", tx.BalanceBefore.StringFixed(2)),
			zap.String("balance_after", tx.BalanceAfter.StringFixed(2)),
			zap.Error(err),
		)
	}
	return tx, nil
}

// Balance reports the registrar's available prepaid balance.
func (s *Service) Balance(ctx context.Context, mode domain.RegistrarMode) (decimal.Decimal, error) {
	if !mode.Valid() {
		return decimal.Zero, ErrInvalidMode
	}
	balance, err := s.registrar.CheckBalance(ctx, mode)
	if err != nil {
		zap.L().Error("can't check registrar balance", zap.Error(err))
		return decimal.Zero, fmt.Errorf("%w: %w", ErrBalanceUnavailable, err)
	}
	return balance, nil
}

// Refill is a staff initiated top-up recorded as a manual refill.
func (s *Service) Refill(ctx context.Context, mode domain.RegistrarMode, amount decimal.Decimal, note string) (*domain.BalanceTransaction, error) {
	if !mode.Valid() {
		return nil, ErrInvalidMode
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	mu := s.modeLock(mode)
	mu.Lock()
	defer mu.Unlock()

	before, err := s.registrar.CheckBalance(ctx, mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBalanceUnavailable, err)
	}
	res, err := s.registrar.RefillBalance(ctx, mode, amount)
	metrics.IncRefill("manual", err)
	if err != nil {
		zap.L().Error("manual refill failed", zap.String("amount", amount.StringFixed(2)), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrRefillFailed, err)
	}

	tx := &domain.BalanceTransaction{
		Type:          domain.TransactionRefill,
		Amount:        amount,
		Fee:           res.FeeAmount,
		NetAmount:     res.NetAmount,
		BalanceBefore: before,
		BalanceAfter:  before.Add(res.NetAmount),
		Note:          note,
	}
	saved, err := s.ledger.Append(ctx, tx)
	if err != nil {
		metrics.IncUnreconciledRefill()
		zap.L().Error("manual refill succeeded but ledger append failed, reconcile manually",
			zap.String("amount", tx.Amount.StringFixed(2)),
			zap.String("fee", tx.Fee.StringFixed(2)),
			zap.String("net_amount", tx.NetAmount.StringFixed(2)),
			zap.Error(err),
		)
		return nil, err
	}
	return saved, nil
}

func (s *Service) Transactions(ctx context.Context, limit int) ([]domain.BalanceTransaction, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	txs, err := s.ledger.List(ctx, limit)
	if err != nil {
		zap.L().Error("failed to list balance transactions", zap.Error(err))
		return nil, err
	}
	return txs, nil
}
