package fulfillmentservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/domainstore/internal/domain"
	"github.com/GlebRadaev/domainstore/internal/registrar"
	"github.com/GlebRadaev/domainstore/internal/service/balanceservice"
	"go.uber.org/zap"
)

type stepResult struct {
	registrarOrderID string
	expiresAt        *time.Time
	refilled         bool
}

// execute performs the registrar operation for one item through the balance
// guard and records the resulting domain state. Failures attributable to the
// item are returned as *ItemError; anything else is an infrastructure error.
func (s *Service) execute(ctx context.Context, order *domain.Order, item *domain.OrderItem) (stepResult, error) {
	var res stepResult
	op := balanceservice.Operation{
		Type:    item.Type,
		Domain:  item.DomainName,
		Years:   item.Years,
		Cost:    item.TotalPrice,
		Mode:    order.Mode,
		OrderID: order.ID,
	}

	var existing *domain.Domain
	var perform func(ctx context.Context) error
	switch item.Type {
	case domain.ItemRegister:
		perform = func(ctx context.Context) error {
			r, err := s.registrar.Register(ctx, order.Mode, registrar.RegisterRequest{
				Domain:     item.DomainName,
				Years:      item.Years,
				Contact:    *order.Contact,
				Attributes: order.Attributes.Clone(),
				AutoRenew:  order.AutoRenew,
			})
			if err != nil {
				return err
			}
			res.registrarOrderID, res.expiresAt = r.OrderID, r.ExpirationDate
			return nil
		}
	case domain.ItemTransfer:
		if item.AuthCode == "" {
			return res, &ItemError{Reason: "transfer auth code is missing"}
		}
		perform = func(ctx context.Context) error {
			r, err := s.registrar.InitiateTransfer(ctx, order.Mode, registrar.TransferRequest{
				Domain:   item.DomainName,
				AuthCode: item.AuthCode,
				Contact:  *order.Contact,
			})
			if err != nil {
				return err
			}
			res.registrarOrderID = r.OrderID
			return nil
		}
	case domain.ItemRenew:
		d, err := s.domains.FindByName(ctx, item.DomainName)
		if err != nil {
			return res, err
		}
		if d == nil {
			return res, &ItemError{Reason: "domain is not in the portfolio"}
		}
		if d.Mode != order.Mode {
			return res, &ItemError{
				Reason: fmt.Sprintf("domain was registered in %s mode but the order is in %s mode", d.Mode, order.Mode),
				Err:    ErrModeMismatch,
			}
		}
		existing = d
		perform = func(ctx context.Context) error {
			r, err := s.registrar.Renew(ctx, d.Mode, item.DomainName, item.Years)
			if err != nil {
				return err
			}
			res.registrarOrderID, res.expiresAt = r.OrderID, r.NewExpiration
			return nil
		}
	default:
		return res, &ItemError{Reason: fmt.Sprintf("unsupported item type %q", item.Type)}
	}

	opCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	guarded, err := s.guard.Run(opCtx, op, perform)
	res.refilled = guarded.Refilled()
	if err != nil {
		return res, s.classify(ctx, err)
	}

	switch item.Type {
	case domain.ItemRegister:
		expires := res.expiresAt
		if expires == nil {
			t := s.now().AddDate(item.Years, 0, 0)
			expires = &t
		}
		res.expiresAt = expires
		err = s.domains.Upsert(ctx, &domain.Domain{
			UserID:    order.UserID,
			Name:      item.DomainName,
			TLD:       item.TLD,
			Status:    domain.DomainActive,
			ExpiresAt: expires,
			AutoRenew: order.AutoRenew,
			Mode:      order.Mode,
		})
	case domain.ItemTransfer:
		err = s.domains.Upsert(ctx, &domain.Domain{
			UserID:    order.UserID,
			Name:      item.DomainName,
			TLD:       item.TLD,
			Status:    domain.DomainTransferPending,
			AutoRenew: order.AutoRenew,
			Mode:      order.Mode,
		})
	case domain.ItemRenew:
		expires := s.renewedExpiration(ctx, existing, res.expiresAt, item.Years)
		res.expiresAt = &expires
		err = s.domains.UpdateExpiration(ctx, existing.ID, expires)
	}
	return res, err
}

// renewedExpiration prefers the registrar's answer, then a fresh lookup, and
// finally extends the stored expiry by the renewed term.
func (s *Service) renewedExpiration(ctx context.Context, d *domain.Domain, reported *time.Time, years int) time.Time {
	if reported != nil {
		return *reported
	}
	info, err := s.registrar.DomainInfo(ctx, d.Mode, d.Name)
	if err == nil && info.ExpirationDate != nil {
		return *info.ExpirationDate
	}
	if err != nil {
		zap.L().Warn("can't refresh domain expiration after renewal", zap.String("domain", d.Name), zap.Error(err))
	}
	base := s.now()
	if d.ExpiresAt != nil && d.ExpiresAt.After(base) {
		base = *d.ExpiresAt
	}
	return base.AddDate(years, 0, 0)
}

// classify turns a guard failure into an item failure with a readable reason.
// Cancellation of the caller's own context is not the item's fault.
func (s *Service) classify(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return err
	}
	var apiErr *registrar.APIError
	var reason string
	switch {
	case errors.Is(err, balanceservice.ErrRefillFailed):
		reason = err.Error()
	case errors.Is(err, balanceservice.ErrBalanceUnavailable):
		reason = "registrar balance check failed"
	case errors.Is(err, context.DeadlineExceeded):
		reason = "registrar did not respond in time"
	case errors.Is(err, registrar.ErrInsufficientFunds):
		reason = "insufficient registrar balance"
	case errors.As(err, &apiErr):
		reason = "registrar declined: " + apiErr.Message
	default:
		reason = "registrar error: " + err.Error()
	}
	return &ItemError{Reason: reason, Err: err}
}
