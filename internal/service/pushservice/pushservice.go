package pushservice

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/GlebRadaev/domainstore/internal/domain"
	"github.com/GlebRadaev/domainstore/internal/metrics"
	"github.com/GlebRadaev/domainstore/internal/pg"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PushRepo interface {
	Create(ctx context.Context, p *domain.DomainPushRequest) error
	Get(ctx context.Context, id uuid.UUID) (*domain.DomainPushRequest, error)
	Lock(ctx context.Context, id uuid.UUID) (*domain.DomainPushRequest, error)
	FindPendingByDomain(ctx context.Context, domainID int) (*domain.DomainPushRequest, error)
	Resolve(ctx context.Context, id uuid.UUID, status domain.PushStatus, at time.Time) (bool, error)
	ListForAccount(ctx context.Context, userID int) ([]domain.DomainPushRequest, error)
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
}

type DomainRepo interface {
	LockByID(ctx context.Context, id int) (*domain.Domain, error)
	TransferOwnership(ctx context.Context, id, fromUserID, toUserID int) (bool, error)
}

type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

var (
	ErrDomainNotFound    = errors.New("domain not found")
	ErrNotOwner          = errors.New("domain belongs to another account")
	ErrDomainSuspended   = errors.New("suspended domains can't be pushed")
	ErrInvalidEmail      = errors.New("recipient email is invalid")
	ErrRecipientNotFound = errors.New("no account uses the recipient email")
	ErrSelfPush          = errors.New("domain is already owned by the recipient")
	ErrPushPending       = errors.New("domain already has a pending push request")
	ErrPushNotFound      = errors.New("push request not found")
	ErrPushNotPending    = errors.New("push request is no longer pending")
	ErrPushExpired       = errors.New("push request has expired")
	ErrNotRecipient      = errors.New("only the recipient may answer a push request")
	ErrNotSender         = errors.New("only the sender may cancel a push request")
	ErrOwnerChanged      = errors.New("domain changed owner since the request was made")
)

type Service struct {
	pushes    PushRepo
	domains   DomainRepo
	users     UserRepo
	txManager pg.TXManager
	timeout   time.Duration
	now       func() time.Time
}

func New(pushes PushRepo, domains DomainRepo, users UserRepo, txManager pg.TXManager, timeout time.Duration) *Service {
	return &Service{
		pushes:    pushes,
		domains:   domains,
		users:     users,
		txManager: txManager,
		timeout:   timeout,
		now:       time.Now,
	}
}

// Create proposes moving the owner's domain to the account behind toEmail.
func (s *Service) Create(ctx context.Context, ownerID, domainID int, toEmail, note string) (*domain.DomainPushRequest, error) {
	return s.create(ctx, &ownerID, domainID, toEmail, note)
}

// CreateByAdmin proposes a push on behalf of whoever owns the domain.
func (s *Service) CreateByAdmin(ctx context.Context, domainID int, toEmail, note string) (*domain.DomainPushRequest, error) {
	return s.create(ctx, nil, domainID, toEmail, note)
}

func (s *Service) create(ctx context.Context, ownerID *int, domainID int, toEmail, note string) (*domain.DomainPushRequest, error) {
	toEmail = strings.TrimSpace(toEmail)
	if _, err := mail.ParseAddress(toEmail); err != nil {
		return nil, ErrInvalidEmail
	}

	var push *domain.DomainPushRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		d, err := s.domains.LockByID(ctx, domainID)
		if err != nil {
			return err
		}
		if d == nil {
			return ErrDomainNotFound
		}
		if ownerID != nil && d.UserID != *ownerID {
			return ErrNotOwner
		}
		if d.Status == domain.DomainSuspended {
			return ErrDomainSuspended
		}

		recipient, err := s.users.FindByEmail(ctx, toEmail)
		if err != nil {
			return err
		}
		if recipient == nil {
			return ErrRecipientNotFound
		}
		if recipient.ID == d.UserID {
			return ErrSelfPush
		}

		now := s.now()
		existing, err := s.pushes.FindPendingByDomain(ctx, d.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			if !existing.Overdue(now) {
				return ErrPushPending
			}
			if _, err := s.expire(ctx, existing, now); err != nil {
				return err
			}
		}

		push = &domain.DomainPushRequest{
			ID:             uuid.New(),
			DomainID:       d.ID,
			FromUserID:     d.UserID,
			ToUserID:       recipient.ID,
			ToEmail:        toEmail,
			Note:           strings.TrimSpace(note),
			Status:         domain.PushPending,
			AdminInitiated: ownerID == nil,
			ExpiresAt:      now.Add(s.timeout),
			CreatedAt:      now,
		}
		if err := s.pushes.Create(ctx, push); err != nil {
			if pg.IsUniqueViolation(err) {
				return ErrPushPending
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncPushTransition(string(domain.PushPending))
	zap.L().Info("push request created",
		zap.String("request_id", push.ID.String()),
		zap.Int("domain_id", push.DomainID),
		zap.Int("from_user_id", push.FromUserID),
		zap.Int("to_user_id", push.ToUserID),
		zap.Bool("admin", push.AdminInitiated))
	return push, nil
}

// Accept hands the domain to the recipient. The request status and the new
// owner are committed together.
func (s *Service) Accept(ctx context.Context, userID int, id uuid.UUID) (*domain.DomainPushRequest, error) {
	return s.respond(ctx, id, domain.PushAccepted, func(p *domain.DomainPushRequest) error {
		if p.ToUserID != userID {
			return ErrNotRecipient
		}
		return nil
	}, func(ctx context.Context, p *domain.DomainPushRequest) error {
		moved, err := s.domains.TransferOwnership(ctx, p.DomainID, p.FromUserID, p.ToUserID)
		if err != nil {
			return err
		}
		if !moved {
			return ErrOwnerChanged
		}
		return nil
	})
}

func (s *Service) Reject(ctx context.Context, userID int, id uuid.UUID) (*domain.DomainPushRequest, error) {
	return s.respond(ctx, id, domain.PushRejected, func(p *domain.DomainPushRequest) error {
		if p.ToUserID != userID {
			return ErrNotRecipient
		}
		return nil
	}, nil)
}

func (s *Service) Cancel(ctx context.Context, userID int, id uuid.UUID) (*domain.DomainPushRequest, error) {
	return s.respond(ctx, id, domain.PushCancelled, func(p *domain.DomainPushRequest) error {
		if p.FromUserID != userID {
			return ErrNotSender
		}
		return nil
	}, nil)
}

// respond moves a pending request to a final status under its row lock. An
// overdue request is committed as expired and ErrPushExpired is returned.
func (s *Service) respond(ctx context.Context, id uuid.UUID, to domain.PushStatus,
	allowed func(p *domain.DomainPushRequest) error, apply func(ctx context.Context, p *domain.DomainPushRequest) error,
) (*domain.DomainPushRequest, error) {
	var push *domain.DomainPushRequest
	expired := false
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		p, err := s.pushes.Lock(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return ErrPushNotFound
		}
		if err := allowed(p); err != nil {
			return err
		}
		if p.Status != domain.PushPending {
			return ErrPushNotPending
		}

		now := s.now()
		if p.Overdue(now) {
			expired = true
			_, err := s.expire(ctx, p, now)
			return err
		}

		ok, err := s.pushes.Resolve(ctx, p.ID, to, now)
		if err != nil {
			return err
		}
		if !ok {
			return ErrPushNotPending
		}
		if apply != nil {
			if err := apply(ctx, p); err != nil {
				return err
			}
		}
		p.Status, p.RespondedAt = to, &now
		push = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	if expired {
		return nil, ErrPushExpired
	}

	metrics.IncPushTransition(string(to))
	zap.L().Info("push request resolved",
		zap.String("request_id", push.ID.String()),
		zap.Int("domain_id", push.DomainID),
		zap.String("status", string(to)))
	return push, nil
}

func (s *Service) expire(ctx context.Context, p *domain.DomainPushRequest, now time.Time) (bool, error) {
	ok, err := s.pushes.Resolve(ctx, p.ID, domain.PushExpired, now)
	if err != nil {
		return false, err
	}
	if !ok {
		// Another transaction resolved the request after it was read.
		stored, err := s.pushes.Get(ctx, p.ID)
		if err != nil {
			return false, err
		}
		if stored != nil {
			p.Status, p.RespondedAt = stored.Status, stored.RespondedAt
		}
		return false, nil
	}
	metrics.IncPushTransition(string(domain.PushExpired))
	zap.L().Info("push request expired", zap.String("request_id", p.ID.String()), zap.Int("domain_id", p.DomainID))
	p.Status, p.RespondedAt = domain.PushExpired, &now
	return true, nil
}

// Get returns a request visible to userID, expiring it first when overdue.
func (s *Service) Get(ctx context.Context, userID int, id uuid.UUID) (*domain.DomainPushRequest, error) {
	p, err := s.pushes.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || (p.FromUserID != userID && p.ToUserID != userID) {
		return nil, ErrPushNotFound
	}
	if p.Overdue(s.now()) {
		if _, err := s.expire(ctx, p, s.now()); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// ListForAccount returns the requests userID sent or received.
func (s *Service) ListForAccount(ctx context.Context, userID int) ([]domain.DomainPushRequest, error) {
	requests, err := s.pushes.ListForAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	for i := range requests {
		if requests[i].Overdue(now) {
			if _, err := s.expire(ctx, &requests[i], now); err != nil {
				return nil, err
			}
		}
	}
	return requests, nil
}

// ExpireOverdue sweeps every overdue pending request.
func (s *Service) ExpireOverdue(ctx context.Context) (int64, error) {
	n, err := s.pushes.ExpireOverdue(ctx, s.now())
	if err != nil {
		return 0, err
	}
	metrics.AddPushTransitions(string(domain.PushExpired), n)
	if n > 0 {
		zap.L().Info("expired overdue push requests", zap.Int64("count", n))
	}
	return n, nil
}
