package pushservice

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/GlebRadaev/domainstore/internal/domain"
	"github.com/GlebRadaev/domainstore/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeDB keeps pushes, domains and users in memory. Transactions are
// serialized and rolled back on error, which is enough to stand in for the
// row locks the service relies on.
type fakeDB struct {
	mu      sync.Mutex
	txMu    sync.Mutex
	pushes  map[uuid.UUID]*domain.DomainPushRequest
	domains map[int]*domain.Domain
	users   map[string]*domain.User
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		pushes:  map[uuid.UUID]*domain.DomainPushRequest{},
		domains: map[int]*domain.Domain{},
		users:   map[string]*domain.User{},
	}
}

func (f *fakeDB) snapshot() (map[uuid.UUID]domain.DomainPushRequest, map[int]domain.Domain) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pushes := make(map[uuid.UUID]domain.DomainPushRequest, len(f.pushes))
	for k, v := range f.pushes {
		pushes[k] = *v
	}
	domains := make(map[int]domain.Domain, len(f.domains))
	for k, v := range f.domains {
		domains[k] = *v
	}
	return pushes, domains
}

func (f *fakeDB) restore(pushes map[uuid.UUID]domain.DomainPushRequest, domains map[int]domain.Domain) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pushes, f.domains = map[uuid.UUID]*domain.DomainPushRequest{}, map[int]*domain.Domain{}
	for k, v := range pushes {
		v := v
		f.pushes[k] = &v
	}
	for k, v := range domains {
		v := v
		f.domains[k] = &v
	}
}

type inTx struct{}

func (f *fakeDB) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	if ctx.Value(inTx{}) != nil {
		return fn(ctx)
	}
	f.txMu.Lock()
	defer f.txMu.Unlock()
	pushes, domains := f.snapshot()
	if err := fn(context.WithValue(ctx, inTx{}, true)); err != nil {
		f.restore(pushes, domains)
		return err
	}
	return nil
}

func (f *fakeDB) push(id uuid.UUID) domain.DomainPushRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.pushes[id]
}

func (f *fakeDB) domainByID(id int) domain.Domain {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.domains[id]
}

func (f *fakeDB) Create(_ context.Context, p *domain.DomainPushRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.pushes {
		if existing.DomainID == p.DomainID && existing.Status == domain.PushPending {
			return &pgconn.PgError{Code: pg.UniqueViolation, ConstraintName: "domain_push_requests_one_pending"}
		}
	}
	c := *p
	f.pushes[p.ID] = &c
	return nil
}

func (f *fakeDB) Get(_ context.Context, id uuid.UUID) (*domain.DomainPushRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.pushes[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (f *fakeDB) Lock(ctx context.Context, id uuid.UUID) (*domain.DomainPushRequest, error) {
	return f.Get(ctx, id)
}

func (f *fakeDB) FindPendingByDomain(_ context.Context, domainID int) (*domain.DomainPushRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.pushes {
		if p.DomainID == domainID && p.Status == domain.PushPending {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeDB) Resolve(_ context.Context, id uuid.UUID, status domain.PushStatus, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.pushes[id]
	if !ok || p.Status != domain.PushPending {
		return false, nil
	}
	p.Status, p.RespondedAt = status, &at
	return true, nil
}

func (f *fakeDB) ListForAccount(_ context.Context, userID int) ([]domain.DomainPushRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.DomainPushRequest
	for _, p := range f.pushes {
		if p.FromUserID == userID || p.ToUserID == userID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeDB) ExpireOverdue(_ context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, p := range f.pushes {
		if p.Overdue(now) {
			p.Status, p.RespondedAt = domain.PushExpired, &now
			n++
		}
	}
	return n, nil
}

func (f *fakeDB) LockByID(_ context.Context, id int) (*domain.Domain, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.domains[id]
	if !ok {
		return nil, nil
	}
	c := *d
	return &c, nil
}

func (f *fakeDB) TransferOwnership(_ context.Context, id, fromUserID, toUserID int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.domains[id]
	if !ok || d.UserID != fromUserID {
		return false, nil
	}
	d.UserID, d.AutoRenewPaymentMethod = toUserID, ""
	return true, nil
}

func (f *fakeDB) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}
