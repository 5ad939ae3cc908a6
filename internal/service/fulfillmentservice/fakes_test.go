package fulfillmentservice

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/GlebRadaev/domainstore/internal/domain"
	"github.com/GlebRadaev/domainstore/internal/pg"
	"github.com/GlebRadaev/domainstore/internal/registrar"
	"github.com/shopspring/decimal"
)

// fakeStore is an in-memory OrderRepo and DomainRepo.
type fakeStore struct {
	mu         sync.Mutex
	orders     map[int]*domain.Order
	items      map[int]*domain.OrderItem
	domains    map[string]*domain.Domain
	activity   []string
	failUpsert map[string]error
	nextID     int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		orders:     map[int]*domain.Order{},
		items:      map[int]*domain.OrderItem{},
		domains:    map[string]*domain.Domain{},
		failUpsert: map[string]error{},
		nextID:     100,
	}
}

type storeSnapshot struct {
	orders   map[int]domain.Order
	items    map[int]domain.OrderItem
	domains  map[string]domain.Domain
	activity []string
}

func (s *fakeStore) snapshot() storeSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := storeSnapshot{
		orders:   map[int]domain.Order{},
		items:    map[int]domain.OrderItem{},
		domains:  map[string]domain.Domain{},
		activity: append([]string(nil), s.activity...),
	}
	for k, v := range s.orders {
		snap.orders[k] = *v
	}
	for k, v := range s.items {
		snap.items[k] = *v
	}
	for k, v := range s.domains {
		snap.domains[k] = *v
	}
	return snap
}

func (s *fakeStore) restore(snap storeSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders, s.items, s.domains = map[int]*domain.Order{}, map[int]*domain.OrderItem{}, map[string]*domain.Domain{}
	for k, v := range snap.orders {
		v := v
		s.orders[k] = &v
	}
	for k, v := range snap.items {
		v := v
		s.items[k] = &v
	}
	for k, v := range snap.domains {
		v := v
		s.domains[k] = &v
	}
	s.activity = snap.activity
}

func (s *fakeStore) seed(order domain.Order, items ...domain.OrderItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[order.ID] = &order
	for _, item := range items {
		item := item
		item.OrderID = order.ID
		if item.Status == "" {
			item.Status = domain.ItemPending
		}
		s.items[item.ID] = &item
	}
}

func (s *fakeStore) seedDomain(d domain.Domain) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.domains[d.Name] = &d
}

func (s *fakeStore) order(id int) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.orders[id]
}

func (s *fakeStore) item(id int) domain.OrderItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.items[id]
}

func (s *fakeStore) domainByName(name string) *domain.Domain {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.domains[name]
	if !ok {
		return nil
	}
	c := *d
	return &c
}

func (s *fakeStore) activities() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.activity...)
}

func (s *fakeStore) FindByPaymentRef(_ context.Context, ref string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.PaymentRef == ref {
			c := *o
			return &c, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) FindByOrderNumber(_ context.Context, number string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.OrderNumber == number {
			c := *o
			return &c, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) Items(_ context.Context, orderID int) ([]domain.OrderItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.OrderItem
	for _, it := range s.items {
		if it.OrderID == orderID {
			out = append(out, *it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeStore) LockItem(_ context.Context, itemID int) (*domain.OrderItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[itemID]
	if !ok {
		return nil, nil
	}
	c := *it
	return &c, nil
}

func (s *fakeStore) MarkPaid(_ context.Context, orderID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.orders[orderID]
	if o.Status != domain.OrderPending && o.Status != domain.OrderProcessing {
		return false, nil
	}
	o.PaymentStatus, o.Status = domain.PaymentPaid, domain.OrderProcessing
	return true, nil
}

func (s *fakeStore) CompleteItem(_ context.Context, itemID int, registrarOrderID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	it := s.items[itemID]
	it.Status, it.RegistrarOrderID, it.ErrorMessage, it.ProcessedAt = domain.ItemCompleted, registrarOrderID, "", &at
	return nil
}

func (s *fakeStore) FailItem(_ context.Context, itemID int, message string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	it := s.items[itemID]
	it.Status, it.ErrorMessage, it.ProcessedAt = domain.ItemFailed, message, &at
	return nil
}

func (s *fakeStore) ReopenItem(_ context.Context, itemID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it := s.items[itemID]
	if it.Status != domain.ItemFailed {
		return false, nil
	}
	it.Status, it.ErrorMessage = domain.ItemProcessing, ""
	return true, nil
}

func (s *fakeStore) Transition(_ context.Context, orderID int, from []domain.OrderStatus, to domain.OrderStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.orders[orderID]
	for _, f := range from {
		if o.Status == f {
			o.Status = to
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) FlagForReview(_ context.Context, orderID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[orderID].RequiresReview = true
	return nil
}

func (s *fakeStore) AddActivity(_ context.Context, orderID int, action string, _ any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activity = append(s.activity, fmt.Sprintf("%d:%s", orderID, action))
	return nil
}

func (s *fakeStore) FindByName(_ context.Context, name string) (*domain.Domain, error) {
	return s.domainByName(name), nil
}

func (s *fakeStore) Upsert(_ context.Context, d *domain.Domain) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failUpsert[d.Name]; err != nil {
		return err
	}
	if existing, ok := s.domains[d.Name]; ok {
		d.ID = existing.ID
	} else {
		s.nextID++
		d.ID = s.nextID
	}
	c := *d
	s.domains[d.Name] = &c
	return nil
}

func (s *fakeStore) UpdateExpiration(_ context.Context, id int, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.domains {
		if d.ID == id {
			d.ExpiresAt = &expiresAt
			return nil
		}
	}
	return fmt.Errorf("domain %d not found", id)
}

type inTxKey struct{}

// fakeTx serializes transactions and rolls the store back when fn fails.
type fakeTx struct {
	mu    sync.Mutex
	store *fakeStore
}

func (f *fakeTx) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	if ctx.Value(inTxKey{}) != nil {
		return fn(ctx)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	snap := f.store.snapshot()
	if err := fn(context.WithValue(ctx, inTxKey{}, true)); err != nil {
		f.store.restore(snap)
		return err
	}
	return nil
}

// fakeRegistrar keeps a prepaid balance and charges price per operation.
type fakeRegistrar struct {
	mu         sync.Mutex
	balance    decimal.Decimal
	price      decimal.Decimal
	refillFee  decimal.Decimal
	refillErr  error
	fail       map[string]error
	block      map[string]bool
	expiration *time.Time
	info       map[string]time.Time
	calls      []string
}

func newFakeRegistrar(balance string) *fakeRegistrar {
	return &fakeRegistrar{
		balance: decimal.RequireFromString(balance),
		price:   decimal.NewFromInt(10),
		fail:    map[string]error{},
		block:   map[string]bool{},
		info:    map[string]time.Time{},
	}
}

func (r *fakeRegistrar) record(call string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
}

func (r *fakeRegistrar) callLog() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func (r *fakeRegistrar) count(call string) int {
	n := 0
	for _, c := range r.callLog() {
		if c == call {
			n++
		}
	}
	return n
}

func (r *fakeRegistrar) spend(ctx context.Context, name string) error {
	if r.block[name] {
		<-ctx.Done()
		return ctx.Err()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail[name]; err != nil {
		return err
	}
	if r.balance.LessThan(r.price) {
		return &registrar.APIError{Op: "spend", StatusCode: 402, Code: "insufficient_funds", Message: "balance too low"}
	}
	r.balance = r.balance.Sub(r.price)
	return nil
}

func (r *fakeRegistrar) CheckBalance(_ context.Context, _ domain.RegistrarMode) (decimal.Decimal, error) {
	r.record("check")
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.balance, nil
}

func (r *fakeRegistrar) RefillBalance(_ context.Context, _ domain.RegistrarMode, amount decimal.Decimal) (*registrar.RefillResult, error) {
	r.record("refill:" + amount.StringFixed(2))
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.refillErr != nil {
		return nil, r.refillErr
	}
	net := amount.Sub(r.refillFee)
	r.balance = r.balance.Add(net)
	return &registrar.RefillResult{NetAmount: net, FeeAmount: r.refillFee}, nil
}

func (r *fakeRegistrar) Register(ctx context.Context, mode domain.RegistrarMode, req registrar.RegisterRequest) (*registrar.RegisterResult, error) {
	r.record("register:" + req.Domain)
	if err := r.spend(ctx, req.Domain); err != nil {
		return nil, err
	}
	exp := time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)
	return &registrar.RegisterResult{OrderID: "R-" + req.Domain, ExpirationDate: &exp}, nil
}

func (r *fakeRegistrar) Renew(ctx context.Context, mode domain.RegistrarMode, name string, years int) (*registrar.RenewResult, error) {
	r.record("renew:" + name)
	if err := r.spend(ctx, name); err != nil {
		return nil, err
	}
	return &registrar.RenewResult{OrderID: "N-" + name, NewExpiration: r.expiration}, nil
}

func (r *fakeRegistrar) InitiateTransfer(ctx context.Context, mode domain.RegistrarMode, req registrar.TransferRequest) (*registrar.TransferResult, error) {
	r.record("transfer:" + req.Domain)
	if err := r.spend(ctx, req.Domain); err != nil {
		return nil, err
	}
	return &registrar.TransferResult{OrderID: "T-" + req.Domain}, nil
}

func (r *fakeRegistrar) DomainInfo(_ context.Context, _ domain.RegistrarMode, name string) (*registrar.DomainInfo, error) {
	r.record("info:" + name)
	r.mu.Lock()
	defer r.mu.Unlock()
	exp, ok := r.info[name]
	if !ok {
		return nil, fmt.Errorf("no info for %s", name)
	}
	return &registrar.DomainInfo{Domain: name, Status: "active", ExpirationDate: &exp}, nil
}

type fakeLedger struct {
	mu  sync.Mutex
	txs []domain.BalanceTransaction
}

func (l *fakeLedger) Append(_ context.Context, tx *domain.BalanceTransaction) (*domain.BalanceTransaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	tx.ID = len(l.txs) + 1
	l.txs = append(l.txs, *tx)
	return tx, nil
}

func (l *fakeLedger) List(_ context.Context, _ int) ([]domain.BalanceTransaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]domain.BalanceTransaction(nil), l.txs...), nil
}

type fakeNotifier struct {
	mu     sync.Mutex
	sent   []string
	panics bool
}

func (n *fakeNotifier) add(event string) error {
	if n.panics {
		panic("smtp exploded")
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, event)
	return nil
}

func (n *fakeNotifier) events() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.sent...)
}

func (n *fakeNotifier) OrderConfirmed(_ context.Context, order *domain.Order, _ []domain.OrderItem) error {
	return n.add("confirmed:" + order.OrderNumber)
}

func (n *fakeNotifier) DomainRegistered(_ context.Context, _ *domain.Order, item domain.OrderItem, _ *time.Time) error {
	return n.add("registered:" + item.DomainName)
}

func (n *fakeNotifier) TransferInitiated(_ context.Context, _ *domain.Order, item domain.OrderItem) error {
	return n.add("transfer:" + item.DomainName)
}

func (n *fakeNotifier) OrderFailed(_ context.Context, order *domain.Order, _ string) error {
	return n.add("failed:" + order.OrderNumber)
}

// grantAll is a Locker that never refuses, leaving only the database level
// protections in place.
type grantAll struct{}

func (grantAll) TryLock(context.Context, string) (func(), bool, error) {
	return func() {}, true, nil
}
