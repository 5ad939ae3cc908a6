package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/domainstore/internal/config"
	"github.com/GlebRadaev/domainstore/internal/domain"
	"github.com/GlebRadaev/domainstore/internal/handlers"
	"github.com/GlebRadaev/domainstore/internal/lock"
	"github.com/GlebRadaev/domainstore/internal/notifier"
	"github.com/GlebRadaev/domainstore/internal/payments"
	"github.com/GlebRadaev/domainstore/internal/pg"
	"github.com/GlebRadaev/domainstore/internal/recovery"
	"github.com/GlebRadaev/domainstore/internal/registrar"
	"github.com/GlebRadaev/domainstore/internal/repo"
	"github.com/GlebRadaev/domainstore/internal/service"
	"github.com/GlebRadaev/domainstore/pkg/auth"
	"github.com/GlebRadaev/domainstore/pkg/clients"
	"github.com/GlebRadaev/domainstore/pkg/logger"
	"github.com/GlebRadaev/domainstore/pkg/signature"
)

// lockTTL bounds how long a crashed process can hold an order.
const lockTTL = 10 * time.Minute

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories
	rec  *recovery.Service

	closers []func()
	errCh   chan error
	wg      sync.WaitGroup
	ready   bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	c, err := Build(ctx, cfg)
	if err != nil {
		if c != nil {
			c.Close()
		}
		return err
	}
	a.closers = append(a.closers, c.Close)

	a.cfg = cfg
	a.repo = c.Repo
	a.srv = c.Services
	a.api = handlers.New(a.srv)
	a.rec = recovery.New(cfg, a.repo.OrderRepo, a.srv.FulfillmentService, a.srv.PushService)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startRecovery(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// Components are the wired repositories and services. The server and the
// admin CLI build them the same way.
type Components struct {
	Pool     *pgxpool.Pool
	Repo     *repo.Repositories
	Services *service.Services

	closers []func()
}

// Close releases connections in reverse order of creation.
func (c *Components) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}

// Build connects to the database, applies migrations and wires every service.
// On error the returned Components, if not nil, must still be closed.
func Build(ctx context.Context, cfg *config.Config) (*Components, error) {
	c := &Components{}

	pool, err := Connect(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return nil, fmt.Errorf("can't build pgx pool: %w", err)
	}
	c.Pool = pool
	c.closers = append(c.closers, pool.Close)
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return c, fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	notify, err := c.buildNotifier(cfg)
	if err != nil {
		return c, fmt.Errorf("can't build notifier: %w", err)
	}
	locker, err := c.buildLocker(ctx, cfg)
	if err != nil {
		return c, fmt.Errorf("can't build order lock: %w", err)
	}

	c.Repo = repo.New(pg.New(pool), txManager)
	c.Services = service.New(cfg, c.Repo, service.Deps{
		Registrar: registrar.New(clients.NewHTTPClient(cfg.RegistrarTimeout), RegistrarConfig(cfg)),
		Payments:  payments.New(clients.NewHTTPClient(30*time.Second), cfg.PaymentAPIURL, cfg.PaymentAPIKey),
		Verifier:  signature.NewVerifier(cfg.WebhookSecret, cfg.WebhookTolerance),
		Notifier:  notify,
		Locker:    locker,
		TxManager: txManager,
		JWT:       auth.NewJWTService(cfg.JWTSecret),
	})
	return c, nil
}

// RegistrarConfig maps the per-mode registrar settings.
func RegistrarConfig(cfg *config.Config) registrar.Config {
	return registrar.Config{
		Endpoints: map[domain.RegistrarMode]registrar.Endpoint{
			domain.ModeTest: {BaseURL: cfg.RegistrarTestURL, APIKey: cfg.RegistrarTestKey},
			domain.ModeLive: {BaseURL: cfg.RegistrarLiveURL, APIKey: cfg.RegistrarLiveKey},
		},
		RPS: cfg.RegistrarRPS,
	}
}

// KafkaBrokers drops blanks left by an empty or trailing-comma KAFKA_BROKERS.
func KafkaBrokers(cfg *config.Config) []string {
	var brokers []string
	for _, b := range cfg.KafkaBrokers {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func (c *Components) buildNotifier(cfg *config.Config) (*notifier.Notifier, error) {
	brokers := KafkaBrokers(cfg)
	if len(brokers) == 0 {
		zap.L().Info("no kafka brokers configured, notifications go to the log")
		return notifier.NewLog(), nil
	}
	n, closeFn, err := notifier.NewKafka(brokers, cfg.NotifyTopic)
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		closeFn(ctx)
	})
	zap.L().Info("publishing notifications to kafka", zap.Strings("brokers", brokers), zap.String("topic", cfg.NotifyTopic))
	return n, nil
}

func (c *Components) buildLocker(ctx context.Context, cfg *config.Config) (lock.Locker, error) {
	if cfg.RedisURL == "" {
		zap.L().Warn("REDIS_URL not set, order lock only covers this process")
		return lock.NewLocal(), nil
	}
	l, closeFn, err := lock.NewRedisFromURL(ctx, cfg.RedisURL, lockTTL)
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, func() {
		if err := closeFn(); err != nil {
			zap.L().Warn("redis close failed", zap.Error(err))
		}
	})
	return l, nil
}

// Connect opens and pings the pgx pool.
func Connect(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startRecovery(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.rec.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}

	return appErr
}
