package service

import (
	"github.com/GlebRadaev/domainstore/internal/config"
	"github.com/GlebRadaev/domainstore/internal/lock"
	"github.com/GlebRadaev/domainstore/internal/pg"
	"github.com/GlebRadaev/domainstore/internal/repo"
	"github.com/GlebRadaev/domainstore/internal/service/authservice"
	"github.com/GlebRadaev/domainstore/internal/service/balanceservice"
	"github.com/GlebRadaev/domainstore/internal/service/fulfillmentservice"
	"github.com/GlebRadaev/domainstore/internal/service/paymentservice"
	"github.com/GlebRadaev/domainstore/internal/service/pushservice"
	"github.com/GlebRadaev/domainstore/pkg/auth"
	"github.com/shopspring/decimal"
)

// Deps are the outside systems the services talk to.
type Deps struct {
	Registrar interface {
		balanceservice.Registrar
		fulfillmentservice.Registrar
	}
	Payments  paymentservice.Refunder
	Verifier  paymentservice.Verifier
	Notifier  fulfillmentservice.Notifier
	Locker    lock.Locker
	TxManager pg.TXManager
	JWT       auth.JWTServiceInterface
}

type Services struct {
	AuthService        *authservice.Service
	BalanceService     *balanceservice.Service
	FulfillmentService *fulfillmentservice.Service
	PaymentService     *paymentservice.Service
	PushService        *pushservice.Service
	JWTService         auth.JWTServiceInterface
}

func New(cfg *config.Config, repo *repo.Repositories, deps Deps) *Services {
	balanceService := balanceservice.New(deps.Registrar, repo.LedgerRepo, balanceservice.Settings{
		SafetyMargin: decimal.NewFromFloat(cfg.RefillSafetyMargin),
		Increment:    decimal.NewFromFloat(cfg.RefillIncrement),
		Minimum:      decimal.NewFromFloat(cfg.RefillMinimum),
	})
	fulfillmentService := fulfillmentservice.New(repo.OrderRepo, repo.DomainRepo, balanceService, deps.Registrar,
		deps.Notifier, deps.Locker, deps.TxManager, cfg.RegistrarTimeout)
	paymentService := paymentservice.New(deps.Verifier, fulfillmentService, repo.OrderRepo, deps.Notifier, deps.Payments)
	pushService := pushservice.New(repo.PushRepo, repo.DomainRepo, repo.UserRepo, deps.TxManager, cfg.PushTimeout)
	authService := authservice.New(repo.UserRepo, auth.NewHashService(cfg.PasswordCost), deps.JWT)

	return &Services{
		AuthService:        authService,
		BalanceService:     balanceService,
		FulfillmentService: fulfillmentService,
		PaymentService:     paymentService,
		PushService:        pushService,
		JWTService:         deps.JWT,
	}
}
