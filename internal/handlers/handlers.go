package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/domainstore/docs"
	authhandlers "github.com/GlebRadaev/domainstore/internal/handlers/auth"
	balancehandlers "github.com/GlebRadaev/domainstore/internal/handlers/balance"
	ordershandlers "github.com/GlebRadaev/domainstore/internal/handlers/orders"
	pushhandlers "github.com/GlebRadaev/domainstore/internal/handlers/push"
	webhookhandlers "github.com/GlebRadaev/domainstore/internal/handlers/webhook"
	"github.com/GlebRadaev/domainstore/internal/service"
	"github.com/GlebRadaev/domainstore/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	GetOrder(w http.ResponseWriter, r *http.Request)
	RetryItem(w http.ResponseWriter, r *http.Request)
	Refund(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Refill(w http.ResponseWriter, r *http.Request)
	Transactions(w http.ResponseWriter, r *http.Request)
}

type PushHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	AdminCreate(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Accept(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type WebhookHandler interface {
	Payments(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	OrderHandler   OrderHandler
	BalanceHandler BalanceHandler
	PushHandler    PushHandler
	WebhookHandler WebhookHandler
	JWTService     auth.JWTServiceInterface
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		OrderHandler:   ordershandlers.New(s.FulfillmentService, s.PaymentService),
		BalanceHandler: balancehandlers.New(s.BalanceService),
		PushHandler:    pushhandlers.New(s.PushService),
		WebhookHandler: webhookhandlers.New(s.PaymentService),
		JWTService:     s.JWTService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.RequestID,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/api/webhooks/payments", h.WebhookHandler.Payments)

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.JWTService))
			r.Route("/orders/{number}", func(r chi.Router) {
				r.Get("/", h.OrderHandler.GetOrder)
				r.Post("/items/{itemID}/retry", h.OrderHandler.RetryItem)
			})
			r.Route("/pushes", func(r chi.Router) {
				r.Get("/", h.PushHandler.List)
				r.Post("/", h.PushHandler.Create)
				r.Get("/{id}", h.PushHandler.Get)
				r.Post("/{id}/accept", h.PushHandler.Accept)
				r.Post("/{id}/reject", h.PushHandler.Reject)
				r.Post("/{id}/cancel", h.PushHandler.Cancel)
			})
		})
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.Middleware(h.JWTService), auth.AdminOnly)
		r.Route("/orders/{number}", func(r chi.Router) {
			r.Post("/items/{itemID}/retry", h.OrderHandler.RetryItem)
			r.Post("/refund", h.OrderHandler.Refund)
		})
		r.Post("/pushes", h.PushHandler.AdminCreate)
		r.Route("/balance", func(r chi.Router) {
			r.Get("/", h.BalanceHandler.GetBalance)
			r.Post("/refill", h.BalanceHandler.Refill)
			r.Get("/transactions", h.BalanceHandler.Transactions)
		})
	})

	return r
}
