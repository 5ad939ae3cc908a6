// Package recovery periodically picks up work that no request will finish:
// paid orders whose fulfillment stalled and push requests past their expiry.
package recovery

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/GlebRadaev/domainstore/internal/config"
	"github.com/GlebRadaev/domainstore/internal/domain"
	"github.com/GlebRadaev/domainstore/internal/service/fulfillmentservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	batchLimit = 100
	workers    = 4
)

type OrderRepo interface {
	FindStalled(ctx context.Context, before time.Time, limit uint32) ([]domain.Order, error)
}

type Orchestrator interface {
	ResumeOrder(ctx context.Context, order domain.Order) error
}

type PushExpirer interface {
	ExpireOverdue(ctx context.Context) (int64, error)
}

type Service struct {
	orders       OrderRepo
	orchestrator Orchestrator
	pushes       PushExpirer
	workerPool   WorkerPoolI
	interval     time.Duration
	staleAfter   time.Duration
	limit        uint32
	now          func() time.Time
	inFlight     sync.Map
}

func New(cfg *config.Config, orders OrderRepo, orchestrator Orchestrator, pushes PushExpirer) *Service {
	return &Service{
		orders:       orders,
		orchestrator: orchestrator,
		pushes:       pushes,
		workerPool:   NewWorkerPool(workers),
		interval:     cfg.RecoveryInterval,
		staleAfter:   cfg.RecoveryStaleAfter,
		limit:        batchLimit,
		now:          time.Now,
	}
}

// Start sweeps on every tick until ctx is done.
func (s *Service) Start(ctx context.Context) {
	zap.L().Info("recovery started", zap.Duration("interval", s.interval), zap.Duration("stale_after", s.staleAfter))
	defer s.workerPool.Close()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("recovery stopped")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one recovery pass and waits for the resumed orders to settle.
func (s *Service) Sweep(ctx context.Context) {
	if n, err := s.pushes.ExpireOverdue(ctx); err != nil {
		zap.L().Error("can't expire overdue push requests", zap.Error(err))
	} else if n > 0 {
		zap.L().Info("expired overdue push requests", zap.Int64("count", n))
	}

	orders, err := s.orders.FindStalled(ctx, s.now().Add(-s.staleAfter), s.limit)
	if err != nil {
		zap.L().Error("can't fetch stalled orders", zap.Error(err))
		return
	}

	var wg sync.WaitGroup
	var g errgroup.Group
	for _, order := range orders {
		if _, loaded := s.inFlight.LoadOrStore(order.ID, struct{}{}); loaded {
			continue
		}
		wg.Add(1)
		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer wg.Done()
				defer s.inFlight.Delete(order.ID)
				return s.resume(ctx, order)
			})
			if err != nil {
				wg.Done()
				s.inFlight.Delete(order.ID)
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Warn("recovery sweep interrupted", zap.Error(err))
	}
	wg.Wait()
}

func (s *Service) resume(ctx context.Context, order domain.Order) error {
	zap.L().Info("resuming stalled order", zap.String("order_number", order.OrderNumber), zap.String("status", string(order.Status)))
	err := s.orchestrator.ResumeOrder(ctx, order)
	if errors.Is(err, fulfillmentservice.ErrIncomplete) {
		zap.L().Warn("stalled order still incomplete", zap.String("order_number", order.OrderNumber), zap.Error(err))
		return nil
	}
	return err
}
