package notifier

import (
	"context"

	"go.uber.org/zap"
)

type logPublisher struct{}

// NewLog only logs events. It is used when no brokers are configured.
func NewLog() *Notifier {
	return newNotifier(logPublisher{})
}

func (logPublisher) publish(_ context.Context, e Event) error {
	zap.L().Info("notification",
		zap.String("type", e.Type),
		zap.String("order_number", e.OrderNumber),
		zap.String("domain", e.Domain),
		zap.String("reason", e.Reason),
		zap.Strings("domains", e.Domains),
	)
	return nil
}
