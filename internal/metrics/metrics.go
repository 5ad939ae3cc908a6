// Package metrics holds the Prometheus collectors for the fulfillment core.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registrarCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "domainstore_registrar_call_duration_seconds",
		Help:    "Latency of registrar API calls",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"op", "outcome"})

	fulfillmentItems = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "domainstore_fulfillment_items_total",
		Help: "Order items processed by the orchestrator, by type and outcome",
	}, []string{"type", "outcome"})

	ordersFinalized = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "domainstore_orders_finalized_total",
		Help: "Orders that reached an aggregate fulfillment status",
	}, []string{"status"})

	refills = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "domainstore_registrar_refills_total",
		Help: "Registrar prepaid balance refills, by kind and outcome",
	}, []string{"kind", "outcome"})

	unreconciledRefills = promauto.NewCounter(prometheus.CounterOpts{
		Name: "domainstore_unreconciled_refills_total",
		Help: "Refills that need manual reconciliation (ledger write failed or operation failed after refill)",
	})

	webhookEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "domainstore_payment_events_total",
		Help: "Payment processor notifications received, by type and result",
	}, []string{"type", "result"})

	pushTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "domainstore_push_transitions_total",
		Help: "Domain push requests reaching a status",
	}, []string{"status"})
)

func ObserveRegistrarCall(op string, started time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	registrarCallDuration.WithLabelValues(op, outcome).Observe(time.Since(started).Seconds())
}

func IncFulfillmentItem(itemType, outcome string) {
	fulfillmentItems.WithLabelValues(itemType, outcome).Inc()
}

func IncOrderFinalized(status string) {
	ordersFinalized.WithLabelValues(status).Inc()
}

func IncRefill(kind string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	refills.WithLabelValues(kind, outcome).Inc()
}

func IncUnreconciledRefill() {
	unreconciledRefills.Inc()
}

func IncWebhookEvent(eventType, result string) {
	webhookEvents.WithLabelValues(eventType, result).Inc()
}

func IncPushTransition(status string) {
	pushTransitions.WithLabelValues(status).Inc()
}

func AddPushTransitions(status string, n int64) {
	if n > 0 {
		pushTransitions.WithLabelValues(status).Add(float64(n))
	}
}
