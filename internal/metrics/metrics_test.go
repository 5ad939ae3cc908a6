package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(fulfillmentItems.WithLabelValues("register", "completed"))
	IncFulfillmentItem("register", "completed")
	assert.Equal(t, before+1, testutil.ToFloat64(fulfillmentItems.WithLabelValues("register", "completed")))

	beforeErr := testutil.ToFloat64(refills.WithLabelValues("auto", "error"))
	IncRefill("auto", errors.New("declined"))
	assert.Equal(t, beforeErr+1, testutil.ToFloat64(refills.WithLabelValues("auto", "error")))

	beforePush := testutil.ToFloat64(pushTransitions.WithLabelValues("accepted"))
	IncPushTransition("accepted")
	assert.Equal(t, beforePush+1, testutil.ToFloat64(pushTransitions.WithLabelValues("accepted")))
}

func TestObserveRegistrarCall(t *testing.T) {
	ObserveRegistrarCall("register", time.Now().Add(-time.Second), nil)
	assert.Equal(t, 1, testutil.CollectAndCount(registrarCallDuration.WithLabelValues("register", "ok").(prometheus.Histogram)))
}
