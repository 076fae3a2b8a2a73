package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.QuoteComputed(true)
	m.QuoteComputed(false)
	m.QuoteComputed(false)
	m.ItemMutation("add", true)
	m.ItemMutation("add", false)
	m.InstallmentPayment("paid")
	m.ObserveRequest(http.MethodGet, "/v1/quotes/:id", http.StatusOK, 12*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.QuoteComputations.WithLabelValues("pricing")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.QuoteComputations.WithLabelValues("hidden")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ItemMutations.WithLabelValues("add", "noop")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InstallmentPayments.WithLabelValues("paid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReqTotal.WithLabelValues("GET", "/v1/quotes/:id", "200")))
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.QuoteComputed(true)
		m.ItemMutation("remove", true)
		m.InstallmentPayment("failed")
		m.ObserveRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	})
}
