package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "espaco_vista"

// Metrics groups the Prometheus collectors of the service. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	ReqTotal            *prometheus.CounterVec
	ReqDur              *prometheus.HistogramVec
	QuoteComputations   *prometheus.CounterVec
	ItemMutations       *prometheus.CounterVec
	InstallmentPayments *prometheus.CounterVec
}

// New registers the collectors on reg, or on the default registerer when reg
// is nil.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		ReqTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests handled by the server.",
		}, []string{"method", "route", "status"}),
		ReqDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_ms",
			Help:      "HTTP request latency distribution in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		}, []string{"method", "route"}),
		QuoteComputations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_computations_total",
			Help:      "Quote pricing computations by viewer visibility.",
		}, []string{"visibility"}),
		ItemMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_item_mutations_total",
			Help:      "Quote item mutations by operation and result.",
		}, []string{"op", "result"}),
		InstallmentPayments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "installment_payments_total",
			Help:      "Installment payment attempts by outcome.",
		}, []string{"result"}),
	}
	reg.MustRegister(m.ReqTotal, m.ReqDur, m.QuoteComputations, m.ItemMutations, m.InstallmentPayments)
	return m
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.ReqTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.ReqDur.WithLabelValues(method, route).Observe(float64(elapsed.Milliseconds()))
}

func (m *Metrics) QuoteComputed(pricing bool) {
	if m == nil {
		return
	}
	label := "hidden"
	if pricing {
		label = "pricing"
	}
	m.QuoteComputations.WithLabelValues(label).Inc()
}

func (m *Metrics) ItemMutation(op string, applied bool) {
	if m == nil {
		return
	}
	result := "applied"
	if !applied {
		result = "noop"
	}
	m.ItemMutations.WithLabelValues(op, result).Inc()
}

func (m *Metrics) InstallmentPayment(result string) {
	if m == nil {
		return
	}
	m.InstallmentPayments.WithLabelValues(result).Inc()
}
