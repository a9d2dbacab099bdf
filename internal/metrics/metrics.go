// Package metrics exposes Prometheus instruments for the ledger service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the service's instruments.
type Metrics struct {
	ExpensesAdded *prometheus.CounterVec   // by category
	AmountAdded   *prometheus.CounterVec   // minor units, by category
	Settlements   *prometheus.CounterVec   // by kind: expense | share
	RPCDuration   *prometheus.HistogramVec // by procedure and code
	LedgersLoaded prometheus.Gauge

	gatherer prometheus.Gatherer
}

// New registers the instruments on a fresh registry, together with the
// standard Go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		ExpensesAdded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sharemates",
			Name:      "expenses_added_total",
			Help:      "Expenses recorded.",
		}, []string{"category"}),
		AmountAdded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sharemates",
			Name:      "expense_amount_minor_total",
			Help:      "Sum of recorded expense amounts in minor currency units.",
		}, []string{"category"}),
		Settlements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sharemates",
			Name:      "settlements_total",
			Help:      "Settlement operations applied.",
		}, []string{"kind"}),
		RPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sharemates",
			Name:      "rpc_duration_seconds",
			Help:      "Latency of RPC calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure", "code"}),
		LedgersLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sharemates",
			Name:      "ledgers_loaded",
			Help:      "Household ledgers held in memory.",
		}),
		gatherer: reg,
	}
	reg.MustRegister(m.ExpensesAdded, m.AmountAdded, m.Settlements, m.RPCDuration, m.LedgersLoaded)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
