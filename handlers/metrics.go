package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the counters exposed on /metrics
type Metrics struct {
	OrdersTotal  *prometheus.CounterVec
	RefundsTotal *prometheus.CounterVec
}

// NewMetrics creates the metrics and registers them against reg
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		OrdersTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "orders_total",
				Help:      "Total number of PayPal order creations by result",
			},
			[]string{"result"},
		),
		RefundsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "refunds_total",
				Help:      "Total number of PayPal refunds by flow and result",
			},
			[]string{"flow", "result"},
		),
	}

	reg.MustRegister(m.OrdersTotal, m.RefundsTotal)

	return m
}
