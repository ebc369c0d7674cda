// Package metrics exposes prometheus counters for front door decisions.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "zwr"

// Metrics is safe for concurrent use. A nil *Metrics records nothing.
type Metrics struct {
	requests         *prometheus.CounterVec
	missingHost      prometheus.Counter
	redirectFailures prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Requests by dispatch decision (static, shell, redirect, reject).",
		}, []string{"route"}),
		missingHost: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "missing_host_total",
			Help:      "Redirect candidates rejected for lack of a usable host.",
		}),
		redirectFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "redirect_failures_total",
			Help:      "Redirects that could not be turned into a valid URI.",
		}),
	}
}

func (m *Metrics) ObserveRoute(route string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(route).Inc()
}

func (m *Metrics) ObserveMissingHost() {
	if m == nil {
		return
	}
	m.missingHost.Inc()
}

func (m *Metrics) ObserveRedirectFailure() {
	if m == nil {
		return
	}
	m.redirectFailures.Inc()
}

// Handler serves the registry in the prometheus text format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
