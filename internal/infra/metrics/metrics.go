// Package metrics collects and exposes Prometheus counters for identity events and access checks.
package metrics

import (
	"net/http"

	"captions/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector is the Prometheus implementation of service.MetricsRecorder.
type Collector struct {
	identityEvents       *prometheus.CounterVec
	authorizationDenials *prometheus.CounterVec
}

var _ service.MetricsRecorder = (*Collector)(nil)

// NewRegistry returns a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		identityEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "captions_identity_events_total",
			Help: "Identity provider events processed, by event type and outcome",
		}, []string{"type", "outcome"}),
		authorizationDenials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "captions_authorization_denials_total",
			Help: "Denied access checks, by reason",
		}, []string{"reason"}),
	}

	reg.MustRegister(c.identityEvents, c.authorizationDenials)

	return c
}

// RecordIdentityEvent counts one reconciled identity event.
func (c *Collector) RecordIdentityEvent(eventType, outcome string) {
	c.identityEvents.WithLabelValues(eventType, outcome).Inc()
}

// RecordAuthorizationDenial counts one refused access check.
func (c *Collector) RecordAuthorizationDenial(reason string) {
	c.authorizationDenials.WithLabelValues(reason).Inc()
}

// Handler returns the HTTP handler for Prometheus scraping.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
