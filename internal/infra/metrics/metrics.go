// Package metrics collects and exposes Prometheus metrics for the identity
// and expense flows.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Felix-Hz/cofr/internal/domain/entity"
)

// Collector records login, linking and request metrics.
type Collector struct {
	registry *prometheus.Registry

	loginSuccess    *prometheus.CounterVec
	loginFailure    *prometheus.CounterVec
	accountsCreated prometheus.Counter
	linksCreated    *prometheus.CounterVec
	linksRemoved    *prometheus.CounterVec
	httpStatus      *prometheus.CounterVec
	requestLatency  prometheus.Histogram
}

// NewCollector creates a Collector backed by its own registry.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		loginSuccess: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cofr_login_success_total",
			Help: "Successful logins by provider",
		}, []string{"provider"}),
		loginFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cofr_login_failure_total",
			Help: "Failed logins by provider and reason",
		}, []string{"provider", "reason"}),
		accountsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cofr_accounts_created_total",
			Help: "Accounts created through identity resolution",
		}),
		linksCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cofr_links_created_total",
			Help: "Provider links created by provider",
		}, []string{"provider"}),
		linksRemoved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cofr_links_removed_total",
			Help: "Provider links removed by provider",
		}, []string{"provider"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cofr_http_status_total",
			Help: "HTTP responses by status code",
		}, []string{"status_code"}),
		requestLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "cofr_http_request_latency_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}

	registry.MustRegister(
		c.loginSuccess,
		c.loginFailure,
		c.accountsCreated,
		c.linksCreated,
		c.linksRemoved,
		c.httpStatus,
		c.requestLatency,
	)

	return c
}

// RecordLoginSuccess records a successful login.
func (c *Collector) RecordLoginSuccess(provider entity.ProviderType) {
	c.loginSuccess.WithLabelValues(string(provider)).Inc()
}

// RecordLoginFailure records a failed login with its reason code.
func (c *Collector) RecordLoginFailure(provider entity.ProviderType, reason string) {
	c.loginFailure.WithLabelValues(string(provider), reason).Inc()
}

// RecordAccountCreated records an account created during resolution.
func (c *Collector) RecordAccountCreated() {
	c.accountsCreated.Inc()
}

// RecordLinkCreated records a provider link creation.
func (c *Collector) RecordLinkCreated(provider entity.ProviderType) {
	c.linksCreated.WithLabelValues(string(provider)).Inc()
}

// RecordLinkRemoved records a provider link removal.
func (c *Collector) RecordLinkRemoved(provider entity.ProviderType) {
	c.linksRemoved.WithLabelValues(string(provider)).Inc()
}

// RecordHTTPStatus records an HTTP response status code.
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordRequestLatency records an HTTP request duration.
func (c *Collector) RecordRequestLatency(duration time.Duration) {
	c.requestLatency.Observe(duration.Seconds())
}

// Handler returns the Prometheus scrape handler for this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
