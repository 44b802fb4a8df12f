package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Felix-Hz/cofr/internal/infra/metrics"
)

// MetricsMiddleware records per-request status codes and latency.
type MetricsMiddleware struct {
	collector *metrics.Collector
}

// NewMetricsMiddleware is the constructor for MetricsMiddleware.
func NewMetricsMiddleware(collector *metrics.Collector) *MetricsMiddleware {
	return &MetricsMiddleware{collector: collector}
}

// Observe wraps a request to record its final status code and latency.
func (m *MetricsMiddleware) Observe(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		m.collector.RecordHTTPStatus(c.Response().Status)
		m.collector.RecordRequestLatency(time.Since(start))

		return nil
	}
}
