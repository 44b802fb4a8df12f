package middleware

import (
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/Felix-Hz/cofr/config"
	"github.com/Felix-Hz/cofr/internal/delivery/http/response"
)

const (
	defaultAuthPerMinute = 10
	defaultAuthBurst     = 5

	// visitorTTL bounds how long an idle client's limiter is retained.
	visitorTTL = 10 * time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware throttles login attempts per client IP so credential
// probing cannot hammer the auth endpoints.
type RateLimitMiddleware struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	perMinute := defaultAuthPerMinute
	burst := defaultAuthBurst
	if cfg != nil && cfg.RateLimit != nil {
		if cfg.RateLimit.AuthPerMinute > 0 {
			perMinute = cfg.RateLimit.AuthPerMinute
		}
		if cfg.RateLimit.AuthBurst > 0 {
			burst = cfg.RateLimit.AuthBurst
		}
	}

	return &RateLimitMiddleware{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    burst,
	}
}

// LimitAuth rejects requests exceeding the per-IP budget with 429.
func (m *RateLimitMiddleware) LimitAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.allow(c.RealIP()) {
			return response.TooManyRequests(c, "RATE_LIMITED", "Too many login attempts, slow down")
		}

		return next(c)
	}
}

func (m *RateLimitMiddleware) allow(ip string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	v, ok := m.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.visitors[ip] = v
	}
	v.lastSeen = now

	// Opportunistic cleanup keeps the map from growing unbounded.
	if len(m.visitors) > 1024 {
		for key, vis := range m.visitors {
			if now.Sub(vis.lastSeen) > visitorTTL {
				delete(m.visitors, key)
			}
		}
	}

	return v.limiter.Allow()
}
