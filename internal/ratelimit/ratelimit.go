// Package ratelimit provides a fixed-window, per-IP request limiter backed
// by Redis. The limiter fails open: if Redis is unreachable, requests pass.
package ratelimit

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"onboard/internal/cache"
	"onboard/internal/metrics"
)

// Limiter counts requests per client IP in fixed time windows.
type Limiter struct {
	cache  *cache.Client
	name   string
	limit  int
	window time.Duration
}

// New creates a limiter. name namespaces the Redis keys and labels the
// rejection metric.
func New(cache *cache.Client, name string, limit int, window time.Duration) *Limiter {
	return &Limiter{cache: cache, name: name, limit: limit, window: window}
}

// Middleware rejects requests beyond the window limit with 429.
func (l *Limiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := fmt.Sprintf("ratelimit:%s:%s", l.name, c.RealIP())
			count, err := l.cache.IncrWindow(c.Request().Context(), key, l.window)
			if err != nil || count == 0 {
				// redis unavailable, fail open
				return next(c)
			}
			if count > int64(l.limit) {
				metrics.RateLimitedTotal.WithLabelValues(l.name).Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests")
			}
			return next(c)
		}
	}
}
