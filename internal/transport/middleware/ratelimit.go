package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"github.com/heartmarshall/foodgram-backend/internal/config"
)

// RateLimit limits requests per client IP over a one-minute window.
// A disabled limiter passes every request through.
func RateLimit(cfg config.RateLimitConfig) Middleware {
	if !cfg.Enabled || cfg.RequestsPerMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(
		cfg.RequestsPerMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
			writeDetail(w, http.StatusTooManyRequests, "rate limit exceeded")
		}),
	)
}
