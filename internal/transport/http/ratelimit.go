package http

import (
	"net/http"

	"github.com/go-chi/render"
	"golang.org/x/time/rate"

	"rfpulse/internal/config"
	apierrors "rfpulse/internal/errors"
)

// RateLimit applies a process-wide token bucket to all requests. The
// dashboard is a single-user tool, so one bucket is enough; per-client
// fairness is not a concern here.
func RateLimit(cfg config.RateLimitConfig) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst)
	return func(next http.Handler) http.Handler {
		if !cfg.Enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				_ = render.Render(w, r, apierrors.ErrRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
