package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"rfpulse/internal/config"
	"rfpulse/pkg/contracts/domain"
)

// NewRouter assembles the full dashboard router: standard chi middleware,
// request metrics, rate limiting, and the dashboard routes.
func NewRouter(logger *slog.Logger, cfg *config.Config, records []domain.UnifiedRecord, locate Locator) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.WriteTimeout))

	metrics := NewMetrics()
	r.Use(metrics.Middleware)
	r.Use(RateLimit(cfg.Server.RateLimit))

	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Mount("/", NewDashboardHandler(logger, records, locate, cfg.Dashboard.Title).Routes())

	return r
}

// requestLogger logs one structured line per request.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			logger.Info("request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.String("request_id", middleware.GetReqID(r.Context())),
				slog.Duration("elapsed", time.Since(start)))
		})
	}
}
