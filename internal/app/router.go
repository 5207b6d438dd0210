package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/tradedesk-backend/internal/config"
	"github.com/heartmarshall/tradedesk-backend/internal/transport/middleware"
)

type dashboardHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type healthHandler interface {
	Live(w http.ResponseWriter, r *http.Request)
	Ready(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// RouterDeps holds the handlers and helpers mounted by NewRouter.
type RouterDeps struct {
	Dashboard dashboardHandler
	Health    healthHandler
	Tokens    tokenValidator
	Limiter   *middleware.RateLimiter
}

// NewRouter builds the HTTP handler: probes and metrics are public, the
// dashboard API requires an authenticated user.
func NewRouter(cfg *config.Config, logger *slog.Logger, deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /live", middleware.Instrument("live", http.HandlerFunc(deps.Health.Live)))
	mux.Handle("GET /ready", middleware.Instrument("ready", http.HandlerFunc(deps.Health.Ready)))
	mux.Handle("GET /health", middleware.Instrument("health", http.HandlerFunc(deps.Health.Health)))
	if cfg.Metrics.Enabled {
		mux.Handle("GET "+cfg.Metrics.Path, promhttp.Handler())
	}

	mux.Handle("GET /api/dashboard", middleware.Instrument("dashboard",
		middleware.RequireUser(http.HandlerFunc(deps.Dashboard.Get))))

	export := middleware.RequireUser(http.HandlerFunc(deps.Dashboard.Export))
	if deps.Limiter != nil {
		export = deps.Limiter.Limit(cfg.RateLimit.ExportPerMinute)(export)
	}
	mux.Handle("GET /api/dashboard/export", middleware.Instrument("dashboard_export", export))

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(deps.Tokens),
	)(mux)
}
