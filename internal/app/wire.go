package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tradedesk-backend/internal/adapter/postgres/certificate"
	"github.com/heartmarshall/tradedesk-backend/internal/adapter/postgres/invoice"
	"github.com/heartmarshall/tradedesk-backend/internal/adapter/postgres/quote"
	"github.com/heartmarshall/tradedesk-backend/internal/adapter/postgres/settings"
	"github.com/heartmarshall/tradedesk-backend/internal/adapter/postgres/studysession"
	"github.com/heartmarshall/tradedesk-backend/internal/config"
	"github.com/heartmarshall/tradedesk-backend/internal/service/dashboard"
)

// NewDashboardService wires the dashboard service to its PostgreSQL
// repositories.
func NewDashboardService(pool *pgxpool.Pool, logger *slog.Logger, cfg config.DashboardConfig) (*dashboard.Service, error) {
	return dashboard.NewService(
		logger,
		quote.New(pool),
		invoice.New(pool),
		studysession.New(pool),
		certificate.New(pool),
		settings.New(pool),
		cfg.ToDomain(),
	)
}
