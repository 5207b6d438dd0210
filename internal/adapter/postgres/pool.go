// Package postgres holds the shared PostgreSQL plumbing used by the
// repository subpackages: pool construction, the tx-aware Querier, the
// transaction manager and pg error mapping.
package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tradedesk-backend/internal/config"
)

// Builder is the squirrel statement builder configured for PostgreSQL
// ($1, $2, ... placeholders).
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const applicationName = "tradedesk"

// NewPool creates a PostgreSQL connection pool from DatabaseConfig and pings
// it, so a bad DSN fails at startup. Sessions run in UTC; day boundaries are
// always computed with an explicit AT TIME ZONE.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime

	params := poolCfg.ConnConfig.RuntimeParams
	if params["application_name"] == "" {
		params["application_name"] = applicationName
	}
	params["timezone"] = "UTC"

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}
