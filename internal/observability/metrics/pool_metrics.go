package metrics

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

// PoolStatter is implemented by *pgxpool.Pool.
type PoolStatter interface {
	Stat() *pgxpool.Stat
}

func registerPoolMetrics(pool PoolStatter, logger *slog.Logger) {
	prometheus.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: metricPrefix + "db_pool_acquired_conns",
			Help: "Connections currently acquired from the pool",
		},
		func() float64 {
			return poolStat(pool, logger, func(s *pgxpool.Stat) int64 { return int64(s.AcquiredConns()) })
		},
	))

	prometheus.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: metricPrefix + "db_pool_idle_conns",
			Help: "Idle connections in the pool",
		},
		func() float64 {
			return poolStat(pool, logger, func(s *pgxpool.Stat) int64 { return int64(s.IdleConns()) })
		},
	))

	prometheus.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: metricPrefix + "db_pool_total_conns",
			Help: "Total connections in the pool",
		},
		func() float64 {
			return poolStat(pool, logger, func(s *pgxpool.Stat) int64 { return int64(s.TotalConns()) })
		},
	))
}

func poolStat(pool PoolStatter, logger *slog.Logger, pick func(*pgxpool.Stat) int64) float64 {
	stat := pool.Stat()
	if stat == nil {
		if logger != nil {
			logger.Warn("metrics: pool stat unavailable")
		}
		return 0
	}
	v := pick(stat)
	if v < 0 {
		return 0
	}
	return float64(v)
}
