package config

import (
	"strings"
	"time"

	"github.com/heartmarshall/tradedesk-backend/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Dashboard DashboardConfig `yaml:"dashboard"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds bearer token validation settings. Tokens are issued by
// the identity service; this service only verifies them.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"tradedesk"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// RateLimitConfig holds per-caller request limits. Zero disables a limit.
type RateLimitConfig struct {
	ExportPerMinute int           `yaml:"export_per_minute" env:"RATE_LIMIT_EXPORT_PER_MINUTE"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATE_LIMIT_CLEANUP_INTERVAL"  env-default:"5m"`
}

// DashboardConfig holds aggregation settings.
type DashboardConfig struct {
	ActionCap             int    `yaml:"action_cap"              env:"DASHBOARD_ACTION_CAP"              env-default:"4"`
	CertificateExpiryDays int    `yaml:"certificate_expiry_days" env:"DASHBOARD_CERTIFICATE_EXPIRY_DAYS"`
	StreakReminder        bool   `yaml:"streak_reminder"         env:"DASHBOARD_STREAK_REMINDER"`
	CurrencySymbol        string `yaml:"currency_symbol"         env:"DASHBOARD_CURRENCY_SYMBOL"         env-default:"£"`
	StudyLookbackDays     int    `yaml:"study_lookback_days"     env:"DASHBOARD_STUDY_LOOKBACK_DAYS"     env-default:"365"`
}

// defaults returns the values of fields whose zero value is a meaningful
// setting (false, 0). cleanenv only fills env-default into zero fields, so
// these are preset before the YAML and ENV are read and carry no env-default
// tag.
func defaults() Config {
	return Config{
		Database:  DatabaseConfig{MinConns: 5},
		CORS:      CORSConfig{AllowCredentials: true, MaxAge: 86400},
		Metrics:   MetricsConfig{Enabled: true},
		RateLimit: RateLimitConfig{ExportPerMinute: 20},
		Dashboard: DashboardConfig{CertificateExpiryDays: 30, StreakReminder: true},
	}
}

// ToDomain maps the dashboard section onto the domain config consumed by the
// dashboard service.
func (c DashboardConfig) ToDomain() domain.DashboardConfig {
	return domain.DashboardConfig{
		ActionCap:             c.ActionCap,
		CertificateExpiryDays: c.CertificateExpiryDays,
		StreakReminder:        c.StreakReminder,
		CurrencySymbol:        strings.TrimSpace(c.CurrencySymbol),
		StudyLookbackDays:     c.StudyLookbackDays,
	}
}
