package config

import (
	"errors"
	"fmt"
	"strings"
)

const maxActionCap = 50

// Validate checks business rules that struct tags cannot express. Every
// violated rule is reported, joined with errors.Join. Load calls it.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(len(c.Auth.JWTSecret) >= 32,
		"auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	check(c.Server.Port > 0 && c.Server.Port <= 65535,
		"server.port must be in 1..65535 (got %d)", c.Server.Port)
	check(c.Database.MinConns <= c.Database.MaxConns,
		"database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	check(!c.Metrics.Enabled || strings.HasPrefix(c.Metrics.Path, "/"),
		"metrics.path must start with / (got %q)", c.Metrics.Path)
	check(c.RateLimit.ExportPerMinute >= 0,
		"rate_limit.export_per_minute must be >= 0 (got %d)", c.RateLimit.ExportPerMinute)
	check(c.RateLimit.ExportPerMinute == 0 || c.RateLimit.CleanupInterval > 0,
		"rate_limit.cleanup_interval must be positive when export limiting is on")

	d := c.Dashboard
	check(d.ActionCap >= 0 && d.ActionCap <= maxActionCap,
		"dashboard.action_cap must be in 0..%d (got %d)", maxActionCap, d.ActionCap)
	check(d.CertificateExpiryDays >= 0,
		"dashboard.certificate_expiry_days must be >= 0 (got %d)", d.CertificateExpiryDays)
	check(d.StudyLookbackDays >= 0,
		"dashboard.study_lookback_days must be >= 0 (got %d)", d.StudyLookbackDays)

	return errors.Join(errs...)
}
