package dashboard

import "github.com/heartmarshall/tradedesk-backend/internal/domain"

const (
	// DefaultActionCap is the number of action items shown before the
	// overflow affordance kicks in.
	DefaultActionCap = 4
	// DefaultCertificateExpiryDays is the "expiring soon" window.
	DefaultCertificateExpiryDays = 30
	// DefaultCurrencySymbol prefixes formatted amounts.
	DefaultCurrencySymbol = "£"
	// DefaultStudyLookbackDays bounds the streak query.
	DefaultStudyLookbackDays = 365

	maxActionCap = 50
)

// Options tunes metric extraction and action derivation.
type Options struct {
	// Cap is the maximum number of action items returned. <= 0 means DefaultActionCap.
	Cap int
	// CertificateExpiryDays is the inclusive "expiring soon" window in days.
	CertificateExpiryDays int
	// StreakReminder enables the streak-at-risk info item.
	StreakReminder bool
	// CurrencySymbol prefixes formatted amounts. Empty means DefaultCurrencySymbol.
	CurrencySymbol string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Cap:                   DefaultActionCap,
		CertificateExpiryDays: DefaultCertificateExpiryDays,
		StreakReminder:        true,
		CurrencySymbol:        DefaultCurrencySymbol,
	}
}

// OptionsFromConfig maps the domain config onto Options.
func OptionsFromConfig(cfg domain.DashboardConfig) Options {
	return Options{
		Cap:                   cfg.ActionCap,
		CertificateExpiryDays: cfg.CertificateExpiryDays,
		StreakReminder:        cfg.StreakReminder,
		CurrencySymbol:        cfg.CurrencySymbol,
	}
}

// Validate checks all fields and collects all errors.
func (o Options) Validate() error {
	errs := new(domain.ValidationError)

	if o.Cap < 0 || o.Cap > maxActionCap {
		errs.Add("action_cap", "must be between 0 and 50")
	}
	if o.CertificateExpiryDays < 0 {
		errs.Add("certificate_expiry_days", "must be >= 0")
	}

	return errs.Err()
}

// normalized applies defaults. The pure functions call it so that zero-value
// Options behave like DefaultOptions for the cap and symbol.
func (o Options) normalized() Options {
	if o.Cap <= 0 {
		o.Cap = DefaultActionCap
	}
	if o.CertificateExpiryDays < 0 {
		o.CertificateExpiryDays = 0
	}
	if o.CurrencySymbol == "" {
		o.CurrencySymbol = DefaultCurrencySymbol
	}
	return o
}
