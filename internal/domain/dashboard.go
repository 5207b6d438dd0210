package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Metrics holds the scalar summaries shown on the dashboard.
type Metrics struct {
	ActiveQuotes         int
	PendingQuoteValue    decimal.Decimal
	OverdueInvoices      int
	OverdueValue         decimal.Decimal
	StudyStreak          int
	StudiedToday         bool
	Certificates         int
	CertificatesExpiring int
	CertificatesExpired  int
}

// ActionItem is a derived, prioritised follow-up for the user.
type ActionItem struct {
	ID          string
	Type        ActionType
	Title       string
	Description string
	// Route is the client route the presentation layer navigates to.
	Route    string
	SourceID uuid.UUID
	// DaysOverdue is set on overdue-invoice items only.
	DaysOverdue int
	Amount      *decimal.Decimal
}

// ActionQueue is the ranked, truncated list of action items.
type ActionQueue struct {
	Items []ActionItem
	// Total is the number of candidates before truncation.
	Total int
	// Remaining is the number of candidates dropped by truncation.
	Remaining int
}

// AllClear reports the loaded-with-nothing-to-do state.
func (q ActionQueue) AllClear() bool {
	return q.Total == 0
}

// StatCard is a headline statistic with its display hints.
type StatCard struct {
	Key     string
	Label   string
	Value   string
	Status  StatStatus
	Variant Variant
	Icon    string
}

// Dashboard is the observable dashboard state.
// Metrics, Stats and Actions are only populated when Status is ready.
type Dashboard struct {
	Status  DashboardStatus
	Metrics Metrics
	Stats   []StatCard
	Actions ActionQueue
}

// IsReady reports whether the dashboard carries computed data.
func (d Dashboard) IsReady() bool {
	return d.Status == DashboardReady
}

// DashboardConfig holds the tunables of the aggregation (pure domain type).
type DashboardConfig struct {
	ActionCap             int
	CertificateExpiryDays int
	StreakReminder        bool
	CurrencySymbol        string
	StudyLookbackDays     int
}
