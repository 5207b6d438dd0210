package dashboard

import (
	"strconv"

	"github.com/heartmarshall/tradedesk-backend/internal/domain"
)

// Stat card keys.
const (
	StatActiveQuotes = "active_quotes"
	StatOverdue      = "overdue_invoices"
	StatStreak       = "study_streak"
	StatCertificates = "certificates"
)

// VariantFor maps a stat status onto its display variant.
func VariantFor(s domain.StatStatus) domain.Variant {
	switch s {
	case domain.StatStatusOK:
		return domain.VariantSuccess
	case domain.StatStatusAttention:
		return domain.VariantWarning
	case domain.StatStatusCritical:
		return domain.VariantDanger
	}
	return domain.VariantNeutral
}

// ActionVariant maps an action type onto its display variant.
func ActionVariant(t domain.ActionType) domain.Variant {
	switch t {
	case domain.ActionUrgent:
		return domain.VariantDanger
	case domain.ActionWarning:
		return domain.VariantWarning
	case domain.ActionInfo:
		return domain.VariantInfo
	}
	return domain.VariantNeutral
}

// iconFor picks the icon tag of a stat card from its key and status.
func iconFor(key string, s domain.StatStatus) string {
	switch key {
	case StatOverdue:
		if s == domain.StatStatusOK {
			return "check-circle"
		}
		return "alert-triangle"
	case StatActiveQuotes:
		return "file-text"
	case StatStreak:
		return "flame"
	case StatCertificates:
		if s == domain.StatStatusOK {
			return "award"
		}
		return "clock"
	}
	return "circle"
}

// BuildStats derives the headline stat cards from computed metrics.
func BuildStats(m domain.Metrics, opts Options) []domain.StatCard {
	opts = opts.normalized()

	quoteStatus := domain.StatStatusOK
	if m.ActiveQuotes > 0 {
		quoteStatus = domain.StatStatusAttention
	}

	overdueStatus := domain.StatStatusOK
	if m.OverdueInvoices > 0 {
		overdueStatus = domain.StatStatusCritical
	}

	streakStatus := domain.StatStatusOK
	if !m.StudiedToday {
		streakStatus = domain.StatStatusAttention
	}

	certStatus := domain.StatStatusOK
	switch {
	case m.CertificatesExpired > 0:
		certStatus = domain.StatStatusCritical
	case m.CertificatesExpiring > 0:
		certStatus = domain.StatStatusAttention
	}

	cards := []struct {
		key, label, value string
		status            domain.StatStatus
	}{
		{StatActiveQuotes, "Active quotes", strconv.Itoa(m.ActiveQuotes) + " · " + FormatCurrency(m.PendingQuoteValue, opts.CurrencySymbol), quoteStatus},
		{StatOverdue, "Overdue invoices", strconv.Itoa(m.OverdueInvoices) + " · " + FormatCurrency(m.OverdueValue, opts.CurrencySymbol), overdueStatus},
		{StatStreak, "Study streak", pluralDays(m.StudyStreak), streakStatus},
		{StatCertificates, "Certificates expiring", strconv.Itoa(m.CertificatesExpiring), certStatus},
	}

	out := make([]domain.StatCard, 0, len(cards))
	for _, c := range cards {
		out = append(out, domain.StatCard{
			Key:     c.key,
			Label:   c.label,
			Value:   c.value,
			Status:  c.status,
			Variant: VariantFor(c.status),
			Icon:    iconFor(c.key, c.status),
		})
	}
	return out
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return strconv.Itoa(n) + " days"
}
