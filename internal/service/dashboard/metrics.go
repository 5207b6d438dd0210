package dashboard

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/tradedesk-backend/internal/domain"
)

const day = 24 * time.Hour

// OverdueInvoice pairs an overdue invoice with the whole days elapsed since
// its due date.
type OverdueInvoice struct {
	Invoice     *domain.Invoice
	DaysOverdue int
}

// ActiveQuoteCount returns the number of quotes that are out with the client
// (status sent or pending).
func ActiveQuoteCount(quotes []*domain.Quote) int {
	n := 0
	for _, q := range quotes {
		if q != nil && q.Status.IsActive() {
			n++
		}
	}
	return n
}

// PendingQuoteValue sums the totals of active quotes. Missing totals count as zero.
func PendingQuoteValue(quotes []*domain.Quote) decimal.Decimal {
	sum := decimal.Zero
	for _, q := range quotes {
		if q != nil && q.Status.IsActive() {
			sum = sum.Add(domain.AmountOrZero(q.Total))
		}
	}
	return sum
}

// OverdueInvoices returns the invoices with a due date before now that are not
// paid, most overdue first. Invoices without a due date are never overdue.
func OverdueInvoices(invoices []*domain.Invoice, now time.Time) []OverdueInvoice {
	out := make([]OverdueInvoice, 0)
	for _, inv := range compact(invoices) {
		if !inv.IsOverdue(now) {
			continue
		}
		out = append(out, OverdueInvoice{
			Invoice:     inv,
			DaysOverdue: daysBetween(*inv.DueDate, now),
		})
	}

	slices.SortStableFunc(out, func(a, b OverdueInvoice) int {
		if c := cmp.Compare(b.DaysOverdue, a.DaysOverdue); c != 0 {
			return c
		}
		if c := a.Invoice.DueDate.Compare(*b.Invoice.DueDate); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Invoice.InvoiceNumber, b.Invoice.InvoiceNumber); c != 0 {
			return c
		}
		return compareIDs(a.Invoice.ID, b.Invoice.ID)
	})
	return out
}

// OverdueValue sums the totals of OverdueInvoices.
func OverdueValue(invoices []*domain.Invoice, now time.Time) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range OverdueInvoices(invoices, now) {
		sum = sum.Add(domain.AmountOrZero(o.Invoice.Total))
	}
	return sum
}

// CertificateExpiryWarnings counts certificates whose expiry date falls in the
// inclusive window [today, today+thresholdDays]. Dates are compared by
// calendar day in now's location. A negative threshold is treated as zero.
func CertificateExpiryWarnings(certs []*domain.Certificate, now time.Time, thresholdDays int) int {
	n := 0
	for _, c := range certs {
		if c != nil && expiringSoon(c, now, thresholdDays) {
			n++
		}
	}
	return n
}

// ExpiredCertificates counts certificates whose expiry date is before today.
func ExpiredCertificates(certs []*domain.Certificate, now time.Time) int {
	n := 0
	for _, c := range certs {
		if c != nil && c.ExpiryDate != nil && civilDate(*c.ExpiryDate).Before(civilDate(now)) {
			n++
		}
	}
	return n
}

// ComputeMetrics bundles every scalar summary for the dashboard.
func ComputeMetrics(in Input, now time.Time, opts Options) domain.Metrics {
	opts = opts.normalized()
	learning := learningOrZero(in.Learning)
	overdue := OverdueInvoices(in.Invoices, now)

	overdueValue := decimal.Zero
	for _, o := range overdue {
		overdueValue = overdueValue.Add(domain.AmountOrZero(o.Invoice.Total))
	}

	certs := compact(in.Certificates)

	return domain.Metrics{
		ActiveQuotes:         ActiveQuoteCount(in.Quotes),
		PendingQuoteValue:    PendingQuoteValue(in.Quotes),
		OverdueInvoices:      len(overdue),
		OverdueValue:         overdueValue,
		StudyStreak:          learning.CurrentStreak,
		StudiedToday:         learning.StudiedToday,
		Certificates:         len(certs),
		CertificatesExpiring: CertificateExpiryWarnings(certs, now, opts.CertificateExpiryDays),
		CertificatesExpired:  ExpiredCertificates(certs, now),
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// daysBetween returns floor((to - from) / 24h) for from <= to.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from) / day)
}

// civilDate strips the clock from t, keeping t's calendar date.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func expiringSoon(c *domain.Certificate, now time.Time, thresholdDays int) bool {
	if c.ExpiryDate == nil {
		return false
	}
	if thresholdDays < 0 {
		thresholdDays = 0
	}
	today := civilDate(now)
	expiry := civilDate(*c.ExpiryDate)
	return !expiry.Before(today) && !expiry.After(today.AddDate(0, 0, thresholdDays))
}

func compareIDs(a, b uuid.UUID) int {
	return cmp.Compare(a.String(), b.String())
}
