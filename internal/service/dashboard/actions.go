package dashboard

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/heartmarshall/tradedesk-backend/internal/domain"
)

// Client routes carried by action items.
const (
	RouteInvoices     = "/electrician/invoices"
	RouteQuotes       = "/electrician/quotes"
	RouteCertificates = "/electrician/certificates"
	RouteStudyCentre  = "/study-centre"
)

// DeriveActions turns the records into a ranked action queue.
//
// Candidates are produced rule by rule (overdue invoices, quotes awaiting a
// response, expiring certificates, streak at risk), stably ordered urgent ->
// warning -> info, then truncated to opts.Cap. Truncation only drops the tail.
// Expiring certificates produce a single item: it names the certificate when
// there is one and summarises the count when there are several.
func DeriveActions(in Input, now time.Time, opts Options) domain.ActionQueue {
	opts = opts.normalized()

	var candidates []domain.ActionItem
	candidates = append(candidates, overdueInvoiceActions(in.Invoices, now, opts)...)
	candidates = append(candidates, pendingQuoteActions(in.Quotes, opts)...)
	candidates = append(candidates, certificateActions(in.Certificates, now, opts)...)
	if opts.StreakReminder {
		candidates = append(candidates, streakActions(in.Learning)...)
	}

	slices.SortStableFunc(candidates, func(a, b domain.ActionItem) int {
		return cmp.Compare(a.Type.Rank(), b.Type.Rank())
	})

	total := len(candidates)
	items := candidates
	if len(items) > opts.Cap {
		items = items[:opts.Cap:opts.Cap]
	}
	if items == nil {
		items = []domain.ActionItem{}
	}

	return domain.ActionQueue{
		Items:     items,
		Total:     total,
		Remaining: total - len(items),
	}
}

// ---------------------------------------------------------------------------
// Rules
// ---------------------------------------------------------------------------

func overdueInvoiceActions(invoices []*domain.Invoice, now time.Time, opts Options) []domain.ActionItem {
	overdue := OverdueInvoices(invoices, now)
	out := make([]domain.ActionItem, 0, len(overdue))
	for _, o := range overdue {
		inv := o.Invoice
		amount := domain.AmountOrZero(inv.Total)

		parts := []string{
			orFallback(inv.ClientName, "Unknown client"),
			FormatCurrency(amount, opts.CurrencySymbol),
			pluralDays(o.DaysOverdue) + " overdue",
		}
		if inv.ReminderCount > 0 {
			parts = append(parts, pluralReminders(inv.ReminderCount)+" sent")
		}

		out = append(out, domain.ActionItem{
			ID:          "invoice-overdue:" + inv.ID.String(),
			Type:        domain.ActionUrgent,
			Title:       fmt.Sprintf("Invoice %s is overdue", orFallback(inv.InvoiceNumber, "without number")),
			Description: strings.Join(parts, " · "),
			Route:       RouteInvoices + "/" + inv.ID.String(),
			SourceID:    inv.ID,
			DaysOverdue: o.DaysOverdue,
			Amount:      &amount,
		})
	}
	return out
}

func pendingQuoteActions(quotes []*domain.Quote, opts Options) []domain.ActionItem {
	pending := make([]*domain.Quote, 0)
	for _, q := range compact(quotes) {
		if q.AwaitingResponse() {
			pending = append(pending, q)
		}
	}

	// Oldest unanswered first; quotes without a send date go last, by ID.
	slices.SortStableFunc(pending, func(a, b *domain.Quote) int {
		switch {
		case a.SentAt != nil && b.SentAt != nil:
			if c := a.SentAt.Compare(*b.SentAt); c != 0 {
				return c
			}
		case a.SentAt != nil:
			return -1
		case b.SentAt != nil:
			return 1
		}
		return compareIDs(a.ID, b.ID)
	})

	out := make([]domain.ActionItem, 0, len(pending))
	for _, q := range pending {
		amount := domain.AmountOrZero(q.Total)
		out = append(out, domain.ActionItem{
			ID:    "quote-pending:" + q.ID.String(),
			Type:  domain.ActionWarning,
			Title: fmt.Sprintf("Quote %s awaiting response", orFallback(q.QuoteNumber, "without number")),
			Description: orFallback(q.ClientName, "Unknown client") + " · " +
				FormatCurrency(amount, opts.CurrencySymbol),
			Route:    RouteQuotes + "/" + q.ID.String(),
			SourceID: q.ID,
			Amount:   &amount,
		})
	}
	return out
}

func certificateActions(certs []*domain.Certificate, now time.Time, opts Options) []domain.ActionItem {
	var expiring []*domain.Certificate
	for _, c := range compact(certs) {
		if expiringSoon(c, now, opts.CertificateExpiryDays) {
			expiring = append(expiring, c)
		}
	}

	switch len(expiring) {
	case 0:
		return nil
	case 1:
		c := expiring[0]
		days := daysBetween(civilDate(now), civilDate(*c.ExpiryDate))
		return []domain.ActionItem{{
			ID:          "certificate-expiring:" + c.ID.String(),
			Type:        domain.ActionInfo,
			Title:       fmt.Sprintf("%s expiring soon", orFallback(c.Name, "Certificate")),
			Description: expiryPhrase(days),
			Route:       RouteCertificates,
			SourceID:    c.ID,
		}}
	default:
		soonest := slices.MinFunc(expiring, func(a, b *domain.Certificate) int {
			return a.ExpiryDate.Compare(*b.ExpiryDate)
		})
		days := daysBetween(civilDate(now), civilDate(*soonest.ExpiryDate))
		return []domain.ActionItem{{
			ID:          "certificates-expiring",
			Type:        domain.ActionInfo,
			Title:       fmt.Sprintf("%d certificates expiring soon", len(expiring)),
			Description: fmt.Sprintf("First: %s, %s", orFallback(soonest.Name, "certificate"), expiryPhrase(days)),
			Route:       RouteCertificates,
		}}
	}
}

func streakActions(p *domain.LearningProgress) []domain.ActionItem {
	learning := learningOrZero(p)
	if learning.CurrentStreak == 0 || learning.StudiedToday {
		return nil
	}
	return []domain.ActionItem{{
		ID:          "streak-at-risk",
		Type:        domain.ActionInfo,
		Title:       fmt.Sprintf("Keep your %d-day streak going", learning.CurrentStreak),
		Description: "Study today to extend your streak",
		Route:       RouteStudyCentre,
	}}
}

// ---------------------------------------------------------------------------
// Text helpers
// ---------------------------------------------------------------------------

func orFallback(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func pluralReminders(n int) string {
	if n == 1 {
		return "1 reminder"
	}
	return fmt.Sprintf("%d reminders", n)
}

func expiryPhrase(days int) string {
	switch days {
	case 0:
		return "expires today"
	case 1:
		return "expires tomorrow"
	}
	return fmt.Sprintf("expires in %d days", days)
}
