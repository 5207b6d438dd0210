package dashboard

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/tradedesk-backend/internal/domain"
)

// testNow is the injected clock used across the package tests.
var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func money(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func daysAgo(n int) *time.Time {
	t := testNow.AddDate(0, 0, -n)
	return &t
}

func daysAhead(n int) *time.Time {
	t := testNow.AddDate(0, 0, n)
	return &t
}

func newQuote(status domain.QuoteStatus, total *decimal.Decimal) *domain.Quote {
	return &domain.Quote{
		ID:          uuid.New(),
		QuoteNumber: "Q-" + uuid.NewString()[:6],
		ClientName:  "Sparks Ltd",
		Status:      status,
		Total:       total,
	}
}

func newPendingQuote(sentAt *time.Time) *domain.Quote {
	q := newQuote(domain.QuoteStatusSent, money("500"))
	q.AcceptanceStatus = ptr(domain.AcceptancePending)
	q.SentAt = sentAt
	return q
}

func newInvoice(status domain.InvoiceStatus, due *time.Time, total *decimal.Decimal) *domain.Invoice {
	return &domain.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: "INV-" + uuid.NewString()[:6],
		ClientName:    "Acme Homes",
		Status:        status,
		DueDate:       due,
		Total:         total,
	}
}

func newCertificate(name string, expiry *time.Time) *domain.Certificate {
	return &domain.Certificate{
		ID:         uuid.New(),
		Name:       name,
		Category:   "card",
		ExpiryDate: expiry,
	}
}
