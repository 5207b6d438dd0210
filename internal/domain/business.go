package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Quote is a read-only snapshot of a customer quote.
type Quote struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	QuoteNumber string
	ClientName  string
	Status      QuoteStatus
	// AcceptanceStatus is only meaningful when Status is sent.
	AcceptanceStatus *AcceptanceStatus
	Total            *decimal.Decimal
	SentAt           *time.Time
	ExpiryDate       *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// AwaitingResponse reports whether the quote was sent and the client has not
// answered yet.
func (q *Quote) AwaitingResponse() bool {
	return q.Status == QuoteStatusSent &&
		q.AcceptanceStatus != nil && *q.AcceptanceStatus == AcceptancePending
}

// Invoice is a read-only snapshot of an invoice raised from a quote.
type Invoice struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	InvoiceNumber  string
	ClientName     string
	Status         InvoiceStatus
	DueDate        *time.Time
	Total          *decimal.Decimal
	ReminderCount  int
	LastReminderAt *time.Time
}

// IsOverdue reports whether the invoice has a due date before now and is not paid.
func (i *Invoice) IsOverdue(now time.Time) bool {
	return i.DueDate != nil && i.Status != InvoiceStatusPaid && i.DueDate.Before(now)
}

// QuoteFilter narrows quote and invoice listings.
type QuoteFilter struct {
	// Statuses limits results to the given statuses. Empty means all.
	Statuses []string
	// IncludeDeleted returns soft-deleted rows as well.
	IncludeDeleted bool
}
