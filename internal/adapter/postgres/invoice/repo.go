// Package invoice implements access to invoices in PostgreSQL. Invoices are
// quotes rows with invoice_raised set.
package invoice

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/tradedesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tradedesk-backend/internal/domain"
)

// Repo provides invoice persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new invoice repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var columns = []string{
	"id",
	"user_id",
	"COALESCE(invoice_number, '')",
	"COALESCE(client_data->>'name', '')",
	"invoice_status",
	"invoice_due_date",
	"total::text",
	"reminder_count",
	"last_reminder_sent_at",
}

const recordReminderSQL = `
UPDATE quotes
SET reminder_count = reminder_count + 1,
    last_reminder_sent_at = $2,
    updated_at = $2
WHERE id = $1 AND invoice_raised AND deleted_at IS NULL
RETURNING reminder_count`

// ListByUser returns the user's raised invoices ordered by due date (NULLs
// last). Soft-deleted rows are excluded unless filter.IncludeDeleted is set.
// filter.Statuses matches invoice_status; a NULL status counts as draft.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, filter domain.QuoteFilter) ([]*domain.Invoice, error) {
	query := postgres.Builder.
		Select(columns...).
		From("quotes").
		Where(sq.Eq{"user_id": userID}).
		Where("invoice_raised").
		OrderBy("invoice_due_date ASC NULLS LAST", "id")

	if !filter.IncludeDeleted {
		query = query.Where(sq.Eq{"deleted_at": nil})
	}
	if statuses := normalizedStatuses(filter.Statuses); len(statuses) > 0 {
		query = query.Where(sq.Eq{"COALESCE(NULLIF(lower(trim(invoice_status)), ''), 'draft')": statuses})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list invoices query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "invoices of user", userID)
	}

	invoices, err := pgx.CollectRows(rows, scanInvoice)
	if err != nil {
		return nil, postgres.MapError(err, "invoices of user", userID)
	}
	return invoices, nil
}

// RecordReminder increments the reminder counter of an invoice and stamps
// the time the reminder went out. Returns the new count, or
// domain.ErrNotFound if the row is not a live invoice.
func (r *Repo) RecordReminder(ctx context.Context, invoiceID uuid.UUID, at time.Time) (int, error) {
	var count int
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, recordReminderSQL, invoiceID, at).
		Scan(&count)
	if err != nil {
		return 0, postgres.MapError(err, "invoice", invoiceID)
	}
	return count, nil
}

func scanInvoice(row pgx.CollectableRow) (*domain.Invoice, error) {
	var (
		inv    domain.Invoice
		status *string
		due    *time.Time
		total  *string
		last   *time.Time
	)

	if err := row.Scan(
		&inv.ID, &inv.UserID, &inv.InvoiceNumber, &inv.ClientName,
		&status, &due, &total, &inv.ReminderCount, &last,
	); err != nil {
		return nil, fmt.Errorf("scan invoice: %w", err)
	}

	if total != nil {
		d, err := decimal.NewFromString(*total)
		if err != nil {
			return nil, fmt.Errorf("invoice %s total: %w", inv.ID, err)
		}
		inv.Total = &d
	}

	inv.Status = domain.ParseInvoiceStatus(status)
	inv.DueDate = due
	inv.LastReminderAt = last
	return &inv, nil
}

func normalizedStatuses(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if n := domain.NormalizeStatus(s); n != "" {
			out = append(out, n)
		}
	}
	return out
}
