// Package quote implements read access to customer quotes in PostgreSQL.
package quote

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

// Repo provides quote persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new quote repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var columns = []string{
	"id",
	"user_id",
	"quote_number",
	"COALESCE(client_data->>'name', '')",
	"status",
	"acceptance_status",
	"total::text",
	"sent_at",
	"expiry_date",
	"created_at",
	"updated_at",
}

// ListByUser returns the user's quotes, newest first. Soft-deleted quotes are
// excluded unless filter.IncludeDeleted is set. Statuses are compared after
// normalisation, so stored "Sent" matches a "sent" filter.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, filter domain.QuoteFilter) ([]*domain.Quote, error) {
	query := postgres.Builder.
		Select(columns...).
		From("quotes").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id")

	if !filter.IncludeDeleted {
		query = query.Where(sq.Eq{"deleted_at": nil})
	}
	if statuses := normalizedStatuses(filter.Statuses); len(statuses) > 0 {
		query = query.Where(sq.Eq{"lower(trim(status))": statuses})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list quotes query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "quotes of user", userID)
	}

	quotes, err := pgx.CollectRows(rows, scanQuote)
	if err != nil {
		return nil, postgres.MapError(err, "quotes of user", userID)
	}
	return quotes, nil
}

func scanQuote(row pgx.CollectableRow) (*domain.Quote, error) {
	var (
		q                domain.Quote
		status           string
		acceptanceStatus *string
		total            *string
		sentAt           *time.Time
		expiryDate       *time.Time
	)

	if err := row.Scan(
		&q.ID, &q.UserID, &q.QuoteNumber, &q.ClientName,
		&status, &acceptanceStatus, &total, &sentAt, &expiryDate,
		&q.CreatedAt, &q.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan quote: %w", err)
	}

	amount, err := parseAmount(total)
	if err != nil {
		return nil, fmt.Errorf("quote %s total: %w", q.ID, err)
	}

	q.Status = domain.ParseQuoteStatus(status)
	q.AcceptanceStatus = domain.ParseAcceptanceStatus(acceptanceStatus)
	q.Total = amount
	q.SentAt = sentAt
	q.ExpiryDate = expiryDate
	return &q, nil
}

// parseAmount converts a numeric column read as text. NULL stays nil.
func parseAmount(raw *string) (*decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
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
