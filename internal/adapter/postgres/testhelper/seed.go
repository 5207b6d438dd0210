package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// Now returns the current UTC time truncated to PostgreSQL precision.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedSettings stores user_settings with the given timezone for a new user
// and returns the user ID.
func SeedSettings(t *testing.T, pool *pgxpool.Pool, timezone string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO user_settings (user_id, timezone, updated_at) VALUES ($1, $2, $3)`,
		userID, timezone, Now(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSettings: %v", err)
	}
	return userID
}

// QuoteRow describes a quotes row for seeding. Zero fields take the column
// defaults listed on each field.
type QuoteRow struct {
	UserID           uuid.UUID
	QuoteNumber      string // default "Q-<suffix>"
	ClientName       string
	Status           string // default "draft"
	AcceptanceStatus *string
	Total            decimal.Decimal
	SentAt           *time.Time

	InvoiceRaised  bool
	InvoiceNumber  *string
	InvoiceStatus  *string
	InvoiceDueDate *time.Time
	ReminderCount  int

	DeletedAt *time.Time
}

// SeedQuote inserts a quotes row and returns its ID.
func SeedQuote(t *testing.T, pool *pgxpool.Pool, row QuoteRow) uuid.UUID {
	t.Helper()

	if row.QuoteNumber == "" {
		row.QuoteNumber = "Q-" + uniqueSuffix()
	}
	if row.Status == "" {
		row.Status = "draft"
	}

	client, err := json.Marshal(map[string]string{"name": row.ClientName})
	if err != nil {
		t.Fatalf("testhelper: SeedQuote marshal client: %v", err)
	}

	id := uuid.New()
	now := Now()
	_, err = pool.Exec(context.Background(),
		`INSERT INTO quotes (
			id, user_id, quote_number, client_data, status, acceptance_status, total, sent_at,
			invoice_raised, invoice_number, invoice_status, invoice_due_date, reminder_count,
			deleted_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7::numeric, $8, $9, $10, $11, $12, $13, $14, $15, $15)`,
		id, row.UserID, row.QuoteNumber, client, row.Status, row.AcceptanceStatus, row.Total.String(), row.SentAt,
		row.InvoiceRaised, row.InvoiceNumber, row.InvoiceStatus, row.InvoiceDueDate, row.ReminderCount,
		row.DeletedAt, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedQuote: %v", err)
	}
	return id
}

// SeedStudySession inserts a study session for userID at createdAt.
func SeedStudySession(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, createdAt time.Time) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO study_sessions (user_id, course_slug, duration, created_at) VALUES ($1, $2, $3, $4)`,
		userID, "18th-edition", 600, createdAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedStudySession: %v", err)
	}
}

// SeedCertificate inserts a certificate and returns its ID. A nil expiry
// stores NULL.
func SeedCertificate(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string, expiry *time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO certificates (id, user_id, name, category, expiry_date, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		id, userID, name, "card", expiry, Now(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCertificate: %v", err)
	}
	return id
}
