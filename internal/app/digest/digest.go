// Package digest computes one user's dashboard outside the HTTP path, for
// cron-driven reminder digests.
package digest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tradedesk-backend/internal/domain"
	"github.com/heartmarshall/tradedesk-backend/pkg/ctxutil"
)

const overdueInvoicePrefix = "invoice-overdue:"

// DashboardBuilder computes the dashboard of the user in ctx.
type DashboardBuilder interface {
	GetDashboard(ctx context.Context) (domain.Dashboard, error)
}

// ReminderRecorder bumps an invoice's reminder counter.
type ReminderRecorder interface {
	RecordReminder(ctx context.Context, invoiceID uuid.UUID, at time.Time) (int, error)
}

// TxRunner runs fn inside a database transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config controls one digest run.
type Config struct {
	UserID uuid.UUID
	// RecordReminders bumps reminder_count on every overdue invoice in the
	// returned queue. Without it the run is read-only.
	RecordReminders bool
	Now             func() time.Time
}

// Result summarises a digest run.
type Result struct {
	Dashboard domain.Dashboard
	Reminded  []uuid.UUID
}

// Run builds the dashboard for cfg.UserID, logs its action queue and
// optionally records reminders for overdue invoices in one transaction.
func Run(ctx context.Context, cfg Config, dash DashboardBuilder, reminders ReminderRecorder, tx TxRunner, logger *slog.Logger) (Result, error) {
	if cfg.UserID == uuid.Nil {
		return Result{}, domain.NewValidationError("user", "required")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	logger = logger.With("job", "digest", slog.String("user_id", cfg.UserID.String()))

	ctx = ctxutil.WithUserID(ctx, cfg.UserID)
	d, err := dash.GetDashboard(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("build dashboard: %w", err)
	}

	q := d.Actions
	if q.AllClear() {
		logger.InfoContext(ctx, "all clear")
	}
	for i, item := range q.Items {
		logger.InfoContext(ctx, "action",
			slog.Int("position", i+1),
			slog.String("type", item.Type.String()),
			slog.String("title", item.Title),
			slog.String("description", item.Description),
			slog.String("route", item.Route),
		)
	}
	if q.Remaining > 0 {
		logger.InfoContext(ctx, "more actions not shown", slog.Int("remaining", q.Remaining))
	}

	result := Result{Dashboard: d}
	if !cfg.RecordReminders {
		return result, nil
	}

	targets := overdueInvoiceIDs(q.Items)
	if len(targets) == 0 {
		return result, nil
	}

	at := cfg.Now()
	err = tx.RunInTx(ctx, func(ctx context.Context) error {
		for _, id := range targets {
			count, err := reminders.RecordReminder(ctx, id, at)
			if err != nil {
				return fmt.Errorf("record reminder for invoice %s: %w", id, err)
			}
			logger.InfoContext(ctx, "reminder recorded",
				slog.String("invoice_id", id.String()),
				slog.Int("reminder_count", count),
			)
		}
		return nil
	})
	if err != nil {
		return result, err
	}

	result.Reminded = targets
	return result, nil
}

func overdueInvoiceIDs(items []domain.ActionItem) []uuid.UUID {
	var ids []uuid.UUID
	for _, item := range items {
		if item.Type == domain.ActionUrgent && strings.HasPrefix(item.ID, overdueInvoicePrefix) && item.SourceID != uuid.Nil {
			ids = append(ids, item.SourceID)
		}
	}
	return ids
}
