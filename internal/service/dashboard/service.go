package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/tradedesk-backend/internal/domain"
	"github.com/heartmarshall/tradedesk-backend/internal/observability/metrics"
	"github.com/heartmarshall/tradedesk-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type quoteRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID, filter domain.QuoteFilter) ([]*domain.Quote, error)
}

type invoiceRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID, filter domain.QuoteFilter) ([]*domain.Invoice, error)
}

type studyRepo interface {
	GetStudyDays(ctx context.Context, userID uuid.UUID, dayStart time.Time, lastNDays int, timezone string) ([]domain.DayStudyCount, error)
}

type certificateRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Certificate, error)
}

type settingsRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service loads a user's records and runs the dashboard aggregation over them.
type Service struct {
	quotes       quoteRepo
	invoices     invoiceRepo
	study        studyRepo
	certificates certificateRepo
	settings     settingsRepo
	log          *slog.Logger
	opts         Options
	lookbackDays int
	now          func() time.Time
}

// NewService creates a new Dashboard service.
func NewService(
	log *slog.Logger,
	quotes quoteRepo,
	invoices invoiceRepo,
	study studyRepo,
	certificates certificateRepo,
	settings settingsRepo,
	cfg domain.DashboardConfig,
) (*Service, error) {
	opts := OptionsFromConfig(cfg)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dashboard options: %w", err)
	}

	lookback := cfg.StudyLookbackDays
	if lookback <= 0 {
		lookback = DefaultStudyLookbackDays
	}

	return &Service{
		quotes:       quotes,
		invoices:     invoices,
		study:        study,
		certificates: certificates,
		settings:     settings,
		log:          log.With("service", "dashboard"),
		opts:         opts.normalized(),
		lookbackDays: lookback,
		now:          time.Now,
	}, nil
}

// Options returns the normalized aggregation options.
func (s *Service) Options() Options {
	return s.opts
}

// GetDashboard loads the current user's records and returns the ready
// dashboard. A failed fetch yields an error wrapping domain.ErrUnavailable;
// callers present it as the loading state.
func (s *Service) GetDashboard(ctx context.Context) (domain.Dashboard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Dashboard{}, domain.ErrUnauthorized
	}

	started := time.Now()

	settings, err := s.loadSettings(ctx, userID)
	if canceled(ctx, err) {
		return domain.Dashboard{Status: domain.DashboardLoading}, err
	}
	if err != nil {
		metrics.ObserveDashboardBuild(metrics.ResultError, time.Since(started))
		return domain.Dashboard{Status: domain.DashboardLoading}, fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}

	clock := NewUserClock(s.now(), settings.Timezone)

	var (
		quotes   []*domain.Quote
		invoices []*domain.Invoice
		certs    []*domain.Certificate
		days     []domain.DayStudyCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		quotes, err = s.quotes.ListByUser(gctx, userID, domain.QuoteFilter{})
		if err != nil {
			return fmt.Errorf("list quotes: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		invoices, err = s.invoices.ListByUser(gctx, userID, domain.QuoteFilter{})
		if err != nil {
			return fmt.Errorf("list invoices: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		certs, err = s.certificates.ListByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("list certificates: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		days, err = s.study.GetStudyDays(gctx, userID, clock.TodayUTC(), s.lookbackDays, clock.Location().String())
		if err != nil {
			return fmt.Errorf("get study days: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		if canceled(ctx, err) {
			return domain.Dashboard{Status: domain.DashboardLoading}, err
		}
		metrics.ObserveDashboardBuild(metrics.ResultError, time.Since(started))
		s.log.WarnContext(ctx, "dashboard data unavailable",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return domain.Dashboard{Status: domain.DashboardLoading}, fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}

	learning := LearningFromDays(days, clock.Today)

	dash := Build(Snapshot{
		Input: Input{
			Quotes:       quotes,
			Invoices:     invoices,
			Learning:     &learning,
			Certificates: certs,
		},
	}, clock.Now, s.opts)

	metrics.ObserveDashboardBuild(metrics.ResultSuccess, time.Since(started))
	for _, item := range dash.Actions.Items {
		metrics.IncActionItem(item.Type.String())
	}

	s.log.InfoContext(ctx, "dashboard built",
		slog.String("user_id", userID.String()),
		slog.Int("active_quotes", dash.Metrics.ActiveQuotes),
		slog.Int("overdue_invoices", dash.Metrics.OverdueInvoices),
		slog.Int("streak", dash.Metrics.StudyStreak),
		slog.Int("actions_total", dash.Actions.Total),
		slog.Int("actions_remaining", dash.Actions.Remaining),
	)

	return dash, nil
}

// loadSettings returns the user's settings, falling back to defaults when the
// user has none stored.
func (s *Service) loadSettings(ctx context.Context, userID uuid.UUID) (domain.UserSettings, error) {
	settings, err := s.settings.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.DefaultUserSettings(userID), nil
	}
	if err != nil {
		return domain.UserSettings{}, fmt.Errorf("load settings: %w", err)
	}
	if settings == nil {
		return domain.DefaultUserSettings(userID), nil
	}
	return *settings, nil
}

// canceled reports whether err stems from the caller abandoning ctx.
func canceled(ctx context.Context, err error) bool {
	return err != nil && errors.Is(err, context.Canceled) && errors.Is(ctx.Err(), context.Canceled)
}
