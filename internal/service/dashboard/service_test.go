package dashboard

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/tradedesk-backend/internal/domain"
	"github.com/heartmarshall/tradedesk-backend/pkg/ctxutil"
)

//go:generate moq -out quote_repo_mock_test.go -pkg dashboard . quoteRepo
//go:generate moq -out invoice_repo_mock_test.go -pkg dashboard . invoiceRepo
//go:generate moq -out study_repo_mock_test.go -pkg dashboard . studyRepo
//go:generate moq -out certificate_repo_mock_test.go -pkg dashboard . certificateRepo
//go:generate moq -out settings_repo_mock_test.go -pkg dashboard . settingsRepo

type testMocks struct {
	quotes       *quoteRepoMock
	invoices     *invoiceRepoMock
	study        *studyRepoMock
	certificates *certificateRepoMock
	settings     *settingsRepoMock
}

// newTestMocks returns mocks that all succeed with empty results.
func newTestMocks() *testMocks {
	return &testMocks{
		quotes: &quoteRepoMock{
			ListByUserFunc: func(ctx context.Context, userID uuid.UUID, filter domain.QuoteFilter) ([]*domain.Quote, error) {
				return nil, nil
			},
		},
		invoices: &invoiceRepoMock{
			ListByUserFunc: func(ctx context.Context, userID uuid.UUID, filter domain.QuoteFilter) ([]*domain.Invoice, error) {
				return nil, nil
			},
		},
		study: &studyRepoMock{
			GetStudyDaysFunc: func(ctx context.Context, userID uuid.UUID, dayStart time.Time, lastNDays int, timezone string) ([]domain.DayStudyCount, error) {
				return nil, nil
			},
		},
		certificates: &certificateRepoMock{
			ListByUserFunc: func(ctx context.Context, userID uuid.UUID) ([]*domain.Certificate, error) {
				return nil, nil
			},
		},
		settings: &settingsRepoMock{
			GetByUserIDFunc: func(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
				return nil, domain.ErrNotFound
			},
		},
	}
}

func newTestService(t *testing.T, m *testMocks, cfg domain.DashboardConfig) *Service {
	t.Helper()

	svc, err := NewService(slog.Default(), m.quotes, m.invoices, m.study, m.certificates, m.settings, cfg)
	require.NoError(t, err)
	svc.now = func() time.Time { return testNow }
	return svc
}

func defaultCfg() domain.DashboardConfig {
	return domain.DashboardConfig{
		ActionCap:             DefaultActionCap,
		CertificateExpiryDays: DefaultCertificateExpiryDays,
		StreakReminder:        true,
		CurrencySymbol:        DefaultCurrencySymbol,
		StudyLookbackDays:     90,
	}
}

// ---------------------------------------------------------------------------
// NewService
// ---------------------------------------------------------------------------

func TestNewService_InvalidConfig(t *testing.T) {
	t.Parallel()

	m := newTestMocks()
	_, err := NewService(slog.Default(), m.quotes, m.invoices, m.study, m.certificates, m.settings,
		domain.DashboardConfig{ActionCap: 500})

	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestNewService_DefaultsApplied(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newTestMocks(), domain.DashboardConfig{})

	assert.Equal(t, DefaultActionCap, svc.Options().Cap)
	assert.Equal(t, DefaultCurrencySymbol, svc.Options().CurrencySymbol)
	assert.Equal(t, DefaultStudyLookbackDays, svc.lookbackDays)
}

// ---------------------------------------------------------------------------
// GetDashboard
// ---------------------------------------------------------------------------

func TestService_GetDashboard_Unauthorized(t *testing.T) {
	t.Parallel()

	m := newTestMocks()
	svc := newTestService(t, m, defaultCfg())

	_, err := svc.GetDashboard(context.Background())

	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, m.settings.GetByUserIDCalls())
	assert.Empty(t, m.quotes.ListByUserCalls())
}

func TestService_GetDashboard_EmptyIsAllClear(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	m := newTestMocks()
	svc := newTestService(t, m, defaultCfg())

	dash, err := svc.GetDashboard(ctxutil.WithUserID(context.Background(), userID))

	require.NoError(t, err)
	assert.Equal(t, domain.DashboardReady, dash.Status)
	assert.True(t, dash.Actions.AllClear())
	assert.NotNil(t, dash.Actions.Items)

	require.Len(t, m.study.GetStudyDaysCalls(), 1)
	call := m.study.GetStudyDaysCalls()[0]
	assert.Equal(t, userID, call.UserID)
	assert.Equal(t, "UTC", call.Timezone)
	assert.Equal(t, 90, call.LastNDays)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), call.DayStart)

	require.Len(t, m.quotes.ListByUserCalls(), 1)
	assert.Equal(t, userID, m.quotes.ListByUserCalls()[0].UserID)
	assert.False(t, m.quotes.ListByUserCalls()[0].Filter.IncludeDeleted)
}

func TestService_GetDashboard_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	m := newTestMocks()
	m.settings.GetByUserIDFunc = func(ctx context.Context, uid uuid.UUID) (*domain.UserSettings, error) {
		return &domain.UserSettings{UserID: uid, Timezone: "Europe/London"}, nil
	}
	m.quotes.ListByUserFunc = func(ctx context.Context, uid uuid.UUID, filter domain.QuoteFilter) ([]*domain.Quote, error) {
		return []*domain.Quote{newPendingQuote(daysAgo(3)), newQuote(domain.QuoteStatusDraft, money("80"))}, nil
	}
	m.invoices.ListByUserFunc = func(ctx context.Context, uid uuid.UUID, filter domain.QuoteFilter) ([]*domain.Invoice, error) {
		return []*domain.Invoice{
			newInvoice(domain.InvoiceStatusSent, daysAgo(12), money("1200")),
			newInvoice(domain.InvoiceStatusPaid, daysAgo(40), money("300")),
		}, nil
	}
	m.study.GetStudyDaysFunc = func(ctx context.Context, uid uuid.UUID, dayStart time.Time, lastNDays int, timezone string) ([]domain.DayStudyCount, error) {
		yesterday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
		return []domain.DayStudyCount{
			{Date: yesterday, Count: 2},
			{Date: yesterday.AddDate(0, 0, -1), Count: 1},
		}, nil
	}
	m.certificates.ListByUserFunc = func(ctx context.Context, uid uuid.UUID) ([]*domain.Certificate, error) {
		return []*domain.Certificate{newCertificate("ECS card", daysAhead(14))}, nil
	}
	svc := newTestService(t, m, defaultCfg())

	dash, err := svc.GetDashboard(ctxutil.WithUserID(context.Background(), userID))
	require.NoError(t, err)

	assert.Equal(t, domain.DashboardReady, dash.Status)
	assert.Equal(t, 1, dash.Metrics.ActiveQuotes)
	assert.Equal(t, 1, dash.Metrics.OverdueInvoices)
	assert.True(t, dash.Metrics.OverdueValue.Equal(*money("1200")))
	assert.Equal(t, 2, dash.Metrics.StudyStreak)
	assert.False(t, dash.Metrics.StudiedToday)
	assert.Equal(t, 1, dash.Metrics.CertificatesExpiring)

	require.Len(t, dash.Actions.Items, 4)
	assert.Equal(t, domain.ActionUrgent, dash.Actions.Items[0].Type)
	assert.Equal(t, domain.ActionWarning, dash.Actions.Items[1].Type)
	assert.Equal(t, domain.ActionInfo, dash.Actions.Items[2].Type)
	assert.Equal(t, domain.ActionInfo, dash.Actions.Items[3].Type)
	assert.Equal(t, 4, dash.Actions.Total)
	assert.Zero(t, dash.Actions.Remaining)

	assert.Equal(t, "Europe/London", m.study.GetStudyDaysCalls()[0].Timezone)
}

func TestService_GetDashboard_RepoErrorIsUnavailable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		breakRepo func(m *testMocks)
	}{
		{
			name: "quotes",
			breakRepo: func(m *testMocks) {
				m.quotes.ListByUserFunc = func(ctx context.Context, userID uuid.UUID, filter domain.QuoteFilter) ([]*domain.Quote, error) {
					return nil, errors.New("connection reset")
				}
			},
		},
		{
			name: "invoices",
			breakRepo: func(m *testMocks) {
				m.invoices.ListByUserFunc = func(ctx context.Context, userID uuid.UUID, filter domain.QuoteFilter) ([]*domain.Invoice, error) {
					return nil, errors.New("connection reset")
				}
			},
		},
		{
			name: "study",
			breakRepo: func(m *testMocks) {
				m.study.GetStudyDaysFunc = func(ctx context.Context, userID uuid.UUID, dayStart time.Time, lastNDays int, timezone string) ([]domain.DayStudyCount, error) {
					return nil, errors.New("connection reset")
				}
			},
		},
		{
			name: "certificates",
			breakRepo: func(m *testMocks) {
				m.certificates.ListByUserFunc = func(ctx context.Context, userID uuid.UUID) ([]*domain.Certificate, error) {
					return nil, context.DeadlineExceeded
				}
			},
		},
		{
			name: "settings",
			breakRepo: func(m *testMocks) {
				m.settings.GetByUserIDFunc = func(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
					return nil, errors.New("connection reset")
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newTestMocks()
			tt.breakRepo(m)
			svc := newTestService(t, m, defaultCfg())

			dash, err := svc.GetDashboard(ctxutil.WithUserID(context.Background(), uuid.New()))

			require.ErrorIs(t, err, domain.ErrUnavailable)
			assert.Equal(t, domain.DashboardLoading, dash.Status)
			assert.Nil(t, dash.Actions.Items)
		})
	}
}

func TestService_GetDashboard_CallerCanceled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cancel func(m *testMocks)
	}{
		{
			name: "during fetch",
			cancel: func(m *testMocks) {
				m.quotes.ListByUserFunc = func(ctx context.Context, userID uuid.UUID, filter domain.QuoteFilter) ([]*domain.Quote, error) {
					return nil, ctx.Err()
				}
			},
		},
		{
			name: "during settings load",
			cancel: func(m *testMocks) {
				m.settings.GetByUserIDFunc = func(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
					return nil, ctx.Err()
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newTestMocks()
			tt.cancel(m)

			var logs bytes.Buffer
			svc, err := NewService(slog.New(slog.NewTextHandler(&logs, nil)),
				m.quotes, m.invoices, m.study, m.certificates, m.settings, defaultCfg())
			require.NoError(t, err)

			ctx, cancel := context.WithCancel(ctxutil.WithUserID(context.Background(), uuid.New()))
			cancel()

			dash, err := svc.GetDashboard(ctx)

			require.ErrorIs(t, err, context.Canceled)
			assert.NotErrorIs(t, err, domain.ErrUnavailable)
			assert.Equal(t, domain.DashboardLoading, dash.Status)
			assert.NotContains(t, logs.String(), "level=WARN")
		})
	}
}

func TestService_GetDashboard_FetchesConcurrently(t *testing.T) {
	t.Parallel()

	var inFlight, peak atomic.Int32
	release := make(chan struct{})
	track := func() {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		if n == 4 {
			close(release)
		}
		select {
		case <-release:
		case <-time.After(2 * time.Second):
		}
		inFlight.Add(-1)
	}

	m := newTestMocks()
	m.quotes.ListByUserFunc = func(ctx context.Context, uid uuid.UUID, filter domain.QuoteFilter) ([]*domain.Quote, error) {
		track()
		return nil, nil
	}
	m.invoices.ListByUserFunc = func(ctx context.Context, uid uuid.UUID, filter domain.QuoteFilter) ([]*domain.Invoice, error) {
		track()
		return nil, nil
	}
	m.study.GetStudyDaysFunc = func(ctx context.Context, uid uuid.UUID, dayStart time.Time, lastNDays int, timezone string) ([]domain.DayStudyCount, error) {
		track()
		return nil, nil
	}
	m.certificates.ListByUserFunc = func(ctx context.Context, uid uuid.UUID) ([]*domain.Certificate, error) {
		track()
		return nil, nil
	}
	svc := newTestService(t, m, defaultCfg())

	_, err := svc.GetDashboard(ctxutil.WithUserID(context.Background(), uuid.New()))

	require.NoError(t, err)
	assert.Equal(t, int32(4), peak.Load())
}
