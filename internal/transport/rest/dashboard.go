package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/tradedesk-backend/internal/domain"
	"github.com/heartmarshall/tradedesk-backend/internal/observability/metrics"
	"github.com/heartmarshall/tradedesk-backend/internal/report"
)

type dashboardService interface {
	GetDashboard(ctx context.Context) (domain.Dashboard, error)
}

// DashboardHandler serves the dashboard and its export.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
	now func() time.Time
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		svc: svc,
		log: logger.With("handler", "dashboard"),
		now: time.Now,
	}
}

// Get returns the current user's dashboard.
// GET /api/dashboard
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	dash, err := h.svc.GetDashboard(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, toDashboardResponse(dash))
}

// Export renders the current user's dashboard as a document.
// GET /api/dashboard/export?format=xlsx|pdf
func (h *DashboardHandler) Export(w http.ResponseWriter, r *http.Request) {
	format, err := report.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	started := time.Now()
	dash, err := h.svc.GetDashboard(r.Context())
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			metrics.ObserveExport(string(format), metrics.ResultError, time.Since(started))
		}
		h.handleError(w, r, err)
		return
	}

	generatedAt := h.now()
	body, err := report.Build(format, dash, generatedAt)
	if err != nil {
		metrics.ObserveExport(string(format), metrics.ResultError, time.Since(started))
		h.handleError(w, r, err)
		return
	}
	metrics.ObserveExport(string(format), metrics.ResultSuccess, time.Since(started))

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+format.Filename(generatedAt)+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (h *DashboardHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.Is(err, context.Canceled):
		h.log.DebugContext(r.Context(), "request canceled")
	case errors.As(err, &verr):
		resp := errorResponse{Error: "validation failed"}
		for _, fe := range verr.Errors {
			resp.Fields = append(resp.Fields, fieldErrorDetail{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrUnavailable):
		// The client keeps showing its loading placeholder and retries.
		w.Header().Set("Retry-After", "5")
		writeJSON(w, http.StatusServiceUnavailable, DashboardResponse{State: domain.DashboardLoading.String()})
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
