package rest

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/tradedesk-backend/internal/domain"
	"github.com/heartmarshall/tradedesk-backend/internal/service/dashboard"
)

// DashboardResponse is the JSON body of GET /api/dashboard.
type DashboardResponse struct {
	State   string           `json:"state"`
	Metrics *MetricsResponse `json:"metrics,omitempty"`
	Stats   []StatResponse   `json:"stats,omitempty"`
	Actions *ActionsResponse `json:"actions,omitempty"`
}

// MetricsResponse carries the scalar summaries. Amounts are decimal strings.
type MetricsResponse struct {
	ActiveQuotes         int    `json:"activeQuotes"`
	PendingQuoteValue    string `json:"pendingQuoteValue"`
	OverdueInvoices      int    `json:"overdueInvoices"`
	OverdueValue         string `json:"overdueValue"`
	StudyStreak          int    `json:"studyStreak"`
	StudiedToday         bool   `json:"studiedToday"`
	Certificates         int    `json:"certificates"`
	CertificatesExpiring int    `json:"certificatesExpiring"`
	CertificatesExpired  int    `json:"certificatesExpired"`
}

// StatResponse is one headline stat card.
type StatResponse struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Value   string `json:"value"`
	Status  string `json:"status"`
	Variant string `json:"variant"`
	Icon    string `json:"icon"`
}

// ActionsResponse is the truncated action queue.
type ActionsResponse struct {
	Items     []ActionResponse `json:"items"`
	Total     int              `json:"total"`
	Remaining int              `json:"remaining"`
	AllClear  bool             `json:"allClear"`
}

// ActionResponse is one action item.
type ActionResponse struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Variant     string     `json:"variant"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Route       string     `json:"route"`
	SourceID    *uuid.UUID `json:"sourceId,omitempty"`
	DaysOverdue int        `json:"daysOverdue,omitempty"`
	Amount      *string    `json:"amount,omitempty"`
}

func toDashboardResponse(d domain.Dashboard) DashboardResponse {
	if !d.IsReady() {
		return DashboardResponse{State: domain.DashboardLoading.String()}
	}

	m := d.Metrics
	stats := make([]StatResponse, 0, len(d.Stats))
	for _, s := range d.Stats {
		stats = append(stats, StatResponse{
			Key:     s.Key,
			Label:   s.Label,
			Value:   s.Value,
			Status:  s.Status.String(),
			Variant: s.Variant.String(),
			Icon:    s.Icon,
		})
	}

	items := make([]ActionResponse, 0, len(d.Actions.Items))
	for _, a := range d.Actions.Items {
		item := ActionResponse{
			ID:          a.ID,
			Type:        a.Type.String(),
			Variant:     dashboard.ActionVariant(a.Type).String(),
			Title:       a.Title,
			Description: a.Description,
			Route:       a.Route,
			DaysOverdue: a.DaysOverdue,
			Amount:      amountString(a.Amount),
		}
		if a.SourceID != uuid.Nil {
			id := a.SourceID
			item.SourceID = &id
		}
		items = append(items, item)
	}

	return DashboardResponse{
		State: d.Status.String(),
		Metrics: &MetricsResponse{
			ActiveQuotes:         m.ActiveQuotes,
			PendingQuoteValue:    m.PendingQuoteValue.StringFixed(2),
			OverdueInvoices:      m.OverdueInvoices,
			OverdueValue:         m.OverdueValue.StringFixed(2),
			StudyStreak:          m.StudyStreak,
			StudiedToday:         m.StudiedToday,
			Certificates:         m.Certificates,
			CertificatesExpiring: m.CertificatesExpiring,
			CertificatesExpired:  m.CertificatesExpired,
		},
		Stats: stats,
		Actions: &ActionsResponse{
			Items:     items,
			Total:     d.Actions.Total,
			Remaining: d.Actions.Remaining,
			AllClear:  d.Actions.AllClear(),
		},
	}
}

func amountString(a *decimal.Decimal) *string {
	if a == nil {
		return nil
	}
	s := a.StringFixed(2)
	return &s
}

// errorResponse is the JSON body of every error reply.
type errorResponse struct {
	Error  string             `json:"error"`
	Fields []fieldErrorDetail `json:"fields,omitempty"`
}

type fieldErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
