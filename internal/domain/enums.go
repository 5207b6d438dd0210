package domain

// QuoteStatus is the lifecycle status of a quote.
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusDeclined QuoteStatus = "declined"
	QuoteStatusExpired  QuoteStatus = "expired"
	// QuoteStatusPending is a legacy value still present on older rows.
	// It is treated like sent for the active-quote metrics.
	QuoteStatusPending QuoteStatus = "pending"
)

func (s QuoteStatus) String() string { return string(s) }

func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusAccepted,
		QuoteStatusDeclined, QuoteStatusExpired, QuoteStatusPending:
		return true
	}
	return false
}

// IsActive reports whether the quote is out with the client and still counts
// towards pipeline value.
func (s QuoteStatus) IsActive() bool {
	return s == QuoteStatusSent || s == QuoteStatusPending
}

// AcceptanceStatus is the client's response to a sent quote.
type AcceptanceStatus string

const (
	AcceptancePending  AcceptanceStatus = "pending"
	AcceptanceAccepted AcceptanceStatus = "accepted"
	AcceptanceDeclined AcceptanceStatus = "declined"
)

func (s AcceptanceStatus) String() string { return string(s) }

func (s AcceptanceStatus) IsValid() bool {
	switch s {
	case AcceptancePending, AcceptanceAccepted, AcceptanceDeclined:
		return true
	}
	return false
}

// InvoiceStatus is the payment status of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

func (s InvoiceStatus) String() string { return string(s) }

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}

// ActionType is the priority class of a dashboard action item.
// Declaration order is the priority order.
type ActionType string

const (
	ActionUrgent  ActionType = "urgent"
	ActionWarning ActionType = "warning"
	ActionInfo    ActionType = "info"
)

func (t ActionType) String() string { return string(t) }

func (t ActionType) IsValid() bool {
	switch t {
	case ActionUrgent, ActionWarning, ActionInfo:
		return true
	}
	return false
}

// Rank returns the sort rank of the action type; lower ranks come first.
// Unknown types sort last.
func (t ActionType) Rank() int {
	switch t {
	case ActionUrgent:
		return 0
	case ActionWarning:
		return 1
	case ActionInfo:
		return 2
	}
	return 3
}

// StatStatus classifies a single headline statistic.
type StatStatus string

const (
	StatStatusOK        StatStatus = "ok"
	StatStatusAttention StatStatus = "attention"
	StatStatusCritical  StatStatus = "critical"
)

func (s StatStatus) String() string { return string(s) }

// Variant is the display variant tag handed to the presentation layer.
type Variant string

const (
	VariantSuccess Variant = "success"
	VariantWarning Variant = "warning"
	VariantDanger  Variant = "danger"
	VariantInfo    Variant = "info"
	VariantNeutral Variant = "neutral"
)

func (v Variant) String() string { return string(v) }

// DashboardStatus is the observable state of the dashboard aggregation.
type DashboardStatus string

const (
	DashboardLoading DashboardStatus = "loading"
	DashboardReady   DashboardStatus = "ready"
)

func (s DashboardStatus) String() string { return string(s) }
